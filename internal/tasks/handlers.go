package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/hibiken/asynq"
	"github.com/sara/shopease/internal/mailer"
)

type Handler struct {
	mailer *mailer.Mailer
	logger *slog.Logger
}

func NewHandler(m *mailer.Mailer, logger *slog.Logger) *Handler {
	return &Handler{mailer: m, logger: logger}
}

func (h *Handler) RegisterHandlers(mux *asynq.ServeMux) {
	mux.HandleFunc(TypeEmailDeliver, h.HandleEmailDeliver)
}

func (h *Handler) HandleEmailDeliver(ctx context.Context, t *asynq.Task) error {
	var payload EmailDeliverPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("unmarshal payload: %w", err)
	}

	result, err := h.mailer.Send(ctx, payload.To, payload.Subject, payload.HTML)
	if err != nil {
		h.logger.Error("email delivery failed", "to", payload.To, "error", err)
		return err
	}

	if !result.Delivered {
		h.logger.Info("email handled in preview mode", "to", payload.To, "link", result.PreviewLink)
	}
	return nil
}
