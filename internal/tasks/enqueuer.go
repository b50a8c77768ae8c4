package tasks

import (
	"context"
	"log/slog"

	"github.com/hibiken/asynq"
	"github.com/sara/shopease/internal/mailer"
)

// Enqueuer hands outbound email to the worker via asynq. When no queue is
// available (Redis down or not configured) it falls back to sending inline
// so the flow still completes in single-process deployments.
type Enqueuer struct {
	client *asynq.Client
	mailer *mailer.Mailer
	logger *slog.Logger
}

func NewEnqueuer(client *asynq.Client, m *mailer.Mailer, logger *slog.Logger) *Enqueuer {
	return &Enqueuer{client: client, mailer: m, logger: logger}
}

func (e *Enqueuer) Send(ctx context.Context, to, subject, html string) error {
	if e.client != nil {
		task, err := NewEmailDeliverTask(EmailDeliverPayload{
			To:      to,
			Subject: subject,
			HTML:    html,
		})
		if err != nil {
			return err
		}
		if _, err := e.client.EnqueueContext(ctx, task); err == nil {
			return nil
		} else {
			e.logger.Warn("email enqueue failed, sending inline", "error", err)
		}
	}

	_, err := e.mailer.Send(ctx, to, subject, html)
	return err
}
