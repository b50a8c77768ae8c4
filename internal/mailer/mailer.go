package mailer

import (
	"context"
	"log/slog"
	"regexp"

	"github.com/sara/shopease/pkg/config"
	"gopkg.in/gomail.v2"
)

var hrefRe = regexp.MustCompile(`href="([^"]+)"`)

// Result reports what happened to an outbound email. When SMTP is not
// configured the message is not delivered; the first link found in the body
// is surfaced instead so local flows stay testable end to end.
type Result struct {
	Delivered   bool   `json:"delivered"`
	PreviewLink string `json:"preview_link,omitempty"`
}

type Mailer struct {
	cfg    *config.SMTPConfig
	logger *slog.Logger
}

func New(cfg *config.SMTPConfig, logger *slog.Logger) *Mailer {
	return &Mailer{cfg: cfg, logger: logger}
}

// Send delivers one email. It never panics and callers treat failures as
// best-effort: a failed notification must not undo the state change that
// triggered it.
func (m *Mailer) Send(ctx context.Context, to, subject, html string) (*Result, error) {
	if !m.cfg.Configured() {
		link := ""
		if match := hrefRe.FindStringSubmatch(html); match != nil {
			link = match[1]
		}
		m.logger.Info("dev email (SMTP not configured)",
			"to", to,
			"subject", subject,
			"link", link,
		)
		return &Result{Delivered: false, PreviewLink: link}, nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", html)

	d := gomail.NewDialer(m.cfg.Host, m.cfg.Port, m.cfg.User, m.cfg.Password)
	if err := d.DialAndSend(msg); err != nil {
		return nil, err
	}

	m.logger.Info("email sent", "to", to, "subject", subject)
	return &Result{Delivered: true}, nil
}
