package mailer_test

import (
	"context"
	"strings"
	"testing"

	"github.com/sara/shopease/internal/mailer"
	"github.com/sara/shopease/internal/testutil"
	"github.com/sara/shopease/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSend_UnconfiguredSMTP(t *testing.T) {
	m := mailer.New(&config.SMTPConfig{}, testutil.NewTestLogger())

	t.Run("surfaces the first link as a preview", func(t *testing.T) {
		html := mailer.ResetPassword("Ann", "http://localhost:3000/reset-password/abc123")

		res, err := m.Send(context.Background(), "ann@x.com", mailer.SubjectReset, html)
		require.NoError(t, err)
		assert.False(t, res.Delivered)
		assert.Equal(t, "http://localhost:3000/reset-password/abc123", res.PreviewLink)
	})

	t.Run("no link in the body", func(t *testing.T) {
		res, err := m.Send(context.Background(), "ann@x.com", mailer.SubjectWelcome, mailer.Welcome("Ann"))
		require.NoError(t, err)
		assert.False(t, res.Delivered)
		assert.Empty(t, res.PreviewLink)
	})
}

func TestSMTPConfigured(t *testing.T) {
	cases := []struct {
		name string
		cfg  config.SMTPConfig
		want bool
	}{
		{"empty", config.SMTPConfig{}, false},
		{"placeholder host", config.SMTPConfig{Host: "smtp.example.com", User: "u", Password: "p"}, false},
		{"missing credentials", config.SMTPConfig{Host: "smtp.mailgun.org"}, false},
		{"complete", config.SMTPConfig{Host: "smtp.mailgun.org", User: "u", Password: "p"}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.cfg.Configured())
		})
	}
}

func TestTemplates(t *testing.T) {
	t.Run("verify email embeds the link", func(t *testing.T) {
		html := mailer.VerifyEmail("Ann", "http://localhost:3000/verify/tok")
		assert.True(t, strings.Contains(html, "http://localhost:3000/verify/tok"))
		assert.True(t, strings.Contains(html, "Ann"))
	})

	t.Run("reset email embeds the link", func(t *testing.T) {
		html := mailer.ResetPassword("Ann", "http://localhost:3000/reset-password/tok")
		assert.True(t, strings.Contains(html, "http://localhost:3000/reset-password/tok"))
	})

	t.Run("every template is complete html", func(t *testing.T) {
		for name, html := range map[string]string{
			"welcome":       mailer.Welcome("Ann"),
			"verify":        mailer.VerifyEmail("Ann", "http://x"),
			"login notice":  mailer.LoginNotification("Ann"),
			"reset":         mailer.ResetPassword("Ann", "http://x"),
			"reset success": mailer.ResetSuccess("Ann"),
		} {
			assert.True(t, strings.Contains(html, "</html>"), name)
		}
	})
}
