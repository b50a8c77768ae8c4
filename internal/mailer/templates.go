package mailer

import (
	"fmt"
	"html"
)

// Email subjects
const (
	SubjectWelcome      = "Welcome to ShopEase"
	SubjectVerify       = "Verify your email"
	SubjectLoginNotice  = "Login Notification"
	SubjectReset        = "Reset your password"
	SubjectResetSuccess = "Your password was changed"
)

func base(title, greeting, message, ctaText, ctaURL string) string {
	cta := ""
	if ctaText != "" && ctaURL != "" {
		cta = fmt.Sprintf(`
      <div style="margin:24px 0 8px;">
        <a href="%s" target="_blank"
           style="display:inline-block;background:#0ea5e9;color:#ffffff;padding:12px 18px;border-radius:8px;font-weight:600;font-size:15px;">%s</a>
      </div>`, ctaURL, html.EscapeString(ctaText))
	}

	return fmt.Sprintf(`<!doctype html>
<html>
  <body style="margin:0;padding:0;background:#f6f7fb;font-family:Inter,Segoe UI,Roboto,Arial,sans-serif;">
    <table role="presentation" border="0" cellpadding="0" cellspacing="0" width="100%%">
      <tr>
        <td align="center" style="padding:24px 12px;">
          <table role="presentation" width="600" style="width:600px;background:#ffffff;border-radius:12px;overflow:hidden;">
            <tr>
              <td style="padding:32px;color:#0f172a;">
                <p style="margin:0 0 12px;font-size:16px;line-height:24px;">%s</p>
                <h1 style="margin:0 0 12px;font-size:24px;line-height:32px;">%s</h1>
                <div style="font-size:15px;line-height:24px;color:#334155;">%s</div>
                %s
              </td>
            </tr>
            <tr>
              <td style="padding:16px 32px;border-top:1px solid #eef0f4;font-size:12px;color:#94a3b8;">
                If you did not expect this email, you can safely ignore it.
              </td>
            </tr>
          </table>
        </td>
      </tr>
    </table>
  </body>
</html>`, greeting, html.EscapeString(title), message, cta)
}

func Welcome(name string) string {
	return base(
		"Welcome aboard!",
		fmt.Sprintf("Hi %s,", html.EscapeString(name)),
		"Your account is ready. Browse the catalog and start filling your cart.",
		"", "",
	)
}

func VerifyEmail(name, verifyURL string) string {
	return base(
		"Confirm your email address",
		fmt.Sprintf("Hi %s,", html.EscapeString(name)),
		"Click the button below to verify your email and activate your account.",
		"Verify email", verifyURL,
	)
}

func LoginNotification(name string) string {
	return base(
		"New sign-in to your account",
		fmt.Sprintf("Hi %s,", html.EscapeString(name)),
		"We noticed a new sign-in to your account. If this was you, no action is needed.",
		"", "",
	)
}

func ResetPassword(name, resetURL string) string {
	return base(
		"Reset your password",
		fmt.Sprintf("Hi %s,", html.EscapeString(name)),
		"We received a request to reset your password. The link below is valid for 30 minutes and can be used once.",
		"Reset password", resetURL,
	)
}

func ResetSuccess(name string) string {
	return base(
		"Password changed",
		fmt.Sprintf("Hi %s,", html.EscapeString(name)),
		"Your password was changed successfully. If you did not do this, contact support immediately.",
		"", "",
	)
}
