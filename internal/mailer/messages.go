package mailer

import (
	"context"
	"fmt"
)

const (
	verificationSubject = "Verification email from Social App"
	resetSubject        = "Your password reset token (valid for a limited time)"
)

// SendVerification emails the activation link for a freshly created account.
func SendVerification(ctx context.Context, m Mailer, baseURL, email, activationString string) error {
	body := fmt.Sprintf(
		"Please click the following link to activate your account: %s/api/v1/users/%s",
		baseURL, activationString,
	)
	return m.Send(ctx, email, verificationSubject, body)
}

// SendPasswordReset emails the plaintext reset token. The plaintext never
// touches storage; this message is its only usable presentation.
func SendPasswordReset(ctx context.Context, m Mailer, baseURL, email, resetToken string) error {
	body := fmt.Sprintf(
		"Forgot your password? Submit a PATCH request with your new password to: %s/api/v1/users/resetPassword/%s\n"+
			"If you didn't forget your password, please ignore this email.",
		baseURL, resetToken,
	)
	return m.Send(ctx, email, resetSubject, body)
}
