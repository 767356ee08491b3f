// Package service holds the outbound collaborators (mail, AI) and the
// background jobs of the app
package service

import (
	"fmt"

	"github.com/spf13/viper"
	"gopkg.in/gomail.v2"
)

// Mailer sends the transactional emails of the account lifecycle.
// It's an interface so handler tests can swap in a fake
type Mailer interface {
	SendVerification(to, token string) error
	SendPasswordReset(to, token string) error
	SendWelcome(to, name string) error
}

type SMTPMailer struct {
	dialer      *gomail.Dialer
	sender      string
	frontendURL string
}

func NewMailer() *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(
			viper.GetString("mail.host"),
			viper.GetInt("mail.port"),
			viper.GetString("mail.username"),
			viper.GetString("mail.password"),
		),
		sender:      viper.GetString("mail.sender"),
		frontendURL: viper.GetString("frontend.url"),
	}
}

func (m *SMTPMailer) send(to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", fmt.Sprintf("\"AI Notes\" <%s>", m.sender))
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)

	return m.dialer.DialAndSend(msg)
}

func (m *SMTPMailer) SendVerification(to, token string) error {
	link := fmt.Sprintf("%s/verify-email?token=%s", m.frontendURL, token)

	return m.send(to, "Verify Your Email - AI Notes", fmt.Sprintf(
		`<h2>Welcome to AI Notes!</h2>
<p>Thank you for signing up. Please verify your email address to complete your registration.</p>
<p><a href="%s">Verify Email Address</a></p>
<p>If the link doesn't work, copy and paste it into your browser:</p>
<p>%s</p>`, link, link))
}

func (m *SMTPMailer) SendPasswordReset(to, token string) error {
	link := fmt.Sprintf("%s/reset-password?token=%s", m.frontendURL, token)

	return m.send(to, "Reset Your Password - AI Notes", fmt.Sprintf(
		`<h2>Password Reset Request</h2>
<p>You requested to reset your password. Click the link below to reset it.</p>
<p><a href="%s">Reset Password</a></p>
<p>This link will expire in 1 hour.</p>
<p>If you didn't request this, please ignore this email.</p>`, link))
}

func (m *SMTPMailer) SendWelcome(to, name string) error {
	return m.send(to, "Welcome to AI Notes!", fmt.Sprintf(
		`<h2>Welcome to AI Notes, %s!</h2>
<p>Your email has been verified and your account is now active.</p>
<p><a href="%s/notes">Start Taking Notes</a></p>`, name, m.frontendURL))
}
