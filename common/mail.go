package common

import (
	"errors"
	"fmt"
	"log"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Mailer is any service that can send a single html email.
type Mailer interface {
	Send(to, subject, html string) error
}

var Mail Mailer

const mailAttempts = 3

type sendgridMailer struct {
	client *sendgrid.Client
	from   *sgmail.Email
}

func (m *sendgridMailer) Send(to, subject, html string) error {
	msg := sgmail.NewSingleEmail(m.from, subject, sgmail.NewEmail("", to), "", html)
	resp, err := m.client.Send(msg)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid: status %d: %s", resp.StatusCode, resp.Body)
	}
	return nil
}

// consoleMailer prints emails instead of sending them, for local runs
// without a sendgrid key.
type consoleMailer struct{}

func (m *consoleMailer) Send(to, subject, html string) error {
	log.Printf("mail to=%s subject=%q\n%s\n", to, subject, html)
	return nil
}

func initMail(cfg H) error {
	mc, _ := cfg["mail"].(H)
	key := EnvOr("SENDGRID_KEY", str(mc["sendgrid_key"]))
	from := EnvOr("MAIL_FROM", str(mc["from"]))
	if key == "" {
		Mail = &consoleMailer{}
		return nil
	}
	if from == "" {
		return errors.New("missing mail sender address")
	}
	Mail = &sendgridMailer{
		client: sendgrid.NewSendClient(key),
		from:   sgmail.NewEmail("TutorHub", from),
	}
	return nil
}

// SendOTPEmail mails a one-time verification code.
func SendOTPEmail(to, otp string) error {
	html := fmt.Sprintf(`
      <div style="font-family: Arial, sans-serif; padding: 20px;">
        <h2>Email Verification</h2>
        <p>Your One-Time Password (OTP) for verification is:</p>
        <h3 style="color: #007bff;">%s</h3>
        <p>This OTP is valid for a limited time. Do not share it with anyone.</p>
      </div>`, otp)
	return WithRetry(mailAttempts, func() error {
		return Mail.Send(to, "Your OTP Code for Verification", html)
	})
}

// SendResetEmail mails a password-reset link embedding the token.
func SendResetEmail(to, token string) error {
	link := FrontendURL + "/auth/restorepassword/" + token
	html := fmt.Sprintf(`
        <p>You requested a password reset.</p>
        <p>Click the link below to reset your password:</p>
        <a href="%s">%s</a>
        <p>If you did not request this, ignore this email.</p>`, link, link)
	return WithRetry(mailAttempts, func() error {
		return Mail.Send(to, "Restore Your Password", html)
	})
}
