package mail

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// Mailer delivers transactional mail to a single recipient.
type Mailer interface {
	SendOTP(to, code string) error
}

// SMTPMailer sends mail through an SMTP relay.
type SMTPMailer struct {
	host string
	port int
	user string
	pass string
	from string
}

// NewSMTPMailer creates a mailer for the given SMTP relay.
func NewSMTPMailer(host string, port int, user, pass, from string) *SMTPMailer {
	return &SMTPMailer{
		host: host,
		port: port,
		user: user,
		pass: pass,
		from: from,
	}
}

// SendOTP mails a password-reset code to the recipient.
func (m *SMTPMailer) SendOTP(to, code string) error {
	if m.host == "" || m.from == "" {
		return fmt.Errorf("mail config missing")
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "Your Password Reset OTP")
	msg.SetBody("text/plain", fmt.Sprintf("Your OTP for password reset is: %s", code))

	d := gomail.NewDialer(m.host, m.port, m.user, m.pass)
	if err := d.DialAndSend(msg); err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	return nil
}
