package mail

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// Sender delivers portal emails over SMTP. It is only constructed when
// MAIL_HOST is set; without it the send-email endpoint stays a logging stub.
type Sender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

func NewSender(host string, port int, user, password, from string) *Sender {
	return &Sender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
	}
}

func (s *Sender) Send(to, subject, content string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", content)

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}
