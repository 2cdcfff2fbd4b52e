package email

import (
	"fmt"
	"time"

	"lounge_backend/internal/config"

	"gopkg.in/gomail.v2"
)

// SMTPSender отправляет письма через SMTP (gomail)
type SMTPSender struct {
	cfg *config.Config
}

func NewSMTPSender(cfg *config.Config) *SMTPSender {
	return &SMTPSender{cfg: cfg}
}

// Send отправляет HTML-письмо
func (e *SMTPSender) Send(to, subject, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", e.cfg.Email.FromEmail, e.cfg.Email.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	d := gomail.NewDialer(
		e.cfg.Email.SMTPHost,
		e.cfg.Email.SMTPPort,
		e.cfg.Email.SMTPUsername,
		e.cfg.Email.SMTPPassword,
	)

	return d.DialAndSend(m)
}

// SendWelcome отправляет приветственное письмо новому пользователю
func (e *SMTPSender) SendWelcome(to, firstName, lastName string) error {
	subject := "Bienvenue sur Lounge Africa - Votre compte a été créé"
	body := fmt.Sprintf(welcomeTemplate, firstName, lastName, to, e.cfg.Server.PublicURL, time.Now().Year())
	return e.Send(to, subject, body)
}
