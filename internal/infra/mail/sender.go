package mail

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// EmailSender envia HTML via SMTP. Porta 465 usa TLS implícito; 587 faz
// STARTTLS (comportamento padrão do dialer). Outras portas são recusadas
// na hora do envio, igual ao resto da infra: configuração errada não
// derruba o boot.
type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
	Enabled  bool
}

func NewEmailSender(host string, port int, user, password string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     user,
		Enabled:  host != "" && port != 0 && user != "" && password != "",
	}
}

func (s *EmailSender) Send(to, subject, bodyHTML string) error {
	if !s.Enabled {
		return fmt.Errorf("smtp sending is disabled due to missing credentials")
	}

	if s.Port != 465 && s.Port != 587 {
		return fmt.Errorf("unsupported smtp port: %d", s.Port)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", bodyHTML)

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)
	// 465 = TLS implícito; em 587 o dialer negocia STARTTLS sozinho.
	d.SSL = s.Port == 465

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("erro ao enviar email SMTP: %w", err)
	}

	return nil
}
