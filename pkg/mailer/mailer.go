// Package mailer delivers reminder and account e-mails over SMTP.
package mailer

import (
	"bytes"
	"context"
	"errors"
	"html/template"
	"log/slog"
	"net"
	"net/smtp"
	"strings"
)

type Mailer interface {
	SendReminderEmail(ctx context.Context, to, subject, body string) error
	SendVerificationEmail(ctx context.Context, to, code string) error
	SendPasswordResetEmail(ctx context.Context, to, code string) error
}

type SMTPConfig struct {
	Host     string
	Port     string
	Sender   string
	Password string
}

// SendFunc has the signature of smtp.SendMail.
type SendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

type SMTPMailer struct {
	cfg  SMTPConfig
	auth smtp.Auth
	send SendFunc
}

func NewSMTPMailer(cfg SMTPConfig) *SMTPMailer {
	return NewSMTPMailerWithSender(cfg, smtp.SendMail)
}

func NewSMTPMailerWithSender(cfg SMTPConfig, send SendFunc) *SMTPMailer {
	var auth smtp.Auth
	if cfg.Password != "" {
		auth = smtp.PlainAuth("", cfg.Sender, cfg.Password, cfg.Host)
	}
	return &SMTPMailer{
		cfg:  cfg,
		auth: auth,
		send: send,
	}
}

var bodyTemplate = template.Must(template.New("mail").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: sans-serif;">
<h2>{{.Heading}}</h2>
<p>{{.Text}}</p>
{{if .Code}}<p style="font-size: 24px; letter-spacing: 4px;"><b>{{.Code}}</b></p>{{end}}
</body>
</html>
`))

type bodyData struct {
	Heading string
	Text    string
	Code    string
}

func (m *SMTPMailer) SendReminderEmail(ctx context.Context, to, subject, body string) error {
	return m.sendHTML(ctx, to, subject, bodyData{Heading: subject, Text: body})
}

func (m *SMTPMailer) SendVerificationEmail(ctx context.Context, to, code string) error {
	return m.sendHTML(ctx, to, "Verify your e-mail", bodyData{
		Heading: "Welcome!",
		Text:    "Use this code to finish your registration:",
		Code:    code,
	})
}

func (m *SMTPMailer) SendPasswordResetEmail(ctx context.Context, to, code string) error {
	return m.sendHTML(ctx, to, "Password reset", bodyData{
		Heading: "Password reset",
		Text:    "Use this code to reset your password. Ignore this e-mail if you did not ask for it.",
		Code:    code,
	})
}

func (m *SMTPMailer) sendHTML(ctx context.Context, to, subject string, data bodyData) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.ContainsAny(to, "\r\n") || strings.ContainsAny(subject, "\r\n") {
		return errors.New("invalid mail header value")
	}
	var body bytes.Buffer
	if err := bodyTemplate.Execute(&body, data); err != nil {
		return errors.New("rendering mail body error: " + err.Error())
	}
	var msg bytes.Buffer
	msg.WriteString("From: " + m.cfg.Sender + "\r\n")
	msg.WriteString("To: " + to + "\r\n")
	msg.WriteString("Subject: " + subject + "\r\n")
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n\r\n")
	msg.Write(body.Bytes())

	addr := net.JoinHostPort(m.cfg.Host, m.cfg.Port)
	if err := m.send(addr, m.auth, m.cfg.Sender, []string{to}, msg.Bytes()); err != nil {
		return errors.New("failed to send email: " + err.Error())
	}
	return nil
}

// LogMailer only logs outgoing mail. Used when no SMTP host is configured.
type LogMailer struct {
	logger *slog.Logger
}

func NewLogMailer(logger *slog.Logger) *LogMailer {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogMailer{logger: logger}
}

func (m *LogMailer) SendReminderEmail(ctx context.Context, to, subject, body string) error {
	m.logger.Info("reminder email", slog.String("to", to), slog.String("subject", subject), slog.String("body", body))
	return nil
}

func (m *LogMailer) SendVerificationEmail(ctx context.Context, to, code string) error {
	m.logger.Info("verification email", slog.String("to", to))
	return nil
}

func (m *LogMailer) SendPasswordResetEmail(ctx context.Context, to, code string) error {
	m.logger.Info("password reset email", slog.String("to", to))
	return nil
}
