package email

import (
	"crypto/tls"
	"fmt"
	"html"
	"net/smtp"
	"sort"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

// Notifier sends staff notifications for visitor submissions.
type Notifier interface {
	SendInquiryNotification(subject string, fields map[string]string) error
}

// SMTPConfig holds configuration for SMTP server
type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromName  string
	FromEmail string
	NotifyTo  string
	UseTLS    bool
}

// SMTPNotifier implements Notifier over SMTP.
type SMTPNotifier struct {
	config SMTPConfig
	logger zerolog.Logger
}

// NewSMTPNotifier creates a new SMTPNotifier
func NewSMTPNotifier(config SMTPConfig, logger zerolog.Logger) *SMTPNotifier {
	return &SMTPNotifier{
		config: config,
		logger: logger,
	}
}

// SendInquiryNotification mails the submitted fields to the staff inbox. When
// SMTP is not configured the notification is only logged.
func (s *SMTPNotifier) SendInquiryNotification(subject string, fields map[string]string) error {
	if s.config.Host == "" || s.config.NotifyTo == "" {
		s.logger.Warn().
			Str("subject", subject).
			Msg("SMTP not configured - inquiry notification not sent")
		return nil
	}
	return s.sendHTMLEmail(s.config.NotifyTo, subject, RenderFields(subject, fields))
}

// RenderFields formats submitted fields as a small HTML table, keys sorted.
func RenderFields(title string, fields map[string]string) string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(`<html><body><div style="font-family: Arial, sans-serif; max-width: 600px;">`)
	fmt.Fprintf(&b, `<h2 style="color: #333;">%s</h2><table cellpadding="4">`, html.EscapeString(title))
	for _, k := range keys {
		fmt.Fprintf(&b, `<tr><th align="left">%s</th><td>%s</td></tr>`,
			html.EscapeString(k), strings.ReplaceAll(html.EscapeString(fields[k]), "\n", "<br>"))
	}
	b.WriteString(`</table></div></body></html>`)
	return b.String()
}

func (s *SMTPNotifier) buildMessage(toEmail, subject, htmlBody string) []byte {
	headers := [][2]string{
		{"From", fmt.Sprintf("%s <%s>", s.config.FromName, s.config.FromEmail)},
		{"To", toEmail},
		{"Subject", subject},
		{"MIME-Version", "1.0"},
		{"Content-Type", "text/html; charset=UTF-8"},
	}

	var message strings.Builder
	for _, h := range headers {
		fmt.Fprintf(&message, "%s: %s\r\n", h[0], h[1])
	}
	message.WriteString("\r\n" + htmlBody)
	return []byte(message.String())
}

// sendHTMLEmail sends an HTML email
func (s *SMTPNotifier) sendHTMLEmail(toEmail, subject, htmlBody string) error {
	var auth smtp.Auth
	if s.config.Username != "" {
		auth = smtp.PlainAuth("", s.config.Username, s.config.Password, s.config.Host)
	}
	message := s.buildMessage(toEmail, subject, htmlBody)
	serverAddress := s.config.Host + ":" + strconv.Itoa(s.config.Port)

	if !s.config.UseTLS {
		if err := smtp.SendMail(serverAddress, auth, s.config.FromEmail, []string{toEmail}, message); err != nil {
			s.logger.Error().Err(err).Str("server", serverAddress).Msg("Failed to send email")
			return fmt.Errorf("failed to send email: %w", err)
		}
		return nil
	}

	conn, err := tls.Dial("tcp", serverAddress, &tls.Config{ServerName: s.config.Host})
	if err != nil {
		s.logger.Error().Err(err).Str("server", serverAddress).Msg("Failed to connect to SMTP server")
		return fmt.Errorf("failed to connect to SMTP server: %w", err)
	}
	defer conn.Close()

	client, err := smtp.NewClient(conn, s.config.Host)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to create SMTP client")
		return fmt.Errorf("failed to create SMTP client: %w", err)
	}
	defer client.Quit()

	if auth != nil {
		if err = client.Auth(auth); err != nil {
			s.logger.Error().Err(err).Msg("SMTP authentication failed")
			return fmt.Errorf("SMTP authentication failed: %w", err)
		}
	}
	if err = client.Mail(s.config.FromEmail); err != nil {
		return fmt.Errorf("failed to set sender: %w", err)
	}
	if err = client.Rcpt(toEmail); err != nil {
		return fmt.Errorf("failed to set recipient: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("failed to get data writer: %w", err)
	}
	if _, err = w.Write(message); err != nil {
		return fmt.Errorf("failed to write email message: %w", err)
	}
	if err = w.Close(); err != nil {
		return fmt.Errorf("failed to close data writer: %w", err)
	}
	return nil
}
