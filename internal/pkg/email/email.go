package email

import (
	"crypto/tls"
	"fmt"
	"html"
	"net/smtp"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

// EmailService defines the interface for email operations
type EmailService interface {
	SendInterviewStatusEmail(toEmail, toName, jobTitle, status string) error
	SendAccountDecisionEmail(toEmail, toName string, approved bool) error
}

// SMTPConfig holds configuration for SMTP server
type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromName  string
	FromEmail string
	UseTLS    bool
	BaseURL   string // Base URL of the web application, linked from emails
}

// EmailServiceImpl implements EmailService
type EmailServiceImpl struct {
	config SMTPConfig
	logger zerolog.Logger
}

// NewEmailService creates a new EmailService
func NewEmailService(config SMTPConfig, logger zerolog.Logger) EmailService {
	return &EmailServiceImpl{
		config: config,
		logger: logger,
	}
}

func (s *EmailServiceImpl) configured() bool {
	return s.config.Host != "" && s.config.Username != "" && s.config.Password != ""
}

// SendInterviewStatusEmail tells a candidate their interview moved to a new status
func (s *EmailServiceImpl) SendInterviewStatusEmail(toEmail, toName, jobTitle, status string) error {
	if !s.configured() {
		s.logger.Warn().
			Str("toEmail", toEmail).
			Str("jobTitle", jobTitle).
			Str("status", status).
			Msg("SMTP credentials not configured - interview status email not sent.")
		return nil
	}

	subject := fmt.Sprintf("Interview update: %s", jobTitle)
	body := fmt.Sprintf(`
		<html>
		<body>
			<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
				<p>Hello %s,</p>
				<p>Your interview status for <strong>%s</strong> has been updated to <strong>%s</strong>.</p>
				<p>You can follow your applications at <a href="%s">%s</a>.</p>
				<p>Best regards,<br>%s</p>
			</div>
		</body>
		</html>
	`, html.EscapeString(toName), html.EscapeString(jobTitle), html.EscapeString(status),
		s.config.BaseURL, s.config.BaseURL, html.EscapeString(s.config.FromName))

	return s.sendHTMLEmail(toEmail, subject, body)
}

// SendAccountDecisionEmail informs a staff applicant whether their account was approved
func (s *EmailServiceImpl) SendAccountDecisionEmail(toEmail, toName string, approved bool) error {
	if !s.configured() {
		s.logger.Warn().
			Str("toEmail", toEmail).
			Bool("approved", approved).
			Msg("SMTP credentials not configured - account decision email not sent.")
		return nil
	}

	subject := "Your account request was declined"
	text := "Unfortunately your account request was not approved. Contact an administrator if you think this is a mistake."
	if approved {
		subject = "Your account has been approved"
		text = "Your account is now active and you can sign in."
	}

	body := fmt.Sprintf(`
		<html>
		<body>
			<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
				<p>Hello %s,</p>
				<p>%s</p>
				<p>Best regards,<br>%s</p>
			</div>
		</body>
		</html>
	`, html.EscapeString(toName), text, html.EscapeString(s.config.FromName))

	return s.sendHTMLEmail(toEmail, subject, body)
}

// buildMessage renders headers in a fixed order followed by the HTML body
func (s *EmailServiceImpl) buildMessage(toEmail, subject, htmlBody string) []byte {
	var b strings.Builder
	headers := [][2]string{
		{"From", fmt.Sprintf("%s <%s>", s.config.FromName, s.config.FromEmail)},
		{"To", toEmail},
		{"Subject", subject},
		{"MIME-Version", "1.0"},
		{"Content-Type", "text/html; charset=UTF-8"},
	}
	for _, h := range headers {
		fmt.Fprintf(&b, "%s: %s\r\n", h[0], h[1])
	}
	b.WriteString("\r\n")
	b.WriteString(htmlBody)
	return []byte(b.String())
}

// sendHTMLEmail sends an HTML email
func (s *EmailServiceImpl) sendHTMLEmail(toEmail, subject, htmlBody string) error {
	auth := smtp.PlainAuth("", s.config.Username, s.config.Password, s.config.Host)
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

	if err = client.Auth(auth); err != nil {
		s.logger.Error().Err(err).Msg("SMTP authentication failed")
		return fmt.Errorf("SMTP authentication failed: %w", err)
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
