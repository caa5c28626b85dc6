package email

import (
	"fmt"
	"net/smtp"
	"os"
	"strconv"
	"strings"
)

// SMTPConfig holds the SMTP server configuration.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	Sender   string
}

// LoadSMTPConfigFromEnv loads the SMTP configuration from environment
// variables. Username and password may be empty for open relays.
func LoadSMTPConfigFromEnv() (*SMTPConfig, error) {
	host := os.Getenv("SMTP_HOST")
	portStr := os.Getenv("SMTP_PORT")
	sender := os.Getenv("SMTP_SENDER_EMAIL")

	if host == "" || portStr == "" || sender == "" {
		return nil, fmt.Errorf("SMTP_HOST, SMTP_PORT, and SMTP_SENDER_EMAIL must be set")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid SMTP_PORT: %v", err)
	}

	return &SMTPConfig{
		Host:     host,
		Port:     port,
		Username: os.Getenv("SMTP_USERNAME"),
		Password: os.Getenv("SMTP_PASSWORD"),
		Sender:   sender,
	}, nil
}

// SendVerificationEmail mails the verification link for a new account.
func SendVerificationEmail(toEmail, verificationLink string) error {
	body := fmt.Sprintf(`
<html>
<body>
    <p>Welcome to GreenSentinel!</p>
    <p>Please confirm your email address by opening the link below:</p>
    <p><a href="%s">%s</a></p>
    <p>The link is valid for 24 hours. If you did not create this account you can ignore this message.</p>
</body>
</html>
`, verificationLink, verificationLink)

	return send(toEmail, "GreenSentinel: verify your email address", body)
}

// SendPasswordResetEmail mails a password-reset link.
func SendPasswordResetEmail(toEmail, resetLink string) error {
	body := fmt.Sprintf(`
<html>
<body>
    <p>A password reset was requested for your GreenSentinel account.</p>
    <p>Open the link below to choose a new password:</p>
    <p><a href="%s">%s</a></p>
    <p>The link is valid for 1 hour. If you did not request a reset you can ignore this message.</p>
</body>
</html>
`, resetLink, resetLink)

	return send(toEmail, "GreenSentinel: reset your password", body)
}

func send(toEmail, subject, body string) error {
	config, err := LoadSMTPConfigFromEnv()
	if err != nil {
		return fmt.Errorf("failed to load SMTP config: %w", err)
	}

	// Headers need CRLF line endings.
	msg := []byte(strings.Join([]string{
		"To: " + toEmail,
		"From: " + config.Sender,
		"Subject: " + subject,
		"MIME-version: 1.0",
		"Content-Type: text/html; charset=\"UTF-8\"",
		"",
		body,
	}, "\r\n"))

	auth := smtp.PlainAuth("", config.Username, config.Password, config.Host)
	addr := fmt.Sprintf("%s:%d", config.Host, config.Port)

	if err := smtp.SendMail(addr, auth, config.Sender, []string{toEmail}, msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
