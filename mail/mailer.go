package mail

import (
	"fmt"
	"net/smtp"
	"time"

	"sudokuGo/config"
	"sudokuGo/models"
)

// Mailer delivers outbound notifications. Send failures are returned to the
// caller, who decides whether the surrounding operation fails.
type Mailer interface {
	Send(toEmail, subject, body string) error
}

// SMTPMailer sends through a plain-auth SMTP relay.
type SMTPMailer struct {
	host     string
	port     string
	from     string
	password string
}

func NewSMTPMailer(cfg config.Config) *SMTPMailer {
	return &SMTPMailer{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		from:     cfg.SMTPEmail,
		password: cfg.SMTPPassword,
	}
}

func (m *SMTPMailer) Send(toEmail, subject, body string) error {
	message := []byte(fmt.Sprintf(
		"From: Sudoku Support <%s>\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=\"UTF-8\"\r\n\r\n%s\r\n",
		m.from, toEmail, subject, body))

	auth := smtp.PlainAuth("", m.from, m.password, m.host)
	return smtp.SendMail(m.host+":"+m.port, auth, m.from, []string{toEmail}, message)
}

// VerificationEmail builds the subject and HTML body for a code email.
func VerificationEmail(code, purpose string, ttl time.Duration) (subject, body string) {
	process := "registration"
	subject = "Your registration verification code"
	if purpose == models.PurposePasswordReset {
		process = "password reset"
		subject = "Your password reset verification code"
	}

	body = fmt.Sprintf(`
	<html>
		<body>
			<h2>Hello,</h2>
			<p>We received a %s request for your account.</p>

			<p>Your %s verification code is: <strong>%s</strong></p>

			<p>Please enter this code to complete the %s. The code expires in %d minutes.</p>

			<p>If you did not request this code, please ignore this email.</p>

			<p>Best regards,<br>The Sudoku Support Team</p>
		</body>
	</html>
	`, process, process, code, process, int(ttl.Minutes()))
	return subject, body
}
