package mail

import (
	"fmt"
	"net/smtp"
	"strings"

	"github.com/rezillion/backend/internal/infrastructure/config"
)

// Message is a single outbound email.
type Message struct {
	To      string
	ReplyTo string // optional; lead mails carry the buyer's address here
	Subject string
	HTML    string
}

// Sender delivers email messages.
type Sender interface {
	Send(msg Message) error
}

type smtpSender struct {
	host     string
	port     int
	from     string
	fromName string
	username string
	password string
}

// NewSMTPSender builds a Sender backed by a plain SMTP relay.
func NewSMTPSender(smtpCfg config.SMTPConfig, mailCfg config.MailConfig) Sender {
	return &smtpSender{
		host:     smtpCfg.Host,
		port:     smtpCfg.Port,
		from:     smtpCfg.From,
		fromName: mailCfg.FromName,
		username: smtpCfg.Username,
		password: smtpCfg.Password,
	}
}

func (s *smtpSender) Send(msg Message) error {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s <%s>\r\n", s.fromName, s.from)
	fmt.Fprintf(&b, "To: %s\r\n", msg.To)
	if msg.ReplyTo != "" {
		fmt.Fprintf(&b, "Reply-To: %s\r\n", msg.ReplyTo)
	}
	fmt.Fprintf(&b, "Subject: %s\r\n", msg.Subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(msg.HTML)

	addr := fmt.Sprintf("%s:%d", s.host, s.port)

	var auth smtp.Auth
	if s.username != "" {
		auth = smtp.PlainAuth("", s.username, s.password, s.host)
	}

	return smtp.SendMail(addr, auth, s.from, []string{msg.To}, []byte(b.String()))
}

var _ Sender = (*smtpSender)(nil)
