// Package email implémente le port billing.EmailSender sur SMTP via gomail.
package email

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	gomail "gopkg.in/gomail.v2"

	"github.com/facturio/facturio-api/internal/application/billing"
	"github.com/facturio/facturio-api/pkg/config"
)

// GomailSender envoie les emails via un serveur SMTP configuré.
type GomailSender struct {
	dialer *gomail.Dialer
	from   string
}

// NewGomailSender construit l'expéditeur depuis la configuration SMTP.
func NewGomailSender(cfg config.SMTPConfig) *GomailSender {
	return &GomailSender{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		from:   cfg.From,
	}
}

var _ billing.EmailSender = (*GomailSender)(nil)

// Send envoie le message avec ses pièces jointes et retourne un identifiant
// de message. Les sémantiques de retry appartiennent à l'appelant.
func (g *GomailSender) Send(_ context.Context, msg billing.EmailMessage) (string, error) {
	m := gomail.NewMessage()
	m.SetHeader("From", g.from)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)

	messageID := uuid.New().String()
	m.SetHeader("Message-Id", fmt.Sprintf("<%s@facturio>", messageID))

	m.SetBody("text/plain", msg.Text)
	if msg.HTML != "" {
		m.AddAlternative("text/html", msg.HTML)
	}
	for _, att := range msg.Attachments {
		content := att.Content
		m.Attach(att.Filename,
			gomail.SetCopyFunc(func(w io.Writer) error {
				_, err := io.Copy(w, bytes.NewReader(content))
				return err
			}),
			gomail.SetHeader(map[string][]string{"Content-Type": {att.ContentType}}),
		)
	}

	if err := g.dialer.DialAndSend(m); err != nil {
		return "", fmt.Errorf("email: envoi SMTP: %w", err)
	}
	return messageID, nil
}
