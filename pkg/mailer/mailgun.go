package mailer

import (
	"context"
	"time"

	mg "github.com/mailgun/mailgun-go/v4"
)

// Mailgun wraps Mailgun client configuration.
type Mailgun struct {
	Domain string
	APIKey string
	Sender string
}

func NewMailgun(domain, apiKey, sender string) *Mailgun {
	return &Mailgun{Domain: domain, APIKey: apiKey, Sender: sender}
}

// Send renders the job (when it carries a template name) and delivers it.
func (m *Mailgun) Send(ctx context.Context, job EmailJob) error {
	subject, html, err := Render(job)
	if err != nil {
		return err
	}
	return m.Deliver(ctx, job.To, subject, html)
}

// Deliver sends an already-rendered message via Mailgun.
func (m *Mailgun) Deliver(ctx context.Context, to, subject, html string) error {
	client := mg.NewMailgun(m.Domain, m.APIKey)
	msg := client.NewMessage(m.Sender, subject, "", to)
	if html != "" {
		msg.SetHtml(html)
	}
	c, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	_, _, err := client.Send(c, msg)
	return err
}
