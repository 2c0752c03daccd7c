package mailer

import (
	"context"

	"github.com/devoverflow/backend/pkg/helpers"
	"github.com/devoverflow/backend/pkg/mailer/templates"
)

// Sender delivers an email job to a recipient. A delivery failure is
// terminal for the triggering request; callers do not retry.
type Sender interface {
	Send(ctx context.Context, job EmailJob) error
}

// QueueSender publishes email jobs to RabbitMQ for the email worker to
// render and deliver. A publish failure counts as a delivery failure.
type QueueSender struct {
	Pub *helpers.RabbitPublisher
}

func NewQueueSender(pub *helpers.RabbitPublisher) *QueueSender {
	return &QueueSender{Pub: pub}
}

func (s *QueueSender) Send(ctx context.Context, job EmailJob) error {
	return s.Pub.PublishJSON(ctx, job)
}

// Render resolves a job to a concrete subject and HTML body. Jobs carrying
// a template name are rendered here; jobs with a pre-built body pass
// through unchanged.
func Render(job EmailJob) (subject, html string, err error) {
	subject, html = job.Subject, job.HTML
	if job.Template == "" {
		return subject, html, nil
	}
	html, err = templates.RenderHTML(job.Template, job.Data)
	if err != nil {
		return "", "", err
	}
	if subject == "" {
		subject = templates.SubjectFor(job.Template)
	}
	return subject, html, nil
}

var (
	_ Sender = (*QueueSender)(nil)
	_ Sender = (*Mailgun)(nil)
)
