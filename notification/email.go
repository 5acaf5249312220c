package notification

import (
	"context"
	"fmt"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type mailSender interface {
	Send(email *mail.SGMailV3) (*rest.Response, error)
}

// EmailChannel mails the order owner through SendGrid.
type EmailChannel struct {
	client mailSender
	from   *mail.Email
}

func NewEmailChannel(client mailSender, fromName, fromAddress string) *EmailChannel {
	return &EmailChannel{client: client, from: mail.NewEmail(fromName, fromAddress)}
}

func NewSendGridEmail(apiKey, fromName, fromAddress string) *EmailChannel {
	return NewEmailChannel(sendgrid.NewSendClient(apiKey), fromName, fromAddress)
}

func (e *EmailChannel) Name() string { return "email" }

func (e *EmailChannel) Deliver(_ context.Context, job Job) error {
	if job.Recipient.Email == "" {
		return nil
	}
	to := mail.NewEmail(job.Recipient.Name, job.Recipient.Email)
	html := fmt.Sprintf("<p>%s</p>", job.Message.Body)
	message := mail.NewSingleEmail(e.from, job.Message.Title, to, job.Message.Body, html)

	resp, err := e.client.Send(message)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid status %d: %s", resp.StatusCode, resp.Body)
	}
	return nil
}
