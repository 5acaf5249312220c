package notification

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

type fcmSender interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

// PushChannel sends to the device token registered on the user.
type PushChannel struct {
	client fcmSender
}

func NewPushChannel(client fcmSender) *PushChannel {
	return &PushChannel{client: client}
}

// NewFirebasePush builds a push channel from a service account file.
func NewFirebasePush(ctx context.Context, credentialsFile, projectID string) (*PushChannel, error) {
	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: projectID}, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, fmt.Errorf("init firebase app: %w", err)
	}
	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("init firebase messaging: %w", err)
	}
	return NewPushChannel(client), nil
}

func (p *PushChannel) Name() string { return "push" }

func (p *PushChannel) Deliver(ctx context.Context, job Job) error {
	if job.Recipient.DeviceToken == "" {
		return nil
	}
	_, err := p.client.Send(ctx, &messaging.Message{
		Token: job.Recipient.DeviceToken,
		Notification: &messaging.Notification{
			Title: job.Message.Title,
			Body:  job.Message.Body,
		},
		Data: map[string]string{
			"orderId":      job.OrderID,
			"status":       job.Status,
			"click_action": "FLUTTER_NOTIFICATION_CLICK",
		},
	})
	return err
}
