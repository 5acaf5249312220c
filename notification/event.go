package notification

import (
	"context"

	"storefront/events"
)

type envelopePublisher interface {
	PublishEnvelope(env events.Envelope) error
}

// EventChannel publishes every job as an order event for downstream consumers.
type EventChannel struct {
	producer envelopePublisher
}

func NewEventChannel(producer envelopePublisher) *EventChannel {
	return &EventChannel{producer: producer}
}

func (e *EventChannel) Name() string { return "kafka" }

func (e *EventChannel) Deliver(_ context.Context, job Job) error {
	eventType := events.EventOrderStatusChanged
	if job.Event == EventPlaced {
		eventType = events.EventOrderPlaced
	}
	env, err := events.NewEnvelope(eventType, job.OrderID, events.OrderPayload{
		OrderID:       job.OrderID,
		UserID:        job.UserID,
		Status:        job.Status,
		PaymentStatus: job.PaymentStatus,
		TotalAmount:   job.TotalAmount,
		Title:         job.Message.Title,
		Body:          job.Message.Body,
	})
	if err != nil {
		return err
	}
	return e.producer.PublishEnvelope(env)
}
