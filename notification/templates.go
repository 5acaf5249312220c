package notification

import (
	"fmt"

	"storefront/models"
)

type Message struct {
	Title string
	Body  string
}

// PlacedMessage is sent once an order has been persisted.
func PlacedMessage(orderID string) Message {
	return Message{
		Title: "Order placed",
		Body:  fmt.Sprintf("Your order #%s has been placed successfully.", orderID),
	}
}

// StatusMessage matches status exactly against the known labels. Anything
// else gets the generic body.
func StatusMessage(orderID, status string) Message {
	switch status {
	case models.StatusPending:
		return Message{"Order pending", fmt.Sprintf("Your order #%s is pending confirmation.", orderID)}
	case models.StatusProcessing:
		return Message{"Order processing", fmt.Sprintf("Your order #%s is being processed.", orderID)}
	case models.StatusShipped:
		return Message{"Order shipped", fmt.Sprintf("Good news! Your order #%s has been shipped.", orderID)}
	case models.StatusDelivered:
		return Message{"Order delivered", fmt.Sprintf("Your order #%s has been delivered.", orderID)}
	case models.StatusCancelled:
		return Message{"Order cancelled", fmt.Sprintf("Your order #%s has been cancelled.", orderID)}
	default:
		return Message{"Order updated", fmt.Sprintf("Your order #%s status updated to %s.", orderID, status)}
	}
}
