package services

import (
	"context"
	"log"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"storefront/apperr"
	"storefront/models"
	"storefront/notification"
)

type OrderService struct {
	orders   OrderRepository
	users    UserRepository
	products ProductRepository
	notifier Notifier
	store    ObjectStore
}

func NewOrderService(orders OrderRepository, users UserRepository, products ProductRepository, notifier Notifier, store ObjectStore) *OrderService {
	return &OrderService{orders: orders, users: users, products: products, notifier: notifier, store: store}
}

// Place persists the order and then queues the "placed" notification. The
// owner defaults to current when the input names none. A zero total is
// computed from the line items.
func (s *OrderService) Place(ctx context.Context, in models.OrderInput, current *models.User) (*models.OrderDetail, error) {
	if err := models.Validate(in); err != nil {
		return nil, err
	}

	order := &models.Order{
		ShippingAddress: in.ShippingAddress,
		Status:          in.Status,
		PaymentStatus:   in.PaymentStatus,
		TotalAmount:     in.TotalAmount,
	}
	if order.Status == "" {
		order.Status = models.StatusPending
	}
	if order.PaymentStatus == "" {
		order.PaymentStatus = models.PaymentPending
	}

	switch {
	case in.UserID != "":
		userID, err := primitive.ObjectIDFromHex(in.UserID)
		if err != nil {
			return nil, apperr.Validation("userId must be a valid id")
		}
		order.UserID = &userID
	case current != nil:
		userID := current.ID
		order.UserID = &userID
	}

	var total float64
	for _, item := range in.Items {
		productID, err := primitive.ObjectIDFromHex(item.Product)
		if err != nil {
			return nil, apperr.Validation("product must be a valid id")
		}
		order.Items = append(order.Items, models.OrderItem{
			Product:         productID,
			SizeLabel:       item.SizeLabel,
			Quantity:        item.Quantity,
			PriceAtPurchase: item.PriceAtPurchase,
		})
		total += item.PriceAtPurchase * float64(item.Quantity)
	}
	if order.TotalAmount == 0 {
		order.TotalAmount = total
	}

	if err := s.orders.Create(ctx, order); err != nil {
		return nil, err
	}
	s.notify(ctx, order, notification.EventPlaced, notification.PlacedMessage(order.ID.Hex()))

	details, err := s.populate(ctx, []models.Order{*order})
	if err != nil {
		return nil, err
	}
	return &details[0], nil
}

func (s *OrderService) List(ctx context.Context) ([]models.OrderDetail, error) {
	orders, err := s.orders.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return s.populate(ctx, orders)
}

func (s *OrderService) ListForUser(ctx context.Context, userID primitive.ObjectID) ([]models.OrderDetail, error) {
	orders, err := s.orders.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.populate(ctx, orders)
}

func (s *OrderService) Get(ctx context.Context, id primitive.ObjectID) (*models.OrderDetail, error) {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperr.NotFound("Order not found")
	}
	details, err := s.populate(ctx, []models.Order{*order})
	if err != nil {
		return nil, err
	}
	return &details[0], nil
}

// Update persists the patch. When it carries a status, a status-specific
// notification is queued after the write.
func (s *OrderService) Update(ctx context.Context, id primitive.ObjectID, patch models.OrderPatch) (*models.OrderDetail, error) {
	if err := models.Validate(patch); err != nil {
		return nil, err
	}
	order, err := s.orders.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperr.NotFound("Order not found")
	}
	if patch.Status != nil {
		s.notify(ctx, order, notification.EventStatusChanged, notification.StatusMessage(order.ID.Hex(), order.Status))
	}

	details, err := s.populate(ctx, []models.Order{*order})
	if err != nil {
		return nil, err
	}
	return &details[0], nil
}

func (s *OrderService) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) (*models.OrderDetail, error) {
	status = strings.TrimSpace(status)
	if status == "" {
		return nil, apperr.Validation("status is required")
	}
	return s.Update(ctx, id, models.OrderPatch{Status: &status})
}

func (s *OrderService) Delete(ctx context.Context, id primitive.ObjectID) error {
	removed, err := s.orders.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return apperr.NotFound("Order not found")
	}
	return nil
}

// notify never fails the caller: the order is already persisted.
func (s *OrderService) notify(ctx context.Context, order *models.Order, event string, msg notification.Message) {
	if s.notifier == nil {
		return
	}
	job := notification.Job{
		OrderID:       order.ID.Hex(),
		Event:         event,
		Status:        order.Status,
		PaymentStatus: order.PaymentStatus,
		TotalAmount:   order.TotalAmount,
		UpdatedAt:     order.UpdatedAt,
		Message:       msg,
	}
	if order.UserID != nil {
		job.UserID = order.UserID.Hex()
		user, err := s.users.FindByID(ctx, *order.UserID)
		if err != nil {
			log.Printf("notification recipient lookup for order %s: %v", job.OrderID, err)
		} else if user != nil {
			job.Recipient = notification.Recipient{Name: user.Name, Email: user.Email, DeviceToken: user.FCMToken}
		}
	}
	s.notifier.Enqueue(job)
}

// populate expands the owner and the product of every line item.
func (s *OrderService) populate(ctx context.Context, orders []models.Order) ([]models.OrderDetail, error) {
	var userIDs, productIDs []primitive.ObjectID
	for _, o := range orders {
		if o.UserID != nil {
			userIDs = append(userIDs, *o.UserID)
		}
		for _, item := range o.Items {
			productIDs = append(productIDs, item.Product)
		}
	}

	users, err := s.users.FindByIDs(ctx, userIDs)
	if err != nil {
		return nil, err
	}
	products, err := s.products.FindByIDs(ctx, productIDs)
	if err != nil {
		return nil, err
	}
	userByID := byID(users, func(u *models.User) primitive.ObjectID { return u.ID })
	productByID := byID(products, func(p *models.Product) primitive.ObjectID { return p.ID })

	summaries := make(map[primitive.ObjectID]*models.ProductSummary, len(productByID))
	for id, p := range productByID {
		summaries[id] = &models.ProductSummary{
			ID:     p.ID,
			Name:   p.Name,
			Price:  p.Price,
			Images: presignAll(ctx, s.store, p.Images),
		}
	}

	out := make([]models.OrderDetail, 0, len(orders))
	for _, o := range orders {
		d := models.OrderDetail{Order: o, Items: make([]models.OrderItemDetail, 0, len(o.Items))}
		if o.UserID != nil {
			if u := userByID[*o.UserID]; u != nil {
				d.User = u.Summary()
			}
		}
		for _, item := range o.Items {
			d.Items = append(d.Items, models.OrderItemDetail{OrderItem: item, Product: summaries[item.Product]})
		}
		out = append(out, d)
	}
	return out, nil
}
