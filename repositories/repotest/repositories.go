package repotest

import (
	"context"
	"errors"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"storefront/apperr"
	"storefront/models"
)

type Users struct{ s *store[models.User] }

func NewUsers() *Users {
	return &Users{newStore(func(u *models.User) primitive.ObjectID { return u.ID })}
}

func (r *Users) Create(_ context.Context, user *models.User) error {
	if user.Email != "" {
		if found := r.s.filter(func(u *models.User) bool { return u.Email == user.Email }); len(found) > 0 {
			return apperr.Wrap(apperr.KindConflict, "User already exists", errors.New("duplicate email"))
		}
	}
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	now := time.Now()
	user.CreatedAt, user.UpdatedAt = now, now
	if user.Addresses == nil {
		user.Addresses = []models.Address{}
	}
	r.s.put(user)
	return nil
}

func (r *Users) FindByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	return r.s.get(id), nil
}

func (r *Users) FindByIDs(_ context.Context, ids []primitive.ObjectID) ([]models.User, error) {
	return r.s.byIDs(ids), nil
}

func (r *Users) FindByEmail(_ context.Context, email string) (*models.User, error) {
	return first(r.s.filter(func(u *models.User) bool { return u.Email == email })), nil
}

func (r *Users) FindByEmailOrMobile(_ context.Context, email, mobile string) (*models.User, error) {
	if email == "" && mobile == "" {
		return nil, nil
	}
	return first(r.s.filter(func(u *models.User) bool {
		return (email != "" && u.Email == email) || (mobile != "" && u.Mobile == mobile)
	})), nil
}

func (r *Users) Update(_ context.Context, id primitive.ObjectID, patch models.UserPatch) (*models.User, error) {
	set := patch.Fields()
	set["updatedAt"] = time.Now()
	return r.s.update(id, set)
}

func (r *Users) AddAddress(_ context.Context, id primitive.ObjectID, addr models.Address) (*models.User, error) {
	return r.s.mutate(id, func(u *models.User) {
		u.Addresses = append(u.Addresses, addr)
		u.UpdatedAt = time.Now()
	}), nil
}

type Categories struct{ s *store[models.Category] }

func NewCategories() *Categories {
	return &Categories{newStore(func(c *models.Category) primitive.ObjectID { return c.ID })}
}

func (r *Categories) Create(_ context.Context, c *models.Category) error {
	if c.ID.IsZero() {
		c.ID = primitive.NewObjectID()
	}
	now := time.Now()
	c.CreatedAt, c.UpdatedAt = now, now
	r.s.put(c)
	return nil
}

func (r *Categories) FindAll(context.Context) ([]models.Category, error) { return r.s.filter(nil), nil }

func (r *Categories) FindByID(_ context.Context, id primitive.ObjectID) (*models.Category, error) {
	return r.s.get(id), nil
}

func (r *Categories) FindByIDs(_ context.Context, ids []primitive.ObjectID) ([]models.Category, error) {
	return r.s.byIDs(ids), nil
}

func (r *Categories) FindByName(_ context.Context, name string) (*models.Category, error) {
	return first(r.s.filter(func(c *models.Category) bool { return c.Name == name })), nil
}

func (r *Categories) Update(_ context.Context, id primitive.ObjectID, patch models.CategoryPatch) (*models.Category, error) {
	set := patch.Fields()
	set["updatedAt"] = time.Now()
	return r.s.update(id, set)
}

func (r *Categories) Delete(_ context.Context, id primitive.ObjectID) (bool, error) {
	return r.s.remove(id), nil
}

type Products struct{ s *store[models.Product] }

func NewProducts() *Products {
	return &Products{newStore(func(p *models.Product) primitive.ObjectID { return p.ID })}
}

func (r *Products) Create(_ context.Context, p *models.Product) error {
	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	now := time.Now()
	p.CreatedAt, p.UpdatedAt = now, now
	if p.Images == nil {
		p.Images = []string{}
	}
	r.s.put(p)
	return nil
}

func (r *Products) FindAll(context.Context) ([]models.Product, error) { return r.s.filter(nil), nil }

func (r *Products) FindByID(_ context.Context, id primitive.ObjectID) (*models.Product, error) {
	return r.s.get(id), nil
}

func (r *Products) FindByIDs(_ context.Context, ids []primitive.ObjectID) ([]models.Product, error) {
	return r.s.byIDs(ids), nil
}

func (r *Products) FindByCategory(_ context.Context, categoryID primitive.ObjectID) ([]models.Product, error) {
	return r.s.filter(func(p *models.Product) bool { return p.Category == categoryID }), nil
}

func (r *Products) Update(_ context.Context, id primitive.ObjectID, patch models.ProductPatch) (*models.Product, error) {
	set, err := patch.Fields()
	if err != nil {
		return nil, apperr.Wrap(apperr.KindValidation, "Invalid product update", err)
	}
	set["updatedAt"] = time.Now()
	return r.s.update(id, set)
}

func (r *Products) Delete(_ context.Context, id primitive.ObjectID) (bool, error) {
	return r.s.remove(id), nil
}

type Offers struct{ s *store[models.Offer] }

func NewOffers() *Offers {
	return &Offers{newStore(func(o *models.Offer) primitive.ObjectID { return o.ID })}
}

func (r *Offers) Create(_ context.Context, o *models.Offer) error {
	if o.ID.IsZero() {
		o.ID = primitive.NewObjectID()
	}
	if o.Products == nil {
		o.Products = []primitive.ObjectID{}
	}
	r.s.put(o)
	return nil
}

func (r *Offers) FindAll(context.Context) ([]models.Offer, error) { return r.s.filter(nil), nil }

func (r *Offers) FindByID(_ context.Context, id primitive.ObjectID) (*models.Offer, error) {
	return r.s.get(id), nil
}

func (r *Offers) FindByIDs(_ context.Context, ids []primitive.ObjectID) ([]models.Offer, error) {
	return r.s.byIDs(ids), nil
}

func (r *Offers) Update(_ context.Context, id primitive.ObjectID, patch models.OfferPatch) (*models.Offer, error) {
	set, err := patch.Fields()
	if err != nil {
		return nil, apperr.Wrap(apperr.KindValidation, "Invalid offer update", err)
	}
	return r.s.update(id, set)
}

func (r *Offers) Delete(_ context.Context, id primitive.ObjectID) (bool, error) {
	return r.s.remove(id), nil
}

type Banners struct{ s *store[models.Banner] }

func NewBanners() *Banners {
	return &Banners{newStore(func(b *models.Banner) primitive.ObjectID { return b.ID })}
}

func (r *Banners) Create(_ context.Context, b *models.Banner) error {
	if b.ID.IsZero() {
		b.ID = primitive.NewObjectID()
	}
	now := time.Now()
	b.CreatedAt, b.UpdatedAt = now, now
	r.s.put(b)
	return nil
}

func (r *Banners) FindAll(context.Context) ([]models.Banner, error) { return r.s.filter(nil), nil }

func (r *Banners) FindActive(context.Context) ([]models.Banner, error) {
	return r.s.filter(func(b *models.Banner) bool { return b.IsActive }), nil
}

func (r *Banners) FindByID(_ context.Context, id primitive.ObjectID) (*models.Banner, error) {
	return r.s.get(id), nil
}

func (r *Banners) Update(_ context.Context, id primitive.ObjectID, patch models.BannerPatch) (*models.Banner, error) {
	set, err := patch.Fields()
	if err != nil {
		return nil, apperr.Wrap(apperr.KindValidation, "Invalid banner update", err)
	}
	set["updatedAt"] = time.Now()
	return r.s.update(id, set)
}

func (r *Banners) Delete(_ context.Context, id primitive.ObjectID) (bool, error) {
	return r.s.remove(id), nil
}

type Orders struct{ s *store[models.Order] }

func NewOrders() *Orders {
	return &Orders{newStore(func(o *models.Order) primitive.ObjectID { return o.ID })}
}

func (r *Orders) Create(_ context.Context, o *models.Order) error {
	if o.ID.IsZero() {
		o.ID = primitive.NewObjectID()
	}
	now := time.Now()
	o.CreatedAt, o.UpdatedAt = now, now
	r.s.put(o)
	return nil
}

func (r *Orders) FindAll(context.Context) ([]models.Order, error) {
	return newestFirst(r.s.filter(nil)), nil
}

func (r *Orders) FindByID(_ context.Context, id primitive.ObjectID) (*models.Order, error) {
	return r.s.get(id), nil
}

func (r *Orders) FindByUser(_ context.Context, userID primitive.ObjectID) ([]models.Order, error) {
	return newestFirst(r.s.filter(func(o *models.Order) bool {
		return o.UserID != nil && *o.UserID == userID
	})), nil
}

func (r *Orders) Update(_ context.Context, id primitive.ObjectID, patch models.OrderPatch) (*models.Order, error) {
	set := patch.Fields()
	set["updatedAt"] = time.Now()
	return r.s.update(id, set)
}

func (r *Orders) Delete(_ context.Context, id primitive.ObjectID) (bool, error) {
	return r.s.remove(id), nil
}

// newestFirst sorts by creation time, falling back to insertion order for
// orders created within the same instant.
func newestFirst(orders []models.Order) []models.Order {
	for i, j := 0, len(orders)-1; i < j; i, j = i+1, j-1 {
		orders[i], orders[j] = orders[j], orders[i]
	}
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	return orders
}

func first[T any](docs []T) *T {
	if len(docs) == 0 {
		return nil
	}
	return &docs[0]
}
