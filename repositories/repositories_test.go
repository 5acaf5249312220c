package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"storefront/apperr"
	"storefront/models"
)

func TestUserRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("create assigns id and timestamps", func(mt *mtest.T) {
		repo := NewUserRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		user := &models.User{Name: "Asha", Email: "asha@example.com"}
		require.NoError(mt, repo.Create(context.Background(), user))
		assert.False(mt, user.ID.IsZero())
		assert.False(mt, user.CreatedAt.IsZero())
		assert.NotNil(mt, user.Addresses)
	})

	mt.Run("duplicate email is a conflict", func(mt *mtest.T) {
		repo := NewUserRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "E11000 duplicate key error collection: users index: email_1",
		}))

		err := repo.Create(context.Background(), &models.User{Name: "Asha", Email: "asha@example.com"})
		require.Error(mt, err)
		assert.Equal(mt, apperr.KindConflict, apperr.KindOf(err))
		assert.Equal(mt, "User already exists", apperr.Message(err))
	})

	mt.Run("find by email returns nil when absent", func(mt *mtest.T) {
		repo := NewUserRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "storefront.users", mtest.FirstBatch))

		user, err := repo.FindByEmail(context.Background(), "nobody@example.com")
		require.NoError(mt, err)
		assert.Nil(mt, user)
	})

	mt.Run("find by email or mobile without identifiers", func(mt *mtest.T) {
		repo := NewUserRepository(mt.DB)

		user, err := repo.FindByEmailOrMobile(context.Background(), "", "")
		require.NoError(mt, err)
		assert.Nil(mt, user)
	})
}

func TestProductRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("find by category decodes documents", func(mt *mtest.T) {
		repo := NewProductRepository(mt.DB)
		categoryID := primitive.NewObjectID()
		first := mtest.CreateCursorResponse(1, "storefront.products", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: primitive.NewObjectID()},
			{Key: "name", Value: "Kettle"},
			{Key: "price", Value: 25.0},
			{Key: "category", Value: categoryID},
		})
		done := mtest.CreateCursorResponse(0, "storefront.products", mtest.NextBatch)
		mt.AddMockResponses(first, done)

		products, err := repo.FindByCategory(context.Background(), categoryID)
		require.NoError(mt, err)
		require.Len(mt, products, 1)
		assert.Equal(mt, "Kettle", products[0].Name)
		assert.Equal(mt, categoryID, products[0].Category)
	})

	mt.Run("update returns post-update document", func(mt *mtest.T) {
		repo := NewProductRepository(mt.DB)
		id := primitive.NewObjectID()
		mt.AddMockResponses(bson.D{
			{Key: "ok", Value: 1},
			{Key: "value", Value: bson.D{
				{Key: "_id", Value: id},
				{Key: "name", Value: "Kettle"},
				{Key: "price", Value: 30.0},
			}},
		})

		price := 30.0
		product, err := repo.Update(context.Background(), id, models.ProductPatch{Price: &price})
		require.NoError(mt, err)
		require.NotNil(mt, product)
		assert.Equal(mt, 30.0, product.Price)
	})
}

func TestCategoryRepositoryDelete(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("reports whether a document was removed", func(mt *mtest.T) {
		repo := NewCategoryRepository(mt.DB)
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}),
		)

		removed, err := repo.Delete(context.Background(), primitive.NewObjectID())
		require.NoError(mt, err)
		assert.True(mt, removed)

		removed, err = repo.Delete(context.Background(), primitive.NewObjectID())
		require.NoError(mt, err)
		assert.False(mt, removed)
	})
}

func TestOrderRepositoryFindByUserEmpty(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("returns empty slice", func(mt *mtest.T) {
		repo := NewOrderRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "storefront.orders", mtest.FirstBatch))

		orders, err := repo.FindByUser(context.Background(), primitive.NewObjectID())
		require.NoError(mt, err)
		assert.NotNil(mt, orders)
		assert.Empty(mt, orders)
	})
}
