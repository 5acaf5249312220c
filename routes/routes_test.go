package routes

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"storefront/controllers"
	"storefront/middleware"
	"storefront/notification"
	"storefront/repositories/repotest"
	"storefront/services"
)

type queue struct{ jobs []notification.Job }

func (q *queue) Enqueue(job notification.Job) bool {
	q.jobs = append(q.jobs, job)
	return true
}

type testServer struct {
	engine *gin.Engine
	queue  *queue
	token  string
	userID string
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	users := repotest.NewUsers()
	categories := repotest.NewCategories()
	products := repotest.NewProducts()
	offers := repotest.NewOffers()
	banners := repotest.NewBanners()
	orders := repotest.NewOrders()
	q := &queue{}

	userSvc := services.NewUserService(users, nil, "route-secret", time.Hour)
	h := Handlers{
		Users:      controllers.NewUserController(userSvc, 1),
		Categories: controllers.NewCategoryController(services.NewCategoryService(categories)),
		Products:   controllers.NewProductController(services.NewProductService(products, categories, offers, nil), 1),
		Offers:     controllers.NewOfferController(services.NewOfferService(offers, products, nil)),
		Banners:    controllers.NewBannerController(services.NewBannerService(banners, offers, nil)),
		Orders:     controllers.NewOrderController(services.NewOrderService(orders, users, products, q, nil)),
	}

	r := gin.New()
	r.Use(middleware.ErrorHandler(), middleware.CustomRecovery())
	RegisterRoutes(r, h, userSvc, Options{DocsUser: "admin", DocsPassword: "docs"})

	s := &testServer{engine: r, queue: q}
	s.signupAndLogin(t)
	return s
}

type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (s *testServer) do(t *testing.T, method, path string, body any) (int, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	}
	return w.Code, env
}

func (s *testServer) signupAndLogin(t *testing.T) {
	code, env := s.do(t, http.MethodPost, "/api/v1/user/signup", map[string]any{
		"name":     "Asha",
		"email":    "asha@example.com",
		"password": "secret1",
		"dob":      "1995-04-02T00:00:00Z",
	})
	require.Equal(t, http.StatusCreated, code, env.Message)

	code, env = s.do(t, http.MethodPost, "/api/v1/user/login", map[string]string{
		"email":    "asha@example.com",
		"password": "secret1",
	})
	require.Equal(t, http.StatusOK, code, env.Message)

	var data struct {
		Token string `json:"token"`
		User  struct {
			ID string `json:"id"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	s.token = data.Token
	s.userID = data.User.ID
}

func TestCatalogFlow(t *testing.T) {
	s := newTestServer(t)

	code, env := s.do(t, http.MethodPost, "/api/v1/categories", map[string]string{"name": "Kitchen"})
	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, "success", env.Status)
	var category struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &category))

	code, env = s.do(t, http.MethodPost, "/api/v1/products", map[string]any{
		"name":        "Kettle",
		"description": "1.5L steel",
		"price":       25,
		"stock":       4,
		"category":    category.ID,
	})
	require.Equal(t, http.StatusCreated, code, env.Message)
	var product struct {
		ID       string `json:"id"`
		Category struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"category"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &product))
	assert.Equal(t, category.ID, product.Category.ID)
	assert.Equal(t, "Kitchen", product.Category.Name)

	code, env = s.do(t, http.MethodGet, "/api/v1/products/category/"+category.ID, nil)
	require.Equal(t, http.StatusOK, code)
	var listed []struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, product.ID, listed[0].ID)
}

func TestProductWithUnknownCategoryIsCreated(t *testing.T) {
	s := newTestServer(t)

	code, env := s.do(t, http.MethodPost, "/api/v1/products", map[string]any{
		"name":        "Kettle",
		"description": "1.5L steel",
		"price":       25,
		"category":    primitive.NewObjectID().Hex(),
	})
	require.Equal(t, http.StatusCreated, code, env.Message)
	assert.Contains(t, string(env.Data), `"category":null`)
}

func TestDuplicateSignupAndWrongPassword(t *testing.T) {
	s := newTestServer(t)

	code, env := s.do(t, http.MethodPost, "/api/v1/user/signup", map[string]any{
		"name":     "Other",
		"email":    "asha@example.com",
		"password": "secret2",
		"dob":      "1990-01-01T00:00:00Z",
	})
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "error", env.Status)

	code, env = s.do(t, http.MethodPost, "/api/v1/user/login", map[string]string{
		"email":    "asha@example.com",
		"password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "Invalid credentials", env.Message)
}

func TestDeleteMissingReturns404(t *testing.T) {
	s := newTestServer(t)
	id := primitive.NewObjectID().Hex()

	for _, path := range []string{
		"/api/v1/categories/" + id,
		"/api/v1/products/" + id,
		"/api/v1/offers/" + id,
		"/api/v1/banners/" + id,
		"/api/v1/orders/" + id,
	} {
		code, env := s.do(t, http.MethodDelete, path, nil)
		assert.Equal(t, http.StatusNotFound, code, path)
		assert.Equal(t, "error", env.Status, path)
	}
}

func TestInvalidIDAndMissingToken(t *testing.T) {
	s := newTestServer(t)

	code, env := s.do(t, http.MethodGet, "/api/v1/products/not-an-id", nil)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Invalid product ID format", env.Message)

	s.token = ""
	code, _ = s.do(t, http.MethodGet, "/api/v1/orders", nil)
	assert.Equal(t, http.StatusUnauthorized, code)

	code, _ = s.do(t, http.MethodGet, "/api/v1/categories", nil)
	assert.Equal(t, http.StatusOK, code)
}

func TestOrderStatusLifecycle(t *testing.T) {
	s := newTestServer(t)

	code, env := s.do(t, http.MethodPost, "/api/v1/orders", map[string]any{
		"items": []map[string]any{{"product": primitive.NewObjectID().Hex(), "quantity": 2, "priceAtPurchase": 10}},
	})
	require.Equal(t, http.StatusCreated, code, env.Message)
	var order struct {
		ID          string  `json:"id"`
		UserID      string  `json:"userId"`
		Status      string  `json:"status"`
		TotalAmount float64 `json:"totalAmount"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &order))
	assert.Equal(t, s.userID, order.UserID)
	assert.Equal(t, "Pending", order.Status)
	assert.Equal(t, 20.0, order.TotalAmount)

	code, env = s.do(t, http.MethodPut, "/api/v1/orders/"+order.ID+"/status", map[string]string{"status": "Teleported"})
	require.Equal(t, http.StatusOK, code, env.Message)
	assert.Contains(t, string(env.Data), `"status":"Teleported"`)

	require.Len(t, s.queue.jobs, 2)
	assert.Contains(t, s.queue.jobs[1].Message.Body, "status updated to Teleported")

	code, env = s.do(t, http.MethodGet, "/api/v1/orders/user/"+s.userID, nil)
	require.Equal(t, http.StatusOK, code)
	var mine []map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &mine))
	assert.Len(t, mine, 1)
}

func TestUserRoutesOnlyServeTheirOwner(t *testing.T) {
	s := newTestServer(t)
	victim := s.userID

	code, env := s.do(t, http.MethodPost, "/api/v1/user/signup", map[string]any{
		"name":     "Ravi",
		"email":    "ravi@example.com",
		"password": "secret2",
		"dob":      "1990-01-01T00:00:00Z",
	})
	require.Equal(t, http.StatusCreated, code, env.Message)
	code, env = s.do(t, http.MethodPost, "/api/v1/user/login", map[string]string{
		"email":    "ravi@example.com",
		"password": "secret2",
	})
	require.Equal(t, http.StatusOK, code, env.Message)
	var login struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &login))
	s.token = login.Token

	code, env = s.do(t, http.MethodPut, "/api/v1/user/"+victim, map[string]string{"password": "hijacked"})
	assert.Equal(t, http.StatusForbidden, code)
	assert.Equal(t, "Access denied", env.Message)

	code, _ = s.do(t, http.MethodGet, "/api/v1/user/"+victim, nil)
	assert.Equal(t, http.StatusForbidden, code)

	code, _ = s.do(t, http.MethodPost, "/api/v1/user/login", map[string]string{
		"email":    "asha@example.com",
		"password": "secret1",
	})
	assert.Equal(t, http.StatusOK, code)
}

func TestProductUpdateClearsOfferOverHTTP(t *testing.T) {
	s := newTestServer(t)

	start := time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC)
	code, env := s.do(t, http.MethodPost, "/api/v1/offers", map[string]any{
		"name":               "Diwali",
		"discountPercentage": 15,
		"startDate":          start,
		"endDate":            start.Add(72 * time.Hour),
	})
	require.Equal(t, http.StatusCreated, code, env.Message)
	var offer struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &offer))

	code, env = s.do(t, http.MethodPost, "/api/v1/products", map[string]any{
		"name":        "Tee",
		"description": "Cotton",
		"price":       10,
		"category":    primitive.NewObjectID().Hex(),
		"offerId":     offer.ID,
	})
	require.Equal(t, http.StatusCreated, code, env.Message)
	var product struct {
		ID      string `json:"id"`
		OfferID string `json:"offerId"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &product))
	require.Equal(t, offer.ID, product.OfferID)

	code, env = s.do(t, http.MethodPut, "/api/v1/products/"+product.ID, map[string]string{"offerId": ""})
	require.Equal(t, http.StatusOK, code, env.Message)
	assert.NotContains(t, string(env.Data), `"offerId"`)
	assert.NotContains(t, string(env.Data), `"offer"`)
}

func TestAvatarTooLarge(t *testing.T) {
	s := newTestServer(t)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("image", "big.jpg")
	require.NoError(t, err)
	_, err = fw.Write(bytes.Repeat([]byte{0xAB}, (1<<20)+1))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/user/"+s.userID+"/avatar", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+s.token)
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	assert.Contains(t, w.Body.String(), "File size too large. Maximum size is 1MB")
}

func TestHealthAndDocs(t *testing.T) {
	s := newTestServer(t)

	code, env := s.do(t, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "success", env.Status)

	req := httptest.NewRequest(http.MethodGet, "/api-docs/openapi.yaml", nil)
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req.SetBasicAuth("admin", "docs")
	w = httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "openapi: 3.0.3")
}
