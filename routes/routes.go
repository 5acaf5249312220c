package routes

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront/controllers"
	"storefront/docs"
	"storefront/middleware"
	"storefront/utils"
)

type Handlers struct {
	Users      *controllers.UserController
	Categories *controllers.CategoryController
	Products   *controllers.ProductController
	Offers     *controllers.OfferController
	Banners    *controllers.BannerController
	Orders     *controllers.OrderController
}

type Options struct {
	DocsUser     string
	DocsPassword string
}

func RegisterRoutes(r *gin.Engine, h Handlers, auth middleware.Authenticator, opts Options) {
	r.GET("/healthz", func(c *gin.Context) {
		utils.Success(c, http.StatusOK, "OK", nil)
	})

	if opts.DocsPassword != "" {
		docsGroup := r.Group("/api-docs", gin.BasicAuth(gin.Accounts{opts.DocsUser: opts.DocsPassword}))
		docsGroup.GET("/openapi.yaml", func(c *gin.Context) {
			c.Data(http.StatusOK, "application/yaml", docs.OpenAPI)
		})
	} else {
		log.Println("DOCS_PASSWORD not set, API docs disabled")
	}

	requireAuth := middleware.AuthMiddleware(auth)
	api := r.Group("/api/v1")

	user := api.Group("/user")
	{
		userID := middleware.ValidateObjectID("userId", "user")
		user.POST("/signup", h.Users.Signup)
		user.POST("/login", h.Users.Login)
		owner := middleware.RequireOwner("userId")
		user.GET("/:userId", userID, requireAuth, owner, h.Users.GetUser)
		user.PUT("/:userId", userID, requireAuth, owner, h.Users.UpdateUser)
		user.POST("/:userId/addresses", userID, requireAuth, owner, h.Users.AddAddress)
		user.POST("/:userId/avatar", userID, requireAuth, owner, h.Users.UploadAvatar)
	}

	categories := api.Group("/categories")
	{
		id := middleware.ValidateObjectID("id", "category")
		categories.POST("", requireAuth, h.Categories.Create)
		categories.GET("", h.Categories.List)
		categories.GET("/:id", id, h.Categories.Get)
		categories.PUT("/:id", id, requireAuth, h.Categories.Update)
		categories.DELETE("/:id", id, requireAuth, h.Categories.Delete)
	}

	products := api.Group("/products")
	{
		id := middleware.ValidateObjectID("id", "product")
		products.POST("", requireAuth, h.Products.Create)
		products.GET("", h.Products.List)
		products.GET("/category/:categoryId", middleware.ValidateObjectID("categoryId", "category"), h.Products.ListByCategory)
		products.GET("/:id", id, h.Products.Get)
		products.PUT("/:id", id, requireAuth, h.Products.Update)
		products.DELETE("/:id", id, requireAuth, h.Products.Delete)
	}

	banners := api.Group("/banners")
	{
		id := middleware.ValidateObjectID("id", "banner")
		banners.POST("", requireAuth, h.Banners.Create)
		banners.GET("", h.Banners.List)
		banners.GET("/active", h.Banners.ListActive)
		banners.GET("/:id", id, h.Banners.Get)
		banners.PUT("/:id", id, requireAuth, h.Banners.Update)
		banners.DELETE("/:id", id, requireAuth, h.Banners.Delete)
	}

	offers := api.Group("/offers")
	{
		id := middleware.ValidateObjectID("id", "offer")
		offers.POST("", requireAuth, h.Offers.Create)
		offers.GET("", h.Offers.List)
		offers.GET("/:id", id, h.Offers.Get)
		offers.PUT("/:id", id, requireAuth, h.Offers.Update)
		offers.DELETE("/:id", id, requireAuth, h.Offers.Delete)
	}

	orders := api.Group("/orders", requireAuth)
	{
		id := middleware.ValidateObjectID("orderId", "order")
		orders.POST("", h.Orders.Place)
		orders.GET("", h.Orders.List)
		orders.GET("/user/:userId", middleware.ValidateObjectID("userId", "user"), h.Orders.ListForUser)
		orders.GET("/:orderId", id, h.Orders.Get)
		orders.PUT("/:orderId", id, h.Orders.Update)
		orders.PUT("/:orderId/status", id, h.Orders.UpdateStatus)
		orders.DELETE("/:orderId", id, h.Orders.Delete)
	}
}
