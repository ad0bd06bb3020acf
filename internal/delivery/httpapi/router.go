package httpapi

import (
	"net/http"

	"github.com/brasalia01/aloomia-ecommerce-hub-sub000/internal/delivery/httpapi/handlers"
	"github.com/brasalia01/aloomia-ecommerce-hub-sub000/internal/delivery/httpapi/middleware"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type RouterDeps struct {
	JWTSecret string

	Orders   *handlers.OrderHandler
	Payments *handlers.PaymentHandler
	Catalog  *handlers.CatalogHandler
	Reviews  *handlers.ReviewHandler
	Chats    *handlers.ChatHandler
	Store    *handlers.StoreHandler
}

// NewRouter wires the full HTTP surface: public catalog endpoints,
// authenticated customer endpoints, and the admin group.
func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORS())
	router.Use(middleware.Prometheus())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api/v1")

	public := api.Group("")
	public.Use(middleware.OptionalAuth(deps.JWTSecret))
	{
		public.GET("/products", deps.Catalog.ListProducts)
		public.GET("/products/:id", deps.Catalog.GetProduct)
		public.GET("/products/:id/reviews", deps.Reviews.ListForProduct)
		public.GET("/categories", deps.Catalog.ListCategories)
		public.POST("/newsletter/subscribe", deps.Store.Subscribe)
	}

	authed := api.Group("")
	authed.Use(middleware.RequireAuth(deps.JWTSecret))
	{
		authed.GET("/profile", deps.Store.GetProfile)

		authed.POST("/orders", deps.Orders.Create)
		authed.GET("/orders", deps.Orders.ListMine)
		authed.GET("/orders/:id", deps.Orders.Get)
		authed.GET("/orders/:id/payments", deps.Payments.ListOrderPayments)

		authed.POST("/payments/initiate", deps.Payments.Initiate)

		authed.POST("/reviews", deps.Reviews.Submit)

		authed.POST("/chats", deps.Chats.Open)
		authed.GET("/chats/:id/messages", deps.Chats.ListMessages)
		authed.POST("/chats/:id/messages", deps.Chats.PostMessage)

		authed.GET("/notifications", deps.Store.ListNotifications)
		authed.POST("/notifications/:id/read", deps.Store.MarkNotificationRead)
	}

	admin := api.Group("/admin")
	admin.Use(middleware.RequireAuth(deps.JWTSecret), middleware.RequireAdmin())
	{
		admin.GET("/orders", deps.Orders.ListAll)
		admin.POST("/orders/:id/transition", deps.Orders.Transition)

		admin.GET("/payments/:id", deps.Payments.GetPayment)
		admin.POST("/payments/:id/confirm", deps.Payments.Confirm)
		admin.POST("/payments/:id/fail", deps.Payments.Fail)
		admin.GET("/receivers", deps.Payments.ListReceivers)
		admin.POST("/receivers", deps.Payments.SaveReceiver)

		admin.POST("/products", deps.Catalog.CreateProduct)
		admin.PUT("/products/:id", deps.Catalog.UpdateProduct)
		admin.DELETE("/products/:id", deps.Catalog.DeleteProduct)
		admin.POST("/products/:id/variants", deps.Catalog.AddVariant)
		admin.POST("/categories", deps.Catalog.CreateCategory)
		admin.PUT("/categories/:id", deps.Catalog.UpdateCategory)
		admin.DELETE("/categories/:id", deps.Catalog.DeleteCategory)

		admin.GET("/reviews/pending", deps.Reviews.ListPending)
		admin.POST("/reviews/:id/moderate", deps.Reviews.Moderate)

		admin.GET("/chats", deps.Chats.ListChats)
		admin.POST("/chats/:id/reply", deps.Chats.AdminReply)
		admin.POST("/chats/:id/close", deps.Chats.Close)

		admin.GET("/users", deps.Store.ListUsers)
		admin.POST("/users/:id/role", deps.Store.ChangeRole)
		admin.GET("/newsletter/subscribers", deps.Store.ListSubscribers)
		admin.GET("/analytics/summary", deps.Store.AnalyticsSummary)
	}

	return router
}
