// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"pricefield/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler         *handler.UserHandler
	ShopHandler         *handler.ShopHandler
	ProductHandler      *handler.ProductHandler
	PriceHandler        *handler.PriceHandler
	ComparisonHandler   *handler.ComparisonHandler
	SubscriptionHandler *handler.SubscriptionHandler
	PaymentHandler      *handler.PaymentHandler
	FavoriteHandler     *handler.FavoriteHandler
	SearchHandler       *handler.SearchHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler         *handler.UserHandler
	shopHandler         *handler.ShopHandler
	productHandler      *handler.ProductHandler
	priceHandler        *handler.PriceHandler
	comparisonHandler   *handler.ComparisonHandler
	subscriptionHandler *handler.SubscriptionHandler
	paymentHandler      *handler.PaymentHandler
	favoriteHandler     *handler.FavoriteHandler
	searchHandler       *handler.SearchHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:         params.UserHandler,
		shopHandler:         params.ShopHandler,
		productHandler:      params.ProductHandler,
		priceHandler:        params.PriceHandler,
		comparisonHandler:   params.ComparisonHandler,
		subscriptionHandler: params.SubscriptionHandler,
		paymentHandler:      params.PaymentHandler,
		favoriteHandler:     params.FavoriteHandler,
		searchHandler:       params.SearchHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// User routes, including per-user favorites, subscriptions and payments
	userGroup := e.Group("/users")
	{
		userGroup.POST("", r.userHandler.Register)
		userGroup.GET("", r.userHandler.List)
		userGroup.GET("/:userId", r.userHandler.Get)
		userGroup.PATCH("/:userId", r.userHandler.Update)
		userGroup.DELETE("/:userId", r.userHandler.Delete)
		userGroup.GET("/:userId/shop", r.shopHandler.GetByOwner)

		userGroup.POST("/:userId/favorites", r.favoriteHandler.Add)
		userGroup.GET("/:userId/favorites", r.favoriteHandler.List)
		userGroup.DELETE("/:userId/favorites/:type/:itemId", r.favoriteHandler.Remove)

		userGroup.POST("/:userId/subscriptions", r.subscriptionHandler.Subscribe)
		userGroup.GET("/:userId/subscriptions", r.subscriptionHandler.List)
		userGroup.GET("/:userId/subscriptions/active", r.subscriptionHandler.GetActive)
		userGroup.DELETE("/:userId/subscriptions/active", r.subscriptionHandler.Cancel)

		userGroup.GET("/:userId/payments", r.paymentHandler.ListByUser)
	}

	// Shop routes, including per-shop product quotes and price history
	shopGroup := e.Group("/shops")
	{
		shopGroup.POST("", r.shopHandler.Create)
		shopGroup.GET("", r.shopHandler.List)
		shopGroup.POST("/qrcode/resolve", r.shopHandler.ResolveQR)
		shopGroup.GET("/:shopId", r.shopHandler.Get)
		shopGroup.PATCH("/:shopId", r.shopHandler.Update)
		shopGroup.DELETE("/:shopId", r.shopHandler.Delete)
		shopGroup.POST("/:shopId/ratings", r.shopHandler.Rate)
		shopGroup.GET("/:shopId/qrcode", r.shopHandler.GenerateQR)
		shopGroup.GET("/:shopId/history", r.comparisonHandler.ShopHistory)

		shopGroup.GET("/:shopId/products", r.priceHandler.ListShopProducts)
		shopGroup.GET("/:shopId/products/:productId", r.priceHandler.GetShopProduct)
		shopGroup.PUT("/:shopId/products/:productId/price", r.priceHandler.SetPrice)
		shopGroup.PUT("/:shopId/products/:productId/availability", r.priceHandler.SetAvailability)
		shopGroup.DELETE("/:shopId/products/:productId", r.priceHandler.RemoveShopProduct)
		shopGroup.GET("/:shopId/products/:productId/history", r.comparisonHandler.ShopProductHistory)
		shopGroup.GET("/:shopId/products/:productId/stats", r.comparisonHandler.ShopProductStats)
	}

	// Product catalog routes
	productGroup := e.Group("/products")
	{
		productGroup.POST("", r.productHandler.Create)
		productGroup.GET("", r.productHandler.List)
		productGroup.GET("/:productId", r.productHandler.Get)
		productGroup.PATCH("/:productId", r.productHandler.Update)
		productGroup.DELETE("/:productId", r.productHandler.Deactivate)
		productGroup.GET("/:productId/shops", r.comparisonHandler.ListShopPrices)
		productGroup.GET("/:productId/history", r.comparisonHandler.ProductHistory)
	}

	// Cross-shop price comparison
	e.POST("/compare", r.comparisonHandler.Compare)

	// Payment routes
	paymentGroup := e.Group("/payments")
	{
		paymentGroup.POST("", r.paymentHandler.Record)
		paymentGroup.GET("/:paymentId/invoice", r.paymentHandler.Invoice)
	}

	// Catalog search
	searchGroup := e.Group("/search")
	{
		searchGroup.GET("", r.searchHandler.Search)
		searchGroup.GET("/history", r.searchHandler.History)
		searchGroup.DELETE("/history", r.searchHandler.ClearHistory)
	}

	// Operator endpoint for sweeping expired subscriptions
	e.POST("/subscriptions/expire", r.subscriptionHandler.ExpireDue)
}
