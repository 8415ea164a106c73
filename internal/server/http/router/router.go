package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/adonisdeptrai/r4bbit-sub001/internal/server/http/handlers"
	"github.com/adonisdeptrai/r4bbit-sub001/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.StoreFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	catalogHandler := handlers.NewCatalogHandler(facade)
	cartHandler := handlers.NewCartHandler(facade)
	checkoutHandler := handlers.NewCheckoutHandler(facade)
	ordersHandler := handlers.NewOrdersHandler(facade)
	settingsHandler := handlers.NewSettingsHandler(facade)

	api := engine.Group("/api")
	api.GET("/products", catalogHandler.List)
	api.GET("/payment-options", settingsHandler.PaymentOptions)

	user := api.Group("/user")
	user.POST("/register", authHandler.Register)
	user.POST("/login", authHandler.Login)

	userAuth := user.Group("")
	userAuth.Use(middleware.AuthRequired(facade))
	userAuth.GET("/cart", cartHandler.List)
	userAuth.POST("/cart", cartHandler.Add)
	userAuth.DELETE("/cart", cartHandler.Clear)
	userAuth.DELETE("/cart/:productID", cartHandler.Remove)
	userAuth.POST("/checkout", checkoutHandler.Create)
	userAuth.GET("/checkout/:id", checkoutHandler.Get)
	userAuth.POST("/checkout/:id/confirm", checkoutHandler.Confirm)
	userAuth.DELETE("/checkout/:id", checkoutHandler.Cancel)
	userAuth.GET("/orders", ordersHandler.List)

	admin := api.Group("/admin")
	admin.Use(middleware.AuthRequired(facade), middleware.AdminRequired())
	admin.POST("/products", catalogHandler.Create)
	admin.PUT("/products/:id", catalogHandler.Update)
	admin.GET("/orders", ordersHandler.ListAll)
	admin.GET("/settings", settingsHandler.Get)
	admin.PUT("/settings", settingsHandler.Update)

	return engine
}
