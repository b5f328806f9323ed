// internal/router/router.go
package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/prodexhq/prodex-backend/internal/config"
	"github.com/prodexhq/prodex-backend/internal/handlers"
	"github.com/prodexhq/prodex-backend/internal/middleware"
	"github.com/prodexhq/prodex-backend/internal/services"
)

// Setup wires services, handlers and routes onto a gin engine. Reads on the
// catalog are public; every mutating or administrative route sits behind the
// admin guard.
func Setup(db *gorm.DB, cfg *config.Config) *gin.Engine {
	tokenService := services.NewTokenService(cfg.JWT.SecretKey)
	authService := services.NewAuthService(db, tokenService)
	cartService := services.NewCartService(db)
	productService := services.NewProductService(db)
	orderService := services.NewOrderService(db)
	customerService := services.NewCustomerService(db)
	adminService := services.NewAdminService(db)

	authHandler := handlers.NewAuthHandler(authService)
	cartHandler := handlers.NewCartHandler(cartService)
	productHandler := handlers.NewProductHandler(productService)
	categoryHandler := handlers.NewCategoryHandler(productService)
	orderHandler := handlers.NewOrderHandler(orderService)
	customerHandler := handlers.NewCustomerHandler(customerService)
	adminHandler := handlers.NewAdminHandler(adminService)
	proxyHandler := handlers.NewProxyHandler(time.Duration(cfg.Proxy.TimeoutSeconds) * time.Second)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))
	r.Use(middleware.I18nMiddleware())
	r.Use(middleware.AuditLog(db))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Auth
	auth := r.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/admin/login", authHandler.AdminLogin)
		auth.POST("/forgot-password", authHandler.ForgotPassword)
		auth.POST("/reset-password", authHandler.ResetPassword)
		auth.GET("/verify-email/:token", authHandler.VerifyEmail)

		authed := auth.Group("")
		authed.Use(middleware.CustomerAuth(authService))
		{
			authed.GET("/me", authHandler.Me)
			authed.PUT("/profile", authHandler.UpdateProfile)
		}
	}

	// Cart: an authenticated customer wins over query-supplied identity.
	cart := r.Group("/cart")
	cart.Use(middleware.OptionalCustomerAuth(authService))
	{
		cart.GET("", cartHandler.GetCart)
		cart.POST("/add", cartHandler.AddItem)
		cart.PUT("/item/:id", cartHandler.UpdateItem)
		cart.DELETE("/item/:id", cartHandler.RemoveItem)
		cart.DELETE("/clear", cartHandler.Clear)
	}

	// Public catalog reads
	r.GET("/products", productHandler.ListProducts)
	r.GET("/products/:id", productHandler.GetProduct)
	r.GET("/categories", categoryHandler.ListCategories)
	r.GET("/categories/:id", categoryHandler.GetCategory)

	r.GET("/proxy-image", proxyHandler.ProxyImage)

	// Admin surface
	admin := r.Group("")
	admin.Use(middleware.AdminAuth(authService))
	{
		admin.POST("/products", productHandler.CreateProduct)
		admin.PUT("/products/:id", productHandler.UpdateProduct)
		admin.DELETE("/products/:id", productHandler.DeleteProduct)

		admin.POST("/categories", categoryHandler.CreateCategory)
		admin.PUT("/categories/:id", categoryHandler.UpdateCategory)
		admin.DELETE("/categories/:id", categoryHandler.DeleteCategory)

		admin.GET("/orders", orderHandler.ListOrders)
		admin.GET("/orders/:id", orderHandler.GetOrder)
		admin.POST("/orders", orderHandler.CreateOrder)
		admin.PUT("/orders/:id", orderHandler.UpdateOrder)
		admin.DELETE("/orders/:id", orderHandler.DeleteOrder)

		admin.GET("/customers", customerHandler.ListCustomers)
		admin.GET("/customers/:id", customerHandler.GetCustomer)
		admin.POST("/customers", customerHandler.CreateCustomer)
		admin.PUT("/customers/:id", customerHandler.UpdateCustomer)
		admin.DELETE("/customers/:id", customerHandler.DeleteCustomer)

		admin.GET("/users", adminHandler.ListUsers)
		admin.POST("/users", adminHandler.CreateUser)

		admin.GET("/dashboard/stats", adminHandler.DashboardStats)

		admin.GET("/settings", adminHandler.GetSettings)
		admin.PUT("/settings", adminHandler.UpdateSettings)
	}

	return r
}
