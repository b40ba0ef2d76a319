package router

import (
	"github.com/gin-gonic/gin"

	"github.com/asiburrahmanprince/ecommerce/config"
	"github.com/asiburrahmanprince/ecommerce/internal/app/controller"
	"github.com/asiburrahmanprince/ecommerce/internal/middleware"
)

type Router struct {
	authController       *controller.AuthController
	userController       *controller.UserController
	shopController       *controller.ShopController
	shopkeeperController *controller.ShopkeeperController
	customerController   *controller.CustomerController
	productController    *controller.ProductController
	reviewController     *controller.ReviewController
	orderController      *controller.OrderController
	authMiddleware       *middleware.AuthMiddleware
	config               *config.Config
}

func NewRouter(
	authController *controller.AuthController,
	userController *controller.UserController,
	shopController *controller.ShopController,
	shopkeeperController *controller.ShopkeeperController,
	customerController *controller.CustomerController,
	productController *controller.ProductController,
	reviewController *controller.ReviewController,
	orderController *controller.OrderController,
	authMiddleware *middleware.AuthMiddleware,
	cfg *config.Config,
) *Router {
	return &Router{
		authController:       authController,
		userController:       userController,
		shopController:       shopController,
		shopkeeperController: shopkeeperController,
		customerController:   customerController,
		productController:    productController,
		reviewController:     reviewController,
		orderController:      orderController,
		authMiddleware:       authMiddleware,
		config:               cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	gin.SetMode(r.config.Server.GinMode)

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggingMiddleware())
	router.Use(corsMiddleware(r.config.CORS.AllowedOrigins))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"message": "Marketplace API is running",
		})
	})

	v1 := router.Group("/api/v1")
	{
		v1.POST("/register", r.authController.Register)
		v1.POST("/login", r.authController.Login)
		v1.POST("/login/refresh", r.authController.Refresh)

		authed := v1.Group("", r.authMiddleware.Authenticate())
		{
			users := authed.Group("/users")
			{
				users.GET("", r.userController.List)
				users.POST("", r.userController.Create)
				users.GET("/:id", r.userController.Get)
				users.PUT("/:id", r.userController.Update)
				users.DELETE("/:id", r.userController.Delete)
			}

			shops := authed.Group("/shops")
			{
				shops.GET("", r.shopController.List)
				shops.POST("", r.shopController.Create)
				shops.GET("/:id", r.shopController.Get)
				shops.PUT("/:id", r.shopController.Update)
				shops.DELETE("/:id", r.shopController.Delete)
			}

			shopkeepers := authed.Group("/shopkeepers")
			{
				shopkeepers.GET("", r.shopkeeperController.List)
				shopkeepers.POST("", r.shopkeeperController.Create)
				shopkeepers.GET("/:id", r.shopkeeperController.Get)
				shopkeepers.PUT("/:id", r.shopkeeperController.Update)
				shopkeepers.DELETE("/:id", r.shopkeeperController.Delete)
			}

			customers := authed.Group("/customers")
			{
				customers.GET("", r.customerController.List)
				customers.POST("", r.customerController.Create)
				customers.GET("/:id", r.customerController.Get)
				customers.PUT("/:id", r.customerController.Update)
				customers.DELETE("/:id", r.customerController.Delete)
			}

			products := authed.Group("/products")
			{
				products.GET("", r.productController.List)
				products.POST("", r.productController.Create)
				products.GET("/search", r.productController.Search)
				products.GET("/:id", r.productController.Get)
				products.PUT("/:id", r.productController.Update)
				products.DELETE("/:id", r.productController.Delete)
			}

			authed.POST("/bulk-products", r.productController.BulkCreate)
			authed.DELETE("/bulk-products", r.productController.BulkDelete)

			reviews := authed.Group("/reviews")
			{
				reviews.GET("", r.reviewController.List)
				reviews.POST("", r.reviewController.Create)
				reviews.GET("/:id", r.reviewController.Get)
				reviews.PUT("/:id", r.reviewController.Update)
				reviews.DELETE("/:id", r.reviewController.Delete)
			}

			orders := authed.Group("/orders")
			{
				orders.GET("", r.orderController.List)
				orders.POST("", r.orderController.Create)
				orders.GET("/:id", r.orderController.Get)
				orders.PUT("/:id", r.orderController.Update)
				orders.DELETE("/:id", r.orderController.Delete)
			}

			orderItems := authed.Group("/order-items")
			{
				orderItems.GET("", r.orderController.ListItems)
				orderItems.POST("", r.orderController.CreateItem)
				orderItems.GET("/:id", r.orderController.GetItem)
				orderItems.PUT("/:id", r.orderController.UpdateItem)
				orderItems.DELETE("/:id", r.orderController.DeleteItem)
			}
		}
	}

	return router
}

func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		allowed := false
		for _, allowedOrigin := range allowedOrigins {
			if origin == allowedOrigin || allowedOrigin == "*" {
				allowed = true
				break
			}
		}

		if allowed {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
