package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"shopfront/controllers"
	"shopfront/middleware"
)

type Controllers struct {
	Products *controllers.ProductController
	Orders   *controllers.OrderController
	Cart     *controllers.CartController
	Checkout *controllers.CheckoutController
}

func SetupRoutes(router *gin.Engine, ctrl Controllers) {
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	api := router.Group("/api")
	{
		api.GET("/products", ctrl.Products.GetAllProducts)
		api.GET("/products/:id", ctrl.Products.GetProductByID)
		api.GET("/products/:id/reviews", ctrl.Products.GetProductReviews)

		api.POST("/orders", ctrl.Orders.CreateOrder)
		api.GET("/orders/:id", ctrl.Orders.GetOrderByID)
	}

	store := router.Group("/api")
	store.Use(middleware.SessionMiddleware())
	{
		store.GET("/cart", ctrl.Cart.GetCart)
		store.POST("/cart/items", ctrl.Cart.AddItem)
		store.PATCH("/cart/items/:id", ctrl.Cart.UpdateItem)
		store.DELETE("/cart/items/:id", ctrl.Cart.RemoveItem)
		store.DELETE("/cart", ctrl.Cart.ClearCart)

		store.POST("/checkout", ctrl.Checkout.Submit)
		store.GET("/checkout/orders/:id", ctrl.Checkout.GetOrder)
	}
}
