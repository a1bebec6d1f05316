package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"shopfront/config"
	"shopfront/controllers"
	_ "shopfront/docs"
	"shopfront/events"
	"shopfront/middleware"
	"shopfront/repositories"
	"shopfront/routes"
	"shopfront/services"
)

// @title Shopfront API
// @version 1.0
// @description Storefront service: product catalog, session cart, checkout and mocked order API
func main() {

	config.LoadConfig()

	if config.AppConfig.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	config.InitRedis()
	defer config.CloseRedis()

	productRepo, err := repositories.NewProductRepository()
	if err != nil {
		log.Fatalf("Failed to load product catalog: %v", err)
	}

	var cartRepo repositories.CartRepository
	if config.RedisClient != nil {
		cartRepo = repositories.NewRedisCartRepository(config.RedisClient)
		log.Println("Cart snapshots stored in Redis")
	} else {
		fileRepo, err := repositories.NewFileCartRepository(config.AppConfig.CartDataDir)
		if err != nil {
			log.Fatalf("Failed to create cart data directory: %v", err)
		}
		cartRepo = fileRepo
		log.Printf("Cart snapshots stored under %s", config.AppConfig.CartDataDir)
	}

	var publisher *events.Publisher
	if config.AppConfig.RabbitMQURL != "" {
		publisher, err = events.NewPublisher(config.AppConfig.RabbitMQURL, config.AppConfig.OrderExchange)
		if err != nil {
			log.Println("RabbitMQ connection failed:", err)
			log.Println("Running without order events")
			publisher = nil
		} else {
			defer publisher.Close()
			log.Println("RabbitMQ connected")
		}
	}

	orderRepo := repositories.NewOrderRepository()
	orderService := services.NewOrderService(orderRepo, productRepo)
	cartService := services.NewCartService(cartRepo)
	checkoutService := services.NewCheckoutService(
		cartService,
		config.AppConfig.OrderAPIURL,
		config.AppConfig.OrderAPITimeout,
	)

	router := gin.Default()
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.PrometheusMiddleware())

	routes.SetupRoutes(router, routes.Controllers{
		Products: controllers.NewProductController(productRepo),
		Orders:   controllers.NewOrderController(orderService, publisher),
		Cart:     controllers.NewCartController(cartService, productRepo),
		Checkout: controllers.NewCheckoutController(checkoutService),
	})

	port := ":" + config.AppConfig.Port
	log.Printf("Server starting on port %s", port)
	log.Printf("Environment: %s", config.AppConfig.AppEnv)
	log.Printf("Swagger UI: http://localhost:%s/swagger/index.html", config.AppConfig.Port)

	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
