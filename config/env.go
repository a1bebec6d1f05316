package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv          string
	Port            string
	RedisAddr       string
	RedisURL        string
	RedisPassword   string
	CartDataDir     string
	OrderAPIURL     string
	OrderAPITimeout time.Duration
	RabbitMQURL     string
	OrderExchange   string
	DefaultPageSize int
	MaxPageSize     int
}

var AppConfig *Config

func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	pageSize, _ := strconv.Atoi(os.Getenv("DEFAULT_PAGE_SIZE"))
	if pageSize < 1 {
		pageSize = 8
	}

	timeout, _ := time.ParseDuration(getEnv("ORDER_API_TIMEOUT", "10s"))
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	port := getEnv("APP_PORT", getEnv("PORT", "9090"))

	AppConfig = &Config{
		AppEnv:          getEnv("APP_ENV", "development"),
		Port:            port,
		RedisAddr:       getEnv("REDIS_ADDR", "localhost:6379"),
		RedisURL:        os.Getenv("REDIS_URL"),
		RedisPassword:   os.Getenv("REDIS_PASSWORD"),
		CartDataDir:     getEnv("CART_DATA_DIR", "./data/carts"),
		OrderAPIURL:     getEnv("ORDER_API_URL", "http://localhost:"+port),
		OrderAPITimeout: timeout,
		RabbitMQURL:     os.Getenv("RABBITMQ_URL"),
		OrderExchange:   getEnv("ORDER_EXCHANGE", "orders_exchange"),
		DefaultPageSize: pageSize,
		MaxPageSize:     100,
	}

	log.Println("Configuration loaded successfully")
	log.Printf("Environment: %s", AppConfig.AppEnv)
	log.Printf("Server will run on port: %s", AppConfig.Port)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
