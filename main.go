package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
	"github.com/streadway/amqp"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"attire/internal/handlers"
	"attire/internal/middleware"
	"attire/internal/models"
	"attire/internal/repositories"
	"attire/internal/services"
	"attire/pkg/events"
)

func main() {
	// --- Configuration ---
	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("DATABASE_DRIVER", "sqlite")
	viper.SetDefault("DATABASE_DSN", "attire.db")
	viper.SetDefault("RABBITMQ_URL", "")
	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("SEED_CATALOG", true)
	viper.AutomaticEnv() // Load environment variables

	appPort := viper.GetString("APP_PORT")

	// --- Database ---
	db, err := openDatabase(viper.GetString("DATABASE_DRIVER"), viper.GetString("DATABASE_DSN"))
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := db.AutoMigrate(
		&models.Product{}, &models.Order{}, &models.Promotion{},
		&models.Size{}, &models.Color{}, &models.Category{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// --- Repositories ---
	productRepo := repositories.NewGORMProductRepository(db)
	orderRepo := repositories.NewGORMOrderRepository(db)
	promotionRepo := repositories.NewGORMPromotionRepository(db)
	attributeRepo := repositories.NewGORMAttributeRepository(db)

	// Seed the catalog, attributes and starter promotions on first run.
	if viper.GetBool("SEED_CATALOG") {
		seedCatalog(productRepo)
		seedAttributes(attributeRepo)
		seedPromotions(promotionRepo)
	}

	// --- Optional Redis cart snapshots ---
	// When REDIS_ADDR is unset, carts live purely in memory for the process
	// lifetime, which is the storefront's default behavior.
	var snapshots repositories.CartSnapshotStore
	if addr := viper.GetString("REDIS_ADDR"); addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: viper.GetString("REDIS_PASS"),
		})
		snapshots = repositories.NewRedisCartSnapshotStore(client)
		log.Printf("Cart snapshots enabled via Redis at %s", addr)
	}

	// --- Optional RabbitMQ order events ---
	var mqClient *events.Client
	if url := viper.GetString("RABBITMQ_URL"); url != "" {
		mqClient, err = events.NewClient(events.Config{URL: url})
		if err != nil {
			log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
		}
		defer mqClient.Close()
	} else {
		log.Println("RABBITMQ_URL not set; order events disabled")
	}

	// --- Services ---
	productService := services.NewProductService(productRepo)
	cartService := services.NewCartService(snapshots)
	promotionService := services.NewPromotionService(promotionRepo)
	attributeService := services.NewAttributeService(attributeRepo, productRepo)
	dashboardService := services.NewDashboardService(productRepo, orderRepo, promotionRepo)

	var publisher services.OrderEventPublisher
	if mqClient != nil {
		publisher = mqClient
	}
	orderService := services.NewOrderService(orderRepo, productRepo, cartService, promotionService, publisher)

	// --- Handlers ---
	productHandler := handlers.NewProductHandler(productService)
	cartHandler := handlers.NewCartHandler(cartService, productService)
	orderHandler := handlers.NewOrderHandler(orderService)
	promotionHandler := handlers.NewPromotionHandler(promotionService)
	attributeHandler := handlers.NewAttributeHandler(attributeService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)

	// --- Fiber App ---
	app := fiber.New()
	app.Use(logger.New()) // Request logger

	// --- API Routes ---
	apiV1 := app.Group("/api/v1", middleware.ShoppingSession())

	productHandler.RegisterRoutes(apiV1)
	cartHandler.RegisterRoutes(apiV1)
	orderHandler.RegisterRoutes(apiV1)

	admin := apiV1.Group("/admin")
	productHandler.RegisterAdminRoutes(admin)
	orderHandler.RegisterAdminRoutes(admin)
	promotionHandler.RegisterAdminRoutes(admin)
	attributeHandler.RegisterAdminRoutes(admin)
	dashboardHandler.RegisterAdminRoutes(admin)

	// --- Health Check Endpoint ---
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// --- Start RabbitMQ Consumer ---
	// The consumer just logs the order events for now; fulfillment workflows
	// would hook in here.
	if mqClient != nil {
		if consumerErr := mqClient.ConsumeOrderEvents(func(msg amqp.Delivery) error {
			log.Printf("Received Order Event (Tag: %d): %s", msg.DeliveryTag, string(msg.Body))
			return nil // Return nil to acknowledge
		}); consumerErr != nil {
			log.Printf("Failed to start RabbitMQ consumer: %v", consumerErr)
		}
	}

	// --- Start HTTP Server ---
	log.Printf("Starting server on port %s", appPort)

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(appPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}

	log.Println("Server gracefully stopped")
}

// openDatabase opens the configured GORM backend: a local SQLite file by
// default, or PostgreSQL when DATABASE_DRIVER=postgres.
func openDatabase(driver, dsn string) (*gorm.DB, error) {
	switch driver {
	case "postgres":
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	default:
		return gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	}
}
