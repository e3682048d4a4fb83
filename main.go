package main

import (
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"studiobot-backend/database"
	"studiobot-backend/internal/config"
	"studiobot-backend/internal/dedup"
	"studiobot-backend/internal/handlers"
	"studiobot-backend/internal/models"
	"studiobot-backend/internal/routes"
	"studiobot-backend/internal/services"
	"studiobot-backend/internal/storage"
)

func main() {
	// Load .env file for local development
	if err := godotenv.Load(".env"); err != nil {
		log.Println("⚠️  No .env file found - using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration: ", err)
	}

	if cfg.VerifyToken == "" {
		log.Println("⚠️  VERIFY_TOKEN not set - webhook verification will fail closed")
	}
	if !cfg.SenderConfigured() {
		log.Println("⚠️  GRAPH_API_TOKEN / PHONE_NUMBER_ID not set - replies will not be sent")
	}

	// Initialize storage
	var store storage.Store
	if cfg.UseMemoryStore {
		log.Println("⚠️  Using in-memory storage (not for production!)")
		store = storage.NewMemoryStore()
	} else {
		log.Println("📦 Connecting to PostgreSQL database...")
		if err := database.Connect(cfg.DatabaseURL); err != nil {
			log.Fatal("Failed to connect to database: ", err)
		}

		log.Println("🔄 Running database migrations...")
		err := database.DB.AutoMigrate(
			&models.User{},
			&models.Session{},
			&models.Lead{},
		)
		if err != nil {
			log.Fatal("Failed to migrate database: ", err)
		}
		log.Println("✅ Database migrations completed!")

		store = storage.NewDatabaseStore(database.DB)
	}

	// Shared outbound HTTP client for the sender and payload mirroring
	httpClient := &http.Client{Timeout: 15 * time.Second}

	cache := dedup.NewCache(cfg.DedupCapacity)
	sender := services.NewWhatsAppSender(httpClient, cfg.GraphAPIToken, cfg.PhoneNumberID, cfg.GraphAPIVersion)

	webhookHandler := handlers.NewWebhookHandler(store, cache, sender, cfg.VerifyToken, cfg.ForwardURL, httpClient)
	healthHandler := handlers.NewHealthHandler(store, cfg.SenderConfigured(), storageType(cfg))
	leadHandler := handlers.NewLeadHandler(store)
	messageHandler := handlers.NewMessageHandler(sender)

	// Create fiber app
	app := fiber.New(fiber.Config{
		AppName: "Studio WhatsApp Bot v1.0.0",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	// Middleware
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, OPTIONS",
	}))

	routes.SetupRoutes(app, webhookHandler, healthHandler, leadHandler, messageHandler)

	// Handle graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("\n🛑 Gracefully shutting down...")
		_ = app.Shutdown()
	}()

	log.Println("========================================")
	log.Printf("🚀 Studio WhatsApp Bot starting on port %s", cfg.Port)
	log.Printf("📊 Storage: %s", storageType(cfg))
	log.Printf("📱 WhatsApp: %s", whatsAppStatus(cfg))
	log.Println("========================================")

	log.Fatal(app.Listen(":" + cfg.Port))
}

func storageType(cfg *config.Config) string {
	if cfg.UseMemoryStore {
		return "In-Memory (Testing)"
	}
	return "PostgreSQL Database"
}

func whatsAppStatus(cfg *config.Config) string {
	if !cfg.SenderConfigured() {
		return "Not configured"
	}
	return "Configured"
}
