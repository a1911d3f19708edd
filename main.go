package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"github.com/streadway/amqp"

	"smartretail/internal/handlers"
	"smartretail/internal/middleware"
	"smartretail/internal/repositories"
	"smartretail/internal/services"
	"smartretail/internal/validation"
	"smartretail/pkg/logger"
	"smartretail/pkg/mongodb"
	"smartretail/pkg/rabbitmq"
)

func main() {
	// --- Configuration ---
	viper.SetDefault("PORT", "5000")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MONGO_DB", "smart-retail-assistant")
	viper.AutomaticEnv()

	logger.Setup(logger.Config{
		Env:   viper.GetString("APP_ENV"),
		Level: viper.GetString("LOG_LEVEL"),
	})

	mongoURI := viper.GetString("MONGO_URI")
	if mongoURI == "" {
		log.Fatal().Msg("MONGO_URI environment variable is not defined")
	}
	jwtSecret := viper.GetString("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal().Msg("JWT_SECRET environment variable is not defined")
	}

	// --- Persistence ---
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, db, err := mongodb.Connect(ctx, mongoURI, viper.GetString("MONGO_DB"))
	if err != nil {
		log.Fatal().Err(err).Msg("MongoDB connection error")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("error disconnecting from MongoDB")
		}
	}()
	log.Info().Msg("MongoDB connected")

	userRepo := repositories.NewMongoUserRepository(db)
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to ensure user indexes")
	}
	productRepo := repositories.NewMongoProductRepository(db)

	// --- Catalog events (optional) ---
	var mqClient *rabbitmq.Client
	if url := viper.GetString("RABBITMQ_URL"); url != "" {
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: url})
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize RabbitMQ client")
		}
		defer mqClient.Close()
	} else {
		log.Info().Msg("RABBITMQ_URL not set, catalog events disabled")
	}

	// --- Services ---
	authService, err := services.NewAuthService(userRepo, jwtSecret)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize auth service")
	}
	var events services.CatalogEventPublisher
	if mqClient != nil {
		events = mqClient
	}
	productService := services.NewProductService(productRepo, events)

	// --- Handlers ---
	validate := validation.New()
	authHandler := handlers.NewAuthHandler(authService, validate)
	productHandler := handlers.NewProductHandler(productService, validate)

	// --- Fiber app ---
	app := fiber.New()
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(fiberlogger.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// Public auth routes, then the product routes with the auth middleware
	// attached per route.
	authHandler.RegisterRoutes(app)
	productHandler.RegisterRoutes(app, middleware.AuthRequired(authService))

	// --- Catalog event consumer ---
	if mqClient != nil {
		go func() {
			consumeErr := mqClient.ConsumeCatalogEvents(func(msg amqp.Delivery) error {
				log.Info().Uint64("tag", msg.DeliveryTag).RawJSON("event", msg.Body).
					Msg("received catalog event")
				return nil
			})
			if consumeErr != nil {
				log.Error().Err(consumeErr).Msg("failed to start catalog event consumer")
			}
		}()
	}

	// --- Start HTTP server ---
	addr := ":" + viper.GetString("PORT")
	log.Info().Str("addr", addr).Msg("starting server")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(addr); err != nil {
			log.Fatal().Err(err).Msg("server failed to start")
		}
	}()

	<-quit
	log.Info().Msg("shutting down server")
	if err := app.Shutdown(); err != nil {
		log.Error().Err(err).Msg("error during shutdown")
	}
	log.Info().Msg("server stopped")
}
