package main

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"resto/internal/handlers"
	"resto/internal/middleware"
	"resto/internal/models"
	"resto/internal/repositories"
	"resto/internal/services"
	"resto/internal/storage"
	"resto/internal/upload"
	"resto/pkg/rabbitmq"
)

// Deps are the resources the HTTP application is built from.
type Deps struct {
	DB      *gorm.DB
	Store   storage.Storage
	Events  services.EventPublisher
	URLs    storage.URLRenderer
	Secret  string
	BodyMB  int
	Uploads string // local upload directory served at /uploads, empty when not local
}

// openDatabase connects with the configured driver and migrates the schema.
func openDatabase(cfg Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case "postgres":
		dialector = postgres.Open(cfg.DatabaseDSN)
	case "sqlite":
		dialector = sqlite.Open(cfg.DatabaseDSN)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

func migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.User{}, &models.Partner{}, &models.Restaurant{}); err != nil {
		return fmt.Errorf("failed to auto-migrate database: %w", err)
	}
	return nil
}

// openStorage returns the configured storage backend and, for the local
// driver, the directory to serve statically.
func openStorage(ctx context.Context, cfg Config) (storage.Storage, string, error) {
	switch cfg.StorageDriver {
	case "local":
		local, err := storage.NewLocalStorage(cfg.UploadDir)
		if err != nil {
			return nil, "", err
		}
		if err := seedDefaultCover(local); err != nil {
			return nil, "", err
		}
		return local, local.Root(), nil
	case "s3":
		client, err := storage.NewS3Client(ctx, cfg.S3)
		if err != nil {
			return nil, "", err
		}
		return storage.NewS3Storage(client, cfg.S3.Bucket), "", nil
	default:
		return nil, "", fmt.Errorf("unsupported STORAGE_DRIVER %q", cfg.StorageDriver)
	}
}

// seedDefaultCover puts the placeholder cover new restaurants point at into
// local storage unless one is already there.
func seedDefaultCover(local *storage.LocalStorage) error {
	var buf bytes.Buffer
	img := image.NewRGBA(image.Rect(0, 0, 640, 360))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: color.RGBA{R: 0xd9, G: 0xd9, B: 0xd9, A: 0xff}}, image.Point{}, draw.Src)
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 80}); err != nil {
		return fmt.Errorf("failed to encode default cover: %w", err)
	}

	created, err := local.Seed(models.DefaultCoverPhoto, buf.Bytes())
	if err != nil {
		return err
	}
	if created {
		log.Printf("Seeded default cover photo: %s", models.DefaultCoverPhoto)
	}
	return nil
}

// NewApp wires repositories, services and handlers into a Fiber app.
func NewApp(deps Deps) *fiber.App {
	bodyMB := deps.BodyMB
	if bodyMB <= 0 {
		bodyMB = 10
	}

	userRepo := repositories.NewGORMUserRepository(deps.DB)
	partnerRepo := repositories.NewGORMPartnerRepository(deps.DB)
	restaurantRepo := repositories.NewGORMRestaurantRepository(deps.DB)

	uploads := upload.NewManager(deps.Store)
	authService := services.NewAuthService(userRepo, partnerRepo, deps.Secret)
	profileService := services.NewProfileService(userRepo, partnerRepo, uploads, deps.Events)
	restaurantService := services.NewRestaurantService(restaurantRepo, uploads, deps.Events)

	authHandler := handlers.NewAuthHandler(authService, deps.URLs)
	profileHandler := handlers.NewProfileHandler(profileService, deps.URLs)
	restaurantHandler := handlers.NewRestaurantHandler(restaurantService, deps.URLs)

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler,
		BodyLimit:    bodyMB * 1024 * 1024,
	})
	app.Use(logger.New())

	if deps.Uploads != "" {
		app.Static("/"+storage.Prefix, deps.Uploads)
	}

	apiV1 := app.Group("/api/v1")
	authHandler.RegisterRoutes(apiV1)

	auth := middleware.AuthRequired(authService)
	profileHandler.RegisterRoutes(apiV1, auth)
	restaurantHandler.RegisterRoutes(apiV1, auth)

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
			"events": deps.Events != nil,
		})
	})

	return app
}

func main() {
	cfg := loadConfig()
	ctx := context.Background()

	db, err := openDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	store, uploadDir, err := openStorage(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}

	deps := Deps{
		DB:      db,
		Store:   store,
		URLs:    storage.NewURLRenderer(cfg.publicBaseURL()),
		Secret:  cfg.JWTSecret,
		BodyMB:  cfg.BodyLimitMB,
		Uploads: uploadDir,
	}

	// Events are optional; without RABBITMQ_URL changes are not published.
	if cfg.RabbitMQURL != "" {
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL})
		if err != nil {
			log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
		}
		defer mqClient.Close()
		deps.Events = mqClient

		if cfg.LogEvents {
			if err := mqClient.ConsumeEvents("#", rabbitmq.LogEvent); err != nil {
				log.Printf("Failed to start RabbitMQ event log: %v", err)
			}
		}
	}

	app := NewApp(deps)

	log.Printf("Starting server on port %s", cfg.AppPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(cfg.AppPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}
	log.Println("Server gracefully stopped")
}
