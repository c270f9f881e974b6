package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"resto/internal/storage"
)

// Config holds the service settings read from the environment.
type Config struct {
	AppPort       string
	DBDriver      string
	DatabaseDSN   string
	JWTSecret     string
	BackendURL    string
	UploadDir     string
	StorageDriver string
	S3            storage.S3Config
	S3PublicURL   string
	RabbitMQURL   string
	LogEvents     bool
	BodyLimitMB   int
}

// loadConfig reads an optional .env file and then the environment.
func loadConfig() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from the environment")
	}

	v := viper.New()
	v.SetDefault("APP_PORT", ":8080")
	v.SetDefault("DB_DRIVER", "postgres")
	v.SetDefault("DATABASE_DSN", "host=localhost user=postgres password=postgres dbname=resto port=5432 sslmode=disable")
	v.SetDefault("JWT_SECRET", "change-me")
	v.SetDefault("BACKEND_URL", "http://localhost:8080")
	v.SetDefault("UPLOAD_DIR", "uploads")
	v.SetDefault("STORAGE_DRIVER", "local")
	v.SetDefault("S3_REGION", "auto")
	v.SetDefault("S3_USE_PATH_STYLE", false)
	v.SetDefault("RABBITMQ_URL", "")
	v.SetDefault("RABBITMQ_LOG_EVENTS", false)
	v.SetDefault("BODY_LIMIT_MB", 10)
	v.AutomaticEnv()

	return Config{
		AppPort:       v.GetString("APP_PORT"),
		DBDriver:      v.GetString("DB_DRIVER"),
		DatabaseDSN:   v.GetString("DATABASE_DSN"),
		JWTSecret:     v.GetString("JWT_SECRET"),
		BackendURL:    v.GetString("BACKEND_URL"),
		UploadDir:     v.GetString("UPLOAD_DIR"),
		StorageDriver: v.GetString("STORAGE_DRIVER"),
		S3: storage.S3Config{
			Endpoint:     v.GetString("S3_ENDPOINT"),
			Region:       v.GetString("S3_REGION"),
			Bucket:       v.GetString("S3_BUCKET"),
			AccessKey:    v.GetString("S3_ACCESS_KEY"),
			SecretKey:    v.GetString("S3_SECRET_KEY"),
			UsePathStyle: v.GetBool("S3_USE_PATH_STYLE"),
		},
		S3PublicURL: v.GetString("S3_PUBLIC_BASE_URL"),
		RabbitMQURL: v.GetString("RABBITMQ_URL"),
		LogEvents:   v.GetBool("RABBITMQ_LOG_EVENTS"),
		BodyLimitMB: v.GetInt("BODY_LIMIT_MB"),
	}
}

// publicBaseURL is the prefix rendered in front of stored paths.
func (c Config) publicBaseURL() string {
	if c.StorageDriver == "s3" && c.S3PublicURL != "" {
		return c.S3PublicURL
	}
	return c.BackendURL
}
