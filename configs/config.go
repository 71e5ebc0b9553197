package configs

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBSource  string
	Port      string
	JWTSecret string
	JWTTTL    time.Duration

	UploadDir     string // dish images + manuscript files
	ExportDir     string // order CSV exports
	MaxUploadSize int64

	TimeAPIURL     string
	TimeAPITimeout time.Duration

	AdminUsername string
	AdminPassword string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment")
	}

	return &Config{
		DBSource:       getEnv("DB_SOURCE", "app.db"),
		Port:           getEnv("PORT", "8000"),
		JWTSecret:      getEnv("JWT_SECRET", "changeme"),
		JWTTTL:         24 * time.Hour,
		UploadDir:      getEnv("UPLOAD_DIR", "uploads"),
		ExportDir:      getEnv("EXPORT_DIR", "order_exports"),
		MaxUploadSize:  20 << 20,
		TimeAPIURL:     os.Getenv("TIME_API_URL"),
		TimeAPITimeout: 3 * time.Second,
		AdminUsername:  getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword:  getEnv("ADMIN_PASSWORD", ""),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
