package configs

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	DBDriver string
	DBSource string

	JWTSecret        string
	JWTRefreshSecret string
	AccessTokenTTL   time.Duration
	RefreshTokenTTL  time.Duration
	BcryptCost       int
	CORSOrigin       string

	AdminEmail    string
	AdminPassword string

	// Outbound mail credentials; parsed so ops can set them but delivery
	// itself is not wired up yet.
	SMTPHost     string
	SMTPPort     string
	SMTPUser     string
	SMTPPassword string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment")
	}

	return &Config{
		Port:             getEnv("PORT", "5000"),
		DBDriver:         getEnv("DB_DRIVER", "sqlite"),
		DBSource:         getEnv("DB_SOURCE", "urban360.db"),
		JWTSecret:        getEnv("JWT_SECRET", "dev-secret"),
		JWTRefreshSecret: getEnv("JWT_REFRESH_SECRET", "dev-refresh-secret"),
		AccessTokenTTL:   getDuration("JWT_EXPIRE", 15*time.Minute),
		RefreshTokenTTL:  getDuration("JWT_REFRESH_EXPIRE", 7*24*time.Hour),
		BcryptCost:       getInt("BCRYPT_COST", 12),
		CORSOrigin:       getEnv("CORS_ORIGIN", "http://localhost:5173"),
		AdminEmail:       getEnv("ADMIN_EMAIL", ""),
		AdminPassword:    getEnv("ADMIN_PASSWORD", ""),
		SMTPHost:         getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:         getEnv("SMTP_PORT", "587"),
		SMTPUser:         getEnv("SMTP_USER", ""),
		SMTPPassword:     getEnv("SMTP_PASSWORD", ""),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if v, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
