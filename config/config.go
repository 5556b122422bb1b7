package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Firebase FirebaseConfig
	Auth     AuthConfig
	ML       MLConfig
	S3       S3Config
	App      AppConfig
}

type ServerConfig struct {
	Port string
}

type DatabaseConfig struct {
	DSN string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type FirebaseConfig struct {
	CredentialsPath string
	DatabaseURL     string
	ProjectID       string
}

type AuthConfig struct {
	JWTSecret  string
	TokenTTL   time.Duration
	Disabled   bool
	BcryptCost int
}

type MLConfig struct {
	BaseURL string
}

type S3Config struct {
	Region       string
	Bucket       string
	BaseEndpoint string
	AccessKey    string
	SecretKey    string
}

type AppConfig struct {
	Environment string
	Version     string
	CORSOrigins string
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "5000"),
		},
		Database: DatabaseConfig{
			DSN: getEnv("DB_DSN", ""),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		Firebase: FirebaseConfig{
			CredentialsPath: getEnv("FIREBASE_CREDENTIALS_PATH", ""),
			DatabaseURL:     getEnv("FIREBASE_DATABASE_URL", ""),
			ProjectID:       getEnv("FIREBASE_PROJECT_ID", ""),
		},
		Auth: AuthConfig{
			JWTSecret:  getEnv("JWT_SECRET", ""),
			TokenTTL:   time.Duration(getEnvAsInt("JWT_TTL_HOURS", 24)) * time.Hour,
			Disabled:   getEnv("AUTH_DISABLED", "false") == "true",
			BcryptCost: getEnvAsInt("BCRYPT_COST", 10),
		},
		ML: MLConfig{
			BaseURL: getEnv("ML_BASE_URL", "https://pulastya0-sih-ml-backend.hf.space"),
		},
		S3: S3Config{
			Region:       getEnv("S3_REGION", "us-east-1"),
			Bucket:       getEnv("S3_BUCKET", "internfinder-resumes"),
			BaseEndpoint: getEnv("S3_BASE_ENDPOINT", ""),
			AccessKey:    getEnv("S3_ACCESS_KEY", ""),
			SecretKey:    getEnv("S3_SECRET_KEY", ""),
		},
		App: AppConfig{
			Environment: getEnv("APP_ENV", "development"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			CORSOrigins: getEnv("CORS_ORIGINS", "*"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if c.Firebase.CredentialsPath == "" {
		return fmt.Errorf("FIREBASE_CREDENTIALS_PATH is required")
	}

	if !c.Auth.Disabled && c.Auth.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required unless AUTH_DISABLED=true")
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}
