package config

import (
	"errors"
	"log"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	DatabaseName      string `mapstructure:"DATABASE_NAME"`
	Env               string `mapstructure:"ENV"`
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	TokenTTLHours     int    `mapstructure:"TOKEN_TTL_HOURS"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`
	CORSOrigins       string `mapstructure:"CORS_ORIGINS"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB  int    `mapstructure:"REDIS_CACHE_DB"`
	RedisAuthDB   int    `mapstructure:"REDIS_AUTH_DB"`
	RedisQueueDB  int    `mapstructure:"REDIS_QUEUE_DB"`

	// Cloudinary media storage.
	CloudinaryCloudName string `mapstructure:"CLOUDINARY_CLOUD_NAME"`
	CloudinaryAPIKey    string `mapstructure:"CLOUDINARY_API_KEY"`
	CloudinaryAPISecret string `mapstructure:"CLOUDINARY_API_SECRET"`

	// Push notifications.
	FirebaseCredentialsFile string `mapstructure:"FIREBASE_CREDENTIALS_FILE"`

	// Planning assistant.
	GeminiAPIKey string `mapstructure:"GEMINI_API_KEY"`
	GeminiModel  string `mapstructure:"GEMINI_MODEL"`

	// Payments.
	StripeKey       string `mapstructure:"STRIPE_KEY"`
	PaymentCurrency string `mapstructure:"PAYMENT_CURRENCY"`
}

var AppConfig Config

func setDefaults() {
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 200)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "eventra")
	viper.SetDefault("JWT_SECRET", "")
	viper.SetDefault("TOKEN_TTL_HOURS", 720)
	viper.SetDefault("CORS_ORIGINS", "http://localhost:5173")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_AUTH_DB", 1)
	viper.SetDefault("REDIS_QUEUE_DB", 2)
	viper.SetDefault("CLOUDINARY_CLOUD_NAME", "")
	viper.SetDefault("CLOUDINARY_API_KEY", "")
	viper.SetDefault("CLOUDINARY_API_SECRET", "")
	viper.SetDefault("FIREBASE_CREDENTIALS_FILE", "")
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("GEMINI_MODEL", "models/gemini-1.5-flash")
	viper.SetDefault("STRIPE_KEY", "")
	viper.SetDefault("PAYMENT_CURRENCY", "usd")
}

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}
}

// Validate rejects settings that are only acceptable outside production.
func Validate() error {
	if IsProduction() && strings.TrimSpace(AppConfig.JWTSecret) == "" {
		return errors.New("JWT_SECRET must be set in production")
	}
	return nil
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}

// AllowedOrigins splits the comma separated CORS_ORIGINS value.
func AllowedOrigins() []string {
	var origins []string
	for _, o := range strings.Split(AppConfig.CORSOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
