package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	DatabaseName      string `mapstructure:"DATABASE_NAME"`
	Env               string `mapstructure:"ENV"`
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr    string `mapstructure:"REDIS_ADDR"`
	RedisPass    string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB int    `mapstructure:"REDIS_CACHE_DB"`
	RedisAuthDB  int    `mapstructure:"REDIS_AUTH_DB"`
	RedisQueueDB int    `mapstructure:"REDIS_QUEUE_DB"`

	// Booking policy defaults. Tax rate is expressed in basis points
	// (1500 = 15%) so pricing math stays in integers. Admin settings
	// stored in the database override these at runtime.
	TaxRateBps            int `mapstructure:"TAX_RATE_BPS"`
	DefaultAdvanceDays    int `mapstructure:"DEFAULT_ADVANCE_BOOKING_DAYS"`
	PendingPaymentTTLMins int `mapstructure:"PENDING_PAYMENT_TTL_MINS"`

	// Payment and third-party integrations.
	StripeKey                     string `mapstructure:"STRIPE_KEY"`
	GeminiAPIKey                  string `mapstructure:"GEMINI_API_KEY"`
	FirebaseServiceAccountKeyPath string `mapstructure:"FIREBASE_SERVICE_ACCOUNT_KEY_PATH"`

	// Cloudinary media storage.
	CloudinaryCloudName string `mapstructure:"CLOUDINARY_CLOUD_NAME"`
	CloudinaryAPIKey    string `mapstructure:"CLOUDINARY_API_KEY"`
	CloudinaryAPISecret string `mapstructure:"CLOUDINARY_API_SECRET"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_AUTH_DB", 1)
	viper.SetDefault("REDIS_QUEUE_DB", 2)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "weddify")
	viper.SetDefault("TAX_RATE_BPS", 1500)
	viper.SetDefault("DEFAULT_ADVANCE_BOOKING_DAYS", 90)
	viper.SetDefault("PENDING_PAYMENT_TTL_MINS", 30)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
