package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration. It is built once in LoadConfig
// and passed down explicitly; there is no package-level singleton.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool

	JWTSecret          string
	JWTIssuer          string
	AccessTokenExpiry  time.Duration
	RefreshTokenExpiry time.Duration

	OTPExpiry                 time.Duration
	RegistrationSessionExpiry time.Duration

	PaymentProviderKey string
	PaymentProviderURL string

	PosthogAPIKey string

	EmailFromAddress string
}

// LoadConfig loads configuration from environment variables and a .env file
// if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_ISSUER", "parish-community-app")
	viper.SetDefault("ACCESS_TOKEN_EXPIRY", "30m")
	viper.SetDefault("REFRESH_TOKEN_EXPIRY", "720h")
	viper.SetDefault("OTP_EXPIRY", "10m")
	viper.SetDefault("REGISTRATION_SESSION_EXPIRY", "24h")
	viper.SetDefault("PAYMENT_PROVIDER_KEY", "")
	viper.SetDefault("PAYMENT_PROVIDER_URL", "https://api.stripe.com/v1")
	viper.SetDefault("POSTHOG_API_KEY", "")
	viper.SetDefault("EMAIL_FROM_ADDRESS", "no-reply@parishlife.app")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET not set. Using default insecure key.")
	}
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	cfg.AccessTokenExpiry = parseDurationOr("ACCESS_TOKEN_EXPIRY", 30*time.Minute)
	cfg.RefreshTokenExpiry = parseDurationOr("REFRESH_TOKEN_EXPIRY", 30*24*time.Hour)
	cfg.OTPExpiry = parseDurationOr("OTP_EXPIRY", 10*time.Minute)
	cfg.RegistrationSessionExpiry = parseDurationOr("REGISTRATION_SESSION_EXPIRY", 24*time.Hour)

	cfg.PaymentProviderKey = viper.GetString("PAYMENT_PROVIDER_KEY")
	cfg.PaymentProviderURL = viper.GetString("PAYMENT_PROVIDER_URL")
	if cfg.PaymentProviderKey == "" {
		log.Println("Warning: PAYMENT_PROVIDER_KEY not set. Payment intents will not be created.")
	}

	cfg.PosthogAPIKey = viper.GetString("POSTHOG_API_KEY")
	cfg.EmailFromAddress = viper.GetString("EMAIL_FROM_ADDRESS")

	return cfg, nil
}

func parseDurationOr(key string, fallback time.Duration) time.Duration {
	raw := viper.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s (%q). Defaulting to %s.\n", key, raw, fallback)
		}
		return fallback
	}
	return d
}
