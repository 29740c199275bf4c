package service

import (
	"os"
	"strconv"
)

type Config struct {
	Environment string
	Port        string
	BaseURL     string
	DBPath      string

	Clerk struct {
		SecretKey string
	}

	Stripe struct {
		PublishableKey string
		SecretKey      string
		WebhookSecret  string
	}

	Relay struct {
		Endpoint string
	}

	Payments struct {
		CashTag string
	}

	Pricing struct {
		TaxRate          float64
		DeliveryFeeCents int64
	}
}

func LoadConfig() (*Config, error) {
	config := &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		Port:        getEnv("PORT", "8000"),
		BaseURL:     getEnv("BASE_URL", "http://localhost:8000"),
		DBPath:      getEnv("DB_PATH", "./db/storefront.db"),
	}

	// Clerk
	config.Clerk.SecretKey = getEnv("CLERK_SECRET_KEY", "")

	// Stripe
	config.Stripe.PublishableKey = getEnv("STRIPE_PUBLISHABLE_KEY", "")
	config.Stripe.SecretKey = getEnv("STRIPE_SECRET_KEY", "")
	config.Stripe.WebhookSecret = getEnv("STRIPE_WEBHOOK_SECRET", "")

	// Relay
	config.Relay.Endpoint = getEnv("RELAY_ENDPOINT", "https://formspree.io/f/mnngnbqy")

	// Payments
	config.Payments.CashTag = getEnv("CASH_APP_TAG", "$tdiorio23")

	// Pricing
	config.Pricing.TaxRate = getEnvFloat("TAX_RATE", 0.0875)
	config.Pricing.DeliveryFeeCents = getEnvInt64("DELIVERY_FEE_CENTS", 499)

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.ParseInt(value, 10, 64); err == nil {
			return n
		}
	}
	return defaultValue
}
