package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/dsentered/lasatastore/internal/usecase/purchase"
)

type Config struct {
	Port              string
	DatabaseURL       string
	JWTSecret         string
	JWTExpiresMinutes int
	StockPolicy       string
	MetricsEnabled    bool
}

func Load() Config {
	_ = godotenv.Load()

	port := getEnv("PORT", "8080")
	dbURL := getEnv("DATABASE_URL", "")
	jwtSecret := getEnv("JWT_SECRET", "dev-secret-change-me")
	jwtExp := getEnvInt("JWT_EXPIRES_MINUTES", 60)
	stockPolicy := getEnv("STOCK_POLICY", purchase.PolicyAllowNegative)
	metricsEnabled := getEnvBool("METRICS_ENABLED", true)

	if dbURL == "" {
		log.Fatal("DATABASE_URL is required")
	}
	if stockPolicy != purchase.PolicyAllowNegative && stockPolicy != purchase.PolicyRejectNegative {
		log.Fatalf("STOCK_POLICY must be %q or %q", purchase.PolicyAllowNegative, purchase.PolicyRejectNegative)
	}

	return Config{
		Port:              port,
		DatabaseURL:       dbURL,
		JWTSecret:         jwtSecret,
		JWTExpiresMinutes: jwtExp,
		StockPolicy:       stockPolicy,
		MetricsEnabled:    metricsEnabled,
	}
}

func getEnv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func getEnvBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}
