package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// JWTConfig defines issuer/secret pair for auth verification.
type JWTConfig struct {
	Issuer string
	Secret []byte
}

// Config holds runtime configuration shared across the application.
type Config struct {
	Addr                  string
	MongoURI              string
	MongoDatabase         string
	PingCollection        string
	DiagnosticCollection  string
	OrderCollection       string
	ChangeOrderCollection string
	PriceItemCollection   string
	LegalCollection       string
	Timeout               time.Duration
	Timezone              string
	ServerLog             *log.Logger
	JWTConfigs            []JWTConfig
	JWTAudience           string
	AllowedOrigins        []string
	DefaultTaxPercent     float64
}

// Load reads environment variables and returns a fully populated Config.
func Load() Config {
	timeout := 10 * time.Second
	if v := os.Getenv("MONGO_CONNECT_TIMEOUT"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			timeout = parsed
		}
	}

	allowedOrigins := parseList("API_ALLOWED_ORIGINS", []string{"*"})

	var jwtConfigs []JWTConfig
	if secret := strings.TrimSpace(os.Getenv("AUTH_ADMIN_JWT_SECRET")); secret != "" {
		jwtConfigs = append(jwtConfigs, JWTConfig{
			Issuer: envOrDefault("AUTH_ADMIN_JWT_ISSUER", "solvia-auth"),
			Secret: []byte(secret),
		})
	}
	if secret := strings.TrimSpace(os.Getenv("AUTH_BACKOFFICE_JWT_SECRET")); secret != "" {
		jwtConfigs = append(jwtConfigs, JWTConfig{
			Issuer: envOrDefault("AUTH_BACKOFFICE_JWT_ISSUER", "solvia-backoffice"),
			Secret: []byte(secret),
		})
	}

	if len(jwtConfigs) == 0 {
		log.Fatal("JWT secrets not configured. Set AUTH_ADMIN_JWT_SECRET or AUTH_BACKOFFICE_JWT_SECRET.")
	}

	jwtAudience := strings.TrimSpace(os.Getenv("AUTH_JWT_AUDIENCE"))

	taxPercent := 16.0
	if raw := strings.TrimSpace(os.Getenv("IVA_PERCENT")); raw != "" {
		if parsed, err := strconv.ParseFloat(raw, 64); err == nil && parsed >= 0 && parsed <= 100 {
			taxPercent = parsed
		}
	}

	cfg := Config{
		Addr:                  envOrDefault("HTTP_ADDR", ":8080"),
		MongoURI:              envOrDefault("MONGO_URI", "mongodb://mongo:27017"),
		MongoDatabase:         envOrDefault("MONGO_DB", "solvia"),
		PingCollection:        envOrDefault("PING_COLLECTION", "pings"),
		DiagnosticCollection:  envOrDefault("DIAGNOSTIC_COLLECTION", "diagnostics"),
		OrderCollection:       envOrDefault("ORDER_COLLECTION", "orders"),
		ChangeOrderCollection: envOrDefault("CHANGE_ORDER_COLLECTION", "change_orders"),
		PriceItemCollection:   envOrDefault("PRICE_ITEM_COLLECTION", "price_items"),
		LegalCollection:       envOrDefault("LEGAL_TEMPLATE_COLLECTION", "legal_templates"),
		Timeout:               timeout,
		Timezone:              envOrDefault("TIMEZONE", "America/Mexico_City"),
		ServerLog:             log.New(os.Stdout, "[solvia-api] ", log.LstdFlags|log.Lshortfile),
		JWTConfigs:            jwtConfigs,
		JWTAudience:           jwtAudience,
		AllowedOrigins:        allowedOrigins,
		DefaultTaxPercent:     taxPercent,
	}

	return cfg
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseList(key string, fallback []string) []string {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}

	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			values = append(values, part)
		}
	}

	if len(values) == 0 {
		return fallback
	}
	return values
}
