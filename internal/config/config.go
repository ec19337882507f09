package config

import (
	"os"
	"strconv"
	"time"
)

// Config is read from the environment once at startup. main loads .env
// beforehand, so local overrides live next to the binary.
type Config struct {
	Addr        string
	DatabaseURL string

	JWTSecret string
	TokenTTL  time.Duration

	SeedAdminEmail    string
	SeedAdminPassword string

	// Optional integrations. Empty means the related feature stays a stub.
	AMQPURL  string
	MailHost string
	MailPort int
	MailUser string
	MailPass string
	MailFrom string
}

func Load() *Config {
	return &Config{
		Addr:              getEnv("ADDR", ":8080"),
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		JWTSecret:         getEnv("JWT_SECRET", "dev-only-secret"),
		TokenTTL:          getDuration("TOKEN_TTL", 24*time.Hour),
		SeedAdminEmail:    getEnv("SEED_ADMIN_EMAIL", "admin@gmail.com"),
		SeedAdminPassword: getEnv("SEED_ADMIN_PASSWORD", "12345678"),
		AMQPURL:           os.Getenv("AMQP_URL"),
		MailHost:          os.Getenv("MAIL_HOST"),
		MailPort:          getInt("MAIL_PORT", 587),
		MailUser:          os.Getenv("MAIL_USER"),
		MailPass:          os.Getenv("MAIL_PASS"),
		MailFrom:          getEnv("MAIL_FROM", "no-reply@lead-portal.local"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getInt(key string, def int) int {
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

func getDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}
