package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	JWTSecret   string
	JWTTTLHours int

	// Razorpay keys. KeyID is public and returned to the checkout widget,
	// the secret never leaves the server.
	RazorpayKey           string
	RazorpaySecret        string
	RazorpayWebhookSecret string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	SMTPHost      string
	SMTPPort      string
	SMTPUsername  string
	SMTPPassword  string
	SMTPFromName  string
	SMTPFromEmail string

	FrontendURL string
}

// Load reads environment variables and returns a Config object
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file, using environment variables")
	}

	ttl, _ := strconv.Atoi(os.Getenv("JWT_TTL_HOURS"))
	if ttl == 0 {
		ttl = 24
	}
	redisDB, _ := strconv.Atoi(os.Getenv("REDIS_DB"))

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	return &Config{
		Port: port,

		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     os.Getenv("DB_PORT"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),

		JWTSecret:   os.Getenv("JWT_SECRET"),
		JWTTTLHours: ttl,

		RazorpayKey:           os.Getenv("RAZORPAY_KEY_ID"),
		RazorpaySecret:        os.Getenv("RAZORPAY_KEY_SECRET"),
		RazorpayWebhookSecret: os.Getenv("RAZORPAY_WEBHOOK_SECRET"),

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       redisDB,

		SMTPHost:      os.Getenv("SMTP_HOST"),
		SMTPPort:      os.Getenv("SMTP_PORT"),
		SMTPUsername:  os.Getenv("SMTP_USERNAME"),
		SMTPPassword:  os.Getenv("SMTP_PASSWORD"),
		SMTPFromName:  os.Getenv("SMTP_FROM_NAME"),
		SMTPFromEmail: os.Getenv("SMTP_FROM_EMAIL"),

		FrontendURL: os.Getenv("FRONTEND_URL"),
	}
}

// Validate checks that every secret the server cannot run without is present.
// It returns one error naming all missing keys so a broken deployment is fixed
// in a single pass. Must be called before binding any listener.
func (c *Config) Validate() error {
	var missing []string

	if c.DBHost == "" {
		missing = append(missing, "DB_HOST")
	}
	if c.DBUser == "" {
		missing = append(missing, "DB_USER")
	}
	if c.DBName == "" {
		missing = append(missing, "DB_NAME")
	}
	if c.JWTSecret == "" {
		missing = append(missing, "JWT_SECRET")
	}
	if c.RazorpayKey == "" {
		missing = append(missing, "RAZORPAY_KEY_ID")
	}
	if c.RazorpaySecret == "" {
		missing = append(missing, "RAZORPAY_KEY_SECRET")
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}
	return nil
}
