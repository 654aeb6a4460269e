package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port          string
	JWTKey        string
	SaltRound     int
	TokenExpMins  int
	DefaultAmount uint

	EmailSender string
	Password    string // SMTP Password
	SMTPHost    string
	SMTPPort    string
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	AppConfig = &Config{
		Port:          getEnv("PORT", "5000"),
		JWTKey:        getEnv("JWT_SECRET_KEY", ""),
		SaltRound:     getEnvInt("SALT_ROUND", 10),
		TokenExpMins:  getEnvInt("TOKEN_EXPIRY_MINUTES", 60),
		DefaultAmount: uint(getEnvInt("DEFAULT_PAYMENT_AMOUNT", 200)),

		EmailSender: getEnv("EMAIL_SENDER", ""),
		Password:    getEnv("EMAIL_PASSWORD", ""),
		SMTPHost:    getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:    getEnv("SMTP_PORT", "587"),
	}

	// The signing key is not optional. Refusing to start beats issuing
	// tokens signed with an empty secret.
	if AppConfig.JWTKey == "" {
		log.Fatal("JWT_SECRET_KEY is not set. Server cannot start without a signing key.")
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}
