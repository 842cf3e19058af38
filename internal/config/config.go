package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	DB      DBConfig
	Log     LogConfig
	CORS    CORSConfig
	Email   EmailConfig
	Invoice InvoiceConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// EmailConfig holds email delivery settings.
type EmailConfig struct {
	Provider    string `mapstructure:"provider"`
	Region      string `mapstructure:"region"`
	FromAddress string `mapstructure:"from_address"`
	FromName    string `mapstructure:"from_name"`
}

// InvoiceConfig holds invoice numbering settings.
type InvoiceConfig struct {
	Series    string `mapstructure:"series"`
	NumberPad int    `mapstructure:"number_pad"`
}

// Load reads configuration from environment variables with the GSTBILL_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("GSTBILL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "gstbill")
	v.SetDefault("db.password", "gstbill_secret")
	v.SetDefault("db.name", "gstbill_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Email defaults
	v.SetDefault("email.provider", "noop")
	v.SetDefault("email.region", "ap-south-1")
	v.SetDefault("email.from_address", "billing@gstbill.in")
	v.SetDefault("email.from_name", "GSTBILL")

	// Invoice numbering defaults
	v.SetDefault("invoice.series", "INV")
	v.SetDefault("invoice.number_pad", 5)

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":          "GSTBILL_SERVER_PORT",
		"server.read_timeout":  "GSTBILL_SERVER_READ_TIMEOUT",
		"server.write_timeout": "GSTBILL_SERVER_WRITE_TIMEOUT",
		"server.environment":   "GSTBILL_SERVER_ENVIRONMENT",
		"db.host":              "GSTBILL_DB_HOST",
		"db.port":              "GSTBILL_DB_PORT",
		"db.user":              "GSTBILL_DB_USER",
		"db.password":          "GSTBILL_DB_PASSWORD",
		"db.name":              "GSTBILL_DB_NAME",
		"db.sslmode":           "GSTBILL_DB_SSLMODE",
		"db.max_open":          "GSTBILL_DB_MAX_OPEN",
		"db.max_idle":          "GSTBILL_DB_MAX_IDLE",
		"log.level":            "GSTBILL_LOG_LEVEL",
		"log.format":           "GSTBILL_LOG_FORMAT",
		"cors.allowed_origins": "GSTBILL_CORS_ALLOWED_ORIGINS",
		"email.provider":       "GSTBILL_EMAIL_PROVIDER",
		"email.region":         "GSTBILL_EMAIL_REGION",
		"email.from_address":   "GSTBILL_EMAIL_FROM_ADDRESS",
		"email.from_name":      "GSTBILL_EMAIL_FROM_NAME",
		"invoice.series":       "GSTBILL_INVOICE_SERIES",
		"invoice.number_pad":   "GSTBILL_INVOICE_NUMBER_PAD",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if GSTBILL_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("GSTBILL_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}

	cfg.Email = EmailConfig{
		Provider:    v.GetString("email.provider"),
		Region:      v.GetString("email.region"),
		FromAddress: v.GetString("email.from_address"),
		FromName:    v.GetString("email.from_name"),
	}

	cfg.Invoice = InvoiceConfig{
		Series:    v.GetString("invoice.series"),
		NumberPad: v.GetInt("invoice.number_pad"),
	}

	return cfg, nil
}
