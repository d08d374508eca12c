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
	Server ServerConfig
	DB     DBConfig
	JWT    JWTConfig
	S3     S3Config
	Log    LogConfig
	CORS   CORSConfig
	Email  EmailConfig
	PDF    PDFConfig
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

// JWTConfig holds JWT signing and expiry settings.
type JWTConfig struct {
	Secret             string        `mapstructure:"secret"`
	AccessTokenExpiry  time.Duration `mapstructure:"access_expiry"`
	RefreshTokenExpiry time.Duration `mapstructure:"refresh_expiry"`
	Issuer             string        `mapstructure:"issuer"`
}

// S3Config holds object storage settings for the logo and signature images.
type S3Config struct {
	Region         string `mapstructure:"region"`
	Bucket         string `mapstructure:"bucket"`
	Endpoint       string `mapstructure:"endpoint"`
	AccessKey      string `mapstructure:"access_key"`
	SecretKey      string `mapstructure:"secret_key"`
	MaxImageSizeMB int64  `mapstructure:"max_image_size_mb"`
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

// EmailConfig holds email delivery settings for sending invoices.
type EmailConfig struct {
	Provider    string `mapstructure:"provider"`
	Region      string `mapstructure:"region"`
	FromAddress string `mapstructure:"from_address"`
	FromName    string `mapstructure:"from_name"`
}

// PDFConfig holds invoice rendering settings. FontPath points at a UTF-8
// TTF with Persian coverage; empty selects the core-font fallback.
type PDFConfig struct {
	FontPath     string `mapstructure:"font_path"`
	BoldFontPath string `mapstructure:"bold_font_path"`
}

// Load reads configuration from environment variables with the FAKTOR_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("FAKTOR")
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
	v.SetDefault("db.user", "faktor")
	v.SetDefault("db.password", "faktor_secret")
	v.SetDefault("db.name", "faktor_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// JWT defaults
	v.SetDefault("jwt.secret", "change-me-in-production")
	v.SetDefault("jwt.access_expiry", "15m")
	v.SetDefault("jwt.refresh_expiry", "168h")
	v.SetDefault("jwt.issuer", "faktor")

	// S3 defaults
	v.SetDefault("s3.region", "eu-central-1")
	v.SetDefault("s3.bucket", "faktor-assets")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.max_image_size_mb", 5)

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Email defaults
	v.SetDefault("email.provider", "noop")
	v.SetDefault("email.region", "eu-central-1")
	v.SetDefault("email.from_address", "noreply@faktor.app")
	v.SetDefault("email.from_name", "Faktor")

	// PDF defaults
	v.SetDefault("pdf.font_path", "")
	v.SetDefault("pdf.bold_font_path", "")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":          "FAKTOR_SERVER_PORT",
		"server.read_timeout":  "FAKTOR_SERVER_READ_TIMEOUT",
		"server.write_timeout": "FAKTOR_SERVER_WRITE_TIMEOUT",
		"server.environment":   "FAKTOR_SERVER_ENVIRONMENT",
		"db.host":              "FAKTOR_DB_HOST",
		"db.port":              "FAKTOR_DB_PORT",
		"db.user":              "FAKTOR_DB_USER",
		"db.password":          "FAKTOR_DB_PASSWORD",
		"db.name":              "FAKTOR_DB_NAME",
		"db.sslmode":           "FAKTOR_DB_SSLMODE",
		"db.max_open":          "FAKTOR_DB_MAX_OPEN",
		"db.max_idle":          "FAKTOR_DB_MAX_IDLE",
		"jwt.secret":           "FAKTOR_JWT_SECRET",
		"jwt.access_expiry":    "FAKTOR_JWT_ACCESS_EXPIRY",
		"jwt.refresh_expiry":   "FAKTOR_JWT_REFRESH_EXPIRY",
		"jwt.issuer":           "FAKTOR_JWT_ISSUER",
		"s3.region":            "FAKTOR_S3_REGION",
		"s3.bucket":            "FAKTOR_S3_BUCKET",
		"s3.endpoint":          "FAKTOR_S3_ENDPOINT",
		"s3.access_key":        "FAKTOR_S3_ACCESS_KEY",
		"s3.secret_key":        "FAKTOR_S3_SECRET_KEY",
		"s3.max_image_size_mb": "FAKTOR_S3_MAX_IMAGE_SIZE_MB",
		"log.level":            "FAKTOR_LOG_LEVEL",
		"log.format":           "FAKTOR_LOG_FORMAT",
		"cors.allowed_origins": "FAKTOR_CORS_ALLOWED_ORIGINS",
		"email.provider":       "FAKTOR_EMAIL_PROVIDER",
		"email.region":         "FAKTOR_EMAIL_REGION",
		"email.from_address":   "FAKTOR_EMAIL_FROM_ADDRESS",
		"email.from_name":      "FAKTOR_EMAIL_FROM_NAME",
		"pdf.font_path":        "FAKTOR_PDF_FONT_PATH",
		"pdf.bold_font_path":   "FAKTOR_PDF_BOLD_FONT_PATH",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if FAKTOR_SERVER_PORT
	// is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("FAKTOR_SERVER_PORT") == "" {
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
	cfg.JWT = JWTConfig{
		Secret:             v.GetString("jwt.secret"),
		AccessTokenExpiry:  v.GetDuration("jwt.access_expiry"),
		RefreshTokenExpiry: v.GetDuration("jwt.refresh_expiry"),
		Issuer:             v.GetString("jwt.issuer"),
	}
	cfg.S3 = S3Config{
		Region:         v.GetString("s3.region"),
		Bucket:         v.GetString("s3.bucket"),
		Endpoint:       v.GetString("s3.endpoint"),
		AccessKey:      v.GetString("s3.access_key"),
		SecretKey:      v.GetString("s3.secret_key"),
		MaxImageSizeMB: v.GetInt64("s3.max_image_size_mb"),
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
	cfg.PDF = PDFConfig{
		FontPath:     v.GetString("pdf.font_path"),
		BoldFontPath: v.GetString("pdf.bold_font_path"),
	}

	return cfg, nil
}
