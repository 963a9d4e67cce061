package config

import (
	"fmt"
	"log"
	"net"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Auth     AuthConfig
	Mail     MailConfig
	AI       AIConfig
	App      AppConfig
}

type ServerConfig struct {
	Port             string
	CORSOrigins      []string
	TrustedProxies   []string
	RateLimit        int
	RateWindow       time.Duration
	LoginRateLimit   int
	LoginRateWindow  time.Duration
	ShutdownTimeout  time.Duration
	DetachedTimeout  time.Duration
	MaxDocumentBytes int64
}

type DatabaseConfig struct {
	DSN       string
	Host      string
	Port      int
	User      string
	Password  string
	Name      string
	SSLMode   string
	MaxConns  int
	ConnectTO time.Duration
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// AuthConfig describes the single admin identity and how its session
// tokens are signed.
type AuthConfig struct {
	Provider                string // "password" or "firebase"
	AdminUsername           string
	AdminPasswordHash       string
	JWTSecret               string
	TokenTTL                time.Duration
	FirebaseCredentialsPath string
}

type MailConfig struct {
	Host   string
	Port   int
	User   string
	Pass   string
	Secure bool
	To     string
}

// Enabled reports whether enough SMTP settings are present to send mail.
func (m MailConfig) Enabled() bool {
	return m.User != "" && m.Pass != ""
}

type AIConfig struct {
	APIKey  string
	Model   string
	Timeout time.Duration
}

type AppConfig struct {
	Environment string
	LogLevel    string
	Version     string
	ServiceName string
}

func (a AppConfig) IsProduction() bool {
	return a.Environment == "production"
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	cfg := &Config{
		Server: ServerConfig{
			Port:             v.GetString("PORT"),
			CORSOrigins:      splitList(v.GetString("CORS_ORIGINS")),
			TrustedProxies:   splitList(v.GetString("TRUSTED_PROXIES")),
			RateLimit:        v.GetInt("RATE_LIMIT_REQUESTS"),
			RateWindow:       v.GetDuration("RATE_LIMIT_WINDOW"),
			LoginRateLimit:   v.GetInt("LOGIN_RATE_LIMIT"),
			LoginRateWindow:  v.GetDuration("LOGIN_RATE_WINDOW"),
			ShutdownTimeout:  v.GetDuration("SHUTDOWN_TIMEOUT"),
			DetachedTimeout:  v.GetDuration("DETACHED_TIMEOUT"),
			MaxDocumentBytes: v.GetInt64("MAX_DOCUMENT_BYTES"),
		},
		Database: DatabaseConfig{
			DSN:       v.GetString("DB_DSN"),
			Host:      v.GetString("DB_HOST"),
			Port:      v.GetInt("DB_PORT"),
			User:      v.GetString("DB_USER"),
			Password:  v.GetString("DB_PASSWORD"),
			Name:      v.GetString("DB_NAME"),
			SSLMode:   v.GetString("DB_SSLMODE"),
			MaxConns:  v.GetInt("DB_MAX_CONNS"),
			ConnectTO: v.GetDuration("DB_CONNECT_TIMEOUT"),
		},
		Redis: RedisConfig{
			Addr:     v.GetString("REDIS_ADDR"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Auth: AuthConfig{
			Provider:                strings.ToLower(v.GetString("AUTH_PROVIDER")),
			AdminUsername:           v.GetString("ADMIN_USERNAME"),
			AdminPasswordHash:       v.GetString("ADMIN_PASSWORD_HASH"),
			JWTSecret:               v.GetString("AUTH_JWT_SECRET"),
			TokenTTL:                v.GetDuration("AUTH_TOKEN_TTL"),
			FirebaseCredentialsPath: v.GetString("FIREBASE_CREDENTIALS_PATH"),
		},
		Mail: MailConfig{
			Host:   v.GetString("SMTP_HOST"),
			Port:   v.GetInt("SMTP_PORT"),
			User:   v.GetString("SMTP_USER"),
			Pass:   v.GetString("SMTP_PASS"),
			Secure: v.GetBool("SMTP_SECURE"),
			To:     v.GetString("EMAIL_TO"),
		},
		AI: AIConfig{
			APIKey:  v.GetString("GEMINI_API_KEY"),
			Model:   v.GetString("GEMINI_MODEL"),
			Timeout: v.GetDuration("AI_TIMEOUT"),
		},
		App: AppConfig{
			Environment: v.GetString("APP_ENV"),
			LogLevel:    v.GetString("LOG_LEVEL"),
			Version:     v.GetString("APP_VERSION"),
			ServiceName: v.GetString("SERVICE_NAME"),
		},
	}

	if cfg.Mail.To == "" {
		cfg.Mail.To = cfg.Mail.User
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "3000")
	v.SetDefault("RATE_LIMIT_REQUESTS", 100)
	v.SetDefault("RATE_LIMIT_WINDOW", 15*time.Minute)
	v.SetDefault("LOGIN_RATE_LIMIT", 5)
	v.SetDefault("LOGIN_RATE_WINDOW", 15*time.Minute)
	v.SetDefault("SHUTDOWN_TIMEOUT", 10*time.Second)
	v.SetDefault("DETACHED_TIMEOUT", 30*time.Second)
	v.SetDefault("MAX_DOCUMENT_BYTES", 8<<20)

	v.SetDefault("DB_HOST", "")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_NAME", "portfolio")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_CONNECT_TIMEOUT", 3*time.Second)

	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("AUTH_PROVIDER", "password")
	v.SetDefault("AUTH_TOKEN_TTL", 7*24*time.Hour)

	v.SetDefault("SMTP_HOST", "smtp.gmail.com")
	v.SetDefault("SMTP_PORT", 587)
	v.SetDefault("SMTP_SECURE", false)

	v.SetDefault("GEMINI_MODEL", "gemini-2.5-flash")
	v.SetDefault("AI_TIMEOUT", 60*time.Second)

	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("APP_VERSION", "1.0.0")
	v.SetDefault("SERVICE_NAME", "portfolio-api")
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}
	if c.Server.RateLimit <= 0 || c.Server.RateWindow <= 0 {
		return fmt.Errorf("RATE_LIMIT_REQUESTS and RATE_LIMIT_WINDOW must be positive")
	}
	if c.Server.LoginRateLimit <= 0 || c.Server.LoginRateWindow <= 0 {
		return fmt.Errorf("LOGIN_RATE_LIMIT and LOGIN_RATE_WINDOW must be positive")
	}
	for _, p := range c.Server.TrustedProxies {
		if net.ParseIP(p) == nil {
			if _, _, err := net.ParseCIDR(p); err != nil {
				return fmt.Errorf("TRUSTED_PROXIES: %q is not an IP or CIDR", p)
			}
		}
	}
	if c.Auth.TokenTTL <= 0 {
		return fmt.Errorf("AUTH_TOKEN_TTL must be positive")
	}

	switch c.Auth.Provider {
	case "password":
		if c.Auth.AdminUsername == "" || c.Auth.AdminPasswordHash == "" {
			return fmt.Errorf("ADMIN_USERNAME and ADMIN_PASSWORD_HASH are required")
		}
	case "firebase":
		if c.Auth.AdminUsername == "" {
			return fmt.Errorf("ADMIN_USERNAME (admin email) is required")
		}
		if c.Auth.FirebaseCredentialsPath == "" {
			return fmt.Errorf("FIREBASE_CREDENTIALS_PATH is required")
		}
	default:
		return fmt.Errorf("unknown AUTH_PROVIDER %q", c.Auth.Provider)
	}

	if c.App.IsProduction() && len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("AUTH_JWT_SECRET of at least 32 bytes is required in production")
	}

	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
