package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Storage drivers accepted by STORAGE_DRIVER.
const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
	StorageSQLite   = "sqlite"
)

// Config holds application configuration.
type Config struct {
	Port          string
	IsProduction  bool
	StorageDriver string
	DatabaseURL   string
	SQLitePath    string
	EnableDBCheck bool

	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// External OAuth Providers
	GoogleClientID     string `mapstructure:"GOOGLE_CLIENT_ID"`
	GoogleClientSecret string `mapstructure:"GOOGLE_CLIENT_SECRET"`
	GoogleRedirectURL  string `mapstructure:"GOOGLE_REDIRECT_URL"`
	FrontendBaseURL    string `mapstructure:"FRONTEND_BASE_URL"`

	CORSAllowedOrigins []string
	LoginRateLimit     string

	CacheEnabled bool
	CacheTTL     time.Duration

	PosthogAPIKey   string
	PosthogEndpoint string

	DefaultMonthWindow   int
	DefaultTopCategories int
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("STORAGE_DRIVER", StorageMemory)
	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("SQLITE_PATH", "finance_tracker.db")
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("JWT_SECRET", "")
	viper.SetDefault("JWT_EXPIRY_DURATION", "1h")
	viper.SetDefault("JWT_ISSUER", "finance-tracker")
	viper.SetDefault("GOOGLE_CLIENT_ID", "")
	viper.SetDefault("GOOGLE_CLIENT_SECRET", "")
	viper.SetDefault("GOOGLE_REDIRECT_URL", "")
	viper.SetDefault("FRONTEND_BASE_URL", "http://localhost:3000")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "")
	viper.SetDefault("LOGIN_RATE_LIMIT", "5-M")
	viper.SetDefault("CACHE_ENABLED", true)
	viper.SetDefault("CACHE_TTL", "5m")
	viper.SetDefault("POSTHOG_API_KEY", "")
	viper.SetDefault("POSTHOG_ENDPOINT", "https://eu.i.posthog.com")
	viper.SetDefault("DEFAULT_MONTH_WINDOW", 12)
	viper.SetDefault("DEFAULT_TOP_CATEGORIES", 6)

	viper.AutomaticEnv()

	cfg := &Config{
		Port:                 viper.GetString("PORT"),
		IsProduction:         viper.GetBool("IS_PRODUCTION"),
		StorageDriver:        strings.ToLower(strings.TrimSpace(viper.GetString("STORAGE_DRIVER"))),
		DatabaseURL:          viper.GetString("PGSQL_URL"),
		SQLitePath:           viper.GetString("SQLITE_PATH"),
		EnableDBCheck:        viper.GetBool("ENABLE_DB_CHECK"),
		JWTSecret:            viper.GetString("JWT_SECRET"),
		JWTIssuer:            viper.GetString("JWT_ISSUER"),
		GoogleClientID:       viper.GetString("GOOGLE_CLIENT_ID"),
		GoogleClientSecret:   viper.GetString("GOOGLE_CLIENT_SECRET"),
		GoogleRedirectURL:    viper.GetString("GOOGLE_REDIRECT_URL"),
		FrontendBaseURL:      viper.GetString("FRONTEND_BASE_URL"),
		CORSAllowedOrigins:   splitList(viper.GetString("CORS_ALLOWED_ORIGINS")),
		LoginRateLimit:       viper.GetString("LOGIN_RATE_LIMIT"),
		CacheEnabled:         viper.GetBool("CACHE_ENABLED"),
		PosthogAPIKey:        viper.GetString("POSTHOG_API_KEY"),
		PosthogEndpoint:      viper.GetString("POSTHOG_ENDPOINT"),
		DefaultMonthWindow:   viper.GetInt("DEFAULT_MONTH_WINDOW"),
		DefaultTopCategories: viper.GetInt("DEFAULT_TOP_CATEGORIES"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "a-very-secret-key-should-be-longer-and-random" // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	cfg.JWTExpiryDuration = parseDuration("JWT_EXPIRY_DURATION", time.Hour)
	cfg.CacheTTL = parseDuration("CACHE_TTL", 5*time.Minute)

	if cfg.JWTIssuer == "" {
		cfg.JWTIssuer = "finance-tracker"
		log.Printf("Warning: JWT_ISSUER not set. Defaulting to %s.\n", cfg.JWTIssuer)
	}

	if cfg.GoogleClientID == "" || cfg.GoogleClientSecret == "" {
		log.Println("Warning: GOOGLE_CLIENT_ID or GOOGLE_CLIENT_SECRET not set. Google sign-in will not function.")
	}

	if cfg.DefaultMonthWindow <= 0 {
		log.Printf("Warning: DEFAULT_MONTH_WINDOW must be positive, got %d. Defaulting to 12.\n", cfg.DefaultMonthWindow)
		cfg.DefaultMonthWindow = 12
	}
	if cfg.DefaultTopCategories <= 0 {
		log.Printf("Warning: DEFAULT_TOP_CATEGORIES must be positive, got %d. Defaulting to 6.\n", cfg.DefaultTopCategories)
		cfg.DefaultTopCategories = 6
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports configuration that cannot start the server.
func (c *Config) Validate() error {
	switch c.StorageDriver {
	case StorageMemory:
	case StoragePostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("PGSQL_URL is required when STORAGE_DRIVER=%s", StoragePostgres)
		}
	case StorageSQLite:
		if c.SQLitePath == "" {
			return fmt.Errorf("SQLITE_PATH is required when STORAGE_DRIVER=%s", StorageSQLite)
		}
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q (want %s, %s or %s)", c.StorageDriver, StorageMemory, StoragePostgres, StorageSQLite)
	}
	if c.IsProduction && c.StorageDriver == StorageMemory {
		log.Println("Warning: running in production with in-memory storage, data is lost on restart.")
	}
	return nil
}

func parseDuration(key string, fallback time.Duration) time.Duration {
	raw := viper.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, fallback.String())
		}
		return fallback
	}
	return d
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
