package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config aggregates runtime configuration for the service.
type Config struct {
	App      AppConfig
	Postgres PostgresConfig
	Redis    RedisConfig
	Logger   LoggerConfig
	Auth     AuthConfig
	Media    MediaConfig
	CORS     CORSConfig
}

// AppConfig controls server level behavior.
type AppConfig struct {
	Name                  string
	Env                   string
	Host                  string
	Port                  string
	Version               string
	RequestTimeoutSeconds int
}

// PostgresConfig holds DB connection values.
type PostgresConfig struct {
	DSN            string
	MaxConns       int32
	MinConns       int32
	RunMigrations  bool
	ConnMaxIdleSec int32
	ConnMaxLifeSec int32
}

// RedisConfig holds Redis connection values.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// LoggerConfig configures logging behavior. Format is "json" or "console".
type LoggerConfig struct {
	Level  string
	Format string
}

// AuthConfig defines authentication parameters. The signing secret is loaded
// once here and injected by reference; nothing reads the environment after
// startup.
type AuthConfig struct {
	JWTSecret         string
	UserTokenTTLDays  int
	AdminTokenTTLDays int
	AdminEmail        string
	AdminPassword     string
	BcryptCost        int
}

// MediaConfig holds object-storage settings for product images.
type MediaConfig struct {
	Bucket      string
	Region      string
	AccessKeyID string
	SecretKey   string
	Endpoint    string
	BaseURL     string
}

// CORSConfig carries allowed browser origins.
type CORSConfig struct {
	AllowedOrigins []string
}

// ErrMissingJWTSecret indicates the signing secret was not configured.
var ErrMissingJWTSecret = errors.New("JWT_SECRET is required")

// Load reads configuration from environment variables, applying defaults where
// possible. It fails when the JWT signing secret is absent so a misconfigured
// deployment dies at startup instead of rejecting every request later.
func Load() (*Config, error) {
	_ = godotenv.Load()

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, ErrMissingJWTSecret
	}

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	cfg := &Config{
		App: AppConfig{
			Name:                  getEnv("APP_NAME", "rustynkart-backend"),
			Env:                   getEnv("APP_ENV", "development"),
			Host:                  getEnv("APP_HOST", "0.0.0.0"),
			Port:                  getEnv("PORT", "8000"),
			Version:               getEnv("APP_VERSION", "dev"),
			RequestTimeoutSeconds: getEnvAsInt("HTTP_REQUEST_TIMEOUT_SECONDS", 30),
		},
		Postgres: PostgresConfig{
			DSN:            os.Getenv("POSTGRES_DSN"),
			MaxConns:       int32(getEnvAsInt("POSTGRES_MAX_CONNS", 10)),
			MinConns:       int32(getEnvAsInt("POSTGRES_MIN_CONNS", 2)),
			RunMigrations:  getEnvAsBool("POSTGRES_RUN_MIGRATIONS", true),
			ConnMaxIdleSec: int32(getEnvAsInt("POSTGRES_CONN_MAX_IDLE_SECONDS", 30)),
			ConnMaxLifeSec: int32(getEnvAsInt("POSTGRES_CONN_MAX_LIFE_SECONDS", 300)),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "127.0.0.1:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       redisDB,
		},
		Logger: LoggerConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		Auth: AuthConfig{
			JWTSecret:         secret,
			UserTokenTTLDays:  getEnvAsInt("AUTH_USER_TOKEN_TTL_DAYS", 7),
			AdminTokenTTLDays: getEnvAsInt("AUTH_ADMIN_TOKEN_TTL_DAYS", 1),
			AdminEmail:        os.Getenv("ADMIN_EMAIL"),
			AdminPassword:     os.Getenv("ADMIN_PASSWORD"),
			BcryptCost:        getEnvAsInt("AUTH_BCRYPT_COST", 10),
		},
		Media: MediaConfig{
			Bucket:      os.Getenv("MEDIA_S3_BUCKET"),
			Region:      getEnv("MEDIA_S3_REGION", "us-east-1"),
			AccessKeyID: os.Getenv("MEDIA_S3_ACCESS_KEY_ID"),
			SecretKey:   os.Getenv("MEDIA_S3_SECRET_KEY"),
			Endpoint:    os.Getenv("MEDIA_S3_ENDPOINT"),
			BaseURL:     os.Getenv("MEDIA_S3_BASE_URL"),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS",
				"http://localhost:5173,http://localhost:5174,http://localhost:3000")),
		},
	}

	return cfg, nil
}

// Addr returns the HTTP bind address.
func (a AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", a.Host, a.Port)
}

// RequestTimeout returns the configured request timeout duration.
func (a AppConfig) RequestTimeout() time.Duration {
	if a.RequestTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(a.RequestTimeoutSeconds) * time.Second
}

// IsProduction reports whether the service runs with production settings.
func (a AppConfig) IsProduction() bool {
	return a.Env == "production"
}

// UserTokenTTL is the lifetime of end-user session tokens.
func (a AuthConfig) UserTokenTTL() time.Duration {
	return time.Duration(a.UserTokenTTLDays) * 24 * time.Hour
}

// AdminTokenTTL is the lifetime of administrative session tokens.
func (a AuthConfig) AdminTokenTTL() time.Duration {
	return time.Duration(a.AdminTokenTTLDays) * 24 * time.Hour
}

func splitList(val string) []string {
	parts := strings.Split(val, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvAsBool(key string, fallback bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return fallback
	}
	return parsed
}
