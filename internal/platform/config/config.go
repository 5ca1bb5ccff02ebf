package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DefaultProjectID is the hosted project used when neither SUPABASE_URL nor
// SUPABASE_PROJECT_ID is set.
const DefaultProjectID = "coreid-dev"

// Server captures HTTP server level configuration.
type Server struct {
	Addr            string
	LogLevel        string
	ShutdownTimeout time.Duration
	// AdminTokenHash is a bcrypt hash accepted in X-Admin-Token for machine callers.
	AdminTokenHash string
}

// Supabase locates the hosted project.
type Supabase struct {
	URL            string
	AnonKey        string
	ServiceRoleKey string
	JWTSecret      string
}

// FunctionsURL is the base URL of the project's edge functions.
func (s Supabase) FunctionsURL() string {
	return strings.TrimRight(s.URL, "/") + "/functions/v1"
}

// DatabaseConfig holds the direct Postgres connection settings.
type DatabaseConfig struct {
	URL             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// RedisConfig configures the optional Redis client.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// KafkaConfig configures the optional audit stream.
type KafkaConfig struct {
	Brokers    []string
	AuditTopic string
}

// ExportConfig configures the optional S3 bucket for report exports.
type ExportConfig struct {
	Bucket    string
	Region    string
	Endpoint  string
	KeyPrefix string
}

// PublicRateLimit caps anonymous requests per client IP. A zero Requests
// disables limiting.
type PublicRateLimit struct {
	Requests int
	Window   time.Duration
}

// RetryConfig tunes backend.Retry for edge function calls.
type RetryConfig struct {
	MaxRetries int
	BaseDelay  time.Duration
}

// Config is the full application configuration.
type Config struct {
	Server             Server
	Supabase           Supabase
	Database           DatabaseConfig
	Redis              RedisConfig
	Kafka              KafkaConfig
	Export             ExportConfig
	Retry              RetryConfig
	PublicRateLimit    PublicRateLimit
	DashboardCacheTTL  time.Duration
	AuditRetentionDays int
	// AuditCleanupInterval schedules the retention worker; zero disables it.
	AuditCleanupInterval time.Duration
	InvitationTTL        time.Duration
}

// Load reads an optional .env file, then environment variables over defaults.
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	cfg := Config{
		Server: Server{
			Addr:            v.GetString("COREID_ADDR"),
			LogLevel:        v.GetString("LOG_LEVEL"),
			ShutdownTimeout: v.GetDuration("SHUTDOWN_TIMEOUT"),
			AdminTokenHash:  v.GetString("ADMIN_TOKEN_HASH"),
		},
		Supabase: Supabase{
			URL:            v.GetString("SUPABASE_URL"),
			AnonKey:        v.GetString("SUPABASE_ANON_KEY"),
			ServiceRoleKey: v.GetString("SUPABASE_SERVICE_ROLE_KEY"),
			JWTSecret:      v.GetString("SUPABASE_JWT_SECRET"),
		},
		Database: DatabaseConfig{
			URL:             v.GetString("DATABASE_URL"),
			MaxOpenConns:    v.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: v.GetDuration("DB_CONN_MAX_LIFETIME"),
		},
		Redis: RedisConfig{
			URL:          v.GetString("REDIS_URL"),
			PoolSize:     v.GetInt("REDIS_POOL_SIZE"),
			MinIdleConns: v.GetInt("REDIS_MIN_IDLE_CONNS"),
			DialTimeout:  v.GetDuration("REDIS_DIAL_TIMEOUT"),
			ReadTimeout:  v.GetDuration("REDIS_READ_TIMEOUT"),
			WriteTimeout: v.GetDuration("REDIS_WRITE_TIMEOUT"),
		},
		Kafka: KafkaConfig{
			Brokers:    splitList(v.GetString("KAFKA_BROKERS")),
			AuditTopic: v.GetString("AUDIT_TOPIC"),
		},
		Export: ExportConfig{
			Bucket:    v.GetString("EXPORT_BUCKET"),
			Region:    v.GetString("EXPORT_REGION"),
			Endpoint:  v.GetString("EXPORT_ENDPOINT"),
			KeyPrefix: v.GetString("EXPORT_KEY_PREFIX"),
		},
		Retry: RetryConfig{
			MaxRetries: v.GetInt("RETRY_MAX"),
			BaseDelay:  v.GetDuration("RETRY_BASE_DELAY"),
		},
		PublicRateLimit: PublicRateLimit{
			Requests: v.GetInt("PUBLIC_RATE_LIMIT"),
			Window:   v.GetDuration("PUBLIC_RATE_WINDOW"),
		},
		DashboardCacheTTL:    v.GetDuration("DASHBOARD_CACHE_TTL"),
		AuditRetentionDays:   v.GetInt("AUDIT_RETENTION_DAYS"),
		AuditCleanupInterval: v.GetDuration("AUDIT_CLEANUP_INTERVAL"),
		InvitationTTL:        v.GetDuration("INVITATION_TTL"),
	}

	if cfg.Supabase.URL == "" {
		projectID := v.GetString("SUPABASE_PROJECT_ID")
		cfg.Supabase.URL = fmt.Sprintf("https://%s.supabase.co", projectID)
	}
	if cfg.AuditRetentionDays < 1 {
		return Config{}, fmt.Errorf("AUDIT_RETENTION_DAYS must be positive, got %d", cfg.AuditRetentionDays)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("COREID_ADDR", ":8080")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("SHUTDOWN_TIMEOUT", 10*time.Second)
	v.SetDefault("SUPABASE_PROJECT_ID", DefaultProjectID)
	v.SetDefault("DB_MAX_OPEN_CONNS", 20)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)
	v.SetDefault("DB_CONN_MAX_LIFETIME", 30*time.Minute)
	v.SetDefault("REDIS_POOL_SIZE", 10)
	v.SetDefault("REDIS_MIN_IDLE_CONNS", 2)
	v.SetDefault("REDIS_DIAL_TIMEOUT", 5*time.Second)
	v.SetDefault("REDIS_READ_TIMEOUT", 3*time.Second)
	v.SetDefault("REDIS_WRITE_TIMEOUT", 3*time.Second)
	v.SetDefault("AUDIT_TOPIC", "coreid.admin.audit")
	v.SetDefault("EXPORT_REGION", "us-east-1")
	v.SetDefault("EXPORT_KEY_PREFIX", "exports")
	v.SetDefault("RETRY_MAX", 3)
	v.SetDefault("RETRY_BASE_DELAY", time.Second)
	v.SetDefault("DASHBOARD_CACHE_TTL", time.Minute)
	v.SetDefault("PUBLIC_RATE_LIMIT", 120)
	v.SetDefault("PUBLIC_RATE_WINDOW", time.Minute)
	v.SetDefault("AUDIT_RETENTION_DAYS", 90)
	v.SetDefault("INVITATION_TTL", 7*24*time.Hour)
}

// MissingCredentials lists the settings the verification CLI requires.
func (c Config) MissingCredentials() []string {
	var missing []string
	if c.Database.URL == "" {
		missing = append(missing, "DATABASE_URL")
	}
	if c.Supabase.AnonKey == "" {
		missing = append(missing, "SUPABASE_ANON_KEY")
	}
	return missing
}

func splitList(s string) []string {
	var out []string
	for part := range strings.SplitSeq(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
