package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds application configuration
type Config struct {
	Server  ServerConfig
	Data    DataConfig
	Index   IndexConfig
	Cache   CacheConfig
	Storage StorageConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port            string   `envconfig:"PORT" default:"8080"`
	Host            string   `envconfig:"HOST" default:"0.0.0.0"`
	Environment     string   `envconfig:"ENVIRONMENT" default:"development"`
	AllowedOrigins  []string `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:3000"`
	ShutdownTimeout int      `envconfig:"SHUTDOWN_TIMEOUT" default:"10"`
}

// DataConfig locates the meeting artifacts fed in by the recording and
// summarization collaborators.
type DataConfig struct {
	Dir            string `envconfig:"DATA_DIR" default:"meeting_data_v2"`
	NotesDir       string `envconfig:"NOTES_DIR" default:"json_notes"`
	TranscriptsDir string `envconfig:"TRANSCRIPTS_DIR" default:"transcripts"`
}

// IndexConfig holds index build and query tuning
type IndexConfig struct {
	ProjectsDir       string `envconfig:"PROJECTS_DIR" default:"projects"`
	MaxKeywords       int    `envconfig:"INDEX_MAX_KEYWORDS" default:"10"`
	DefaultMaxResults int    `envconfig:"QUERY_MAX_RESULTS" default:"10"`
	RulesPath         string `envconfig:"QUERY_RULES_PATH" default:""`
}

// CacheConfig holds the index snapshot cache configuration
type CacheConfig struct {
	Type     string        `envconfig:"CACHE_TYPE" default:"memory"` // "memory" or "redis"
	TTL      time.Duration `envconfig:"CACHE_TTL" default:"5m"`
	Host     string        `envconfig:"REDIS_HOST" default:"localhost"`
	Port     string        `envconfig:"REDIS_PORT" default:"6379"`
	Password string        `envconfig:"REDIS_PASSWORD" default:""`
	DB       int           `envconfig:"REDIS_DB" default:"0"`
}

// StorageConfig selects where index snapshots are persisted
type StorageConfig struct {
	Type            string `envconfig:"STORAGE_TYPE" default:"file"` // "file" or "minio"
	Endpoint        string `envconfig:"STORAGE_ENDPOINT" default:"localhost:9000"`
	AccessKeyID     string `envconfig:"STORAGE_ACCESS_KEY" default:"minioadmin"`
	SecretAccessKey string `envconfig:"STORAGE_SECRET_KEY" default:"minioadmin"`
	BucketName      string `envconfig:"STORAGE_BUCKET" default:"meeting-indexes"`
	UseSSL          bool   `envconfig:"STORAGE_USE_SSL" default:"false"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch c.Cache.Type {
	case "memory", "redis":
	default:
		return fmt.Errorf("CACHE_TYPE must be \"memory\" or \"redis\", got %q", c.Cache.Type)
	}
	switch c.Storage.Type {
	case "file", "minio":
	default:
		return fmt.Errorf("STORAGE_TYPE must be \"file\" or \"minio\", got %q", c.Storage.Type)
	}
	if c.Index.MaxKeywords < 1 {
		return fmt.Errorf("INDEX_MAX_KEYWORDS must be positive")
	}
	if c.Index.DefaultMaxResults < 1 {
		return fmt.Errorf("QUERY_MAX_RESULTS must be positive")
	}
	return nil
}

// GetRedisAddr returns the Redis address
func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", c.Cache.Host, c.Cache.Port)
}
