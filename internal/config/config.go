package config

import (
	"os"
	"strconv"
	"time"
)

// DatabaseConfig holds PostgreSQL database connection settings.
type DatabaseConfig struct {
	Host               string
	Port               string
	User               string
	Password           string
	Name               string
	SSLMode            string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeSec int
}

// MinIOConfig holds object storage settings for MinIO.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// S3Config holds object storage settings for AWS S3 (or an S3-compatible endpoint).
type S3Config struct {
	Region       string
	Bucket       string
	AccessKey    string
	SecretKey    string
	BaseEndpoint string
	UsePathStyle bool
}

// StorageConfig selects the object storage backend behind the content store.
// Driver is one of "minio", "s3" or "memory".
type StorageConfig struct {
	Driver  string
	MinIO   MinIOConfig
	S3      S3Config
	LinkTTL time.Duration
}

// RedisConfig holds the connection for the mint idempotency store.
// An empty Host selects the in-memory store.
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	TTL      time.Duration
}

// LedgerConfig selects the ledger backend and identifies the contract.
// Driver is one of "postgres" or "memory".
type LedgerConfig struct {
	Driver      string
	ContractID  string
	NetworkID   string
	ExplorerURL string
}

// AuthConfig holds the session token settings.
type AuthConfig struct {
	JWTSecret string
}

// CanvasConfig holds the fixed canvas parameters.
type CanvasConfig struct {
	ID                int
	Width             int
	Height            int
	GatewayURL        string
	NotificationDwell time.Duration
	// MaxPixels bounds width*height of uploaded and rendered images.
	MaxPixels int
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	AppHost  string
	Port     string
	LogLevel string
	Database DatabaseConfig
	Storage  StorageConfig
	Redis    RedisConfig
	Ledger   LedgerConfig
	Auth     AuthConfig
	Canvas   CanvasConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	networkID := getEnv("LEDGER_NETWORK_ID", "testnet")
	return &AppConfig{
		AppHost:  getEnv("APP_HOST", "localhost:8080"),
		Port:     getEnv("PORT", "8080"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		Database: DatabaseConfig{
			Host:               getEnv("DB_HOST", ""),
			Port:               getEnv("DB_PORT", "5432"),
			User:               getEnv("DB_USER", ""),
			Password:           getEnv("DB_PASSWORD", ""),
			Name:               getEnv("DB_NAME", ""),
			SSLMode:            getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:       getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:       getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetimeSec: getEnvInt("DB_CONN_MAX_LIFETIME_SEC", 300),
		},
		Storage: StorageConfig{
			Driver:  getEnv("STORAGE_DRIVER", "minio"),
			LinkTTL: time.Duration(getEnvInt("CONTENT_LINK_TTL_SEC", 900)) * time.Second,
			MinIO: MinIOConfig{
				Endpoint:  getEnv("MINIO_ENDPOINT", ""),
				AccessKey: getEnv("MINIO_ACCESS_KEY", ""),
				SecretKey: getEnv("MINIO_SECRET_KEY", ""),
				Bucket:    getEnv("MINIO_BUCKET", ""),
				UseSSL:    getEnvBool("MINIO_USE_SSL", false),
			},
			S3: S3Config{
				Region:       getEnv("S3_REGION", ""),
				Bucket:       getEnv("S3_BUCKET", ""),
				AccessKey:    getEnv("S3_ACCESS_KEY", ""),
				SecretKey:    getEnv("S3_SECRET_KEY", ""),
				BaseEndpoint: getEnv("S3_BASE_ENDPOINT", ""),
				UsePathStyle: getEnvBool("S3_USE_PATH_STYLE", false),
			},
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", ""),
			Port:     getEnvInt("REDIS_PORT", 6379),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
			TTL:      time.Duration(getEnvInt("IDEMPOTENCY_TTL_SEC", 86400)) * time.Second,
		},
		Ledger: LedgerConfig{
			Driver:      getEnv("LEDGER_DRIVER", "postgres"),
			ContractID:  getEnv("LEDGER_CONTRACT_ID", "coopart.testnet"),
			NetworkID:   networkID,
			ExplorerURL: getEnv("LEDGER_EXPLORER_URL", "https://explorer."+networkID+".near.org/accounts"),
		},
		Auth: AuthConfig{
			JWTSecret: getEnv("JWT_SECRET", ""),
		},
		Canvas: CanvasConfig{
			ID:                getEnvInt("CANVAS_ID", 1),
			Width:             getEnvInt("CANVAS_WIDTH", 1240),
			Height:            getEnvInt("CANVAS_HEIGHT", 920),
			GatewayURL:        getEnv("IPFS_GATEWAY_URL", "https://ipfs.infura.io/ipfs/"),
			NotificationDwell: time.Duration(getEnvInt("NOTIFICATION_DWELL_SEC", 11)) * time.Second,
			MaxPixels:         getEnvInt("MAX_TILE_PIXELS", 4096*4096),
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}
