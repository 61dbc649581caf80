package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServicePort      string
	MetricsPort      string
	Environment      string
	AllowedOrigins   []string
	BackendConfig    BackendConfig
	StorageConfig    StorageConfig
	MongoDBConfig    MongoDBConfig
	PostgreSQLConfig PostgreSQLConfig
	KafkaConfig      KafkaConfig
	TracingConfig    TracingConfig
	ImageHostConfig  ImageHostConfig
	SMTPConfig       SMTPConfig
	SessionConfig    SessionConfig
}

type BackendConfig struct {
	BaseURL     string
	RefreshPath string
	Timeout     time.Duration
}

type StorageConfig struct {
	Driver      string
	LevelDBPath string
}

type MongoDBConfig struct {
	DBHost            string
	DBPort            string
	DBName            string
	DBUsername        string
	DBPassword        string
	MaxPoolSize       uint64
	MinPoolSize       uint64
	MaxConnIdleTime   time.Duration
	ConnectTimeout    time.Duration
	StorageCollection string
}

type PostgreSQLConfig struct {
	DBHost     string
	DBPort     string
	DBName     string
	DBUsername string
	DBPassword string
}

type KafkaConfig struct {
	BrokerAddress   string
	BrokerTopic     string
	BrokerPartition int
	WriteTimeout    time.Duration
}

type TracingConfig struct {
	CollectorHost string
}

type ImageHostConfig struct {
	BaseURL       string
	CloudName     string
	UploadPreset  string
	Folder        string
	MaxUploadSize int64
	Concurrency   int
}

type SMTPConfig struct {
	Host     string
	Port     int
	Sender   string
	Password string
}

type SessionConfig struct {
	CookieName    string
	IdleTimeout   time.Duration
	SweepInterval time.Duration
}

func CreateNewConfig() *Config {
	godotenv.Load(".env")

	conf := Config{
		ServicePort:    getEnv("SERVICE_PORT", "8080"),
		MetricsPort:    getEnv("METRICS_PORT", "9090"),
		Environment:    getEnv("ENVIRONMENT", "development"),
		AllowedOrigins: splitList(getEnv("ALLOWED_ORIGINS", "http://localhost:3000")),
		BackendConfig: BackendConfig{
			BaseURL:     strings.TrimRight(getEnv("BACKEND_BASE_URL", "http://localhost:8000"), "/"),
			RefreshPath: getEnv("BACKEND_REFRESH_PATH", "/auth/refresh"),
			Timeout:     getDuration("BACKEND_TIMEOUT", 10*time.Second),
		},
		StorageConfig: StorageConfig{
			Driver:      getEnv("STORAGE_DRIVER", "leveldb"),
			LevelDBPath: getEnv("LEVELDB_PATH", "data/storage"),
		},
		MongoDBConfig: MongoDBConfig{
			DBHost:            getEnv("MONGODB_HOST", "localhost"),
			DBPort:            getEnv("MONGODB_PORT", "27017"),
			DBName:            getEnv("MONGODB_NAME", "storefront"),
			DBUsername:        os.Getenv("MONGODB_USERNAME"),
			DBPassword:        os.Getenv("MONGODB_PASSWORD"),
			MaxPoolSize:       uint64(getInt("MONGODB_MAX_POOL_SIZE", 20)),
			MinPoolSize:       uint64(getInt("MONGODB_MIN_POOL_SIZE", 10)),
			MaxConnIdleTime:   getDuration("MONGODB_MAX_IDLE_TIME", 60*time.Second),
			ConnectTimeout:    getDuration("MONGODB_CONNECT_TIMEOUT", 10*time.Second),
			StorageCollection: getEnv("MONGODB_STORAGE_COLLECTION", "client_storage"),
		},
		PostgreSQLConfig: PostgreSQLConfig{
			DBHost:     os.Getenv("DB_HOST"),
			DBName:     os.Getenv("DB_NAME"),
			DBPort:     os.Getenv("DB_PORT"),
			DBUsername: os.Getenv("DB_USERNAME"),
			DBPassword: os.Getenv("DB_PASSWORD"),
		},
		KafkaConfig: KafkaConfig{
			BrokerAddress: os.Getenv("BROKER_ADDRESS"),
			BrokerTopic:   getEnv("BROKER_TOPIC", "storefront-events"),
			WriteTimeout:  getDuration("BROKER_WRITE_TIMEOUT", 5*time.Second),
		},
		TracingConfig: TracingConfig{
			CollectorHost: os.Getenv("COLLECTOR_HOST"),
		},
		ImageHostConfig: ImageHostConfig{
			BaseURL:       strings.TrimRight(getEnv("IMAGE_HOST_BASE_URL", "https://api.cloudinary.com"), "/"),
			CloudName:     os.Getenv("CLOUDINARY_CLOUD_NAME"),
			UploadPreset:  os.Getenv("CLOUDINARY_UPLOAD_PRESET"),
			Folder:        getEnv("CLOUDINARY_FOLDER", "khangviet"),
			MaxUploadSize: int64(getInt("MAX_UPLOAD_SIZE", 2*1024*1024)),
			Concurrency:   getInt("UPLOAD_CONCURRENCY", 4),
		},
		SMTPConfig: SMTPConfig{
			Host:     os.Getenv("SMTP_HOST"),
			Port:     getInt("SMTP_PORT", 587),
			Sender:   os.Getenv("SMTP_SENDER"),
			Password: os.Getenv("SMTP_PASSWORD"),
		},
		SessionConfig: SessionConfig{
			CookieName:    getEnv("SESSION_COOKIE_NAME", "sid"),
			IdleTimeout:   getDuration("SESSION_IDLE_TIMEOUT", 30*time.Minute),
			SweepInterval: getDuration("SESSION_SWEEP_INTERVAL", time.Minute),
		},
	}

	conf.KafkaConfig.BrokerPartition = getInt("BROKER_PARTITION", 0)

	return &conf
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
