package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Env      Env
	Minio    MinioConfig
	Staging  StagingConfig
	NATS     NATSConfig
	Database DatabaseConfig
	Server   ServerConfig
}

type Env struct {
	Env string `envconfig:"ENV" default:"DEV"`
}

type ServerConfig struct {
	Host string `envconfig:"SERVER_HOST" default:"localhost"`
	Port string `envconfig:"SERVER_PORT" default:"8080"`
}

type MinioConfig struct {
	Endpoint      string `envconfig:"MINIO_ENDPOINT" required:"true"`
	BucketName    string `envconfig:"MINIO_BUCKET_NAME" required:"true"`
	AccessKey     string `envconfig:"MINIO_ACCESS_KEY" required:"true"`
	SecretKey     string `envconfig:"MINIO_SECRET_KEY" required:"true"`
	PublicBaseURL string `envconfig:"MINIO_PUBLIC_BASE_URL" default:""`
	UseSSL        bool   `envconfig:"MINIO_USE_SSL" default:"false"`
}

type StagingConfig struct {
	MaxFileSize   int64         `envconfig:"STAGING_MAX_FILE_SIZE" default:"20971520"` // 20MB
	SessionTTL    time.Duration `envconfig:"STAGING_SESSION_TTL" default:"30m"`
	CleanupEvery  time.Duration `envconfig:"STAGING_CLEANUP_EVERY" default:"15m"`
	PreviewURLTTL time.Duration `envconfig:"STAGING_PREVIEW_URL_TTL" default:"15m"`
}

type NATSConfig struct {
	URL        string `envconfig:"NATS_URL" required:"true"`
	StreamName string `envconfig:"NATS_STREAM_NAME" default:"ATTACHMENTS"`
	Subject    string `envconfig:"NATS_SUBJECT" default:"attachments.events"`
	ClientName string `envconfig:"NATS_CLIENT_NAME" default:"lawtime-api"`
}

type DatabaseConfig struct {
	Host           string        `envconfig:"DB_HOST" required:"true"`
	Port           int           `envconfig:"DB_PORT" default:"5432"`
	User           string        `envconfig:"DB_USER" required:"true"`
	Password       string        `envconfig:"DB_PASSWORD" required:"true"`
	Name           string        `envconfig:"DB_NAME" required:"true"`
	SSLMode        string        `envconfig:"DB_SSLMODE" default:"disable"`
	MaxOpenCons    int           `envconfig:"DB_MAX_OPEN_CONS" default:"25"`
	MaxIdleCons    int           `envconfig:"DB_MAX_IDLE_CONS" default:"5"`
	ConMaxLifeTime time.Duration `envconfig:"DB_CONMAX_LIFE_TIME" default:"5m"`
}

func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
