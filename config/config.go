package config

import "time"

type Config struct {
	Server     ServerConfig     `json:"server"`
	Database   DatabaseConfig   `json:"database"`
	Auth       AuthConfig       `json:"auth"`
	ImageProxy ImageProxyConfig `json:"image_proxy"`
	Logging    LoggingConfig    `json:"logging"`
}

type ServerConfig struct {
	Port           int           `json:"port" env:"SERVER_PORT" default:"9000"`
	ReadTimeout    time.Duration `json:"read_timeout" env:"SERVER_READ_TIMEOUT" default:"30s"`
	WriteTimeout   time.Duration `json:"write_timeout" env:"SERVER_WRITE_TIMEOUT" default:"30s"`
	IdleTimeout    time.Duration `json:"idle_timeout" env:"SERVER_IDLE_TIMEOUT" default:"120s"`
	AllowedOrigins string        `json:"allowed_origins" env:"SERVER_ALLOWED_ORIGINS" default:"http://localhost:3000"`
}

type DatabaseConfig struct {
	Host           string        `json:"host" env:"DB_HOST" default:"localhost"`
	Port           int           `json:"port" env:"DB_PORT" default:"5432"`
	User           string        `json:"user" env:"DB_USER" default:"fieldboard"`
	Password       string        `json:"-" env:"DB_PASSWORD"`
	Name           string        `json:"name" env:"DB_NAME" default:"fieldboard"`
	SSLMode        string        `json:"ssl_mode" env:"DB_SSL_MODE" default:"disable"`
	MaxConnections int           `json:"max_connections" env:"DB_MAX_CONNECTIONS" default:"25"`
	ConnectTimeout time.Duration `json:"connect_timeout" env:"DB_CONNECT_TIMEOUT" default:"10s"`
}

type AuthConfig struct {
	ServiceURL string        `json:"service_url" env:"AUTH_SERVICE_URL" default:"http://auth-service:8888"`
	Timeout    time.Duration `json:"timeout" env:"AUTH_TIMEOUT" default:"10s"`
}

// ImageProxyConfig carries the proxy limits. Defaults mirror the domain
// constants; they exist as configuration so deployments can tighten them,
// and they are immutable once loaded.
type ImageProxyConfig struct {
	MaxBytes     int64         `json:"max_bytes" env:"IMAGE_PROXY_MAX_BYTES" default:"10485760"`
	MaxRedirects int           `json:"max_redirects" env:"IMAGE_PROXY_MAX_REDIRECTS" default:"5"`
	FetchTimeout time.Duration `json:"fetch_timeout" env:"IMAGE_PROXY_FETCH_TIMEOUT" default:"8s"`
}

type LoggingConfig struct {
	Level  string `json:"level" env:"LOG_LEVEL" default:"info"`
	Format string `json:"format" env:"LOG_FORMAT" default:"json"`
}

// NewConfig loads configuration from environment variables with defaults
// from struct tags, then validates it.
func NewConfig() (*Config, error) {
	config := &Config{}

	if err := loadFromEnvironment(config); err != nil {
		return nil, err
	}

	if err := validateConfig(config); err != nil {
		return nil, err
	}

	return config, nil
}
