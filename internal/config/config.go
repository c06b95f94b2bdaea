package config

import (
	"errors"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port        string `envconfig:"PORT" default:"8080"`
	Environment string `envconfig:"ENV" default:"production"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`

	DBConnectionString string `envconfig:"DB_CONNECTION_STRING" required:"true"`

	// JWT settings. Either JWTSecret or JWTSecretName must be set; the latter is
	// a Secret Manager version resource, e.g. projects/p/secrets/jwt/versions/latest.
	JWTSecret        string        `envconfig:"JWT_SECRET"`
	JWTSecretName    string        `envconfig:"JWT_SECRET_NAME"`
	JWTAccessTTL     time.Duration `envconfig:"JWT_ACCESS_TTL" default:"5m"`
	JWTRefreshTTL    time.Duration `envconfig:"JWT_REFRESH_TTL" default:"24h"`
	JWTRotateRefresh bool          `envconfig:"JWT_ROTATE_REFRESH" default:"false"`
	BcryptCost       int           `envconfig:"BCRYPT_COST" default:"10"`

	// Google Cloud settings
	GCPProjectID          string `envconfig:"GCP_PROJECT_ID"`
	GoogleCredentialsFile string `envconfig:"GOOGLE_CREDENTIALS_FILE"`
	PubSubTopic           string `envconfig:"PUBSUB_TOPIC"`

	CORSAllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`
}

var (
	ErrMissingJWTSecret = errors.New("one of JWT_SECRET or JWT_SECRET_NAME must be set")
	ErrMissingProjectID = errors.New("GCP_PROJECT_ID is required when PUBSUB_TOPIC is set")
)

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks settings whose requirements depend on each other.
func (c *Config) Validate() error {
	if c.JWTSecret == "" && c.JWTSecretName == "" {
		return ErrMissingJWTSecret
	}
	if c.PubSubTopic != "" && c.GCPProjectID == "" {
		return ErrMissingProjectID
	}
	return nil
}

func (c *Config) IsDevelopment() bool {
	return strings.EqualFold(c.Environment, "development")
}
