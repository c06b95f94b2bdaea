package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DB_CONNECTION_STRING", "postgres://u:p@localhost:5432/catalog")
	t.Setenv("JWT_SECRET", "secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 5*time.Minute, cfg.JWTAccessTTL)
	assert.Equal(t, 24*time.Hour, cfg.JWTRefreshTTL)
	assert.False(t, cfg.JWTRotateRefresh)
	assert.Equal(t, 10, cfg.BcryptCost)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.False(t, cfg.IsDevelopment())
}

func TestLoadMissingDatabase(t *testing.T) {
	t.Setenv("DB_CONNECTION_STRING", "")
	require.NoError(t, os.Unsetenv("DB_CONNECTION_STRING"))
	t.Setenv("JWT_SECRET", "secret")

	_, err := Load()
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want error
	}{
		{"secret from env", Config{JWTSecret: "s"}, nil},
		{"secret from secret manager", Config{JWTSecretName: "projects/p/secrets/jwt/versions/latest"}, nil},
		{"no secret", Config{}, ErrMissingJWTSecret},
		{"topic without project", Config{JWTSecret: "s", PubSubTopic: "catalog"}, ErrMissingProjectID},
		{"topic with project", Config{JWTSecret: "s", PubSubTopic: "catalog", GCPProjectID: "p"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.cfg.Validate(), tt.want)
		})
	}
}

func TestIsDevelopment(t *testing.T) {
	assert.True(t, (&Config{Environment: "Development"}).IsDevelopment())
	assert.False(t, (&Config{Environment: "staging"}).IsDevelopment())
}
