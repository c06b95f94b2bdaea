package service

import (
	"context"
	"errors"
	"testing"

	"coursecatalog/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSecrets struct {
	gotName string
	value   string
	err     error
}

func (f *fakeSecrets) AccessSecret(_ context.Context, name string) (string, error) {
	f.gotName = name
	return f.value, f.err
}

func TestSecretVersionName(t *testing.T) {
	assert.Equal(t, "projects/p/secrets/jwt/versions/latest", SecretVersionName("p", "jwt"))
	assert.Equal(t, "projects/q/secrets/jwt/versions/latest", SecretVersionName("p", "projects/q/secrets/jwt"))
	assert.Equal(t, "projects/q/secrets/jwt/versions/3", SecretVersionName("p", "projects/q/secrets/jwt/versions/3"))
}

func TestResolveJWTSecret(t *testing.T) {
	ctx := context.Background()

	got, err := ResolveJWTSecret(ctx, &config.Config{JWTSecret: "env-secret"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "env-secret", got)

	fs := &fakeSecrets{value: "sm-secret\n"}
	got, err = ResolveJWTSecret(ctx, &config.Config{GCPProjectID: "p", JWTSecretName: "jwt"}, fs)
	require.NoError(t, err)
	assert.Equal(t, "sm-secret", got)
	assert.Equal(t, "projects/p/secrets/jwt/versions/latest", fs.gotName)

	_, err = ResolveJWTSecret(ctx, &config.Config{JWTSecretName: "jwt"}, &fakeSecrets{value: "  "})
	require.Error(t, err)

	_, err = ResolveJWTSecret(ctx, &config.Config{JWTSecretName: "jwt"}, &fakeSecrets{err: errors.New("denied")})
	require.ErrorContains(t, err, "denied")

	_, err = ResolveJWTSecret(ctx, &config.Config{JWTSecretName: "jwt"}, nil)
	require.ErrorIs(t, err, config.ErrMissingJWTSecret)
}
