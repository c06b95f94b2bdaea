package service

import (
	"context"
	"fmt"
	"strings"

	"coursecatalog/internal/config"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	"cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
	"google.golang.org/api/option"
)

// SecretAccessor reads secret payloads by resource name.
type SecretAccessor interface {
	AccessSecret(ctx context.Context, name string) (string, error)
}

// SecretManagerService reads secrets from Google Secret Manager.
type SecretManagerService struct {
	client *secretmanager.Client
}

func NewSecretManagerService(ctx context.Context, cfg *config.Config) (*SecretManagerService, error) {
	var opts []option.ClientOption
	if cfg.GoogleCredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.GoogleCredentialsFile))
	}

	client, err := secretmanager.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Secret Manager client: %w", err)
	}
	return &SecretManagerService{client: client}, nil
}

func (s *SecretManagerService) AccessSecret(ctx context.Context, name string) (string, error) {
	result, err := s.client.AccessSecretVersion(ctx, &secretmanagerpb.AccessSecretVersionRequest{
		Name: name,
	})
	if err != nil {
		return "", fmt.Errorf("failed to access secret version: %w", err)
	}
	return string(result.Payload.Data), nil
}

func (s *SecretManagerService) Close() error {
	return s.client.Close()
}

// SecretVersionName expands a short secret name ("jwt-secret") into a full
// version resource using the project; full resource names pass through.
func SecretVersionName(projectID, name string) string {
	if strings.HasPrefix(name, "projects/") {
		if !strings.Contains(name, "/versions/") {
			return name + "/versions/latest"
		}
		return name
	}
	return fmt.Sprintf("projects/%s/secrets/%s/versions/latest", projectID, name)
}

// ResolveJWTSecret returns JWT_SECRET when set, otherwise reads JWT_SECRET_NAME from Secret Manager.
func ResolveJWTSecret(ctx context.Context, cfg *config.Config, accessor SecretAccessor) (string, error) {
	if cfg.JWTSecret != "" {
		return cfg.JWTSecret, nil
	}
	if accessor == nil {
		return "", config.ErrMissingJWTSecret
	}
	secret, err := accessor.AccessSecret(ctx, SecretVersionName(cfg.GCPProjectID, cfg.JWTSecretName))
	if err != nil {
		return "", err
	}
	secret = strings.TrimSpace(secret)
	if secret == "" {
		return "", fmt.Errorf("secret %s is empty", cfg.JWTSecretName)
	}
	return secret, nil
}
