package aws

import (
	"context"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/proofofcontribution/permit-agent/internal/logger"
)

// ErrSecretNotFound is returned when neither the ARN nor the direct env var yields a value.
var ErrSecretNotFound = errors.New("secret not found")

// SecretValueAPI is the slice of the Secrets Manager API the client needs.
type SecretValueAPI interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

// SecretsManagerClient resolves secrets (GitHub token, model API key, signing key)
// from AWS Secrets Manager with an env var fallback.
type SecretsManagerClient struct {
	svc    SecretValueAPI
	getenv func(string) string
}

// NewSecretsManagerClient creates a client from the default AWS configuration chain
// (environment variables, shared config, IAM role). getenv looks up the ARN and
// fallback variables; nil means os.Getenv.
func NewSecretsManagerClient(ctx context.Context, getenv func(string) string) (*SecretsManagerClient, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "unable to load AWS SDK config")
	}

	return NewSecretsManagerClientWithAPI(secretsmanager.NewFromConfig(cfg), getenv), nil
}

// NewSecretsManagerClientWithAPI builds a client around an existing API and env lookup.
func NewSecretsManagerClientWithAPI(svc SecretValueAPI, getenv func(string) string) *SecretsManagerClient {
	if getenv == nil {
		getenv = os.Getenv
	}
	return &SecretsManagerClient{svc: svc, getenv: getenv}
}

// GetSecretString fetches the secret named by the ARN in secretArnEnvVar. When the ARN
// is unset or the fetch fails it falls back to the value of fallbackEnvVar.
// Returns ErrSecretNotFound when both come up empty.
func (c *SecretsManagerClient) GetSecretString(ctx context.Context, secretArnEnvVar string, fallbackEnvVar string) (string, error) {
	secretArn := c.getenv(secretArnEnvVar)

	if secretArn != "" && c.svc != nil {
		logger.Log.Debug("Attempting to fetch secret from Secrets Manager",
			zap.String("arnEnvVar", secretArnEnvVar),
			zap.String("secretArn", secretArn))

		result, err := c.svc.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
			SecretId: aws.String(secretArn),
		})
		if err == nil && result.SecretString != nil && *result.SecretString != "" {
			logger.Log.Info("Fetched secret from Secrets Manager", zap.String("arnEnvVar", secretArnEnvVar))
			return *result.SecretString, nil
		}

		logger.Log.Warn("Failed to retrieve secret from Secrets Manager, falling back to env var",
			zap.String("arnEnvVar", secretArnEnvVar),
			zap.String("fallbackEnvVar", fallbackEnvVar),
			zap.Error(err),
		)
	}

	if secretValue := c.getenv(fallbackEnvVar); secretValue != "" {
		logger.Log.Debug("Using secret value from direct environment variable", zap.String("envVar", fallbackEnvVar))
		return secretValue, nil
	}

	return "", errors.Wrapf(ErrSecretNotFound, "ARN env var %q or direct env var %q", secretArnEnvVar, fallbackEnvVar)
}
