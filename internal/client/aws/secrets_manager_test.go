package aws

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSecrets struct {
	values map[string]string
	err    error
	calls  int
}

func (f *fakeSecrets) GetSecretValue(_ context.Context, in *secretsmanager.GetSecretValueInput, _ ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	v, ok := f.values[aws.ToString(in.SecretId)]
	if !ok {
		return nil, errors.New("ResourceNotFoundException")
	}
	return &secretsmanager.GetSecretValueOutput{SecretString: aws.String(v)}, nil
}

func envFrom(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestGetSecretString(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		env       map[string]string
		store     *fakeSecrets
		want      string
		wantErr   bool
		wantCalls int
	}{
		{
			name:      "arn resolves from secrets manager",
			env:       map[string]string{"GITHUB_TOKEN_ARN": "arn:gh", "GITHUB_TOKEN": "env-token"},
			store:     &fakeSecrets{values: map[string]string{"arn:gh": "sm-token"}},
			want:      "sm-token",
			wantCalls: 1,
		},
		{
			name:      "secrets manager failure falls back to env",
			env:       map[string]string{"GITHUB_TOKEN_ARN": "arn:gh", "GITHUB_TOKEN": "env-token"},
			store:     &fakeSecrets{err: errors.New("access denied")},
			want:      "env-token",
			wantCalls: 1,
		},
		{
			name:  "no arn uses env directly",
			env:   map[string]string{"GITHUB_TOKEN": "env-token"},
			store: &fakeSecrets{},
			want:  "env-token",
		},
		{
			name:    "nothing configured",
			env:     map[string]string{},
			store:   &fakeSecrets{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := NewSecretsManagerClientWithAPI(tt.store, envFrom(tt.env))

			got, err := client.GetSecretString(ctx, "GITHUB_TOKEN_ARN", "GITHUB_TOKEN")
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrSecretNotFound))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantCalls, tt.store.calls)
		})
	}
}

func TestGetSecretStringWithoutAPI(t *testing.T) {
	client := NewSecretsManagerClientWithAPI(nil, envFrom(map[string]string{
		"OPENAI_API_KEY_ARN": "arn:key",
		"OPENAI_API_KEY":     "sk-local",
	}))

	got, err := client.GetSecretString(context.Background(), "OPENAI_API_KEY_ARN", "OPENAI_API_KEY")
	require.NoError(t, err)
	assert.Equal(t, "sk-local", got)
}
