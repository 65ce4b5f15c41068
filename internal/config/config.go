package config

import (
	"context"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	awsclient "github.com/proofofcontribution/permit-agent/internal/client/aws"
	"github.com/proofofcontribution/permit-agent/internal/helpers"
	"github.com/proofofcontribution/permit-agent/internal/logger"
)

// Environment variable names
const (
	EnvStage           = "STAGE"
	EnvLogLevel        = "LOG_LEVEL"
	EnvConfigFile      = "POC_CONFIG_FILE"
	EnvAPIPort         = "API_PORT"
	EnvGinMode         = "GIN_MODE"
	EnvGitHubAPIURL    = "GITHUB_API_URL"
	EnvGitHubToken     = "GITHUB_TOKEN"
	EnvGitHubTimeout   = "GITHUB_TIMEOUT"
	EnvGitHubRetries   = "GITHUB_MAX_RETRIES"
	EnvOpenAIKey       = "OPENAI_API_KEY"
	EnvOpenAIBaseURL   = "OPENAI_BASE_URL"
	EnvOpenAIModel     = "OPENAI_MODEL"
	EnvOpenAITimeout   = "OPENAI_TIMEOUT"
	EnvSigningKey      = "AI_VERIFIER_PRIVATE_KEY"
	EnvCORSOrigins     = "CORS_ALLOWED_ORIGINS"
	EnvCORSMethods     = "CORS_ALLOWED_METHODS"
	EnvCORSHeaders     = "CORS_ALLOWED_HEADERS"
	EnvRateLimitRPS    = "RATE_LIMIT_RPS"
	EnvRateLimitBurst  = "RATE_LIMIT_BURST"
	arnSuffix          = "_ARN"
	defaultAPIPort     = "8000"
	defaultGitHubURL   = "https://api.github.com"
	defaultOpenAIModel = "gpt-4o-mini"
	defaultTimeout     = 30 * time.Second
)

// SecretResolver resolves a secret by ARN env var with a direct env var fallback
type SecretResolver interface {
	GetSecretString(ctx context.Context, secretArnEnvVar string, fallbackEnvVar string) (string, error)
}

// Config is constructed once at startup and handed to every component.
// Secrets are never read from the YAML overlay.
type Config struct {
	Stage    string `yaml:"stage"`
	LogLevel string `yaml:"log_level"`
	APIPort  string `yaml:"api_port"`
	GinMode  string `yaml:"gin_mode"`

	GitHub    GitHubConfig    `yaml:"github"`
	OpenAI    OpenAIConfig    `yaml:"openai"`
	Signer    SignerConfig    `yaml:"-"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// GitHubConfig configures the code-hosting client
type GitHubConfig struct {
	APIURL     string        `yaml:"api_url"`
	Token      string        `yaml:"-"`
	Timeout    time.Duration `yaml:"timeout"`
	MaxRetries int           `yaml:"max_retries"`
}

// OpenAIConfig configures the evaluative model. An empty APIKey selects the heuristic scorer.
type OpenAIConfig struct {
	APIKey  string        `yaml:"-"`
	BaseURL string        `yaml:"base_url"`
	Model   string        `yaml:"model"`
	Timeout time.Duration `yaml:"timeout"`
}

// SignerConfig holds the permit signing key. Empty is allowed until sign time.
type SignerConfig struct {
	PrivateKey string
}

// CORSConfig mirrors the CORS_* env vars
type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
	AllowedMethods []string `yaml:"allowed_methods"`
	AllowedHeaders []string `yaml:"allowed_headers"`
}

// RateLimitConfig configures the per-client token bucket
type RateLimitConfig struct {
	RequestsPerSecond float64 `yaml:"requests_per_second"`
	Burst             int     `yaml:"burst"`
}

// Default returns the configuration used when nothing is set
func Default() *Config {
	return &Config{
		Stage:    helpers.StageLocal,
		LogLevel: "info",
		APIPort:  defaultAPIPort,
		GitHub: GitHubConfig{
			APIURL:  defaultGitHubURL,
			Timeout: defaultTimeout,
		},
		OpenAI: OpenAIConfig{
			Model:   defaultOpenAIModel,
			Timeout: defaultTimeout,
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders: []string{"Origin", "Content-Type", "Accept", "X-Correlation-ID"},
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 10,
			Burst:             20,
		},
	}
}

// Loader assembles a Config from .env, an optional YAML file, env vars and secrets
type Loader struct {
	getenv      func(string) string
	secrets     SecretResolver
	file        string
	skipDotEnv  bool
	readFile    func(string) ([]byte, error)
	newResolver func(ctx context.Context, getenv func(string) string) (SecretResolver, error)
}

// Option customizes a Loader
type Option func(*Loader)

// WithConfigFile sets the YAML overlay path, taking precedence over POC_CONFIG_FILE
func WithConfigFile(path string) Option {
	return func(l *Loader) { l.file = path }
}

// WithGetenv swaps the env lookup, mostly for tests
func WithGetenv(getenv func(string) string) Option {
	return func(l *Loader) { l.getenv = getenv }
}

// WithSecretResolver sets the resolver used for tokens and the signing key
func WithSecretResolver(r SecretResolver) Option {
	return func(l *Loader) { l.secrets = r }
}

// WithSecretsAPI resolves *_ARN secrets through api instead of the default AWS
// client. The ARN and fallback lookups still go through the loader's env.
func WithSecretsAPI(api awsclient.SecretValueAPI) Option {
	return func(l *Loader) {
		l.newResolver = func(_ context.Context, getenv func(string) string) (SecretResolver, error) {
			return awsclient.NewSecretsManagerClientWithAPI(api, getenv), nil
		}
	}
}

// WithoutDotEnv skips loading the .env file
func WithoutDotEnv() Option {
	return func(l *Loader) { l.skipDotEnv = true }
}

// Load builds the process configuration
func Load(ctx context.Context, opts ...Option) (*Config, error) {
	l := &Loader{
		getenv:   os.Getenv,
		readFile: os.ReadFile,
		newResolver: func(ctx context.Context, getenv func(string) string) (SecretResolver, error) {
			return awsclient.NewSecretsManagerClient(ctx, getenv)
		},
	}
	for _, opt := range opts {
		opt(l)
	}
	return l.Load(ctx)
}

// Load builds the configuration: defaults, then the YAML file, then env vars, then secrets
func (l *Loader) Load(ctx context.Context) (*Config, error) {
	if !l.skipDotEnv {
		if err := godotenv.Load(); err != nil {
			logger.Debug("No .env file loaded", zap.Error(err))
		}
	}

	cfg := Default()

	path := l.file
	if path == "" {
		path = l.getenv(EnvConfigFile)
	}
	if path != "" {
		if err := l.applyFile(cfg, path); err != nil {
			return nil, err
		}
	}

	if err := l.applyEnv(cfg); err != nil {
		return nil, err
	}

	cfg.Stage = helpers.NormalizeStage(cfg.Stage)
	if !helpers.IsValidStage(cfg.Stage) {
		return nil, errors.Errorf("invalid stage %q, must be one of: %s, %s, %s",
			cfg.Stage, helpers.StageLocal, helpers.StageDev, helpers.StageProd)
	}

	if err := l.resolveSecrets(ctx, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (l *Loader) applyFile(cfg *Config, path string) error {
	data, err := l.readFile(path)
	if err != nil {
		return errors.Wrapf(err, "failed to read config file %s", path)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return errors.Wrapf(err, "failed to parse config file %s", path)
	}
	return nil
}

func (l *Loader) applyEnv(cfg *Config) error {
	setString(&cfg.Stage, l.getenv(EnvStage))
	setString(&cfg.LogLevel, l.getenv(EnvLogLevel))
	setString(&cfg.APIPort, l.getenv(EnvAPIPort))
	setString(&cfg.GinMode, l.getenv(EnvGinMode))
	setString(&cfg.GitHub.APIURL, l.getenv(EnvGitHubAPIURL))
	setString(&cfg.OpenAI.BaseURL, l.getenv(EnvOpenAIBaseURL))
	setString(&cfg.OpenAI.Model, l.getenv(EnvOpenAIModel))

	if err := setDuration(&cfg.GitHub.Timeout, EnvGitHubTimeout, l.getenv(EnvGitHubTimeout)); err != nil {
		return err
	}
	if err := setDuration(&cfg.OpenAI.Timeout, EnvOpenAITimeout, l.getenv(EnvOpenAITimeout)); err != nil {
		return err
	}

	if v := l.getenv(EnvGitHubRetries); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return errors.Errorf("%s must be a non-negative integer, got %q", EnvGitHubRetries, v)
		}
		cfg.GitHub.MaxRetries = n
	}

	setList(&cfg.CORS.AllowedOrigins, l.getenv(EnvCORSOrigins))
	setList(&cfg.CORS.AllowedMethods, l.getenv(EnvCORSMethods))
	setList(&cfg.CORS.AllowedHeaders, l.getenv(EnvCORSHeaders))

	if v := l.getenv(EnvRateLimitRPS); v != "" {
		rps, err := strconv.ParseFloat(v, 64)
		if err != nil || rps <= 0 {
			return errors.Errorf("%s must be a positive number, got %q", EnvRateLimitRPS, v)
		}
		cfg.RateLimit.RequestsPerSecond = rps
	}
	if v := l.getenv(EnvRateLimitBurst); v != "" {
		burst, err := strconv.Atoi(v)
		if err != nil || burst <= 0 {
			return errors.Errorf("%s must be a positive integer, got %q", EnvRateLimitBurst, v)
		}
		cfg.RateLimit.Burst = burst
	}
	return nil
}

// resolveSecrets fills tokens and the signing key. All three are optional here;
// components decide whether an empty value is fatal.
func (l *Loader) resolveSecrets(ctx context.Context, cfg *Config) error {
	resolver := l.secrets
	if resolver == nil {
		if l.anyARN() {
			r, err := l.newResolver(ctx, l.getenv)
			if err != nil {
				return errors.Wrap(err, "failed to initialize secrets manager")
			}
			resolver = r
		} else {
			resolver = awsclient.NewSecretsManagerClientWithAPI(nil, l.getenv)
		}
	}

	targets := []struct {
		env string
		dst *string
	}{
		{EnvGitHubToken, &cfg.GitHub.Token},
		{EnvOpenAIKey, &cfg.OpenAI.APIKey},
		{EnvSigningKey, &cfg.Signer.PrivateKey},
	}
	for _, t := range targets {
		v, err := resolver.GetSecretString(ctx, t.env+arnSuffix, t.env)
		if err != nil {
			if errors.Is(err, awsclient.ErrSecretNotFound) {
				logger.Debug("Optional secret not configured", zap.String("envVar", t.env))
				continue
			}
			return errors.Wrapf(err, "failed to resolve %s", t.env)
		}
		*t.dst = strings.TrimSpace(v)
	}
	return nil
}

func (l *Loader) anyARN() bool {
	for _, env := range []string{EnvGitHubToken, EnvOpenAIKey, EnvSigningKey} {
		if l.getenv(env+arnSuffix) != "" {
			return true
		}
	}
	return false
}

// ModelEnabled reports whether the model scorer should be used
func (c *Config) ModelEnabled() bool {
	return c.OpenAI.APIKey != ""
}

// IsDevelopment reports whether the stage is anything but prod
func (c *Config) IsDevelopment() bool {
	return helpers.IsDevelopment(c.Stage)
}

func setString(dst *string, v string) {
	if v = strings.TrimSpace(v); v != "" {
		*dst = v
	}
}

func setList(dst *[]string, v string) {
	if strings.TrimSpace(v) == "" {
		return
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) > 0 {
		*dst = out
	}
}

// setDuration accepts Go durations ("15s") or bare seconds ("15")
func setDuration(dst *time.Duration, name, v string) error {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	if secs, err := strconv.Atoi(v); err == nil {
		if secs <= 0 {
			return errors.Errorf("%s must be positive, got %q", name, v)
		}
		*dst = time.Duration(secs) * time.Second
		return nil
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return errors.Errorf("%s must be a positive duration, got %q", name, v)
	}
	*dst = d
	return nil
}
