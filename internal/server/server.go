package server

import (
	"context"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/proofofcontribution/permit-agent/docs" // registers swagger docs
	"github.com/proofofcontribution/permit-agent/internal/client/github"
	"github.com/proofofcontribution/permit-agent/internal/client/llm"
	"github.com/proofofcontribution/permit-agent/internal/config"
	"github.com/proofofcontribution/permit-agent/internal/handlers"
	"github.com/proofofcontribution/permit-agent/internal/interfaces"
	"github.com/proofofcontribution/permit-agent/internal/logger"
	"github.com/proofofcontribution/permit-agent/internal/middleware"
	"github.com/proofofcontribution/permit-agent/internal/services"
)

// Dependencies are the collaborators the router needs. Tests swap in mocks.
type Dependencies struct {
	Verifier interfaces.CommitVerifier
	Signer   interfaces.PermitSigner
}

// BuildDependencies wires the clients and services from cfg.
// A missing signing key does not fail here; it surfaces on the first sign.
func BuildDependencies(cfg *config.Config) *Dependencies {
	githubClient := github.NewClient(github.Options{
		BaseURL:    cfg.GitHub.APIURL,
		Token:      cfg.GitHub.Token,
		Timeout:    cfg.GitHub.Timeout,
		MaxRetries: cfg.GitHub.MaxRetries,
	})

	var completer interfaces.Completer
	if cfg.ModelEnabled() {
		completer = llm.NewClient(llm.Options{
			APIKey:  cfg.OpenAI.APIKey,
			BaseURL: cfg.OpenAI.BaseURL,
			Model:   cfg.OpenAI.Model,
			Timeout: cfg.OpenAI.Timeout,
		})
	}

	resolver := services.NewCommitService(githubClient)
	scorer := services.NewReputationService(completer)
	signer := services.NewPermitSigner(cfg.Signer.PrivateKey)

	logger.Info("Permit pipeline initialized",
		zap.String("github_api", cfg.GitHub.APIURL),
		zap.Bool("github_authenticated", cfg.GitHub.Token != ""),
		zap.Bool("model_scoring", scorer.UsesModel()),
		zap.Bool("signer_configured", cfg.Signer.PrivateKey != ""))

	return &Dependencies{
		Verifier: services.NewVerificationService(resolver, scorer, signer),
		Signer:   signer,
	}
}

// NewRouter builds the gin engine with middleware and routes.
// ctx bounds the rate limiter's cleanup goroutine.
func NewRouter(ctx context.Context, cfg *config.Config, deps *Dependencies) (*gin.Engine, error) {
	if err := middleware.RegisterValidators(); err != nil {
		return nil, err
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(configureCORS(cfg.CORS))
	router.Use(middleware.CorrelationIDMiddleware())

	limiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
	limiter.StartCleanup(ctx)
	router.Use(limiter.Middleware())

	router.Use(middleware.EnhancedLoggingMiddleware(cfg.IsDevelopment()))
	if cfg.GinMode != gin.ReleaseMode {
		router.Use(middleware.RequestLoggingMiddleware())
	}

	healthHandler := handlers.NewHealthHandler()
	verifyHandler := handlers.NewVerifyHandler(deps.Verifier)
	signerHandler := handlers.NewSignerHandler(deps.Signer)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", healthHandler.Health)
	router.GET("/signer", signerHandler.GetSigner)
	router.POST("/verify_commit", verifyHandler.VerifyCommit)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/signer", signerHandler.GetSigner)
		v1.POST("/verify_commit", verifyHandler.VerifyCommit)
	}

	return router, nil
}

// New wires production dependencies from cfg and returns the router
func New(ctx context.Context, cfg *config.Config) (*gin.Engine, error) {
	return NewRouter(ctx, cfg, BuildDependencies(cfg))
}

func configureCORS(c config.CORSConfig) gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = c.AllowedOrigins
	corsConfig.AllowMethods = c.AllowedMethods
	corsConfig.AllowHeaders = c.AllowedHeaders
	corsConfig.ExposeHeaders = []string{middleware.CorrelationIDHeader}

	for _, origin := range c.AllowedOrigins {
		if origin == "*" {
			corsConfig.AllowOrigins = nil
			corsConfig.AllowAllOrigins = true
			break
		}
	}

	return cors.New(corsConfig)
}
