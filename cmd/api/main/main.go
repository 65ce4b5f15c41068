//go:build lambda
// +build lambda

package main

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/davecgh/go-spew/spew"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/proofofcontribution/permit-agent/internal/config"
	"github.com/proofofcontribution/permit-agent/internal/logger"
	"github.com/proofofcontribution/permit-agent/internal/server"
)

// @title           Proof-of-Contribution Permit Agent
// @version         1.0
// @description     Scores GitHub commits and issues EIP-712 signed mint permits
// @BasePath  /

var ginLambda *ginadapter.GinLambda

func init() {
	ctx := context.Background()

	cfg, err := config.Load(ctx, config.WithoutDotEnv())
	if err != nil {
		panic(err)
	}

	logger.InitLogger(cfg.Stage)
	gin.SetMode(gin.ReleaseMode)

	router, err := server.New(ctx, cfg)
	if err != nil {
		logger.Fatal("Unable to build router", zap.Error(err))
	}

	ginLambda = ginadapter.New(router)
}

func Handler(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	logger.Debug("Received Lambda request",
		zap.String("path", req.Path),
		zap.String("request", spew.Sdump(req.RequestContext)),
	)

	return ginLambda.ProxyWithContext(ctx, req)
}

func main() {
	defer func() { _ = logger.Sync() }()
	lambda.Start(Handler)
}
