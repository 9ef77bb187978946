package main

// Build the Lambda handler binary:
//   GOOS=linux GOARCH=arm64 CGO_ENABLED=0 go build -o bootstrap ./cmd/lambda-http

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/gin-gonic/gin"

	"boutique-backend/internal/bootstrap"
	"boutique-backend/internal/shared/config"
	"boutique-backend/internal/shared/telemetry"
)

type proxyFunc func(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error)

// newHandler builds the router once, on the first invocation, and proxies API Gateway
// v2 events to it.
func newHandler(build func(ctx context.Context) (*gin.Engine, error)) proxyFunc {
	var (
		once      sync.Once
		initErr   error
		ginLambda *ginadapter.GinLambdaV2
	)
	return func(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
		once.Do(func() {
			router, err := build(ctx)
			if err != nil {
				initErr = err
				return
			}
			ginLambda = ginadapter.NewV2(router)
		})
		if initErr != nil {
			telemetry.Error("lambda.bootstrap_failed", map[string]any{"error": initErr.Error()})
			return errorResponse("bootstrap_failed", "service failed to start"), nil
		}
		return ginLambda.ProxyWithContext(ctx, req)
	}
}

func errorResponse(code, message string) events.APIGatewayV2HTTPResponse {
	body, _ := json.Marshal(gin.H{"error": gin.H{"code": code, "message": message, "details": gin.H{}}})
	return events.APIGatewayV2HTTPResponse{
		StatusCode: http.StatusInternalServerError,
		Body:       string(body),
		Headers:    map[string]string{"Content-Type": "application/json"},
	}
}

func main() {
	cfg := config.Load()
	telemetry.Configure(cfg.LogLevel)

	lambda.Start(newHandler(func(ctx context.Context) (*gin.Engine, error) {
		app, err := bootstrap.Build(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return app.Router, nil
	}))
}
