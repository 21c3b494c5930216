// Command lambda serves the same router behind API Gateway proxy events.
// Notifications are enqueued when Redis is configured; workers run in cmd/api.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/awslabs/aws-lambda-go-api-proxy/echo"

	"github.com/deppfellow/barbershop-api/internal/config"
	"github.com/deppfellow/barbershop-api/internal/handler"
	"github.com/deppfellow/barbershop-api/internal/logger"
	"github.com/deppfellow/barbershop-api/internal/repository"
	"github.com/deppfellow/barbershop-api/internal/router"
	"github.com/deppfellow/barbershop-api/internal/server"
	"github.com/deppfellow/barbershop-api/internal/service"
)

// The pool and router are built once per container and reused across invocations.
var adapter *echoadapter.EchoLambda

func handle(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	return adapter.ProxyWithContext(ctx, req)
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// A cold start must not fail on the database: preflights and /status
	// still answer, and queries dial lazily once it is back.
	cfg.Database.RequirePing = false

	loggerService := logger.NewLoggerService(cfg.Observability)
	log := logger.NewLoggerWithService(cfg.Observability, loggerService)

	srv, err := server.New(cfg, &log, loggerService)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize server")
	}

	services, err := service.NewService(srv, repository.NewRepositories(srv))
	if err != nil {
		log.Fatal().Err(err).Msg("could not create services")
	}

	e := router.NewRouter(srv, handler.NewHandlers(srv, services))
	e.IPExtractor = router.APIGatewaySourceIP(e.IPExtractor)

	adapter = echoadapter.New(e)

	lambda.Start(handle)
}
