package srv

import (
	"context"
	"fmt"

	"github.com/sandevgo/assistbot/pkg/log"
)

type Service interface {
	Start(ctx context.Context) error
	Shutdown(ctx context.Context) error
}

// Named lets a service pick the label used in lifecycle logs.
type Named interface {
	Name() string
}

func nameOf(s Service) string {
	if n, ok := s.(Named); ok {
		return n.Name()
	}
	return fmt.Sprintf("%T", s)
}

// StartServices starts every service on its own goroutine.
// A service failing to start stops the process.
func StartServices(ctx context.Context, services []Service) {
	logger := log.FromCtx(ctx)
	for _, service := range services {
		go func(service Service) {
			logger.Debug().Str("service", nameOf(service)).Msg("starting service")
			if err := service.Start(ctx); err != nil {
				logger.Fatal().Err(err).Msgf("%s failed to start", nameOf(service))
			}
		}(service)
	}
}

// ShutdownServices blocks until ctx is done, then stops services in reverse order.
func ShutdownServices(ctx context.Context, services []Service) {
	<-ctx.Done()
	logger := log.FromCtx(ctx)
	for i := len(services) - 1; i >= 0; i-- {
		if err := services[i].Shutdown(ctx); err != nil {
			logger.Error().Err(err).Msgf("%s failed to shutdown", nameOf(services[i]))
		}
	}
}
