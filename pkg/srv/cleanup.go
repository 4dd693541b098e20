package srv

import "context"

type cleanupService struct {
	name    string
	cleanup func() error
}

func (c *cleanupService) Name() string {
	return c.name
}

func (c *cleanupService) Start(ctx context.Context) error {
	return nil
}

func (c *cleanupService) Shutdown(ctx context.Context) error {
	if c.cleanup != nil {
		return c.cleanup()
	}
	return nil
}

// NewCleanup wraps a release function so it runs during shutdown.
func NewCleanup(name string, fn func() error) Service {
	return &cleanupService{name: name, cleanup: fn}
}
