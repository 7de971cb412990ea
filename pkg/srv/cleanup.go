package srv

import "context"

type cleanupService struct {
	cleanup func() error
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

// NewCleanup wraps a close function as a shutdown-only Service so resources
// like database handles participate in the ordered shutdown.
func NewCleanup(fn func() error) Service {
	return &cleanupService{cleanup: fn}
}
