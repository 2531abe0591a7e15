package sim

import (
	"context"
	"fmt"
)

// Run advances the controller by up to generations ticks without a
// terminal. fn is called after every tick and may stop the run early by
// returning false. Run returns ctx.Err() if the context ends first.
func (c *Controller) Run(ctx context.Context, generations int, fn func(Status) bool) error {
	if generations <= 0 {
		return fmt.Errorf("generations must be positive, got %d", generations)
	}

	for i := 0; i < generations && c.running; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		c.Handle(TickEvent{})

		if fn != nil && !fn(c.Status()) {
			return nil
		}
	}

	return nil
}
