// Package driver runs the background simulation: named tickers that
// advance managers on a fixed cadence.
package driver

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

const DefaultTickLength = time.Second * 2

// Manager is anything advanced by the driver's clock.
type Manager interface {
	Tick(context.Context) error
}

// Driver ticks its managers at a fixed interval. Start blocks until
// the context is cancelled; a manager error stops the driver.
type Driver struct {
	name       string
	tickLength time.Duration
	managers   []Manager
}

func New(name string, managers []Manager, opts ...Opt) *Driver {
	d := &Driver{
		name:       name,
		tickLength: DefaultTickLength,
		managers:   managers,
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

func (d *Driver) Start(ctx context.Context) error {
	slog.InfoContext(ctx, "driver started", "driver", d.name, "tick", d.tickLength)
	ticker := time.NewTicker(d.tickLength)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := d.Tick(ctx); err != nil {
				return fmt.Errorf("driver %s: %w", d.name, err)
			}
		}
	}
}

func (d *Driver) Tick(ctx context.Context) error {
	for _, m := range d.managers {
		if err := m.Tick(ctx); err != nil {
			return err
		}
	}
	return nil
}
