package command

import (
	"fmt"
	"time"

	"github.com/pixil98/go-errors"
)

type Config struct {
	// Seed fixes the world generation and simulation rng. Zero picks a
	// seed from the clock.
	Seed uint64 `json:"seed,omitempty"`

	RoamInterval  string `json:"roam_interval,omitempty"`
	RegenInterval string `json:"regen_interval,omitempty"`

	Listeners []ListenerConfig `json:"listeners"`
	Storage   StorageConfig    `json:"storage"`
	Nats      NatsConfig       `json:"nats"`
}

const (
	defaultRoamInterval  = 3 * time.Second
	defaultRegenInterval = time.Second
)

func (c *Config) Validate() error {
	el := errors.NewErrorList()

	if c.RoamInterval != "" {
		d, err := time.ParseDuration(c.RoamInterval)
		if err != nil {
			el.Add(fmt.Errorf("parsing roam_interval: %w", err))
		} else if d < time.Second {
			el.Add(fmt.Errorf("roam_interval must be at least 1 second"))
		}
	}

	if c.RegenInterval != "" {
		d, err := time.ParseDuration(c.RegenInterval)
		if err != nil {
			el.Add(fmt.Errorf("parsing regen_interval: %w", err))
		} else if d < time.Second {
			el.Add(fmt.Errorf("regen_interval must be at least 1 second"))
		}
	}

	if len(c.Listeners) == 0 {
		el.Add(fmt.Errorf("at least one listener is required"))
	}
	for i, l := range c.Listeners {
		err := l.validate()
		if err != nil {
			el.Add(fmt.Errorf("listener %d: %w", i, err))
		}
	}

	el.Add(c.Storage.validate())
	el.Add(c.Nats.validate())

	return el.Err()
}

func (c *Config) roamInterval() time.Duration {
	if c.RoamInterval == "" {
		return defaultRoamInterval
	}
	d, err := time.ParseDuration(c.RoamInterval)
	if err != nil {
		return defaultRoamInterval
	}
	return d
}

func (c *Config) regenInterval() time.Duration {
	if c.RegenInterval == "" {
		return defaultRegenInterval
	}
	d, err := time.ParseDuration(c.RegenInterval)
	if err != nil {
		return defaultRegenInterval
	}
	return d
}
