package driver

import (
	"context"

	"github.com/nightgrid/neonmud/internal/world"
)

// RoamManager walks the roaming population one step per tick. Run it
// on a 3 second cadence.
type RoamManager struct {
	world *world.World
}

func NewRoamManager(w *world.World) *RoamManager {
	return &RoamManager{world: w}
}

func (m *RoamManager) Tick(_ context.Context) error {
	m.world.TickRoaming()
	return nil
}
