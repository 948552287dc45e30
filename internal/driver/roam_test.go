package driver

import (
	"context"
	"testing"

	"github.com/pixil98/go-testutil"

	"github.com/nightgrid/neonmud/internal/rng"
	"github.com/nightgrid/neonmud/internal/world"
)

func TestRoamManagerTick(t *testing.T) {
	w := world.New(rng.New(12))
	m := NewRoamManager(w)
	before := w.TotalMobCount()

	for range 5 {
		if err := m.Tick(context.Background()); err != nil {
			t.Fatalf("tick: %v", err)
		}
	}

	testutil.AssertEqual(t, "population preserved", w.TotalMobCount(), before)
}
