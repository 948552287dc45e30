package world

import (
	"testing"

	"github.com/pixil98/go-testutil"

	"github.com/nightgrid/neonmud/internal/game"
	"github.com/nightgrid/neonmud/internal/rng"
)

func TestIsStreetRoom(t *testing.T) {
	tests := map[string]struct {
		id  string
		exp bool
	}{
		"plaza":            {id: "neon_plaza", exp: true},
		"generated street": {id: "synth_street_e_4", exp: true},
		"generated alley":  {id: "back_alley_w_3", exp: true},
		"market row":       {id: "market_row_9", exp: true},
		"scrapyard":        {id: "scrapyard", exp: true},
		"interior":         {id: "corporate_lobby", exp: false},
		"metro tunnel":     {id: "metro_tunnel_4", exp: false},
		"mission room":     {id: "inst_runner_ab_r1", exp: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			testutil.AssertEqual(t, "classification", isStreetRoom(tt.id), tt.exp)
		})
	}
}

func TestSeedRoamingPlacesOnStreets(t *testing.T) {
	w := New(rng.New(9))
	before := w.TotalMobCount()

	w.SeedRoaming(5)

	testutil.AssertEqual(t, "total", w.TotalMobCount(), before+5)

	w.mu.Lock()
	defer w.mu.Unlock()
	for roomId := range w.mobs {
		if !isStreetRoom(roomId) {
			t.Errorf("unit seeded in non-street room %q", roomId)
		}
	}
}

func TestWeightedSpeciesNeverPicksBosses(t *testing.T) {
	w := New(rng.New(2))

	for range 500 {
		s := w.weightedSpecies()
		if s.Weight == 0 {
			t.Fatalf("weight-0 species %q rolled", s.Name)
		}
	}
}

func TestTickRoamingPreservesPopulation(t *testing.T) {
	w := New(rng.New(5))
	before := w.TotalMobCount()

	for range 20 {
		w.TickRoaming()
	}

	testutil.AssertEqual(t, "population", w.TotalMobCount(), before)
}

func TestTickRoamingSingleStep(t *testing.T) {
	w := New(rng.New(5))

	// Isolate a single unit on a long street so its one-step move is
	// observable.
	w.mu.Lock()
	w.mobs = make(map[string]map[string]int)
	w.mu.Unlock()
	w.AddMob("industrial_ring_10", "Street Punk")

	w.TickRoaming()

	var at string
	w.mu.Lock()
	for roomId, counts := range w.mobs {
		if counts["Street Punk"] > 0 {
			at = roomId
		}
	}
	w.mu.Unlock()

	reachable := map[string]bool{"industrial_ring_9": true, "industrial_ring_11": true, "loading_yard_2": true}
	if !reachable[at] {
		t.Fatalf("unit moved to %q, not one step from industrial_ring_10", at)
	}
}

func TestTickRoamingKeepsMissionHostilesInPlace(t *testing.T) {
	w := New(rng.New(4))
	p := game.NewPlayer("Runner", "back_alley_e_2")
	p.Account = "runner"

	if _, err := w.StartInstance(p, "", "easy"); err != nil {
		t.Fatalf("starting instance: %v", err)
	}
	inst := w.InstanceFor(p.Key())

	before := make(map[string]map[string]int, len(inst.Rooms))
	for _, rid := range inst.Rooms {
		before[rid] = w.MobCounts(rid)
	}

	for range 10 {
		w.TickRoaming()
	}

	// The boss is still waiting at the end of the chain and no escort
	// has drifted out into the city.
	testutil.AssertEqual(t, "boss holds final room", w.MobCounts(inst.FinalRoom())[inst.Boss], 1)
	for _, rid := range inst.Rooms {
		after := w.MobCounts(rid)
		for species, count := range before[rid] {
			testutil.AssertEqual(t, rid+" "+species, after[species], count)
		}
		testutil.AssertEqual(t, rid+" population", len(after), len(before[rid]))
	}
	testutil.AssertEqual(t, "boss not at entry", w.MobCounts(inst.EntryRoom)[inst.Boss], 0)
}

func TestTickRoamingSkipsBossesOnStreets(t *testing.T) {
	w := New(rng.New(7))

	w.mu.Lock()
	w.mobs = make(map[string]map[string]int)
	w.mu.Unlock()
	w.AddMob("industrial_ring_10", "Chrome Butcher")

	for range 10 {
		w.TickRoaming()
	}

	testutil.AssertEqual(t, "boss stayed put", w.MobCounts("industrial_ring_10")["Chrome Butcher"], 1)
}

func TestTakeAndAddMob(t *testing.T) {
	w := New(rng.New(5))

	w.AddMob("hall", "Gang Member")
	w.AddMob("hall", "Gang Member")
	testutil.AssertEqual(t, "count after add", w.MobCounts("hall")["Gang Member"], 2)
	testutil.AssertEqual(t, "flat list", len(w.MobsInRoom("hall")), 2)

	w.TakeMob("hall", "Gang Member")
	testutil.AssertEqual(t, "count after take", w.MobCounts("hall")["Gang Member"], 1)

	w.TakeMob("hall", "Gang Member")
	w.TakeMob("hall", "Gang Member") // extra take is a no-op
	testutil.AssertEqual(t, "count drained", w.MobCounts("hall")["Gang Member"], 0)
}
