package world

import (
	"fmt"
	"strings"
	"testing"

	"github.com/pixil98/go-testutil"

	"github.com/nightgrid/neonmud/internal/game"
	"github.com/nightgrid/neonmud/internal/rng"
)

func instancePlayer(w *World) *game.Player {
	p := game.NewPlayer("Runner", "back_alley_e_2")
	p.Account = "runner"
	return p
}

func TestStartInstanceTierBounds(t *testing.T) {
	tests := map[string]struct {
		tier         string
		minRooms     int
		maxRooms     int
		minMobs      int
		maxMobs      int
		bossHPMult   float64
		minXP, maxXP int
	}{
		"easy":   {tier: "easy", minRooms: 4, maxRooms: 5, minMobs: 1, maxMobs: 1, bossHPMult: 0.85, minXP: 45, maxXP: 80},
		"medium": {tier: "medium", minRooms: 5, maxRooms: 7, minMobs: 1, maxMobs: 2, bossHPMult: 1.0, minXP: 60, maxXP: 110},
		"hard":   {tier: "hard", minRooms: 7, maxRooms: 9, minMobs: 2, maxMobs: 3, bossHPMult: 1.25, minXP: 95, maxXP: 150},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			// Several seeds so the rolled sizes cover the range.
			for seed := uint64(1); seed <= 10; seed++ {
				w := New(rng.New(seed))
				p := instancePlayer(w)

				_, err := w.StartInstance(p, "", tt.tier)
				if err != nil {
					t.Fatalf("starting instance: %v", err)
				}

				inst := w.InstanceFor(p.Key())
				if inst == nil {
					t.Fatal("no instance registered")
				}

				if len(inst.Rooms) < tt.minRooms || len(inst.Rooms) > tt.maxRooms {
					t.Fatalf("seed %d: %d rooms, want %d..%d", seed, len(inst.Rooms), tt.minRooms, tt.maxRooms)
				}
				testutil.AssertEqual(t, "boss hp mult", inst.BossHPMult, tt.bossHPMult)
				if inst.RewardXP < tt.minXP || inst.RewardXP > tt.maxXP {
					t.Fatalf("seed %d: reward xp %d outside %d..%d", seed, inst.RewardXP, tt.minXP, tt.maxXP)
				}

				// Boss waits alone in the final room.
				finalMobs := w.MobCounts(inst.FinalRoom())
				testutil.AssertEqual(t, "boss count", finalMobs[inst.Boss], 1)
				testutil.AssertEqual(t, "final room species", len(finalMobs), 1)

				// Every other room holds tier-scaled hostiles.
				for _, rid := range inst.Rooms[:len(inst.Rooms)-1] {
					n := 0
					for _, c := range w.MobCounts(rid) {
						n += c
					}
					if n < tt.minMobs || n > tt.maxMobs {
						t.Fatalf("seed %d: room %s has %d mobs, want %d..%d", seed, rid, n, tt.minMobs, tt.maxMobs)
					}
				}
			}
		})
	}
}

func TestStartInstanceUnknownTier(t *testing.T) {
	w := New(rng.New(4))
	p := instancePlayer(w)

	_, err := w.StartInstance(p, "", "nightmare")
	if err == nil {
		t.Fatal("expected error for unknown tier")
	}
}

func TestStartInstanceRelocatesPlayer(t *testing.T) {
	w := New(rng.New(4))
	p := instancePlayer(w)
	entry := p.CurrentRoom

	out, err := w.StartInstance(p, "Data Heist", "easy")
	if err != nil {
		t.Fatalf("starting instance: %v", err)
	}

	inst := w.InstanceFor(p.Key())
	testutil.AssertEqual(t, "player room", p.CurrentRoom, inst.Rooms[0])
	testutil.AssertEqual(t, "entry recorded", inst.EntryRoom, entry)
	testutil.AssertEqual(t, "titled theme", inst.Title, "Data Heist")
	testutil.AssertEqual(t, "themed boss", inst.Boss, "ICE Warden")
	if !strings.Contains(out, "Exits:") {
		t.Fatalf("expected a room description, got %q", out)
	}

	// Every mission room can bail straight back to the entry.
	for _, rid := range inst.Rooms {
		exits := w.Exits(rid)
		testutil.AssertEqual(t, "out exit", exits["out"], entry)
	}
}

func TestStartInstanceRoomDescriptions(t *testing.T) {
	w := New(rng.New(4))
	p := instancePlayer(w)

	out, err := w.StartInstance(p, "Wetwork", "easy")
	if err != nil {
		t.Fatalf("starting instance: %v", err)
	}
	inst := w.InstanceFor(p.Key())

	header := "Mission: Wetwork. You are clearing a gang route before it spills into the streets."
	if !strings.Contains(out, header) {
		t.Fatalf("first room missing mission header, got %q", out)
	}

	// Each room names the job and its position along the route.
	w.mu.Lock()
	defer w.mu.Unlock()
	for i, rid := range inst.Rooms {
		desc := w.rooms[rid].Description
		if !strings.Contains(desc, header) {
			t.Fatalf("room %s missing mission header: %q", rid, desc)
		}
		marker := fmt.Sprintf("Route %d/%d:", i+1, len(inst.Rooms))
		if !strings.Contains(desc, marker) {
			t.Fatalf("room %s missing %q: %q", rid, marker, desc)
		}
	}
}

func TestStartInstanceReplacesPrevious(t *testing.T) {
	w := New(rng.New(4))
	p := instancePlayer(w)

	_, err := w.StartInstance(p, "", "easy")
	if err != nil {
		t.Fatalf("starting first instance: %v", err)
	}
	first := w.InstanceFor(p.Key())

	p.CurrentRoom = first.EntryRoom
	_, err = w.StartInstance(p, "", "hard")
	if err != nil {
		t.Fatalf("starting second instance: %v", err)
	}
	second := w.InstanceFor(p.Key())

	if first.Id == second.Id {
		t.Fatal("second instance reused the first id")
	}
	for _, rid := range first.Rooms {
		testutil.AssertEqual(t, "old room removed", w.RoomExists(rid), false)
	}
}

func TestCompleteInstanceOnce(t *testing.T) {
	w := New(rng.New(4))
	p := instancePlayer(w)

	_, err := w.StartInstance(p, "", "medium")
	if err != nil {
		t.Fatalf("starting instance: %v", err)
	}

	inst, ok := w.CompleteInstance(p.Key())
	testutil.AssertEqual(t, "first completion", ok, true)
	testutil.AssertEqual(t, "completed flag", inst.Completed, true)

	_, ok = w.CompleteInstance(p.Key())
	testutil.AssertEqual(t, "second completion", ok, false)

	_, ok = w.CompleteInstance("someone-else")
	testutil.AssertEqual(t, "stranger completion", ok, false)
}

func TestMoveOutTearsDownInstance(t *testing.T) {
	w := New(rng.New(4))
	p := instancePlayer(w)
	entry := p.CurrentRoom

	_, err := w.StartInstance(p, "", "easy")
	if err != nil {
		t.Fatalf("starting instance: %v", err)
	}
	inst := w.InstanceFor(p.Key())

	_, moved := w.Move(p, "out")
	testutil.AssertEqual(t, "moved", moved, true)
	testutil.AssertEqual(t, "back at entry", p.CurrentRoom, entry)

	if w.InstanceFor(p.Key()) != nil {
		t.Fatal("instance should be gone after walking out")
	}
	for _, rid := range inst.Rooms {
		testutil.AssertEqual(t, "room removed", w.RoomExists(rid), false)
	}
}

func TestIsInstanceRoom(t *testing.T) {
	testutil.AssertEqual(t, "instance id", IsInstanceRoom("inst_runner_ab12_r0"), true)
	testutil.AssertEqual(t, "city id", IsInstanceRoom("neon_plaza"), false)
}

func TestValidTier(t *testing.T) {
	testutil.AssertEqual(t, "easy", ValidTier("easy"), true)
	testutil.AssertEqual(t, "mixed case", ValidTier("Hard"), true)
	testutil.AssertEqual(t, "unknown", ValidTier("brutal"), false)
}
