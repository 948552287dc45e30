package world

import (
	"strings"
	"testing"

	"github.com/pixil98/go-testutil"

	"github.com/nightgrid/neonmud/internal/game"
	"github.com/nightgrid/neonmud/internal/rng"
)

func testWorld(seed uint64) *World {
	return New(rng.New(seed))
}

func TestNewWorldDeterministic(t *testing.T) {
	w1 := testWorld(7)
	w2 := testWorld(7)

	testutil.AssertEqual(t, "room count", w1.RoomCount(), w2.RoomCount())

	for id := range w1.rooms {
		if !w2.RoomExists(id) {
			t.Fatalf("room %q missing from second world", id)
		}
	}
}

func TestExpandCityLoopsBack(t *testing.T) {
	w := testWorld(1)

	tests := map[string]struct {
		room      string
		direction string
		dest      string
	}{
		"market loops to bazaar":    {room: "market_row_15", direction: "north", dest: "black_market_bazaar"},
		"metro loops to scrapyard":  {room: "metro_tunnel_11", direction: "up", dest: "scrapyard"},
		"industrial loops to plaza": {room: "industrial_ring_20", direction: "north", dest: "neon_plaza"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			exits := w.Exits(tt.room)
			testutil.AssertEqual(t, "destination", exits[tt.direction], tt.dest)

			// The loop targets are hand-authored rooms; both ends exist.
			testutil.AssertEqual(t, "destination exists", w.RoomExists(tt.dest), true)
		})
	}
}

func TestExpandCityReciprocalLinks(t *testing.T) {
	w := testWorld(1)

	for id := range w.rooms {
		for dir, dest := range w.rooms[id].Exits {
			if !w.RoomExists(dest) {
				t.Errorf("room %q exit %q points at missing room %q", id, dir, dest)
			}
		}
	}
}

func TestMove(t *testing.T) {
	tests := map[string]struct {
		from      string
		direction string
		expRoom   string
		expMoved  bool
	}{
		"valid exit":        {from: "start", direction: "north", expRoom: "hall", expMoved: true},
		"invalid direction": {from: "start", direction: "down", expRoom: "start", expMoved: false},
		"unknown room":      {from: "nowhere", direction: "north", expRoom: "nowhere", expMoved: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			w := testWorld(3)
			p := game.NewPlayer("Tester", tt.from)
			p.Account = "tester"

			out, moved := w.Move(p, tt.direction)

			testutil.AssertEqual(t, "moved", moved, tt.expMoved)
			testutil.AssertEqual(t, "room", p.CurrentRoom, tt.expRoom)
			if !moved {
				testutil.AssertEqual(t, "narration", out, "You can't go that way.")
			}
		})
	}
}

func TestDescribeRoomListsExitsSorted(t *testing.T) {
	w := testWorld(3)

	desc := w.DescribeRoom("start", false)
	if !strings.Contains(desc, "Exits: east, north") {
		t.Fatalf("expected sorted exit list, got %q", desc)
	}
}

func TestDescribeRoomUnknown(t *testing.T) {
	w := testWorld(3)

	desc := w.DescribeRoom("no_such_room", false)
	if !strings.Contains(desc, "void") {
		t.Fatalf("expected void description, got %q", desc)
	}
}

func TestVendorPresent(t *testing.T) {
	w := testWorld(3)

	testutil.AssertEqual(t, "night market", w.VendorPresent("night_market"), true)
	testutil.AssertEqual(t, "bazaar fence", w.VendorPresent("black_market_bazaar"), true)
	testutil.AssertEqual(t, "hall fixer", w.VendorPresent("hall"), false)
	testutil.AssertEqual(t, "empty room", w.VendorPresent("start"), false)
}

func TestShopCatalogVenueOverlay(t *testing.T) {
	w := testWorld(3)

	base := w.ShopCatalog("start")
	if len(base) == 0 {
		t.Fatal("base catalog is empty")
	}

	venue := w.ShopCatalog("black_market_bazaar")
	if len(venue) <= len(base) {
		t.Fatalf("venue catalog (%d items) should extend the base (%d items)", len(venue), len(base))
	}
	for item, price := range base {
		if _, ok := venue[item]; !ok {
			t.Errorf("venue catalog lost base item %q (%d cr)", item, price)
		}
	}
}

func TestSpeciesBaseHP(t *testing.T) {
	w := testWorld(3)

	testutil.AssertEqual(t, "street punk", w.SpeciesBaseHP("Street Punk"), 28)
	testutil.AssertEqual(t, "boss", w.SpeciesBaseHP("Chrome Butcher"), 150)
	testutil.AssertEqual(t, "unknown defaults", w.SpeciesBaseHP("Unheard Of"), 40)
}
