// Package world owns all shared mutable game state: the room graph and
// its procedural extension, per-room NPC lists, the roaming mob
// population, shop catalogs, and per-player mission instances.
//
// Every mutation of shared maps goes through the World mutex. Player
// session goroutines and the background roaming tick all funnel through
// it, so a mob cannot be engaged and walked away at the same instant.
package world

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/nightgrid/neonmud/internal/game"
	"github.com/nightgrid/neonmud/internal/rng"
)

// Room is one node of the world graph.
type Room struct {
	Description string            `json:"description"`
	Exits       map[string]string `json:"exits"`
}

// World is the single source of truth for shared game state.
type World struct {
	mu  sync.Mutex
	rng *rng.Rand

	rooms     map[string]*Room
	npcs      map[string][]NPC
	mobs      map[string]map[string]int
	species   []Species
	instances map[string]*MissionInstance

	startRoom string
}

// New builds the static city, runs the procedural extension pass, and
// seeds the initial roaming population.
func New(r *rng.Rand) *World {
	w := &World{
		rng:       r,
		rooms:     coreRooms(),
		npcs:      coreNPCs(),
		mobs:      make(map[string]map[string]int),
		species:   speciesTable(),
		instances: make(map[string]*MissionInstance),
		startRoom: "start",
	}
	w.expandCity()
	w.seedRoaming(defaultRoamingSeedCount)
	return w
}

// StartRoom returns the room new players spawn in.
func (w *World) StartRoom() string {
	return w.startRoom
}

// RoomExists reports whether the graph contains the given id.
func (w *World) RoomExists(id string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	_, ok := w.rooms[id]
	return ok
}

// RoomCount returns the number of rooms currently in the graph.
func (w *World) RoomCount() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.rooms)
}

// Exits returns a copy of a room's exit map, or nil for unknown rooms.
func (w *World) Exits(id string) map[string]string {
	w.mu.Lock()
	defer w.mu.Unlock()
	room, ok := w.rooms[id]
	if !ok {
		return nil
	}
	exits := make(map[string]string, len(room.Exits))
	for d, t := range room.Exits {
		exits[d] = t
	}
	return exits
}

// DescribeRoom renders a room's description. When entering is set, one
// ambient line is appended, drawn from the room's flavor pool.
func (w *World) DescribeRoom(id string, entering bool) string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.describeRoom(id, entering)
}

func (w *World) describeRoom(id string, entering bool) string {
	room, ok := w.rooms[id]
	if !ok {
		return "You are in a void."
	}
	desc := room.Description
	if entering {
		if line := w.ambientLine(id); line != "" {
			desc = desc + "\n\n" + line
		}
	}
	dirs := make([]string, 0, len(room.Exits))
	for d := range room.Exits {
		dirs = append(dirs, d)
	}
	sort.Strings(dirs)
	return fmt.Sprintf("%s\nExits: %s", desc, strings.Join(dirs, ", "))
}

// Move relocates the player along an exit and re-describes the
// destination. Leaving an instance room through "out" tears the
// player's instance down. The bool reports whether the player moved.
func (w *World) Move(p *game.Player, direction string) (string, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	room, ok := w.rooms[p.CurrentRoom]
	if !ok {
		return "You can't go that way.", false
	}
	dest, ok := room.Exits[direction]
	if !ok {
		return "You can't go that way.", false
	}

	src := p.CurrentRoom
	p.CurrentRoom = dest

	if direction == "out" {
		if inst := w.instances[p.Key()]; inst != nil && inst.containsRoom(src) {
			w.endInstance(p.Key())
		}
	}

	return w.describeRoom(p.CurrentRoom, true), true
}

// NPCs returns the stationary NPCs in a room.
func (w *World) NPCs(roomId string) []NPC {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]NPC(nil), w.npcs[roomId]...)
}

// ShopCatalog returns the merged item -> price catalog for a room.
func (w *World) ShopCatalog(roomId string) map[string]int {
	catalog := baseShopCatalog()
	if venue, ok := venueCatalogs()[roomId]; ok {
		for item, price := range venue {
			catalog[item] = price
		}
	}
	return catalog
}

// VendorPresent reports whether someone in the room sells goods.
func (w *World) VendorPresent(roomId string) bool {
	for _, npc := range w.NPCs(roomId) {
		switch npc.Role {
		case "Bartender", "Vendor", "Fence", "Attendant":
			return true
		}
	}
	return false
}

// SpeciesBaseHP returns a species' base hit points, defaulting to 40
// for names missing from the table.
func (w *World) SpeciesBaseHP(name string) int {
	for _, s := range w.species {
		if s.Name == name {
			return s.HP
		}
	}
	return 40
}

// addRoom inserts a room unless the id is already taken.
// Callers hold the world lock (or run before the world is shared).
func (w *World) addRoom(id, description string, exits map[string]string) {
	if _, exists := w.rooms[id]; exists {
		return
	}
	if exits == nil {
		exits = map[string]string{}
	}
	w.rooms[id] = &Room{Description: description, Exits: exits}
}

// link connects a to b in the given direction, optionally with a
// reciprocal link back.
func (w *World) link(a, direction, b, backDirection string) {
	ra, okA := w.rooms[a]
	rb, okB := w.rooms[b]
	if !okA || !okB {
		return
	}
	ra.Exits[direction] = b
	if backDirection != "" {
		rb.Exits[backDirection] = a
	}
}
