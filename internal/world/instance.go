package world

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/nightgrid/neonmud/internal/game"
	"github.com/nightgrid/neonmud/internal/rng"
)

// instanceRoomPrefix marks rooms grafted onto the graph for a single
// player's mission run.
const instanceRoomPrefix = "inst_"

// MissionInstance is one player's private mission dungeon. Its rooms
// live in the shared graph but only the owner is ever routed into them.
type MissionInstance struct {
	Id         string
	Owner      string
	Title      string
	Tier       string
	EntryRoom  string
	Rooms      []string
	Boss       string
	BossHPMult float64
	Completed  bool

	RewardXP      int
	RewardCredits int
}

func (m *MissionInstance) containsRoom(id string) bool {
	for _, rid := range m.Rooms {
		if rid == id {
			return true
		}
	}
	return false
}

// FinalRoom returns the boss room, the last in the chain.
func (m *MissionInstance) FinalRoom() string {
	if len(m.Rooms) == 0 {
		return ""
	}
	return m.Rooms[len(m.Rooms)-1]
}

type tierSpec struct {
	roomsMin, roomsMax int
	mobsMin, mobsMax   int
	bossHPMult         float64
	xpMin, xpMax       int
	credMin, credMax   int
}

// tierTable scales mission size, density, boss toughness, and rewards.
var tierTable = map[string]tierSpec{
	"easy":   {roomsMin: 4, roomsMax: 5, mobsMin: 1, mobsMax: 1, bossHPMult: 0.85, xpMin: 45, xpMax: 80, credMin: 70, credMax: 120},
	"medium": {roomsMin: 5, roomsMax: 7, mobsMin: 1, mobsMax: 2, bossHPMult: 1.0, xpMin: 60, xpMax: 110, credMin: 90, credMax: 160},
	"hard":   {roomsMin: 7, roomsMax: 9, mobsMin: 2, mobsMax: 3, bossHPMult: 1.25, xpMin: 95, xpMax: 150, credMin: 140, credMax: 230},
}

// ValidTier reports whether the tier name exists in the scaling table.
func ValidTier(tier string) bool {
	_, ok := tierTable[strings.ToLower(tier)]
	return ok
}

type missionTheme struct {
	title string
	blurb string
	boss  string
	rooms []string
}

// missionThemes flavor the generated dungeon. Room descriptions are
// reused round-robin when a tier rolls more rooms than the theme has.
var missionThemes = []missionTheme{
	{
		title: "Data Heist",
		blurb: "You are running a data theft through hostile alleys.",
		boss:  "ICE Warden",
		rooms: []string{
			"A service corridor lined with dead cameras. Someone got here first.",
			"Server annex: racks blink amber, a cooling fan stutters like a bad heart.",
			"A shredded security checkpoint, its turret hanging limp from the ceiling.",
			"Cable vault: fiber bundles thick as your arm vanish into the dark.",
			"The data core glows behind cracked ballistic glass.",
		},
	},
	{
		title: "Wetwork",
		blurb: "You are clearing a gang route before it spills into the streets.",
		boss:  "Chrome Butcher",
		rooms: []string{
			"A rain-slick loading dock stacked with unmarked crates.",
			"Killing floor: the smell of copper and machine oil is overwhelming.",
			"A freezer corridor; your breath fogs against flickering strip lights.",
			"An improvised surgery, tools still warm, the table still wet.",
			"The butcher's den, hung with chains and unfinished chrome.",
		},
	},
	{
		title: "ICE Break",
		blurb: "You are pushing through hostile netrunners and security drones.",
		boss:  "Alley Kingpin",
		rooms: []string{
			"A collapsed alley walled off with corrugated steel and warning glyphs.",
			"A squatter nest, mattresses and burnt-out deck rigs in every corner.",
			"A toll corridor; the graffiti here marks whose turf you just entered.",
			"A counting room, tables scarred by knife tips and credit chips.",
			"The kingpin's court, lit by a single stolen arc lamp.",
		},
	},
}

// StartInstance tears down any previous instance the player owns,
// grafts a fresh chain of mission rooms onto the graph, populates them,
// relocates the player to the first room, and returns its description.
// Rewards are drawn up front so completion is deterministic afterward.
func (w *World) StartInstance(p *game.Player, title, tier string) (string, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	spec, ok := tierTable[strings.ToLower(tier)]
	if !ok {
		return "", fmt.Errorf("unknown mission tier %q", tier)
	}

	key := p.Key()
	if w.instances[key] != nil {
		w.endInstance(key)
	}

	theme := w.pickTheme(title)
	suffix := strings.Split(uuid.NewString(), "-")[0]
	entry := p.CurrentRoom
	roomCount := w.rng.Range(spec.roomsMin, spec.roomsMax)

	inst := &MissionInstance{
		Id:            fmt.Sprintf("%s%s_%s", instanceRoomPrefix, key, suffix),
		Owner:         key,
		Title:         theme.title,
		Tier:          strings.ToLower(tier),
		EntryRoom:     entry,
		Boss:          theme.boss,
		BossHPMult:    spec.bossHPMult,
		RewardXP:      w.rng.Range(spec.xpMin, spec.xpMax),
		RewardCredits: w.rng.Range(spec.credMin, spec.credMax),
	}

	prev := ""
	for i := range roomCount {
		rid := fmt.Sprintf("%s_r%d", inst.Id, i)
		// Every room announces the job and how deep in the chain it sits.
		desc := fmt.Sprintf("Mission: %s. %s\nRoute %d/%d: %s",
			theme.title, theme.blurb, i+1, roomCount, theme.rooms[i%len(theme.rooms)])
		// Every mission room can bail back to the entry point.
		exits := map[string]string{"out": entry}
		w.rooms[rid] = &Room{Description: desc, Exits: exits}
		if prev != "" {
			w.link(prev, "north", rid, "south")
		}
		inst.Rooms = append(inst.Rooms, rid)
		prev = rid
	}

	// Hostiles in every room but the last; the boss waits alone there.
	for i, rid := range inst.Rooms {
		if i == len(inst.Rooms)-1 {
			w.addMob(rid, inst.Boss)
			continue
		}
		for range w.rng.Range(spec.mobsMin, spec.mobsMax) {
			w.addMob(rid, w.weightedSpecies().Name)
		}
	}

	w.instances[key] = inst
	p.CurrentRoom = inst.Rooms[0]
	return w.describeRoom(p.CurrentRoom, true), nil
}

func (w *World) pickTheme(title string) missionTheme {
	for _, theme := range missionThemes {
		if strings.EqualFold(theme.title, title) {
			return theme
		}
	}
	return rng.Pick(w.rng, missionThemes)
}

// InstanceFor returns the live instance owned by the given player key,
// or nil.
func (w *World) InstanceFor(key string) *MissionInstance {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.instances[key]
}

// CompleteInstance marks the player's instance finished and returns it.
// The first call after the boss falls wins; later calls return ok
// false so rewards cannot be paid twice.
func (w *World) CompleteInstance(key string) (*MissionInstance, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	inst := w.instances[key]
	if inst == nil || inst.Completed {
		return inst, false
	}
	inst.Completed = true
	return inst, true
}

// EndInstance removes the player's instance and all of its rooms and
// hostiles from the graph.
func (w *World) EndInstance(key string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.endInstance(key)
}

func (w *World) endInstance(key string) {
	inst := w.instances[key]
	if inst == nil {
		return
	}
	for _, rid := range inst.Rooms {
		delete(w.rooms, rid)
		delete(w.mobs, rid)
	}
	delete(w.instances, key)
}

// IsInstanceRoom reports whether the id names a grafted mission room.
func IsInstanceRoom(id string) bool {
	return strings.HasPrefix(id, instanceRoomPrefix)
}
