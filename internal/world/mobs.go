package world

import "strings"

const defaultRoamingSeedCount = 8

// streetMarkers classify rooms where roaming units spawn and prefer
// to walk. Classification is by id substring so procedurally generated
// streets qualify automatically.
var streetMarkers = []string{"plaza", "avenue", "street", "alley", "market", "bazaar", "neon_alley", "scrapyard"}

func isStreetRoom(id string) bool {
	for _, marker := range streetMarkers {
		if strings.Contains(id, marker) {
			return true
		}
	}
	return false
}

func (w *World) streetRooms() []string {
	ids := make([]string, 0, len(w.rooms))
	for id := range w.rooms {
		if isStreetRoom(id) {
			ids = append(ids, id)
		}
	}
	return ids
}

// speciesWeight returns the spawn weight of a species, treating
// unknown names as weight 0 so they never roam.
func (w *World) speciesWeight(name string) int {
	for _, s := range w.species {
		if s.Name == name {
			return s.Weight
		}
	}
	return 0
}

// weightedSpecies picks a species by spawn weight. Weight-0 species
// (bosses) are never returned.
func (w *World) weightedSpecies() Species {
	total := 0
	for _, s := range w.species {
		total += s.Weight
	}
	roll := w.rng.Float64() * float64(total)
	upto := 0.0
	for _, s := range w.species {
		if upto+float64(s.Weight) >= roll {
			return s
		}
		upto += float64(s.Weight)
	}
	return w.species[0]
}

// seedRoaming drops count weighted-random units into random
// street-classified rooms. Callers hold the world lock or run during
// construction.
func (w *World) seedRoaming(count int) {
	streets := w.streetRooms()
	if len(streets) == 0 {
		return
	}
	for range count {
		roomId := streets[w.rng.IntN(len(streets))]
		w.addMob(roomId, w.weightedSpecies().Name)
	}
}

// SeedRoaming adds count roaming units to the live world.
func (w *World) SeedRoaming(count int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.seedRoaming(count)
}

type mobMove struct {
	from    string
	to      string
	species string
}

// TickRoaming advances every roaming unit one step. All moves are
// computed from a single snapshot before any is applied, so a unit
// never chains two steps in one tick. Units prefer exits leading to
// other street rooms and fall back to any exit. Mission rooms and
// weight-0 species sit out entirely: instance hostiles hold their
// posts and bosses never leave the final room.
func (w *World) TickRoaming() {
	w.mu.Lock()
	defer w.mu.Unlock()

	var moves []mobMove
	for roomId, counts := range w.mobs {
		if IsInstanceRoom(roomId) {
			continue
		}
		room, ok := w.rooms[roomId]
		if !ok || len(room.Exits) == 0 {
			continue
		}
		for species, count := range counts {
			if w.speciesWeight(species) == 0 {
				continue
			}
			for range count {
				dest := w.pickRoamingExit(room)
				moves = append(moves, mobMove{from: roomId, to: dest, species: species})
			}
		}
	}

	for _, m := range moves {
		if w.mobCount(m.from, m.species) == 0 {
			continue
		}
		w.removeMob(m.from, m.species)
		w.addMob(m.to, m.species)
	}
}

func (w *World) pickRoamingExit(room *Room) string {
	var street, all []string
	for _, target := range room.Exits {
		all = append(all, target)
		if isStreetRoom(target) {
			street = append(street, target)
		}
	}
	if len(street) > 0 {
		return street[w.rng.IntN(len(street))]
	}
	return all[w.rng.IntN(len(all))]
}

// MobsInRoom expands the room's counts into a flat list of unit names.
func (w *World) MobsInRoom(roomId string) []string {
	w.mu.Lock()
	defer w.mu.Unlock()

	var units []string
	for species, count := range w.mobs[roomId] {
		for range count {
			units = append(units, species)
		}
	}
	return units
}

// MobCounts returns a copy of the per-species counts in a room.
func (w *World) MobCounts(roomId string) map[string]int {
	w.mu.Lock()
	defer w.mu.Unlock()

	counts := make(map[string]int, len(w.mobs[roomId]))
	for species, count := range w.mobs[roomId] {
		counts[species] = count
	}
	return counts
}

// TakeMob removes one unit of the named species from a room, if
// present. Used when a unit is engaged in combat.
func (w *World) TakeMob(roomId, species string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.removeMob(roomId, species)
}

// AddMob places one unit of the named species into a room.
func (w *World) AddMob(roomId, species string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.addMob(roomId, species)
}

func (w *World) mobCount(roomId, species string) int {
	return w.mobs[roomId][species]
}

func (w *World) addMob(roomId, species string) {
	counts, ok := w.mobs[roomId]
	if !ok {
		counts = make(map[string]int)
		w.mobs[roomId] = counts
	}
	counts[species]++
}

func (w *World) removeMob(roomId, species string) {
	counts, ok := w.mobs[roomId]
	if !ok || counts[species] == 0 {
		return
	}
	counts[species]--
	if counts[species] <= 0 {
		delete(counts, species)
	}
	if len(counts) == 0 {
		delete(w.mobs, roomId)
	}
}

// TotalMobCount sums all live units across the world.
func (w *World) TotalMobCount() int {
	w.mu.Lock()
	defer w.mu.Unlock()

	total := 0
	for _, counts := range w.mobs {
		for _, count := range counts {
			total += count
		}
	}
	return total
}
