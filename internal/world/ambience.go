package world

import (
	"strings"

	"github.com/nightgrid/neonmud/internal/rng"
)

// roomAmbience holds flavor pools for specific rooms.
var roomAmbience = map[string][]string{
	"start": {
		"Water drips somewhere in the dark, slow and patient.",
		"The air tastes stale, like the room forgot how to breathe.",
	},
	"closet": {
		"The space is tight enough to make your shoulders remember walls.",
		"Dust and old fabric cling to the air, unmoved for years.",
	},
	"hall": {
		"Neon leaks through a crack overhead, painting the grime electric.",
		"A distant siren Dopplers past, then fades into rain.",
	},
	"neon_plaza": {
		"Holograms jitter in the rain, each ad smiling a little too wide.",
		"Your boots splash through a thin film of water and spilled light.",
	},
	"rust_and_circuit": {
		"Warm ozone and cheap synth-whiskey hang in the air.",
		"The bar's speakers thrum like a second heartbeat.",
	},
	"data_leak": {
		"A dozen cracked screens reflect in your eyes like ghost windows.",
		"You smell burnt circuitry and sweet neon cocktails.",
	},
	"night_market": {
		"Tarps snap in the wind while vendors whisper prices in code.",
		"Somewhere nearby, a drone scans - then thinks better of it.",
	},
	"black_market_bazaar": {
		"Encrypted bids ping from pocket terminals like nervous heartbeats.",
		"The crowd parts and closes again, an organism with a hundred eyes.",
	},
	"club_nexus": {
		"Bass rattles your teeth; lasers slice the fog into geometry.",
		"The dance floor feels like a storm you can stand inside.",
	},
	"holo_dive": {
		"Old CRT glow bleeds into the corners, soft and hypnotic.",
		"A booth hums beside you, running someone else's dream.",
	},
	"corporate_lobby": {
		"The air is too clean - filtered until it has no story.",
		"Cameras track you with polite indifference.",
	},
	"server_farm": {
		"Coolant mist curls between racks like artificial fog.",
		"The hum here isn't sound - it's pressure behind the eyes.",
	},
	"underground_metro": {
		"The tunnel breathes hot air and old electricity.",
		"A train's scream echoes from nowhere and everywhere.",
	},
	"scrapyard": {
		"Rain ticks on rusted metal like thousands of tiny fingers.",
		"Something sparks in a heap and dies again.",
	},
}

// classAmbience maps id-substring classes to shared flavor pools.
// Order matters: the first class whose substrings match wins.
var classAmbience = []struct {
	substrings []string
	lines      []string
}{
	{
		substrings: []string{"alley", "back_alley", "neon_alley"},
		lines: []string{
			"Steam hisses from vents, carrying the smell of oil and wet concrete.",
			"Graffiti flickers as you pass, reactive inks watching you back.",
		},
	},
	{
		substrings: []string{"street", "avenue", "plaza"},
		lines: []string{
			"Neon reflections pool at your feet like liquid color.",
			"Drones buzz overhead, their lights blinking in patient patterns.",
		},
	},
	{
		substrings: []string{"market", "bazaar"},
		lines: []string{
			"A dozen languages collide in whispers and hurried deals.",
			"You catch the scent of hot wire, spice, and counterfeit plastic.",
		},
	},
	{
		substrings: []string{"club", "reactor"},
		lines: []string{
			"Music hits you first, then the air, then the lights.",
			"Your skin prickles as the room syncs to a beat you didn't choose.",
		},
	},
	{
		substrings: []string{"corporate", "arcology", "server"},
		lines: []string{
			"Everything here is engineered - even the silence.",
			"Somewhere above, a system decides whether you belong.",
		},
	},
	{
		substrings: []string{"underground", "metro", "scrapyard"},
		lines: []string{
			"The city sounds different down here - hollow, hungry.",
			"Your footsteps echo longer than they should.",
		},
	},
}

var citywideAmbience = []string{
	"The city breathes around you, neon and rain and secrets.",
}

// ambientCandidates resolves the flavor pool for a room id: room pool
// first, then substring classification, then the citywide fallback.
func ambientCandidates(id string) []string {
	if pool, ok := roomAmbience[id]; ok {
		return pool
	}
	lower := strings.ToLower(id)
	for _, class := range classAmbience {
		for _, sub := range class.substrings {
			if strings.Contains(lower, sub) {
				return class.lines
			}
		}
	}
	return citywideAmbience
}

func (w *World) ambientLine(id string) string {
	candidates := ambientCandidates(id)
	if len(candidates) == 0 {
		return ""
	}
	return rng.Pick(w.rng, candidates)
}
