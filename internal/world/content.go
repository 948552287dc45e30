package world

// Hand-authored core of the city. The procedural extension in
// expand.go grows this into the full map at construction time.
func coreRooms() map[string]*Room {
	return map[string]*Room{
		// Starter area
		"start": {
			Description: "You are in a small room. The room smells damp and murky, no one has been here in a long time. A small sliver of light peeks through the blinds of a small window.",
			Exits:       map[string]string{"north": "hall", "east": "closet"},
		},
		"hall": {
			Description: "A long, dark, dingy hallway littered with discarded aug parts. Unfriendly eyes watch from the shadows. Exits are south and north.",
			Exits:       map[string]string{"south": "start", "north": "neon_plaza_approach"},
		},
		"closet": {
			Description: "A dusty closet, nothing of too much interest. Exits are west.",
			Exits:       map[string]string{"west": "start"},
		},

		// City hub and streets
		"neon_plaza_approach": {
			Description: "A flickering corridor opens onto the city. Neon bleeds through cracked panels and rain hisses on hot concrete.",
			Exits:       map[string]string{"south": "hall", "north": "neon_plaza"},
		},
		"neon_plaza": {
			Description: "Neon Plaza: hologram billboards paint the night sky in synth-light. Street vendors hawk chrome implants beside towering vid-screens.",
			Exits: map[string]string{
				"south": "neon_plaza_approach",
				"east":  "chrome_avenue_w",
				"west":  "synth_street_w",
				"north": "arcology_lobby",
				"down":  "underground_metro",
			},
		},
		"chrome_avenue_w": {
			Description: "Chrome Avenue (West): rain-slick metal walkways reflect a thousand neon glyphs. Drones hum overhead.",
			Exits:       map[string]string{"west": "neon_plaza", "east": "chrome_avenue_e", "south": "rust_and_circuit"},
		},
		"chrome_avenue_e": {
			Description: "Chrome Avenue (East): a canyon of glass and steel, AR ads ripple along the facades.",
			Exits:       map[string]string{"west": "chrome_avenue_w", "east": "corporate_lobby"},
		},
		"corporate_lobby": {
			Description: "Corporate Lobby: marble floor, biometric turnstiles, and a waterfall of cascading holo-text.",
			Exits:       map[string]string{"west": "chrome_avenue_e", "up": "server_farm"},
		},
		"server_farm": {
			Description: "Server Farm: a cathedral of racks, coolant mist drifting between humming stacks. Security ICE crackles in the air.",
			Exits:       map[string]string{"down": "corporate_lobby"},
		},
		"rust_and_circuit": {
			Description: "Rust & Circuit (Bar): oil-stained booths, synthwave pulsing, and the scent of ozone and whiskey.",
			Exits:       map[string]string{"north": "chrome_avenue_w"},
		},

		"synth_street_w": {
			Description: "Synth Street (West): patchwork concrete, tangled cabling, and street docs plying their trade.",
			Exits:       map[string]string{"east": "synth_street_e", "south": "back_alley_w", "north": "data_leak"},
		},
		"synth_street_e": {
			Description: "Synth Street (East): basslines thump from distant clubs; rain turns the light into liquid color.",
			Exits:       map[string]string{"west": "synth_street_w", "north": "pulse_reactor"},
		},
		"data_leak": {
			Description: "The Data Leak (Bar): hackers whisper over phosphor-green cocktails; cracked terminals glow along the bar.",
			Exits:       map[string]string{"south": "synth_street_w"},
		},
		"pulse_reactor": {
			Description: "Pulse Reactor (Club): subsonic beats shake the ribcage as light fractals explode across the dance floor.",
			Exits:       map[string]string{"south": "synth_street_e"},
		},

		// Back alleys and markets
		"back_alley_w": {
			Description: "Back Alley (West): steam vents hiss, graffiti flickers with reactive inks. It feels watched.",
			Exits:       map[string]string{"north": "synth_street_w", "east": "back_alley_e", "south": "night_market"},
		},
		"back_alley_e": {
			Description: "Back Alley (East): dumpsters overflow with cybernetic scrap; the hum of jury-rigged power lines fills the air.",
			Exits:       map[string]string{"west": "back_alley_w", "east": "neon_alley_s"},
		},
		"night_market": {
			Description: "Night Market: tarps and stalls under neon rain - contraband biosoft, knockoff optics, and rare firmware.",
			Exits:       map[string]string{"north": "back_alley_w", "east": "black_market_bazaar"},
		},
		"black_market_bazaar": {
			Description: "Black Market Bazaar: encrypted auctions buzz on handhelds; mercs barter in hushed tones.",
			Exits:       map[string]string{"west": "night_market"},
		},

		// Neon Alley and clubs
		"neon_alley_n": {
			Description: "Neon Alley (North): cramped walls glow with animated kanji; puddles ripple with color.",
			Exits:       map[string]string{"south": "neon_alley_s", "east": "club_nexus"},
		},
		"neon_alley_s": {
			Description: "Neon Alley (South): cables loop like ivy; a backdoor thumps with bass.",
			Exits:       map[string]string{"north": "neon_alley_n", "west": "back_alley_e", "east": "holo_dive"},
		},
		"club_nexus": {
			Description: "Club Nexus: chromed monolith speakers, laser fog, VIP mezzanines prowled by corpos and fixers.",
			Exits:       map[string]string{"west": "neon_alley_n"},
		},
		"holo_dive": {
			Description: "The Holo-Dive: retro CRT cages and full-sensory booths; patrons drift through curated illusions.",
			Exits:       map[string]string{"west": "neon_alley_s"},
		},

		// Arcology stack
		"arcology_lobby": {
			Description: "Arcology Tower Lobby: mirrored chrome, whisper-quiet lifts, and a concierge drone that never blinks.",
			Exits:       map[string]string{"south": "neon_plaza", "up": "arcology_residential"},
		},
		"arcology_residential": {
			Description: "Arcology Residential: endless corridors of identical doors, soft white noise masking the city's roar.",
			Exits:       map[string]string{"down": "arcology_lobby", "up": "arcology_penthouse"},
		},
		"arcology_penthouse": {
			Description: "Arcology Penthouse: panoramic cityscape under stormclouds; a minimalist throne of glass and neon.",
			Exits:       map[string]string{"down": "arcology_residential"},
		},

		// Underground
		"underground_metro": {
			Description: "Underground Metro: hollow tunnels, vending machines selling stamina chems, and a distant train's wail.",
			Exits:       map[string]string{"up": "neon_plaza", "south": "scrapyard"},
		},
		"scrapyard": {
			Description: "Scrapyard: mountains of rusted bots and drone wings; scavengers pick through sparks and rain.",
			Exits:       map[string]string{"north": "underground_metro"},
		},
	}
}

// NPC is a stationary, named character in a room.
type NPC struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

func coreNPCs() map[string][]NPC {
	return map[string][]NPC{
		"hall":                {{Name: "Rook", Role: "Fixer"}},
		"neon_plaza":          {{Name: "Kite", Role: "Courier"}},
		"synth_street_w":      {{Name: "Doc Kira", Role: "Street Doc"}},
		"rust_and_circuit":    {{Name: "Grease", Role: "Bartender"}, {Name: "Mox", Role: "Bouncer"}},
		"data_leak":           {{Name: "Patch", Role: "Bartender"}, {Name: "Glimmer", Role: "Dealer"}},
		"night_market":        {{Name: "Hex", Role: "Vendor"}, {Name: "Silk", Role: "Vendor"}},
		"black_market_bazaar": {{Name: "Cipher", Role: "Fence"}},
		"club_nexus":          {{Name: "DJ Void", Role: "DJ"}, {Name: "Nyx", Role: "Bartender"}},
		"holo_dive":           {{Name: "Vera", Role: "Attendant"}},
		"corporate_lobby":     {{Name: "Concierge-7", Role: "Receptionist"}},
		"arcology_lobby":      {{Name: "Porter Drone", Role: "Concierge"}},
	}
}

// Species defines one hostile unit type. Weight 0 reserves a species
// for instance bosses: it never seeds as a roaming unit.
type Species struct {
	Name   string `json:"name"`
	HP     int    `json:"hp"`
	Weight int    `json:"weight"`
}

func speciesTable() []Species {
	return []Species{
		{Name: "Street Punk", HP: 28, Weight: 5},
		{Name: "Cyber Thug", HP: 35, Weight: 4},
		{Name: "Gang Member", HP: 40, Weight: 4},
		{Name: "Blade Dancer", HP: 45, Weight: 2},
		{Name: "Corpo Security", HP: 50, Weight: 2},
		{Name: "Enforcer", HP: 55, Weight: 1},
		{Name: "Aug Bruiser", HP: 60, Weight: 1},
		{Name: "Drone Swarm", HP: 20, Weight: 2},
		{Name: "Net Runner", HP: 30, Weight: 2},
		{Name: "Alley Kingpin", HP: 140, Weight: 0},
		{Name: "ICE Warden", HP: 130, Weight: 0},
		{Name: "Chrome Butcher", HP: 150, Weight: 0},
	}
}

// baseShopCatalog is sold anywhere a vendor is present.
func baseShopCatalog() map[string]int {
	return map[string]int{
		"Stimpack":     50,
		"Energy Drink": 25,
		"Ammo":         25,
	}
}

// venueCatalogs add to or override the base catalog per room.
func venueCatalogs() map[string]map[string]int {
	return map[string]map[string]int{
		"rust_and_circuit": {
			"Stimpack":        50,
			"Energy Drink":    25,
			"Adrenaline Shot": 60,
		},
		"data_leak": {
			"Encrypted Chip": 75,
			"VR Chip":        40,
		},
		"night_market": {
			"Stimpack":    45,
			"Ammo":        25,
			"Armor Vest":  120,
			"EMP Grenade": 90,
		},
		"black_market_bazaar": {
			"Holo Cloak": 300,
			"Neon Blade": 500,
			"Katana":     350,
		},
		"club_nexus": {
			"Adrenaline Shot": 60,
			"Energy Drink":    25,
		},
		"holo_dive": {
			"VR Chip": 40,
		},
		"corporate_lobby": {
			"Visitor Pass": 20,
		},
	}
}
