package world

import "fmt"

// expandCity grows the hand-authored core with long procedural streets
// and periodic side-branches. The pass is deterministic: every room id
// and link is a pure function of the loop counters, so the same graph
// is built on every boot. Each district loops back into the core to
// keep the map connected rather than tree-shaped.
func (w *World) expandCity() {
	// Chrome Avenue extension: eastward corporate district.
	prev := "corporate_lobby"
	for i := 1; i <= 12; i++ {
		rid := fmt.Sprintf("corporate_district_%d", i)
		w.addRoom(rid, fmt.Sprintf("Corporate District %d: glass walkways, security plaques, and quiet money moving in silence.", i), nil)
		w.link(prev, "east", rid, "west")
		// Office side-hall every 3 blocks, with a lab behind it.
		if i%3 == 0 {
			side := fmt.Sprintf("office_hall_%d", i/3)
			w.addRoom(side, "Office Hall: frosted doors, muted comms, and the faint smell of sanitizer.", nil)
			w.link(rid, "north", side, "south")
			lab := fmt.Sprintf("compliance_lab_%d", i/3)
			w.addRoom(lab, "Compliance Lab: sealed consoles, locked drawers, and humming audit terminals.", nil)
			w.link(side, "east", lab, "west")
		}
		prev = rid
	}

	// Synth Street sprawl, east and west, with alley spurs.
	prev = "synth_street_e"
	for i := 1; i <= 10; i++ {
		rid := fmt.Sprintf("synth_street_e_%d", i)
		w.addRoom(rid, fmt.Sprintf("Synth Street East %d: rain, cables, and bass bleeding through thin walls.", i), nil)
		w.link(prev, "east", rid, "west")
		if i%2 == 0 {
			alley := fmt.Sprintf("back_alley_e_%d", i)
			w.addRoom(alley, "Back Alley: wet concrete, hot steam vents, and reactive graffiti that watches.", nil)
			w.link(rid, "south", alley, "north")
		}
		prev = rid
	}

	prev = "synth_street_w"
	for i := 1; i <= 10; i++ {
		rid := fmt.Sprintf("synth_street_w_%d", i)
		w.addRoom(rid, fmt.Sprintf("Synth Street West %d: streetlights stutter; vendors trade in whispers.", i), nil)
		w.link(prev, "west", rid, "east")
		if i%2 == 1 {
			alley := fmt.Sprintf("back_alley_w_%d", i)
			w.addRoom(alley, "Back Alley: narrow lanes, humming wires, and puddles of neon.", nil)
			w.link(rid, "south", alley, "north")
		}
		prev = rid
	}

	// Market sprawl from the night market, looping back to the bazaar.
	prev = "night_market"
	for i := 1; i <= 15; i++ {
		rid := fmt.Sprintf("market_row_%d", i)
		w.addRoom(rid, fmt.Sprintf("Market Row %d: tarps flap, drones hover, and contraband changes hands fast.", i), nil)
		w.link(prev, "east", rid, "west")
		if i%4 == 0 {
			den := fmt.Sprintf("junk_den_%d", i/4)
			w.addRoom(den, "Junk Den: stacked crates of scrapware and a merchant who never gives a name.", nil)
			w.link(rid, "south", den, "north")
		}
		prev = rid
	}
	w.link(prev, "north", "black_market_bazaar", "south")

	// Metro tunnels, looping into the scrapyard.
	prev = "underground_metro"
	for i := 1; i <= 11; i++ {
		rid := fmt.Sprintf("metro_tunnel_%d", i)
		w.addRoom(rid, fmt.Sprintf("Metro Tunnel %d: old tiles, dripping pipes, and distant machinery.", i), nil)
		w.link(prev, "south", rid, "north")
		if i%3 == 0 {
			bay := fmt.Sprintf("maintenance_bay_%d", i/3)
			w.addRoom(bay, "Maintenance Bay: tool lockers, coolant stains, and a faint electric buzz.", nil)
			w.link(rid, "west", bay, "east")
		}
		prev = rid
	}
	w.link(prev, "up", "scrapyard", "down")

	// Industrial ring from the scrapyard, looping to the plaza.
	prev = "scrapyard"
	for i := 1; i <= 20; i++ {
		rid := fmt.Sprintf("industrial_ring_%d", i)
		w.addRoom(rid, fmt.Sprintf("Industrial Ring %d: factories cough heat; conveyor belts never stop.", i), nil)
		w.link(prev, "east", rid, "west")
		if i%5 == 0 {
			yard := fmt.Sprintf("loading_yard_%d", i/5)
			w.addRoom(yard, "Loading Yard: shipping containers stacked like city blocks and buzzing forklifts.", nil)
			w.link(rid, "south", yard, "north")
		}
		prev = rid
	}
	w.link(prev, "north", "neon_plaza", "south")
}
