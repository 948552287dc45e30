// Package quest holds the fetch-contract catalog and the dialogue each
// giver speaks at the stages of a contract's life.
package quest

import "strings"

// Dialog is what a giver says at each stage of their contract.
type Dialog struct {
	Offer     string `json:"offer"`
	Accepted  string `json:"accepted"`
	Reminder  string `json:"reminder"`
	Ready     string `json:"ready"`
	Success   string `json:"success"`
	Completed string `json:"completed"`
}

// Mission is a fetch contract offered by a named NPC. Ids are stable so
// progress can be persisted per account.
type Mission struct {
	Id            string `json:"id"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	RequiredItem  string `json:"required_item"`
	Hint          string `json:"hint"`
	RewardXP      int    `json:"reward_xp"`
	RewardCredits int    `json:"reward_credits"`
	Dialog        Dialog `json:"dialog"`
}

// ForNPC returns the contract offered by the named giver, if any.
// Lookup is case-insensitive.
func ForNPC(name string) (Mission, bool) {
	m, ok := catalog[strings.ToLower(strings.TrimSpace(name))]
	return m, ok
}

// ById finds a contract by its stable id, case-insensitively.
func ById(id string) (Mission, bool) {
	want := strings.ToLower(strings.TrimSpace(id))
	for _, m := range catalog {
		if strings.ToLower(m.Id) == want {
			return m, true
		}
	}
	return Mission{}, false
}

var catalog = map[string]Mission{
	"rook": {
		Id:            "rook_chip_run",
		Title:         "Chip Run",
		Description:   "Bring me an Encrypted Chip. I'll pay and bump your rep.",
		RequiredItem:  "Encrypted Chip",
		Hint:          "Pick fights in the streets/alleys, then use `search` on the body for loot.",
		RewardXP:      25,
		RewardCredits: 40,
		Dialog: Dialog{
			Offer:     "Rook leans against a cracked panel, eyes flicking to every shadow. 'You look capable. I need a chip moved off-grid.'",
			Accepted:  "Rook smirks. 'Good. Quiet hands, quiet feet. Come back with the chip and nobody has to know you were here.'",
			Reminder:  "Rook taps two fingers against his temple. 'Encrypted Chip. Don't bring me drama, bring me data.'",
			Ready:     "Rook's gaze locks on your pocket. 'That's it. Slide it over.'",
			Success:   "Rook pockets the chip without looking. 'Clean work. The city's got room for people like you.'",
			Completed: "Rook gives a short nod. 'We already did business. Keep moving.'",
		},
	},
	"kite": {
		Id:            "kite_corporate_access",
		Title:         "Corporate Access",
		Description:   "I need a Visitor Pass. Get one from the corporate lobby and bring it back fast.",
		RequiredItem:  "Visitor Pass",
		Hint:          "Head toward the Corporate Lobby and look around; if you spot it, try `take Visitor Pass`.",
		RewardXP:      25,
		RewardCredits: 50,
		Dialog: Dialog{
			Offer:     "Kite adjusts a rain-slick hood and checks a wrist display. 'Corpos changed the locks again. I need a pass before the window closes.'",
			Accepted:  "Kite exhales, relief hidden behind swagger. 'Nice. In and out. Don't let the scanners taste fear.'",
			Reminder:  "Kite glances up at the tower lights. 'Visitor Pass. Corporate Lobby. Move like you belong.'",
			Ready:     "Kite's hand is already out. 'Pass first. Questions later.'",
			Success:   "Kite flips the pass between two fingers, then vanishes it into a sleeve. 'You're faster than you look. Here's your cut.'",
			Completed: "Kite grins. 'That job's done. Listen - if something pings your name, it wasn't me.'",
		},
	},
	"grease": {
		Id:            "grease_spare_parts",
		Title:         "Spare Parts",
		Description:   "Find a Cyberdeck Fragment. I'll trade credits for it.",
		RequiredItem:  "Cyberdeck Fragment",
		Hint:          "Cyberdeck scraps turn up on enemies. Win fights and `search` afterward.",
		RewardXP:      20,
		RewardCredits: 35,
		Dialog: Dialog{
			Offer:     "Grease wipes a glass with a rag that has seen better decades. 'Got a broken deck on my bench. Need a fragment to make it sing again.'",
			Accepted:  "Grease nods toward the door. 'Bring it back dry. Rain ruins everything out there.'",
			Reminder:  "Grease jerks a thumb at the humming wall outlets. 'Cyberdeck Fragment. The smaller the piece, the bigger the headache.'",
			Ready:     "Grease squints. 'That the fragment? Lay it on the bar.'",
			Success:   "Grease pockets the fragment and slides you credits without a word. 'Drink's on you next time.'",
			Completed: "Grease grins. 'Already paid out. Don't make me repeat myself.'",
		},
	},
	"doc kira": {
		Id:            "kira_stabilizer",
		Title:         "Stabilizer",
		Description:   "Bring me an Adrenaline Shot. I'm running low and the street's getting rough.",
		RequiredItem:  "Adrenaline Shot",
		Hint:          "Check bars/markets for supplies, or win fights and `search` for medical loot.",
		RewardXP:      20,
		RewardCredits: 25,
		Dialog: Dialog{
			Offer:     "Doc Kira's hands are steady, but the clinic lights flicker. 'People are dropping faster than I can patch them. I need an Adrenaline Shot.'",
			Accepted:  "Kira nods once. 'Good. Bring it back sealed. If it's been tampered with, it could kill someone.'",
			Reminder:  "Kira's voice stays low. 'Adrenaline Shot. No substitutes.'",
			Ready:     "Kira's eyes sharpen. 'You have the shot? Hand it over.'",
			Success:   "Kira pockets the injector and exhales. 'You just bought someone another sunrise. Don't forget that.'",
			Completed: "Kira gives you a tired smile. 'You did enough. Stay safe out there.'",
		},
	},
	"patch": {
		Id:            "patch_vr_chip",
		Title:         "Glitched VR Chip",
		Description:   "Bring me a VR Chip. I want to inspect its firmware.",
		RequiredItem:  "VR Chip",
		Hint:          "VR tech is usually scavenged. Fight in the city and `search` for one.",
		RewardXP:      20,
		RewardCredits: 30,
		Dialog: Dialog{
			Offer:     "Patch drums neon-painted nails on the terminal. 'Somebody's selling VR chips with a ghost in the code. I want to meet the ghost.'",
			Accepted:  "Patch smiles like a lock clicking open. 'Perfect. Bring me the chip and I'll tell you what it was really doing.'",
			Reminder:  "Patch tilts their head. 'VR Chip. Not a story, not a rumor - hardware.'",
			Ready:     "Patch's eyes flare with reflected UI. 'That's the chip? Let's crack it.'",
			Success:   "Patch pockets the chip and laughs softly. 'Oh, this is going to be fun. Here's your pay.'",
			Completed: "Patch waves you off. 'Already got what I needed. Come back when you have stranger problems.'",
		},
	},
	"nyx": {
		Id:            "nyx_signal_jammer",
		Title:         "Signal Jammer",
		Description:   "Bring me an EMP Grenade. Someone's sniffing my comms.",
		RequiredItem:  "EMP Grenade",
		Hint:          "EMP gear is rare. Roaming gangs sometimes carry it; fight and `search`.",
		RewardXP:      30,
		RewardCredits: 45,
		Dialog: Dialog{
			Offer:     "Nyx leans close over the bassline. 'Someone's been listening. I need an EMP grenade - small storm, big silence.'",
			Accepted:  "Nyx flashes a razor smile. 'Good. When the lights stutter, we talk again.'",
			Reminder:  "Nyx's eyes scan the crowd. 'EMP Grenade. If you value your teeth, don't ask why.'",
			Ready:     "Nyx glances at the grenade and nods. 'Yeah. That'll do.'",
			Success:   "Nyx palms the device and slips you credits. 'No more ears on my line. Beautiful.'",
			Completed: "Nyx raises a glass. 'Handled. Enjoy the noise.'",
		},
	},
	"cipher": {
		Id:            "cipher_red_eye",
		Title:         "Red Eye Sample",
		Description:   "Score me a Vial of Red Eye. Quietly.",
		RequiredItem:  "Vial of Red Eye",
		Hint:          "Hang around the hall and `look` for shady offers; when it appears, use `take`.",
		RewardXP:      30,
		RewardCredits: 60,
		Dialog: Dialog{
			Offer:     "Cipher's voice is a whisper behind a mask. 'Red Eye's flooding the alleys. I want a sample - untouched.'",
			Accepted:  "Cipher nods once. 'Smart. Don't get seen buying it. Don't get seen bringing it.'",
			Reminder:  "Cipher's eyes don't blink. 'Vial of Red Eye. Sealed.'",
			Ready:     "Cipher extends a gloved hand. 'Show me.'",
			Success:   "Cipher pockets the vial and the air feels colder. 'Good. Here's your money. Forget my face.'",
			Completed: "Cipher turns away. 'We are done.'",
		},
	},
	"vera": {
		Id:            "vera_energy_drink",
		Title:         "Cold Energy",
		Description:   "Bring me an Energy Drink from the street stalls.",
		RequiredItem:  "Energy Drink",
		Hint:          "Find a vendor/bartender and use `shop`, then `buy Energy Drink`.",
		RewardXP:      10,
		RewardCredits: 15,
		Dialog: Dialog{
			Offer:     "Vera gestures at the flickering booths. 'Long shift. Short patience. Bring me an Energy Drink and I'll make it worth your time.'",
			Accepted:  "Vera nods. 'You're a lifesaver. Don't take the warm ones.'",
			Reminder:  "Vera sighs. 'Energy Drink. Cold. Please.'",
			Ready:     "Vera brightens. 'You found one? Give it here.'",
			Success:   "Vera cracks it open immediately. 'Perfect. Here - credits, and my gratitude.'",
			Completed: "Vera smiles. 'Already paid. Thanks again.'",
		},
	},
}
