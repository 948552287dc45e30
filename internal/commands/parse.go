package commands

import "strings"

// Kind tags a parsed command variant. Every player input maps to
// exactly one Kind; anything unrecognized becomes KindUnknown.
type Kind int

const (
	KindUnknown Kind = iota
	KindLook
	KindGo
	KindAttack
	KindRun
	KindSearch
	KindInventory
	KindTake
	KindUse
	KindEquip
	KindUnequip
	KindTalk
	KindAccept
	KindTurnIn
	KindQuests
	KindMission
	KindLeave
	KindShop
	KindBuy
	KindCredits
	KindName
	KindQuit
	KindHelp
	KindMobs
	KindSpawn
)

// Command is one parsed player input.
type Command struct {
	Kind Kind

	// Arg is the remainder after the keyword. Casing is preserved for
	// item and name arguments; direction-like arguments are lowered by
	// the handlers that need it.
	Arg string
}

// Parse tokenizes raw player input into a tagged command. Exact
// multi-word forms are matched before keyword forms so "spawn gang"
// never parses as a bare "spawn".
func Parse(input string) Command {
	trimmed := strings.TrimSpace(input)
	switch strings.ToLower(trimmed) {
	case "look", "l":
		return Command{Kind: KindLook}
	case "attack":
		return Command{Kind: KindAttack}
	case "run":
		return Command{Kind: KindRun}
	case "search":
		return Command{Kind: KindSearch}
	case "inventory", "i":
		return Command{Kind: KindInventory}
	case "quests":
		return Command{Kind: KindQuests}
	case "mission":
		return Command{Kind: KindMission}
	case "leave":
		return Command{Kind: KindLeave}
	case "shop":
		return Command{Kind: KindShop}
	case "credits":
		return Command{Kind: KindCredits}
	case "quit", "exit":
		return Command{Kind: KindQuit}
	case "help", "?":
		return Command{Kind: KindHelp}
	case "mobs":
		return Command{Kind: KindMobs}
	case "spawn gang":
		return Command{Kind: KindSpawn}
	}

	keyword, rest, _ := strings.Cut(trimmed, " ")
	rest = strings.TrimSpace(rest)
	switch strings.ToLower(keyword) {
	case "go":
		return Command{Kind: KindGo, Arg: strings.ToLower(rest)}
	case "take":
		return Command{Kind: KindTake, Arg: rest}
	case "use":
		return Command{Kind: KindUse, Arg: rest}
	case "equip":
		return Command{Kind: KindEquip, Arg: rest}
	case "unequip":
		return Command{Kind: KindUnequip, Arg: strings.ToLower(rest)}
	case "talk":
		return Command{Kind: KindTalk, Arg: rest}
	case "accept":
		return Command{Kind: KindAccept, Arg: strings.ToLower(rest)}
	case "turnin":
		return Command{Kind: KindTurnIn, Arg: strings.ToLower(rest)}
	case "mission":
		return Command{Kind: KindMission, Arg: strings.ToLower(rest)}
	case "buy":
		return Command{Kind: KindBuy, Arg: rest}
	case "name":
		return Command{Kind: KindName, Arg: rest}
	}

	return Command{Kind: KindUnknown, Arg: trimmed}
}
