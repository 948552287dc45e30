package commands

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/nightgrid/neonmud/internal/game"
	"github.com/nightgrid/neonmud/internal/rng"
)

const redEyeVial = "Vial of Red Eye"

// lootTable is what a post-fight search can turn up.
var lootTable = []string{
	"Stimpack", "Neon Blade", "Cyberdeck Fragment", "50 credits",
	"Red Eye Vial", "Encrypted Chip", "Energy Drink", "Ammo",
	"EMP Grenade", "VR Chip", "Adrenaline Shot", "Armor Vest",
}

var itemTitler = cases.Title(language.English)

func (i *Interpreter) search(p *game.Player) (string, error) {
	if p.LastDefeated == "" {
		return "", NewUserError("There's nothing to search here.")
	}
	defeated := p.LastDefeated
	p.LastDefeated = ""

	loot := rng.Pick(i.rng, lootTable)
	if p.HasItem(loot) {
		return fmt.Sprintf("You search the %s but only find scraps.", defeated), nil
	}
	p.Inventory = append(p.Inventory, loot)
	return fmt.Sprintf("You search the %s and find %s!", defeated, loot), nil
}

func (i *Interpreter) inventory(p *game.Player) (string, error) {
	if len(p.Inventory) == 0 {
		return "You're not carrying anything.", nil
	}
	return "You are carrying: " + strings.Join(p.Inventory, ", "), nil
}

func (i *Interpreter) take(p *game.Player, item string) (string, error) {
	// A street offer from the last look takes priority.
	if p.LastOffer == "vial" {
		if p.HasItem(redEyeVial) {
			return "", Userf("You already have the %s.", redEyeVial)
		}
		p.Inventory = append(p.Inventory, redEyeVial)
		p.LastOffer = ""
		return fmt.Sprintf("You take the %s and add it to your inventory.", redEyeVial), nil
	}
	if item == "" {
		return "", NewUserError("Take what?")
	}
	proper := itemTitler.String(strings.ToLower(item))
	p.Inventory = append(p.Inventory, proper)
	return fmt.Sprintf("You take the %s and add it to your inventory.", proper), nil
}

func (i *Interpreter) use(p *game.Player, item string) (string, error) {
	switch strings.ToLower(item) {
	case "":
		return "", NewUserError("Use what?")
	case "stimpack":
		if !p.RemoveItem("Stimpack") {
			return "", NewUserError("You don't have a Stimpack to use.")
		}
		p.Stats.HP = game.ClampStat(p.Stats.HP + 35)
		p.Stats.Endurance = game.ClampStat(p.Stats.Endurance + 25)
		return "You inject a Stimpack. Your health and endurance surge! (+35 HP, +25 END)", nil
	case strings.ToLower(redEyeVial):
		if !p.HasItem(redEyeVial) {
			return "", Userf("You don't have a %s to use.", redEyeVial)
		}
		if p.RedEyeUsed {
			return "", Userf("You've already used the %s.", redEyeVial)
		}
		p.RedEyeUsed = true
		p.AttackBoost = 0.10
		return fmt.Sprintf("You consume the %s. Your attack power increases by 10%%!", redEyeVial), nil
	default:
		return "Nothing happens.", nil
	}
}
