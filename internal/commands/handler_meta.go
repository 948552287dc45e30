package commands

import (
	"fmt"
	"sort"
	"strings"

	"github.com/nightgrid/neonmud/internal/game"
)

const maxNameLen = 24

func (i *Interpreter) rename(p *game.Player, newName string) (string, error) {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return "", NewUserError("Please provide a new character name.")
	}
	if len(newName) > maxNameLen {
		return "", Userf("Name too long (max %d characters).", maxNameLen)
	}
	p.Name = newName
	return fmt.Sprintf("Character name changed to %s.", newName), nil
}

// mobReport is a diagnostic: hostiles here and in adjacent rooms.
func (i *Interpreter) mobReport(p *game.Player) (string, error) {
	lines := []string{"Mobs here: " + formatCounts(i.world.MobCounts(p.CurrentRoom))}

	exits := i.world.Exits(p.CurrentRoom)
	dirs := make([]string, 0, len(exits))
	for d := range exits {
		dirs = append(dirs, d)
	}
	sort.Strings(dirs)
	for _, d := range dirs {
		target := exits[d]
		if counts := i.world.MobCounts(target); len(counts) > 0 {
			lines = append(lines, fmt.Sprintf("%s -> %s: %s", d, target, formatCounts(counts)))
		}
	}
	return strings.Join(lines, "\n"), nil
}

func formatCounts(counts map[string]int) string {
	if len(counts) == 0 {
		return "None"
	}
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)
	parts := make([]string, len(names))
	for idx, name := range names {
		parts[idx] = fmt.Sprintf("%s x%d", name, counts[name])
	}
	return strings.Join(parts, ", ")
}

// spawnGang is a diagnostic: drop a Gang Member into the current room.
func (i *Interpreter) spawnGang(p *game.Player) (string, error) {
	i.world.AddMob(p.CurrentRoom, "Gang Member")
	return fmt.Sprintf("A Gang Member appears in %s.", p.CurrentRoom), nil
}

const helpText = "Commands:\n\n" +
	"Movement\n" +
	"- look (l): Re-describe the current room.\n" +
	"- go <north|south|east|west>: Move between rooms.\n" +
	"- go out: Leave an instanced alley mission (when available).\n\n" +
	"Combat\n" +
	"- attack: Attack your current opponent (only in a fight).\n" +
	"- run: Try to escape a fight.\n" +
	"- search: Search after fights for loot (when available).\n\n" +
	"Items & Gear\n" +
	"- inventory: View your inventory.\n" +
	"- take <item>: Pick up an item (context-sensitive).\n" +
	"- use <item>: Use a consumable (e.g., use stimpack).\n" +
	"- equip <item>: Equip an item from your inventory.\n" +
	"- unequip <slot>: Remove equipped item (weapon, hands, head, body, legs, feet, offhand, accessory).\n\n" +
	"NPCs & Missions\n" +
	"- talk <npc>: Talk and get mission offers/reminders.\n" +
	"- accept <mission_id>: Accept the NPC mission in your current room.\n" +
	"- turnin <mission_id>: Turn in an accepted mission when you have the required item.\n" +
	"- quests: List your active/completed missions.\n\n" +
	"Alley Runs (Instanced)\n" +
	"- mission [easy|medium|hard]: Start a back-alley run (only from back alleys).\n" +
	"- mission tiers: Show tiers + your recommended tier.\n" +
	"- leave: Abort an active alley run and return to the city.\n\n" +
	"Shops & Meta\n" +
	"- shop: View items for sale (when a vendor is present).\n" +
	"- buy <item>: Buy an item from a shop.\n" +
	"- credits: Show your credit balance.\n" +
	"- name <new_name>: Set your character name.\n" +
	"- quit / exit: End your session."
