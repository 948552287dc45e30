package commands

import (
	"fmt"
	"strings"

	"github.com/nightgrid/neonmud/internal/game"
	"github.com/nightgrid/neonmud/internal/world"
)

// RecommendedTier suggests a mission tier from level, attack, and hit
// points. Advisory only; nothing stops a level 1 from picking hard.
func RecommendedTier(p *game.Player) string {
	atk := p.Attack()
	if p.Level <= 2 || atk <= 12 || p.Stats.HP <= 60 {
		return "easy"
	}
	if p.Level >= 7 && atk >= 16 && p.Stats.HP >= 85 {
		return "hard"
	}
	return "medium"
}

func (i *Interpreter) mission(p *game.Player, arg string) (string, error) {
	if arg == "tiers" || arg == "help" || arg == "?" {
		return fmt.Sprintf("Mission tiers: easy, medium, hard. Use: mission <tier>\nRecommended for you: %s (level %d)",
			RecommendedTier(p), p.Level), nil
	}
	if !strings.Contains(p.CurrentRoom, "back_alley") {
		return "", NewUserError("You can only start a mission from a back alley.")
	}
	if i.world.InstanceFor(p.Key()) != nil {
		return "", NewUserError("You're already in a mission instance. Use 'leave' to abort.")
	}

	tier := arg
	tip := ""
	if tier == "" {
		tier = "medium"
		rec := RecommendedTier(p)
		tip = fmt.Sprintf("Tip: recommended tier for you is %s (level %d). Start with `mission %s`.\n\n", rec, p.Level, rec)
	} else if !world.ValidTier(tier) {
		return "", NewUserError("Unknown tier. Use: mission easy|medium|hard")
	}

	out, err := i.world.StartInstance(p, "", tier)
	if err != nil {
		return "", err
	}

	shown := arg
	if shown == "" {
		shown = "recommended"
	}
	i.worldEvent(p, fmt.Sprintf("Started a %s alley run.", shown))
	return tip + out, nil
}

func (i *Interpreter) leaveMission(p *game.Player) (string, error) {
	inst := i.world.InstanceFor(p.Key())
	if inst == nil {
		return "", NewUserError("You're not in a mission instance.")
	}
	entry := inst.EntryRoom
	i.world.EndInstance(p.Key())
	i.worldEvent(p, "Walked away from an alley run.")

	if entry != "" && i.world.RoomExists(entry) {
		p.CurrentRoom = entry
		return i.world.DescribeRoom(entry, true), nil
	}
	return "You leave the mission and return to the city.", nil
}
