// Package combat implements turn-based encounters: how fights start,
// how damage is traded, and what a kill pays out.
package combat

import (
	"fmt"

	"github.com/nightgrid/neonmud/internal/game"
	"github.com/nightgrid/neonmud/internal/rng"
	"github.com/nightgrid/neonmud/internal/world"
)

const (
	hallRoom     = "hall"
	addictName   = "Angry Drug Addict"
	addictHP     = 30
	addictChance = 0.2
	flavorChance = 0.5
	ambushChance = 0.5
	escapeChance = 0.5
	redEyeOffer  = "vial"
)

// Engine resolves encounters. It owns no state of its own; fights live
// on the player and hostiles live in the world.
type Engine struct {
	world *world.World
	rng   *rng.Rand
}

func NewEngine(w *world.World, r *rng.Rand) *Engine {
	return &Engine{world: w, rng: r}
}

// Result is a resolved combat action: narration for the acting player
// and an optional line visible to the wider world.
type Result struct {
	Text  string
	Event string
}

// hallEncounters are the flavor scenes rolled on a hall look. The
// first one leaves a Red Eye offer on the table for `take`.
var hallEncounters = []string{
	"A shadowy figure steps out and offers you a Vial of Red Eye.",
	"A cyber-rat scurries past your feet, carrying something shiny.",
	"A street dealer eyes you suspiciously, then vanishes into the darkness.",
	"You hear distant laughter and the flicker of neon lights intensifies.",
	"A drone buzzes overhead, scanning the hallway for movement.",
}

// LookEncounter rolls the scripted hall encounters on a look. The
// returned text is appended to the room description; engaged reports
// whether a fight started.
func (e *Engine) LookEncounter(p *game.Player) (text string, engaged bool) {
	if p.CurrentRoom != hallRoom {
		return "", false
	}
	if e.rng.Chance(addictChance) {
		p.Encounter = &game.Encounter{Opponent: addictName, HP: addictHP}
		return "Suddenly, a wild-eyed drug addict lunges at you, fists swinging! You are in a fight! Type 'attack' to fight back or 'run' to try to escape.", true
	}
	if e.rng.Chance(flavorChance) {
		scene := rng.Pick(e.rng, hallEncounters)
		if scene == hallEncounters[0] {
			p.LastOffer = redEyeOffer
		} else {
			p.LastOffer = ""
		}
		return scene, false
	}
	p.LastOffer = ""
	return "", false
}

// RoomEncounter rolls an ambush after the player enters a room with
// live hostiles. Inside a mission instance the ambush always happens.
// One unit is pulled out of the room to fight; the boss of the
// player's own instance fights with scaled hit points.
func (e *Engine) RoomEncounter(p *game.Player) (string, bool) {
	units := e.world.MobsInRoom(p.CurrentRoom)
	if len(units) == 0 {
		return "", false
	}
	if !world.IsInstanceRoom(p.CurrentRoom) && !e.rng.Chance(ambushChance) {
		return "", false
	}

	opponent := rng.Pick(e.rng, units)
	hp := e.world.SpeciesBaseHP(opponent)
	if inst := e.world.InstanceFor(p.Key()); inst != nil && opponent == inst.Boss {
		hp = int(float64(hp) * inst.BossHPMult)
	}
	e.world.TakeMob(p.CurrentRoom, opponent)
	p.Encounter = &game.Encounter{Opponent: opponent, HP: hp}
	return fmt.Sprintf("A %s spots you and rushes in! You're in a fight! Type 'attack' or 'run'.", opponent), true
}

// Attack resolves one round of the player's active fight.
func (e *Engine) Attack(p *game.Player) Result {
	atk := p.Attack()
	dmg, crit := e.playerDamage(p, atk)
	p.Encounter.HP -= dmg
	p.Stats.Endurance = game.ClampStat(p.Stats.Endurance - e.rng.Range(3, 7))

	critTag := ""
	if crit {
		critTag = " (CRIT!)"
	}

	if p.Encounter.HP <= 0 {
		return e.resolveKill(p, atk, dmg, critTag)
	}

	counter := e.counterDamage(p.Encounter.Opponent)
	p.Stats.HP = max(0, p.Stats.HP-counter)
	p.Stats.Willpower = game.ClampStat(p.Stats.Willpower - e.rng.Range(2, 6))

	msg := fmt.Sprintf("You attack (Atk %d) and deal %d damage%s. He has %d HP left.\nHe hits you back for %d damage!",
		atk, dmg, critTag, p.Encounter.HP, counter)
	if p.Stats.HP == 0 {
		p.Encounter = nil
		return Result{Text: msg + "\nYou were knocked out! You wake up later, dazed, with some health restored."}
	}
	return Result{Text: msg}
}

func (e *Engine) resolveKill(p *game.Player, atk, dmg int, critTag string) Result {
	defeated := p.Encounter.Opponent
	p.Encounter = nil
	p.LastDefeated = defeated

	strike := fmt.Sprintf("You strike with Atk %d and deal %d damage%s! The %s goes down. You win the fight!",
		atk, dmg, critTag, defeated)

	// Felling the boss of the player's own instance pays the pre-drawn
	// mission reward, exactly once.
	if inst := e.world.InstanceFor(p.Key()); inst != nil && defeated == inst.Boss {
		if done, ok := e.world.CompleteInstance(p.Key()); ok {
			p.XP += done.RewardXP
			p.Credits += done.RewardCredits
			return Result{
				Text: fmt.Sprintf("%s\nMISSION COMPLETE: %s! (+%d cr, +%d XP)\nType 'go out' to leave, or 'leave' to abort and clean up.",
					strike, done.Title, done.RewardCredits, done.RewardXP),
				Event: fmt.Sprintf("Cleared a %s alley boss.", done.Tier),
			}
		}
	}

	xpGain := e.rng.Range(15, 30)
	levels := p.GainXP(xpGain)
	msg := fmt.Sprintf("%s\nYou gain %d XP.", strike, xpGain)
	if levels > 0 {
		msg += fmt.Sprintf("\nYou leveled up! You are now level %d.", p.Level)
	}
	return Result{Text: msg}
}

// Flee attempts to break off the active fight. Half the time it works;
// otherwise the opponent lands one free hit.
func (e *Engine) Flee(p *game.Player) Result {
	opponent := p.Encounter.Opponent
	if e.rng.Chance(escapeChance) {
		p.Encounter = nil
		return Result{Text: fmt.Sprintf("You manage to escape the %s and flee!", opponent)}
	}
	counter := e.counterDamage(opponent)
	p.Stats.HP = max(0, p.Stats.HP-counter)
	msg := fmt.Sprintf("You try to run, but the %s grabs you and hits you for %d damage!", opponent, counter)
	if p.Stats.HP == 0 {
		p.Encounter = nil
		return Result{Text: msg + "\nYou were knocked out! You wake up later, dazed, with some health restored."}
	}
	return Result{Text: msg}
}
