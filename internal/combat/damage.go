package combat

import "github.com/nightgrid/neonmud/internal/game"

const (
	neonBlade      = "Neon Blade"
	neonBladeBonus = 3
	critChance     = 0.15
	critMult       = 1.5
)

// playerDamage rolls one attack: a base die, a quarter of the attack
// stat, and the weapon bonus. The Neon Blade can crit for half again,
// truncated.
func (e *Engine) playerDamage(p *game.Player, atk int) (dmg int, crit bool) {
	dmg = e.rng.Range(6, 12) + max(0, atk/4)
	blade := p.Equipment[game.SlotWeapon] == neonBlade
	if blade {
		dmg += neonBladeBonus
		crit = e.rng.Chance(critChance)
	}
	if crit {
		dmg = int(float64(dmg) * critMult)
	}
	return dmg, crit
}

// Counter-attack buckets by species class. Anything unlisted hits for
// the default band.
var (
	heavyHitters = map[string]bool{"Aug Bruiser": true, "Enforcer": true}
	midHitters   = map[string]bool{"Corpo Security": true, "Blade Dancer": true, "Gang Member": true}
	lightHitters = map[string]bool{"Street Punk": true, "Cyber Thug": true, "Drone Swarm": true, "Net Runner": true}
)

func (e *Engine) counterDamage(opponent string) int {
	switch {
	case heavyHitters[opponent]:
		return e.rng.Range(8, 16)
	case midHitters[opponent]:
		return e.rng.Range(6, 13)
	case lightHitters[opponent]:
		return e.rng.Range(4, 10)
	default:
		return e.rng.Range(5, 12)
	}
}
