package driver

import (
	"context"

	"github.com/nightgrid/neonmud/internal/game"
)

// DefaultRegenRate recovers a full stat bar in about a minute.
const DefaultRegenRate = 100.0 / 60.0

// PlayerLister exposes the connected players to background managers.
type PlayerLister interface {
	ForEachPlayer(fn func(p *game.Player))
}

// RegenManager drips hp, endurance, and willpower back toward full for
// every connected player who is not mid-fight. Run it on a 1 second
// cadence; fractional amounts accumulate across ticks.
type RegenManager struct {
	players PlayerLister
	rate    float64
	carry   float64
}

func NewRegenManager(players PlayerLister, rate float64) *RegenManager {
	if rate <= 0 {
		rate = DefaultRegenRate
	}
	return &RegenManager{players: players, rate: rate}
}

func (m *RegenManager) Tick(_ context.Context) error {
	m.carry += m.rate
	amount := int(m.carry)
	if amount == 0 {
		return nil
	}
	m.carry -= float64(amount)

	m.players.ForEachPlayer(func(p *game.Player) {
		if p.InFight() {
			return
		}
		p.Regenerate(amount)
	})
	return nil
}
