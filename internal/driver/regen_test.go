package driver

import (
	"context"
	"testing"

	"github.com/pixil98/go-testutil"

	"github.com/nightgrid/neonmud/internal/game"
)

type staticPlayers struct {
	players []*game.Player
}

func (s *staticPlayers) ForEachPlayer(fn func(p *game.Player)) {
	for _, p := range s.players {
		fn(p)
	}
}

func TestRegenManagerAccumulatesFractions(t *testing.T) {
	p := game.NewPlayer("Vee", "start")
	p.Stats.HP = 50
	m := NewRegenManager(&staticPlayers{players: []*game.Player{p}}, DefaultRegenRate)

	// 60 ticks at 100/60 per tick drips exactly 100 points, the
	// fractional remainders carrying between ticks.
	for range 60 {
		if err := m.Tick(context.Background()); err != nil {
			t.Fatalf("tick: %v", err)
		}
	}

	testutil.AssertEqual(t, "hp capped", p.Stats.HP, 100)
}

func TestRegenManagerSkipsFighters(t *testing.T) {
	fighting := game.NewPlayer("Fighter", "start")
	fighting.Stats.HP = 10
	fighting.Encounter = &game.Encounter{Opponent: "Street Punk", HP: 5}

	resting := game.NewPlayer("Rester", "start")
	resting.Stats.HP = 10

	m := NewRegenManager(&staticPlayers{players: []*game.Player{fighting, resting}}, 5)

	if err := m.Tick(context.Background()); err != nil {
		t.Fatalf("tick: %v", err)
	}

	testutil.AssertEqual(t, "fighter untouched", fighting.Stats.HP, 10)
	testutil.AssertEqual(t, "rester healed", resting.Stats.HP, 15)
}

func TestRegenManagerDefaultsRate(t *testing.T) {
	m := NewRegenManager(&staticPlayers{}, 0)
	testutil.AssertEqual(t, "rate", m.rate, DefaultRegenRate)

	m = NewRegenManager(&staticPlayers{}, -3)
	testutil.AssertEqual(t, "negative rate", m.rate, DefaultRegenRate)
}
