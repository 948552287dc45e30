package commands

import "github.com/nightgrid/neonmud/internal/game"

func (i *Interpreter) attack(p *game.Player) (string, error) {
	if !p.InFight() {
		return "", NewUserError("You're not in a fight right now.")
	}
	res := i.engine.Attack(p)
	i.worldEvent(p, res.Event)
	return res.Text, nil
}

func (i *Interpreter) flee(p *game.Player) (string, error) {
	if !p.InFight() {
		return "", NewUserError("You're not in a fight right now.")
	}
	res := i.engine.Flee(p)
	i.worldEvent(p, res.Event)
	return res.Text, nil
}
