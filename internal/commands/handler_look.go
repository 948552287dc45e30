package commands

import "github.com/nightgrid/neonmud/internal/game"

func (i *Interpreter) look(p *game.Player) (string, error) {
	desc := i.world.DescribeRoom(p.CurrentRoom, false)
	if extra, _ := i.engine.LookEncounter(p); extra != "" {
		return desc + "\n\n" + extra, nil
	}
	return desc, nil
}
