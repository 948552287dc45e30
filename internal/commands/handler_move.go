package commands

import "github.com/nightgrid/neonmud/internal/game"

func (i *Interpreter) move(p *game.Player, direction string) (string, error) {
	if direction == "" {
		return "", NewUserError("Go where? Try go <north|south|east|west>.")
	}
	out, moved := i.world.Move(p, direction)
	if !moved {
		return "", NewUserError(out)
	}

	// Walking into a room with live hostiles can start a fight.
	if ambush, ok := i.engine.RoomEncounter(p); ok {
		out += "\n\n" + ambush
	}
	return out, nil
}
