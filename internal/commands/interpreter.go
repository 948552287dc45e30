// Package commands parses player input into tagged command variants
// and executes them against the world. Narrated failures are
// UserErrors; anything else bubbles up as a system error.
package commands

import (
	"context"
	"errors"
	"log/slog"

	"github.com/nightgrid/neonmud/internal/combat"
	"github.com/nightgrid/neonmud/internal/game"
	"github.com/nightgrid/neonmud/internal/rng"
	"github.com/nightgrid/neonmud/internal/world"
)

// Saver persists a player record. Saves are best-effort: a failed save
// is logged and never blocks the command's narration.
type Saver interface {
	Save(ctx context.Context, p *game.Player) error
}

// Interpreter executes parsed commands for one world.
type Interpreter struct {
	world  *world.World
	engine *combat.Engine
	rng    *rng.Rand
	sink   game.EventSink
	saver  Saver
	log    *slog.Logger
}

func NewInterpreter(w *world.World, e *combat.Engine, r *rng.Rand, sink game.EventSink, saver Saver, log *slog.Logger) *Interpreter {
	if log == nil {
		log = slog.Default()
	}
	return &Interpreter{world: w, engine: e, rng: r, sink: sink, saver: saver, log: log}
}

// Handle parses and executes one line of player input. The returned
// string is what the player sees. A non-nil error is a system failure;
// user mistakes come back as narration.
func (i *Interpreter) Handle(ctx context.Context, p *game.Player, input string) (string, error) {
	cmd := Parse(input)
	out, err := i.dispatch(ctx, p, cmd)
	if err != nil {
		var uerr *UserError
		if errors.As(err, &uerr) {
			return uerr.Message, nil
		}
		return "", err
	}
	if mutates(cmd.Kind) {
		i.save(ctx, p)
	}
	return out, nil
}

func (i *Interpreter) dispatch(ctx context.Context, p *game.Player, cmd Command) (string, error) {
	switch cmd.Kind {
	case KindLook:
		return i.look(p)
	case KindGo:
		return i.move(p, cmd.Arg)
	case KindAttack:
		return i.attack(p)
	case KindRun:
		return i.flee(p)
	case KindSearch:
		return i.search(p)
	case KindInventory:
		return i.inventory(p)
	case KindTake:
		return i.take(p, cmd.Arg)
	case KindUse:
		return i.use(p, cmd.Arg)
	case KindEquip:
		return i.equip(p, cmd.Arg)
	case KindUnequip:
		return i.unequip(p, cmd.Arg)
	case KindTalk:
		return i.talk(p, cmd.Arg)
	case KindAccept:
		return i.accept(p, cmd.Arg)
	case KindTurnIn:
		return i.turnIn(p, cmd.Arg)
	case KindQuests:
		return i.listQuests(p)
	case KindMission:
		return i.mission(p, cmd.Arg)
	case KindLeave:
		return i.leaveMission(p)
	case KindShop:
		return i.shop(p)
	case KindBuy:
		return i.buy(p, cmd.Arg)
	case KindCredits:
		return i.credits(p)
	case KindName:
		return i.rename(p, cmd.Arg)
	case KindQuit:
		return "Goodbye!", nil
	case KindHelp:
		return helpText, nil
	case KindMobs:
		return i.mobReport(p)
	case KindSpawn:
		return i.spawnGang(p)
	default:
		return "", NewUserError("Unknown command. Try 'look', 'go <direction>', 'equip <item>', 'unequip <slot>', or 'help'.")
	}
}

// mutates reports whether a command kind can change player state worth
// persisting.
func mutates(k Kind) bool {
	switch k {
	case KindGo, KindAttack, KindRun, KindSearch, KindTake, KindUse,
		KindEquip, KindUnequip, KindAccept, KindTurnIn, KindMission,
		KindLeave, KindBuy, KindName, KindLook:
		return true
	}
	return false
}

func (i *Interpreter) save(ctx context.Context, p *game.Player) {
	if i.saver == nil {
		return
	}
	if err := i.saver.Save(ctx, p); err != nil {
		i.log.Warn("saving player", "player", p.Key(), "error", err)
	}
}

func (i *Interpreter) worldEvent(p *game.Player, text string) {
	if i.sink == nil || text == "" {
		return
	}
	i.sink.WorldEvent(p.Key(), text)
}

func (i *Interpreter) equipEvent(p *game.Player, change game.EquipChange) {
	if i.sink == nil {
		return
	}
	i.sink.EquipEvent(p.Key(), change)
}
