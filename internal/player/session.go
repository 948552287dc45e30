package player

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/nightgrid/neonmud/internal/commands"
	"github.com/nightgrid/neonmud/internal/display"
	"github.com/nightgrid/neonmud/internal/game"
	"github.com/nightgrid/neonmud/internal/messaging"
)

// Session drives one connected player: a read loop feeding the command
// interpreter, plus event delivery from the player's message subject.
type Session struct {
	conn   io.ReadWriter
	player *game.Player
	interp *commands.Interpreter
	log    *slog.Logger

	msgs chan []byte
	done chan struct{}
}

// Id returns the session's identity key.
func (s *Session) Id() string {
	return s.player.Key()
}

func (s *Session) run(ctx context.Context) error {
	inputChan := make(chan string)
	inputErrChan := make(chan error, 1)
	go func() {
		for {
			line, err := readLine(s.conn)
			if err != nil {
				inputErrChan <- err
				close(inputChan)
				return
			}
			inputChan <- line
		}
	}()

	// Show the player their current room on login
	out, err := s.interp.Handle(ctx, s.player, "look")
	if err != nil {
		return fmt.Errorf("initial look failed: %w", err)
	}
	if err := s.writeLine(out); err != nil {
		return err
	}
	if err := s.prompt(); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case <-s.done:
			if err := s.writeLine("\nAnother connection has taken over your session."); err != nil {
				s.log.Warn("writing takeover notice", "player", s.Id(), "error", err)
			}
			return nil

		case msg := <-s.msgs:
			err = s.writeLine("\n" + renderEvent(msg))
			if err != nil {
				return err
			}
			err = s.prompt()
			if err != nil {
				return err
			}

		case line, ok := <-inputChan:
			if !ok {
				// Connection lost; the manager saves on the way out.
				err := <-inputErrChan
				if err == io.EOF {
					return nil
				}
				return err
			}

			line = strings.TrimSpace(line)
			if line == "" {
				err = s.prompt()
				if err != nil {
					return err
				}
				continue
			}

			out, err := s.interp.Handle(ctx, s.player, line)
			if err != nil {
				// System error - log and disconnect
				return fmt.Errorf("command execution failed: %w", err)
			}

			err = s.writeLine(out)
			if err != nil {
				return err
			}

			if commands.Parse(line).Kind == commands.KindQuit {
				return nil
			}

			err = s.prompt()
			if err != nil {
				return err
			}
		}
	}
}

func (s *Session) prompt() error {
	prompt := fmt.Sprintf("[%d/100HP] > ", s.player.Stats.HP)
	_, err := s.conn.Write([]byte(prompt))
	return err
}

func (s *Session) writeLine(msg string) error {
	_, err := s.conn.Write([]byte(display.Wrap(msg) + "\n\n"))
	return err
}

// renderEvent turns a published event envelope into a line for the
// player. Unparseable payloads pass through raw.
func renderEvent(data []byte) string {
	var ev messaging.Event
	if err := json.Unmarshal(data, &ev); err != nil {
		return string(data)
	}

	switch ev.Type {
	case "equip":
		if ev.Equip == nil {
			return ""
		}
		if ev.Equip.Action == "unequip" {
			return fmt.Sprintf("* %s slot cleared (%s removed)", ev.Equip.Slot, ev.Equip.Item)
		}
		return fmt.Sprintf("* %s equipped in %s slot", ev.Equip.Item, ev.Equip.Slot)
	default:
		return "* " + ev.Text
	}
}
