package messaging

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/nightgrid/neonmud/internal/game"
)

// Event is the wire envelope published to a player's subject.
type Event struct {
	Type  string            `json:"type"` // "world" or "equip"
	Text  string            `json:"text,omitempty"`
	Equip *game.EquipChange `json:"equip,omitempty"`
}

// PlayerSubject returns the NATS subject carrying one player's events.
func PlayerSubject(playerKey string) string {
	return fmt.Sprintf("player-%s", playerKey)
}

// EventPublisher relays game events onto per-player NATS subjects. It
// satisfies game.EventSink. Publish failures are logged, not returned:
// a dropped UI event must never fail the command that caused it.
type EventPublisher struct {
	server *Server
	log    *slog.Logger
}

func NewEventPublisher(server *Server, log *slog.Logger) *EventPublisher {
	if log == nil {
		log = slog.Default()
	}
	return &EventPublisher{server: server, log: log}
}

func (p *EventPublisher) WorldEvent(playerKey, text string) {
	p.publish(playerKey, Event{Type: "world", Text: text})
}

func (p *EventPublisher) EquipEvent(playerKey string, change game.EquipChange) {
	p.publish(playerKey, Event{Type: "equip", Equip: &change})
}

func (p *EventPublisher) publish(playerKey string, ev Event) {
	data, err := json.Marshal(ev)
	if err != nil {
		p.log.Warn("marshalling event", "player", playerKey, "error", err)
		return
	}
	if err := p.server.Publish(PlayerSubject(playerKey), data); err != nil {
		p.log.Warn("publishing event", "player", playerKey, "subject", PlayerSubject(playerKey), "error", err)
	}
}
