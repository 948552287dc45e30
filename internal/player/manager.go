package player

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/nightgrid/neonmud/internal/commands"
	"github.com/nightgrid/neonmud/internal/game"
	"github.com/nightgrid/neonmud/internal/messaging"
	"github.com/nightgrid/neonmud/internal/storage"
	"github.com/nightgrid/neonmud/internal/world"
)

// Manager owns every live session. It runs the login flow, loads or
// creates the player record, and keeps one session per identity key,
// newest connection winning.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session

	world   *world.World
	interp  *commands.Interpreter
	players storage.PlayerStore
	msg     *messaging.Server
	log     *slog.Logger

	loginFlow *loginFlow
}

func NewManager(w *world.World, interp *commands.Interpreter, players storage.PlayerStore, accounts storage.Storer[*Account], msg *messaging.Server, log *slog.Logger) *Manager {
	if log == nil {
		log = slog.Default()
	}
	return &Manager{
		sessions:  map[string]*Session{},
		world:     w,
		interp:    interp,
		players:   players,
		msg:       msg,
		log:       log,
		loginFlow: &loginFlow{accounts: accounts},
	}
}

// Start blocks until shutdown. Sessions are driven by their own
// connection goroutines; the manager worker only anchors the lifecycle.
func (m *Manager) Start(ctx context.Context) error {
	<-ctx.Done()

	m.mu.Lock()
	for _, s := range m.sessions {
		close(s.done)
	}
	m.sessions = map[string]*Session{}
	m.mu.Unlock()

	return nil
}

// RunSession authenticates the connection and runs its command loop
// until disconnect. It blocks for the life of the connection.
func (m *Manager) RunSession(ctx context.Context, conn io.ReadWriter, addr string) error {
	acct, err := m.loginFlow.Run(conn)
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}

	p, err := m.loadPlayer(ctx, acct, addr)
	if err != nil {
		return fmt.Errorf("loading player %s: %w", acct.Name, err)
	}

	s := &Session{
		conn:   conn,
		player: p,
		interp: m.interp,
		log:    m.log,
		msgs:   make(chan []byte, 16),
		done:   make(chan struct{}),
	}

	m.register(s)
	defer m.unregister(s)

	unsubscribe, err := m.subscribe(s)
	if err != nil {
		m.log.Warn("subscribing player events", "player", s.Id(), "error", err)
	} else {
		defer unsubscribe()
	}

	runErr := s.run(ctx)

	if err := m.players.Save(context.WithoutCancel(ctx), p); err != nil {
		m.log.Warn("saving player on disconnect", "player", s.Id(), "error", err)
	}

	return runErr
}

// ForEachPlayer calls fn for every connected player.
func (m *Manager) ForEachPlayer(fn func(p *game.Player)) {
	m.mu.Lock()
	players := make([]*game.Player, 0, len(m.sessions))
	for _, s := range m.sessions {
		players = append(players, s.player)
	}
	m.mu.Unlock()

	for _, p := range players {
		fn(p)
	}
}

func (m *Manager) loadPlayer(ctx context.Context, acct *Account, addr string) (*game.Player, error) {
	p, err := m.players.Load(ctx, acct.Name)
	if errors.Is(err, storage.ErrNotFound) {
		p = game.NewPlayer(acct.Name, m.world.StartRoom())
	} else if err != nil {
		return nil, err
	}

	p.Account = acct.Name
	p.Address = addr
	p.SessionId = uuid.NewString()

	// A stale save can point at a torn-down mission room.
	if !m.world.RoomExists(p.CurrentRoom) {
		p.CurrentRoom = m.world.StartRoom()
	}

	return p, nil
}

func (m *Manager) register(s *Session) {
	m.mu.Lock()
	prev := m.sessions[s.Id()]
	m.sessions[s.Id()] = s
	m.mu.Unlock()

	if prev != nil {
		close(prev.done)
	}
}

func (m *Manager) unregister(s *Session) {
	m.mu.Lock()
	if m.sessions[s.Id()] == s {
		delete(m.sessions, s.Id())
	}
	m.mu.Unlock()
}

func (m *Manager) subscribe(s *Session) (func(), error) {
	if m.msg == nil {
		return func() {}, nil
	}
	return m.msg.Subscribe(messaging.PlayerSubject(s.Id()), func(data []byte) {
		select {
		case s.msgs <- data:
		default:
			m.log.Warn("dropping event, session backlog full", "player", s.Id())
		}
	})
}
