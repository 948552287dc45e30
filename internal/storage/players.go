package storage

import (
	"context"
	"errors"

	"github.com/nightgrid/neonmud/internal/game"
)

// ErrNotFound is returned when a player record does not exist.
var ErrNotFound = errors.New("player not found")

// PlayerStore persists player records keyed by identity.
type PlayerStore interface {
	Save(ctx context.Context, p *game.Player) error
	Load(ctx context.Context, key string) (*game.Player, error)
}

// FilePlayerStore keeps player records as JSON asset files.
type FilePlayerStore struct {
	store *FileStore[*game.Player]
}

func NewFilePlayerStore(path string) (*FilePlayerStore, error) {
	fs, err := NewFileStore[*game.Player](path)
	if err != nil {
		return nil, err
	}
	return &FilePlayerStore{store: fs}, nil
}

func (s *FilePlayerStore) Save(_ context.Context, p *game.Player) error {
	return s.store.Save(MakeIdentifier(p.Key()), p)
}

func (s *FilePlayerStore) Load(_ context.Context, key string) (*game.Player, error) {
	p := s.store.Get(MakeIdentifier(key))
	if p == nil {
		return nil, ErrNotFound
	}
	p.Normalize()
	return p, nil
}
