package command

import (
	"fmt"

	"github.com/pixil98/go-errors"

	"github.com/nightgrid/neonmud/internal/player"
	"github.com/nightgrid/neonmud/internal/storage"
)

type StorageBackend int

const (
	StorageBackendFile StorageBackend = iota
	StorageBackendRedis
)

func (sb *StorageBackend) UnmarshalText(text []byte) error {
	switch string(text) {
	case "", "file":
		*sb = StorageBackendFile
	case "redis":
		*sb = StorageBackendRedis
	default:
		return fmt.Errorf("unknown storage backend: %s", text)
	}
	return nil
}

// StorageConfig selects where player saves live. Accounts are always
// file-backed; only the player records can move to redis.
type StorageConfig struct {
	Backend      StorageBackend `json:"backend"`
	PlayersPath  string         `json:"players_path"`
	AccountsPath string         `json:"accounts_path"`
	RedisAddr    string         `json:"redis_addr,omitempty"`
}

func (c *StorageConfig) validate() error {
	el := errors.NewErrorList()

	if c.AccountsPath == "" {
		el.Add(fmt.Errorf("accounts_path is required"))
	}

	switch c.Backend {
	case StorageBackendFile:
		if c.PlayersPath == "" {
			el.Add(fmt.Errorf("players_path is required"))
		}
	case StorageBackendRedis:
		if c.RedisAddr == "" {
			el.Add(fmt.Errorf("redis_addr is required"))
		}
	}

	return el.Err()
}

func (c *StorageConfig) BuildPlayerStore() (storage.PlayerStore, error) {
	switch c.Backend {
	case StorageBackendRedis:
		return storage.NewRedisPlayerStore(c.RedisAddr), nil
	default:
		return storage.NewFilePlayerStore(c.PlayersPath)
	}
}

func (c *StorageConfig) BuildAccountStore() (storage.Storer[*player.Account], error) {
	return storage.NewFileStore[*player.Account](c.AccountsPath)
}
