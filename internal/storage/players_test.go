package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/nightgrid/neonmud/internal/game"
)

func TestFilePlayerStore_RoundTrip(t *testing.T) {
	store, err := NewFilePlayerStore(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	p := game.NewPlayer("Jax", "start")
	p.Account = "jax"
	p.Credits = 120
	p.Inventory = append(p.Inventory, "Stimpack")
	p.Quests["rook_chip_run"] = &game.QuestEntry{Status: game.QuestAccepted, Giver: "Rook", Title: "Chip Run"}

	ctx := context.Background()
	if err := store.Save(ctx, p); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := store.Load(ctx, "jax")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Name != "Jax" || loaded.Credits != 120 {
		t.Errorf("unexpected record: %+v", loaded)
	}
	if loaded.Quests["rook_chip_run"] == nil || loaded.Quests["rook_chip_run"].Status != game.QuestAccepted {
		t.Errorf("quest ledger not restored: %+v", loaded.Quests)
	}
}

func TestFilePlayerStore_LoadMissing(t *testing.T) {
	store, err := NewFilePlayerStore(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = store.Load(context.Background(), "nobody")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestRedisPlayerStore_RoundTrip(t *testing.T) {
	mr := miniredis.RunT(t)
	store := NewRedisPlayerStoreFromClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	ctx := context.Background()

	require.NoError(t, store.Ping(ctx))

	p := game.NewPlayer("Vex", "neon_plaza")
	p.Account = "vex"
	p.Level = 3
	p.Equipment[game.SlotWeapon] = "Neon Blade"

	require.NoError(t, store.Save(ctx, p))

	loaded, err := store.Load(ctx, "vex")
	require.NoError(t, err)
	require.Equal(t, "Vex", loaded.Name)
	require.Equal(t, 3, loaded.Level)
	require.Equal(t, "Neon Blade", loaded.Equipment[game.SlotWeapon])
}

func TestRedisPlayerStore_LoadMissing(t *testing.T) {
	mr := miniredis.RunT(t)
	store := NewRedisPlayerStoreFromClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))

	_, err := store.Load(context.Background(), "ghost")
	require.ErrorIs(t, err, ErrNotFound)
}
