package command

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/pixil98/go-service"

	"github.com/nightgrid/neonmud/internal/combat"
	"github.com/nightgrid/neonmud/internal/commands"
	"github.com/nightgrid/neonmud/internal/driver"
	"github.com/nightgrid/neonmud/internal/listener"
	"github.com/nightgrid/neonmud/internal/messaging"
	"github.com/nightgrid/neonmud/internal/player"
	"github.com/nightgrid/neonmud/internal/rng"
	"github.com/nightgrid/neonmud/internal/world"
)

func BuildWorkers(config interface{}) (service.WorkerList, error) {
	cfg, ok := config.(*Config)
	if !ok {
		return nil, fmt.Errorf("unable to cast config")
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	r := rng.New(seed)

	w := world.New(r)
	engine := combat.NewEngine(w, r)

	// Messaging
	natsServer, err := cfg.Nats.BuildServer()
	if err != nil {
		return nil, fmt.Errorf("creating nats server: %w", err)
	}
	publisher := messaging.NewEventPublisher(natsServer, slog.Default())

	// Storage
	playerStore, err := cfg.Storage.BuildPlayerStore()
	if err != nil {
		return nil, fmt.Errorf("creating player store: %w", err)
	}
	accountStore, err := cfg.Storage.BuildAccountStore()
	if err != nil {
		return nil, fmt.Errorf("creating account store: %w", err)
	}

	interp := commands.NewInterpreter(w, engine, r, publisher, playerStore, slog.Default())
	pm := player.NewManager(w, interp, playerStore, accountStore, natsServer, slog.Default())
	cm := listener.NewConnectionManager(pm)

	// Create Listeners
	listeners := make(service.WorkerList, len(cfg.Listeners))
	for i, l := range cfg.Listeners {
		lst, err := l.BuildListener(cm)
		if err != nil {
			return nil, fmt.Errorf("creating listener %d: %w", i, err)
		}
		listeners[fmt.Sprintf("listener-%d", i)] = lst
	}

	// Background simulation
	roam := driver.New("roam",
		[]driver.Manager{driver.NewRoamManager(w)},
		driver.WithTickLength(cfg.roamInterval()))
	regen := driver.New("regen",
		[]driver.Manager{driver.NewRegenManager(pm, driver.DefaultRegenRate)},
		driver.WithTickLength(cfg.regenInterval()))

	return service.WorkerList{
		"nats":      natsServer,
		"players":   pm,
		"roam":      roam,
		"regen":     regen,
		"listeners": &listeners,
	}, nil
}
