// Package engine is the scene controller: it owns the pets, purse, bag and
// quest log, routes pointer input and actions to them, runs the per-frame
// update and persists the household after every state-changing action.
//
// A Service is not safe for concurrent use.
package engine

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"time"

	"kittyhaven/internal/catalog"
	"kittyhaven/internal/clock"
	"kittyhaven/internal/config"
	"kittyhaven/internal/inventory"
	"kittyhaven/internal/ledger"
	"kittyhaven/internal/pet"
	"kittyhaven/internal/storage"
	"kittyhaven/internal/tasks"
)

// Store persists opaque values by key. Get returns nil, nil for a missing key.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}

type Options struct {
	Store     Store
	Clock     clock.Clock
	Rand      pet.Rand
	Notifier  Notifier
	Confirmer Confirmer
	Renderer  Renderer
	Logger    *slog.Logger
	Config    config.Config
	// Catalog overrides Config.CatalogPath when set.
	Catalog *catalog.Catalog
}

type Service struct {
	store   Store
	clock   clock.Clock
	rng     pet.Rand
	notify  Notifier
	confirm Confirmer
	render  Renderer
	log     *slog.Logger
	cfg     config.Config

	catalog *catalog.Catalog
	bounds  pet.Bounds
	layout  Layout

	pets     []*pet.Pet
	selected int
	inv      *inventory.Inventory
	quests   *tasks.Manager
	purse    *ledger.Ledger
	panel    Panel

	lastFrame time.Time
	pointer   pointerState
}

// New builds a Service and loads the saved household, falling back to a
// fresh one when nothing usable is stored.
func New(ctx context.Context, opts Options) (*Service, error) {
	cfg := opts.Config
	if cfg == (config.Config{}) {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	s := &Service{
		store:   opts.Store,
		clock:   opts.Clock,
		rng:     opts.Rand,
		notify:  opts.Notifier,
		confirm: opts.Confirmer,
		render:  opts.Renderer,
		log:     opts.Logger,
		cfg:     cfg,
		catalog: opts.Catalog,
	}
	if s.store == nil {
		s.store = storage.NewMemoryStore()
	}
	if s.clock == nil {
		s.clock = clock.System{}
	}
	if s.rng == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = uint64(s.clock.Now().UnixNano())
		}
		s.rng = rand.New(rand.NewPCG(seed, seed^0x6b697474))
	}
	if s.notify == nil {
		s.notify = nopNotifier{}
	}
	if s.confirm == nil {
		s.confirm = nopConfirmer{}
	}
	if s.render == nil {
		s.render = nopRenderer{}
	}
	if s.log == nil {
		s.log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if s.catalog == nil {
		c, err := loadCatalog(cfg.CatalogPath)
		if err != nil {
			return nil, err
		}
		s.catalog = c
	}

	s.bounds = pet.CanvasBounds(cfg.CanvasWidth, cfg.CanvasHeight)
	s.layout = NewLayout(cfg.CanvasWidth, cfg.CanvasHeight)

	if err := s.load(ctx); err != nil {
		return nil, err
	}
	s.quests.OnComplete = s.taskCompleted

	now := s.clock.Now()
	s.lastFrame = now
	if s.refreshDay(now) {
		s.save(ctx)
	}
	return s, nil
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default(), nil
	}
	c, err := catalog.LoadFile(path)
	if err != nil {
		return nil, AssetError{Path: path, Err: err}
	}
	return c, nil
}

func (s *Service) Config() config.Config        { return s.cfg }
func (s *Service) Catalog() *catalog.Catalog    { return s.catalog }
func (s *Service) Layout() Layout               { return s.layout }
func (s *Service) Bounds() pet.Bounds           { return s.bounds }
func (s *Service) Selected() int                { return s.selected }
func (s *Service) Coins() int                   { return s.purse.Coins() }
func (s *Service) Inventory() []inventory.Entry { return s.inv.Entries() }
func (s *Service) Tasks() []tasks.Task          { return s.quests.All() }
func (s *Service) Claimable() []tasks.Task      { return s.quests.Claimable() }

// ShopItems lists what can be bought, cheapest first.
func (s *Service) ShopItems() []catalog.Item {
	return s.catalog.All()
}

// Pets returns a view of every pet in roster order.
func (s *Service) Pets() []pet.View {
	now := s.clock.Now()
	out := make([]pet.View, 0, len(s.pets))
	for _, p := range s.pets {
		out = append(out, p.View(now))
	}
	return out
}

func (s *Service) pet(index int) (*pet.Pet, error) {
	if index < 0 || index >= len(s.pets) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownPet, index)
	}
	return s.pets[index], nil
}

// Status summarizes the purse for display.
type Status struct {
	Coins       int
	Pending     int
	TotalEarned int
	Streak      int
	SignedToday bool
	Pets        int
	Selected    int
}

func (s *Service) Status() Status {
	return Status{
		Coins:       s.purse.Coins(),
		Pending:     s.purse.Pending(),
		TotalEarned: s.purse.TotalEarned(),
		Streak:      s.purse.Streak(),
		SignedToday: s.purse.SignedToday(),
		Pets:        len(s.pets),
		Selected:    s.selected,
	}
}
