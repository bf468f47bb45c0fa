package engine

import (
	"context"
	"encoding/json"
	"fmt"

	"kittyhaven/internal/inventory"
	"kittyhaven/internal/ledger"
	"kittyhaven/internal/pet"
	"kittyhaven/internal/tasks"
)

// SaveKey is the store key holding the household snapshot.
const SaveKey = "kittyhaven/save"

const saveVersion = 1

// saveFile is the persisted household. Absent sections load as defaults.
type saveFile struct {
	Version   int              `json:"version"`
	Ledger    *ledger.Snapshot `json:"ledger,omitempty"`
	Inventory map[string]int   `json:"inventory"`
	Tasks     *tasks.Snapshot  `json:"tasks,omitempty"`
	Pets      []*pet.Pet       `json:"pets,omitempty"`
	Selected  int              `json:"selected"`
}

func (s *Service) load(ctx context.Context) error {
	now := s.clock.Now()
	var f saveFile

	data, err := s.store.Get(ctx, SaveKey)
	if err != nil {
		return fmt.Errorf("load save: %w", err)
	}
	if data != nil {
		if err := json.Unmarshal(data, &f); err != nil {
			s.log.Error("save is unreadable, starting fresh", "err", err, "bytes", len(data))
			s.notify.Notify("Saved game could not be read; starting a new household", KindWarning)
			f = saveFile{}
		} else if f.Version > saveVersion {
			s.log.Warn("save written by a newer version", "version", f.Version)
		}
	}

	s.purse = ledger.New(s.cfg.StartingCoins, s.cfg.CoinInterval.Duration, now)
	if f.Ledger != nil {
		s.purse.Restore(*f.Ledger, now)
	}

	s.inv = inventory.New(s.catalog, s.cfg.InventoryCapacity)
	stock := f.Inventory
	if stock == nil {
		stock = inventory.StartingStock()
	}
	if dropped := s.inv.Restore(stock); len(dropped) > 0 {
		s.log.Warn("dropped unknown inventory items", "items", dropped)
	}

	s.quests = tasks.NewManager()
	if f.Tasks != nil {
		s.quests.Restore(*f.Tasks)
	}

	s.pets = s.pets[:0]
	for _, p := range f.Pets {
		if p == nil || len(s.pets) >= s.cfg.MaxPets {
			continue
		}
		p.Restore(s.bounds, now)
		s.pets = append(s.pets, p)
	}
	if len(s.pets) == 0 {
		p, _ := s.newPet(AdoptInput{})
		s.pets = append(s.pets, p)
	}
	s.selected = f.Selected
	if s.selected < 0 || s.selected >= len(s.pets) {
		s.selected = 0
	}
	s.log.Debug("household loaded", "pets", len(s.pets), "coins", s.purse.Coins(), "fresh", data == nil)
	return nil
}

func (s *Service) snapshot() saveFile {
	ls := s.purse.Snapshot()
	ts := s.quests.Snapshot()
	return saveFile{
		Version:   saveVersion,
		Ledger:    &ls,
		Inventory: s.inv.Snapshot(),
		Tasks:     &ts,
		Pets:      s.pets,
		Selected:  s.selected,
	}
}

// save writes the household. Failures are reported but never undo the action
// that triggered them.
func (s *Service) save(ctx context.Context) {
	if err := s.Save(ctx); err != nil {
		s.log.Error("save failed", "err", err)
		s.notify.Notify("Progress could not be saved", KindWarning)
	}
}

func (s *Service) Save(ctx context.Context) error {
	data, err := json.Marshal(s.snapshot())
	if err != nil {
		return fmt.Errorf("encode save: %w", err)
	}
	if err := s.store.Set(ctx, SaveKey, data); err != nil {
		return fmt.Errorf("write save: %w", err)
	}
	return nil
}
