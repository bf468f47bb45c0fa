package engine

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"kittyhaven/internal/catalog"
	"kittyhaven/internal/pet"
)

type AdoptInput struct {
	Name string
	// Kind picks a coat color; empty or unknown values choose at random.
	Kind string
}

type AdoptResult struct {
	Index int
	Pet   pet.View
	Cost  int
}

// Adopt brings a new cat home. It is charged up front and refunded if the cat
// cannot be created.
func (s *Service) Adopt(ctx context.Context, in AdoptInput) (*AdoptResult, error) {
	if err := CanAdopt(len(s.pets), s.cfg.MaxPets); err != nil {
		return nil, s.fail(err)
	}
	cost := AdoptionCost(len(s.pets), s.cfg.AdoptCost)
	if err := s.purse.Spend(cost); err != nil {
		return nil, s.fail(err)
	}

	p, err := s.newPet(in)
	if err != nil {
		s.purse.Refund(cost)
		return nil, s.fail(err)
	}
	s.pets = append(s.pets, p)
	s.selected = len(s.pets) - 1
	s.log.Info("adopted cat", "id", p.ID, "name", p.Name, "cost", cost)
	s.notify.Notify(fmt.Sprintf("Welcome home, %s!", p.Name), KindSuccess)
	s.save(ctx)
	return &AdoptResult{Index: s.selected, Pet: p.View(s.clock.Now()), Cost: cost}, nil
}

func (s *Service) newPet(in AdoptInput) (*pet.Pet, error) {
	name := strings.TrimSpace(in.Name)
	if utf8.RuneCountInString(name) > pet.MaxNameLength {
		return nil, pet.ErrInvalidName
	}
	// Later cats start at a random spot.
	pos := s.bounds.Center()
	if len(s.pets) > 0 {
		pos = s.bounds.Random(s.rng)
	}
	return pet.New(s.rng, pet.Options{
		Name:     name,
		Kind:     in.Kind,
		Position: pos,
		Bounds:   s.bounds,
		Foods:    itemIDs(s.catalog.ByType(catalog.TypeFood)),
		Toys:     itemIDs(s.catalog.ByType(catalog.TypeToy)),
		Now:      s.clock.Now(),
	}), nil
}

func itemIDs(items []catalog.Item) []string {
	ids := make([]string, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ID)
	}
	return ids
}
