package engine

import (
	"context"
	"errors"
	"fmt"

	"kittyhaven/internal/catalog"
	"kittyhaven/internal/inventory"
	"kittyhaven/internal/ledger"
	"kittyhaven/internal/pet"
)

const (
	PetCoinsMin = 1
	PetCoinsMax = 5
)

// credit pays n coins. Credit only rejects n < 1, which callers rule out, so a
// failure means a broken reward table and is logged.
func (s *Service) credit(n int, reason string) {
	if err := s.purse.Credit(n); err != nil {
		s.log.Error("credit rejected", "reason", reason, "coins", n, "err", err)
	}
}

// fail reports err to the player and returns it.
func (s *Service) fail(err error) error {
	s.notify.Notify(capitalize(err.Error()), KindWarning)
	return err
}

type PetResult struct {
	Coins int
}

// Pet strokes a cat. Each stroke finds a few coins in its fur.
func (s *Service) Pet(ctx context.Context, index int) (PetResult, error) {
	p, err := s.pet(index)
	if err != nil {
		return PetResult{}, s.fail(err)
	}
	p.Pet(s.clock.Now())
	coins := PetCoinsMin + s.rng.IntN(PetCoinsMax-PetCoinsMin+1)
	s.credit(coins, "petting")
	s.recordPetting()
	s.syncThresholds()
	s.save(ctx)
	return PetResult{Coins: coins}, nil
}

// Feed gives food from the bag. An empty itemID picks the cat's favorite
// food when held, otherwise the first food in the bag.
func (s *Service) Feed(ctx context.Context, index int, itemID string) (pet.ItemEffect, error) {
	p, err := s.pet(index)
	if err != nil {
		return pet.ItemEffect{}, s.fail(err)
	}
	if itemID == "" {
		itemID = s.pick(p.FavoriteFood, catalog.TypeFood)
	}
	eff, err := s.useItem(p, itemID, catalog.TypeFood)
	if err != nil {
		return eff, err
	}
	s.recordFeeding()
	s.afterItem(ctx, p, eff)
	return eff, nil
}

// Play uses a toy or special item from the bag. An empty itemID picks the
// favorite toy when held, otherwise the first toy, then the first special item.
func (s *Service) Play(ctx context.Context, index int, itemID string) (pet.ItemEffect, error) {
	p, err := s.pet(index)
	if err != nil {
		return pet.ItemEffect{}, s.fail(err)
	}
	if itemID == "" {
		itemID = s.pick(p.FavoriteToy, catalog.TypeToy)
	}
	if itemID == "" {
		itemID = s.pick("", catalog.TypeSpecial)
	}
	eff, err := s.useItem(p, itemID, catalog.TypeToy, catalog.TypeSpecial)
	if err != nil {
		return eff, err
	}
	s.recordPlay()
	s.afterItem(ctx, p, eff)
	return eff, nil
}

func (s *Service) pick(favorite string, t catalog.ItemType) string {
	if favorite != "" && s.inv.Quantity(favorite) > 0 {
		return favorite
	}
	if entries := s.inv.ByType(t); len(entries) > 0 {
		return entries[0].ID
	}
	return ""
}

func (s *Service) useItem(p *pet.Pet, itemID string, types ...catalog.ItemType) (pet.ItemEffect, error) {
	if itemID == "" {
		return pet.ItemEffect{}, s.fail(fmt.Errorf("%w: no %s", ErrNothingToUse, types[0]))
	}
	item, ok := s.catalog.Lookup(itemID)
	if !ok {
		return pet.ItemEffect{}, s.fail(fmt.Errorf("%w: %s", inventory.ErrUnknownItem, itemID))
	}
	allowed := false
	for _, t := range types {
		allowed = allowed || item.Type == t
	}
	if !allowed {
		return pet.ItemEffect{}, s.fail(fmt.Errorf("%w: %s is a %s", ErrWrongItem, item.Name, item.Type))
	}
	if _, err := s.inv.Use(itemID); err != nil {
		return pet.ItemEffect{}, s.fail(err)
	}
	return p.UseItem(item, s.clock.Now()), nil
}

func (s *Service) afterItem(ctx context.Context, p *pet.Pet, eff pet.ItemEffect) {
	if eff.Favorite {
		s.notify.Notify(fmt.Sprintf("%s loves it!", p.Name), KindSuccess)
	}
	if eff.LevelsGained > 0 {
		s.notify.Notify(fmt.Sprintf("%s reached level %d", p.Name, p.Level), KindSuccess)
	}
	s.syncThresholds()
	s.save(ctx)
}

// Train practices a skill. Fortune level-ups pay out coins.
func (s *Service) Train(ctx context.Context, index int, skill pet.SkillName) (pet.TrainResult, error) {
	p, err := s.pet(index)
	if err != nil {
		return pet.TrainResult{}, s.fail(err)
	}
	res, err := p.Train(skill, s.clock.Now())
	if err != nil {
		return res, s.fail(err)
	}
	if res.Skill.Coins > 0 {
		s.credit(res.Skill.Coins, "fortune")
		s.notify.Notify(fmt.Sprintf("Fortune smiles: +%d coins", res.Skill.Coins), KindSuccess)
	}
	if res.Skill.LevelsGained > 0 {
		s.notify.Notify(fmt.Sprintf("%s's %s reached level %d", p.Name, skill, res.Skill.Level), KindSuccess)
	}
	s.recordTraining()
	s.syncThresholds()
	s.save(ctx)
	return res, nil
}

func (s *Service) Rename(ctx context.Context, index int, name string) error {
	p, err := s.pet(index)
	if err != nil {
		return s.fail(err)
	}
	if err := p.Rename(name); err != nil {
		return s.fail(err)
	}
	s.save(ctx)
	return nil
}

// Select makes index the cat that buttons and rewards act on.
func (s *Service) Select(ctx context.Context, index int) error {
	if _, err := s.pet(index); err != nil {
		return s.fail(err)
	}
	s.selected = index
	s.save(ctx)
	return nil
}

// CollectCoins moves idle earnings into the purse.
func (s *Service) CollectCoins(ctx context.Context) (int, error) {
	s.purse.Accrue(s.clock.Now())
	n := s.purse.ClaimPending()
	if n == 0 {
		s.notify.Notify("No coins to collect yet", KindInfo)
		return 0, nil
	}
	s.notify.Notify(fmt.Sprintf("Collected %d coins", n), KindSuccess)
	s.syncThresholds()
	s.save(ctx)
	return n, nil
}

func (s *Service) SignIn(ctx context.Context) (int, error) {
	reward, err := s.purse.SignIn(s.clock.Now())
	if err != nil {
		if errors.Is(err, ledger.ErrAlreadySignedIn) {
			s.notify.Notify("Already signed in today", KindInfo)
			return 0, err
		}
		return 0, s.fail(err)
	}
	s.notify.Notify(fmt.Sprintf("Signed in: day %d, +%d coins", s.purse.Streak(), reward), KindSuccess)
	s.recordSignIn()
	s.syncThresholds()
	s.save(ctx)
	return reward, nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	if c := s[0]; c >= 'a' && c <= 'z' {
		return string(c-'a'+'A') + s[1:]
	}
	return s
}
