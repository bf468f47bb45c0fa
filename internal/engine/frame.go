package engine

import (
	"context"
	"fmt"
	"time"

	"kittyhaven/internal/ledger"
)

// MaxCatchUp bounds how much simulated time one frame may cover.
const MaxCatchUp = 10 * time.Minute

// Frame advances the simulation to now and renders it. Frames never save.
func (s *Service) Frame(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	now := s.clock.Now()
	dt := now.Sub(s.lastFrame)
	if dt < 0 {
		dt = 0
	}
	if dt > MaxCatchUp {
		dt = MaxCatchUp
	}
	s.lastFrame = now

	s.refreshDay(now)
	s.purse.Accrue(now)
	for _, p := range s.pets {
		p.Update(now, dt, s.rng)
	}
	s.render.Render(s.Pets(), s.UI())
	return nil
}

// refreshDay applies day and week rollovers. It reports whether anything changed.
func (s *Service) refreshDay(now time.Time) bool {
	changed := s.quests.ResetDaily(now)
	changed = s.quests.ResetWeekly(now) || changed
	changed = s.purse.RefreshDay(now) || changed
	if s.purse.DailyBonus(now) {
		changed = true
		msg := fmt.Sprintf("Daily visit: +%d coins", ledger.DailyBonusCoins)
		if err := s.inv.Add("fish", ledger.DailyBonusFish); err != nil {
			s.log.Warn("daily bonus fish not added", "err", err)
		} else {
			msg += fmt.Sprintf(" and %d fish", ledger.DailyBonusFish)
		}
		s.notify.Notify(msg, KindSuccess)
		s.syncThresholds()
	}
	return changed
}

// UI returns the non-pet state for rendering.
func (s *Service) UI() UIState {
	ui := UIState{
		Now:         s.clock.Now(),
		Coins:       s.purse.Coins(),
		Pending:     s.purse.Pending(),
		Streak:      s.purse.Streak(),
		SignedToday: s.purse.SignedToday(),
		Selected:    s.selected,
		Claimable:   len(s.quests.Claimable()),
		Panel:       s.panel,
		Buttons:     s.layout.Buttons,
	}
	if s.pointer.kind == targetButton {
		ui.Pressed = s.pointer.button
	}
	return ui
}
