package engine

import (
	"context"
	"fmt"

	"kittyhaven/internal/inventory"
	"kittyhaven/internal/tasks"
)

type ClaimResult struct {
	Task         tasks.Task
	Reward       tasks.Reward
	LevelsGained int
}

// ClaimTask pays out a completed task: coins to the purse, exp to the selected
// cat, items to the bag. Nothing is claimed when the items would not fit.
func (s *Service) ClaimTask(ctx context.Context, id string) (*ClaimResult, error) {
	reward, err := s.quests.Peek(id)
	if err != nil {
		return nil, s.fail(err)
	}
	if !s.inv.Fits(reward.ItemIDs()...) {
		return nil, s.fail(inventory.CapacityError{Limit: s.inv.Capacity()})
	}
	if _, err := s.quests.Claim(id); err != nil {
		return nil, s.fail(err)
	}

	// Claim succeeded, so the task exists.
	task, _ := s.quests.Get(id)
	res := &ClaimResult{Task: task, Reward: reward}
	if reward.Coins > 0 {
		s.credit(reward.Coins, "task "+id)
	}
	if reward.Exp > 0 && len(s.pets) > 0 {
		p := s.pets[s.selected]
		if res.LevelsGained = p.GainExp(reward.Exp); res.LevelsGained > 0 {
			p.Celebrate(s.clock.Now())
			s.notify.Notify(fmt.Sprintf("%s reached level %d", p.Name, p.Level), KindSuccess)
		}
	}
	for _, it := range reward.Items {
		if err := s.inv.Add(it.ItemID, it.Quantity); err != nil {
			// Fits was checked above; only a bad reward definition lands here.
			s.log.Error("reward item rejected", "task", id, "item", it.ItemID, "err", err)
		}
	}
	s.notify.Notify(fmt.Sprintf("Claimed %s: %s", res.Task.Name, reward), KindSuccess)
	s.syncThresholds()
	s.save(ctx)
	return res, nil
}
