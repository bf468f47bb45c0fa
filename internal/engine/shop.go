package engine

import (
	"context"
	"fmt"
	"math"

	"kittyhaven/internal/inventory"
)

// Buy spends coins and stores qty of itemID. When the bag cannot take the
// items the coins are refunded.
func (s *Service) Buy(ctx context.Context, itemID string, qty int) error {
	item, ok := s.catalog.Lookup(itemID)
	if !ok {
		return s.fail(fmt.Errorf("%w: %s", inventory.ErrUnknownItem, itemID))
	}
	if qty < 1 {
		return s.fail(inventory.ErrInvalidQuantity)
	}
	if item.Cost > 0 && qty > math.MaxInt/item.Cost {
		return s.fail(fmt.Errorf("%w: %d %s", inventory.ErrTooMany, qty, itemID))
	}
	cost := item.Cost * qty
	if err := s.purse.Spend(cost); err != nil {
		return s.fail(err)
	}
	if err := s.inv.Add(itemID, qty); err != nil {
		s.purse.Refund(cost)
		return s.fail(err)
	}
	s.log.Debug("bought item", "item", itemID, "qty", qty, "cost", cost)
	s.notify.Notify(fmt.Sprintf("Bought %s x%d for %d coins", item.Name, qty, cost), KindSuccess)
	s.save(ctx)
	return nil
}

// OpenShop asks the player to pick one item and buys it. A dismissed dialog
// is not an error.
func (s *Service) OpenShop(ctx context.Context) error {
	items := s.catalog.All()
	options := make([]string, 0, len(items))
	for _, it := range items {
		options = append(options, fmt.Sprintf("%s (%d coins)", it.Name, it.Cost))
	}
	body := fmt.Sprintf("You have %d coins.", s.purse.Coins())
	idx, ok := s.confirm.Confirm("Shop", body, options)
	if !ok || idx < 0 || idx >= len(items) {
		return nil
	}
	return s.Buy(ctx, items[idx].ID, 1)
}
