package engine

// CanAdopt returns an error when a household of count cats is already at limit.
func CanAdopt(count, limit int) error {
	if count >= limit {
		return RosterFullError{Limit: limit}
	}
	return nil
}

// AdoptionCost is free for the first cat and cost for every one after.
func AdoptionCost(count, cost int) int {
	if count == 0 {
		return 0
	}
	return cost
}
