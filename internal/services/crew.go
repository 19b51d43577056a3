package services

// Tier maps an inclusive upper bound of some measure (room count, estimated
// weight in pounds) to a value (crew size, truck count, flat fee).
type Tier struct {
	UpTo  int
	Value int
}

// tierValue returns the value of the first tier covering measure. A measure
// beyond every bound uses the last tier's value as the ceiling.
func tierValue(tiers []Tier, measure int) int {
	value := tiers[len(tiers)-1].Value
	for _, t := range tiers {
		if measure <= t.UpTo {
			value = t.Value
			break
		}
	}
	return value
}

// CrewTable derives crew size from a vendor-chosen measure. The derivation
// algorithm is shared; each vendor supplies its own tiers and heavy-item
// minimum.
type CrewTable struct {
	Tiers        []Tier
	HeavyItemMin int
}

// CrewFor looks up the base crew tier, then raises to the heavy-item minimum
// when the move includes at least one heavy item.
func (t CrewTable) CrewFor(measure int, hasHeavyItems bool) int {
	crew := tierValue(t.Tiers, measure)
	if hasHeavyItems && crew < t.HeavyItemMin {
		crew = t.HeavyItemMin
	}
	return crew
}

// TrucksFor derives truck count from a measure via the same tier mechanics.
func TrucksFor(tiers []Tier, measure int) int {
	return tierValue(tiers, measure)
}
