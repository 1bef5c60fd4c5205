package services

import (
	"clinicmeals/internal/core/domain/model/catalog"
)

// Outcome tells a successful resolution apart from the two fallbacks.
type Outcome int

const (
	Resolved Outcome = iota + 1
	// EmptyCatalog: no available item exists at all.
	EmptyCatalog
	// NoMatch: the catalog has items, none for the requested slot.
	NoMatch
)

func (o Outcome) String() string {
	switch o {
	case Resolved:
		return "Resolved"
	case EmptyCatalog:
		return "EmptyCatalog"
	case NoMatch:
		return "NoMatch"
	default:
		return "Unknown"
	}
}

// Resolution is the result of MenuResolver.Resolve. DishText is set only when
// Outcome is Resolved. Duplicates counts the extra available items found for
// the same slot; callers log it when non-zero.
type Resolution struct {
	Outcome    Outcome
	DishText   string
	Item       *catalog.WeeklyMenuItem
	Duplicates int
}

// MenuResolver looks up the patient dish of a slot in a catalog snapshot.
type MenuResolver struct{}

func NewMenuResolver() MenuResolver {
	return MenuResolver{}
}

// Resolve does an exact match on slot among available items. When several
// items share the slot, the most recently created one wins.
func (MenuResolver) Resolve(slot catalog.Slot, items []*catalog.WeeklyMenuItem) Resolution {
	var (
		best       *catalog.WeeklyMenuItem
		matches    int
		availables int
	)

	for _, item := range items {
		if item.Validate() != nil || !item.IsAvailable() {
			continue
		}
		availables++
		if item.Slot() != slot {
			continue
		}
		matches++
		if best == nil || item.CreatedAt().After(best.CreatedAt()) ||
			(item.CreatedAt().Equal(best.CreatedAt()) && item.ID().String() > best.ID().String()) {
			best = item
		}
	}

	switch {
	case availables == 0:
		return Resolution{Outcome: EmptyCatalog}
	case best == nil:
		return Resolution{Outcome: NoMatch}
	default:
		return Resolution{
			Outcome:    Resolved,
			DishText:   best.DishText(),
			Item:       best,
			Duplicates: matches - 1,
		}
	}
}
