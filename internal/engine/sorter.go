package engine

import (
	"math/rand/v2"

	"ecoquest/internal/content"
)

// SortResult describes one assignment attempt.
type SortResult struct {
	Correct   bool
	First     bool // first-time correct: earns a star
	Remaining int  // pending items left after this attempt
}

// Sorter runs one waste-sorting round: a random draw of items, each of
// which must be placed into its correct bin at least once. Wrong bins cost
// nothing; items stay pending until sorted correctly.
type Sorter struct {
	items   []content.SortItem
	pending map[string]bool
	awarded int
}

func newSorter(pool []content.SortItem, present int, rng *rand.Rand) *Sorter {
	drawn := shuffled(rng, pool)
	if present > 0 && present < len(drawn) {
		drawn = drawn[:present]
	}
	pending := make(map[string]bool, len(drawn))
	for _, it := range drawn {
		pending[it.ID] = true
	}
	return &Sorter{items: drawn, pending: pending}
}

func (s *Sorter) Kind() string { return "sorter" }

// Items returns the presented items in draw order.
func (s *Sorter) Items() []content.SortItem { return s.items }

// Pending reports whether the item still needs a correct assignment.
func (s *Sorter) Pending(itemID string) bool { return s.pending[itemID] }

// Remaining is the number of items still pending.
func (s *Sorter) Remaining() int { return len(s.pending) }

// Assign places an item into a bin. Only the first correct assignment of a
// pending item counts; repeats and unknown ids are inert.
func (s *Sorter) Assign(itemID, bin string) SortResult {
	var item *content.SortItem
	for i := range s.items {
		if s.items[i].ID == itemID {
			item = &s.items[i]
			break
		}
	}
	if item == nil {
		return SortResult{Remaining: len(s.pending)}
	}

	correct := item.Bin == bin
	first := correct && s.pending[itemID]
	if first {
		delete(s.pending, itemID)
		s.awarded += StarsPerSort
	}
	return SortResult{Correct: correct, First: first, Remaining: len(s.pending)}
}

func (s *Sorter) IsComplete() bool { return len(s.pending) == 0 }

func (s *Sorter) Outcome() (Outcome, bool) {
	if !s.IsComplete() {
		return Outcome{}, false
	}
	return Outcome{Stars: s.awarded, Full: true, Label: "Sorter complete! ✅"}, true
}
