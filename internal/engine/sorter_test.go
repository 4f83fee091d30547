package engine

import (
	"testing"

	"ecoquest/internal/content"
)

var sorterPool = []content.SortItem{
	{ID: "bottle", Name: "Plastic Bottle", Bin: "recycle"},
	{ID: "banana", Name: "Banana Peel", Bin: "compost"},
	{ID: "wrapper", Name: "Candy Wrapper", Bin: "trash"},
	{ID: "paper", Name: "Paper", Bin: "recycle"},
}

func TestSorterCompletesAfterAllCorrect(t *testing.T) {
	s := newSorter(sorterPool, 4, seededRNG(3))

	if s.IsComplete() {
		t.Fatalf("fresh round must not be complete")
	}
	if _, ok := s.Outcome(); ok {
		t.Fatalf("outcome defined before completion")
	}

	// Interleave wrong bins with the correct ones; only the four
	// first-time correct assignments may earn.
	firsts := 0
	for _, item := range s.Items() {
		res := s.Assign(item.ID, "nonsense-bin")
		if res.Correct || res.First {
			t.Fatalf("wrong bin counted for %s: %+v", item.ID, res)
		}
		res = s.Assign(item.ID, item.Bin)
		if !res.Correct || !res.First {
			t.Fatalf("correct bin rejected for %s: %+v", item.ID, res)
		}
		firsts++
	}

	if firsts != 4 {
		t.Fatalf("expected 4 first-time corrects, got %d", firsts)
	}
	if !s.IsComplete() {
		t.Fatalf("round incomplete after all items sorted")
	}
	outcome, ok := s.Outcome()
	if !ok {
		t.Fatalf("outcome undefined after completion")
	}
	if outcome.Stars != 4*StarsPerSort {
		t.Errorf("expected %d stars, got %d", 4*StarsPerSort, outcome.Stars)
	}
}

func TestSorterRepeatCorrectNotRewarded(t *testing.T) {
	s := newSorter(sorterPool, 2, seededRNG(3))
	item := s.Items()[0]

	first := s.Assign(item.ID, item.Bin)
	if !first.First {
		t.Fatalf("first correct assignment not flagged: %+v", first)
	}
	again := s.Assign(item.ID, item.Bin)
	if again.First {
		t.Fatalf("repeat correct assignment flagged as first: %+v", again)
	}
	if s.Pending(item.ID) {
		t.Errorf("item still pending after correct sort")
	}
}

func TestSorterDrawsWithoutReplacement(t *testing.T) {
	s := newSorter(sorterPool, 3, seededRNG(9))

	items := s.Items()
	if len(items) != 3 {
		t.Fatalf("expected 3 presented items, got %d", len(items))
	}
	seen := map[string]bool{}
	for _, it := range items {
		if seen[it.ID] {
			t.Fatalf("item %s drawn twice", it.ID)
		}
		seen[it.ID] = true
	}
	if s.Remaining() != 3 {
		t.Errorf("expected 3 pending, got %d", s.Remaining())
	}
}

func TestSorterUnknownItemInert(t *testing.T) {
	s := newSorter(sorterPool, 2, seededRNG(5))
	res := s.Assign("ghost", "recycle")
	if res.Correct || res.First {
		t.Errorf("unknown item produced effect: %+v", res)
	}
	if res.Remaining != 2 {
		t.Errorf("expected 2 pending, got %d", res.Remaining)
	}
}
