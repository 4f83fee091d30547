package registry

import (
	"errors"
	"log/slog"
	"path/filepath"
	"testing"

	"ecoquest/internal/models"
	"ecoquest/internal/store"
)

func newTestRegistry(t *testing.T) (*Registry, *store.Store) {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "ecoquest.db"), slog.Default())
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return New(st, slog.Default()), st
}

func TestActiveFallsBackToGuest(t *testing.T) {
	reg, _ := newTestRegistry(t)

	reg.snap.Settings.ActiveLearnerID = "gone"
	active := reg.Active()
	if active == nil || active.ID != models.GuestID {
		t.Fatalf("expected guest fallback, got %+v", active)
	}
	if reg.Settings().ActiveLearnerID != models.GuestID {
		t.Errorf("expected stale reference to be repaired")
	}
}

func TestSetActiveUnknown(t *testing.T) {
	reg, _ := newTestRegistry(t)

	err := reg.SetActive("nope")
	if !errors.Is(err, ErrUnknownLearner) {
		t.Fatalf("expected ErrUnknownLearner, got %v", err)
	}
}

func TestAwardStarsPersists(t *testing.T) {
	reg, st := newTestRegistry(t)

	before := reg.Active().UpdatedAt
	reg.AwardStars(4, "test")

	active := reg.Active()
	if active.Stars != 4 {
		t.Errorf("expected 4 stars, got %d", active.Stars)
	}
	if active.Score != 4*ScorePerStar {
		t.Errorf("expected score %d, got %d", 4*ScorePerStar, active.Score)
	}
	if !active.UpdatedAt.After(before) && !active.UpdatedAt.Equal(before) {
		t.Errorf("expected updatedAt to be stamped")
	}

	// A second registry over the same store must see the committed write.
	reloaded := New(st, slog.Default())
	if got := reloaded.Active().Stars; got != 4 {
		t.Errorf("expected persisted stars 4, got %d", got)
	}
}

func TestMarkZoneCompleteWriteOnce(t *testing.T) {
	reg, _ := newTestRegistry(t)

	if !reg.MarkZoneComplete("forest") {
		t.Fatalf("first completion should report newly set")
	}
	if reg.MarkZoneComplete("forest") {
		t.Fatalf("second completion should report already set")
	}
	if !reg.Active().ZoneProgress["forest"] {
		t.Errorf("completion flag missing")
	}
}

func TestCreateAndSelectLearner(t *testing.T) {
	reg, _ := newTestRegistry(t)

	ava := reg.CreateLearner("Ava")
	if ava.ID == "" || ava.ID == models.GuestID {
		t.Fatalf("expected a fresh id, got %q", ava.ID)
	}
	if err := reg.SetActive(ava.ID); err != nil {
		t.Fatalf("set active: %v", err)
	}
	if reg.Active().Name != "Ava" {
		t.Errorf("expected Ava active, got %q", reg.Active().Name)
	}

	other := reg.CreateLearner("Ben")
	if other.ID == ava.ID {
		t.Errorf("learner ids must be unique")
	}
}

func TestResetLearnerKeepsProfile(t *testing.T) {
	reg, _ := newTestRegistry(t)

	ava := reg.CreateLearner("Ava")
	if err := reg.SetActive(ava.ID); err != nil {
		t.Fatalf("set active: %v", err)
	}
	reg.AwardStars(12, "test")
	reg.MarkZoneComplete("forest")

	if err := reg.ResetLearner(ava.ID); err != nil {
		t.Fatalf("reset: %v", err)
	}
	got := reg.Active()
	if got.Stars != 0 || got.Score != 0 || len(got.ZoneProgress) != 0 {
		t.Errorf("expected zeroed profile, got stars=%d score=%d progress=%v",
			got.Stars, got.Score, got.ZoneProgress)
	}
	if got.Name != "Ava" {
		t.Errorf("reset must not delete the profile")
	}

	if err := reg.ResetLearner("nope"); !errors.Is(err, ErrUnknownLearner) {
		t.Errorf("expected ErrUnknownLearner, got %v", err)
	}
}

func TestResetClassKeepsGuestOnly(t *testing.T) {
	reg, _ := newTestRegistry(t)

	reg.CreateLearner("Ava")
	reg.CreateLearner("Ben")
	reg.SetClassName("Grade 4A")
	reg.SetMission("forest")

	reg.ResetClass()

	roster := reg.Learners()
	if len(roster) != 1 || roster[0].ID != models.GuestID {
		t.Fatalf("expected guest-only roster, got %+v", roster)
	}
	settings := reg.Settings()
	if settings.ClassName != "" || settings.Mission != models.MissionAll {
		t.Errorf("expected cleared teacher settings, got %+v", settings)
	}
}

func TestFindByName(t *testing.T) {
	reg, _ := newTestRegistry(t)

	reg.CreateLearner("Amara")
	reg.CreateLearner("Ben")
	reg.CreateLearner("Amir")

	got := reg.FindByName("am")
	if len(got) < 2 {
		t.Fatalf("expected at least two matches for %q, got %d", "am", len(got))
	}
	for _, l := range got {
		if l.Name == "Ben" {
			t.Errorf("unexpected match %q for query %q", l.Name, "am")
		}
	}
}
