package models

import (
	"encoding/json"
	"testing"
)

func TestDefaultSnapshotHasGuest(t *testing.T) {
	snap := DefaultSnapshot()
	if got := snap.Learner(GuestID); got == nil {
		t.Fatalf("default snapshot is missing the guest learner")
	}
	if snap.Settings.Mission != MissionAll {
		t.Errorf("expected mission %q, got %q", MissionAll, snap.Settings.Mission)
	}
	if snap.Settings.ActiveLearnerID != GuestID {
		t.Errorf("expected active learner %q, got %q", GuestID, snap.Settings.ActiveLearnerID)
	}
}

func TestNormalizeRepairsSnapshot(t *testing.T) {
	// Simulates a hand-edited or partially written save: no guest, no
	// mission, nil progress map.
	raw := []byte(`{"settings":{},"learners":[{"id":"s1","name":"Ava"}]}`)
	var snap Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	snap.Normalize()

	if snap.Settings.Mission != MissionAll {
		t.Errorf("expected mission defaulted to %q, got %q", MissionAll, snap.Settings.Mission)
	}
	if snap.Learner(GuestID) == nil {
		t.Errorf("expected guest learner to be restored")
	}
	ava := snap.Learner("s1")
	if ava == nil {
		t.Fatalf("existing learner lost during normalize")
	}
	if ava.ZoneProgress == nil {
		t.Errorf("expected nil zone progress map to be replaced")
	}
}

func TestLearnerLookup(t *testing.T) {
	snap := DefaultSnapshot()
	if l := snap.Learner("nope"); l != nil {
		t.Errorf("expected nil for unknown id, got %+v", l)
	}
	guest := snap.Learner(GuestID)
	guest.Stars = 7
	if snap.Learners[0].Stars != 7 {
		t.Errorf("Learner should return a pointer into the snapshot")
	}
}
