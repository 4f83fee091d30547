package engine

import (
	"testing"

	"ecoquest/internal/content"
)

func TestCurrentBadge(t *testing.T) {
	cases := []struct {
		stars int
		want  string
	}{
		{0, NoBadge},
		{4, NoBadge},
		{5, "Seedling Saver"},
		{11, "Seedling Saver"},
		{12, "Super Recycler"},
		{20, "Energy Guardian"},
		{29, "Energy Guardian"},
		{30, "Planet Pal"},
		{37, "Planet Pal"},
		{100, "Planet Pal"},
	}
	for _, tc := range cases {
		if got := CurrentBadge(tc.stars); got != tc.want {
			t.Errorf("CurrentBadge(%d) = %q, want %q", tc.stars, got, tc.want)
		}
	}
}

func TestZoneEnterable(t *testing.T) {
	free := content.Zone{ID: "forest"}
	gated := content.Zone{ID: "ocean", Requires: "forest"}

	if !ZoneEnterable(free, map[string]bool{}) {
		t.Errorf("zone without prerequisite must always be enterable")
	}
	if ZoneEnterable(gated, map[string]bool{}) {
		t.Errorf("gated zone enterable without prerequisite complete")
	}
	if ZoneEnterable(gated, map[string]bool{"forest": false}) {
		t.Errorf("gated zone enterable with false prerequisite flag")
	}
	if !ZoneEnterable(gated, map[string]bool{"forest": true}) {
		t.Errorf("gated zone locked despite prerequisite complete")
	}
}

func TestMissionAllows(t *testing.T) {
	cases := []struct {
		mission string
		zone    string
		want    bool
	}{
		{"all", "forest", true},
		{"all", "city", true},
		{"forest", "forest", true},
		{"forest", "ocean", false},
		{"city", "forest", false},
	}
	for _, tc := range cases {
		if got := MissionAllows(tc.mission, tc.zone); got != tc.want {
			t.Errorf("MissionAllows(%q, %q) = %v, want %v", tc.mission, tc.zone, got, tc.want)
		}
	}
}

func TestOptionUsable(t *testing.T) {
	if !OptionUsable(0, 0) {
		t.Errorf("zero-requirement option must always be usable")
	}
	if OptionUsable(5, 4) {
		t.Errorf("option usable below its threshold")
	}
	if !OptionUsable(5, 5) {
		t.Errorf("option locked at exactly its threshold")
	}
}
