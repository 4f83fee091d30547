package content

import (
	"strings"
	"testing"
)

func TestLoadValidatesThemes(t *testing.T) {
	lib, err := Load()
	if err != nil {
		t.Fatalf("load content: %v", err)
	}
	if len(lib.Zones) != 3 {
		t.Fatalf("expected 3 zones, got %d", len(lib.Zones))
	}
	if len(lib.Facts) == 0 || len(lib.QuickWins) == 0 || len(lib.StoryHooks) == 0 {
		t.Errorf("learn content incomplete: %d facts, %d quick wins, %d hooks",
			len(lib.Facts), len(lib.QuickWins), len(lib.StoryHooks))
	}
}

func TestZoneTopology(t *testing.T) {
	lib, err := Load()
	if err != nil {
		t.Fatalf("load content: %v", err)
	}

	cases := []struct {
		id       string
		requires string
	}{
		{"forest", ""},
		{"ocean", "forest"},
		{"city", "ocean"},
	}
	for _, tc := range cases {
		zone, ok := lib.Zone(tc.id)
		if !ok {
			t.Fatalf("missing zone %q", tc.id)
		}
		if zone.Requires != tc.requires {
			t.Errorf("zone %s: expected prerequisite %q, got %q", tc.id, tc.requires, zone.Requires)
		}
	}

	if _, ok := lib.Zone("moon"); ok {
		t.Errorf("unexpected zone lookup success for unknown id")
	}
}

func TestScenesInterpolatePlayerName(t *testing.T) {
	lib, err := Load()
	if err != nil {
		t.Fatalf("load content: %v", err)
	}

	scenes, err := lib.Scenes("forest", "Ava")
	if err != nil {
		t.Fatalf("materialize forest: %v", err)
	}
	first, ok := scenes[0].(Narrative)
	if !ok {
		t.Fatalf("expected forest to open with a narrative scene, got %T", scenes[0])
	}
	if !strings.Contains(first.Text, "Ava") {
		t.Errorf("expected player name in opening line, got %q", first.Text)
	}
	if strings.Contains(first.Text, "{{") {
		t.Errorf("template left unexecuted: %q", first.Text)
	}
}

func TestEveryZoneHasAllGameKinds(t *testing.T) {
	lib, err := Load()
	if err != nil {
		t.Fatalf("load content: %v", err)
	}

	for _, zone := range lib.Zones {
		scenes, err := lib.Scenes(zone.ID, "Test")
		if err != nil {
			t.Fatalf("materialize %s: %v", zone.ID, err)
		}
		var sorter, countdown, choice bool
		for _, sc := range scenes {
			switch sc.(type) {
			case SorterScene:
				sorter = true
			case CountdownScene:
				countdown = true
			case ChoiceScene:
				choice = true
			}
		}
		if !sorter || !countdown || !choice {
			t.Errorf("zone %s missing a game kind: sorter=%v countdown=%v choice=%v",
				zone.ID, sorter, countdown, choice)
		}
	}
}

func TestSorterPoolsCoverPresentedCount(t *testing.T) {
	lib, err := Load()
	if err != nil {
		t.Fatalf("load content: %v", err)
	}
	for theme, st := range lib.sorters {
		if st.Present <= 0 {
			t.Errorf("sorter theme %s: non-positive present count %d", theme, st.Present)
		}
		if len(st.Items) < st.Present {
			t.Errorf("sorter theme %s: pool of %d smaller than presented %d",
				theme, len(st.Items), st.Present)
		}
		for _, item := range st.Items {
			valid := false
			for _, bin := range Bins {
				if item.Bin == bin {
					valid = true
				}
			}
			if !valid {
				t.Errorf("sorter theme %s: item %s has unknown bin %q", theme, item.ID, item.Bin)
			}
		}
	}
}
