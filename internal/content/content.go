// Package content holds the static game definitions: the zone topology,
// the per-zone scene scripts, the themed mini-game pools, and the learn
// screen material. Everything is compiled in via embedded YAML and is
// immutable at runtime.
package content

import (
	"bytes"
	_ "embed"
	"fmt"
	"text/template"

	"gopkg.in/yaml.v3"
)

//go:embed zones.yaml
var zonesYAML []byte

//go:embed minigames.yaml
var minigamesYAML []byte

//go:embed learn.yaml
var learnYAML []byte

// Bins are the sorter destinations, in display order.
var Bins = []string{"recycle", "compost", "trash"}

// SortItem is one sortable thing with its correct destination bin.
type SortItem struct {
	ID    string `yaml:"id"`
	Name  string `yaml:"name"`
	Emoji string `yaml:"emoji"`
	Bin   string `yaml:"bin"`
}

// Device is one toggleable appliance in the countdown game. StartOn is its
// state at round start; RequireOn is the state it must end in.
type Device struct {
	ID        string `yaml:"id"`
	Name      string `yaml:"name"`
	Emoji     string `yaml:"emoji"`
	StartOn   bool   `yaml:"start_on"`
	RequireOn bool   `yaml:"require_on"`
}

// ChoiceOption is one answer to a single-choice prompt.
type ChoiceOption struct {
	Label string `yaml:"label"`
	Good  bool   `yaml:"good"`
}

// Scene is a closed sum: Narrative, SorterScene, CountdownScene or
// ChoiceScene. Interpreters switch exhaustively on the concrete type.
type Scene interface{ isScene() }

// Narrative is a story beat with no gating.
type Narrative struct {
	Who    string
	Avatar string
	Text   string
	Why    string
}

// SorterScene presents Present items drawn from the pool.
type SorterScene struct {
	Theme   string
	Items   []SortItem
	Present int
}

// CountdownScene presents Present devices drawn from the pool against a
// Seconds countdown.
type CountdownScene struct {
	Theme   string
	Devices []Device
	Present int
	Seconds int
}

// ChoiceScene is a single terminal pick.
type ChoiceScene struct {
	Theme   string
	Prompt  string
	Options []ChoiceOption
}

func (Narrative) isScene()      {}
func (SorterScene) isScene()    {}
func (CountdownScene) isScene() {}
func (ChoiceScene) isScene()    {}

// Zone is one biome: identity, prerequisite and its scene script.
type Zone struct {
	ID       string
	Name     string
	Icon     string
	Desc     string
	Requires string

	scenes []rawScene
}

// Fact is one learn-screen card.
type Fact struct {
	Emoji    string `yaml:"emoji"`
	Question string `yaml:"question"`
	Answer   string `yaml:"answer"`
}

// Library is the full loaded content set.
type Library struct {
	Zones      []Zone
	Facts      []Fact
	QuickWins  []string
	StoryHooks []string

	sorters    map[string]sorterTheme
	countdowns map[string]countdownTheme
	choices    map[string]choiceTheme
}

type rawScene struct {
	Type   string `yaml:"type"`
	Who    string `yaml:"who"`
	Avatar string `yaml:"avatar"`
	Text   string `yaml:"text"`
	Why    string `yaml:"why"`
	Theme  string `yaml:"theme"`
}

type sorterTheme struct {
	Present int        `yaml:"present"`
	Items   []SortItem `yaml:"items"`
}

type countdownTheme struct {
	Present int      `yaml:"present"`
	Seconds int      `yaml:"seconds"`
	Devices []Device `yaml:"devices"`
}

type choiceTheme struct {
	Prompt  string         `yaml:"prompt"`
	Options []ChoiceOption `yaml:"options"`
}

type zonesFile struct {
	Zones []struct {
		ID       string     `yaml:"id"`
		Name     string     `yaml:"name"`
		Icon     string     `yaml:"icon"`
		Desc     string     `yaml:"desc"`
		Requires string     `yaml:"requires"`
		Scenes   []rawScene `yaml:"scenes"`
	} `yaml:"zones"`
}

type minigamesFile struct {
	Sorter    map[string]sorterTheme    `yaml:"sorter"`
	Countdown map[string]countdownTheme `yaml:"countdown"`
	Choice    map[string]choiceTheme    `yaml:"choice"`
}

type learnFile struct {
	Facts      []Fact   `yaml:"facts"`
	QuickWins  []string `yaml:"quick_wins"`
	StoryHooks []string `yaml:"story_hooks"`
}

// Load parses the embedded content and validates cross-references: every
// mini-game scene must name a theme that exists in its pool table.
func Load() (*Library, error) {
	var zf zonesFile
	if err := yaml.Unmarshal(zonesYAML, &zf); err != nil {
		return nil, fmt.Errorf("parse zones: %w", err)
	}
	var mf minigamesFile
	if err := yaml.Unmarshal(minigamesYAML, &mf); err != nil {
		return nil, fmt.Errorf("parse minigames: %w", err)
	}
	var lf learnFile
	if err := yaml.Unmarshal(learnYAML, &lf); err != nil {
		return nil, fmt.Errorf("parse learn content: %w", err)
	}

	lib := &Library{
		Facts:      lf.Facts,
		QuickWins:  lf.QuickWins,
		StoryHooks: lf.StoryHooks,
		sorters:    mf.Sorter,
		countdowns: mf.Countdown,
		choices:    mf.Choice,
	}

	for _, z := range zf.Zones {
		zone := Zone{
			ID:       z.ID,
			Name:     z.Name,
			Icon:     z.Icon,
			Desc:     z.Desc,
			Requires: z.Requires,
			scenes:   z.Scenes,
		}
		for _, sc := range zone.scenes {
			switch sc.Type {
			case "story":
			case "sorter":
				if _, ok := mf.Sorter[sc.Theme]; !ok {
					return nil, fmt.Errorf("zone %s: no sorter theme %q", z.ID, sc.Theme)
				}
			case "countdown":
				if _, ok := mf.Countdown[sc.Theme]; !ok {
					return nil, fmt.Errorf("zone %s: no countdown theme %q", z.ID, sc.Theme)
				}
			case "choice":
				if _, ok := mf.Choice[sc.Theme]; !ok {
					return nil, fmt.Errorf("zone %s: no choice theme %q", z.ID, sc.Theme)
				}
			default:
				return nil, fmt.Errorf("zone %s: unknown scene type %q", z.ID, sc.Type)
			}
		}
		lib.Zones = append(lib.Zones, zone)
	}
	return lib, nil
}

// Zone returns the zone definition for id.
func (l *Library) Zone(id string) (Zone, bool) {
	for _, z := range l.Zones {
		if z.ID == id {
			return z, true
		}
	}
	return Zone{}, false
}

// Scenes materializes the ordered scene list for a zone, interpolating the
// learner's display name into narrative text.
func (l *Library) Scenes(zoneID, playerName string) ([]Scene, error) {
	zone, ok := l.Zone(zoneID)
	if !ok {
		return nil, fmt.Errorf("unknown zone %q", zoneID)
	}

	scenes := make([]Scene, 0, len(zone.scenes))
	for i, sc := range zone.scenes {
		switch sc.Type {
		case "story":
			text, err := interpolate(sc.Text, playerName)
			if err != nil {
				return nil, fmt.Errorf("zone %s scene %d: %w", zoneID, i, err)
			}
			scenes = append(scenes, Narrative{
				Who:    sc.Who,
				Avatar: sc.Avatar,
				Text:   text,
				Why:    sc.Why,
			})
		case "sorter":
			theme := l.sorters[sc.Theme]
			scenes = append(scenes, SorterScene{
				Theme:   sc.Theme,
				Items:   theme.Items,
				Present: theme.Present,
			})
		case "countdown":
			theme := l.countdowns[sc.Theme]
			scenes = append(scenes, CountdownScene{
				Theme:   sc.Theme,
				Devices: theme.Devices,
				Present: theme.Present,
				Seconds: theme.Seconds,
			})
		case "choice":
			theme := l.choices[sc.Theme]
			scenes = append(scenes, ChoiceScene{
				Theme:   sc.Theme,
				Prompt:  theme.Prompt,
				Options: theme.Options,
			})
		}
	}
	return scenes, nil
}

func interpolate(text, playerName string) (string, error) {
	tmpl, err := template.New("scene").Parse(text)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, struct{ Name string }{Name: playerName}); err != nil {
		return "", err
	}
	return buf.String(), nil
}
