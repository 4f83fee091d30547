package models

import "time"

// GuestID is the learner id that always exists and can never be deleted.
const GuestID = "guest"

// MissionAll is the unrestricted teacher mission setting.
const MissionAll = "all"

// AvatarConfig describes one customizable hero. The engine treats it as
// opaque; only the star-gated categories (hat, accessory, sidekick) are
// checked against the unlock thresholds.
type AvatarConfig struct {
	DisplayName string `json:"display_name"`
	Skin        string `json:"skin"`
	Body        string `json:"body"`
	Pose        string `json:"pose"`
	Outline     string `json:"outline"`
	Eyes        string `json:"eyes"`
	Mouth       string `json:"mouth"`
	Cheeks      string `json:"cheeks"`
	HairStyle   string `json:"hair_style"`
	HairColor   string `json:"hair_color"`
	Outfit      string `json:"outfit"`
	OutfitColor string `json:"outfit_color"`
	Hat         string `json:"hat"`
	Accessory   string `json:"accessory"`
	Sidekick    string `json:"sidekick"`
}

// Learner is one student profile. Stars only grow through mini-game awards
// and zone bonuses; zone progress flags are write-once-true except for an
// explicit teacher reset.
type Learner struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Stars        int             `json:"stars"`
	Score        int             `json:"score"`
	ZoneProgress map[string]bool `json:"zone_progress"`
	Avatar       AvatarConfig    `json:"avatar"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// Settings holds device-wide preferences and the teacher controls.
type Settings struct {
	ReadAloud       bool   `json:"read_aloud"`
	ProjectorMode   bool   `json:"projector_mode"`
	ClassName       string `json:"class_name"`
	Mission         string `json:"mission"`
	ActiveLearnerID string `json:"active_learner_id"`
}

// Snapshot is the single persisted object: settings plus every learner
// profile. It is written whole on every mutation.
type Snapshot struct {
	Settings Settings  `json:"settings"`
	Learners []Learner `json:"learners"`
}

// DefaultAvatar returns the starting hero configuration.
func DefaultAvatar() AvatarConfig {
	return AvatarConfig{
		DisplayName: "Eco Hero",
		Skin:        "warm2",
		Body:        "regular",
		Pose:        "wave",
		Outline:     "dark",
		Eyes:        "happy",
		Mouth:       "smile",
		Cheeks:      "none",
		HairStyle:   "spiky",
		HairColor:   "black",
		Outfit:      "ranger",
		OutfitColor: "green",
		Hat:         "none",
		Accessory:   "none",
		Sidekick:    "none",
	}
}

// NewLearner returns a zero-progress profile with the default avatar.
func NewLearner(id, name string) Learner {
	return Learner{
		ID:           id,
		Name:         name,
		ZoneProgress: map[string]bool{},
		Avatar:       DefaultAvatar(),
		UpdatedAt:    time.Now(),
	}
}

// DefaultSnapshot is the fresh-install state: one guest learner, no class
// name, unrestricted mission.
func DefaultSnapshot() *Snapshot {
	return &Snapshot{
		Settings: Settings{
			Mission:         MissionAll,
			ActiveLearnerID: GuestID,
		},
		Learners: []Learner{NewLearner(GuestID, "Guest")},
	}
}

// Normalize repairs a loaded snapshot: the guest learner must exist, the
// mission must be set, and nil progress maps are replaced.
func (s *Snapshot) Normalize() {
	if s.Settings.Mission == "" {
		s.Settings.Mission = MissionAll
	}
	if s.Settings.ActiveLearnerID == "" {
		s.Settings.ActiveLearnerID = GuestID
	}
	hasGuest := false
	for i := range s.Learners {
		if s.Learners[i].ZoneProgress == nil {
			s.Learners[i].ZoneProgress = map[string]bool{}
		}
		if s.Learners[i].ID == GuestID {
			hasGuest = true
		}
	}
	if !hasGuest {
		s.Learners = append(s.Learners, NewLearner(GuestID, "Guest"))
	}
}

// Learner returns a pointer into the snapshot for the given id, or nil.
func (s *Snapshot) Learner(id string) *Learner {
	for i := range s.Learners {
		if s.Learners[i].ID == id {
			return &s.Learners[i]
		}
	}
	return nil
}
