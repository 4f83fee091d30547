// Package registry owns the learner roster: the set of profiles, the active
// learner, and every mutation of stars, score and zone progress. Each
// mutation is persisted whole through the snapshot store before returning.
package registry

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/sahilm/fuzzy"

	"ecoquest/internal/models"
	"ecoquest/internal/store"
)

// ErrUnknownLearner is returned when an id does not resolve to a profile.
var ErrUnknownLearner = errors.New("unknown learner")

// ScorePerStar is the cosmetic score earned alongside each star.
const ScorePerStar = 10

// Registry loads the snapshot once and keeps it authoritative in memory.
type Registry struct {
	snap *models.Snapshot
	st   *store.Store
	log  *slog.Logger
}

// New loads the snapshot from st. Load is self-healing, so New cannot fail
// on corrupt data.
func New(st *store.Store, log *slog.Logger) *Registry {
	if log == nil {
		log = slog.Default()
	}
	return &Registry{snap: st.Load(), st: st, log: log}
}

// Active returns the active learner. If the recorded id does not resolve
// (stale reference after an external edit), it falls back to the guest
// profile and repairs the reference.
func (r *Registry) Active() *models.Learner {
	if l := r.snap.Learner(r.snap.Settings.ActiveLearnerID); l != nil {
		return l
	}
	r.log.Warn("active learner id unresolved, falling back to guest",
		"id", r.snap.Settings.ActiveLearnerID)
	r.snap.Settings.ActiveLearnerID = models.GuestID
	return r.snap.Learner(models.GuestID)
}

// SetActive switches the active learner.
func (r *Registry) SetActive(id string) error {
	if r.snap.Learner(id) == nil {
		return fmt.Errorf("%w: %s", ErrUnknownLearner, id)
	}
	r.snap.Settings.ActiveLearnerID = id
	r.persist()
	return nil
}

// Learners returns a copy of the roster for read-only display.
func (r *Registry) Learners() []models.Learner {
	out := make([]models.Learner, len(r.snap.Learners))
	copy(out, r.snap.Learners)
	return out
}

// Settings returns the current settings.
func (r *Registry) Settings() models.Settings {
	return r.snap.Settings
}

// AwardStars adds stars (and proportional score) to the active learner.
// Negative amounts are allowed for teacher adjustments.
func (r *Registry) AwardStars(n int, reason string) {
	l := r.Active()
	l.Stars += n
	l.Score += n * ScorePerStar
	l.UpdatedAt = time.Now()
	r.log.Info("stars awarded", "learner", l.ID, "delta", n, "total", l.Stars, "reason", reason)
	r.persist()
}

// MarkZoneComplete sets the write-once completion flag for the active
// learner. Returns true if the flag was newly set.
func (r *Registry) MarkZoneComplete(zoneID string) bool {
	l := r.Active()
	if l.ZoneProgress[zoneID] {
		return false
	}
	l.ZoneProgress[zoneID] = true
	l.UpdatedAt = time.Now()
	r.persist()
	return true
}

// SetAvatar replaces the active learner's avatar configuration.
func (r *Registry) SetAvatar(cfg models.AvatarConfig) {
	l := r.Active()
	l.Avatar = cfg
	l.UpdatedAt = time.Now()
	r.persist()
}

// CreateLearner adds a fresh profile and returns it.
func (r *Registry) CreateLearner(name string) models.Learner {
	l := models.NewLearner("s_"+uuid.NewString()[:8], name)
	r.snap.Learners = append(r.snap.Learners, l)
	r.persist()
	return l
}

// ResetLearner returns the named profile to zero stars, score and progress
// without deleting it.
func (r *Registry) ResetLearner(id string) error {
	l := r.snap.Learner(id)
	if l == nil {
		return fmt.Errorf("%w: %s", ErrUnknownLearner, id)
	}
	l.Stars = 0
	l.Score = 0
	l.ZoneProgress = map[string]bool{}
	l.UpdatedAt = time.Now()
	r.persist()
	return nil
}

// ResetClass removes every learner except the guest (which is reset, never
// deleted) and clears the teacher settings.
func (r *Registry) ResetClass() {
	guest := models.NewLearner(models.GuestID, "Guest")
	r.snap.Learners = []models.Learner{guest}
	r.snap.Settings.ActiveLearnerID = models.GuestID
	r.snap.Settings.ClassName = ""
	r.snap.Settings.Mission = models.MissionAll
	r.persist()
}

// SetMission updates the teacher mission lock ("all" or a zone id).
func (r *Registry) SetMission(mission string) {
	if mission == "" {
		mission = models.MissionAll
	}
	r.snap.Settings.Mission = mission
	r.persist()
}

// SetClassName updates the class label used in exports.
func (r *Registry) SetClassName(name string) {
	r.snap.Settings.ClassName = name
	r.persist()
}

// SetReadAloud toggles the narration setting.
func (r *Registry) SetReadAloud(on bool) {
	r.snap.Settings.ReadAloud = on
	r.persist()
}

// SetProjectorMode toggles the display-scale setting.
func (r *Registry) SetProjectorMode(on bool) {
	r.snap.Settings.ProjectorMode = on
	r.persist()
}

// FindByName returns learners whose names fuzzily match the query, best
// match first.
func (r *Registry) FindByName(query string) []models.Learner {
	names := make([]string, len(r.snap.Learners))
	for i, l := range r.snap.Learners {
		names[i] = l.Name
	}
	matches := fuzzy.Find(query, names)
	out := make([]models.Learner, 0, len(matches))
	for _, m := range matches {
		out = append(out, r.snap.Learners[m.Index])
	}
	return out
}

func (r *Registry) persist() {
	if err := r.st.Save(r.snap); err != nil {
		r.log.Error("snapshot save failed", "error", err)
	}
}
