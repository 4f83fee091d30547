// Package engine is the quest progression core: the scene sequencer, the
// unlock ledger and the three mini-game state machines. It owns no
// presentation; the TUI drives it through a handful of operations and reads
// its state back for rendering.
package engine

import (
	"fmt"
	"math/rand/v2"
	"time"

	"ecoquest/internal/content"
	"ecoquest/internal/registry"
)

// session is one zone traversal. It is never persisted: re-entering a zone
// always restarts its scene list from the top.
type session struct {
	zoneID string
	scenes []content.Scene
	idx    int
	game   MiniGame
	timer  *roundTimer

	settled bool // current game's completion award already applied
}

// Sequencer drives a learner through one zone at a time, gating advancement
// on mini-game completion and applying currency through the registry.
type Sequencer struct {
	lib *content.Library
	reg *registry.Registry
	rng *rand.Rand

	announce func(string) // narration sink; may stay nil
	onTick   func()       // presentation notifier for countdown seconds

	sess *session
}

// NewSequencer builds an engine instance over the given content and
// registry. The seed fixes all random draws, which keeps rounds replayable
// in tests.
func NewSequencer(lib *content.Library, reg *registry.Registry, seed int64) *Sequencer {
	return &Sequencer{lib: lib, reg: reg, rng: seededRNG(seed)}
}

// SetAnnouncer registers the narration sink. The engine only emits text;
// whether it is spoken or shown is the caller's business.
func (s *Sequencer) SetAnnouncer(fn func(string)) { s.announce = fn }

// SetTickNotifier registers the per-second callback used while a countdown
// round is live. Without a notifier no timer is started, which is how tests
// drive ticks by hand.
func (s *Sequencer) SetTickNotifier(fn func()) { s.onTick = fn }

func (s *Sequencer) say(text string) {
	if s.announce != nil && text != "" {
		s.announce(text)
	}
}

// EnterZone starts a traversal of the zone. It fails with ErrZoneLocked if
// the prerequisite is incomplete and ErrZoneRestricted if the teacher
// mission lock forbids it; neither changes any state.
func (s *Sequencer) EnterZone(zoneID string) error {
	zone, ok := s.lib.Zone(zoneID)
	if !ok {
		return fmt.Errorf("unknown zone %q", zoneID)
	}

	learner := s.reg.Active()
	if !ZoneEnterable(zone, learner.ZoneProgress) {
		return fmt.Errorf("%w: finish %s first", ErrZoneLocked, zone.Requires)
	}
	if !MissionAllows(s.reg.Settings().Mission, zoneID) {
		return fmt.Errorf("%w: teacher mission is %s", ErrZoneRestricted, s.reg.Settings().Mission)
	}

	scenes, err := s.lib.Scenes(zoneID, learner.Name)
	if err != nil {
		return err
	}

	s.discardSession()
	s.sess = &session{zoneID: zoneID, scenes: scenes}
	s.activateScene()
	return nil
}

// Advance moves to the next scene. From an unfinished mini-game scene it
// fails with ErrSceneNotReady and changes nothing; past the last scene it
// finalizes the zone and returns to idle.
func (s *Sequencer) Advance() error {
	if s.sess == nil {
		return ErrNoSession
	}
	if s.sess.game != nil && !s.sess.game.IsComplete() {
		return ErrSceneNotReady
	}

	s.stopTimer()
	s.sess.idx++
	if s.sess.idx >= len(s.sess.scenes) {
		s.finalizeZone()
		s.sess = nil
		return nil
	}
	s.activateScene()
	return nil
}

// Retreat steps back one scene, clamped at the first. The revisited scene
// starts fresh: an in-progress round there is discarded, but stars already
// earned stay earned.
func (s *Sequencer) Retreat() error {
	if s.sess == nil {
		return ErrNoSession
	}
	if s.sess.idx > 0 {
		s.sess.idx--
	}
	s.activateScene()
	return nil
}

// ExitToMap discards the session unconditionally. Scene-by-scene awards
// already committed are kept; nothing else happens.
func (s *Sequencer) ExitToMap() {
	s.discardSession()
}

// CurrentScene returns the active scene for presentation.
func (s *Sequencer) CurrentScene() (content.Scene, bool) {
	if s.sess == nil {
		return nil, false
	}
	return s.sess.scenes[s.sess.idx], true
}

// ActiveZone returns the zone under traversal, if any.
func (s *Sequencer) ActiveZone() (string, bool) {
	if s.sess == nil {
		return "", false
	}
	return s.sess.zoneID, true
}

// SceneIndex returns the current position and scene count.
func (s *Sequencer) SceneIndex() (idx, total int) {
	if s.sess == nil {
		return 0, 0
	}
	return s.sess.idx, len(s.sess.scenes)
}

// Game returns the live mini-game machine for the current scene, or nil on
// a narrative scene.
func (s *Sequencer) Game() MiniGame {
	if s.sess == nil {
		return nil
	}
	return s.sess.game
}

// AssignSortItem forwards one bin assignment to the active sorter round.
// First-time correct assignments earn their star immediately.
func (s *Sequencer) AssignSortItem(itemID, bin string) (SortResult, error) {
	sorter, err := activeGame[*Sorter](s)
	if err != nil {
		return SortResult{}, err
	}
	res := sorter.Assign(itemID, bin)
	if res.First {
		s.reg.AwardStars(StarsPerSort, "Correct sort!")
	}
	s.settleGame()
	return res, nil
}

// ToggleDevice forwards one device flip to the active countdown round.
func (s *Sequencer) ToggleDevice(deviceID string) error {
	cd, err := activeGame[*Countdown](s)
	if err != nil {
		return err
	}
	cd.Toggle(deviceID)
	s.settleGame()
	return nil
}

// TickCountdown advances the active countdown by one second. Presentation
// calls this in response to the tick notifier.
func (s *Sequencer) TickCountdown() error {
	cd, err := activeGame[*Countdown](s)
	if err != nil {
		return err
	}
	cd.Tick()
	s.settleGame()
	return nil
}

// ChooseOption makes the terminal pick of the active choice round.
func (s *Sequencer) ChooseOption(i int) (ChoiceResult, error) {
	choice, err := activeGame[*Choice](s)
	if err != nil {
		return ChoiceResult{}, err
	}
	res, err := choice.Choose(i)
	if err != nil {
		return ChoiceResult{}, err
	}
	s.settleGame()
	return res, nil
}

func activeGame[G MiniGame](s *Sequencer) (G, error) {
	var zero G
	if s.sess == nil {
		return zero, ErrNoSession
	}
	g, ok := s.sess.game.(G)
	if !ok {
		return zero, ErrSceneNotReady
	}
	return g, nil
}

// activateScene builds the machine for the current scene, cancelling any
// timer left over from the previous one.
func (s *Sequencer) activateScene() {
	s.stopTimer()
	s.sess.game = nil
	s.sess.settled = false

	switch sc := s.sess.scenes[s.sess.idx].(type) {
	case content.Narrative:
		s.say(sc.Text)
	case content.SorterScene:
		s.sess.game = newSorter(sc.Items, sc.Present, s.rng)
	case content.CountdownScene:
		s.sess.game = newCountdown(sc.Devices, sc.Present, sc.Seconds, s.rng)
		if s.onTick != nil {
			s.sess.timer = newRoundTimer(time.Second, s.onTick)
		}
	case content.ChoiceScene:
		s.sess.game = newChoice(sc)
	}
}

// settleGame applies the completion award of the current round exactly
// once. Sorter rounds pay per item as they go, so their completion carries
// no further currency.
func (s *Sequencer) settleGame() {
	if s.sess == nil || s.sess.game == nil || s.sess.settled {
		return
	}
	outcome, done := s.sess.game.Outcome()
	if !done {
		return
	}
	s.sess.settled = true
	s.stopTimer()

	switch s.sess.game.(type) {
	case *Sorter:
		// already paid per correct assignment
	case *Countdown, *Choice:
		if outcome.Stars > 0 {
			s.reg.AwardStars(outcome.Stars, outcome.Label)
		}
	}
	s.say(outcome.Label)
}

// finalizeZone runs once when the scene list is exhausted. A repeat
// completion emits a notice but never re-awards the bonus.
func (s *Sequencer) finalizeZone() {
	zoneID := s.sess.zoneID
	if s.reg.MarkZoneComplete(zoneID) {
		s.reg.AwardStars(StarsZoneBonus, "Biome complete!")
		s.say("Biome complete! ⭐")
		return
	}
	s.say("Biome already completed ✅")
}

func (s *Sequencer) stopTimer() {
	if s.sess != nil && s.sess.timer != nil {
		s.sess.timer.Stop()
		s.sess.timer = nil
	}
}

func (s *Sequencer) discardSession() {
	s.stopTimer()
	s.sess = nil
}
