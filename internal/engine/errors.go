package engine

import "errors"

// Gating errors are expected, frequent outcomes of rejected state
// transitions. Presentation handles them as a no-op plus a notice.
var (
	// ErrZoneLocked means the zone's prerequisite is not complete.
	ErrZoneLocked = errors.New("zone locked")

	// ErrZoneRestricted means the teacher mission lock forbids entry.
	ErrZoneRestricted = errors.New("zone restricted by mission")

	// ErrSceneNotReady means the current scene's mini-game has not been
	// completed, or the input does not apply to the current scene.
	ErrSceneNotReady = errors.New("scene not ready")

	// ErrNoSession means no zone traversal is in progress.
	ErrNoSession = errors.New("no active quest session")
)
