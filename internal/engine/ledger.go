package engine

import (
	"ecoquest/internal/content"
	"ecoquest/internal/models"
)

// Badge is one rung of the fixed star-threshold ladder.
type Badge struct {
	Name  string
	Stars int
	Icon  string
}

// Badges is the ascending badge table.
var Badges = []Badge{
	{Name: "Seedling Saver", Stars: 5, Icon: "🌱"},
	{Name: "Super Recycler", Stars: 12, Icon: "♻️"},
	{Name: "Energy Guardian", Stars: 20, Icon: "💡"},
	{Name: "Planet Pal", Stars: 30, Icon: "🌍"},
}

// NoBadge is the sentinel shown below the first threshold.
const NoBadge = "—"

// CurrentBadge returns the highest badge name whose threshold is at most
// stars, or NoBadge.
func CurrentBadge(stars int) string {
	name := NoBadge
	for _, b := range Badges {
		if stars >= b.Stars {
			name = b.Name
		}
	}
	return name
}

// ZoneEnterable reports whether the zone may be entered given the learner's
// completion flags. A zone without a prerequisite is always enterable.
func ZoneEnterable(zone content.Zone, progress map[string]bool) bool {
	if zone.Requires == "" {
		return true
	}
	return progress[zone.Requires]
}

// MissionAllows reports whether the teacher mission lock permits the zone.
func MissionAllows(mission, zoneID string) bool {
	return mission == models.MissionAll || mission == zoneID
}

// OptionUsable reports whether a cosmetic option with the given star
// requirement is usable at the current balance.
func OptionUsable(required, stars int) bool {
	return stars >= required
}
