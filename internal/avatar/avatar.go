// Package avatar owns the hero builder: the option catalog per category,
// the star-gated gear thresholds, and the SVG rendering used by the home
// screen and the printable certificate.
package avatar

import (
	"math/rand/v2"

	"ecoquest/internal/engine"
	"ecoquest/internal/models"
)

// Option is one catalog entry. Color is set only for tint categories; Req
// is the star threshold for gated gear, zero for free options.
type Option struct {
	ID    string
	Label string
	Color string
	Req   int
}

// MaxDisplayName caps the hero name length in runes.
const MaxDisplayName = 18

var Skins = []Option{
	{ID: "cool1", Label: "Cool 1", Color: "#f8d7c0"},
	{ID: "cool2", Label: "Cool 2", Color: "#f2c3a2"},
	{ID: "warm1", Label: "Warm 1", Color: "#f6c7a8"},
	{ID: "warm2", Label: "Warm 2", Color: "#eab08c"},
	{ID: "tan1", Label: "Tan 1", Color: "#d99b6c"},
	{ID: "deep1", Label: "Deep 1", Color: "#b8754c"},
	{ID: "deep2", Label: "Deep 2", Color: "#8c5636"},
}

var Bodies = []Option{
	{ID: "small", Label: "Small"},
	{ID: "regular", Label: "Regular"},
	{ID: "tall", Label: "Tall"},
	{ID: "round", Label: "Round"},
}

var Poses = []Option{
	{ID: "wave", Label: "Wave 👋"},
	{ID: "hero", Label: "Hero Pose 🦸"},
	{ID: "peace", Label: "Peace ✌️"},
	{ID: "jump", Label: "Jump ✨"},
}

var Outlines = []Option{
	{ID: "dark", Label: "Dark Outline"},
	{ID: "light", Label: "Light Outline"},
}

var Eyes = []Option{
	{ID: "happy", Label: "Happy 😊"},
	{ID: "sparkle", Label: "Sparkle ✨"},
	{ID: "focused", Label: "Focused 😎"},
	{ID: "sleepy", Label: "Sleepy 😴"},
}

var Mouths = []Option{
	{ID: "smile", Label: "Smile 🙂"},
	{ID: "biggrin", Label: "Big Grin 😁"},
	{ID: "ooh", Label: "Ooh! 😮"},
	{ID: "brave", Label: "Brave 😤"},
}

var Cheeks = []Option{
	{ID: "none", Label: "None"},
	{ID: "blush", Label: "Blush 💗"},
	{ID: "freckles", Label: "Freckles ✴️"},
}

var HairStyles = []Option{
	{ID: "spiky", Label: "Spiky"},
	{ID: "curly", Label: "Curly"},
	{ID: "bob", Label: "Bob Cut"},
	{ID: "pony", Label: "Ponytail"},
}

var HairColors = []Option{
	{ID: "black", Label: "Black", Color: "#1b1b1b"},
	{ID: "brown", Label: "Brown", Color: "#4a2c1a"},
	{ID: "blonde", Label: "Blonde", Color: "#d9b35e"},
	{ID: "blue", Label: "Blue", Color: "#2f74ff"},
	{ID: "pink", Label: "Pink", Color: "#ff4fa1"},
	{ID: "green", Label: "Green", Color: "#2fd985"},
}

var Outfits = []Option{
	{ID: "ranger", Label: "Forest Ranger 🎒"},
	{ID: "diver", Label: "Ocean Explorer 🫧"},
	{ID: "hero", Label: "City Eco Hero 🦸"},
	{ID: "casual", Label: "Casual Tee 👕"},
}

var OutfitColors = []Option{
	{ID: "green", Label: "Green", Color: "#35e09a"},
	{ID: "blue", Label: "Blue", Color: "#59b7ff"},
	{ID: "yellow", Label: "Yellow", Color: "#ffd44d"},
	{ID: "pink", Label: "Pink", Color: "#ff6aa6"},
	{ID: "orange", Label: "Orange", Color: "#ff9a3c"},
}

var Hats = []Option{
	{ID: "none", Label: "None (free)"},
	{ID: "cap_leaf", Label: "Leaf Cap 🍃 (⭐5)", Req: 5},
	{ID: "hat_ocean", Label: "Ocean Cap 🐬 (⭐12)", Req: 12},
	{ID: "hat_city", Label: "City Beanie 🧢 (⭐20)", Req: 20},
	{ID: "hat_crown", Label: "Planet Crown 👑 (⭐30)", Req: 30},
}

var Accessories = []Option{
	{ID: "none", Label: "None (free)"},
	{ID: "acc_magnify", Label: "Magnifier 🔍 (⭐5)", Req: 5},
	{ID: "acc_badge", Label: "Eco Badge 🏅 (⭐12)", Req: 12},
	{ID: "acc_cape", Label: "Hero Cape 🦸 (⭐20)", Req: 20},
	{ID: "acc_glow", Label: "Glow Aura ✨ (⭐30)", Req: 30},
}

var Sidekicks = []Option{
	{ID: "none", Label: "None (free)"},
	{ID: "side_owl", Label: "Ollie 🦉 (⭐5)", Req: 5},
	{ID: "side_turtle", Label: "Tara 🐢 (⭐12)", Req: 12},
	{ID: "side_crab", Label: "Coach 🦀 (⭐20)", Req: 20},
	{ID: "side_bot", Label: "MiniBot 🤖 (⭐30)", Req: 30},
}

func find(list []Option, id string) (Option, bool) {
	for _, o := range list {
		if o.ID == id {
			return o, true
		}
	}
	return Option{}, false
}

// valid clamps id to the catalog, falling back when it does not resolve.
func valid(list []Option, id, fallback string) string {
	if _, ok := find(list, id); ok {
		return id
	}
	return fallback
}

// gated clamps a gear pick: unknown ids and ids the learner has not earned
// yet both fall back to "none".
func gated(list []Option, id string, stars int) string {
	opt, ok := find(list, id)
	if !ok || !engine.OptionUsable(opt.Req, stars) {
		return "none"
	}
	return id
}

// Sanitize returns a copy of cfg with every field clamped to the catalog
// and gated gear the learner has not earned reverted to "none". It never
// mutates its input.
func Sanitize(cfg models.AvatarConfig, stars int) models.AvatarConfig {
	def := models.DefaultAvatar()

	name := []rune(cfg.DisplayName)
	if len(name) > MaxDisplayName {
		name = name[:MaxDisplayName]
	}
	if len(name) == 0 {
		name = []rune(def.DisplayName)
	}

	return models.AvatarConfig{
		DisplayName: string(name),
		Skin:        valid(Skins, cfg.Skin, def.Skin),
		Body:        valid(Bodies, cfg.Body, def.Body),
		Pose:        valid(Poses, cfg.Pose, def.Pose),
		Outline:     valid(Outlines, cfg.Outline, def.Outline),
		Eyes:        valid(Eyes, cfg.Eyes, def.Eyes),
		Mouth:       valid(Mouths, cfg.Mouth, def.Mouth),
		Cheeks:      valid(Cheeks, cfg.Cheeks, def.Cheeks),
		HairStyle:   valid(HairStyles, cfg.HairStyle, def.HairStyle),
		HairColor:   valid(HairColors, cfg.HairColor, def.HairColor),
		Outfit:      valid(Outfits, cfg.Outfit, def.Outfit),
		OutfitColor: valid(OutfitColors, cfg.OutfitColor, def.OutfitColor),
		Hat:         gated(Hats, cfg.Hat, stars),
		Accessory:   gated(Accessories, cfg.Accessory, stars),
		Sidekick:    gated(Sidekicks, cfg.Sidekick, stars),
	}
}

// Random rolls a fresh hero. Gear categories only draw from what the
// learner's stars have unlocked.
func Random(rng *rand.Rand, stars int) models.AvatarConfig {
	pick := func(list []Option) string {
		return list[rng.IntN(len(list))].ID
	}
	pickUnlocked := func(list []Option) string {
		pool := make([]Option, 0, len(list))
		for _, o := range list {
			if engine.OptionUsable(o.Req, stars) {
				pool = append(pool, o)
			}
		}
		if len(pool) == 0 {
			return "none"
		}
		return pool[rng.IntN(len(pool))].ID
	}

	return models.AvatarConfig{
		DisplayName: "Eco Hero",
		Skin:        pick(Skins),
		Body:        pick(Bodies),
		Pose:        pick(Poses),
		Outline:     pick(Outlines),
		Eyes:        pick(Eyes),
		Mouth:       pick(Mouths),
		Cheeks:      pick(Cheeks),
		HairStyle:   pick(HairStyles),
		HairColor:   pick(HairColors),
		Outfit:      pick(Outfits),
		OutfitColor: pick(OutfitColors),
		Hat:         pickUnlocked(Hats),
		Accessory:   pickUnlocked(Accessories),
		Sidekick:    pickUnlocked(Sidekicks),
	}
}
