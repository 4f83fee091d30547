package avatar

import (
	"math/rand/v2"
	"strings"
	"testing"

	"ecoquest/internal/models"
)

func TestSanitizeClampsUnknownOptions(t *testing.T) {
	cfg := models.DefaultAvatar()
	cfg.Skin = "chartreuse"
	cfg.HairStyle = "mullet"

	got := Sanitize(cfg, 0)
	def := models.DefaultAvatar()
	if got.Skin != def.Skin {
		t.Errorf("unknown skin kept: %q", got.Skin)
	}
	if got.HairStyle != def.HairStyle {
		t.Errorf("unknown hair style kept: %q", got.HairStyle)
	}
}

func TestSanitizeRevertsUnearnedGear(t *testing.T) {
	cfg := models.DefaultAvatar()
	cfg.Hat = "hat_crown"
	cfg.Accessory = "acc_badge"
	cfg.Sidekick = "side_owl"

	locked := Sanitize(cfg, 4)
	if locked.Hat != "none" || locked.Accessory != "none" || locked.Sidekick != "none" {
		t.Errorf("unearned gear kept: %+v", locked)
	}

	partial := Sanitize(cfg, 12)
	if partial.Hat != "none" {
		t.Errorf("30-star hat kept at 12 stars: %q", partial.Hat)
	}
	if partial.Accessory != "acc_badge" || partial.Sidekick != "side_owl" {
		t.Errorf("earned gear reverted: %+v", partial)
	}

	full := Sanitize(cfg, 30)
	if full.Hat != "hat_crown" {
		t.Errorf("earned crown reverted: %q", full.Hat)
	}
}

func TestSanitizeDisplayName(t *testing.T) {
	cfg := models.DefaultAvatar()
	cfg.DisplayName = strings.Repeat("x", 40)
	if got := Sanitize(cfg, 0).DisplayName; len([]rune(got)) != MaxDisplayName {
		t.Errorf("long name not truncated: %q", got)
	}

	cfg.DisplayName = ""
	if got := Sanitize(cfg, 0).DisplayName; got != "Eco Hero" {
		t.Errorf("empty name not defaulted: %q", got)
	}
}

func TestRandomRespectsUnlocks(t *testing.T) {
	rng := rand.New(rand.NewPCG(9, 0))
	for i := 0; i < 50; i++ {
		cfg := Random(rng, 4)
		if cfg.Hat != "none" || cfg.Accessory != "none" || cfg.Sidekick != "none" {
			t.Fatalf("roll at 4 stars produced locked gear: %+v", cfg)
		}
		if cfg != Sanitize(cfg, 4) {
			t.Fatalf("roll produced an invalid config: %+v", cfg)
		}
	}
}

func TestRenderProducesStandaloneSVG(t *testing.T) {
	svg := Render(models.DefaultAvatar(), 0, 240)
	if !strings.HasPrefix(strings.TrimSpace(svg), "<svg") {
		t.Fatalf("render did not produce an svg document")
	}
	if !strings.Contains(svg, `width="240"`) {
		t.Errorf("size not applied")
	}
	if strings.Contains(svg, "{{") {
		t.Errorf("unexecuted template markers in output")
	}
}

func TestRenderOmitsLockedGear(t *testing.T) {
	cfg := models.DefaultAvatar()
	cfg.Hat = "hat_crown"

	locked := Render(cfg, 0, 240)
	if strings.Contains(locked, "#ffd44d\" stroke") && strings.Contains(locked, "l20 -26") {
		t.Errorf("locked crown rendered")
	}

	earned := Render(cfg, 30, 240)
	if !strings.Contains(earned, "l20 -26") {
		t.Errorf("earned crown missing from render")
	}
}
