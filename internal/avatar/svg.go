package avatar

import (
	"bytes"
	_ "embed"
	"fmt"
	"text/template"

	"ecoquest/internal/models"
)

//go:embed hero.svg.tmpl
var heroTmplText string

var heroTmpl = template.Must(template.New("hero").Parse(heroTmplText))

type heroView struct {
	Size      int
	Skin      string
	Hair      string
	Outfit    string
	Outline   string
	BodyScale float64
	Shift     float64
	Belly     int
	Jump      string
	ArmL      string
	ArmR      string

	EyesSVG     string
	MouthSVG    string
	CheeksSVG   string
	HairSVG     string
	OutfitSVG   string
	HatSVG      string
	SidekickSVG string
}

func colorOf(list []Option, id, fallback string) string {
	if o, ok := find(list, id); ok && o.Color != "" {
		return o.Color
	}
	return fallback
}

// Render draws the hero as a standalone SVG document. Gear the learner has
// not unlocked is omitted rather than drawn locked.
func Render(cfg models.AvatarConfig, stars, size int) string {
	cfg = Sanitize(cfg, stars)

	v := heroView{
		Size:    size,
		Skin:    colorOf(Skins, cfg.Skin, "#eab08c"),
		Hair:    colorOf(HairColors, cfg.HairColor, "#1b1b1b"),
		Outfit:  colorOf(OutfitColors, cfg.OutfitColor, "#35e09a"),
		Outline: "#061228",
	}
	if cfg.Outline == "light" {
		v.Outline = "#ffffff"
	}

	switch cfg.Body {
	case "small":
		v.BodyScale = 0.92
	case "tall":
		v.BodyScale = 1.05
	default:
		v.BodyScale = 1.0
	}
	v.Shift = (1 - v.BodyScale) * 160
	v.Belly = 52
	if cfg.Body == "round" {
		v.Belly = 58
	}

	switch cfg.Pose {
	case "wave":
		v.ArmL, v.ArmR = "rotate(-18 92 160)", "rotate(28 188 160)"
	case "peace":
		v.ArmL, v.ArmR = "rotate(-8 92 160)", "rotate(38 188 160)"
	case "hero":
		v.ArmL, v.ArmR = "rotate(-28 92 160)", "rotate(10 188 160)"
	default:
		v.ArmL, v.ArmR = "rotate(-8 92 160)", "rotate(10 188 160)"
	}
	if cfg.Pose == "jump" {
		v.Jump = "translate(0,-10)"
	}

	v.EyesSVG = eyesSVG(cfg.Eyes, v.Outline)
	v.MouthSVG = mouthSVG(cfg.Mouth, v.Outline)
	v.CheeksSVG = cheeksSVG(cfg.Cheeks, v.Outline)
	v.HairSVG = hairSVG(cfg.HairStyle, v.Hair, v.Outline)
	v.OutfitSVG = outfitSVG(cfg.Outfit, v.Outfit, v.Outline)
	v.HatSVG = hatSVG(cfg.Hat, v.Outline)
	v.SidekickSVG = sidekickSVG(cfg.Sidekick)

	var buf bytes.Buffer
	if err := heroTmpl.Execute(&buf, v); err != nil {
		// The template is embedded and the view is plain data.
		panic(err)
	}
	return buf.String()
}

func eyesSVG(style, outline string) string {
	switch style {
	case "sparkle":
		return `<g>
  <circle cx="124" cy="116" r="10" fill="#fff"/>
  <circle cx="184" cy="116" r="10" fill="#fff"/>
  <circle cx="127" cy="114" r="3" fill="#59b7ff"/>
  <circle cx="187" cy="114" r="3" fill="#59b7ff"/>
  <path d="M119 108 l4 6 l-7 -1 z" fill="#ffd44d"/>
  <path d="M179 108 l4 6 l-7 -1 z" fill="#ffd44d"/>
</g>`
	case "focused":
		return fmt.Sprintf(`<g>
  <ellipse cx="124" cy="118" rx="10" ry="7" fill="#fff"/>
  <ellipse cx="184" cy="118" rx="10" ry="7" fill="#fff"/>
  <circle cx="127" cy="118" r="4" fill="#061228"/>
  <circle cx="187" cy="118" r="4" fill="#061228"/>
  <path d="M112 108 q12 -10 24 0" fill="none" stroke="%[1]s" stroke-width="5" stroke-linecap="round"/>
  <path d="M172 108 q12 -10 24 0" fill="none" stroke="%[1]s" stroke-width="5" stroke-linecap="round"/>
</g>`, outline)
	case "sleepy":
		return fmt.Sprintf(`<g>
  <path d="M112 118 q12 10 24 0" fill="none" stroke="%[1]s" stroke-width="6" stroke-linecap="round"/>
  <path d="M172 118 q12 10 24 0" fill="none" stroke="%[1]s" stroke-width="6" stroke-linecap="round"/>
</g>`, outline)
	default:
		return `<g>
  <circle cx="124" cy="118" r="10" fill="#fff"/>
  <circle cx="184" cy="118" r="10" fill="#fff"/>
  <circle cx="127" cy="118" r="4" fill="#061228"/>
  <circle cx="187" cy="118" r="4" fill="#061228"/>
  <circle cx="121" cy="113" r="2" fill="#fff"/>
  <circle cx="181" cy="113" r="2" fill="#fff"/>
</g>`
	}
}

func mouthSVG(style, outline string) string {
	switch style {
	case "biggrin":
		return fmt.Sprintf(`<path d="M136 146 q24 22 48 0" fill="none" stroke="%s" stroke-width="7" stroke-linecap="round"/>`, outline)
	case "ooh":
		return fmt.Sprintf(`<circle cx="160" cy="150" r="10" fill="#fff" stroke="%s" stroke-width="6"/>`, outline)
	case "brave":
		return fmt.Sprintf(`<path d="M142 152 q18 -12 36 0" fill="none" stroke="%s" stroke-width="7" stroke-linecap="round"/>`, outline)
	default:
		return fmt.Sprintf(`<path d="M140 150 q20 18 40 0" fill="none" stroke="%s" stroke-width="7" stroke-linecap="round"/>`, outline)
	}
}

func cheeksSVG(style, outline string) string {
	switch style {
	case "blush":
		return `<g opacity=".55">
  <ellipse cx="108" cy="138" rx="10" ry="6" fill="#ff6aa6"/>
  <ellipse cx="212" cy="138" rx="10" ry="6" fill="#ff6aa6"/>
</g>`
	case "freckles":
		return fmt.Sprintf(`<g opacity=".7">
  <circle cx="110" cy="140" r="2" fill="%[1]s"/>
  <circle cx="118" cy="144" r="2" fill="%[1]s"/>
  <circle cx="106" cy="146" r="2" fill="%[1]s"/>
  <circle cx="210" cy="140" r="2" fill="%[1]s"/>
  <circle cx="202" cy="144" r="2" fill="%[1]s"/>
  <circle cx="214" cy="146" r="2" fill="%[1]s"/>
</g>`, outline)
	default:
		return ""
	}
}

func hairSVG(style, hair, outline string) string {
	switch style {
	case "curly":
		return fmt.Sprintf(`<path d="M92 92 q25 -40 68 -36 q48 -4 72 36 q-8 20 -18 26 q-14 -12 -20 -2 q-12 -14 -22 -4 q-10 -12 -20 -2 q-14 -12 -26 -2 q-10 -8 -14 -16z" fill="%s" stroke="%s" stroke-width="6" stroke-linejoin="round"/>`, hair, outline)
	case "bob":
		return fmt.Sprintf(`<path d="M92 94 q18 -54 68 -52 q54 -2 78 52 q-8 46 -18 58 q-42 10 -80 0 q-20 -14 -48 -58z" fill="%s" stroke="%s" stroke-width="6" stroke-linejoin="round"/>`, hair, outline)
	case "pony":
		return fmt.Sprintf(`<g>
  <path d="M92 94 q20 -54 68 -52 q56 -2 78 52 q-6 28 -14 36 q-44 10 -88 0 q-22 -14 -44 -36z" fill="%[1]s" stroke="%[2]s" stroke-width="6" stroke-linejoin="round"/>
  <path d="M230 110 q40 10 30 44 q-10 36 -48 26" fill="none" stroke="%[2]s" stroke-width="10" stroke-linecap="round"/>
  <path d="M230 110 q40 10 30 44 q-10 36 -48 26" fill="none" stroke="%[1]s" stroke-width="7" stroke-linecap="round"/>
</g>`, hair, outline)
	default:
		return fmt.Sprintf(`<path d="M90 98 l16 -34 l18 26 l20 -38 l18 30 l22 -40 l16 34 l16 -22 l16 42 q-18 36 -76 34 q-62 2 -66 -32z" fill="%s" stroke="%s" stroke-width="6" stroke-linejoin="round"/>`, hair, outline)
	}
}

func outfitSVG(style, outfit, outline string) string {
	switch style {
	case "diver":
		return fmt.Sprintf(`<path d="M110 210 q50 -25 100 0 q-10 62 -50 74 q-40 -12 -50 -74z" fill="%[1]s" stroke="%[2]s" stroke-width="6"/>
<circle cx="160" cy="230" r="10" fill="#fff" stroke="%[2]s" stroke-width="6"/>
<path d="M135 250 q25 18 50 0" fill="none" stroke="#fff" stroke-width="6" stroke-linecap="round"/>`, outfit, outline)
	case "hero":
		return fmt.Sprintf(`<path d="M110 210 q50 -30 100 0 q-10 66 -50 78 q-40 -12 -50 -78z" fill="%[1]s" stroke="%[2]s" stroke-width="6"/>
<path d="M160 214 l10 18 l20 2 l-14 14 l4 20 l-20 -10 l-20 10 l4 -20 l-14 -14 l20 -2z" fill="#ffd44d" stroke="%[2]s" stroke-width="5"/>`, outfit, outline)
	case "casual":
		return fmt.Sprintf(`<path d="M112 212 q48 -26 96 0 q-10 62 -48 76 q-38 -14 -48 -76z" fill="%s" stroke="%s" stroke-width="6"/>
<path d="M132 232 h56" stroke="#fff" stroke-width="6" stroke-linecap="round" opacity=".9"/>`, outfit, outline)
	default:
		return fmt.Sprintf(`<path d="M110 210 q50 -30 100 0 q-10 66 -50 78 q-40 -12 -50 -78z" fill="%s" stroke="%s" stroke-width="6"/>
<path d="M130 230 q30 26 60 0" fill="none" stroke="#fff" stroke-width="6" stroke-linecap="round" opacity=".9"/>
<path d="M148 210 v78" stroke="#fff" stroke-width="6" stroke-linecap="round" opacity=".9"/>
<path d="M172 210 v78" stroke="#fff" stroke-width="6" stroke-linecap="round" opacity=".9"/>`, outfit, outline)
	}
}

func hatSVG(hat, outline string) string {
	switch hat {
	case "cap_leaf":
		return fmt.Sprintf(`<path d="M104 90 q56 -44 112 0 q-10 18 -18 18 q-38 -14 -76 0 q-10 0 -18 -18z" fill="#35e09a" stroke="%s" stroke-width="6"/>`, outline)
	case "hat_ocean":
		return fmt.Sprintf(`<path d="M104 90 q56 -44 112 0 q-10 18 -18 18 q-38 -14 -76 0 q-10 0 -18 -18z" fill="#59b7ff" stroke="%s" stroke-width="6"/>`, outline)
	case "hat_city":
		return fmt.Sprintf(`<path d="M106 80 q54 -40 108 0 v22 q-54 18 -108 0z" fill="#1f2a48" stroke="%s" stroke-width="6"/>`, outline)
	case "hat_crown":
		return fmt.Sprintf(`<path d="M108 94 l16 -20 l16 18 l20 -26 l20 26 l16 -18 l16 20 v16 q-52 20 -104 0z" fill="#ffd44d" stroke="%s" stroke-width="6"/>`, outline)
	default:
		return ""
	}
}

func sidekickSVG(sidekick string) string {
	var emoji string
	switch sidekick {
	case "side_owl":
		emoji = "🦉"
	case "side_turtle":
		emoji = "🐢"
	case "side_crab":
		emoji = "🦀"
	case "side_bot":
		emoji = "🤖"
	default:
		return ""
	}
	return fmt.Sprintf(`<g>
  <circle cx="256" cy="78" r="34" fill="rgba(0,0,0,.18)" stroke="rgba(255,255,255,.18)" stroke-width="6"/>
  <text x="256" y="90" text-anchor="middle" font-size="34">%s</text>
</g>`, emoji)
}
