package engine

import "ecoquest/internal/content"

// ChoiceResult describes the single pick of a choice round.
type ChoiceResult struct {
	Good  bool
	Stars int
}

// Choice runs one single-pick round: the first selection is terminal and
// the award depends on whether the chosen option was good.
type Choice struct {
	prompt  string
	options []content.ChoiceOption
	chosen  bool
	good    bool
}

func newChoice(scene content.ChoiceScene) *Choice {
	return &Choice{prompt: scene.Prompt, options: scene.Options}
}

func (c *Choice) Kind() string { return "choice" }

// Prompt returns the question text.
func (c *Choice) Prompt() string { return c.prompt }

// Options returns the selectable answers.
func (c *Choice) Options() []content.ChoiceOption { return c.options }

// Choose picks an option by index. A second pick, or an out-of-range
// index, is rejected with ErrSceneNotReady.
func (c *Choice) Choose(i int) (ChoiceResult, error) {
	if c.chosen {
		return ChoiceResult{}, ErrSceneNotReady
	}
	if i < 0 || i >= len(c.options) {
		return ChoiceResult{}, ErrSceneNotReady
	}
	c.chosen = true
	c.good = c.options[i].Good

	stars := 0
	if c.good {
		stars = StarsGoodChoice
	}
	return ChoiceResult{Good: c.good, Stars: stars}, nil
}

func (c *Choice) IsComplete() bool { return c.chosen }

func (c *Choice) Outcome() (Outcome, bool) {
	if !c.chosen {
		return Outcome{}, false
	}
	if c.good {
		return Outcome{Stars: StarsGoodChoice, Full: true, Label: "Green travel! ✅"}, true
	}
	return Outcome{Stars: 0, Full: false, Label: "Hmm… not the greenest choice."}, true
}
