package engine

import (
	"errors"
	"testing"

	"ecoquest/internal/content"
)

func testChoiceScene() content.ChoiceScene {
	return content.ChoiceScene{
		Prompt: "How should we travel?",
		Options: []content.ChoiceOption{
			{Label: "Walk", Good: true},
			{Label: "Car alone", Good: false},
		},
	}
}

func TestChoiceGoodAndBadAwardsDiffer(t *testing.T) {
	good := newChoice(testChoiceScene())
	bad := newChoice(testChoiceScene())

	goodRes, err := good.Choose(0)
	if err != nil {
		t.Fatalf("good pick: %v", err)
	}
	badRes, err := bad.Choose(1)
	if err != nil {
		t.Fatalf("bad pick: %v", err)
	}

	if !goodRes.Good || goodRes.Stars != StarsGoodChoice {
		t.Errorf("good pick result %+v", goodRes)
	}
	if badRes.Good || badRes.Stars != 0 {
		t.Errorf("bad pick result %+v", badRes)
	}
	if goodRes.Stars == badRes.Stars {
		t.Errorf("good and bad picks must award differently")
	}
}

func TestChoiceIsTerminal(t *testing.T) {
	c := newChoice(testChoiceScene())
	if _, err := c.Choose(1); err != nil {
		t.Fatalf("first pick: %v", err)
	}
	if !c.IsComplete() {
		t.Fatalf("round incomplete after pick")
	}
	if _, err := c.Choose(0); !errors.Is(err, ErrSceneNotReady) {
		t.Fatalf("second pick should be rejected, got %v", err)
	}
	outcome, ok := c.Outcome()
	if !ok || outcome.Full {
		t.Errorf("expected defined not-good outcome, got %+v ok=%v", outcome, ok)
	}
}

func TestChoiceOutOfRange(t *testing.T) {
	c := newChoice(testChoiceScene())
	if _, err := c.Choose(5); !errors.Is(err, ErrSceneNotReady) {
		t.Fatalf("out-of-range pick should be rejected, got %v", err)
	}
	if c.IsComplete() {
		t.Errorf("rejected pick completed the round")
	}
}
