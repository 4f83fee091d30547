package engine

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestRoundTimerTicksUntilStopped(t *testing.T) {
	var ticks atomic.Int64
	tm := newRoundTimer(5*time.Millisecond, func() { ticks.Add(1) })

	deadline := time.Now().Add(2 * time.Second)
	for ticks.Load() < 3 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	if ticks.Load() < 3 {
		t.Fatalf("timer never ticked")
	}

	tm.Stop()
	at := ticks.Load()
	time.Sleep(50 * time.Millisecond)
	// One callback may already be in flight when Stop lands.
	if got := ticks.Load(); got > at+1 {
		t.Errorf("ticks continued after Stop: %d then %d", at, got)
	}
}

func TestRoundTimerStopIdempotent(t *testing.T) {
	tm := newRoundTimer(time.Hour, func() {})
	tm.Stop()
	tm.Stop()

	var nilTimer *roundTimer
	nilTimer.Stop()
}
