package engine

import (
	"sync"
	"time"
)

// roundTimer is the cancellable repeating timer behind a countdown round.
// The callback fires once per interval until Stop, which is safe to call
// from any exit path and any number of times.
type roundTimer struct {
	stop chan struct{}
	once sync.Once
}

func newRoundTimer(interval time.Duration, fn func()) *roundTimer {
	t := &roundTimer{stop: make(chan struct{})}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-t.stop:
				return
			case <-ticker.C:
				fn()
			}
		}
	}()
	return t
}

func (t *roundTimer) Stop() {
	if t == nil {
		return
	}
	t.once.Do(func() { close(t.stop) })
}
