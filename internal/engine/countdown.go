package engine

import (
	"math/rand/v2"

	"ecoquest/internal/content"
)

// DeviceState is one presented device plus its live toggle state.
type DeviceState struct {
	content.Device
	On bool
}

// Countdown runs one conservation round: flip every presented device into
// its required end-state before the timer hits zero. Completing by
// satisfying all devices is the full-tier outcome; the timer expiring first
// is the partial tier. Either way the machine is terminal afterwards:
// toggles and ticks are ignored.
type Countdown struct {
	devices  []DeviceState
	timeLeft int
	done     bool
	full     bool
}

func newCountdown(pool []content.Device, present, seconds int, rng *rand.Rand) *Countdown {
	drawn := shuffled(rng, pool)
	if present > 0 && present < len(drawn) {
		drawn = drawn[:present]
	}
	devices := make([]DeviceState, len(drawn))
	for i, d := range drawn {
		devices[i] = DeviceState{Device: d, On: d.StartOn}
	}
	return &Countdown{devices: devices, timeLeft: seconds}
}

func (c *Countdown) Kind() string { return "countdown" }

// Devices returns the presented devices with their live states.
func (c *Countdown) Devices() []DeviceState { return c.devices }

// TimeLeft is the remaining whole seconds.
func (c *Countdown) TimeLeft() int { return c.timeLeft }

func (c *Countdown) satisfied() bool {
	for _, d := range c.devices {
		if d.On != d.RequireOn {
			return false
		}
	}
	return true
}

// Toggle flips a device. Completing the required configuration ends the
// round at the full tier.
func (c *Countdown) Toggle(deviceID string) {
	if c.done {
		return
	}
	for i := range c.devices {
		if c.devices[i].ID == deviceID {
			c.devices[i].On = !c.devices[i].On
			break
		}
	}
	if c.satisfied() {
		c.done = true
		c.full = true
	}
}

// Tick advances the countdown by one second. Reaching zero ends the round
// at the partial tier regardless of device states.
func (c *Countdown) Tick() {
	if c.done {
		return
	}
	c.timeLeft--
	if c.timeLeft <= 0 {
		c.timeLeft = 0
		c.done = true
		c.full = false
	}
}

func (c *Countdown) IsComplete() bool { return c.done }

func (c *Countdown) Outcome() (Outcome, bool) {
	if !c.done {
		return Outcome{}, false
	}
	if c.full {
		return Outcome{Stars: StarsCountdownWin, Full: true, Label: "Energy saved! ✅"}, true
	}
	return Outcome{Stars: StarsCountdownOut, Full: false, Label: "Time's up — good effort! ⏱️"}, true
}
