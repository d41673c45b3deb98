// Package cadence computes where a running pomodoro session currently is.
//
// A cadence lays its phases end to end starting at zero: Blocks-1 rounds of
// (work, short break) followed by one (work, long break), then the whole
// group repeats. Locating an elapsed duration in that sequence yields the
// active phase and the time left in it.
package cadence

import (
	"fmt"
	"time"
)

// Phase is one contiguous span of a pomodoro cycle.
type Phase int

const (
	Work Phase = iota
	ShortBreak
	LongBreak
)

func (p Phase) String() string {
	switch p {
	case Work:
		return "work"
	case ShortBreak:
		return "short_break"
	case LongBreak:
		return "long_break"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// Cadence is the configured set of phase durations plus the number of work
// blocks that precede a long break.
type Cadence struct {
	Work       time.Duration
	ShortBreak time.Duration
	LongBreak  time.Duration
	Blocks     int
}

// Default returns the classic 25/5/30 cadence with three work blocks.
func Default() Cadence {
	return Cadence{
		Work:       25 * time.Minute,
		ShortBreak: 5 * time.Minute,
		LongBreak:  30 * time.Minute,
		Blocks:     3,
	}
}

// MaxPhase bounds every phase. With at most 255 blocks the cycle length
// stays far below the range of time.Duration.
const MaxPhase = 24 * time.Hour

// MaxBlocks is the largest number of work blocks in a cycle.
const MaxBlocks = 255

// Validate rejects cadences whose cycle could not be walked.
func (c Cadence) Validate() error {
	if c.Work <= 0 {
		return fmt.Errorf("work duration must be positive, got %s", c.Work)
	}
	if c.ShortBreak <= 0 {
		return fmt.Errorf("short break must be positive, got %s", c.ShortBreak)
	}
	if c.LongBreak <= 0 {
		return fmt.Errorf("long break must be positive, got %s", c.LongBreak)
	}
	for _, p := range []Phase{Work, ShortBreak, LongBreak} {
		if d := c.Duration(p); d > MaxPhase {
			return fmt.Errorf("%s must be at most %s, got %s", p, MaxPhase, d)
		}
	}
	if c.Blocks < 1 || c.Blocks > MaxBlocks {
		return fmt.Errorf("work blocks must be between 1 and %d, got %d", MaxBlocks, c.Blocks)
	}
	if c.CycleLength() <= 0 {
		return fmt.Errorf("cycle length %s is not positive", c.CycleLength())
	}
	return nil
}

// Duration returns the configured length of a phase.
func (c Cadence) Duration(p Phase) time.Duration {
	switch p {
	case Work:
		return c.Work
	case ShortBreak:
		return c.ShortBreak
	case LongBreak:
		return c.LongBreak
	}
	return 0
}

// CycleLength is the length of one full group of phases.
func (c Cadence) CycleLength() time.Duration {
	return time.Duration(c.Blocks-1)*(c.Work+c.ShortBreak) + c.Work + c.LongBreak
}

// Position is the active phase and how much of it is left.
type Position struct {
	Phase     Phase
	Remaining time.Duration
}

// Locate maps an elapsed duration to its position in the cycle.
//
// The cadence must be valid. Negative elapsed values are treated as zero.
// Remaining is always in (0, Duration(Phase)]; it equals the full phase
// length at the instant the phase begins.
func (c Cadence) Locate(elapsed time.Duration) Position {
	if elapsed < 0 {
		elapsed = 0
	}
	// Walking whole cycles changes nothing, so only the offset into the
	// current cycle matters.
	rest := elapsed % c.CycleLength()

	for _, p := range c.sequence() {
		d := c.Duration(p)
		if rest < d {
			return Position{Phase: p, Remaining: d - rest}
		}
		rest -= d
	}

	// Unreachable for a valid cadence: rest < CycleLength() == sum(sequence).
	return Position{Phase: Work, Remaining: c.Work}
}

// sequence lists the phases of one cycle in order.
func (c Cadence) sequence() []Phase {
	phases := make([]Phase, 0, 2*c.Blocks)
	for i := 1; i < c.Blocks; i++ {
		phases = append(phases, Work, ShortBreak)
	}
	return append(phases, Work, LongBreak)
}
