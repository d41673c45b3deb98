// Package session holds the pomodoro state that survives between pomo
// invocations: the cadence, whether a session is running and when it
// started. Elapsed time is never stored; it is always now - Start.
package session

import (
	"fmt"
	"time"

	"github.com/imgajeed76/pomo/internal/cadence"
	"github.com/imgajeed76/pomo/internal/util"
)

// Record is the persisted session state.
type Record struct {
	WorkDuration time.Duration
	ShortBreak   time.Duration
	LongBreak    time.Duration
	WorkBlocks   uint8
	Running      bool
	Start        int64 // seconds since the Unix epoch
	SessionID    string
}

// Default returns the record used when no state exists and after a reset.
func Default() Record {
	c := cadence.Default()
	return Record{
		WorkDuration: c.Work,
		ShortBreak:   c.ShortBreak,
		LongBreak:    c.LongBreak,
		WorkBlocks:   uint8(c.Blocks),
	}
}

// Cadence returns the record's timer configuration.
func (r Record) Cadence() cadence.Cadence {
	return cadence.Cadence{
		Work:       r.WorkDuration,
		ShortBreak: r.ShortBreak,
		LongBreak:  r.LongBreak,
		Blocks:     int(r.WorkBlocks),
	}
}

// StartedAt returns Start as a time.
func (r Record) StartedAt() time.Time {
	return time.Unix(r.Start, 0)
}

// Begin starts a session at now. The cadence is left as configured.
func (r *Record) Begin(now time.Time) {
	r.Start = now.Unix()
	r.Running = true
	r.SessionID = util.NewSessionID(now)
}

// Reset replaces the record with defaults.
func (r *Record) Reset() {
	*r = Default()
}

// Elapsed is the whole-second time since Start.
func (r Record) Elapsed(now time.Time) time.Duration {
	return time.Duration(now.Unix()-r.Start) * time.Second
}

// Position returns the active phase. ok is false when no session is running
// or the stored cadence is unusable.
func (r Record) Position(now time.Time) (pos cadence.Position, ok bool) {
	if !r.Running {
		return cadence.Position{}, false
	}
	c := r.Cadence()
	if err := c.Validate(); err != nil {
		util.Debugf("stored cadence is invalid: %v", err)
		return cadence.Position{}, false
	}
	return c.Locate(r.Elapsed(now)), true
}

// Summary renders the phase text shown by `pomo update` and the status bar.
// It is empty when nothing is running.
func (r Record) Summary(now time.Time, labels cadence.Labels) string {
	pos, ok := r.Position(now)
	if !ok {
		return ""
	}
	return cadence.Render(pos, labels)
}

const maxMinutes = int(cadence.MaxPhase / time.Minute)

// Changes lists the fields a reconfigure may touch. Nil fields are left
// unchanged. Durations are whole minutes.
type Changes struct {
	WorkMinutes       *int
	ShortBreakMinutes *int
	LongBreakMinutes  *int
	Blocks            *int
}

// Empty reports whether no field is set.
func (c Changes) Empty() bool {
	return c.WorkMinutes == nil && c.ShortBreakMinutes == nil &&
		c.LongBreakMinutes == nil && c.Blocks == nil
}

// Reconfigure applies changes. The record is only modified when the
// resulting cadence is valid.
func (r *Record) Reconfigure(ch Changes) error {
	next := *r
	phases := []struct {
		name    string
		minutes *int
		target  *time.Duration
	}{
		{"work", ch.WorkMinutes, &next.WorkDuration},
		{"short break", ch.ShortBreakMinutes, &next.ShortBreak},
		{"long break", ch.LongBreakMinutes, &next.LongBreak},
	}
	for _, p := range phases {
		if p.minutes == nil {
			continue
		}
		// Bounded before multiplying so huge values cannot wrap.
		if *p.minutes < 1 || *p.minutes > maxMinutes {
			return util.InvalidCadenceError(fmt.Sprintf("%s must be between 1 and %d minutes, got %d", p.name, maxMinutes, *p.minutes))
		}
		*p.target = time.Duration(*p.minutes) * time.Minute
	}
	if ch.Blocks != nil {
		if *ch.Blocks < 1 || *ch.Blocks > cadence.MaxBlocks {
			return util.InvalidCadenceError(fmt.Sprintf("work blocks must be between 1 and %d", cadence.MaxBlocks))
		}
		next.WorkBlocks = uint8(*ch.Blocks)
	}
	if err := next.Cadence().Validate(); err != nil {
		return util.InvalidCadenceError(err.Error())
	}
	*r = next
	return nil
}
