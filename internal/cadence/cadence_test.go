package cadence

import (
	"testing"
	"time"
)

const m = time.Minute

func TestLocate_DefaultCadence(t *testing.T) {
	c := Default()

	tests := []struct {
		elapsed   time.Duration
		phase     Phase
		remaining time.Duration
	}{
		{0, Work, 25 * m},
		{24*m + 59*time.Second, Work, time.Second},
		{25 * m, ShortBreak, 5 * m},
		{27 * m, ShortBreak, 3 * m},
		{30 * m, Work, 25 * m},
		{55 * m, ShortBreak, 5 * m},
		{60 * m, Work, 25 * m},
		{85 * m, LongBreak, 30 * m},
		// two work+short rounds (60m) plus the third work block (25m)
		// leaves 5m consumed of the long break
		{90 * m, LongBreak, 25 * m},
		{114*m + 59*time.Second, LongBreak, time.Second},
		{115 * m, Work, 25 * m},
	}

	for _, tt := range tests {
		got := c.Locate(tt.elapsed)
		if got.Phase != tt.phase || got.Remaining != tt.remaining {
			t.Errorf("Locate(%s) = %s/%s, want %s/%s",
				tt.elapsed, got.Phase, got.Remaining, tt.phase, tt.remaining)
		}
	}
}

func TestLocate_SingleBlockSkipsShortBreaks(t *testing.T) {
	c := Cadence{Work: 25 * m, ShortBreak: 5 * m, LongBreak: 30 * m, Blocks: 1}

	if got := c.CycleLength(); got != 55*m {
		t.Fatalf("CycleLength() = %s, want 55m", got)
	}

	for elapsed := time.Duration(0); elapsed < 3*c.CycleLength(); elapsed += 30 * time.Second {
		if got := c.Locate(elapsed); got.Phase == ShortBreak {
			t.Fatalf("Locate(%s) returned a short break with one block", elapsed)
		}
	}

	if got := c.Locate(25 * m); got.Phase != LongBreak || got.Remaining != 30*m {
		t.Fatalf("Locate(25m) = %s/%s, want long_break/30m", got.Phase, got.Remaining)
	}
	if got := c.Locate(55 * m); got.Phase != Work || got.Remaining != 25*m {
		t.Fatalf("Locate(55m) = %s/%s, want work/25m", got.Phase, got.Remaining)
	}
}

func TestLocate_IsCyclic(t *testing.T) {
	cadences := []Cadence{
		Default(),
		{Work: 50 * m, ShortBreak: 10 * m, LongBreak: 20 * m, Blocks: 4},
		{Work: 90 * time.Second, ShortBreak: 7 * time.Second, LongBreak: 13 * time.Second, Blocks: 2},
	}

	for _, c := range cadences {
		cycle := c.CycleLength()
		for elapsed := time.Duration(0); elapsed < cycle; elapsed += time.Second {
			a := c.Locate(elapsed)
			b := c.Locate(elapsed + cycle)
			z := c.Locate(elapsed + 7*cycle)
			if a != b || a != z {
				t.Fatalf("Locate not cyclic at %s: %+v vs %+v vs %+v", elapsed, a, b, z)
			}
		}
	}
}

func TestLocate_RemainingWithinPhase(t *testing.T) {
	c := Cadence{Work: 3 * m, ShortBreak: 1 * m, LongBreak: 2 * m, Blocks: 3}

	for elapsed := time.Duration(0); elapsed < 2*c.CycleLength(); elapsed += 250 * time.Millisecond {
		got := c.Locate(elapsed)
		if got.Remaining <= 0 || got.Remaining > c.Duration(got.Phase) {
			t.Fatalf("Locate(%s) remaining %s outside (0, %s]",
				elapsed, got.Remaining, c.Duration(got.Phase))
		}
	}
}

func TestLocate_NegativeElapsedClamps(t *testing.T) {
	c := Default()
	got := c.Locate(-10 * m)
	if got.Phase != Work || got.Remaining != 25*m {
		t.Fatalf("Locate(-10m) = %s/%s, want work/25m", got.Phase, got.Remaining)
	}
}

func TestValidate(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default cadence invalid: %v", err)
	}

	bad := []Cadence{
		{Work: 0, ShortBreak: m, LongBreak: m, Blocks: 1},
		{Work: m, ShortBreak: 0, LongBreak: m, Blocks: 1},
		{Work: m, ShortBreak: m, LongBreak: -m, Blocks: 1},
		{Work: m, ShortBreak: m, LongBreak: m, Blocks: 0},
		{Work: m, ShortBreak: m, LongBreak: m, Blocks: 256},
		{Work: MaxPhase + time.Second, ShortBreak: m, LongBreak: m, Blocks: 1},
		// phases whose sum wraps time.Duration to zero
		{Work: 1 << 56, ShortBreak: 1 << 56, LongBreak: 3 << 56, Blocks: 255},
	}
	for _, c := range bad {
		if err := c.Validate(); err == nil {
			t.Errorf("Validate(%+v) = nil, want error", c)
		}
	}

	limit := Cadence{Work: MaxPhase, ShortBreak: MaxPhase, LongBreak: MaxPhase, Blocks: MaxBlocks}
	if err := limit.Validate(); err != nil {
		t.Errorf("Validate(%+v) = %v, want nil", limit, err)
	}
	if limit.CycleLength() <= 0 {
		t.Errorf("CycleLength() = %s at the limits, want positive", limit.CycleLength())
	}
}

func TestRender(t *testing.T) {
	labels := DefaultLabels()

	tests := []struct {
		pos  Position
		want string
	}{
		{Position{Work, 25 * m}, "Stay Focused: 25:00"},
		{Position{Work, 10 * m}, "Stay Focused: 10:00"},
		{Position{ShortBreak, 4*m + 7*time.Second}, "Short Break: 04:07"},
		{Position{LongBreak, 25 * m}, "Long Break: 25:00"},
	}
	for _, tt := range tests {
		if got := Render(tt.pos, labels); got != tt.want {
			t.Errorf("Render(%+v) = %q, want %q", tt.pos, got, tt.want)
		}
	}

	custom := Labels{Work: "W", ShortBreak: "s", LongBreak: "L"}
	if got := Render(Position{LongBreak, time.Second}, custom); got != "L: 00:01" {
		t.Errorf("custom labels: got %q", got)
	}
}
