package util

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCLIError_IsKind(t *testing.T) {
	err := UnknownAliasError("nope")
	assert.True(t, errors.Is(err, ErrUnknownColorAlias))
	assert.False(t, errors.Is(err, ErrInvalidPalette))

	wrapped := fmt.Errorf("resolve: %w", err)
	assert.True(t, errors.Is(wrapped, ErrUnknownColorAlias))

	var cliErr *CLIError
	require.True(t, errors.As(wrapped, &cliErr))
	assert.Equal(t, "Unknown color 'nope'", cliErr.Title)
}

func TestCLIError_UnwrapsCause(t *testing.T) {
	cause := errors.New("permission denied")
	err := FileUnreadableError("/tmp/x.yaml", cause)

	assert.True(t, errors.Is(err, cause))
	assert.True(t, errors.Is(err, ErrFileUnreadable))
	assert.Contains(t, err.Error(), "permission denied")
}

func TestCLIError_Format(t *testing.T) {
	err := MissingEnvError("COLOR_SCHEME", "scheme")
	out := err.Format()

	assert.True(t, strings.HasPrefix(out, "Error: Environment variable COLOR_SCHEME is not set"))
	assert.Contains(t, out, "Try:")
	assert.Contains(t, out, "$ export COLOR_SCHEME=...")
	assert.Contains(t, out, "$ pass --scheme instead")
}

func TestClock(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{0, "00:00"},
		{-5 * time.Second, "00:00"},
		{59 * time.Second, "00:59"},
		{25 * time.Minute, "25:00"},
		{4*time.Minute + 7*time.Second + 900*time.Millisecond, "04:07"},
		{75 * time.Minute, "75:00"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Clock(tt.in), "Clock(%s)", tt.in)
	}
}

func TestRelativeTime(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, "just now", RelativeTime(now.Add(-10*time.Second), now))
	assert.Equal(t, "1 minute ago", RelativeTime(now.Add(-time.Minute), now))
	assert.Equal(t, "25 minutes ago", RelativeTime(now.Add(-25*time.Minute), now))
	assert.Equal(t, "2 hours ago", RelativeTime(now.Add(-2*time.Hour), now))
	assert.Equal(t, "in the future", RelativeTime(now.Add(time.Hour), now))
}

func TestSessionID(t *testing.T) {
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	id := NewSessionID(at)

	require.True(t, ValidSessionID(id))
	assert.Len(t, ShortID(id), 7)
	assert.Equal(t, strings.ToLower(id[len(id)-7:]), ShortID(id))
	assert.Equal(t, "abc", ShortID("ABC"))
	assert.False(t, ValidSessionID("not-a-ulid"))
}

func TestDebugf(t *testing.T) {
	var buf bytes.Buffer
	ConfigureDebug(false, &buf)
	Debugf("hidden %d", 1)
	assert.Empty(t, buf.String())

	ConfigureDebug(true, &buf)
	t.Cleanup(func() { ConfigureDebug(false, nil) })
	Debugf("shown %d", 2)
	assert.Contains(t, buf.String(), "shown 2")
}
