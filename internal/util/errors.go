package util

import (
	"errors"
	"fmt"
	"strings"
)

// Error kinds shared by pomo and colorparse
var (
	ErrMissingArgument    = errors.New("missing argument")
	ErrMissingEnvironment = errors.New("missing environment variable")
	ErrFileUnreadable     = errors.New("file unreadable")
	ErrInvalidPalette     = errors.New("invalid palette format")
	ErrUnknownColorAlias  = errors.New("unknown color alias")
	ErrInvalidCadence     = errors.New("invalid cadence")
	ErrStateIO            = errors.New("session state i/o failed")
)

// CLIError is a structured error with context and suggestions
type CLIError struct {
	Kind        error    // One of the Err* kinds above, matched by errors.Is
	Title       string   // Short error title
	Message     string   // Detailed message
	Context     string   // What was being attempted
	Causes      []string // Possible causes
	Suggestions []string // Actionable suggestions with commands
	Err         error    // Wrapped error
}

func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Title, e.Err)
	}
	return e.Title
}

func (e *CLIError) Unwrap() error {
	return e.Err
}

// Is reports whether target is the error's kind.
func (e *CLIError) Is(target error) bool {
	return e.Kind != nil && target == e.Kind
}

// Format returns a nicely formatted error message
func (e *CLIError) Format() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Error: %s\n", e.Title))

	if e.Message != "" {
		sb.WriteString(fmt.Sprintf("\n  %s\n", e.Message))
	}
	if e.Context != "" {
		sb.WriteString(fmt.Sprintf("\n  %s\n", e.Context))
	}
	if e.Err != nil {
		sb.WriteString(fmt.Sprintf("\n  Cause: %v\n", e.Err))
	}

	if len(e.Causes) > 0 {
		sb.WriteString("\n  Possible causes:\n")
		for _, cause := range e.Causes {
			sb.WriteString(fmt.Sprintf("    • %s\n", cause))
		}
	}

	if len(e.Suggestions) > 0 {
		sb.WriteString("\n  Try:\n")
		for _, sug := range e.Suggestions {
			sb.WriteString(fmt.Sprintf("    $ %s\n", sug))
		}
	}

	return sb.String()
}

// NewError creates a new CLIError of the given kind
func NewError(kind error, title string) *CLIError {
	return &CLIError{Kind: kind, Title: title}
}

// WithMessage adds a detailed message
func (e *CLIError) WithMessage(msg string) *CLIError {
	e.Message = msg
	return e
}

// WithContext adds context about what was being attempted
func (e *CLIError) WithContext(ctx string) *CLIError {
	e.Context = ctx
	return e
}

// WithCauses adds possible causes
func (e *CLIError) WithCauses(causes ...string) *CLIError {
	e.Causes = append(e.Causes, causes...)
	return e
}

// WithSuggestion adds an actionable suggestion
func (e *CLIError) WithSuggestion(sug string) *CLIError {
	e.Suggestions = append(e.Suggestions, sug)
	return e
}

// WithSuggestions adds multiple suggestions
func (e *CLIError) WithSuggestions(sugs ...string) *CLIError {
	e.Suggestions = append(e.Suggestions, sugs...)
	return e
}

// Wrap wraps an underlying error
func (e *CLIError) Wrap(err error) *CLIError {
	e.Err = err
	return e
}

// ══════════════════════════════════════════════════════════════════════════
// Pre-built error constructors for common cases
// ══════════════════════════════════════════════════════════════════════════

// MissingArgumentError returns an error for missing required argument
func MissingArgumentError(argName, example string) *CLIError {
	e := NewError(ErrMissingArgument, fmt.Sprintf("Missing required argument: <%s>", argName))
	if example != "" {
		e.WithSuggestion(example)
	}
	return e
}

// MissingEnvError returns an error for a required environment variable that is unset
func MissingEnvError(name, flag string) *CLIError {
	e := NewError(ErrMissingEnvironment, fmt.Sprintf("Environment variable %s is not set", name)).
		WithSuggestion(fmt.Sprintf("export %s=...", name))
	if flag != "" {
		e.WithSuggestion(fmt.Sprintf("pass --%s instead", flag))
	}
	return e
}

// FileUnreadableError returns a structured error for a file that cannot be read
func FileUnreadableError(path string, err error) *CLIError {
	return NewError(ErrFileUnreadable, "Unable to read file").
		WithContext(path).
		WithCauses(
			"The file does not exist",
			"The file is not readable by the current user",
		).
		Wrap(err)
}

// InvalidPaletteError returns a structured error for a malformed scheme file
func InvalidPaletteError(path, reason string) *CLIError {
	return NewError(ErrInvalidPalette, "Invalid Base16 color scheme").
		WithMessage(reason).
		WithContext(path)
}

// UnknownAliasError returns a structured error for an alias outside the table
func UnknownAliasError(alias string) *CLIError {
	return NewError(ErrUnknownColorAlias, fmt.Sprintf("Unknown color '%s'", alias)).
		WithSuggestions(
			"colorparse --list      # Show every slot and alias",
		)
}

// InvalidCadenceError returns a structured error for an unusable timer configuration
func InvalidCadenceError(reason string) *CLIError {
	return NewError(ErrInvalidCadence, "Invalid pomodoro configuration").
		WithMessage(reason).
		WithSuggestions(
			"pomo config 25 5 30 --blocks 3",
			"pomo stop              # Reset to defaults",
		)
}

// StateIOError returns a structured error for session state failures
func StateIOError(path string, err error) *CLIError {
	return NewError(ErrStateIO, "Cannot access session state").
		WithContext(path).
		WithSuggestions(
			"pomo doctor            # Run diagnostics",
		).
		Wrap(err)
}
