package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/imgajeed76/pomo/internal/util"
	"github.com/joho/godotenv"
)

// Environment variables read by pomo and colorparse
const (
	EnvColorScheme     = "COLOR_SCHEME"
	EnvColorSchemesDir = "COLOR_SCHEMES_DIR"
	EnvStateFile       = "POMO_STATE_FILE"
	EnvDebug           = "POMO_DEBUG"
	EnvNoColor         = "POMO_NO_COLOR"
)

// Env is a snapshot of the process environment taken once at startup and
// handed to commands explicitly.
type Env struct {
	vars map[string]string
}

// NewEnv builds an Env from explicit values.
func NewEnv(vars map[string]string) Env {
	m := make(map[string]string, len(vars))
	for k, v := range vars {
		m[k] = v
	}
	return Env{vars: m}
}

// LoadEnv captures the process environment. Values from dotenv files are
// layered underneath it: a variable exported in the shell always wins, and
// later files override earlier ones.
func LoadEnv(envFiles ...string) (Env, error) {
	m := make(map[string]string)

	for _, path := range envFiles {
		vals, err := godotenv.Read(path)
		if err != nil {
			return Env{}, util.FileUnreadableError(path, err).
				WithCauses("The file is not in KEY=value dotenv format")
		}
		for k, v := range vals {
			m[k] = v
		}
	}

	for _, kv := range os.Environ() {
		k, v, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		m[k] = v
	}
	return Env{vars: m}, nil
}

// Lookup returns the value of key and whether it is set.
func (e Env) Lookup(key string) (string, bool) {
	v, ok := e.vars[key]
	return v, ok
}

// Get returns the value of key, or "" when unset.
func (e Env) Get(key string) string {
	return e.vars[key]
}

// Require returns the value of key or a structured missing-variable error.
// flag names the command-line flag that can stand in for the variable.
func (e Env) Require(key, flag string) (string, error) {
	v, ok := e.vars[key]
	if !ok || v == "" {
		return "", util.MissingEnvError(key, flag)
	}
	return v, nil
}

// Bool reports whether key is set to a true value ("1", "true", "yes").
func (e Env) Bool(key string) bool {
	v := strings.TrimSpace(strings.ToLower(e.vars[key]))
	if v == "yes" || v == "on" {
		return true
	}
	b, err := strconv.ParseBool(v)
	return err == nil && b
}

// Has reports whether key is set at all, even to the empty string.
func (e Env) Has(key string) bool {
	_, ok := e.vars[key]
	return ok
}
