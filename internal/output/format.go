package output

import (
	"os"
	"strings"
	"sync"
)

// EnvOutput selects the default output format for commands that support it.
const EnvOutput = "BASKET_OUTPUT"

var (
	formatMu sync.RWMutex
	format   = "text"
)

// DefaultFormat returns the preferred output format unless BASKET_OUTPUT is set to a supported value.
func DefaultFormat(preferred string, allowed []string) string {
	env := strings.TrimSpace(os.Getenv(EnvOutput))
	if env == "" {
		return preferred
	}

	env = strings.ToLower(env)
	for _, option := range allowed {
		if env == option {
			return env
		}
	}

	return preferred
}

// SetFormat records the format chosen for this run.
func SetFormat(f string) {
	formatMu.Lock()
	defer formatMu.Unlock()

	format = strings.ToLower(strings.TrimSpace(f))
}

// IsJSONMode reports whether machine-readable output was requested.
func IsJSONMode() bool {
	formatMu.RLock()
	defer formatMu.RUnlock()

	return format == "json"
}
