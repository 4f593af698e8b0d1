// Package theme manages the persisted light/dark preference.
package theme

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Mode is the display theme.
type Mode string

const (
	Dark  Mode = "dark"
	Light Mode = "light"
)

// PreferenceKey is the store key holding the user's choice.
const PreferenceKey = "themePreference"

// EnvColorScheme lets the user state the host color scheme explicitly.
const EnvColorScheme = "BASKET_COLOR_SCHEME"

// Opposite returns the other mode.
func (m Mode) Opposite() Mode {
	if m == Dark {
		return Light
	}

	return Dark
}

func (m Mode) String() string {
	return string(m)
}

// ParseMode accepts "dark" or "light", case-insensitively.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case Dark:
		return Dark, nil
	case Light:
		return Light, nil
	default:
		return "", fmt.Errorf("invalid theme %q: expected dark or light", s)
	}
}

// fromStored maps a persisted value to a mode. Only "dark" means dark.
func fromStored(value string) Mode {
	if value == string(Dark) {
		return Dark
	}

	return Light
}

// DetectSystem returns the color scheme reported by the host terminal.
func DetectSystem() Mode {
	return detect(os.Getenv)
}

// detect checks BASKET_COLOR_SCHEME, then the COLORFGBG convention
// ("fg;bg" or "fg;extra;bg"). Anything unknown is light.
func detect(getenv func(string) string) Mode {
	if m, err := ParseMode(getenv(EnvColorScheme)); err == nil {
		return m
	}

	fgbg := strings.TrimSpace(getenv("COLORFGBG"))
	if fgbg == "" {
		return Light
	}

	parts := strings.Split(fgbg, ";")

	bg, err := strconv.Atoi(parts[len(parts)-1])
	if err != nil {
		return Light
	}

	// ANSI 0-6 and 8 are dark backgrounds
	if (bg >= 0 && bg <= 6) || bg == 8 {
		return Dark
	}

	return Light
}
