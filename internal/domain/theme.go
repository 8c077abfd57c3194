package domain

import (
	"fmt"
	"strings"
)

// Theme names accepted by config, the settings overlay and the CLI
const (
	ThemeAuto  = "auto"
	ThemeDay   = "day"
	ThemeNight = "night"
)

// ParseTheme normalizes a theme name. Blank means auto.
func ParseTheme(name string) (string, error) {
	switch n := strings.ToLower(strings.TrimSpace(name)); n {
	case "":
		return ThemeAuto, nil
	case ThemeAuto, ThemeDay, ThemeNight:
		return n, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownTheme, name)
	}
}
