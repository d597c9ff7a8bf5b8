package console

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownColorMode is returned by ParseColorMode for unknown names.
var ErrUnknownColorMode = errors.New("unknown color mode")

// ColorMode governs whether colorization is attempted.
type ColorMode int

const (
	// Automatic colorizes only when the device is an interactive console.
	Automatic ColorMode = iota
	// Always colorizes regardless of the device probe.
	Always
	// Never disables colorization.
	Never
)

// String returns the string representation of the mode
func (m ColorMode) String() string {
	switch m {
	case Automatic:
		return "automatic"
	case Always:
		return "always"
	case Never:
		return "never"
	default:
		return "unknown"
	}
}

// ShouldColor resolves m against dev. Automatic probes the device once,
// now; the result is not refreshed if the device changes later.
func (m ColorMode) ShouldColor(dev Device) bool {
	switch m {
	case Always:
		return true
	case Never:
		return false
	default:
		return Usable(dev) && dev.IsConsole()
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m ColorMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *ColorMode) UnmarshalText(text []byte) error {
	parsed, err := ParseColorMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// ParseColorMode converts a mode name to a ColorMode. "auto", "on"/"off"
// and "yes"/"no" are accepted as aliases.
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "automatic", "auto", "":
		return Automatic, nil
	case "always", "on", "yes":
		return Always, nil
	case "never", "off", "no":
		return Never, nil
	default:
		return Automatic, fmt.Errorf("%w: %q", ErrUnknownColorMode, s)
	}
}

// AllColorModes returns the canonical mode names, for flag help text.
func AllColorModes() []string {
	return []string{Automatic.String(), Always.String(), Never.String()}
}
