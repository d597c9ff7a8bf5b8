package console

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidAttribute is returned by ParseAttribute for unparsable input.
var ErrInvalidAttribute = errors.New("invalid text attribute")

// Attribute is a console text attribute word. The low byte holds the
// foreground (bits 0-3) and background (bits 4-7) colors; the high byte
// holds style flags.
type Attribute uint16

const (
	FgBlue      Attribute = 0x0001
	FgGreen     Attribute = 0x0002
	FgRed       Attribute = 0x0004
	FgIntensity Attribute = 0x0008
	BgBlue      Attribute = 0x0010
	BgGreen     Attribute = 0x0020
	BgRed       Attribute = 0x0040
	BgIntensity Attribute = 0x0080

	ReverseVideo Attribute = 0x4000
	Underscore   Attribute = 0x8000

	// Plain is white on the default background, the state a console
	// starts in and the fallback when the current state is unknown.
	Plain = FgRed | FgGreen | FgBlue

	// ForegroundMask selects the foreground bits of an Attribute.
	ForegroundMask Attribute = 0x000f
)

// WithForeground clears the foreground bits of a and ORs fg over the
// result. Background bits in fg are OR-ed into a's background.
func (a Attribute) WithForeground(fg Attribute) Attribute {
	return fg | (a &^ ForegroundMask)
}

// Foreground returns the foreground bits.
func (a Attribute) Foreground() Attribute {
	return a & ForegroundMask
}

// Background returns the background bits shifted down into the
// foreground position.
func (a Attribute) Background() Attribute {
	return (a >> 4) & ForegroundMask
}

var colorNames = [8]string{"black", "blue", "green", "cyan", "red", "magenta", "yellow", "white"}

// String renders a in the form accepted by ParseAttribute, e.g.
// "intense white on_red".
func (a Attribute) String() string {
	var words []string
	if a&Underscore != 0 {
		words = append(words, "underline")
	}
	if a&ReverseVideo != 0 {
		words = append(words, "reverse")
	}
	fg := a.Foreground()
	if fg&FgIntensity != 0 {
		words = append(words, "intense")
	}
	words = append(words, colorNames[fg&^FgIntensity])
	if bg := a.Background(); bg != 0 {
		if bg&FgIntensity != 0 {
			words = append(words, "on_intense_"+colorNames[bg&^FgIntensity])
		} else {
			words = append(words, "on_"+colorNames[bg])
		}
	}
	return strings.Join(words, " ")
}

// MarshalText implements encoding.TextMarshaler.
func (a Attribute) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Attribute) UnmarshalText(text []byte) error {
	parsed, err := ParseAttribute(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// ParseAttribute parses either a numeric attribute ("0x4f", "79") or a
// space separated description such as "intense yellow" or
// "intense white on_red". Words may appear in any order; the last color
// word wins.
func ParseAttribute(s string) (Attribute, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return 0, fmt.Errorf("%w: empty", ErrInvalidAttribute)
	}
	if n, err := strconv.ParseUint(s, 0, 16); err == nil {
		return Attribute(n), nil
	}

	var a Attribute
	for _, word := range strings.Fields(s) {
		switch {
		case word == "intense" || word == "bright" || word == "bold":
			a |= FgIntensity
		case word == "underline":
			a |= Underscore
		case word == "reverse":
			a |= ReverseVideo
		case strings.HasPrefix(word, "on_intense_"):
			c, ok := colorIndex(strings.TrimPrefix(word, "on_intense_"))
			if !ok {
				return 0, fmt.Errorf("%w: unknown color %q", ErrInvalidAttribute, word)
			}
			a = a&^0x00f0 | (c|FgIntensity)<<4
		case strings.HasPrefix(word, "on_"):
			c, ok := colorIndex(strings.TrimPrefix(word, "on_"))
			if !ok {
				return 0, fmt.Errorf("%w: unknown color %q", ErrInvalidAttribute, word)
			}
			a = a&^0x00f0 | c<<4
		default:
			c, ok := colorIndex(word)
			if !ok {
				return 0, fmt.Errorf("%w: unknown word %q", ErrInvalidAttribute, word)
			}
			a = a&^0x0007 | c
		}
	}
	return a, nil
}

func colorIndex(name string) (Attribute, bool) {
	for i, n := range colorNames {
		if n == name {
			return Attribute(i), true
		}
	}
	return 0, false
}
