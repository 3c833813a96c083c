// Package colors holds the color record model shared by the store, the
// lookup service and its clients.
package colors

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	// ErrNotFound is returned when no record matches the requested name.
	ErrNotFound = errors.New("color not found")
	// ErrInvalidHex is returned for anything that is not a 6-digit hex code.
	ErrInvalidHex = errors.New("invalid hex color")
	// ErrDuplicateName is returned when a seed list repeats a name.
	ErrDuplicateName = errors.New("duplicate color name")
	// ErrEmptyName is returned when a seed record has no name.
	ErrEmptyName = errors.New("empty color name")
)

// DefaultHex is the display color before anything has been loaded.
const DefaultHex = "#1abc9c"

// Record is a named color as stored and served on the wire.
type Record struct {
	Name string `json:"name" yaml:"name"`
	Hex  string `json:"hex" yaml:"hex"`
}

// RGB returns the decoded channels of the record's hex code.
func (r Record) RGB() (RGB, error) {
	return ParseHex(r.Hex)
}

// RGB is a decoded 24-bit color.
type RGB struct {
	R, G, B uint8
}

// String renders the CSS computed-style form, e.g. "rgb(26, 188, 156)".
func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// Hex renders the lowercase "#rrggbb" form.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

var hexInText = regexp.MustCompile(`#([0-9a-fA-F]{6})`)

// ParseHex decodes "#rrggbb" or "rrggbb" (any case), two digits per channel.
func ParseHex(s string) (RGB, error) {
	v := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(v) != 6 {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}

	var ch [3]uint8
	for i := range ch {
		n, err := strconv.ParseUint(v[i*2:i*2+2], 16, 8)
		if err != nil {
			return RGB{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
		}
		ch[i] = uint8(n)
	}
	return RGB{R: ch[0], G: ch[1], B: ch[2]}, nil
}

// NormalizeHex validates s and returns it as "#" plus lowercase digits.
func NormalizeHex(s string) (string, error) {
	c, err := ParseHex(s)
	if err != nil {
		return "", err
	}
	return c.Hex(), nil
}

// ExtractHex finds the first "#RRGGBB" in text and returns it with the
// leading '#'.
func ExtractHex(text string) (string, bool) {
	m := hexInText.FindString(text)
	if m == "" {
		return "", false
	}
	return m, true
}
