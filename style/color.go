// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package style

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gogpu/gg"
)

// ErrBadColor is returned when a color string cannot be parsed.
var ErrBadColor = errors.New("style: bad color")

// Color is a straight-alpha RGBA color with components in [0, 1].
//
// In configuration files colors are written the CSS way: "#0f1419",
// "#rrggbbaa", "rgb(148, 163, 184)" or "rgba(148, 163, 184, 0.03)".
type Color gg.RGBA

// RGBA8 returns a color from 8-bit channels and a [0, 1] alpha.
func RGBA8(r, g, b uint8, a float64) Color {
	return Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255, A: a}
}

// RGBA returns c as a gg color.
func (c Color) RGBA() gg.RGBA { return gg.RGBA(c) }

// WithAlpha returns c with its alpha multiplied by a.
func (c Color) WithAlpha(a float64) Color {
	c.A *= a
	return c
}

// ParseColor parses a CSS-style hex, rgb() or rgba() color.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	switch {
	case strings.HasPrefix(s, "#"):
		switch len(s) - 1 {
		case 3, 4, 6, 8:
		default:
			return Color{}, fmt.Errorf("%w: %q", ErrBadColor, s)
		}
		if _, err := strconv.ParseUint(s[1:], 16, 32); err != nil {
			return Color{}, fmt.Errorf("%w: %q", ErrBadColor, s)
		}
		return Color(gg.Hex(s)), nil
	case strings.HasPrefix(s, "rgba(") && strings.HasSuffix(s, ")"):
		return parseFunc(s, s[5:len(s)-1], 4)
	case strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")"):
		return parseFunc(s, s[4:len(s)-1], 3)
	}
	return Color{}, fmt.Errorf("%w: %q", ErrBadColor, s)
}

func parseFunc(orig, args string, n int) (Color, error) {
	parts := strings.Split(args, ",")
	if len(parts) != n {
		return Color{}, fmt.Errorf("%w: %q: want %d components", ErrBadColor, orig, n)
	}
	var v [4]float64
	v[3] = 1
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return Color{}, fmt.Errorf("%w: %q: %w", ErrBadColor, orig, err)
		}
		v[i] = f
	}
	for i := range 3 {
		if v[i] < 0 || v[i] > 255 {
			return Color{}, fmt.Errorf("%w: %q: channel out of range", ErrBadColor, orig)
		}
	}
	return Color{R: v[0] / 255, G: v[1] / 255, B: v[2] / 255, A: v[3]}, nil
}

// MustParseColor is like ParseColor but panics on error.
func MustParseColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// String formats c as rgba().
func (c Color) String() string {
	return fmt.Sprintf("rgba(%d, %d, %d, %s)",
		to8(c.R), to8(c.G), to8(c.B), strconv.FormatFloat(c.A, 'f', -1, 64))
}

func to8(v float64) int {
	return int(v*255 + 0.5)
}

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Validate checks that every component lies in [0, 1].
func (c Color) Validate() error {
	for _, v := range [...]float64{c.R, c.G, c.B, c.A} {
		if !(v >= 0 && v <= 1) {
			return fmt.Errorf("%w: component %v outside [0, 1]", ErrBadColor, v)
		}
	}
	return nil
}
