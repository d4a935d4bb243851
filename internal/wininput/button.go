package wininput

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidButton indicates a MouseButton outside {MouseLeft, MouseRight}.
var ErrInvalidButton = errors.New("invalid mouse button")

// MouseButton selects which mouse button a click targets.
// Only MouseLeft and MouseRight are valid.
type MouseButton uint8

const (
	// MouseLeft is the left mouse button.
	MouseLeft MouseButton = iota
	// MouseRight is the right mouse button.
	MouseRight
)

// ParseMouseButton converts "left" or "right" into a MouseButton.
func ParseMouseButton(name string) (MouseButton, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "left":
		return MouseLeft, nil
	case "right":
		return MouseRight, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidButton, name)
	}
}

// Valid reports whether b is one of the defined buttons.
func (b MouseButton) Valid() bool {
	return b == MouseLeft || b == MouseRight
}

// String returns the lowercase button name.
func (b MouseButton) String() string {
	switch b {
	case MouseLeft:
		return "left"
	case MouseRight:
		return "right"
	default:
		return fmt.Sprintf("MouseButton(%d)", uint8(b))
	}
}

// flags returns the press and release transitions for b.
func (b MouseButton) flags() (down, up MouseFlags, err error) {
	switch b {
	case MouseLeft:
		return MouseLeftDown, MouseLeftUp, nil
	case MouseRight:
		return MouseRightDown, MouseRightUp, nil
	default:
		return 0, 0, fmt.Errorf("%w: %d", ErrInvalidButton, uint8(b))
	}
}
