//go:build !windows

package display

import "errors"

// ErrUnsupported indicates display enumeration is not available.
var ErrUnsupported = errors.New("display enumeration is only supported on Windows")

// List returns ErrUnsupported on non-Windows platforms.
func List() ([]Display, error) {
	return nil, ErrUnsupported
}

// VirtualScreen returns ErrUnsupported on non-Windows platforms.
func VirtualScreen() (Rect, error) {
	return Rect{}, ErrUnsupported
}
