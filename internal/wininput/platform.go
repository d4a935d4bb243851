// Package wininput injects mouse and keyboard input through the Windows input APIs.
package wininput

import "errors"

// ErrUnsupported indicates WinAPI input injection is not available.
var ErrUnsupported = errors.New("wininput is only supported on Windows")

// ErrInputBlocked indicates the platform accepted the call but inserted no events.
// Windows reports this without an error code when UIPI or a secure desktop blocks input.
var ErrInputBlocked = errors.New("input was blocked by the platform")

// MouseFlags selects a mouse button transition. Values match MOUSEEVENTF_*.
type MouseFlags uint32

const (
	// MouseLeftDown presses the left button.
	MouseLeftDown MouseFlags = 0x0002
	// MouseLeftUp releases the left button.
	MouseLeftUp MouseFlags = 0x0004
	// MouseRightDown presses the right button.
	MouseRightDown MouseFlags = 0x0008
	// MouseRightUp releases the right button.
	MouseRightUp MouseFlags = 0x0010
)

// KeyFlags selects a key transition. Values match KEYEVENTF_*.
type KeyFlags uint32

const (
	// KeyDown presses a key.
	KeyDown KeyFlags = 0
	// KeyUp releases a key.
	KeyUp KeyFlags = 0x0002
)

// Platform is the raw input-injection surface of the host OS.
// Every method is a single platform call with no sequencing or delay.
type Platform interface {
	SetCursorPos(x, y int) error
	CursorPos() (x, y int, err error)
	MouseEvent(flags MouseFlags) error
	KeyEvent(vk uint8, flags KeyFlags) error
}

// String returns the event name used in logs.
func (f MouseFlags) String() string {
	switch f {
	case MouseLeftDown:
		return "left_down"
	case MouseLeftUp:
		return "left_up"
	case MouseRightDown:
		return "right_down"
	case MouseRightUp:
		return "right_up"
	default:
		return "unknown"
	}
}

// String returns the event name used in logs.
func (f KeyFlags) String() string {
	if f&KeyUp != 0 {
		return "key_up"
	}
	return "key_down"
}
