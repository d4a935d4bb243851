//go:build windows

package wininput

import (
	"fmt"
	"unsafe"

	"github.com/lxn/win"
	"golang.org/x/sys/windows"
)

// Calls go through lazy procs so each failure carries the errno captured by the call itself.
var (
	user32           = windows.NewLazySystemDLL("user32.dll")
	procSendInput    = user32.NewProc("SendInput")
	procSetCursorPos = user32.NewProc("SetCursorPos")
	procGetCursorPos = user32.NewProc("GetCursorPos")
)

// WinPlatform injects input using user32.
type WinPlatform struct{}

// NewPlatform returns the Windows input platform.
func NewPlatform() (Platform, error) {
	for _, proc := range []*windows.LazyProc{procSendInput, procSetCursorPos, procGetCursorPos} {
		if err := proc.Find(); err != nil {
			return nil, fmt.Errorf("load %s: %w", proc.Name, err)
		}
	}
	return &WinPlatform{}, nil
}

// SetCursorPos moves the cursor to an absolute screen coordinate.
func (w *WinPlatform) SetCursorPos(x, y int) error {
	r1, _, callErr := procSetCursorPos.Call(uintptr(int32(x)), uintptr(int32(y)))
	if r1 == 0 {
		return callError("SetCursorPos", callErr)
	}
	return nil
}

// CursorPos returns the current cursor position.
func (w *WinPlatform) CursorPos() (int, int, error) {
	var pt win.POINT
	r1, _, callErr := procGetCursorPos.Call(uintptr(unsafe.Pointer(&pt)))
	if r1 == 0 {
		return 0, 0, callError("GetCursorPos", callErr)
	}
	return int(pt.X), int(pt.Y), nil
}

// MouseEvent dispatches a single mouse button event.
func (w *WinPlatform) MouseEvent(flags MouseFlags) error {
	in := win.MOUSE_INPUT{Type: win.INPUT_MOUSE, Mi: win.MOUSEINPUT{DwFlags: uint32(flags)}}
	return sendInput(unsafe.Pointer(&in))
}

// KeyEvent dispatches a single virtual-key event.
func (w *WinPlatform) KeyEvent(vk uint8, flags KeyFlags) error {
	in := win.KEYBD_INPUT{Type: win.INPUT_KEYBOARD, Ki: win.KEYBDINPUT{WVk: uint16(vk), DwFlags: uint32(flags)}}
	return sendInput(unsafe.Pointer(&in))
}

// sendInput submits one INPUT record and reports whether it was inserted.
// A zero return without an errno means another thread blocked the input.
func sendInput(in unsafe.Pointer) error {
	n, _, callErr := procSendInput.Call(1, uintptr(in), inputSize)
	if n == 1 {
		return nil
	}
	if errno, ok := callErr.(windows.Errno); ok && errno != 0 {
		return fmt.Errorf("SendInput: %w", errno)
	}
	return fmt.Errorf("SendInput: %w", ErrInputBlocked)
}

// callError wraps the errno returned by a failed proc call.
func callError(call string, callErr error) error {
	if errno, ok := callErr.(windows.Errno); ok && errno != 0 {
		return fmt.Errorf("%s: %w", call, errno)
	}
	return fmt.Errorf("%s failed", call)
}

// inputSize is sizeof(INPUT); win.KEYBDINPUT carries its own union padding so both records match it.
var inputSize = unsafe.Sizeof(win.MOUSE_INPUT{})
