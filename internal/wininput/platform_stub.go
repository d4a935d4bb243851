//go:build !windows

package wininput

// NoopPlatform is a placeholder platform for non-Windows builds.
type NoopPlatform struct{}

// NewPlatform returns a non-functional platform on non-Windows systems.
func NewPlatform() (Platform, error) {
	return &NoopPlatform{}, ErrUnsupported
}

// SetCursorPos returns ErrUnsupported.
func (n *NoopPlatform) SetCursorPos(x, y int) error {
	_ = x
	_ = y
	return ErrUnsupported
}

// CursorPos returns ErrUnsupported.
func (n *NoopPlatform) CursorPos() (int, int, error) {
	return 0, 0, ErrUnsupported
}

// MouseEvent returns ErrUnsupported.
func (n *NoopPlatform) MouseEvent(flags MouseFlags) error {
	_ = flags
	return ErrUnsupported
}

// KeyEvent returns ErrUnsupported.
func (n *NoopPlatform) KeyEvent(vk uint8, flags KeyFlags) error {
	_ = vk
	_ = flags
	return ErrUnsupported
}
