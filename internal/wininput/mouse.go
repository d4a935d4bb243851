package wininput

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// SetCursorPos moves the cursor to absolute screen coordinates.
// Coordinates are not validated; the platform decides what off-screen values do.
func (i *Injector) SetCursorPos(x, y int) error {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.report("set_cursor_pos", i.moveTo(x, y), zap.Int("x", x), zap.Int("y", y))
}

// CursorPos returns the current cursor position.
func (i *Injector) CursorPos() (int, int, error) {
	i.mu.Lock()
	defer i.mu.Unlock()
	x, y, err := i.platform.CursorPos()
	if err != nil {
		return 0, 0, i.report("cursor_pos", fmt.Errorf("cursor pos: %w", err))
	}
	return x, y, nil
}

// DragAndDrop presses the left button, moves to (x, y) and releases.
// The whole sequence always runs so the button is never left held;
// failures from individual steps are joined into the returned error.
func (i *Injector) DragAndDrop(x, y int) error {
	i.mu.Lock()
	defer i.mu.Unlock()

	var errs []error
	if err := i.mouse(MouseLeftDown); err != nil {
		errs = append(errs, err)
	}
	i.pause(i.delays.DragPress)
	if err := i.moveTo(x, y); err != nil {
		errs = append(errs, err)
	}
	i.pause(i.delays.DragSettle)
	if err := i.mouse(MouseLeftUp); err != nil {
		errs = append(errs, err)
	}
	return i.report("drag_and_drop", errors.Join(errs...), zap.Int("x", x), zap.Int("y", y))
}

// ClickMouseButton presses and releases button with the configured hold delay.
func (i *Injector) ClickMouseButton(button MouseButton) error {
	down, up, err := button.flags()
	if err != nil {
		return i.report("click", err, zap.Stringer("button", button))
	}

	i.mu.Lock()
	defer i.mu.Unlock()
	return i.report("click", i.click(down, up), zap.Stringer("button", button))
}

// ClickMouseButtonLeft clicks the left button.
func (i *Injector) ClickMouseButtonLeft() error {
	return i.ClickMouseButton(MouseLeft)
}

// ClickMouseButtonRight clicks the right button.
func (i *Injector) ClickMouseButtonRight() error {
	return i.ClickMouseButton(MouseRight)
}

// click runs a press, hold, release sequence. The caller holds i.mu.
func (i *Injector) click(down, up MouseFlags) error {
	var errs []error
	if err := i.mouse(down); err != nil {
		errs = append(errs, err)
	}
	i.pause(i.delays.ClickHold)
	if err := i.mouse(up); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// moveTo forwards an absolute cursor move.
func (i *Injector) moveTo(x, y int) error {
	if err := i.platform.SetCursorPos(x, y); err != nil {
		return fmt.Errorf("set cursor pos (%d,%d): %w", x, y, err)
	}
	return nil
}

// mouse forwards a single button transition.
func (i *Injector) mouse(flags MouseFlags) error {
	if err := i.platform.MouseEvent(flags); err != nil {
		return fmt.Errorf("mouse %s: %w", flags, err)
	}
	return nil
}
