package wininput

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// PressKey presses and immediately releases the virtual key vk.
// The release is sent even if the press fails.
func (i *Injector) PressKey(vk uint8) error {
	i.mu.Lock()
	defer i.mu.Unlock()

	var errs []error
	if err := i.key(vk, KeyDown); err != nil {
		errs = append(errs, err)
	}
	if err := i.key(vk, KeyUp); err != nil {
		errs = append(errs, err)
	}
	return i.report("press_key", errors.Join(errs...), zap.String("key", fmt.Sprintf("0x%02X", vk)))
}

// key forwards a single key transition.
func (i *Injector) key(vk uint8, flags KeyFlags) error {
	if err := i.platform.KeyEvent(vk, flags); err != nil {
		return fmt.Errorf("%s 0x%02X: %w", flags, vk, err)
	}
	return nil
}
