// Package testutil provides recording fakes for input-injection tests.
package testutil

import (
	"sync"
	"time"

	"github.com/frudas24/inputkit/internal/wininput"
)

// Call records a single platform event or pause.
type Call struct {
	Name  string
	X     int
	Y     int
	Key   uint8
	Mouse wininput.MouseFlags
	Flags wininput.KeyFlags
	Sleep time.Duration
}

// FakePlatform implements wininput.Platform and records calls for tests.
// Errors are returned by event name, e.g. Errs["left_down"] or Errs["SetCursorPos"].
type FakePlatform struct {
	mu    sync.Mutex
	Calls []Call
	Errs  map[string]error
	X     int
	Y     int
}

// Ensure FakePlatform implements the interface.
var _ wininput.Platform = (*FakePlatform)(nil)

// SetCursorPos records an absolute move and updates the fake cursor.
func (f *FakePlatform) SetCursorPos(x, y int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls = append(f.Calls, Call{Name: "SetCursorPos", X: x, Y: y})
	if err := f.Errs["SetCursorPos"]; err != nil {
		return err
	}
	f.X, f.Y = x, y
	return nil
}

// CursorPos returns the fake cursor without recording a call.
func (f *FakePlatform) CursorPos() (int, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.Errs["CursorPos"]; err != nil {
		return 0, 0, err
	}
	return f.X, f.Y, nil
}

// MouseEvent records a button transition.
func (f *FakePlatform) MouseEvent(flags wininput.MouseFlags) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls = append(f.Calls, Call{Name: flags.String(), Mouse: flags})
	return f.Errs[flags.String()]
}

// KeyEvent records a key transition.
func (f *FakePlatform) KeyEvent(vk uint8, flags wininput.KeyFlags) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls = append(f.Calls, Call{Name: flags.String(), Key: vk, Flags: flags})
	return f.Errs[flags.String()]
}

// Sleep records a pause without blocking. Pass it to wininput.WithSleep.
func (f *FakePlatform) Sleep(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls = append(f.Calls, Call{Name: "Sleep", Sleep: d})
}

// Names returns the recorded call names in order.
func (f *FakePlatform) Names() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	names := make([]string, len(f.Calls))
	for i, c := range f.Calls {
		names[i] = c.Name
	}
	return names
}

// Reset clears recorded calls.
func (f *FakePlatform) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls = nil
}

// NewInjector returns an injector over f that records sleeps instead of blocking.
func (f *FakePlatform) NewInjector(opts ...wininput.Option) *wininput.Injector {
	opts = append([]wininput.Option{wininput.WithSleep(f.Sleep)}, opts...)
	return wininput.New(f, opts...)
}
