//go:build windows

package display

import (
	"errors"
	"fmt"
	"sync"
	"unsafe"

	"github.com/lxn/win"
	"golang.org/x/sys/windows"
)

var (
	user32                  = windows.NewLazySystemDLL("user32.dll")
	procEnumDisplayMonitors = user32.NewProc("EnumDisplayMonitors")

	// enumCallback is created once; callback slots are never released by the runtime.
	enumCallback = windows.NewCallback(enumProc)

	// enumMu guards enumList for the duration of one enumeration.
	enumMu   sync.Mutex
	enumList []Display
)

// List enumerates attached displays in EnumDisplayMonitors order.
func List() ([]Display, error) {
	enumMu.Lock()
	defer enumMu.Unlock()

	enumList = nil
	r1, _, callErr := procEnumDisplayMonitors.Call(0, 0, enumCallback, 0)
	list := enumList
	enumList = nil
	if r1 == 0 {
		if errno, ok := callErr.(windows.Errno); ok && errno != 0 {
			return nil, fmt.Errorf("EnumDisplayMonitors: %w", errno)
		}
		return nil, errors.New("EnumDisplayMonitors failed")
	}
	if len(list) == 0 {
		return nil, errors.New("no displays detected")
	}
	return list, nil
}

// VirtualScreen returns the bounding rectangle of all displays.
func VirtualScreen() (Rect, error) {
	r := Rect{
		X: int(win.GetSystemMetrics(win.SM_XVIRTUALSCREEN)),
		Y: int(win.GetSystemMetrics(win.SM_YVIRTUALSCREEN)),
		W: int(win.GetSystemMetrics(win.SM_CXVIRTUALSCREEN)),
		H: int(win.GetSystemMetrics(win.SM_CYVIRTUALSCREEN)),
	}
	if r.W <= 0 || r.H <= 0 {
		return Rect{}, errors.New("GetSystemMetrics returned an empty virtual screen")
	}
	return r, nil
}

// enumProc appends one monitor to enumList. It runs synchronously inside List, which holds enumMu.
func enumProc(hMonitor, hdc, rect, lparam uintptr) uintptr {
	var info win.MONITORINFO
	info.CbSize = uint32(unsafe.Sizeof(info))
	if !win.GetMonitorInfo(win.HMONITOR(hMonitor), &info) {
		return 1
	}

	rc := info.RcMonitor
	enumList = append(enumList, Display{
		Index: len(enumList) + 1,
		Bounds: Rect{
			X: int(rc.Left),
			Y: int(rc.Top),
			W: int(rc.Right - rc.Left),
			H: int(rc.Bottom - rc.Top),
		},
		Primary: info.DwFlags&win.MONITORINFOF_PRIMARY != 0,
	})
	return 1
}
