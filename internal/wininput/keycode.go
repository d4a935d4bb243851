package wininput

import (
	"fmt"
	"strconv"
	"strings"
)

// keyNames maps lowercase key names to Windows virtual-key codes.
var keyNames = map[string]uint8{
	"backspace":  0x08,
	"tab":        0x09,
	"enter":      0x0D,
	"return":     0x0D,
	"shift":      0x10,
	"ctrl":       0x11,
	"control":    0x11,
	"alt":        0x12,
	"pause":      0x13,
	"capslock":   0x14,
	"esc":        0x1B,
	"escape":     0x1B,
	"space":      0x20,
	"pageup":     0x21,
	"pagedown":   0x22,
	"end":        0x23,
	"home":       0x24,
	"left":       0x25,
	"up":         0x26,
	"right":      0x27,
	"down":       0x28,
	"insert":     0x2D,
	"delete":     0x2E,
	"win":        0x5B,
	"lwin":       0x5B,
	"rwin":       0x5C,
	"apps":       0x5D,
	"numlock":    0x90,
	"scrolllock": 0x91,
	"volumemute": 0xAD,
	"volumedown": 0xAE,
	"volumeup":   0xAF,
}

// ParseKey resolves a key name or numeric code to a virtual-key code.
// Accepted forms: "0x41", "65", a single letter or digit, "f1".."f24",
// and the names in keyNames.
func ParseKey(s string) (uint8, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" {
		return 0, fmt.Errorf("empty key")
	}
	if vk, ok := keyNames[name]; ok {
		return vk, nil
	}
	if len(name) == 1 {
		c := name[0]
		switch {
		case c >= 'a' && c <= 'z':
			return c - 'a' + 'A', nil
		case c >= '0' && c <= '9':
			return c, nil
		}
	}
	if n, ok := strings.CutPrefix(name, "f"); ok {
		if idx, err := strconv.Atoi(n); err == nil && idx >= 1 && idx <= 24 {
			return uint8(0x70 + idx - 1), nil
		}
	}
	code, err := strconv.ParseUint(name, 0, 8)
	if err != nil {
		return 0, fmt.Errorf("unknown key %q", s)
	}
	return uint8(code), nil
}
