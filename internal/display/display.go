// Package display describes screen geometry used to sanity-check cursor targets.
package display

// Rect is a screen rectangle in virtual-desktop pixels.
type Rect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

// Contains reports whether (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && y >= r.Y && x < r.X+r.W && y < r.Y+r.H
}

// Display describes a monitor and its bounds.
type Display struct {
	Index   int  `json:"index"`
	Bounds  Rect `json:"bounds"`
	Primary bool `json:"primary"`
}

// ByIndex returns the display matching the 1-based index.
func ByIndex(list []Display, idx int) (Display, bool) {
	for _, d := range list {
		if d.Index == idx {
			return d, true
		}
	}
	return Display{}, false
}

// Locate returns the display containing (x, y).
func Locate(list []Display, x, y int) (Display, bool) {
	for _, d := range list {
		if d.Bounds.Contains(x, y) {
			return d, true
		}
	}
	return Display{}, false
}
