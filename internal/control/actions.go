package control

import (
	"errors"
	"fmt"
	"math"

	"github.com/frudas24/inputkit/internal/display"
	"github.com/frudas24/inputkit/internal/wininput"
)

// ActionType identifies the kind of input action to execute.
type ActionType string

const (
	// ActMove moves the mouse cursor.
	ActMove ActionType = "move"
	// ActClick clicks a mouse button.
	ActClick ActionType = "click"
	// ActDrag drags with the left button to a position.
	ActDrag ActionType = "drag"
	// ActKey presses and releases a virtual key.
	ActKey ActionType = "key"
)

// Action describes a normalized input operation to apply.
type Action struct {
	Type   ActionType
	X      int
	Y      int
	Button wininput.MouseButton
	Key    uint8
}

// errUnknownMessage is returned for message types the server does not handle.
var errUnknownMessage = errors.New("unknown message type")

// BuildAction converts an injecting message into an Action.
// displays is only consulted when msg.Display is set.
func BuildAction(msg Message, displays []display.Display) (Action, error) {
	switch ActionType(msg.T) {
	case ActMove, ActDrag:
		x, y, err := resolvePoint(msg, displays)
		if err != nil {
			return Action{}, err
		}
		return Action{Type: ActionType(msg.T), X: x, Y: y}, nil
	case ActClick:
		name := msg.Button
		if name == "" {
			name = "left"
		}
		button, err := wininput.ParseMouseButton(name)
		if err != nil {
			return Action{}, err
		}
		return Action{Type: ActClick, Button: button}, nil
	case ActKey:
		vk, err := wininput.ParseKey(msg.Key)
		if err != nil {
			return Action{}, err
		}
		return Action{Type: ActKey, Key: vk}, nil
	default:
		return Action{}, fmt.Errorf("%w %q", errUnknownMessage, msg.T)
	}
}

// resolvePoint returns absolute pixels for msg, mapping display-relative input.
func resolvePoint(msg Message, displays []display.Display) (int, int, error) {
	if msg.Display <= 0 {
		return int(math.Round(msg.X)), int(math.Round(msg.Y)), nil
	}
	d, ok := display.ByIndex(displays, msg.Display)
	if !ok {
		return 0, 0, fmt.Errorf("display %d not found", msg.Display)
	}
	x, y := NormToAbs(msg.X, msg.Y, d)
	return x, y, nil
}
