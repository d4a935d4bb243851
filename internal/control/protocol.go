package control

// Message is a control websocket payload.
//
// X and Y are absolute screen pixels unless Display is set, in which case they
// are normalized [0..1] coordinates inside that 1-based display.
type Message struct {
	T       string  `json:"t"`
	ID      int     `json:"id,omitempty"`
	X       float64 `json:"x,omitempty"`
	Y       float64 `json:"y,omitempty"`
	Display int     `json:"display,omitempty"`
	Button  string  `json:"button,omitempty"`
	Key     string  `json:"key,omitempty"`
	Enabled *bool   `json:"enabled,omitempty"`
}

// Reply acknowledges a single Message.
type Reply struct {
	ID    int    `json:"id,omitempty"`
	T     string `json:"t"`
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
	X     *int   `json:"x,omitempty"`
	Y     *int   `json:"y,omitempty"`
}
