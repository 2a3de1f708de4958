package domain

// Button is a rendering hint passed through to the platform verbatim.
type Button struct {
	Title string `json:"title"`
	URL   string `json:"url,omitempty"`
	Hide  bool   `json:"hide,omitempty"`
}

// Response is the output of one dialog step.
//
// Invariant: State always contains StateKeyScene, equal to the identity of
// the scene that produced the response. That key is what makes the next turn
// resolvable.
type Response struct {
	Text       string
	TTS        string
	Card       map[string]any
	Buttons    []Button
	Directives map[string]any
	EndSession bool

	// State is the block the platform will echo back on the next turn.
	State map[string]any
}

// Scene returns the scene identity persisted in the response state.
func (r *Response) Scene() string {
	id, _ := r.State[StateKeyScene].(string)
	return id
}
