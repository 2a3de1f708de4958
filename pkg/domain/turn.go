package domain

// Slot is a single typed value the NLU layer recognized for an intent.
type Slot struct {
	Type  string `json:"type"`
	Value any    `json:"value"`
}

// Intent is one recognized user intention with its named slots.
type Intent struct {
	Slots map[string]Slot `json:"slots"`
}

// Turn is the input to one dialog step. It is constructed once from the
// incoming webhook payload and treated as read-only afterwards.
type Turn struct {
	// Intents maps intent name to the slots recognized for it.
	Intents map[string]Intent

	// Session holds the state block persisted by the previous turn, as echoed
	// back by the platform. Opaque except for the keys scenes define.
	Session map[string]any

	// SessionID identifies the platform conversation (used for caching).
	SessionID string

	// Utterance is the raw recognized text, kept for logging only.
	Utterance string
}

// HasIntent reports whether the turn carries the named intent.
func (t *Turn) HasIntent(name string) bool {
	_, ok := t.Intents[name]
	return ok
}

// Slot returns the named slot of the named intent.
func (t *Turn) Slot(intent, slot string) (Slot, bool) {
	in, ok := t.Intents[intent]
	if !ok {
		return Slot{}, false
	}
	s, ok := in.Slots[slot]
	return s, ok
}

// SessionValue unwraps session[key]["value"], the shape scenes persist slot
// echoes in. Returns false when the key is absent or not in that shape.
func (t *Turn) SessionValue(key string) (any, bool) {
	raw, ok := t.Session[key]
	if !ok {
		return nil, false
	}
	wrapped, ok := raw.(map[string]any)
	if !ok {
		return nil, false
	}
	v, ok := wrapped["value"]
	return v, ok
}

// SceneID returns the scene identity persisted by the previous turn, or ""
// when the conversation has no prior state.
func (t *Turn) SceneID() string {
	id, _ := t.Session[StateKeyScene].(string)
	return id
}
