package domain

// WebhookRequest is the Alice webhook envelope. Only the fields the dialog
// core reads are mapped; everything else in the payload is ignored.
type WebhookRequest struct {
	Meta struct {
		Locale string `json:"locale"`
	} `json:"meta"`
	Session struct {
		SessionID string `json:"session_id"`
		New       bool   `json:"new"`
	} `json:"session"`
	Request struct {
		Command           string `json:"command"`
		OriginalUtterance string `json:"original_utterance"`
		NLU               struct {
			Intents map[string]Intent `json:"intents"`
		} `json:"nlu"`
	} `json:"request"`
	State struct {
		Session map[string]any `json:"session"`
	} `json:"state"`
	Version string `json:"version"`
}

// Turn builds the read-only dialog input from the envelope.
func (r *WebhookRequest) Turn() *Turn {
	t := &Turn{
		Intents:   r.Request.NLU.Intents,
		Session:   r.State.Session,
		SessionID: r.Session.SessionID,
		Utterance: r.Request.OriginalUtterance,
	}
	if t.Intents == nil {
		t.Intents = map[string]Intent{}
	}
	if t.Session == nil {
		t.Session = map[string]any{}
	}
	return t
}

// WebhookResponse is the outbound Alice envelope.
type WebhookResponse struct {
	Response struct {
		Text       string         `json:"text"`
		TTS        string         `json:"tts"`
		Card       map[string]any `json:"card,omitempty"`
		Buttons    []Button       `json:"buttons,omitempty"`
		Directives map[string]any `json:"directives,omitempty"`
		EndSession bool           `json:"end_session"`
	} `json:"response"`
	SessionState map[string]any `json:"session_state"`
	Version      string         `json:"version"`
}

// Webhook wraps the response into the platform envelope. The session_state
// key carries the scene identity plus whatever else the scene persisted.
func (r *Response) Webhook() WebhookResponse {
	var out WebhookResponse
	out.Response.Text = r.Text
	out.Response.TTS = r.TTS
	out.Response.Card = r.Card
	out.Response.Buttons = r.Buttons
	out.Response.Directives = r.Directives
	out.Response.EndSession = r.EndSession
	out.SessionState = r.State
	out.Version = "1.0"
	return out
}
