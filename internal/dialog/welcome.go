package dialog

import (
	"context"

	"github.com/RasimKhusaenov/alice-todoist-integration/pkg/domain"
)

// SceneWelcome is the identity of the initial scene.
const SceneWelcome = "Welcome"

// Welcome greets the user. It has no local transitions; the shared global
// intents are the only way out.
type Welcome struct {
	todoistScene
}

func NewWelcome(deps Deps) *Welcome {
	return &Welcome{todoistScene{deps: deps.withDefaults()}}
}

func (s *Welcome) ID() string { return SceneWelcome }

func (s *Welcome) Reply(ctx context.Context, turn *domain.Turn) *domain.Response {
	text := "Привет! Я помогу управлять вашими задачами в Todoist."
	// The tts variant carries a stress mark so the voice lands on the right syllable.
	tts := "Привет! Я помогу управлять вашими задачами в Tod+oist."
	return newResponse(s.ID(), text, tts, nil)
}

func (s *Welcome) LocalIntents(turn *domain.Turn) Scene { return nil }

func (s *Welcome) Fallback(turn *domain.Turn) *domain.Response {
	return fallbackResponse(s.ID())
}
