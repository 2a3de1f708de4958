// Package dialog implements the conversational state machine: the Scene
// contract, the concrete scenes, the static registry, and the engine that
// drives one turn through them.
package dialog

import (
	"context"
	"log/slog"
	"time"

	"github.com/RasimKhusaenov/alice-todoist-integration/internal/logging"
	"github.com/RasimKhusaenov/alice-todoist-integration/pkg/domain"
	"github.com/RasimKhusaenov/alice-todoist-integration/pkg/ports"
)

// Deps carries the external collaborators a scene may consult while
// rendering. Scenes receive them by injection; nothing here is global.
type Deps struct {
	Tasks  ports.TaskService
	Cache  ports.TaskCache
	Now    func() time.Time
	Logger *slog.Logger
}

func (d Deps) withDefaults() Deps {
	if d.Now == nil {
		d.Now = time.Now
	}
	if d.Logger == nil {
		d.Logger = logging.NewNop()
	}
	return d
}

// Scene is one node of the dialog graph.
type Scene interface {
	// ID is the stable identity persisted in session state and used as the
	// registry key. Equal across processes and restarts.
	ID() string

	// Reply renders the scene's output for the current turn. It may consult
	// the task backend; a failure there is rendered as a degraded reply, it
	// never aborts the turn.
	Reply(ctx context.Context, turn *domain.Turn) *domain.Response

	// LocalIntents is the scene-specific transition rule, evaluated first.
	// Returns nil when nothing matches.
	LocalIntents(turn *domain.Turn) Scene

	// GlobalIntents holds transitions shared by the scene family, evaluated
	// only if no local transition matched.
	GlobalIntents(turn *domain.Turn) Scene

	// Fallback renders the fixed "didn't understand" reply with the current
	// scene persisted. It always succeeds.
	Fallback(turn *domain.Turn) *domain.Response
}

// move tries the scene's local transitions, then the global ones.
// Local overrides global so a scene can special-case an intent a sibling
// would otherwise handle generically.
func move(s Scene, turn *domain.Turn) Scene {
	if next := s.LocalIntents(turn); next != nil {
		return next
	}
	return s.GlobalIntents(turn)
}

// todoistScene carries the transitions every scene of this family shares:
// "list my tasks" and "create a task" are reachable from anywhere.
type todoistScene struct {
	deps Deps
}

func (s todoistScene) GlobalIntents(turn *domain.Turn) Scene {
	if turn.HasIntent(domain.IntentListTasks) {
		return NewTasksList(s.deps)
	}
	if turn.HasIntent(domain.IntentCreateTask) {
		return NewCreateTask(s.deps)
	}
	return nil
}

const fallbackText = "Извините, я вас не поняла. Пожалуйста, попробуйте переформулировать вопрос."

// newResponse assembles a Response with the scene identity stamped into the
// state block. Extra state entries are merged in on top.
func newResponse(sceneID, text, tts string, state map[string]any) *domain.Response {
	if tts == "" {
		tts = text
	}
	block := map[string]any{domain.StateKeyScene: sceneID}
	for k, v := range state {
		block[k] = v
	}
	return &domain.Response{Text: text, TTS: tts, State: block}
}

func fallbackResponse(sceneID string) *domain.Response {
	return newResponse(sceneID, fallbackText, "", nil)
}
