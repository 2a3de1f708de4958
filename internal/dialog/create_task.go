package dialog

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/RasimKhusaenov/alice-todoist-integration/pkg/dates"
	"github.com/RasimKhusaenov/alice-todoist-integration/pkg/domain"
)

// SceneCreateTask is the identity of the task creation scene.
const SceneCreateTask = "CreateTask"

const askWhatText = "Что добавить в список задач?"

// CreateTask creates a task through the backend and confirms it, phrasing
// the due date relatively when one was recognized.
type CreateTask struct {
	todoistScene
}

func NewCreateTask(deps Deps) *CreateTask {
	return &CreateTask{todoistScene{deps: deps.withDefaults()}}
}

func (s *CreateTask) ID() string { return SceneCreateTask }

func (s *CreateTask) Reply(ctx context.Context, turn *domain.Turn) *domain.Response {
	content := extractContent(turn)
	if content == "" {
		return newResponse(s.ID(), askWhatText, "", nil)
	}

	today := s.deps.Now()
	due, err := extractDate(turn, domain.IntentCreateTask, domain.SlotWhen, today)
	if err != nil {
		// The due date is optional; a malformed payload degrades to "no date".
		s.deps.Logger.Warn("due date not resolved", "error", err)
		due = nil
	}

	if _, err := s.deps.Tasks.CreateTask(ctx, content, due); err != nil {
		s.deps.Logger.Error("creating task failed", "error", err)
		return newResponse(s.ID(), backendDownText, "", nil)
	}

	text := fmt.Sprintf("Добавила задачу «%s».", content)
	if due != nil {
		text = fmt.Sprintf("Добавила задачу «%s» на %s.", content, dates.Humanize(*due, today))
	}
	return newResponse(s.ID(), text, "", nil)
}

func (s *CreateTask) LocalIntents(turn *domain.Turn) Scene { return nil }

func (s *CreateTask) Fallback(turn *domain.Turn) *domain.Response {
	return fallbackResponse(s.ID())
}

// extractContent reads the free-text slot and capitalizes its first letter.
func extractContent(turn *domain.Turn) string {
	slot, ok := turn.Slot(domain.IntentCreateTask, domain.SlotWhat)
	if !ok {
		return ""
	}
	raw, _ := slot.Value.(string)
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	runes := []rune(raw)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
