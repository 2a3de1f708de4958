package dialog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/RasimKhusaenov/alice-todoist-integration/pkg/domain"
)

// SceneTasksList is the identity of the paged task listing scene.
const SceneTasksList = "TasksList"

const (
	clarifyFilterText = "Уточните, пожалуйста: показать задачи на сегодня или на завтра?"
	backendDownText   = "Не получилось добраться до ваших задач. Попробуйте ещё раз чуть позже."
)

// TasksList walks the filtered task list one task per turn. The position and
// the resolved filter are persisted in the response state, so a follow-up
// "next" intent advances without re-specifying the filter.
type TasksList struct {
	todoistScene
}

func NewTasksList(deps Deps) *TasksList {
	return &TasksList{todoistScene{deps: deps.withDefaults()}}
}

func (s *TasksList) ID() string { return SceneTasksList }

func (s *TasksList) Reply(ctx context.Context, turn *domain.Turn) *domain.Response {
	filter, err := extractFilter(turn, domain.IntentListTasks)
	if errors.Is(err, domain.ErrUnknownFilter) {
		// Never pass an unrecognized filter to the backend; ask instead.
		return newResponse(s.ID(), clarifyFilterText, "", nil)
	}

	paging := turn.HasIntent(domain.IntentNextTask)
	position := 0
	if paging {
		position = extractPosition(turn) + 1
	}

	tasks, err := s.loadTasks(ctx, turn.SessionID, filter, paging)
	if err != nil {
		s.deps.Logger.Error("listing tasks failed", "filter", filter, "error", err)
		return newResponse(s.ID(), backendDownText, "", nil)
	}

	text := s.render(tasks, position, filter)
	return newResponse(s.ID(), text, "", map[string]any{
		domain.StateKeyPosition: map[string]any{"value": position},
		domain.StateKeyTime:     map[string]any{"value": string(filter)},
	})
}

// loadTasks fetches the list from the backend, going through the cache only
// on the paging path so a fresh "list tasks" always sees current data.
func (s *TasksList) loadTasks(ctx context.Context, sessionID string, filter domain.TaskFilter, paging bool) ([]domain.Task, error) {
	if paging && s.deps.Cache != nil {
		tasks, err := s.deps.Cache.Load(ctx, sessionID, filter)
		if err == nil {
			return tasks, nil
		}
		if !errors.Is(err, domain.ErrCacheMiss) {
			s.deps.Logger.Warn("task cache read failed", "error", err)
		}
	}

	tasks, err := s.deps.Tasks.ListTasks(ctx, filter)
	if err != nil {
		return nil, err
	}
	if s.deps.Cache != nil {
		if err := s.deps.Cache.Save(ctx, sessionID, filter, tasks); err != nil {
			s.deps.Logger.Warn("task cache write failed", "error", err)
		}
	}
	return tasks, nil
}

func (s *TasksList) render(tasks []domain.Task, position int, filter domain.TaskFilter) string {
	var b strings.Builder

	if position == 0 {
		fmt.Fprintf(&b, "Сейчас у вас %d задач в списке. ", len(tasks))
	}

	switch {
	case len(tasks) == 0:
		b.WriteString("Хотите добавить?")
	case position >= len(tasks):
		fmt.Fprintf(&b, "Это все задачи на %s.", filterSpoken(filter))
	default:
		fmt.Fprintf(&b, "Задача %d: %s.", position+1, tasks[position].Content)
		if position == len(tasks)-1 {
			b.WriteString(" Это последняя. Хотите добавить ещё?")
		}
	}

	return strings.TrimSpace(b.String())
}

// LocalIntents re-enters the list on "next task"; the position advance
// happens in Reply by incrementing the persisted position.
func (s *TasksList) LocalIntents(turn *domain.Turn) Scene {
	if turn.HasIntent(domain.IntentNextTask) {
		return NewTasksList(s.deps)
	}
	return nil
}

func (s *TasksList) Fallback(turn *domain.Turn) *domain.Response {
	return fallbackResponse(s.ID())
}

func filterSpoken(f domain.TaskFilter) string {
	if f == domain.FilterTomorrow {
		return "завтра"
	}
	return "сегодня"
}
