package ports

import (
	"context"
	"time"

	"github.com/RasimKhusaenov/alice-todoist-integration/pkg/domain"
)

// TaskService is the external task-management backend.
//
// Calls are blocking, single-shot network operations with no internal retry;
// failures surface as errors wrapped with domain.ErrBackendUnavailable so the
// calling scene can render a degraded reply instead of crashing the turn.
type TaskService interface {
	// ListTasks returns the ordered tasks matching the filter.
	ListTasks(ctx context.Context, filter domain.TaskFilter) ([]domain.Task, error)

	// CreateTask creates a task with the given content and optional due date.
	CreateTask(ctx context.Context, content string, due *time.Time) (domain.Task, error)
}
