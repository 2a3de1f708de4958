package ports

import (
	"context"

	"github.com/RasimKhusaenov/alice-todoist-integration/pkg/domain"
)

// TaskCache keeps a fetched task list around between the turns of one paging
// sequence, so a "next" command does not refetch from the backend.
type TaskCache interface {
	// Save stores the list for a session and filter.
	Save(ctx context.Context, sessionID string, filter domain.TaskFilter, tasks []domain.Task) error

	// Load retrieves the list for a session and filter.
	// Returns domain.ErrCacheMiss when nothing is stored.
	Load(ctx context.Context, sessionID string, filter domain.TaskFilter) ([]domain.Task, error)

	// Delete drops the cached list for a session and filter.
	Delete(ctx context.Context, sessionID string, filter domain.TaskFilter) error
}
