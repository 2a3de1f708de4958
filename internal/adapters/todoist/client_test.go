package todoist_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RasimKhusaenov/alice-todoist-integration/internal/adapters/todoist"
	"github.com/RasimKhusaenov/alice-todoist-integration/pkg/domain"
)

func TestListTasks(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/tasks", r.URL.Path)
		assert.Equal(t, "today", r.URL.Query().Get("filter"))
		assert.Equal(t, "Bearer token-123", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id":"1","content":"купить молоко"},
			{"id":"2","content":"позвонить маме","due":{"date":"2026-06-15"}}
		]`))
	}))
	defer srv.Close()

	client := todoist.New("token-123", todoist.WithBaseURL(srv.URL))
	tasks, err := client.ListTasks(context.Background(), domain.FilterToday)

	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, "купить молоко", tasks[0].Content)
	require.NotNil(t, tasks[1].Due)
	assert.Equal(t, "2026-06-15", tasks[1].Due.Date)
}

func TestCreateTask(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/tasks", r.URL.Path)

		var payload map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "Купить хлеб", payload["content"])
		assert.Equal(t, "2026-06-16", payload["due_date"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"42","content":"Купить хлеб","due":{"date":"2026-06-16"}}`))
	}))
	defer srv.Close()

	client := todoist.New("token-123", todoist.WithBaseURL(srv.URL))
	due := time.Date(2026, time.June, 16, 0, 0, 0, 0, time.UTC)
	task, err := client.CreateTask(context.Background(), "Купить хлеб", &due)

	require.NoError(t, err)
	assert.Equal(t, "42", task.ID)
}

func TestCreateTask_NoDueDate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		_, hasDue := payload["due_date"]
		assert.False(t, hasDue)

		_, _ = w.Write([]byte(`{"id":"43","content":"Без срока"}`))
	}))
	defer srv.Close()

	client := todoist.New("token-123", todoist.WithBaseURL(srv.URL))
	_, err := client.CreateTask(context.Background(), "Без срока", nil)
	assert.NoError(t, err)
}

func TestBackendFailuresAreDistinguishable(t *testing.T) {
	t.Run("http error status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "rate limited", http.StatusTooManyRequests)
		}))
		defer srv.Close()

		client := todoist.New("token-123", todoist.WithBaseURL(srv.URL))
		_, err := client.ListTasks(context.Background(), domain.FilterToday)
		assert.ErrorIs(t, err, domain.ErrBackendUnavailable)
	})

	t.Run("connection refused", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close() // Dead endpoint

		client := todoist.New("token-123", todoist.WithBaseURL(srv.URL))
		_, err := client.ListTasks(context.Background(), domain.FilterToday)
		assert.ErrorIs(t, err, domain.ErrBackendUnavailable)
	})
}
