// Package testutils provides fakes shared by scene and adapter tests.
package testutils

import (
	"context"
	"sync"
	"time"

	"github.com/RasimKhusaenov/alice-todoist-integration/pkg/domain"
)

// FakeBackend is an in-memory ports.TaskService. When Err is set, every call
// fails with it, which is how tests exercise the degraded replies.
type FakeBackend struct {
	mu      sync.Mutex
	ByFilter map[domain.TaskFilter][]domain.Task
	Err     error

	// Created records every CreateTask call for assertions.
	Created []CreatedTask
}

// CreatedTask is one recorded CreateTask invocation.
type CreatedTask struct {
	Content string
	Due     *time.Time
}

// NewFakeBackend returns an empty fake backend.
func NewFakeBackend() *FakeBackend {
	return &FakeBackend{ByFilter: make(map[domain.TaskFilter][]domain.Task)}
}

// SetTasks seeds the list returned for a filter.
func (f *FakeBackend) SetTasks(filter domain.TaskFilter, contents ...string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	tasks := make([]domain.Task, 0, len(contents))
	for i, c := range contents {
		tasks = append(tasks, domain.Task{ID: string(rune('a' + i)), Content: c})
	}
	f.ByFilter[filter] = tasks
}

func (f *FakeBackend) ListTasks(ctx context.Context, filter domain.TaskFilter) ([]domain.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return nil, f.Err
	}
	return f.ByFilter[filter], nil
}

func (f *FakeBackend) CreateTask(ctx context.Context, content string, due *time.Time) (domain.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return domain.Task{}, f.Err
	}
	f.Created = append(f.Created, CreatedTask{Content: content, Due: due})
	task := domain.Task{ID: "created", Content: content}
	if due != nil {
		task.Due = &domain.TaskDue{Date: due.Format("2006-01-02")}
	}
	return task, nil
}
