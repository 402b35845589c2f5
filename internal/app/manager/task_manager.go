package manager

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Sole248k/Task-Management-Application/internal/core/domain"
	"github.com/Sole248k/Task-Management-Application/internal/core/ports"
)

// TaskManager owns the in-memory mirror of the tasks table. Writes go
// to the store first and the mirror is touched only after the store
// confirms, so the mirror never runs ahead of durable state. Reads
// never round-trip to the store.
type TaskManager struct {
	store  ports.TaskStore
	mirror map[uint64]domain.Task
	// order keeps insertion order of ids: map iteration is randomized
	// and listing needs a deterministic pre-sort sequence.
	order []uint64
	now   func() time.Time
}

var _ ports.TaskManager = (*TaskManager)(nil)

func NewTaskManager(store ports.TaskStore) *TaskManager {
	return &TaskManager{
		store:  store,
		mirror: make(map[uint64]domain.Task),
		now:    time.Now,
	}
}

// Load rebuilds the mirror from a full store scan. The store is the
// source of truth on (re)load; anything previously mirrored is
// discarded.
func (m *TaskManager) Load(ctx context.Context) error {
	tasks, err := m.store.LoadAll(ctx)
	if err != nil {
		return err
	}

	m.mirror = make(map[uint64]domain.Task, len(tasks))
	m.order = make([]uint64, 0, len(tasks))
	for _, task := range tasks {
		m.mirror[task.ID()] = task
		m.order = append(m.order, task.ID())
	}

	zap.L().Info("task mirror loaded", zap.Int("tasks", len(tasks)))
	return nil
}

// Add validates the input as a task entity, inserts it, and mirrors
// the stored row. Validation failures never reach the store.
func (m *TaskManager) Add(ctx context.Context, input domain.NewTaskInput) (domain.Task, error) {
	task, err := domain.NewTask(input, m.now())
	if err != nil {
		return domain.Task{}, err
	}

	id, err := m.store.Insert(ctx, task)
	if err != nil {
		return domain.Task{}, err
	}

	task = task.WithID(id)
	m.mirror[id] = task
	m.order = append(m.order, id)
	return task, nil
}

// Get is an O(1) mirror lookup.
func (m *TaskManager) Get(id uint64) (domain.Task, error) {
	task, ok := m.mirror[id]
	if !ok {
		return domain.Task{}, fmt.Errorf("task %d: %w", id, domain.ErrTaskNotFound)
	}
	return task, nil
}

// Update applies a partial update. Changed fields are re-validated on
// a copy before anything is written; the mirror is updated only after
// the store accepted the write. An empty input is a no-op returning
// the current task.
func (m *TaskManager) Update(ctx context.Context, id uint64, input domain.UpdateTaskInput) (domain.Task, error) {
	current, ok := m.mirror[id]
	if !ok {
		return domain.Task{}, fmt.Errorf("task %d: %w", id, domain.ErrTaskNotFound)
	}

	if input.Empty() {
		return current, nil
	}

	updated, err := current.Apply(input)
	if err != nil {
		return domain.Task{}, err
	}

	if err := m.store.Update(ctx, id, updated.Changes(input)); err != nil {
		return domain.Task{}, err
	}

	m.mirror[id] = updated
	return updated, nil
}

// Complete marks the task Completed, leaving every other field alone.
func (m *TaskManager) Complete(ctx context.Context, id uint64) (domain.Task, error) {
	status := string(domain.StatusCompleted)
	return m.Update(ctx, id, domain.UpdateTaskInput{Status: &status})
}

// Delete removes the task from the store first, then from the mirror.
func (m *TaskManager) Delete(ctx context.Context, id uint64) error {
	if _, ok := m.mirror[id]; !ok {
		return fmt.Errorf("task %d: %w", id, domain.ErrTaskNotFound)
	}

	if err := m.store.Delete(ctx, id); err != nil {
		return err
	}

	delete(m.mirror, id)
	for i, existing := range m.order {
		if existing == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

// List returns a filtered, sorted snapshot of the mirror in insertion
// order. A zero filter matches everything; an empty key skips sorting.
func (m *TaskManager) List(filter domain.TaskFilter, key domain.SortKey, order domain.SortOrder) []domain.Task {
	snapshot := make([]domain.Task, 0, len(m.order))
	for _, id := range m.order {
		task := m.mirror[id]
		if filter.Matches(task) {
			snapshot = append(snapshot, task)
		}
	}

	if key == "" {
		return snapshot
	}
	return sortTasks(snapshot, key, order)
}

// Count reports the number of live tasks.
func (m *TaskManager) Count() int {
	return len(m.mirror)
}
