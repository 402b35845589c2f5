package ports

import (
	"context"

	"github.com/Sole248k/Task-Management-Application/internal/core/domain"
)

// TaskStore is the narrow row-store gateway: one table, one statement
// per call. Implementations never build SQL from user input by
// concatenation.
type TaskStore interface {
	EnsureSchema(ctx context.Context) error
	Insert(ctx context.Context, task domain.Task) (uint64, error)
	Update(ctx context.Context, id uint64, changes domain.TaskChanges) error
	Delete(ctx context.Context, id uint64) error
	GetByID(ctx context.Context, id uint64) (domain.Task, error)
	LoadAll(ctx context.Context) ([]domain.Task, error)
}

// TaskManager is what the shell consumes: CRUD over the store plus
// in-memory listing with filtering and sorting.
type TaskManager interface {
	Add(ctx context.Context, input domain.NewTaskInput) (domain.Task, error)
	Get(id uint64) (domain.Task, error)
	Update(ctx context.Context, id uint64, input domain.UpdateTaskInput) (domain.Task, error)
	Complete(ctx context.Context, id uint64) (domain.Task, error)
	Delete(ctx context.Context, id uint64) error
	List(filter domain.TaskFilter, key domain.SortKey, order domain.SortOrder) []domain.Task
	Count() int
}
