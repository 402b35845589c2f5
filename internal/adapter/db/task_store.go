package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/Sole248k/Task-Management-Application/internal/core/domain"
	"github.com/Sole248k/Task-Management-Application/internal/core/ports"
)

const createTasksTableQuery = `
CREATE TABLE IF NOT EXISTS tasks (
    task_id INT AUTO_INCREMENT PRIMARY KEY,
    title VARCHAR(255) NOT NULL,
    description TEXT NOT NULL,
    due_date DATE NOT NULL,
    priority ENUM('Low', 'Medium', 'High') NOT NULL,
    status ENUM('Pending', 'In Progress', 'Completed') NOT NULL DEFAULT 'Pending',
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    INDEX idx_status (status),
    INDEX idx_due_date (due_date),
    INDEX idx_priority (priority)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;
`

const insertTaskQuery = `
INSERT INTO tasks (title, description, due_date, priority, status, created_at)
VALUES (?, ?, ?, ?, ?, ?);
`

const deleteTaskQuery = `DELETE FROM tasks WHERE task_id = ?;`

const taskExistsQuery = `SELECT 1 FROM tasks WHERE task_id = ?;`

const getTaskQuery = `
SELECT task_id, title, description, due_date, priority, status, created_at
FROM tasks
WHERE task_id = ?;
`

const loadAllTasksQuery = `
SELECT task_id, title, description, due_date, priority, status, created_at
FROM tasks
ORDER BY task_id;
`

type TaskStore struct {
	db *sqlx.DB
}

type taskRow struct {
	ID          uint64    `db:"task_id"`
	Title       string    `db:"title"`
	Description string    `db:"description"`
	DueDate     time.Time `db:"due_date"`
	Priority    string    `db:"priority"`
	Status      string    `db:"status"`
	CreatedAt   time.Time `db:"created_at"`
}

var _ ports.TaskStore = (*TaskStore)(nil)

func NewTaskStore(db *sqlx.DB) *TaskStore {
	return &TaskStore{db: db}
}

// EnsureSchema creates the tasks table and its indexes when absent.
// Safe to call on every startup.
func (s *TaskStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, createTasksTableQuery); err != nil {
		return &domain.StoreError{Op: "ensure schema", Err: err}
	}
	return nil
}

func (s *TaskStore) Insert(ctx context.Context, task domain.Task) (uint64, error) {
	result, err := s.db.ExecContext(ctx, insertTaskQuery,
		task.Title(),
		task.Description(),
		task.DueDate().Format(domain.DueDateLayout),
		string(task.Priority()),
		string(task.Status()),
		task.CreatedAt(),
	)
	if err != nil {
		return 0, &domain.StoreError{Op: "insert", Err: err}
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, &domain.StoreError{Op: "insert", Err: err}
	}

	return uint64(id), nil
}

// Update writes the supplied columns only. The SET list is assembled
// from fixed column names; every value travels as a placeholder
// argument. A change set with no columns is a successful no-op.
func (s *TaskStore) Update(ctx context.Context, id uint64, changes domain.TaskChanges) error {
	setClauses := make([]string, 0, 5)
	args := make([]interface{}, 0, 6)

	if changes.Title != nil {
		setClauses = append(setClauses, "title = ?")
		args = append(args, *changes.Title)
	}
	if changes.Description != nil {
		setClauses = append(setClauses, "description = ?")
		args = append(args, *changes.Description)
	}
	if changes.DueDate != nil {
		setClauses = append(setClauses, "due_date = ?")
		args = append(args, changes.DueDate.Format(domain.DueDateLayout))
	}
	if changes.Priority != nil {
		setClauses = append(setClauses, "priority = ?")
		args = append(args, string(*changes.Priority))
	}
	if changes.Status != nil {
		setClauses = append(setClauses, "status = ?")
		args = append(args, string(*changes.Status))
	}

	if len(setClauses) == 0 {
		return nil
	}

	query := fmt.Sprintf("UPDATE tasks SET %s WHERE task_id = ?;", strings.Join(setClauses, ", "))
	args = append(args, id)

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return &domain.StoreError{Op: "update", Err: err}
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return &domain.StoreError{Op: "update", Err: err}
	}
	if affected == 0 {
		// MySQL reports 0 affected rows for a value-identical update
		// too, so only an absent row is a not-found.
		return s.checkExists(ctx, id)
	}

	return nil
}

func (s *TaskStore) Delete(ctx context.Context, id uint64) error {
	result, err := s.db.ExecContext(ctx, deleteTaskQuery, id)
	if err != nil {
		return &domain.StoreError{Op: "delete", Err: err}
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return &domain.StoreError{Op: "delete", Err: err}
	}
	if affected == 0 {
		return fmt.Errorf("delete task %d: %w", id, domain.ErrTaskNotFound)
	}

	return nil
}

func (s *TaskStore) GetByID(ctx context.Context, id uint64) (domain.Task, error) {
	var row taskRow
	if err := s.db.GetContext(ctx, &row, getTaskQuery, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Task{}, fmt.Errorf("get task %d: %w", id, domain.ErrTaskNotFound)
		}
		return domain.Task{}, &domain.StoreError{Op: "get", Err: err}
	}

	return mapTaskRow(row)
}

// LoadAll returns every task ordered by task_id, the store's insertion
// order. Used to rebuild the in-memory mirror.
func (s *TaskStore) LoadAll(ctx context.Context) ([]domain.Task, error) {
	var rows []taskRow
	if err := s.db.SelectContext(ctx, &rows, loadAllTasksQuery); err != nil {
		return nil, &domain.StoreError{Op: "load", Err: err}
	}

	tasks := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		task, err := mapTaskRow(row)
		if err != nil {
			zap.L().Warn("skipping unreadable task row", zap.Uint64("task_id", row.ID), zap.Error(err))
			continue
		}
		tasks = append(tasks, task)
	}

	return tasks, nil
}

func (s *TaskStore) checkExists(ctx context.Context, id uint64) error {
	var one int
	if err := s.db.GetContext(ctx, &one, taskExistsQuery, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("update task %d: %w", id, domain.ErrTaskNotFound)
		}
		return &domain.StoreError{Op: "update", Err: err}
	}
	return nil
}

func mapTaskRow(row taskRow) (domain.Task, error) {
	return domain.Rehydrate(
		row.ID,
		row.Title,
		row.Description,
		row.DueDate,
		row.Priority,
		row.Status,
		row.CreatedAt,
	)
}
