package domain

import (
	"strings"
	"time"
)

// DueDateLayout is the calendar-date format used everywhere a due date
// crosses a boundary (user input, DATE column, rendering).
const DueDateLayout = "2006-01-02"

type TaskPriority string

const (
	PriorityLow    TaskPriority = "Low"
	PriorityMedium TaskPriority = "Medium"
	PriorityHigh   TaskPriority = "High"
)

// Rank orders priorities by severity, High ranking highest.
func (p TaskPriority) Rank() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	}
	return 0
}

// ParsePriority canonicalizes a user-supplied priority. Matching is
// case-insensitive; the canonical display form is returned.
func ParsePriority(value string) (TaskPriority, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "low":
		return PriorityLow, nil
	case "medium":
		return PriorityMedium, nil
	case "high":
		return PriorityHigh, nil
	}
	return "", &ValidationError{Field: "priority", Reason: "must be Low, Medium, or High"}
}

type TaskStatus string

const (
	StatusPending    TaskStatus = "Pending"
	StatusInProgress TaskStatus = "In Progress"
	StatusCompleted  TaskStatus = "Completed"
)

// ParseStatus canonicalizes a user-supplied status. Matching is
// case-insensitive and accepts both "in progress" and "in-progress".
func ParseStatus(value string) (TaskStatus, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	normalized = strings.ReplaceAll(normalized, "-", " ")
	switch normalized {
	case "pending":
		return StatusPending, nil
	case "in progress":
		return StatusInProgress, nil
	case "completed":
		return StatusCompleted, nil
	}
	return "", &ValidationError{Field: "status", Reason: "must be Pending, In Progress, or Completed"}
}

// Task is the validated task entity. Fields are unexported so the only
// way to obtain one is through NewTask/Rehydrate and the validating
// setters; a Task in hand always holds valid field values.
type Task struct {
	id          uint64
	title       string
	description string
	dueDate     time.Time
	priority    TaskPriority
	status      TaskStatus
	createdAt   time.Time
}

// NewTaskInput carries the user-supplied fields for a task that does
// not exist in the store yet. DueDate is the raw string form so the
// entity owns date parsing.
type NewTaskInput struct {
	Title       string
	Description string
	DueDate     string
	Priority    string
	Status      string
}

// NewTask validates every field eagerly and returns a Task with no id;
// the store assigns the id on insert. An empty Status defaults to
// Pending. CreatedAt is set to the supplied clock value.
func NewTask(input NewTaskInput, now time.Time) (Task, error) {
	t := Task{status: StatusPending, createdAt: now}

	if err := t.SetTitle(input.Title); err != nil {
		return Task{}, err
	}
	if err := t.SetDescription(input.Description); err != nil {
		return Task{}, err
	}
	if err := t.SetDueDate(input.DueDate); err != nil {
		return Task{}, err
	}
	if err := t.SetPriority(input.Priority); err != nil {
		return Task{}, err
	}
	if strings.TrimSpace(input.Status) != "" {
		if err := t.SetStatus(input.Status); err != nil {
			return Task{}, err
		}
	}

	return t, nil
}

// Rehydrate rebuilds a Task from columns already persisted in the
// store. The same validation applies, so a corrupt row surfaces as a
// ValidationError instead of an invalid entity.
func Rehydrate(id uint64, title, description string, dueDate time.Time, priority, status string, createdAt time.Time) (Task, error) {
	t := Task{id: id, dueDate: dueDate, createdAt: createdAt}

	if err := t.SetTitle(title); err != nil {
		return Task{}, err
	}
	if err := t.SetDescription(description); err != nil {
		return Task{}, err
	}
	if err := t.SetPriority(priority); err != nil {
		return Task{}, err
	}
	if err := t.SetStatus(status); err != nil {
		return Task{}, err
	}

	return t, nil
}

func (t Task) ID() uint64             { return t.id }
func (t Task) Title() string          { return t.title }
func (t Task) Description() string    { return t.description }
func (t Task) DueDate() time.Time     { return t.dueDate }
func (t Task) Priority() TaskPriority { return t.priority }
func (t Task) Status() TaskStatus     { return t.status }
func (t Task) CreatedAt() time.Time   { return t.createdAt }

// WithID returns a copy carrying the store-assigned id. The id of a
// persisted task never changes afterwards.
func (t Task) WithID(id uint64) Task {
	t.id = id
	return t
}

func (t *Task) SetTitle(value string) error {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return &ValidationError{Field: "title", Reason: "cannot be empty"}
	}
	t.title = trimmed
	return nil
}

func (t *Task) SetDescription(value string) error {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return &ValidationError{Field: "description", Reason: "cannot be empty"}
	}
	t.description = trimmed
	return nil
}

func (t *Task) SetDueDate(value string) error {
	parsed, err := ParseDueDate(value)
	if err != nil {
		return err
	}
	t.dueDate = parsed
	return nil
}

// ParseDueDate validates a calendar date in YYYY-MM-DD form.
func ParseDueDate(value string) (time.Time, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return time.Time{}, &ValidationError{Field: "due_date", Reason: "cannot be empty"}
	}
	parsed, err := time.Parse(DueDateLayout, trimmed)
	if err != nil {
		return time.Time{}, &ValidationError{Field: "due_date", Reason: "must be a date in YYYY-MM-DD format"}
	}
	return parsed, nil
}

func (t *Task) SetPriority(value string) error {
	priority, err := ParsePriority(value)
	if err != nil {
		return err
	}
	t.priority = priority
	return nil
}

func (t *Task) SetStatus(value string) error {
	status, err := ParseStatus(value)
	if err != nil {
		return err
	}
	t.status = status
	return nil
}

// UpdateTaskInput carries a partial update; nil fields keep the prior
// value. Values stay raw strings so validation lives in the entity.
type UpdateTaskInput struct {
	Title       *string
	Description *string
	DueDate     *string
	Priority    *string
	Status      *string
}

// Empty reports whether the update carries no fields at all.
func (u UpdateTaskInput) Empty() bool {
	return u.Title == nil && u.Description == nil && u.DueDate == nil &&
		u.Priority == nil && u.Status == nil
}

// TaskChanges carries the validated, canonical column values of a
// partial update, ready for the store. Nil fields are not written.
type TaskChanges struct {
	Title       *string
	Description *string
	DueDate     *time.Time
	Priority    *TaskPriority
	Status      *TaskStatus
}

// Empty reports whether no column would be written.
func (c TaskChanges) Empty() bool {
	return c.Title == nil && c.Description == nil && c.DueDate == nil &&
		c.Priority == nil && c.Status == nil
}

// Changes extracts the canonical values of the fields named by input
// from an already-applied task. Call on the task Apply returned so the
// store receives validated values only.
func (t Task) Changes(input UpdateTaskInput) TaskChanges {
	var changes TaskChanges
	if input.Title != nil {
		v := t.title
		changes.Title = &v
	}
	if input.Description != nil {
		v := t.description
		changes.Description = &v
	}
	if input.DueDate != nil {
		v := t.dueDate
		changes.DueDate = &v
	}
	if input.Priority != nil {
		v := t.priority
		changes.Priority = &v
	}
	if input.Status != nil {
		v := t.status
		changes.Status = &v
	}
	return changes
}

// Apply validates and applies the supplied fields to a copy of the
// task. The receiver is untouched on failure, so a rejected partial
// update cannot leave a half-modified entity behind.
func (t Task) Apply(input UpdateTaskInput) (Task, error) {
	updated := t

	if input.Title != nil {
		if err := updated.SetTitle(*input.Title); err != nil {
			return Task{}, err
		}
	}
	if input.Description != nil {
		if err := updated.SetDescription(*input.Description); err != nil {
			return Task{}, err
		}
	}
	if input.DueDate != nil {
		if err := updated.SetDueDate(*input.DueDate); err != nil {
			return Task{}, err
		}
	}
	if input.Priority != nil {
		if err := updated.SetPriority(*input.Priority); err != nil {
			return Task{}, err
		}
	}
	if input.Status != nil {
		if err := updated.SetStatus(*input.Status); err != nil {
			return Task{}, err
		}
	}

	return updated, nil
}
