package domain

import "time"

// TaskFilter holds optional list predicates, combined with AND.
// Zero values / nil pointers mean the predicate is not applied, so the
// zero TaskFilter matches everything.
type TaskFilter struct {
	DueDate  *time.Time
	Priority TaskPriority
	Status   TaskStatus
}

// Matches reports whether the task satisfies every active predicate.
func (f TaskFilter) Matches(t Task) bool {
	if f.DueDate != nil && !t.DueDate().Equal(*f.DueDate) {
		return false
	}
	if f.Priority != "" && t.Priority() != f.Priority {
		return false
	}
	if f.Status != "" && t.Status() != f.Status {
		return false
	}
	return true
}

// SortKey selects the field the task list is ordered by.
type SortKey string

const (
	SortByDueDate   SortKey = "due_date"
	SortByPriority  SortKey = "priority"
	SortByCreatedAt SortKey = "created_at"
)

// SortOrder selects the direction relative to the key's natural
// ordering: due_date and created_at ascend, priority descends by
// severity (High first).
type SortOrder bool

const (
	OrderDefault  SortOrder = false
	OrderReversed SortOrder = true
)
