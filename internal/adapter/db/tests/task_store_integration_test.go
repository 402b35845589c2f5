//go:build integration
// +build integration

package tests

import (
	"context"
	"testing"
	"time"

	dbadapter "github.com/Sole248k/Task-Management-Application/internal/adapter/db"
	"github.com/Sole248k/Task-Management-Application/internal/core/domain"

	"github.com/stretchr/testify/suite"
)

type TaskStoreIntegrationSuite struct {
	IntegrationSuiteBase
	store *dbadapter.TaskStore
}

func TestTaskStoreIntegrationSuite(t *testing.T) {
	suite.Run(t, new(TaskStoreIntegrationSuite))
}

func (s *TaskStoreIntegrationSuite) SetupTest() {
	s.ResetDatabase()
	s.store = dbadapter.NewTaskStore(s.DB)
	s.Require().NoError(s.store.EnsureSchema(context.Background()))
}

func (s *TaskStoreIntegrationSuite) newTask(title, due, priority string) domain.Task {
	task, err := domain.NewTask(domain.NewTaskInput{
		Title:       title,
		Description: "integration fixture",
		DueDate:     due,
		Priority:    priority,
	}, time.Now().UTC().Truncate(time.Second))
	s.Require().NoError(err)
	return task
}

func (s *TaskStoreIntegrationSuite) TestEnsureSchema_Idempotent() {
	s.Require().NoError(s.store.EnsureSchema(context.Background()))
	s.Require().NoError(s.store.EnsureSchema(context.Background()))
}

func (s *TaskStoreIntegrationSuite) TestInsertAndGetByID() {
	ctx := context.Background()

	id, err := s.store.Insert(ctx, s.newTask("round trip", "2025-06-01", "High"))
	s.Require().NoError(err)
	s.Require().NotZero(id)

	got, err := s.store.GetByID(ctx, id)
	s.Require().NoError(err)
	s.Equal("round trip", got.Title())
	s.Equal("integration fixture", got.Description())
	s.Equal("2025-06-01", got.DueDate().Format(domain.DueDateLayout))
	s.Equal(domain.PriorityHigh, got.Priority())
	s.Equal(domain.StatusPending, got.Status())
}

func (s *TaskStoreIntegrationSuite) TestInsert_AssignsDistinctIDs() {
	ctx := context.Background()

	first, err := s.store.Insert(ctx, s.newTask("one", "2025-06-01", "Low"))
	s.Require().NoError(err)
	second, err := s.store.Insert(ctx, s.newTask("two", "2025-06-02", "Low"))
	s.Require().NoError(err)

	s.NotEqual(first, second)
}

func (s *TaskStoreIntegrationSuite) TestUpdate_PartialColumns() {
	ctx := context.Background()

	id, err := s.store.Insert(ctx, s.newTask("before", "2025-06-01", "Low"))
	s.Require().NoError(err)

	title := "after"
	status := domain.StatusCompleted
	err = s.store.Update(ctx, id, domain.TaskChanges{Title: &title, Status: &status})
	s.Require().NoError(err)

	got, err := s.store.GetByID(ctx, id)
	s.Require().NoError(err)
	s.Equal("after", got.Title())
	s.Equal(domain.StatusCompleted, got.Status())
	// Untouched columns survive.
	s.Equal(domain.PriorityLow, got.Priority())
	s.Equal("2025-06-01", got.DueDate().Format(domain.DueDateLayout))
}

func (s *TaskStoreIntegrationSuite) TestUpdate_NoFieldsIsNoOp() {
	ctx := context.Background()

	id, err := s.store.Insert(ctx, s.newTask("untouched", "2025-06-01", "Low"))
	s.Require().NoError(err)

	s.Require().NoError(s.store.Update(ctx, id, domain.TaskChanges{}))
}

func (s *TaskStoreIntegrationSuite) TestUpdate_AbsentID() {
	title := "ghost"
	err := s.store.Update(context.Background(), 424242, domain.TaskChanges{Title: &title})
	s.Require().ErrorIs(err, domain.ErrTaskNotFound)
}

func (s *TaskStoreIntegrationSuite) TestUpdate_IdenticalValuesIsNotNotFound() {
	ctx := context.Background()

	id, err := s.store.Insert(ctx, s.newTask("same", "2025-06-01", "Low"))
	s.Require().NoError(err)

	title := "same"
	s.Require().NoError(s.store.Update(ctx, id, domain.TaskChanges{Title: &title}))
}

func (s *TaskStoreIntegrationSuite) TestDelete() {
	ctx := context.Background()

	id, err := s.store.Insert(ctx, s.newTask("doomed", "2025-06-01", "Low"))
	s.Require().NoError(err)

	s.Require().NoError(s.store.Delete(ctx, id))

	_, err = s.store.GetByID(ctx, id)
	s.Require().ErrorIs(err, domain.ErrTaskNotFound)
	s.Require().ErrorIs(s.store.Delete(ctx, id), domain.ErrTaskNotFound)
}

func (s *TaskStoreIntegrationSuite) TestLoadAll_IDOrder() {
	ctx := context.Background()

	var inserted []uint64
	for _, title := range []string{"a", "b", "c"} {
		id, err := s.store.Insert(ctx, s.newTask(title, "2025-06-01", "Medium"))
		s.Require().NoError(err)
		inserted = append(inserted, id)
	}

	tasks, err := s.store.LoadAll(ctx)
	s.Require().NoError(err)
	s.Require().Len(tasks, 3)
	for i, task := range tasks {
		s.Equal(inserted[i], task.ID())
	}
}
