package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"tasktrack_backend/internal/feature/tasks/domain/entity"
)

// mockTaskRepository is a mock implementation of the TaskRepository interface.
type mockTaskRepository struct {
	CreateFunc       func(ctx context.Context, task *entity.Task) error
	FindByIDFunc     func(ctx context.Context, id uint) (*entity.Task, error)
	FindByUserIDFunc func(ctx context.Context, userID uint) ([]entity.Task, error)
	UpdateFunc       func(ctx context.Context, task *entity.Task) error
	DeleteFunc       func(ctx context.Context, id uint) error
}

func (m *mockTaskRepository) Create(ctx context.Context, task *entity.Task) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, task)
	}
	task.ID = 1
	return nil
}

func (m *mockTaskRepository) FindByID(ctx context.Context, id uint) (*entity.Task, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, ErrTaskNotFound
}

func (m *mockTaskRepository) FindByUserID(ctx context.Context, userID uint) ([]entity.Task, error) {
	if m.FindByUserIDFunc != nil {
		return m.FindByUserIDFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockTaskRepository) Update(ctx context.Context, task *entity.Task) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, task)
	}
	return nil
}

func (m *mockTaskRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func ownedBy(userID uint) func(ctx context.Context, id uint) (*entity.Task, error) {
	return func(ctx context.Context, id uint) (*entity.Task, error) {
		return &entity.Task{ID: id, UserID: userID, Title: "existing", Priority: entity.PriorityLow}, nil
	}
}

func TestTaskUsecase_Create(t *testing.T) {
	t.Run("successful creation with default priority", func(t *testing.T) {
		repo := &mockTaskRepository{
			CreateFunc: func(ctx context.Context, task *entity.Task) error {
				if task.UserID != 1 {
					t.Errorf("expected owner 1, got %d", task.UserID)
				}
				task.ID = 42
				return nil
			},
		}

		uc := NewTaskUsecase(repo)
		task, err := uc.Create(context.Background(), 1, "Buy milk", "2 liters", "", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if task.ID != 42 {
			t.Errorf("expected ID 42, got %d", task.ID)
		}
		if task.Priority != entity.PriorityMedium {
			t.Errorf("expected default priority medium, got %q", task.Priority)
		}
	})

	t.Run("due date is kept", func(t *testing.T) {
		due := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
		uc := NewTaskUsecase(&mockTaskRepository{})

		task, err := uc.Create(context.Background(), 1, "Buy milk", "", entity.PriorityHigh, &due)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if task.DueDate == nil || !task.DueDate.Equal(due) {
			t.Errorf("expected due date %v, got %v", due, task.DueDate)
		}
	})

	t.Run("empty title", func(t *testing.T) {
		uc := NewTaskUsecase(&mockTaskRepository{})

		_, err := uc.Create(context.Background(), 1, "", "", entity.PriorityLow, nil)
		if !errors.Is(err, ErrInvalidInput) {
			t.Errorf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("invalid priority", func(t *testing.T) {
		uc := NewTaskUsecase(&mockTaskRepository{})

		_, err := uc.Create(context.Background(), 1, "Buy milk", "", "urgent", nil)
		if !errors.Is(err, ErrInvalidPriority) {
			t.Errorf("expected ErrInvalidPriority, got %v", err)
		}
	})
}

func TestTaskUsecase_Get(t *testing.T) {
	t.Run("owner reads own task", func(t *testing.T) {
		uc := NewTaskUsecase(&mockTaskRepository{FindByIDFunc: ownedBy(1)})

		task, err := uc.Get(context.Background(), 1, 5)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if task.ID != 5 {
			t.Errorf("expected task 5, got %d", task.ID)
		}
	})

	t.Run("foreign task is indistinguishable from absent", func(t *testing.T) {
		uc := NewTaskUsecase(&mockTaskRepository{FindByIDFunc: ownedBy(2)})

		_, foreignErr := uc.Get(context.Background(), 1, 5)
		if !errors.Is(foreignErr, ErrTaskNotFound) {
			t.Fatalf("expected ErrTaskNotFound, got %v", foreignErr)
		}

		uc = NewTaskUsecase(&mockTaskRepository{})
		_, absentErr := uc.Get(context.Background(), 1, 5)
		if !errors.Is(absentErr, ErrTaskNotFound) {
			t.Fatalf("expected ErrTaskNotFound, got %v", absentErr)
		}

		if foreignErr.Error() != absentErr.Error() {
			t.Error("foreign and absent tasks must be indistinguishable")
		}
	})
}

func TestTaskUsecase_Update(t *testing.T) {
	t.Run("successful full update", func(t *testing.T) {
		var updated *entity.Task
		repo := &mockTaskRepository{
			FindByIDFunc: ownedBy(1),
			UpdateFunc: func(ctx context.Context, task *entity.Task) error {
				updated = task
				return nil
			},
		}

		due := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)
		uc := NewTaskUsecase(repo)
		task, err := uc.Update(context.Background(), 1, 5, UpdateInput{
			Title:       "Renamed",
			Description: "new text",
			Priority:    entity.PriorityHigh,
			DueDate:     &due,
			Completed:   true,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated == nil {
			t.Fatal("expected repository update to be called")
		}
		if task.Title != "Renamed" || task.Priority != entity.PriorityHigh || !task.Completed {
			t.Errorf("unexpected task state: %+v", task)
		}
	})

	t.Run("cannot update foreign task", func(t *testing.T) {
		called := false
		repo := &mockTaskRepository{
			FindByIDFunc: ownedBy(2),
			UpdateFunc: func(ctx context.Context, task *entity.Task) error {
				called = true
				return nil
			},
		}

		uc := NewTaskUsecase(repo)
		_, err := uc.Update(context.Background(), 1, 5, UpdateInput{Title: "Hijack", Priority: entity.PriorityLow})
		if !errors.Is(err, ErrTaskNotFound) {
			t.Errorf("expected ErrTaskNotFound, got %v", err)
		}
		if called {
			t.Error("repository update must not run for a foreign task")
		}
	})

	t.Run("invalid priority", func(t *testing.T) {
		uc := NewTaskUsecase(&mockTaskRepository{FindByIDFunc: ownedBy(1)})

		_, err := uc.Update(context.Background(), 1, 5, UpdateInput{Title: "x", Priority: "urgent"})
		if !errors.Is(err, ErrInvalidPriority) {
			t.Errorf("expected ErrInvalidPriority, got %v", err)
		}
	})
}

func TestTaskUsecase_Delete(t *testing.T) {
	t.Run("owner deletes own task", func(t *testing.T) {
		deleted := uint(0)
		repo := &mockTaskRepository{
			FindByIDFunc: ownedBy(1),
			DeleteFunc: func(ctx context.Context, id uint) error {
				deleted = id
				return nil
			},
		}

		uc := NewTaskUsecase(repo)
		if err := uc.Delete(context.Background(), 1, 5); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if deleted != 5 {
			t.Errorf("expected task 5 to be deleted, got %d", deleted)
		}
	})

	t.Run("cannot delete foreign task", func(t *testing.T) {
		called := false
		repo := &mockTaskRepository{
			FindByIDFunc: ownedBy(2),
			DeleteFunc: func(ctx context.Context, id uint) error {
				called = true
				return nil
			},
		}

		uc := NewTaskUsecase(repo)
		err := uc.Delete(context.Background(), 1, 5)
		if !errors.Is(err, ErrTaskNotFound) {
			t.Errorf("expected ErrTaskNotFound, got %v", err)
		}
		if called {
			t.Error("repository delete must not run for a foreign task")
		}
	})
}

func TestTaskUsecase_List(t *testing.T) {
	repo := &mockTaskRepository{
		FindByUserIDFunc: func(ctx context.Context, userID uint) ([]entity.Task, error) {
			if userID != 1 {
				t.Errorf("expected owner scope 1, got %d", userID)
			}
			return []entity.Task{{ID: 2, UserID: 1, Title: "b"}, {ID: 1, UserID: 1, Title: "a"}}, nil
		},
	}

	uc := NewTaskUsecase(repo)
	tasks, err := uc.List(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tasks) != 2 {
		t.Errorf("expected 2 tasks, got %d", len(tasks))
	}
}
