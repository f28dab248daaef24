package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tasktrack_backend/internal/feature/tasks/domain/entity"
)

// TaskRepository abstracts the persistence layer for task entities.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (adapters).
type TaskRepository interface {
	// Create persists a new task.
	Create(ctx context.Context, task *entity.Task) error

	// FindByID retrieves a task by its ID regardless of owner.
	// Returns ErrTaskNotFound when absent.
	FindByID(ctx context.Context, id uint) (*entity.Task, error)

	// FindByUserID retrieves all tasks owned by the given user,
	// newest first.
	FindByUserID(ctx context.Context, userID uint) ([]entity.Task, error)

	// Update persists all mutable fields of the task.
	Update(ctx context.Context, task *entity.Task) error

	// Delete removes the task with the given ID.
	Delete(ctx context.Context, id uint) error
}

// UpdateInput carries the full replacement state for a task update.
type UpdateInput struct {
	Title       string
	Description string
	Priority    string
	DueDate     *time.Time
	Completed   bool
}

// TaskUsecase implements owner-scoped task management. Every operation takes
// the authenticated user's ID and never exposes another owner's tasks.
type TaskUsecase struct {
	tasks TaskRepository
}

// NewTaskUsecase creates a new TaskUsecase.
func NewTaskUsecase(tasks TaskRepository) *TaskUsecase {
	return &TaskUsecase{tasks: tasks}
}

// Create stores a new task for the given owner. An empty priority defaults
// to medium.
func (u *TaskUsecase) Create(ctx context.Context, userID uint, title, description, priority string, dueDate *time.Time) (*entity.Task, error) {
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if priority == "" {
		priority = entity.PriorityMedium
	}
	if !entity.ValidPriority(priority) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPriority, priority)
	}

	task := &entity.Task{
		UserID:      userID,
		Title:       title,
		Description: description,
		Priority:    priority,
		DueDate:     dueDate,
	}
	if err := u.tasks.Create(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// List returns all tasks owned by the given user.
func (u *TaskUsecase) List(ctx context.Context, userID uint) ([]entity.Task, error) {
	return u.tasks.FindByUserID(ctx, userID)
}

// Get returns the task only if it is owned by the given user.
func (u *TaskUsecase) Get(ctx context.Context, userID, taskID uint) (*entity.Task, error) {
	return u.ownedTask(ctx, userID, taskID)
}

// Update replaces the mutable fields of an owned task.
func (u *TaskUsecase) Update(ctx context.Context, userID, taskID uint, in UpdateInput) (*entity.Task, error) {
	if in.Title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if in.Priority == "" {
		in.Priority = entity.PriorityMedium
	}
	if !entity.ValidPriority(in.Priority) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPriority, in.Priority)
	}

	task, err := u.ownedTask(ctx, userID, taskID)
	if err != nil {
		return nil, err
	}

	task.Title = in.Title
	task.Description = in.Description
	task.Priority = in.Priority
	task.DueDate = in.DueDate
	task.Completed = in.Completed

	if err := u.tasks.Update(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// Delete removes an owned task.
func (u *TaskUsecase) Delete(ctx context.Context, userID, taskID uint) error {
	if _, err := u.ownedTask(ctx, userID, taskID); err != nil {
		return err
	}
	return u.tasks.Delete(ctx, taskID)
}

// ownedTask loads a task and verifies ownership. A task owned by someone
// else reports the same error as a missing one.
func (u *TaskUsecase) ownedTask(ctx context.Context, userID, taskID uint) (*entity.Task, error) {
	task, err := u.tasks.FindByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, ErrTaskNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}
	if task.UserID != userID {
		return nil, ErrTaskNotFound
	}
	return task, nil
}
