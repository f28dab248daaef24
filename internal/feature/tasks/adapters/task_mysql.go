// Package adapters provides the repository implementations for the tasks feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"tasktrack_backend/internal/feature/tasks/domain/entity"
	"tasktrack_backend/internal/feature/tasks/usecase"
)

// taskMySQL is the GORM-backed implementation of the TaskRepository interface.
type taskMySQL struct {
	db *gorm.DB
}

// Compile-time check that taskMySQL implements TaskRepository.
var _ usecase.TaskRepository = (*taskMySQL)(nil)

// NewTaskMySQL creates a new taskMySQL with the given gorm.DB connection.
func NewTaskMySQL(db *gorm.DB) *taskMySQL {
	return &taskMySQL{db: db}
}

// Create inserts the task.
func (r *taskMySQL) Create(ctx context.Context, task *entity.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

// FindByID retrieves a task by ID.
// Returns usecase.ErrTaskNotFound when absent.
func (r *taskMySQL) FindByID(ctx context.Context, id uint) (*entity.Task, error) {
	var task entity.Task
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&task).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrTaskNotFound
		}
		return nil, err
	}
	return &task, nil
}

// FindByUserID retrieves all tasks owned by the given user, newest first.
func (r *taskMySQL) FindByUserID(ctx context.Context, userID uint) ([]entity.Task, error) {
	var tasks []entity.Task
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// Update saves all fields of the task, including zero values such as a
// cleared due date or completed=false.
func (r *taskMySQL) Update(ctx context.Context, task *entity.Task) error {
	return r.db.WithContext(ctx).Save(task).Error
}

// Delete removes the task with the given ID.
func (r *taskMySQL) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&entity.Task{}, id).Error
}
