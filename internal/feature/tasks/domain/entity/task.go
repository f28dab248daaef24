// Package entity defines the domain entities for the tasks feature.
package entity

import "time"

// Priority levels accepted for a task.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// ValidPriority reports whether p is one of the accepted priority levels.
func ValidPriority(p string) bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}

// Task represents a to-do item owned by exactly one user.
type Task struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// UserID is the owning user. Every query is scoped by it.
	UserID uint `gorm:"index;not null" json:"user_id"`

	Title       string `gorm:"size:255;not null" json:"title"`
	Description string `gorm:"size:2048" json:"description"`

	// Priority is one of the Priority* constants.
	Priority string `gorm:"size:16;not null;default:medium" json:"priority"`

	// DueDate is optional.
	DueDate *time.Time `json:"due_date,omitempty"`

	Completed bool `gorm:"not null;default:false" json:"completed"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
