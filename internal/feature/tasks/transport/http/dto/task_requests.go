// Package dto defines data transfer objects for the tasks feature's HTTP transport layer.
package dto

import "time"

// CreateTaskReq represents the request body for POST /tasks.
type CreateTaskReq struct {
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description"`
	Priority    string     `json:"priority" binding:"omitempty,oneof=low medium high"`
	DueDate     *time.Time `json:"due_date"`
}

// UpdateTaskReq represents the request body for PUT /tasks/:id.
// It is a full replacement of the task's mutable fields.
type UpdateTaskReq struct {
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description"`
	Priority    string     `json:"priority" binding:"omitempty,oneof=low medium high"`
	DueDate     *time.Time `json:"due_date"`
	Completed   bool       `json:"completed"`
}

// ErrorRes is the generic error response body.
type ErrorRes struct {
	Error string `json:"error"`
}
