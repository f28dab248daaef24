// Package handler provides the HTTP handlers for the tasks feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"tasktrack_backend/internal/feature/auth/transport/middleware"
	"tasktrack_backend/internal/feature/tasks/domain/entity"
	"tasktrack_backend/internal/feature/tasks/transport/http/dto"
	"tasktrack_backend/internal/feature/tasks/usecase"
)

// TaskUsecase defines the task operations consumed by this handler.
// Following Go convention: interfaces are defined by the consumer (handler),
// not the provider (usecase).
type TaskUsecase interface {
	Create(ctx context.Context, userID uint, title, description, priority string, dueDate *time.Time) (*entity.Task, error)
	List(ctx context.Context, userID uint) ([]entity.Task, error)
	Get(ctx context.Context, userID, taskID uint) (*entity.Task, error)
	Update(ctx context.Context, userID, taskID uint, in usecase.UpdateInput) (*entity.Task, error)
	Delete(ctx context.Context, userID, taskID uint) error
}

// TaskHandler handles HTTP requests for task CRUD. All routes sit behind the
// bearer middleware; the owner is always the authenticated user.
type TaskHandler struct {
	tasks TaskUsecase
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(tasks TaskUsecase) *TaskHandler {
	return &TaskHandler{tasks: tasks}
}

// Create handles POST /tasks.
func (h *TaskHandler) Create(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorRes{Error: "unauthorized"})
		return
	}

	var req dto.CreateTaskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("create task validation failed", "error", err, "user_id", user.ID)
		c.JSON(http.StatusBadRequest, dto.ErrorRes{Error: "invalid request"})
		return
	}

	task, err := h.tasks.Create(c.Request.Context(), user.ID, req.Title, req.Description, req.Priority, req.DueDate)
	if err != nil {
		h.writeError(c, user.ID, "create task failed", err)
		return
	}

	c.JSON(http.StatusCreated, task)
}

// List handles GET /tasks.
func (h *TaskHandler) List(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorRes{Error: "unauthorized"})
		return
	}

	tasks, err := h.tasks.List(c.Request.Context(), user.ID)
	if err != nil {
		h.writeError(c, user.ID, "list tasks failed", err)
		return
	}
	if tasks == nil {
		tasks = []entity.Task{}
	}

	c.JSON(http.StatusOK, tasks)
}

// Get handles GET /tasks/:id.
func (h *TaskHandler) Get(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorRes{Error: "unauthorized"})
		return
	}

	taskID, ok := taskIDParam(c)
	if !ok {
		return
	}

	task, err := h.tasks.Get(c.Request.Context(), user.ID, taskID)
	if err != nil {
		h.writeError(c, user.ID, "get task failed", err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// Update handles PUT /tasks/:id.
func (h *TaskHandler) Update(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorRes{Error: "unauthorized"})
		return
	}

	taskID, ok := taskIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateTaskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("update task validation failed", "error", err, "user_id", user.ID)
		c.JSON(http.StatusBadRequest, dto.ErrorRes{Error: "invalid request"})
		return
	}

	task, err := h.tasks.Update(c.Request.Context(), user.ID, taskID, usecase.UpdateInput{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		DueDate:     req.DueDate,
		Completed:   req.Completed,
	})
	if err != nil {
		h.writeError(c, user.ID, "update task failed", err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// Delete handles DELETE /tasks/:id.
func (h *TaskHandler) Delete(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorRes{Error: "unauthorized"})
		return
	}

	taskID, ok := taskIDParam(c)
	if !ok {
		return
	}

	if err := h.tasks.Delete(c.Request.Context(), user.ID, taskID); err != nil {
		h.writeError(c, user.ID, "delete task failed", err)
		return
	}

	c.Status(http.StatusNoContent)
}

// writeError maps usecase errors to HTTP statuses.
func (h *TaskHandler) writeError(c *gin.Context, userID uint, msg string, err error) {
	switch {
	case errors.Is(err, usecase.ErrTaskNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorRes{Error: "task not found"})
	case errors.Is(err, usecase.ErrInvalidInput), errors.Is(err, usecase.ErrInvalidPriority):
		c.JSON(http.StatusBadRequest, dto.ErrorRes{Error: "invalid request"})
	default:
		slog.Error(msg, "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, dto.ErrorRes{Error: "internal error"})
	}
}

// taskIDParam parses the :id route parameter, writing a 404 when it is not
// a positive integer so unparsable IDs look like missing tasks.
func taskIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusNotFound, dto.ErrorRes{Error: "task not found"})
		return 0, false
	}
	return uint(id), true
}
