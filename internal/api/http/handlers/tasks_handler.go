package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/event-dashboard/internal/api/dto"
	"github.com/spec-kit/event-dashboard/internal/domain"
	"github.com/spec-kit/event-dashboard/internal/repository"
	apperrors "github.com/spec-kit/event-dashboard/pkg/util"
)

// TasksHandler serves the tasks screen data.
type TasksHandler struct {
	tasks *repository.TaskStore
}

// NewTasksHandler constructs handler.
func NewTasksHandler(tasks *repository.TaskStore) *TasksHandler {
	return &TasksHandler{tasks: tasks}
}

// List handles GET /tasks. The department query parameter filters results.
func (h *TasksHandler) List(c *fiber.Ctx) error {
	tasks, err := h.tasks.List(c.Context(), c.Query("department"))
	if err != nil {
		return err
	}

	payload := make([]dto.TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		payload = append(payload, taskResponse(task))
	}
	return c.JSON(fiber.Map{"data": payload})
}

// Get handles GET /tasks/:id.
func (h *TasksHandler) Get(c *fiber.Ctx) error {
	task, err := h.tasks.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.NewNotFound("task", nil)
		}
		return err
	}
	return c.JSON(fiber.Map{"data": taskResponse(*task)})
}

func taskResponse(task domain.Task) dto.TaskResponse {
	return dto.TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		EventID:     task.EventID,
		EventTitle:  task.EventTitle,
		Assigned:    task.Assignee,
		Department:  task.Department,
		Status:      string(task.Status),
		Priority:    string(task.Priority),
		Deadline:    task.Deadline,
		Description: task.Description,
	}
}
