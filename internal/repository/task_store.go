package repository

import (
	"context"
	"sync"
	"time"

	"github.com/spec-kit/event-dashboard/internal/domain"
)

// TaskStore holds event tasks shown on the tasks screen.
type TaskStore struct {
	mu    sync.RWMutex
	tasks []domain.Task
}

// NewTaskStore returns a store preloaded with the reference tasks.
func NewTaskStore() *TaskStore {
	return &TaskStore{tasks: seedTasks()}
}

// List returns tasks in insertion order, optionally filtered by department.
// An empty department means no filter.
func (s *TaskStore) List(_ context.Context, department string) ([]domain.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tasks := make([]domain.Task, 0, len(s.tasks))
	for _, task := range s.tasks {
		if department != "" && task.Department != department {
			continue
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}

// GetByID looks up a single task.
func (s *TaskStore) GetByID(_ context.Context, id string) (*domain.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, task := range s.tasks {
		if task.ID == id {
			copied := task
			return &copied, nil
		}
	}
	return nil, ErrNotFound
}

func seedTasks() []domain.Task {
	return []domain.Task{
		{
			ID:          "1",
			Title:       "Prepare worship songs",
			EventID:     "1",
			EventTitle:  "Sunday Service",
			Assignee:    "John Smith",
			Department:  "Worship",
			Status:      domain.TaskStatusCompleted,
			Priority:    domain.TaskPriorityHigh,
			Deadline:    time.Date(2024, 5, 11, 8, 0, 0, 0, time.UTC),
			Description: "Select worship songs for the service and prepare sheet music for the team.",
		},
		{
			ID:          "2",
			Title:       "Set up chairs",
			EventID:     "1",
			EventTitle:  "Sunday Service",
			Assignee:    "Emily Johnson",
			Department:  "Logistics",
			Status:      domain.TaskStatusInProgress,
			Priority:    domain.TaskPriorityMedium,
			Deadline:    time.Date(2024, 5, 12, 6, 0, 0, 0, time.UTC),
			Description: "Arrange chairs in the main hall according to the layout plan.",
		},
		{
			ID:          "3",
			Title:       "Prepare welcome speech",
			EventID:     "2",
			EventTitle:  "Johnson Wedding",
			Assignee:    "Michael Brown",
			Department:  "Hospitality",
			Status:      domain.TaskStatusPending,
			Priority:    domain.TaskPriorityLow,
			Deadline:    time.Date(2024, 5, 17, 18, 0, 0, 0, time.UTC),
			Description: "Write and practice a welcome speech for the wedding guests.",
		},
		{
			ID:          "4",
			Title:       "Set up sound system",
			EventID:     "1",
			EventTitle:  "Sunday Service",
			Assignee:    "David Wilson",
			Department:  "Audio/Visual",
			Status:      domain.TaskStatusInProgress,
			Priority:    domain.TaskPriorityHigh,
			Deadline:    time.Date(2024, 5, 12, 7, 0, 0, 0, time.UTC),
			Description: "Set up and test microphones, speakers, and audio equipment.",
		},
		{
			ID:          "5",
			Title:       "Prepare communion elements",
			EventID:     "1",
			EventTitle:  "Sunday Service",
			Assignee:    "Sarah Adams",
			Department:  "Worship",
			Status:      domain.TaskStatusCompleted,
			Priority:    domain.TaskPriorityHigh,
			Deadline:    time.Date(2024, 5, 11, 20, 0, 0, 0, time.UTC),
			Description: "Prepare bread and wine for communion service.",
		},
	}
}
