package domain

import "time"

// TaskStatus tracks progress of an event task.
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in-progress"
	TaskStatusCompleted  TaskStatus = "completed"
)

// TaskPriority grades urgency of a task.
type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
)

// Task is a unit of work attached to an event.
type Task struct {
	ID          string
	Title       string
	EventID     string
	EventTitle  string
	Assignee    string
	Department  string
	Status      TaskStatus
	Priority    TaskPriority
	Deadline    time.Time
	Description string
}
