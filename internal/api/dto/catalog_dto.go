package dto

import "time"

// EventResponse is the wire shape for a managed event.
type EventResponse struct {
	ID                 string    `json:"id"`
	Title              string    `json:"title"`
	Date               time.Time `json:"date"`
	Location           string    `json:"location"`
	Type               string    `json:"type"`
	TotalAttendees     int       `json:"total_attendees"`
	ConfirmedAttendees int       `json:"confirmed_attendees"`
	Tasks              int       `json:"tasks"`
	CompletedTasks     int       `json:"completed_tasks"`
	Description        string    `json:"description"`
	Status             string    `json:"status"`
}

// CreateEventRequest payload for new events.
type CreateEventRequest struct {
	Title       string    `json:"title"`
	Date        time.Time `json:"date"`
	Location    string    `json:"location"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
}

// TaskResponse is the wire shape for an event task.
type TaskResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	EventID     string    `json:"event_id"`
	EventTitle  string    `json:"event_title"`
	Assigned    string    `json:"assigned"`
	Department  string    `json:"department"`
	Status      string    `json:"status"`
	Priority    string    `json:"priority"`
	Deadline    time.Time `json:"deadline"`
	Description string    `json:"description"`
}

// DepartmentResponse is the wire shape for a department.
type DepartmentResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	MemberCount int    `json:"member_count"`
	HeadCount   int    `json:"head_count"`
	LeadName    string `json:"lead_name"`
	LeadEmail   string `json:"lead_email"`
}

// CreateDepartmentRequest payload for new departments.
type CreateDepartmentRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// PlanResponse is the wire shape for a subscription plan.
type PlanResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Price       int      `json:"price"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
	IsPopular   bool     `json:"is_popular"`
}
