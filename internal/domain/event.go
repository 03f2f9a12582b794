package domain

import "time"

// EventStatus represents lifecycle states for a managed event.
type EventStatus string

const (
	EventStatusUpcoming  EventStatus = "upcoming"
	EventStatusCompleted EventStatus = "completed"
)

// EventType categorizes an event.
type EventType string

const (
	EventTypeChurch       EventType = "Church"
	EventTypeWedding      EventType = "Wedding"
	EventTypeOrganization EventType = "Organization"
)

// Event is the domain model for a managed event.
type Event struct {
	ID                 string
	Title              string
	Date               time.Time
	Location           string
	Type               EventType
	TotalAttendees     int
	ConfirmedAttendees int
	TaskCount          int
	CompletedTasks     int
	Description        string
	Status             EventStatus
}
