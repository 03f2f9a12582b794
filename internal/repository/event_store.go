package repository

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/spec-kit/event-dashboard/internal/domain"
)

// ErrNotFound signals a missing catalog record.
var ErrNotFound = errors.New("record not found")

// EventStore holds the managed events shown on the events screen.
type EventStore struct {
	mu     sync.RWMutex
	events []domain.Event
}

// NewEventStore returns a store preloaded with the reference events.
func NewEventStore() *EventStore {
	return &EventStore{events: seedEvents()}
}

// List returns events in insertion order.
func (s *EventStore) List(_ context.Context) ([]domain.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Event(nil), s.events...), nil
}

// GetByID looks up a single event.
func (s *EventStore) GetByID(_ context.Context, id string) (*domain.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, event := range s.events {
		if event.ID == id {
			copied := event
			return &copied, nil
		}
	}
	return nil, ErrNotFound
}

// Create appends a new event, minting its ID.
func (s *EventStore) Create(_ context.Context, event *domain.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	event.ID = NewID()
	if event.Status == "" {
		event.Status = domain.EventStatusUpcoming
	}
	s.events = append(s.events, *event)
	return nil
}

func seedEvents() []domain.Event {
	return []domain.Event{
		{
			ID:                 "1",
			Title:              "Sunday Service",
			Date:               time.Date(2024, 5, 12, 9, 0, 0, 0, time.UTC),
			Location:           "Main Church Hall",
			Type:               domain.EventTypeChurch,
			TotalAttendees:     120,
			ConfirmedAttendees: 85,
			TaskCount:          12,
			CompletedTasks:     8,
			Description:        "Regular Sunday worship service with communion.",
			Status:             domain.EventStatusUpcoming,
		},
		{
			ID:                 "2",
			Title:              "Johnson Wedding",
			Date:               time.Date(2024, 5, 18, 14, 0, 0, 0, time.UTC),
			Location:           "Garden Venue",
			Type:               domain.EventTypeWedding,
			TotalAttendees:     80,
			ConfirmedAttendees: 65,
			TaskCount:          15,
			CompletedTasks:     3,
			Description:        "Wedding ceremony for Michael and Sarah Johnson.",
			Status:             domain.EventStatusUpcoming,
		},
		{
			ID:                 "3",
			Title:              "Community Meeting",
			Date:               time.Date(2024, 5, 21, 18, 30, 0, 0, time.UTC),
			Location:           "Fellowship Hall",
			Type:               domain.EventTypeOrganization,
			TotalAttendees:     45,
			ConfirmedAttendees: 23,
			TaskCount:          8,
			CompletedTasks:     2,
			Description:        "Monthly community leadership meeting with department reports.",
			Status:             domain.EventStatusUpcoming,
		},
		{
			ID:                 "4",
			Title:              "Youth Retreat",
			Date:               time.Date(2024, 6, 15, 8, 0, 0, 0, time.UTC),
			Location:           "Camp Wilderness",
			Type:               domain.EventTypeChurch,
			TotalAttendees:     35,
			ConfirmedAttendees: 28,
			TaskCount:          20,
			CompletedTasks:     5,
			Description:        "Annual youth retreat with activities and spiritual growth sessions.",
			Status:             domain.EventStatusUpcoming,
		},
		{
			ID:                 "5",
			Title:              "Easter Service",
			Date:               time.Date(2024, 4, 21, 10, 0, 0, 0, time.UTC),
			Location:           "Main Church Hall",
			Type:               domain.EventTypeChurch,
			TotalAttendees:     150,
			ConfirmedAttendees: 142,
			TaskCount:          18,
			CompletedTasks:     18,
			Description:        "Special Easter celebration service.",
			Status:             domain.EventStatusCompleted,
		},
	}
}
