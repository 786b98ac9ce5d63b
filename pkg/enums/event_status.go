package enums

import "fmt"

// EventStatus tracks the lifecycle of a planned event.
type EventStatus string

const (
	EventStatusPlanning  EventStatus = "planning"
	EventStatusBooked    EventStatus = "booked"
	EventStatusCompleted EventStatus = "completed"
	EventStatusCancelled EventStatus = "cancelled"
)

var validEventStatuses = []EventStatus{
	EventStatusPlanning,
	EventStatusBooked,
	EventStatusCompleted,
	EventStatusCancelled,
}

// String implements fmt.Stringer.
func (e EventStatus) String() string {
	return string(e)
}

// IsValid reports whether the value is a known EventStatus.
func (e EventStatus) IsValid() bool {
	for _, candidate := range validEventStatuses {
		if candidate == e {
			return true
		}
	}
	return false
}

// ParseEventStatus converts raw input into an EventStatus.
func ParseEventStatus(value string) (EventStatus, error) {
	for _, candidate := range validEventStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid event status %q", value)
}
