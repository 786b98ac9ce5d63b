package enums

import "fmt"

// CalendarEventType classifies entries on a user's calendar.
type CalendarEventType string

const (
	CalendarEventTypeAppointment     CalendarEventType = "appointment"
	CalendarEventTypePaymentDeadline CalendarEventType = "payment_deadline"
	CalendarEventTypeEventDate       CalendarEventType = "event_date"
	CalendarEventTypeReminder        CalendarEventType = "reminder"
	CalendarEventTypeManual          CalendarEventType = "manual"
)

var validCalendarEventTypes = []CalendarEventType{
	CalendarEventTypeAppointment,
	CalendarEventTypePaymentDeadline,
	CalendarEventTypeEventDate,
	CalendarEventTypeReminder,
	CalendarEventTypeManual,
}

// String implements fmt.Stringer.
func (c CalendarEventType) String() string {
	return string(c)
}

// IsValid reports whether the value is a known CalendarEventType.
func (c CalendarEventType) IsValid() bool {
	for _, candidate := range validCalendarEventTypes {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseCalendarEventType converts raw input into a CalendarEventType.
func ParseCalendarEventType(value string) (CalendarEventType, error) {
	for _, candidate := range validCalendarEventTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid calendar event type %q", value)
}
