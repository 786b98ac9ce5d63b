package models

// All returns every persisted model, in an order safe for auto-migration.
func All() []any {
	return []any{
		&User{},
		&Event{},
		&PlannerState{},
		&Scenario{},
		&Appointment{},
		&VendorBooking{},
		&Payment{},
		&CalendarEvent{},
		&Vendor{},
		&Venue{},
	}
}
