package enums

import "fmt"

// AppointmentType distinguishes how a consultation takes place.
type AppointmentType string

const (
	AppointmentTypeInPerson AppointmentType = "in_person"
	AppointmentTypePhone    AppointmentType = "phone"
	AppointmentTypeVirtual  AppointmentType = "virtual"
)

var validAppointmentTypes = []AppointmentType{
	AppointmentTypeInPerson,
	AppointmentTypePhone,
	AppointmentTypeVirtual,
}

// String implements fmt.Stringer.
func (a AppointmentType) String() string {
	return string(a)
}

// IsValid reports whether the value is a known AppointmentType.
func (a AppointmentType) IsValid() bool {
	for _, candidate := range validAppointmentTypes {
		if candidate == a {
			return true
		}
	}
	return false
}

// ParseAppointmentType converts raw input into an AppointmentType.
func ParseAppointmentType(value string) (AppointmentType, error) {
	for _, candidate := range validAppointmentTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid appointment type %q", value)
}

// AppointmentStatus tracks the consultation state machine.
type AppointmentStatus string

const (
	AppointmentStatusRequested   AppointmentStatus = "requested"
	AppointmentStatusConfirmed   AppointmentStatus = "confirmed"
	AppointmentStatusCancelled   AppointmentStatus = "cancelled"
	AppointmentStatusRescheduled AppointmentStatus = "rescheduled"
	AppointmentStatusCompleted   AppointmentStatus = "completed"
)

var validAppointmentStatuses = []AppointmentStatus{
	AppointmentStatusRequested,
	AppointmentStatusConfirmed,
	AppointmentStatusCancelled,
	AppointmentStatusRescheduled,
	AppointmentStatusCompleted,
}

// String implements fmt.Stringer.
func (a AppointmentStatus) String() string {
	return string(a)
}

// IsValid reports whether the value is a known AppointmentStatus.
func (a AppointmentStatus) IsValid() bool {
	for _, candidate := range validAppointmentStatuses {
		if candidate == a {
			return true
		}
	}
	return false
}

// IsTerminal reports whether the status accepts no further transitions.
func (a AppointmentStatus) IsTerminal() bool {
	return a == AppointmentStatusCancelled || a == AppointmentStatusCompleted
}

// ParseAppointmentStatus converts raw input into an AppointmentStatus.
func ParseAppointmentStatus(value string) (AppointmentStatus, error) {
	for _, candidate := range validAppointmentStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid appointment status %q", value)
}

// VendorResponse is the vendor's answer to an appointment request.
type VendorResponse string

const (
	VendorResponseApproved    VendorResponse = "approved"
	VendorResponseRejected    VendorResponse = "rejected"
	VendorResponseRescheduled VendorResponse = "rescheduled"
)

var validVendorResponses = []VendorResponse{
	VendorResponseApproved,
	VendorResponseRejected,
	VendorResponseRescheduled,
}

// String implements fmt.Stringer.
func (v VendorResponse) String() string {
	return string(v)
}

// IsValid reports whether the value is a known VendorResponse.
func (v VendorResponse) IsValid() bool {
	for _, candidate := range validVendorResponses {
		if candidate == v {
			return true
		}
	}
	return false
}

// ParseVendorResponse converts raw input into a VendorResponse.
func ParseVendorResponse(value string) (VendorResponse, error) {
	for _, candidate := range validVendorResponses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid vendor response %q", value)
}
