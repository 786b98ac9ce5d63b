package planner

import (
	"github.com/urevent360-byte/urevent360app-sub000/internal/directory"
	"github.com/urevent360-byte/urevent360app-sub000/pkg/db/models"
)

// Step is one entry of the guided planner flow. ServiceTag is empty for the
// bookend steps that do not map to a vendor service.
type Step struct {
	Key        string `json:"key"`
	Title      string `json:"title"`
	Subtitle   string `json:"subtitle"`
	ServiceTag string `json:"service_tag,omitempty"`
}

// canonicalSteps is the full ordered planner flow.
var canonicalSteps = []Step{
	{Key: "planning", Title: "Start Planning", Subtitle: "Set the basics for your celebration"},
	{Key: "venue", Title: "Choose a Venue", Subtitle: "Find the right space for your guests", ServiceTag: "venue"},
	{Key: "decoration", Title: "Decoration", Subtitle: "Style the space with decor and florals", ServiceTag: "decoration"},
	{Key: "catering", Title: "Catering", Subtitle: "Pick the food and cuisine", ServiceTag: "catering"},
	{Key: "bar", Title: "Bar Service", Subtitle: "Drinks and bartending", ServiceTag: "bar"},
	{Key: "planner", Title: "Event Planner", Subtitle: "Bring in a professional coordinator", ServiceTag: "planner"},
	{Key: "photography", Title: "Photography", Subtitle: "Capture the day", ServiceTag: "photography"},
	{Key: "dj", Title: "Music & DJ", Subtitle: "Set the soundtrack", ServiceTag: "dj"},
	{Key: "staffing", Title: "Staffing", Subtitle: "Servers, hosts, and support staff", ServiceTag: "staffing"},
	{Key: "entertainment", Title: "Entertainment", Subtitle: "Performers and artists", ServiceTag: "entertainment"},
	{Key: "review", Title: "Review & Finalize", Subtitle: "Check your selections and finalize"},
}

// StepsForEvent returns the planner steps filtered by the event's
// services_needed. The bookend steps are always retained; with no declared
// services the full flow is returned. Order always follows the canonical
// flow.
func StepsForEvent(event *models.Event) []Step {
	if event == nil || len(event.ServicesNeeded) == 0 {
		return allSteps()
	}

	steps := make([]Step, 0, len(canonicalSteps))
	for _, step := range canonicalSteps {
		if step.ServiceTag == "" {
			steps = append(steps, step)
			continue
		}
		for _, need := range event.ServicesNeeded {
			if directory.ServiceTagsMatch(need, step.ServiceTag) {
				steps = append(steps, step)
				break
			}
		}
	}
	return steps
}

func allSteps() []Step {
	steps := make([]Step, len(canonicalSteps))
	copy(steps, canonicalSteps)
	return steps
}
