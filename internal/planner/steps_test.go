package planner

import (
	"testing"

	"github.com/lib/pq"

	"github.com/urevent360-byte/urevent360app-sub000/pkg/db/models"
)

func stepKeys(steps []Step) []string {
	keys := make([]string, len(steps))
	for i, step := range steps {
		keys[i] = step.Key
	}
	return keys
}

func TestStepsForEventNoServicesReturnsFullFlow(t *testing.T) {
	t.Parallel()

	steps := StepsForEvent(&models.Event{})
	if len(steps) != 11 {
		t.Fatalf("expected 11 canonical steps, got %d", len(steps))
	}
	want := []string{"planning", "venue", "decoration", "catering", "bar", "planner", "photography", "dj", "staffing", "entertainment", "review"}
	got := stepKeys(steps)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("step order mismatch at %d: got %v", i, got)
		}
	}
}

func TestStepsForEventFiltersByServicesNeeded(t *testing.T) {
	t.Parallel()

	event := &models.Event{ServicesNeeded: pq.StringArray{"Catering", "Music/DJ"}}
	got := stepKeys(StepsForEvent(event))

	want := []string{"planning", "catering", "dj", "review"}
	if len(got) != len(want) {
		t.Fatalf("expected steps %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected steps %v, got %v", want, got)
		}
	}
}

func TestStepsForEventBookendsAlwaysRetained(t *testing.T) {
	t.Parallel()

	event := &models.Event{ServicesNeeded: pq.StringArray{"security"}}
	got := stepKeys(StepsForEvent(event))

	if len(got) != 2 || got[0] != "planning" || got[1] != "review" {
		t.Fatalf("expected only bookend steps, got %v", got)
	}
}
