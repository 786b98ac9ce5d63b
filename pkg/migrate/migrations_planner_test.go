package migrate_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestPlannerStatesMigrationContainsConstraints(t *testing.T) {
	matches, err := filepath.Glob(filepath.Join("migrations", "*_create_planner_states_table.sql"))
	if err != nil {
		t.Fatalf("glob migrations: %v", err)
	}
	if len(matches) == 0 {
		t.Fatalf("no planner_states migration file found")
	}

	data, err := os.ReadFile(matches[0])
	if err != nil {
		t.Fatalf("read migration file: %v", err)
	}
	content := string(data)

	checks := []string{
		"CREATE TABLE IF NOT EXISTS planner_states",
		"FOREIGN KEY (event_id) REFERENCES events(id) ON DELETE CASCADE",
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_planner_states_event_id",
		"cart_items JSONB NOT NULL DEFAULT '[]'::jsonb",
		"DROP TABLE IF EXISTS planner_states",
	}

	for _, sub := range checks {
		if !strings.Contains(content, sub) {
			t.Errorf("missing expected statement %q", sub)
		}
	}
}

func TestBookingsMigrationContainsConstraints(t *testing.T) {
	matches, err := filepath.Glob(filepath.Join("migrations", "*_create_vendor_bookings_table.sql"))
	if err != nil {
		t.Fatalf("glob migrations: %v", err)
	}
	if len(matches) == 0 {
		t.Fatalf("no vendor_bookings migration file found")
	}

	data, err := os.ReadFile(matches[0])
	if err != nil {
		t.Fatalf("read migration file: %v", err)
	}
	content := string(data)

	checks := []string{
		"CREATE TABLE IF NOT EXISTS vendor_bookings",
		"CHECK (cost >= 0)",
		"CHECK (deposit_amount >= 0)",
		"CHECK (status IN ('confirmed', 'cancelled', 'completed'))",
		"DROP TABLE IF EXISTS vendor_bookings",
	}

	for _, sub := range checks {
		if !strings.Contains(content, sub) {
			t.Errorf("missing expected statement %q", sub)
		}
	}
}
