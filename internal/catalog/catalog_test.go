package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// ============================================================================
// Embedded Catalog Tests
// ============================================================================

func TestLoad_ReturnsNineSeedActivities(t *testing.T) {
	t.Parallel()

	activities, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if len(activities) != 9 {
		t.Errorf("expected 9 activities, got %d", len(activities))
	}
	for _, name := range []string{"Chess Club", "Programming Class", "Basketball Team"} {
		if _, ok := activities[name]; !ok {
			t.Errorf("expected %q in seed catalog", name)
		}
	}
}

func TestLoad_SeedsChessClubRoster(t *testing.T) {
	t.Parallel()

	activities, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	chess, ok := activities["Chess Club"]
	if !ok {
		t.Fatal("expected Chess Club in seed catalog")
	}
	if len(chess.Participants) != 2 {
		t.Fatalf("expected 2 seeded participants, got %d", len(chess.Participants))
	}
	if !chess.HasParticipant("michael@mergington.edu") {
		t.Error("expected michael@mergington.edu on the Chess Club roster")
	}
	if !chess.HasParticipant("daniel@mergington.edu") {
		t.Error("expected daniel@mergington.edu on the Chess Club roster")
	}
}

func TestLoad_EveryActivityIsComplete(t *testing.T) {
	t.Parallel()

	activities, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	for name, activity := range activities {
		if activity.Description == "" {
			t.Errorf("%s: empty description", name)
		}
		if activity.Schedule == "" {
			t.Errorf("%s: empty schedule", name)
		}
		if activity.MaxParticipants < 1 {
			t.Errorf("%s: max_participants must be at least 1, got %d", name, activity.MaxParticipants)
		}
		if activity.Participants == nil {
			t.Errorf("%s: participants must be non-nil", name)
		}
	}
}

// ============================================================================
// Schema Validation Tests
// ============================================================================

func TestParse_RejectsMissingFields(t *testing.T) {
	t.Parallel()

	doc := []byte(`{
		"Chess Club": {
			"description": "Learn strategies",
			"participants": []
		}
	}`)

	_, err := parse(doc)
	if err == nil {
		t.Fatal("expected validation error for missing fields")
	}
	if !strings.Contains(err.Error(), "schedule") {
		t.Errorf("error should name the missing schedule field, got: %v", err)
	}
	if !strings.Contains(err.Error(), "max_participants") {
		t.Errorf("error should name the missing max_participants field, got: %v", err)
	}
}

func TestParse_RejectsDuplicateParticipants(t *testing.T) {
	t.Parallel()

	doc := []byte(`{
		"Chess Club": {
			"description": "Learn strategies",
			"schedule": "Fridays, 3:30 PM - 5:00 PM",
			"max_participants": 12,
			"participants": ["michael@mergington.edu", "michael@mergington.edu"]
		}
	}`)

	_, err := parse(doc)
	if err == nil {
		t.Fatal("expected validation error for duplicate participants")
	}
}

func TestParse_RejectsZeroCapacity(t *testing.T) {
	t.Parallel()

	doc := []byte(`{
		"Chess Club": {
			"description": "Learn strategies",
			"schedule": "Fridays, 3:30 PM - 5:00 PM",
			"max_participants": 0,
			"participants": []
		}
	}`)

	_, err := parse(doc)
	if err == nil {
		t.Fatal("expected validation error for zero max_participants")
	}
}

func TestParse_RejectsUnknownActivityFields(t *testing.T) {
	t.Parallel()

	doc := []byte(`{
		"Chess Club": {
			"description": "Learn strategies",
			"schedule": "Fridays, 3:30 PM - 5:00 PM",
			"max_participants": 12,
			"participants": [],
			"location": "Room 201"
		}
	}`)

	_, err := parse(doc)
	if err == nil {
		t.Fatal("expected validation error for unknown field")
	}
}

func TestParse_RejectsEmptyCatalog(t *testing.T) {
	t.Parallel()

	_, err := parse([]byte(`{}`))
	if err == nil {
		t.Fatal("expected validation error for empty catalog")
	}
}

func TestParse_NormalizesEmptyRoster(t *testing.T) {
	t.Parallel()

	doc := []byte(`{
		"New Club": {
			"description": "Brand new",
			"schedule": "Mondays, 3:30 PM - 4:30 PM",
			"max_participants": 10,
			"participants": []
		}
	}`)

	activities, err := parse(doc)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if activities["New Club"].Participants == nil {
		t.Error("expected empty roster to be a non-nil slice")
	}
}

// ============================================================================
// LoadFile Tests
// ============================================================================

func TestLoadFile_ReadsValidCatalog(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "catalog.json")
	doc := []byte(`{
		"Robotics Club": {
			"description": "Build and program robots",
			"schedule": "Wednesdays, 3:30 PM - 5:00 PM",
			"max_participants": 16,
			"participants": ["sam@mergington.edu"]
		}
	}`)
	if err := os.WriteFile(path, doc, 0o600); err != nil {
		t.Fatalf("write temp catalog: %v", err)
	}

	activities, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if len(activities) != 1 {
		t.Fatalf("expected 1 activity, got %d", len(activities))
	}
	if !activities["Robotics Club"].HasParticipant("sam@mergington.edu") {
		t.Error("expected sam@mergington.edu on the Robotics Club roster")
	}
}

func TestLoadFile_MissingFile_ReturnsError(t *testing.T) {
	t.Parallel()

	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.json"))
	if err == nil {
		t.Fatal("expected error for missing catalog file")
	}
}

func TestLoadFile_InvalidCatalog_ReturnsValidationError(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "catalog.json")
	if err := os.WriteFile(path, []byte(`{"Broken": {}}`), 0o600); err != nil {
		t.Fatalf("write temp catalog: %v", err)
	}

	_, err := LoadFile(path)
	if err == nil {
		t.Fatal("expected validation error for incomplete activity")
	}
	if !strings.Contains(err.Error(), "validation failed") {
		t.Errorf("expected validation failure, got: %v", err)
	}
}
