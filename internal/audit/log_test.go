package audit

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/danieljhkim/safename/internal/planner"
)

var testTime = time.Date(2026, 2, 9, 15, 30, 45, 0, time.UTC)

func TestNewLog(t *testing.T) {
	results := []planner.RenameResult{
		{
			Action:  planner.RenameAction{Source: "/root/a:1.txt", Destination: "/root/a_1.txt"},
			Success: true,
		},
		{
			Action:       planner.RenameAction{Source: "/root/b:2.txt", Destination: "/root/b_2.txt"},
			Success:      false,
			ErrorMessage: "destination already exists: /root/b_2.txt",
		},
	}

	log := NewLog("/root", results, testTime)

	if log.Timestamp != "2026-02-09T15:30:45Z" {
		t.Errorf("Timestamp = %q", log.Timestamp)
	}
	if log.Root != "/root" {
		t.Errorf("Root = %q", log.Root)
	}
	if log.TotalRenames != 1 || log.TotalErrors != 1 {
		t.Errorf("counts = %d/%d, want 1/1", log.TotalRenames, log.TotalErrors)
	}
	if log.Renames[0].Source != "/root/a:1.txt" || log.Renames[0].Destination != "/root/a_1.txt" {
		t.Errorf("Renames[0] = %+v", log.Renames[0])
	}
	if log.Errors[0].Source != "/root/b:2.txt" || log.Errors[0].Error == "" {
		t.Errorf("Errors[0] = %+v", log.Errors[0])
	}
}

func TestNewLog_EmptyResults(t *testing.T) {
	log := NewLog("/root", nil, testTime)

	// Empty slices must serialize as [] rather than null.
	data, err := log.Marshal()
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("round trip failed: %v", err)
	}
	if decoded["renames"] == nil {
		t.Errorf("renames serialized as null")
	}
	if decoded["errors"] == nil {
		t.Errorf("errors serialized as null")
	}
}

func TestFilename(t *testing.T) {
	if got := Filename(testTime); got != "rename_log_20260209_153045.json" {
		t.Errorf("Filename() = %q", got)
	}
}
