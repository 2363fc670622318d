package engine

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/danieljhkim/safename/internal/clock"
	"github.com/danieljhkim/safename/internal/fsops"
	"github.com/danieljhkim/safename/internal/planner"
	"github.com/danieljhkim/safename/internal/sanitize"
)

func newTestEngine() *Engine {
	return New(fsops.NewRealFS(), clock.NewFakeClock(time.Date(2026, 2, 9, 15, 30, 45, 0, time.UTC)))
}

func mustWriteFile(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatalf("failed to create %s: %v", path, err)
	}
}

func scanTree(t *testing.T, eng *Engine, root string) *planner.RenamePlan {
	t.Helper()
	plan, err := eng.Scan(&ScanRequest{Root: root, Options: sanitize.DefaultOptions()})
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	return plan
}

func TestExecute_RenamesTree(t *testing.T) {
	root := t.TempDir()
	badDir := filepath.Join(root, "old:dir")
	if err := os.Mkdir(badDir, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	mustWriteFile(t, filepath.Join(badDir, "bad:file.txt"))
	mustWriteFile(t, filepath.Join(root, "CON.txt"))

	eng := newTestEngine()
	plan := scanTree(t, eng, root)
	if plan.RenamesNeeded != 3 {
		t.Fatalf("RenamesNeeded = %d, want 3", plan.RenamesNeeded)
	}

	result, err := eng.Execute(&ExecuteRequest{Plan: plan})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if result.Succeeded != 3 || result.Failed != 0 {
		t.Fatalf("result = %d ok / %d failed, want 3/0", result.Succeeded, result.Failed)
	}

	// The renamed tree must exist on disk.
	wantPaths := []string{
		filepath.Join(root, "old：dir"),
		filepath.Join(root, "old：dir", "bad：file.txt"),
		filepath.Join(root, "_CON.txt"),
	}
	for _, path := range wantPaths {
		if _, err := os.Lstat(path); err != nil {
			t.Errorf("expected %s to exist: %v", path, err)
		}
	}

	// A second scan of the renamed tree must be clean.
	again := scanTree(t, eng, root)
	if again.HasChanges() {
		t.Errorf("tree not clean after execution: %+v", again.Actions)
	}
}

func TestExecute_SourceVanished(t *testing.T) {
	root := t.TempDir()
	mustWriteFile(t, filepath.Join(root, "a:1.txt"))
	mustWriteFile(t, filepath.Join(root, "b:2.txt"))

	eng := newTestEngine()
	plan := scanTree(t, eng, root)

	// Simulate another process deleting a source between scan and execute.
	if err := os.Remove(filepath.Join(root, "a:1.txt")); err != nil {
		t.Fatalf("remove: %v", err)
	}

	result, err := eng.Execute(&ExecuteRequest{Plan: plan})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if result.Failed != 1 || result.Succeeded != 1 {
		t.Fatalf("result = %d ok / %d failed, want 1/1", result.Succeeded, result.Failed)
	}
	for _, res := range result.Results {
		if res.Action.OriginalName == "a:1.txt" {
			if res.Success {
				t.Errorf("vanished source reported as success")
			}
			if !strings.Contains(res.ErrorMessage, "no longer exists") {
				t.Errorf("ErrorMessage = %q", res.ErrorMessage)
			}
		}
	}

	// The surviving action still went through.
	if _, err := os.Lstat(filepath.Join(root, "b：2.txt")); err != nil {
		t.Errorf("expected surviving rename to be applied: %v", err)
	}
}

func TestExecute_DestinationOccupied(t *testing.T) {
	root := t.TempDir()
	mustWriteFile(t, filepath.Join(root, "a:1.txt"))

	eng := newTestEngine()
	plan := scanTree(t, eng, root)

	// Simulate another process creating the destination.
	mustWriteFile(t, filepath.Join(root, "a：1.txt"))

	result, err := eng.Execute(&ExecuteRequest{Plan: plan})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if result.Failed != 1 {
		t.Fatalf("Failed = %d, want 1", result.Failed)
	}
	if !strings.Contains(result.Results[0].ErrorMessage, "already exists") {
		t.Errorf("ErrorMessage = %q", result.Results[0].ErrorMessage)
	}

	// Source must be untouched after the refused rename.
	if _, err := os.Lstat(filepath.Join(root, "a:1.txt")); err != nil {
		t.Errorf("source should survive a refused rename: %v", err)
	}
}

func TestExecute_WritesAuditLog(t *testing.T) {
	root := t.TempDir()
	mustWriteFile(t, filepath.Join(root, "a:1.txt"))

	eng := newTestEngine()
	plan := scanTree(t, eng, root)

	logPath := filepath.Join(t.TempDir(), "log.json")
	result, err := eng.Execute(&ExecuteRequest{Plan: plan, LogPath: logPath})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if result.LogPath != logPath {
		t.Errorf("LogPath = %q, want %q", result.LogPath, logPath)
	}

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("audit log not written: %v", err)
	}

	var log struct {
		Timestamp    string `json:"timestamp"`
		Root         string `json:"root"`
		TotalRenames int    `json:"total_renames"`
		TotalErrors  int    `json:"total_errors"`
	}
	if err := json.Unmarshal(data, &log); err != nil {
		t.Fatalf("audit log is not valid JSON: %v", err)
	}
	if log.Root != plan.Root {
		t.Errorf("log root = %q, want %q", log.Root, plan.Root)
	}
	if log.TotalRenames != 1 || log.TotalErrors != 0 {
		t.Errorf("log counts = %d/%d, want 1/0", log.TotalRenames, log.TotalErrors)
	}
	if log.Timestamp != "2026-02-09T15:30:45Z" {
		t.Errorf("log timestamp = %q", log.Timestamp)
	}
}

func TestDefaultLogPath(t *testing.T) {
	eng := newTestEngine()
	if got := eng.DefaultLogPath(); got != "rename_log_20260209_153045.json" {
		t.Errorf("DefaultLogPath() = %q", got)
	}
}

func TestExecute_EmptyPlan(t *testing.T) {
	root := t.TempDir()
	mustWriteFile(t, filepath.Join(root, "clean.txt"))

	eng := newTestEngine()
	plan := scanTree(t, eng, root)

	result, err := eng.Execute(&ExecuteRequest{Plan: plan})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if len(result.Results) != 0 || result.Succeeded != 0 || result.Failed != 0 {
		t.Errorf("empty plan produced results: %+v", result)
	}
}
