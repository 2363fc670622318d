// Package audit builds the structured record of an executed rename batch
// and serializes it as JSON for later inspection or rollback tooling.
package audit

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/danieljhkim/safename/internal/planner"
)

// Entry records one completed rename.
type Entry struct {
	Source      string `json:"source"`
	Destination string `json:"destination"`
}

// Failure records one failed rename attempt.
type Failure struct {
	Source string `json:"source"`
	Error  string `json:"error,omitempty"`
}

// Log is the audit record for one executed rename plan.
type Log struct {
	Timestamp    string    `json:"timestamp"`
	Root         string    `json:"root"`
	TotalRenames int       `json:"total_renames"`
	TotalErrors  int       `json:"total_errors"`
	Renames      []Entry   `json:"renames"`
	Errors       []Failure `json:"errors"`
}

// NewLog builds a Log from the results of an executed plan.
func NewLog(root string, results []planner.RenameResult, now time.Time) *Log {
	log := &Log{
		Timestamp: now.UTC().Format(time.RFC3339),
		Root:      root,
		Renames:   []Entry{},
		Errors:    []Failure{},
	}

	for _, result := range results {
		if result.Success {
			log.Renames = append(log.Renames, Entry{
				Source:      result.Action.Source,
				Destination: result.Action.Destination,
			})
		} else {
			log.Errors = append(log.Errors, Failure{
				Source: result.Action.Source,
				Error:  result.ErrorMessage,
			})
		}
	}

	log.TotalRenames = len(log.Renames)
	log.TotalErrors = len(log.Errors)
	return log
}

// Marshal serializes the log as indented JSON with a trailing newline.
func (l *Log) Marshal() ([]byte, error) {
	data, err := json.MarshalIndent(l, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal audit log: %w", err)
	}
	return append(data, '\n'), nil
}

// Filename returns a timestamped log filename such as
// "rename_log_20260209_153045.json".
func Filename(now time.Time) string {
	return fmt.Sprintf("rename_log_%s.json", now.UTC().Format("20060102_150405"))
}
