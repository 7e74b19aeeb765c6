package model

import "time"

// Model is a monitorable record type: an "app_label.ModelName" identifier bound to a table.
type Model struct {
	AppLabel string `json:"app_label"`
	Name     string `json:"name"`
	Table    string `json:"table"`
}

// Label returns the "app_label.ModelName" identifier.
func (m Model) Label() string {
	return m.AppLabel + "." + m.Name
}

// MonitorResult is the outcome of a successful check-monitor run.
type MonitorResult struct {
	Model      string    `json:"model"`
	Table      string    `json:"table"`
	Filter     string    `json:"filter"`
	Count      int64     `json:"count"`
	JobID      string    `json:"job_id,omitempty"`
	JobUpdated bool      `json:"job_updated"`
	CheckedAt  time.Time `json:"checked_at"`
}

// NeedsAttention reports whether any record matched.
func (r MonitorResult) NeedsAttention() bool {
	return r.Count > 0
}
