package models

import "time"

// HistoryEntry is one line of a user's analysis log. Entries are append-only
// and never mutated after creation.
//
// HasErrors is true when the analysis produced no error. The name is
// historical; renaming it would change the persisted format.
type HistoryEntry struct {
	Timestamp       time.Time `json:"timestamp"`
	Language        string    `json:"language"`
	CodeSnippet     string    `json:"code_snippet"`
	HasErrors       bool      `json:"has_errors"`
	AnalysisSummary string    `json:"analysis_summary"`
}
