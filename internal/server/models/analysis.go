package models

// AnalysisResult is the structured form of one LLM code-analysis reply.
//
// The four section fields hold the text block belonging to that section,
// including the header line that introduced it, so displayed sections start
// with their header. RawAnalysis always carries the verbatim reply for
// fallback display.
//
// If Error is non-empty the analysis failed before extraction; all other
// fields are unset and must be ignored.
type AnalysisResult struct {
	CodeReview     string `json:"code_review,omitempty"`
	Optimization   string `json:"optimization,omitempty"`
	Security       string `json:"security,omitempty"`
	RefactoredCode string `json:"refactored_code,omitempty"`
	RawAnalysis    string `json:"raw_analysis,omitempty"`
	Error          string `json:"error,omitempty"`
}

// Failed reports whether the result carries a provider fault instead of an
// extracted analysis.
func (r *AnalysisResult) Failed() bool {
	return r.Error != ""
}
