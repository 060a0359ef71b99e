package domain

import "time"

// Similarity holds both metrics and their rounded average.
type Similarity struct {
	Jaccard float64 `json:"jaccard"`
	Cosine  float64 `json:"cosine"`
	Score   float64 `json:"score"`
}

// Report describes one completed check of a candidate against an original.
type Report struct {
	ID              string     `json:"id"`
	OriginalPath    string     `json:"original_path"`
	CandidatePath   string     `json:"candidate_path"`
	ResultPath      string     `json:"result_path"`
	Backend         string     `json:"backend"`
	OriginalTokens  int        `json:"original_tokens"`
	CandidateTokens int        `json:"candidate_tokens"`
	Similarity      Similarity `json:"similarity"`
	CreatedAt       time.Time  `json:"created_at"`
}

// BatchResult summarizes a batch run.
type BatchResult struct {
	OriginalPath string        `json:"original_path"`
	Reports      []Report      `json:"reports"`
	Failures     []FailedCheck `json:"failures,omitempty"`
}

// FailedCheck records a candidate that could not be checked.
type FailedCheck struct {
	CandidatePath string `json:"candidate_path"`
	Error         string `json:"error"`
}
