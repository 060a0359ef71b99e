package port

// DocumentReader loads a validated text document.
type DocumentReader interface {
	ReadDocument(path string) (string, error)
}

// ResultWriter persists a formatted score.
type ResultWriter interface {
	WriteResult(path string, score float64) error
}

// CandidateWalker lists candidate documents under a root directory.
type CandidateWalker interface {
	Walk(root string) ([]FileInfo, error)
}

// FileInfo describes a discovered candidate.
type FileInfo struct {
	Path    string
	RelPath string
	Size    int64
}
