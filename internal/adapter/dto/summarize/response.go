package summarize

// Response represents a successful summarize call
type Response struct {
	Success      bool   `json:"success"`
	Summary      string `json:"summary"`
	OriginalText string `json:"originalText"`
}
