package share

// Response represents a successful share call
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
