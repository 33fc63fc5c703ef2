package share

// Request represents the JSON body of a share call
type Request struct {
	Summary    string   `json:"summary" validate:"required,notblank"`
	Recipients []string `json:"recipients" validate:"required,min=1,dive,required,email"`
	Subject    string   `json:"subject"`
	Sender     string   `json:"sender" validate:"omitempty,email"`
}
