package summarize

// Request represents the JSON body of a summarize call. The endpoint also
// accepts a multipart form with a "file" part or a "transcript" field.
type Request struct {
	Transcript   string `json:"transcript" form:"transcript"`
	CustomPrompt string `json:"customPrompt" form:"customPrompt"`
}
