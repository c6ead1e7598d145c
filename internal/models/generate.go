package models

// PromptRequest is the body of POST /api/generate. Prompt is a pointer so an
// absent field can be told apart from an empty one.
type PromptRequest struct {
	Prompt *string `json:"prompt"`
}

// GenerationResult carries the cleaned model output.
type GenerationResult struct {
	Text string `json:"text"`
}

// ErrorPayload is returned instead of GenerationResult on failure.
type ErrorPayload struct {
	Error string `json:"error"`
}
