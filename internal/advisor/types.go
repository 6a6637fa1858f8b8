package advisor

// Message is one turn of advisory chat history.
type Message struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}

// completionRequest is the payload sent to the text-completion service.
type completionRequest struct {
	Model   string    `json:"model"`
	Prompt  string    `json:"prompt"`
	Context string    `json:"context,omitempty"`
	History []Message `json:"history,omitempty"`
}

// completionResponse is the payload returned by the text-completion service.
type completionResponse struct {
	Text string `json:"text"`
}
