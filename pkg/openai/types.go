package openai

// Config holds client configuration.
type Config struct {
	APIKey      string
	Model       string
	AssistantID string // optional; RunAssistant fails fast when empty
	BaseURL     string
}

// Message is a single chat message in OpenAI wire format.
type Message struct {
	Role    string `json:"role"` // "system", "user", "assistant"
	Content string `json:"content"`
}

// CompletionRequest is the /chat/completions request body.
type CompletionRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
	Temperature float64   `json:"temperature,omitempty"`
}

// CompletionResponse is the /chat/completions response body.
type CompletionResponse struct {
	ID      string   `json:"id"`
	Model   string   `json:"model"`
	Choices []Choice `json:"choices"`
	Usage   Usage    `json:"usage"`
}

// Choice is a single completion candidate.
type Choice struct {
	Index        int     `json:"index"`
	Message      Message `json:"message"`
	FinishReason string  `json:"finish_reason"`
}

// Usage tracks token consumption.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// ErrorResponse is the API error envelope.
type ErrorResponse struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// Thread is an Assistants API conversation thread.
type Thread struct {
	ID string `json:"id"`
}

// Run is an assistant execution over a thread.
type Run struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// ThreadMessage is a message stored on a thread.
type ThreadMessage struct {
	ID      string          `json:"id"`
	Role    string          `json:"role"`
	Content []ThreadContent `json:"content"`
}

// ThreadContent is one content block of a thread message.
type ThreadContent struct {
	Type string `json:"type"`
	Text struct {
		Value string `json:"value"`
	} `json:"text"`
}

// ThreadMessageList is the message listing response, newest first.
type ThreadMessageList struct {
	Data []ThreadMessage `json:"data"`
}

// Status reports which parts of the API are usable right now.
type Status struct {
	Configured         bool `json:"configured"`
	Available          bool `json:"available"`
	AssistantAvailable bool `json:"assistant_available"`
}
