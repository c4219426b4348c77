package responder

import "time"

const (
	// completionMaxTokens keeps replies short enough for a chat UI.
	completionMaxTokens   = 300
	completionTemperature = 0.3

	assistantTimeout  = 35 * time.Second
	completionTimeout = 30 * time.Second

	// summaryTemperature is looser than the reply temperature: summaries
	// paraphrase rather than quote.
	summaryMaxTokens   = 300
	summaryTemperature = 0.5

	sentimentMaxTokens   = 200
	sentimentTemperature = 0.3
)
