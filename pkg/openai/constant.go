package openai

import "time"

const (
	// DefaultBaseURL is the default OpenAI API endpoint
	DefaultBaseURL = "https://api.openai.com/v1"

	// DefaultModel is the completion model used when none is configured
	DefaultModel = "gpt-3.5-turbo-0125"

	// DefaultTimeout bounds a single HTTP round trip to the API
	DefaultTimeout = 60 * time.Second

	// assistantsBetaHeader is required on every Assistants API call
	assistantsBetaHeader = "assistants=v2"
)

// Run statuses returned by the Assistants API.
const (
	RunStatusQueued     = "queued"
	RunStatusInProgress = "in_progress"
	RunStatusCompleted  = "completed"
)

const (
	// runPollInterval is the wait between run status polls
	runPollInterval = time.Second

	// runMaxWait caps how long an assistant run may stay queued/in progress
	// before the call is abandoned
	runMaxWait = 30 * time.Second
)
