package userctx

import (
	"context"

	"merval-chat-service/internal/model"
)

// Fetcher retrieves the profile data used to personalize replies.
//
// Fetch returns nil when the backend is unreachable or the user has no
// usable profile; callers treat nil as "answer without personalization"
// rather than an error.
type Fetcher interface {
	Fetch(ctx context.Context, userID, bearerToken string) *model.UserContext
}
