package model

// UserContext is the profile data fetched from the backend to personalize
// replies. Any field may be empty; a nil *UserContext means the backend
// could not be reached and the conversation proceeds unpersonalized.
type UserContext struct {
	Profile     *UserProfile     `json:"profile,omitempty"`
	Preferences *UserPreferences `json:"preferences,omitempty"`
	Favorites   []string         `json:"favorites,omitempty"`
	Portfolio   *Portfolio       `json:"portfolio,omitempty"`
}

// UserProfile is the backend's basic user record.
type UserProfile struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UserPreferences captures the investment preferences a user has declared.
type UserPreferences struct {
	RiskTolerance     string   `json:"risk_tolerance"` // "conservador", "moderado", "agresivo"
	InvestmentHorizon string   `json:"investment_horizon"`
	Interests         []string `json:"interests"`
}

// Portfolio is the user's current holdings snapshot.
type Portfolio struct {
	TotalValue float64    `json:"total_value"`
	Currency   string     `json:"currency"`
	Positions  []Position `json:"positions"`
}

// Position is one instrument held in a portfolio.
type Position struct {
	Symbol   string  `json:"symbol"`
	Quantity float64 `json:"quantity"`
	Value    float64 `json:"value"`
}

// HasData reports whether the context carries anything worth mentioning
// in a prompt.
func (c *UserContext) HasData() bool {
	if c == nil {
		return false
	}
	return c.Profile != nil || c.Preferences != nil || len(c.Favorites) > 0 || c.Portfolio != nil
}
