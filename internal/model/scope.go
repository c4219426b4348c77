package model

// Scope is the authenticated identity extracted from a verified JWT.
type Scope struct {
	UserID string
	Name   string
	Email  string
}
