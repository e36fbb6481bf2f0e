package domain

// UserContext carries the authenticated identity resolved from a session
// token. UserID is the opaque identifier the workspace store is keyed by.
type UserContext struct {
	UserID string `json:"user_id"`
	Email  string `json:"email,omitempty"`
}
