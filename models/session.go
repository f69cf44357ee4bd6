package models

// Session states. A visitor is anonymous until they log in or enter as
// a guest; a guest has cart continuity but no client record.
const (
	SessionAnonymous     = "anonymous"
	SessionGuest         = "guest"
	SessionAuthenticated = "authenticated"
)

// Session describes the current visitor as resolved from their token.
type Session struct {
	State     string  `json:"state"`
	SessionID string  `json:"session_id,omitempty"`
	IsGuest   bool    `json:"is_guest"`
	Client    *Client `json:"client,omitempty"`
}

// Anonymous is the zero-value session returned whenever a token is
// missing, expired, revoked or no longer resolves to a client.
func Anonymous() Session {
	return Session{State: SessionAnonymous}
}
