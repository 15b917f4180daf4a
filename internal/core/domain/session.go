package domain

// Session identifies the user on whose behalf an operation runs.
// It is passed explicitly into every service call instead of being looked up globally.
type Session struct {
	UserID string
}

// NewSession creates a session for the given user.
func NewSession(userID string) Session {
	return Session{UserID: userID}
}

// IsZero reports whether the session has no user.
func (s Session) IsZero() bool {
	return s.UserID == ""
}
