package auth

// State is the login progress of one session.
// It is one of Anonymous, PasswordVerified or Authenticated.
type State interface {
	isState()
}

// Anonymous is a session that has not passed any check.
type Anonymous struct{}

// PasswordVerified is a session whose password step succeeded.
type PasswordVerified struct {
	Username string
}

// Authenticated is a session that passed both the password and the admin key step.
type Authenticated struct {
	Username string
}

func (Anonymous) isState()        {}
func (PasswordVerified) isState() {}
func (Authenticated) isState()    {}

// Subject returns the username bound to s, if any.
func Subject(s State) (string, bool) {
	switch st := s.(type) {
	case PasswordVerified:
		return st.Username, st.Username != ""
	case Authenticated:
		return st.Username, st.Username != ""
	default:
		return "", false
	}
}

// IsAuthenticated reports whether s completed the full login.
func IsAuthenticated(s State) bool {
	st, ok := s.(Authenticated)
	return ok && st.Username != ""
}
