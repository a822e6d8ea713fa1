package synctypes

// Session is the authenticated-identity record. Its presence is the only
// authorization signal in the client.
type Session struct {
	// ID uniquely identifies the session.
	ID string `yaml:"id" json:"id"`

	// Name is the display name shown in the sidebar and greetings.
	Name string `yaml:"name" json:"name"`

	// Email is the address the user logged in with.
	Email string `yaml:"email" json:"email"`

	// Avatar is the short label (initials) rendered in avatar badges.
	Avatar string `yaml:"avatar" json:"avatar"`
}

// Clone returns a copy of the session, or nil for a nil session.
func (s *Session) Clone() *Session {
	if s == nil {
		return nil
	}
	c := *s
	return &c
}

// Credentials carries the login form values. Password is accepted but never
// validated or transmitted.
type Credentials struct {
	Email    string
	Password string
}
