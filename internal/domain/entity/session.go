package entity

// Session is the process-wide operator session. Authenticated is true only
// when both the token and the user snapshot are present, sourced either from
// persistent storage or a successful login.
type Session struct {
	User          *User  `json:"user"`
	Token         string `json:"token"`
	Authenticated bool   `json:"authenticated"`
}

// Credentials are the login form fields forwarded to the platform API.
type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResult is a discriminated result: a failed login is not an error,
// callers must check Success.
type LoginResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}
