package session

// UserProfile is the authenticated user's profile as returned by the backend.
// The client stores it verbatim and passes it through unmodified; fields are
// only ever read for display.
type UserProfile struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	Name       string `json:"name"`
	Phone      string `json:"phone,omitempty"`
	Department string `json:"department,omitempty"`
	Role       string `json:"role"`
	AvatarURL  string `json:"avatar_url,omitempty"`
}

// Roles assigned by the backend. The role string is opaque to the request
// pipeline; these constants exist for display and CLI routing only.
const (
	RoleHRAdministrator = "HR Administrator"
	RoleEmployee        = "Employee"
)

// Session is one authenticated identity: the bearer credentials plus the
// profile they belong to. Any field may be absent independently; the zero
// Session means "not logged in".
type Session struct {
	AccessToken  string       `json:"access_token,omitempty"`
	RefreshToken string       `json:"refresh_token,omitempty"`
	User         *UserProfile `json:"user,omitempty"`
}

// Authenticated reports whether the session carries an access token.
// It says nothing about whether the token is still accepted by the backend;
// expiry is only ever discovered through a 401 response.
func (s Session) Authenticated() bool {
	return s.AccessToken != ""
}
