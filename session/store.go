package session

// Store persists a Session across process restarts. Implementations must be
// safe for concurrent use: the request pipeline reads the store on every
// dispatch and concurrent refreshes may race on SetAccessToken. Writes are
// last-write-wins.
type Store interface {
	// Save replaces the whole session. The access token, refresh token and
	// user profile are written as one unit.
	Save(session Session) error

	// Load returns the current session. Absent entries yield zero fields,
	// never an error; only a genuine storage failure (unreadable file,
	// corrupt data) is an error.
	Load() (Session, error)

	// SetAccessToken replaces only the access token, leaving the refresh
	// token and user profile untouched. This is the refresh path.
	SetAccessToken(token string) error

	// Clear removes all session state. Idempotent: clearing an already
	// empty store is not an error.
	Clear() error
}
