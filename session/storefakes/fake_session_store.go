package storefakes

import (
	"sync"

	"github.com/staffsync/go-staffsync/session"
)

var _ session.Store = (*FakeSessionStore)(nil)

// FakeSessionStore is an in-memory session.Store for tests and embedders
// that do not want anything written to disk.
type FakeSessionStore struct {
	mu      sync.RWMutex
	session session.Session

	// Optional error injection, one per operation.
	SaveErr  error
	LoadErr  error
	ClearErr error
}

func NewFakeSessionStore() *FakeSessionStore {
	return &FakeSessionStore{}
}

// Seed replaces the stored session without going through Save, so tests can
// arrange state regardless of injected errors.
func (f *FakeSessionStore) Seed(s session.Session) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.session = s
}

func (f *FakeSessionStore) Save(s session.Session) error {
	if f.SaveErr != nil {
		return f.SaveErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.session = s
	return nil
}

func (f *FakeSessionStore) Load() (session.Session, error) {
	if f.LoadErr != nil {
		return session.Session{}, f.LoadErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.session, nil
}

func (f *FakeSessionStore) SetAccessToken(token string) error {
	if f.SaveErr != nil {
		return f.SaveErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.session.AccessToken = token
	return nil
}

func (f *FakeSessionStore) Clear() error {
	if f.ClearErr != nil {
		return f.ClearErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.session = session.Session{}
	return nil
}
