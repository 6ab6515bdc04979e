package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// FileStore persists the session as a single JSON file under the user's
// config directory. The file is the localStorage analogue for a terminal
// client: it survives process restarts and is scoped to one OS user.
//
// The whole session is one composite record written atomically (temp file +
// rename), so a crash can never leave the access token and user profile out
// of step with each other.
type FileStore struct {
	path string
	mu   sync.Mutex
}

var _ Store = (*FileStore)(nil)

// DefaultFilePath returns the well-known session file location. Checks
// STAFFSYNC_SESSION_FILE first, then $XDG_CONFIG_HOME/staffsync/session.json,
// then ~/.config/staffsync/session.json.
func DefaultFilePath() string {
	if envPath := os.Getenv("STAFFSYNC_SESSION_FILE"); envPath != "" {
		return envPath
	}

	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			// Fallback; this should rarely happen.
			return filepath.Join(os.TempDir(), "staffsync-session.json")
		}
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "staffsync", "session.json")
}

// NewFileStore creates a FileStore at the given path. An empty path uses
// DefaultFilePath. The file is not created until the first Save.
func NewFileStore(path string) *FileStore {
	if path == "" {
		path = DefaultFilePath()
	}
	return &FileStore{path: path}
}

// Path returns the session file location.
func (fs *FileStore) Path() string {
	return fs.path
}

func (fs *FileStore) Save(session Session) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return fs.write(session)
}

func (fs *FileStore) Load() (Session, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return fs.read()
}

func (fs *FileStore) SetAccessToken(token string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	session, err := fs.read()
	if err != nil {
		return err
	}
	session.AccessToken = token
	return fs.write(session)
}

func (fs *FileStore) Clear() error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	if err := os.Remove(fs.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("session: removing session file %s: %w", fs.path, err)
	}
	return nil
}

func (fs *FileStore) read() (Session, error) {
	data, err := os.ReadFile(fs.path)
	if err != nil {
		if os.IsNotExist(err) {
			return Session{}, nil
		}
		return Session{}, fmt.Errorf("session: reading session file %s: %w", fs.path, err)
	}

	var session Session
	if err := json.Unmarshal(data, &session); err != nil {
		return Session{}, fmt.Errorf("session: parsing session file %s: %w", fs.path, err)
	}
	return session, nil
}

// write serializes the session and atomically replaces the file. The session
// file is written with mode 0600 (owner-only read/write) since it contains
// bearer credentials; the parent directory is created with mode 0700.
func (fs *FileStore) write(session Session) error {
	data, err := json.MarshalIndent(session, "", "  ")
	if err != nil {
		return fmt.Errorf("session: marshaling session: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(fs.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("session: creating session directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".session-*.json")
	if err != nil {
		return fmt.Errorf("session: creating temp session file: %w", err)
	}
	tmpName := tmp.Name()

	if err := tmp.Chmod(0600); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("session: setting session file mode: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("session: writing session file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("session: closing session file: %w", err)
	}

	if err := os.Rename(tmpName, fs.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("session: replacing session file %s: %w", fs.path, err)
	}
	return nil
}
