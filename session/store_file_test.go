package session_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/staffsync/go-staffsync/session"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *session.FileStore {
	t.Helper()
	return session.NewFileStore(filepath.Join(t.TempDir(), "session.json"))
}

func testSession() session.Session {
	return session.Session{
		AccessToken:  "A1",
		RefreshToken: "R1",
		User: &session.UserProfile{
			ID:    "user-1",
			Email: "hr@staffsync.com",
			Name:  "HR Admin",
			Role:  session.RoleHRAdministrator,
		},
	}
}

func TestFileStore_SaveAndLoad(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Save(testSession()))

	loaded, err := store.Load()
	require.NoError(t, err)
	require.Equal(t, "A1", loaded.AccessToken)
	require.Equal(t, "R1", loaded.RefreshToken)
	require.NotNil(t, loaded.User)
	require.Equal(t, session.RoleHRAdministrator, loaded.User.Role)
	require.True(t, loaded.Authenticated())
}

func TestFileStore_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")

	require.NoError(t, session.NewFileStore(path).Save(testSession()))

	// A fresh store instance simulates a new process.
	loaded, err := session.NewFileStore(path).Load()
	require.NoError(t, err)
	require.Equal(t, "A1", loaded.AccessToken)
	require.Equal(t, "hr@staffsync.com", loaded.User.Email)
}

func TestFileStore_LoadMissingFileIsEmptySession(t *testing.T) {
	store := newTestStore(t)

	loaded, err := store.Load()
	require.NoError(t, err)
	require.Equal(t, session.Session{}, loaded)
	require.False(t, loaded.Authenticated())
}

func TestFileStore_SetAccessToken(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Save(testSession()))

	require.NoError(t, store.SetAccessToken("A2"))

	loaded, err := store.Load()
	require.NoError(t, err)
	require.Equal(t, "A2", loaded.AccessToken)
	// Refresh token and profile are untouched.
	require.Equal(t, "R1", loaded.RefreshToken)
	require.Equal(t, "user-1", loaded.User.ID)
}

func TestFileStore_ClearIsIdempotent(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Save(testSession()))

	require.NoError(t, store.Clear())
	require.NoError(t, store.Clear())

	loaded, err := store.Load()
	require.NoError(t, err)
	require.Equal(t, session.Session{}, loaded)
}

func TestFileStore_FilePermissions(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Save(testSession()))

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestFileStore_CorruptFileIsAnError(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Save(testSession()))
	require.NoError(t, os.WriteFile(store.Path(), []byte("{not json"), 0600))

	_, err := store.Load()
	require.Error(t, err)
	require.Contains(t, err.Error(), "parsing session file")
}

func TestDefaultFilePath_EnvOverride(t *testing.T) {
	t.Setenv("STAFFSYNC_SESSION_FILE", "/tmp/custom-session.json")
	require.Equal(t, "/tmp/custom-session.json", session.DefaultFilePath())
}
