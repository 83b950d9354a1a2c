package session

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Dhaneyl/course-platform/internal/app_errors"
	"github.com/Dhaneyl/course-platform/internal/storage/localstore"
	"github.com/Dhaneyl/course-platform/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*Store, *localstore.Store) {
	t.Helper()
	kv, err := localstore.Open(filepath.Join(t.TempDir(), "store.json"), logger.New("prod"))
	require.NoError(t, err)
	return New(logger.New("prod"), kv, 0), kv
}

func TestLogin_DemoAccount_FixedIdentity(t *testing.T) {
	s, _ := newTestStore(t)

	require.True(t, s.Login(context.Background(), DemoEmail, "whatever"))

	student := s.Current()
	require.NotNil(t, student)
	assert.Equal(t, "student-demo", student.ID)
	assert.Equal(t, "Demo User", student.Name)
	assert.Equal(t, DemoEmail, student.Email)
	assert.True(t, s.IsAuthenticated())
}

func TestLogin_SynthesizesStudentFromEmail(t *testing.T) {
	s, _ := newTestStore(t)

	require.True(t, s.Login(context.Background(), "jane.doe@example.com", "pw"))

	student := s.Current()
	require.NotNil(t, student)
	assert.Equal(t, "jane.doe", student.Name)
	assert.Equal(t, "jane.doe@example.com", student.Email)
	assert.Contains(t, student.ID, "student-")
	assert.Contains(t, student.Avatar, "dicebear.com")
}

func TestLogin_PersistsIdentity(t *testing.T) {
	s, kv := newTestStore(t)

	require.True(t, s.Login(context.Background(), DemoEmail, "pw"))

	raw, ok := kv.Get(localstore.KeyAuth)
	require.True(t, ok)

	var stored map[string]any
	require.NoError(t, json.Unmarshal(raw, &stored))
	assert.Equal(t, "student-demo", stored["id"])
}

func TestLogin_CancelledContext(t *testing.T) {
	kv, err := localstore.Open(filepath.Join(t.TempDir(), "store.json"), logger.New("prod"))
	require.NoError(t, err)
	s := New(logger.New("prod"), kv, time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.False(t, s.Login(ctx, DemoEmail, "pw"))
	assert.False(t, s.IsAuthenticated())
}

func TestRegister(t *testing.T) {
	s, _ := newTestStore(t)

	require.True(t, s.Register(context.Background(), "Jane Doe", "jane@example.com", "pw"))

	student := s.Current()
	require.NotNil(t, student)
	assert.Equal(t, "Jane Doe", student.Name)
	assert.Equal(t, "jane@example.com", student.Email)
}

func TestLogout_ClearsIdentity(t *testing.T) {
	s, kv := newTestStore(t)

	require.True(t, s.Login(context.Background(), DemoEmail, "pw"))
	s.Logout()

	assert.False(t, s.IsAuthenticated())
	assert.Nil(t, s.Current())

	_, ok := kv.Get(localstore.KeyAuth)
	assert.False(t, ok)
}

func TestNew_RestoresPersistedIdentity(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "store.json")

	kv, err := localstore.Open(path, logger.New("prod"))
	require.NoError(t, err)
	first := New(logger.New("prod"), kv, 0)
	require.True(t, first.Login(context.Background(), DemoEmail, "pw"))

	reopened, err := localstore.Open(path, logger.New("prod"))
	require.NoError(t, err)
	second := New(logger.New("prod"), reopened, 0)

	student := second.Current()
	require.NotNil(t, student)
	assert.Equal(t, "student-demo", student.ID)
}

func TestNew_CorruptIdentityStartsAnonymous(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "store.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"course-platform-auth": "not-an-object"}`), 0644))

	kv, err := localstore.Open(path, logger.New("prod"))
	require.NoError(t, err)

	s := New(logger.New("prod"), kv, 0)
	assert.False(t, s.IsAuthenticated())

	_, ok := kv.Get(localstore.KeyAuth)
	assert.False(t, ok)
}

func TestIsLoading_FalseAfterNew(t *testing.T) {
	s, _ := newTestStore(t)
	assert.False(t, s.IsLoading())
}

func TestCurrent_ReturnsCopy(t *testing.T) {
	s, _ := newTestStore(t)
	require.True(t, s.Login(context.Background(), DemoEmail, "pw"))

	student := s.Current()
	student.Name = "mutated"

	assert.Equal(t, "Demo User", s.Current().Name)
}

func TestTokenManager_RoundTrip(t *testing.T) {
	m := NewTokenManager("test-secret", "course-platform", time.Hour)

	token, err := m.Generate("student-demo")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := m.ParseClaims(token)
	require.NoError(t, err)
	assert.Equal(t, "student-demo", claims.StudentID)
	assert.Equal(t, "course-platform", claims.Issuer)
}

func TestTokenManager_Expired(t *testing.T) {
	m := NewTokenManager("test-secret", "course-platform", -time.Minute)

	token, err := m.Generate("student-demo")
	require.NoError(t, err)

	_, err = m.ParseClaims(token)
	assert.ErrorIs(t, err, app_errors.ErrTokenExpired)
}

func TestTokenManager_Garbage(t *testing.T) {
	m := NewTokenManager("test-secret", "course-platform", time.Hour)

	_, err := m.ParseClaims("not.a.token")
	assert.ErrorIs(t, err, app_errors.ErrInvalidToken)
}

func TestTokenManager_WrongSecret(t *testing.T) {
	m := NewTokenManager("test-secret", "course-platform", time.Hour)
	other := NewTokenManager("other-secret", "course-platform", time.Hour)

	token, err := m.Generate("student-demo")
	require.NoError(t, err)

	_, err = other.ParseClaims(token)
	assert.ErrorIs(t, err, app_errors.ErrInvalidToken)
}
