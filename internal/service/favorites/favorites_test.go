package favorites

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/Dhaneyl/course-platform/internal/storage/localstore"
	"github.com/Dhaneyl/course-platform/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*Store, *localstore.Store) {
	t.Helper()
	kv, err := localstore.Open(filepath.Join(t.TempDir(), "store.json"), logger.New("prod"))
	require.NoError(t, err)
	return New(logger.New("prod"), kv), kv
}

func TestAddThenIsFavorite(t *testing.T) {
	s, _ := newTestStore(t)

	require.NoError(t, s.Add("course-1"))
	assert.True(t, s.IsFavorite("course-1"))
	assert.False(t, s.IsFavorite("course-2"))
}

func TestAdd_Idempotent(t *testing.T) {
	s, _ := newTestStore(t)

	require.NoError(t, s.Add("course-1"))
	require.NoError(t, s.Add("course-1"))
	assert.Equal(t, []string{"course-1"}, s.List())
}

func TestRemoveThenIsFavorite(t *testing.T) {
	s, _ := newTestStore(t)

	require.NoError(t, s.Add("course-1"))
	require.NoError(t, s.Remove("course-1"))
	assert.False(t, s.IsFavorite("course-1"))
	assert.Empty(t, s.List())
}

func TestToggle_TwiceRestoresMembership(t *testing.T) {
	s, _ := newTestStore(t)

	on, err := s.Toggle("course-1")
	require.NoError(t, err)
	assert.True(t, on)
	assert.True(t, s.IsFavorite("course-1"))

	off, err := s.Toggle("course-1")
	require.NoError(t, err)
	assert.False(t, off)
	assert.False(t, s.IsFavorite("course-1"))
}

func TestMutations_PersistFullSet(t *testing.T) {
	s, kv := newTestStore(t)

	require.NoError(t, s.Add("course-1"))

	raw, ok := kv.Get(localstore.KeyFavorites)
	require.True(t, ok)
	assert.JSONEq(t, `["course-1"]`, string(raw))
}

func TestNew_LoadsPersistedSet(t *testing.T) {
	kv, err := localstore.Open(filepath.Join(t.TempDir(), "store.json"), logger.New("prod"))
	require.NoError(t, err)
	require.NoError(t, kv.Set(localstore.KeyFavorites, json.RawMessage(`["course-1","course-2"]`)))

	s := New(logger.New("prod"), kv)
	assert.Equal(t, []string{"course-1", "course-2"}, s.List())
	assert.True(t, s.IsFavorite("course-2"))
}

func TestNew_CorruptValueIsCleared(t *testing.T) {
	kv, err := localstore.Open(filepath.Join(t.TempDir(), "store.json"), logger.New("prod"))
	require.NoError(t, err)
	require.NoError(t, kv.Set(localstore.KeyFavorites, json.RawMessage(`"not-an-array"`)))

	s := New(logger.New("prod"), kv)
	assert.Empty(t, s.List())

	_, ok := kv.Get(localstore.KeyFavorites)
	assert.False(t, ok)
}

func TestList_ReturnsCopy(t *testing.T) {
	s, _ := newTestStore(t)
	require.NoError(t, s.Add("course-1"))

	list := s.List()
	list[0] = "mutated"
	assert.Equal(t, []string{"course-1"}, s.List())
}
