package filestore

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openhire/mobile-core/internal/apperrors"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(filepath.Join(t.TempDir(), "state", "app-state.json"))
	require.NoError(t, err)
	return s
}

func TestNew_RequiresPath(t *testing.T) {
	_, err := New("")
	assert.True(t, apperrors.IsValidation(err))
}

func TestStore_LoadMissingIsNotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Load(context.Background())
	assert.True(t, apperrors.IsNotFound(err))
}

func TestStore_SaveThenLoad(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, []byte(`{"schema_version":1}`)))

	data, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, `{"schema_version":1}`, string(data))
}

func TestStore_SaveReplacesPriorRecord(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, []byte("first")))
	require.NoError(t, s.Save(ctx, []byte("second")))

	data, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))
}

func TestStore_DeleteRemovesRecord(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, []byte("record")))
	require.NoError(t, s.Delete(ctx))

	_, err := s.Load(ctx)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestStore_DeleteAbsentIsNoError(t *testing.T) {
	s := newTestStore(t)

	assert.NoError(t, s.Delete(context.Background()))
}
