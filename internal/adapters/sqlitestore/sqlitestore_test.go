package sqlitestore

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openhire/mobile-core/internal/apperrors"
)

func newTestStore(t *testing.T, namespace string) *Store {
	t.Helper()
	s, err := New(filepath.Join(t.TempDir(), "state.db"), namespace)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestNew_Validation(t *testing.T) {
	_, err := New("", "mobile-core")
	assert.True(t, apperrors.IsValidation(err))

	_, err = New(":memory:", "")
	assert.True(t, apperrors.IsValidation(err))
}

func TestStore_LoadMissingIsNotFound(t *testing.T) {
	s := newTestStore(t, "mobile-core")

	_, err := s.Load(context.Background())
	assert.True(t, apperrors.IsNotFound(err))
}

func TestStore_SaveThenLoad(t *testing.T) {
	s := newTestStore(t, "mobile-core")
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, []byte(`{"schema_version":1}`)))

	data, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, `{"schema_version":1}`, string(data))
}

func TestStore_SaveUpserts(t *testing.T) {
	s := newTestStore(t, "mobile-core")
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, []byte("first")))
	require.NoError(t, s.Save(ctx, []byte("second")))

	data, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))
}

func TestStore_NamespacesAreIsolated(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "shared.db")
	ctx := context.Background()

	a, err := New(dbPath, "device-a")
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })
	b, err := New(dbPath, "device-b")
	require.NoError(t, err)
	t.Cleanup(func() { _ = b.Close() })

	require.NoError(t, a.Save(ctx, []byte("record-a")))

	_, err = b.Load(ctx)
	assert.True(t, apperrors.IsNotFound(err))

	data, err := a.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "record-a", string(data))
}

func TestStore_Delete(t *testing.T) {
	s := newTestStore(t, "mobile-core")
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, []byte("record")))
	require.NoError(t, s.Delete(ctx))

	_, err := s.Load(ctx)
	assert.True(t, apperrors.IsNotFound(err))
}
