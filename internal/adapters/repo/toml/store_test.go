package toml

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/vehicle-assistant-cli/internal/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	cfg := viper.New()
	cfg.Set("store.path", filepath.Join(t.TempDir(), "store.toml"))

	store, err := NewStore(cfg)
	require.NoError(t, err)
	return store
}

func TestStoreRoundTrip(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	ctx := context.Background()

	states := `{"Preventive":{"tasks":[{"id":"1","description":"Cambio de aceite","dueDate":"2025-01-01","completed":false}]}}`
	require.NoError(t, store.Put(ctx, "@screen_states", states))
	require.NoError(t, store.Put(ctx, "@tabData", `{"soat":"15/08/2025"}`))

	got, err := store.Get(ctx, "@screen_states")
	require.NoError(t, err)
	assert.Equal(t, states, got)

	require.NoError(t, store.Put(ctx, "@tabData", `{"soat":"16/08/2025"}`))
	got, err = store.Get(ctx, "@tabData")
	require.NoError(t, err)
	assert.Equal(t, `{"soat":"16/08/2025"}`, got)
}

func TestStoreMissingKey(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)

	_, err := store.Get(context.Background(), "@app_history")
	require.ErrorIs(t, err, domain.ErrKeyNotFound)
}

func TestStoreDelete(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "a", "1"))
	require.NoError(t, store.Put(ctx, "b", "2"))
	require.NoError(t, store.Delete(ctx, "a"))
	require.NoError(t, store.Delete(ctx, "missing"))

	_, err := store.Get(ctx, "a")
	require.ErrorIs(t, err, domain.ErrKeyNotFound)
	got, err := store.Get(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, "2", got)
}

func TestStoreWritesVersionedFileWithPrivateMode(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	require.NoError(t, store.Put(context.Background(), "@tabData", "{}"))

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Contains(t, string(data), "version = 1")

	matches, err := filepath.Glob(filepath.Join(filepath.Dir(store.Path()), ".store-*.toml.tmp"))
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestStoreRejectsNewerSchema(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	require.NoError(t, os.WriteFile(store.Path(), []byte("version = 9\n"), 0o600))

	_, err := store.Get(context.Background(), "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported store schema version 9")
}

func TestStoreRejectsCorruptFile(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	require.NoError(t, os.WriteFile(store.Path(), []byte("not = [valid"), 0o600))

	_, err := store.Get(context.Background(), "x")
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "decode store file"))
}

func TestStoreHonorsCancelledContext(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.ErrorIs(t, store.Put(ctx, "a", "1"), context.Canceled)
	_, err := store.Get(ctx, "a")
	require.ErrorIs(t, err, context.Canceled)
	require.ErrorIs(t, store.Delete(ctx, "a"), context.Canceled)
}

func TestStoreConcurrentWritersSharePathLock(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "store.toml")
	cfg := viper.New()
	cfg.Set("store.path", path)

	first, err := NewStore(cfg)
	require.NoError(t, err)
	second, err := NewStore(cfg)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			store := first
			if i%2 == 1 {
				store = second
			}
			assert.NoError(t, store.Put(context.Background(), fmt.Sprintf("key-%d", i), fmt.Sprint(i)))
		}(i)
	}
	wg.Wait()

	for i := 0; i < 20; i++ {
		got, err := first.Get(context.Background(), fmt.Sprintf("key-%d", i))
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprint(i), got)
	}
}

func TestNewStoreDefaultsUnderHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := NewStore(nil)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".vehiculo", "store.toml"), store.Path())
}
