package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FinSnap-Studio/FinSnap-App-sub000/internal/service"
)

// kvUnderTest runs the same contract suite against every KV implementation.
func kvUnderTest(t *testing.T, name string, open func(t *testing.T) service.KV) {
	t.Run(name, func(t *testing.T) {
		ctx := context.Background()

		t.Run("get absent key returns nil, nil", func(t *testing.T) {
			kv := open(t)
			value, err := kv.Get(ctx, "wallets")
			require.NoError(t, err)
			assert.Nil(t, value)
		})

		t.Run("set then get round trip", func(t *testing.T) {
			kv := open(t)
			require.NoError(t, kv.Set(ctx, "wallets", []byte(`[{"id":"w1"}]`)))

			value, err := kv.Get(ctx, "wallets")
			require.NoError(t, err)
			assert.Equal(t, []byte(`[{"id":"w1"}]`), value)
		})

		t.Run("set replaces the previous snapshot", func(t *testing.T) {
			kv := open(t)
			require.NoError(t, kv.Set(ctx, "wallets", []byte(`[1]`)))
			require.NoError(t, kv.Set(ctx, "wallets", []byte(`[1,2]`)))

			value, err := kv.Get(ctx, "wallets")
			require.NoError(t, err)
			assert.Equal(t, []byte(`[1,2]`), value)
		})

		t.Run("remove deletes and tolerates absent keys", func(t *testing.T) {
			kv := open(t)
			require.NoError(t, kv.Set(ctx, "wallets", []byte(`[]`)))
			require.NoError(t, kv.Remove(ctx, "wallets"))

			value, err := kv.Get(ctx, "wallets")
			require.NoError(t, err)
			assert.Nil(t, value)

			require.NoError(t, kv.Remove(ctx, "wallets"))
		})

		t.Run("clear all wipes every key", func(t *testing.T) {
			kv := open(t)
			for _, key := range service.CollectionKeys {
				require.NoError(t, kv.Set(ctx, key, []byte(`[]`)))
			}
			require.NoError(t, kv.ClearAll(ctx))

			for _, key := range service.CollectionKeys {
				value, err := kv.Get(ctx, key)
				require.NoError(t, err)
				assert.Nil(t, value)
			}
		})

		t.Run("empty key is rejected", func(t *testing.T) {
			kv := open(t)
			_, err := kv.Get(ctx, "")
			assert.ErrorIs(t, err, ErrEmptyString)
			assert.ErrorIs(t, kv.Set(ctx, "  ", []byte(`[]`)), ErrEmptyString)
			assert.ErrorIs(t, kv.Remove(ctx, ""), ErrEmptyString)
		})
	})
}

func TestKVImplementations(t *testing.T) {
	kvUnderTest(t, "memory", func(t *testing.T) service.KV {
		t.Helper()
		return NewMemoryKV()
	})

	kvUnderTest(t, "sqlite", func(t *testing.T) service.KV {
		t.Helper()
		kv, err := NewSQLiteKV(filepath.Join(t.TempDir(), "test.db"))
		require.NoError(t, err)
		t.Cleanup(func() { _ = kv.Close() })
		return kv
	})
}

func TestSQLiteKVPersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "finsnap.db")

	kv, err := NewSQLiteKV(dbPath)
	require.NoError(t, err)
	require.NoError(t, kv.Set(ctx, "wallets", []byte(`[{"id":"w1"}]`)))
	require.NoError(t, kv.Close())

	reopened, err := NewSQLiteKV(dbPath)
	require.NoError(t, err)
	defer func() { _ = reopened.Close() }()

	value, err := reopened.Get(ctx, "wallets")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[{"id":"w1"}]`), value)
}

func TestSQLiteKVCreatesParentDirectory(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "finsnap.db")

	kv, err := NewSQLiteKV(dbPath)
	require.NoError(t, err)
	defer func() { _ = kv.Close() }()

	require.NoError(t, kv.Set(context.Background(), "wallets", []byte(`[]`)))
}

func TestMemoryKVReturnsCopies(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()

	original := []byte(`[1]`)
	require.NoError(t, kv.Set(ctx, "wallets", original))
	original[1] = '9' // mutating the caller's slice must not touch the store

	value, err := kv.Get(ctx, "wallets")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[1]`), value)

	value[1] = '9' // nor may mutating a returned slice
	again, err := kv.Get(ctx, "wallets")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[1]`), again)
}
