package persist

import (
	"context"
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"

	"conduit-cli/internal/models"
)

func setupPersister(t *testing.T) *BadgerPersister {
	t.Helper()
	p, err := NewBadgerPersister(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = p.Close() })
	return p
}

func TestBadgerPersister_LoadEmpty(t *testing.T) {
	p := setupPersister(t)

	state, err := p.Load(context.Background())
	require.NoError(t, err)
	require.Nil(t, state)
}

func TestBadgerPersister_RoundTrip(t *testing.T) {
	p := setupPersister(t)
	ctx := context.Background()

	in := &State{
		User:  &models.User{Username: "alice", Email: "alice@example.com", Token: "abc"},
		Token: "abc",
	}
	require.NoError(t, p.Save(ctx, in))

	out, err := p.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, out)
	require.Equal(t, SchemaVersion, out.Version)
	require.Equal(t, "abc", out.Token)
	require.Equal(t, "alice", out.User.Username)
}

func TestBadgerPersister_VersionMismatchDiscarded(t *testing.T) {
	p := setupPersister(t)
	ctx := context.Background()

	// write a payload with a foreign schema version directly
	err := p.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(stateKey), []byte(`{"version":99,"token":"abc"}`))
	})
	require.NoError(t, err)

	state, err := p.Load(ctx)
	require.NoError(t, err)
	require.Nil(t, state)
}

func TestBadgerPersister_CorruptPayloadDiscarded(t *testing.T) {
	p := setupPersister(t)
	ctx := context.Background()

	err := p.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(stateKey), []byte(`{not json`))
	})
	require.NoError(t, err)

	state, err := p.Load(ctx)
	require.NoError(t, err)
	require.Nil(t, state)
}

func TestBadgerPersister_SaveOverwrites(t *testing.T) {
	p := setupPersister(t)
	ctx := context.Background()

	require.NoError(t, p.Save(ctx, &State{Token: "first"}))
	require.NoError(t, p.Save(ctx, &State{})) // logout clears the slice

	state, err := p.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, state)
	require.Empty(t, state.Token)
	require.Nil(t, state.User)
}
