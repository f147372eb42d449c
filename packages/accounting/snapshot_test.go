package accounting

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/iotaledger/hive.go/identity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountSnapshotSerialization(t *testing.T) {
	id := identity.GenerateIdentity().ID()
	account := NewClientAccount(DefaultGrant)
	require.True(t, account.Put(1024))

	payload, err := account.Bytes()
	require.NoError(t, err)

	snapshotBefore := NewAccountSnapshot(id, account.Kind(), payload)
	snapshotBytes := snapshotBefore.Bytes()

	snapshotAfter, consumedBytes, err := AccountSnapshotFromBytes(snapshotBytes)
	require.NoError(t, err)
	assert.Equal(t, len(snapshotBytes), consumedBytes)
	assert.Equal(t, id, snapshotAfter.ID())
	assert.Equal(t, ClientKind, snapshotAfter.Kind())
	assert.Equal(t, payload, snapshotAfter.Payload())

	accountAfter, _, err := ClientAccountFromBytes(snapshotAfter.Payload())
	require.NoError(t, err)
	assert.EqualValues(t, 1024, accountAfter.Stored())
}

func TestAccountSnapshotUnknownKind(t *testing.T) {
	id := identity.GenerateIdentity().ID()

	// the legacy placeholder tag is rejected instead of decoding as a client account
	legacyTagged := NewAccountSnapshot(id, UnknownKind, []byte{1, 2, 3})
	_, _, err := AccountSnapshotFromBytes(legacyTagged.Bytes())
	assert.True(t, errors.Is(err, ErrUnknownKind))
}

func TestAccountSnapshotCorrupted(t *testing.T) {
	id := identity.GenerateIdentity().ID()
	snapshot := NewAccountSnapshot(id, NodeKind, []byte{1, 2, 3})

	snapshotBytes := snapshot.Bytes()
	_, _, err := AccountSnapshotFromBytes(snapshotBytes[:len(snapshotBytes)-1])
	assert.True(t, errors.Is(err, ErrSnapshotCorrupted))
}

func TestKindFromString(t *testing.T) {
	for _, kind := range []Kind{ClientKind, NodeKind} {
		parsed, err := KindFromString(kind.String())
		require.NoError(t, err)
		assert.Equal(t, kind, parsed)
	}

	_, err := KindFromString("Unknown")
	assert.True(t, errors.Is(err, ErrUnknownKind))
}
