package accounting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNodeAccountPut(t *testing.T) {
	t.Run("CASE: Offered space is a cap, not a balance", func(t *testing.T) {
		account := NewNodeAccount(DefaultGrant)

		assert.True(t, account.Put(1024))
		assert.EqualValues(t, 1024, account.StoredTotal())
		assert.EqualValues(t, DefaultGrant, account.OfferedSpace())
	})

	t.Run("CASE: Put fails once the cap would be exceeded", func(t *testing.T) {
		account := NewNodeAccount(DefaultGrant)

		assert.True(t, account.Put(DefaultGrant - 1))
		assert.False(t, account.Put(2))
		assert.True(t, account.Put(1))
		assert.False(t, account.Put(1))
		assert.True(t, account.Put(0))
	})
}

func TestNodeAccountDelete(t *testing.T) {
	t.Run("CASE: Normal delete", func(t *testing.T) {
		account := NewNodeAccount(DefaultGrant)

		assert.True(t, account.Put(1024))
		account.Delete(24)
		assert.EqualValues(t, 1000, account.StoredTotal())
		assert.EqualValues(t, DefaultGrant, account.OfferedSpace())
	})

	t.Run("CASE: Delete exceeding stored floors at zero", func(t *testing.T) {
		account := NewNodeAccount(DefaultGrant)

		assert.True(t, account.Put(1024))
		account.Delete(4096)
		assert.EqualValues(t, 0, account.StoredTotal())
	})
}

func TestNodeAccountLostData(t *testing.T) {
	t.Run("CASE: Lost data moves from stored to lost", func(t *testing.T) {
		account := NewNodeAccount(DefaultGrant)

		assert.True(t, account.Put(1024))
		account.HandleLostData(24)
		assert.EqualValues(t, 1000, account.StoredTotal())
		assert.EqualValues(t, 24, account.LostTotal())
	})

	t.Run("CASE: Lost size exceeding stored floors stored but counts fully as lost", func(t *testing.T) {
		account := NewNodeAccount(DefaultGrant)

		assert.True(t, account.Put(1024))
		account.HandleLostData(4096)
		assert.EqualValues(t, 0, account.StoredTotal())
		assert.EqualValues(t, 4096, account.LostTotal())
	})

	t.Run("CASE: HandleFailure and UpdateAccount book identically to HandleLostData", func(t *testing.T) {
		reference := NewNodeAccount(DefaultGrant)
		viaFailure := NewNodeAccount(DefaultGrant)
		viaUpdate := NewNodeAccount(DefaultGrant)

		for _, account := range []*NodeAccount{reference, viaFailure, viaUpdate} {
			require.True(t, account.Put(1024))
		}
		reference.HandleLostData(100)
		viaFailure.HandleFailure(100)
		viaUpdate.UpdateAccount(100)

		for _, account := range []*NodeAccount{viaFailure, viaUpdate} {
			assert.EqualValues(t, reference.StoredTotal(), account.StoredTotal())
			assert.EqualValues(t, reference.LostTotal(), account.LostTotal())
		}
	})
}

func TestNodeAccountSetAvailableSpace(t *testing.T) {
	t.Run("CASE: Capacity refresh overwrites the cap", func(t *testing.T) {
		account := NewNodeAccount(DefaultGrant)

		account.SetAvailableSpace(2048)
		assert.EqualValues(t, 2048, account.OfferedSpace())
		assert.True(t, account.Put(2048))
		assert.False(t, account.Put(1))
	})

	t.Run("CASE: Lowering the cap below the stored total is tolerated", func(t *testing.T) {
		account := NewNodeAccount(DefaultGrant)

		assert.True(t, account.Put(2048))
		account.SetAvailableSpace(1024)
		assert.EqualValues(t, 2048, account.StoredTotal())

		// the cap only bites on writes
		assert.False(t, account.Put(1))
		account.Delete(1536)
		assert.True(t, account.Put(512))
		assert.False(t, account.Put(1))
	})
}

func TestNodeAccountSerialization(t *testing.T) {
	accountBefore := NewNodeAccount(DefaultGrant)
	require.True(t, accountBefore.Put(1024))
	accountBefore.HandleLostData(24)

	accountBytes, err := accountBefore.Bytes()
	require.NoError(t, err)

	accountAfter, consumedBytes, err := NodeAccountFromBytes(accountBytes)
	require.NoError(t, err)
	assert.Equal(t, len(accountBytes), consumedBytes)
	assert.EqualValues(t, accountBefore.StoredTotal(), accountAfter.StoredTotal())
	assert.EqualValues(t, accountBefore.LostTotal(), accountAfter.LostTotal())
	assert.EqualValues(t, accountBefore.OfferedSpace(), accountAfter.OfferedSpace())
}
