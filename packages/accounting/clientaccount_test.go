package accounting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientAccountPut(t *testing.T) {
	t.Run("CASE: Zero size always succeeds", func(t *testing.T) {
		account := NewClientAccount(DefaultGrant)

		assert.True(t, account.Put(0))
		assert.EqualValues(t, 0, account.Stored())
		assert.EqualValues(t, DefaultGrant, account.SpaceAvailable())
	})

	t.Run("CASE: Conservation of total", func(t *testing.T) {
		account := NewClientAccount(DefaultGrant)

		assert.True(t, account.Put(1))
		assert.True(t, account.Put(1023))
		assert.EqualValues(t, 1024, account.Stored())
		assert.EqualValues(t, DefaultGrant, account.Stored()+account.SpaceAvailable())
	})

	t.Run("CASE: Failing put leaves account unchanged", func(t *testing.T) {
		account := NewClientAccount(1024)

		assert.True(t, account.Put(1000))
		assert.False(t, account.Put(25))
		assert.EqualValues(t, 1000, account.Stored())
		assert.EqualValues(t, 24, account.SpaceAvailable())
	})

	t.Run("CASE: Exact fit consumes the whole grant", func(t *testing.T) {
		account := NewClientAccount(DefaultGrant)

		assert.True(t, account.Put(DefaultGrant))
		assert.EqualValues(t, 0, account.SpaceAvailable())
		assert.False(t, account.Put(1))
		assert.True(t, account.Put(0))
	})
}

func TestClientAccountDelete(t *testing.T) {
	t.Run("CASE: Normal delete", func(t *testing.T) {
		account := NewClientAccount(DefaultGrant)

		assert.True(t, account.Put(1024))
		account.Delete(24)
		assert.EqualValues(t, 1000, account.Stored())
		assert.EqualValues(t, DefaultGrant-1000, account.SpaceAvailable())
	})

	t.Run("CASE: Delete exceeding stored reclaims only the recorded amount", func(t *testing.T) {
		account := NewClientAccount(DefaultGrant)

		assert.True(t, account.Put(1024))
		account.Delete(4096)
		assert.EqualValues(t, 0, account.Stored())
		assert.EqualValues(t, DefaultGrant, account.SpaceAvailable())
	})

	t.Run("CASE: Delete on empty account is a no-op", func(t *testing.T) {
		account := NewClientAccount(DefaultGrant)

		account.Delete(1)
		assert.EqualValues(t, 0, account.Stored())
		assert.EqualValues(t, DefaultGrant, account.SpaceAvailable())
	})
}

func TestClientAccountSerialization(t *testing.T) {
	accountBefore := NewClientAccount(DefaultGrant)
	require.True(t, accountBefore.Put(1024))

	accountBytes, err := accountBefore.Bytes()
	require.NoError(t, err)

	accountAfter, consumedBytes, err := ClientAccountFromBytes(accountBytes)
	require.NoError(t, err)
	assert.Equal(t, len(accountBytes), consumedBytes)
	assert.EqualValues(t, accountBefore.Stored(), accountAfter.Stored())
	assert.EqualValues(t, accountBefore.SpaceAvailable(), accountAfter.SpaceAvailable())
}
