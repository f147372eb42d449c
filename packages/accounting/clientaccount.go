package accounting

import (
	"github.com/iotaledger/hive.go/generics/model"
	"github.com/iotaledger/hive.go/marshalutil"
	"github.com/iotaledger/hive.go/stringify"
)

// ClientAccount tracks the bytes a client identity has stored against its
// granted quota. The sum of Stored and SpaceAvailable always equals the grant
// the account was created with.
type ClientAccount struct {
	model.Mutable[ClientAccount, *ClientAccount, clientAccountModel] `serix:"0"`
}

type clientAccountModel struct {
	Stored         uint64 `serix:"0"`
	SpaceAvailable uint64 `serix:"1"`
}

// NewClientAccount creates an empty account holding the given grant.
func NewClientAccount(grant uint64) (newClientAccount *ClientAccount) {
	return model.NewMutable[ClientAccount](&clientAccountModel{
		SpaceAvailable: grant,
	})
}

// ClientAccountFromBytes unmarshals a ClientAccount from a sequence of bytes.
func ClientAccountFromBytes(bytes []byte) (clientAccount *ClientAccount, consumedBytes int, err error) {
	marshalUtil := marshalutil.New(bytes)
	if clientAccount, err = ClientAccountFromMarshalUtil(marshalUtil); err != nil {
		return
	}
	consumedBytes = marshalUtil.ReadOffset()

	return
}

// ClientAccountFromMarshalUtil unmarshals a ClientAccount using the given marshalUtil.
func ClientAccountFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (clientAccount *ClientAccount, err error) {
	stored, err := marshalUtil.ReadUint64()
	if err != nil {
		return
	}
	spaceAvailable, err := marshalUtil.ReadUint64()
	if err != nil {
		return
	}

	return model.NewMutable[ClientAccount](&clientAccountModel{
		Stored:         stored,
		SpaceAvailable: spaceAvailable,
	}), nil
}

// Stored returns the number of bytes currently recorded as stored.
func (c *ClientAccount) Stored() uint64 {
	c.RLock()
	defer c.RUnlock()

	return c.M.Stored
}

// SpaceAvailable returns the number of bytes left of the grant.
func (c *ClientAccount) SpaceAvailable() uint64 {
	c.RLock()
	defer c.RUnlock()

	return c.M.SpaceAvailable
}

// Put books size bytes against the remaining grant. It fails without changing
// the account if the remaining grant is too small. A size of 0 always
// succeeds.
func (c *ClientAccount) Put(size uint64) (success bool) {
	c.Lock()
	defer c.Unlock()

	if size > c.M.SpaceAvailable {
		return false
	}
	c.M.Stored += size
	c.M.SpaceAvailable -= size

	return true
}

// Delete releases size bytes back to the grant. If size exceeds the recorded
// stored amount, only the recorded amount is reclaimed and the stored count
// floors at zero, so a partial delete that over-reports never inflates the
// grant.
func (c *ClientAccount) Delete(size uint64) {
	c.Lock()
	defer c.Unlock()

	if size > c.M.Stored {
		c.M.SpaceAvailable += c.M.Stored
		c.M.Stored = 0
		return
	}
	c.M.Stored -= size
	c.M.SpaceAvailable += size
}

// Kind returns the account kind used to tag serialized snapshots.
func (c *ClientAccount) Kind() Kind {
	return ClientKind
}

// Bytes marshals the account into a sequence of bytes.
func (c *ClientAccount) Bytes() (marshaledAccount []byte, err error) {
	c.RLock()
	defer c.RUnlock()

	marshalUtil := marshalutil.New(marshalutil.Uint64Size * 2)
	marshalUtil.WriteUint64(c.M.Stored)
	marshalUtil.WriteUint64(c.M.SpaceAvailable)

	return marshalUtil.Bytes(), nil
}

// String returns a human-readable version of the ClientAccount.
func (c *ClientAccount) String() string {
	return stringify.Struct("ClientAccount",
		stringify.StructField("Stored", c.Stored()),
		stringify.StructField("SpaceAvailable", c.SpaceAvailable()),
	)
}

var _ Account = &ClientAccount{}
