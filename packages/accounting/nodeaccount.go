package accounting

import (
	"github.com/iotaledger/hive.go/generics/model"
	"github.com/iotaledger/hive.go/marshalutil"
	"github.com/iotaledger/hive.go/stringify"
)

// NodeAccount tracks the bytes stored on a storage node identity against the
// space it offers, plus the bytes permanently lost from it. OfferedSpace is a
// cap rather than a consumable balance: it is checked on writes but never
// debited, and lowering it later may leave StoredTotal above the cap until
// enough data is deleted again.
type NodeAccount struct {
	model.Mutable[NodeAccount, *NodeAccount, nodeAccountModel] `serix:"0"`
}

type nodeAccountModel struct {
	StoredTotal  uint64 `serix:"0"`
	LostTotal    uint64 `serix:"1"`
	OfferedSpace uint64 `serix:"2"`
}

// NewNodeAccount creates an empty account offering the given space.
func NewNodeAccount(offeredSpace uint64) (newNodeAccount *NodeAccount) {
	return model.NewMutable[NodeAccount](&nodeAccountModel{
		OfferedSpace: offeredSpace,
	})
}

// NodeAccountFromBytes unmarshals a NodeAccount from a sequence of bytes.
func NodeAccountFromBytes(bytes []byte) (nodeAccount *NodeAccount, consumedBytes int, err error) {
	marshalUtil := marshalutil.New(bytes)
	if nodeAccount, err = NodeAccountFromMarshalUtil(marshalUtil); err != nil {
		return
	}
	consumedBytes = marshalUtil.ReadOffset()

	return
}

// NodeAccountFromMarshalUtil unmarshals a NodeAccount using the given marshalUtil.
func NodeAccountFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (nodeAccount *NodeAccount, err error) {
	storedTotal, err := marshalUtil.ReadUint64()
	if err != nil {
		return
	}
	lostTotal, err := marshalUtil.ReadUint64()
	if err != nil {
		return
	}
	offeredSpace, err := marshalUtil.ReadUint64()
	if err != nil {
		return
	}

	return model.NewMutable[NodeAccount](&nodeAccountModel{
		StoredTotal:  storedTotal,
		LostTotal:    lostTotal,
		OfferedSpace: offeredSpace,
	}), nil
}

// StoredTotal returns the number of bytes currently recorded as stored on the node.
func (n *NodeAccount) StoredTotal() uint64 {
	n.RLock()
	defer n.RUnlock()

	return n.M.StoredTotal
}

// LostTotal returns the number of bytes recorded as permanently lost from the node.
func (n *NodeAccount) LostTotal() uint64 {
	n.RLock()
	defer n.RUnlock()

	return n.M.LostTotal
}

// OfferedSpace returns the storage capacity the node currently offers.
func (n *NodeAccount) OfferedSpace() uint64 {
	n.RLock()
	defer n.RUnlock()

	return n.M.OfferedSpace
}

// Put books size bytes onto the node. It fails without changing the account if
// the stored total would exceed the offered space.
func (n *NodeAccount) Put(size uint64) (success bool) {
	n.Lock()
	defer n.Unlock()

	if n.M.StoredTotal > n.M.OfferedSpace || size > n.M.OfferedSpace-n.M.StoredTotal {
		return false
	}
	n.M.StoredTotal += size

	return true
}

// Delete removes size bytes from the stored total, flooring at zero. The
// offered space is untouched.
func (n *NodeAccount) Delete(size uint64) {
	n.Lock()
	defer n.Unlock()

	n.deleteStored(size)
}

// HandleLostData removes size bytes from the stored total and records them as
// permanently lost (disk failure, corruption).
func (n *NodeAccount) HandleLostData(size uint64) {
	n.Lock()
	defer n.Unlock()

	n.deleteStored(size)
	n.M.LostTotal += size
}

// HandleFailure records a failed storage operation on the node. It is
// accounted identically to lost data.
func (n *NodeAccount) HandleFailure(size uint64) {
	n.HandleLostData(size)
}

// UpdateAccount reconciles a reported difference between the booked and the
// actual stored total. The difference is accounted as lost data.
func (n *NodeAccount) UpdateAccount(diff uint64) {
	n.HandleLostData(diff)
}

// SetAvailableSpace overwrites the offered space with the node's freshly
// reported capacity. It does not validate against the current stored total.
func (n *NodeAccount) SetAvailableSpace(availableSpace uint64) {
	n.Lock()
	defer n.Unlock()

	n.M.OfferedSpace = availableSpace
}

// Kind returns the account kind used to tag serialized snapshots.
func (n *NodeAccount) Kind() Kind {
	return NodeKind
}

// Bytes marshals the account into a sequence of bytes.
func (n *NodeAccount) Bytes() (marshaledAccount []byte, err error) {
	n.RLock()
	defer n.RUnlock()

	marshalUtil := marshalutil.New(marshalutil.Uint64Size * 3)
	marshalUtil.WriteUint64(n.M.StoredTotal)
	marshalUtil.WriteUint64(n.M.LostTotal)
	marshalUtil.WriteUint64(n.M.OfferedSpace)

	return marshalUtil.Bytes(), nil
}

// String returns a human-readable version of the NodeAccount.
func (n *NodeAccount) String() string {
	return stringify.Struct("NodeAccount",
		stringify.StructField("StoredTotal", n.StoredTotal()),
		stringify.StructField("LostTotal", n.LostTotal()),
		stringify.StructField("OfferedSpace", n.OfferedSpace()),
	)
}

// deleteStored floors the stored total at zero. Not concurrency safe.
func (n *NodeAccount) deleteStored(size uint64) {
	if size > n.M.StoredTotal {
		n.M.StoredTotal = 0
		return
	}
	n.M.StoredTotal -= size
}

var _ Account = &NodeAccount{}
