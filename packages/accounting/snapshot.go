package accounting

import (
	"github.com/cockroachdb/errors"
	"github.com/iotaledger/hive.go/identity"
	"github.com/iotaledger/hive.go/marshalutil"
	"github.com/iotaledger/hive.go/stringify"
)

// AccountSnapshot is the addressing wrapper around a drained account: the
// serialized account payload tagged with the identity it belongs to and the
// kind discriminator that tells the receiving handler how to decode it.
type AccountSnapshot struct {
	id      identity.ID
	kind    Kind
	payload []byte

	bytes []byte
}

// NewAccountSnapshot wraps a serialized account payload for transmission.
func NewAccountSnapshot(id identity.ID, kind Kind, payload []byte) (newAccountSnapshot *AccountSnapshot) {
	return &AccountSnapshot{
		id:      id,
		kind:    kind,
		payload: payload,
	}
}

// AccountSnapshotFromBytes unmarshals an AccountSnapshot from a sequence of bytes.
func AccountSnapshotFromBytes(bytes []byte) (accountSnapshot *AccountSnapshot, consumedBytes int, err error) {
	marshalUtil := marshalutil.New(bytes)
	if accountSnapshot, err = AccountSnapshotFromMarshalUtil(marshalUtil); err != nil {
		return
	}
	consumedBytes = marshalUtil.ReadOffset()

	return
}

// AccountSnapshotFromMarshalUtil unmarshals an AccountSnapshot using the given marshalUtil.
func AccountSnapshotFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (accountSnapshot *AccountSnapshot, err error) {
	accountSnapshot = new(AccountSnapshot)

	idBytes, err := marshalUtil.ReadBytes(len(accountSnapshot.id))
	if err != nil {
		return nil, errors.Wrap(ErrSnapshotCorrupted, "failed to parse identity")
	}
	copy(accountSnapshot.id[:], idBytes)

	kind, err := marshalUtil.ReadByte()
	if err != nil {
		return nil, errors.Wrap(ErrSnapshotCorrupted, "failed to parse account kind")
	}
	if Kind(kind) != ClientKind && Kind(kind) != NodeKind {
		return nil, errors.Wrapf(ErrUnknownKind, "account kind %d", kind)
	}
	accountSnapshot.kind = Kind(kind)

	payloadSize, err := marshalUtil.ReadUint32()
	if err != nil {
		return nil, errors.Wrap(ErrSnapshotCorrupted, "failed to parse payload size")
	}
	if accountSnapshot.payload, err = marshalUtil.ReadBytes(int(payloadSize)); err != nil {
		return nil, errors.Wrap(ErrSnapshotCorrupted, "failed to parse payload")
	}

	return accountSnapshot, nil
}

// ID returns the identity the wrapped account belongs to.
func (a *AccountSnapshot) ID() identity.ID {
	return a.id
}

// Kind returns the discriminator identifying the wrapped account's variant.
func (a *AccountSnapshot) Kind() Kind {
	return a.kind
}

// Payload returns the serialized account.
func (a *AccountSnapshot) Payload() []byte {
	return a.payload
}

// Bytes marshals the snapshot into a sequence of bytes.
func (a *AccountSnapshot) Bytes() []byte {
	if bytes := a.bytes; bytes != nil {
		return bytes
	}

	marshalUtil := marshalutil.New()
	marshalUtil.WriteBytes(a.id.Bytes())
	marshalUtil.WriteByte(byte(a.kind))
	marshalUtil.WriteUint32(uint32(len(a.payload)))
	marshalUtil.WriteBytes(a.payload)

	a.bytes = marshalUtil.Bytes()
	return a.bytes
}

// String returns a human-readable version of the AccountSnapshot.
func (a *AccountSnapshot) String() string {
	return stringify.Struct("AccountSnapshot",
		stringify.StructField("ID", a.id.String()),
		stringify.StructField("Kind", a.kind.String()),
		stringify.StructField("PayloadSize", len(a.payload)),
	)
}
