package accounting

import (
	"github.com/cockroachdb/errors"
	"github.com/iotaledger/hive.go/identity"
	"github.com/mr-tron/base58"
)

// IDFromPubKey returns the identity of a network participant from its public
// key in base58.
func IDFromPubKey(pubKey string) (id identity.ID, err error) {
	id = identity.ID{}
	if pubKey == "" {
		return
	}
	bytes, err := base58.Decode(pubKey)
	if err != nil {
		err = errors.Wrapf(err, "could not parse public key %s as base58", pubKey)
		return
	}
	copy(id[:], bytes)

	return
}
