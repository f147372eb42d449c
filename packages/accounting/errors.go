package accounting

import "github.com/cockroachdb/errors"

var (
	// ErrUnknownKind is returned if an account kind could not be identified.
	ErrUnknownKind = errors.New("unknown account kind")
	// ErrSnapshotCorrupted is returned if an account snapshot could not be parsed.
	ErrSnapshotCorrupted = errors.New("account snapshot corrupted")
)
