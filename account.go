package tokenledger

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/solquad/token-ledger/errors"
)

// AccountIDSize is the width of an account identifier in bytes.
const AccountIDSize = 32

// AccountID is an opaque fixed-width identifier naming a ledger participant.
// It is equality-comparable and carries no ordering semantics.
type AccountID [AccountIDSize]byte

// ZeroAccount is the all-zero account identifier.
var ZeroAccount AccountID

// AccountIDFromBytes copies b into an AccountID.
// b must be exactly AccountIDSize bytes long.
func AccountIDFromBytes(b []byte) (AccountID, error) {
	var id AccountID
	if len(b) != AccountIDSize {
		return id, errors.InvalidInput(errors.PhaseHost, "account identifier must be %d bytes, got %d", AccountIDSize, len(b))
	}
	copy(id[:], b)
	return id, nil
}

// ParseAccountID parses a 64-character hex string into an AccountID.
func ParseAccountID(s string) (AccountID, error) {
	var id AccountID
	b, err := hex.DecodeString(s)
	if err != nil {
		return id, errors.New(errors.PhaseHost, errors.KindInvalidInput).
			Detail("account identifier is not valid hex").
			Cause(err).
			Build()
	}
	return AccountIDFromBytes(b)
}

// DeriveAccountID derives a stable AccountID from an arbitrary name.
// Useful for tests and tooling where identifiers are not supplied by
// an external keypair.
func DeriveAccountID(name string) AccountID {
	return AccountID(sha256.Sum256([]byte(name)))
}

// String returns the full hex encoding of the identifier.
func (id AccountID) String() string {
	return hex.EncodeToString(id[:])
}

// Short returns an abbreviated hex form for log output.
func (id AccountID) Short() string {
	return hex.EncodeToString(id[:4])
}

// Bytes returns the identifier as a byte slice.
func (id AccountID) Bytes() []byte {
	return id[:]
}

// IsZero reports whether the identifier is the all-zero value.
func (id AccountID) IsZero() bool {
	return id == ZeroAccount
}
