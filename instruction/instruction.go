package instruction

import (
	tokenledger "github.com/solquad/token-ledger"
)

// Instruction tag bytes.
const (
	TagInitialize byte = 0
	TagTransfer   byte = 1
	TagGetBalance byte = 2
	TagApprove    byte = 3
)

// Instruction is one decoded ledger instruction.
type Instruction interface {
	// Tag returns the wire-format tag byte for the variant.
	Tag() byte
}

// Initialize mints the total supply to the invocation's owner account.
type Initialize struct {
	TotalSupply uint64
}

// Transfer moves tokens from the first to the second invocation account.
type Transfer struct {
	Amount uint64
}

// GetBalance reports the balance of the invocation's account.
type GetBalance struct{}

// Approve authorizes spender to move up to Amount on the owner's behalf.
type Approve struct {
	Spender tokenledger.AccountID
	Amount  uint64
}

func (Initialize) Tag() byte { return TagInitialize }
func (Transfer) Tag() byte   { return TagTransfer }
func (GetBalance) Tag() byte { return TagGetBalance }
func (Approve) Tag() byte    { return TagApprove }
