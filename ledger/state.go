package ledger

import (
	tokenledger "github.com/solquad/token-ledger"
)

// AllowanceKey identifies one spending authorization: the granting owner
// and the spender allowed to move tokens on the owner's behalf.
type AllowanceKey struct {
	Owner   tokenledger.AccountID
	Spender tokenledger.AccountID
}

// State is the full ownership state of one token: the balance table, the
// allowance table, the total supply, and the account the supply was minted
// to.
//
// The maps are exported so storage layers can serialize them, but mutation
// must go through the State methods, which order validation before any
// write. A State is owned by one invocation at a time; nothing here locks.
type State struct {
	TotalSupply uint64
	Owner       tokenledger.AccountID
	Balances    map[tokenledger.AccountID]uint64
	Allowances  map[AllowanceKey]uint64
	Initialized bool
}

// NewState returns an empty, uninitialized ledger state.
func NewState() *State {
	return &State{
		Balances:   make(map[tokenledger.AccountID]uint64),
		Allowances: make(map[AllowanceKey]uint64),
	}
}
