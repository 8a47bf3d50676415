package ledger

import (
	"go.uber.org/zap"

	tokenledger "github.com/solquad/token-ledger"
	"github.com/solquad/token-ledger/errors"
)

// Initialize sets the total supply and owner and credits the owner's
// balance entry with the full supply.
//
// Initialization is a one-time transition: a second call fails with an
// already-initialized error and leaves state untouched.
func (s *State) Initialize(totalSupply uint64, owner tokenledger.AccountID) error {
	if s.Initialized {
		return errors.AlreadyInitialized()
	}

	s.TotalSupply = totalSupply
	s.Owner = owner
	s.Balances[owner] = totalSupply
	s.Initialized = true
	return nil
}

// Transfer moves amount from sender to recipient.
//
// Both accounts must already have balance entries; the implicit-zero
// convention does not apply here. The balance check precedes both writes,
// so a failed transfer leaves both accounts unchanged. Transferring to
// oneself is allowed and leaves the balance as it was, but the amount is
// still checked against it.
func (s *State) Transfer(sender, recipient tokenledger.AccountID, amount uint64) error {
	senderBalance, ok := s.Balances[sender]
	if !ok {
		return errors.UnknownAccount(sender.String())
	}
	if _, ok := s.Balances[recipient]; !ok {
		return errors.UnknownAccount(recipient.String())
	}

	if senderBalance < amount {
		return errors.InsufficientFunds(sender.String(), senderBalance, amount)
	}

	s.Balances[sender] -= amount
	s.Balances[recipient] += amount
	return nil
}

// Balance returns the account's balance, zero if the account has never
// held tokens. It never fails. The looked-up value is also traced on the
// package logger for hosts that surface query results out of band.
func (s *State) Balance(account tokenledger.AccountID) uint64 {
	balance := s.Balances[account]
	Logger().Info("account balance",
		zap.String("account", account.Short()),
		zap.Uint64("balance", balance))
	return balance
}

// Approve records that spender may move up to amount on the owner's
// behalf. Re-approving the same pair overwrites the prior amount; grants
// are not additive. It never fails.
func (s *State) Approve(owner, spender tokenledger.AccountID, amount uint64) {
	s.Allowances[AllowanceKey{Owner: owner, Spender: spender}] = amount
}

// Allowance returns the recorded grant for the (owner, spender) pair,
// zero if none exists.
func (s *State) Allowance(owner, spender tokenledger.AccountID) uint64 {
	return s.Allowances[AllowanceKey{Owner: owner, Spender: spender}]
}
