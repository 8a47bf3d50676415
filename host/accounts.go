package host

import (
	tokenledger "github.com/solquad/token-ledger"
	"github.com/solquad/token-ledger/errors"
)

// Account bindings give the host's positional account list a named shape
// per instruction variant. Positions are fixed by the host contract; the
// bind functions validate the count so a short list fails before dispatch
// instead of silently misbinding.

// InitializeAccounts names the accounts an Initialize invocation carries.
type InitializeAccounts struct {
	Owner tokenledger.AccountID
}

// TransferAccounts names the accounts a Transfer invocation carries.
type TransferAccounts struct {
	Sender    tokenledger.AccountID
	Recipient tokenledger.AccountID
}

// BalanceAccounts names the accounts a GetBalance invocation carries.
type BalanceAccounts struct {
	Account tokenledger.AccountID
}

// ApproveAccounts names the accounts an Approve invocation carries.
// The spender rides in the instruction payload, not the account list.
type ApproveAccounts struct {
	Owner tokenledger.AccountID
}

func bindInitialize(accounts []tokenledger.AccountID) (InitializeAccounts, error) {
	if len(accounts) < 1 {
		return InitializeAccounts{}, errors.AccountCount("initialize", 1, len(accounts))
	}
	return InitializeAccounts{Owner: accounts[0]}, nil
}

func bindTransfer(accounts []tokenledger.AccountID) (TransferAccounts, error) {
	if len(accounts) < 2 {
		return TransferAccounts{}, errors.AccountCount("transfer", 2, len(accounts))
	}
	return TransferAccounts{Sender: accounts[0], Recipient: accounts[1]}, nil
}

func bindBalance(accounts []tokenledger.AccountID) (BalanceAccounts, error) {
	if len(accounts) < 1 {
		return BalanceAccounts{}, errors.AccountCount("get_balance", 1, len(accounts))
	}
	return BalanceAccounts{Account: accounts[0]}, nil
}

func bindApprove(accounts []tokenledger.AccountID) (ApproveAccounts, error) {
	if len(accounts) < 1 {
		return ApproveAccounts{}, errors.AccountCount("approve", 1, len(accounts))
	}
	return ApproveAccounts{Owner: accounts[0]}, nil
}
