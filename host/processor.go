package host

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	tokenledger "github.com/solquad/token-ledger"
	"github.com/solquad/token-ledger/instruction"
	"github.com/solquad/token-ledger/ledger"
)

// StateStore is the durable storage the processor loads state from and
// persists mutated state into. A ledger that has never been saved must
// load as an empty, uninitialized state.
type StateStore interface {
	Load(ledgerID string) (*ledger.State, error)
	Save(ledgerID string, state *ledger.State) error
}

// Invocation is one unit of work handed over by the hosting environment:
// the ledger identity, the caller-supplied account list, and the raw
// instruction bytes.
type Invocation struct {
	LedgerID string
	Accounts []tokenledger.AccountID
	Data     []byte
}

// Processor decodes and applies instructions against stored ledger state.
//
// Process must not be called concurrently for the same ledger identity;
// the state loaded for an invocation is exclusively owned until it is
// persisted.
type Processor struct {
	store StateStore
}

// NewProcessor creates a processor backed by the given store.
func NewProcessor(store StateStore) *Processor {
	return &Processor{store: store}
}

// Process decodes the invocation's instruction bytes, binds its accounts,
// loads the ledger state, applies the transition, and persists the result.
// Any error leaves the stored state untouched: decoding and validation
// precede mutation, and a failed transition is never saved.
func (p *Processor) Process(inv Invocation) error {
	log := Logger().With(
		zap.String("invocation", uuid.NewString()),
		zap.String("ledger", inv.LedgerID))

	in, err := instruction.Decode(inv.Data)
	if err != nil {
		log.Warn("reject instruction", zap.Error(err))
		return err
	}

	state, err := p.store.Load(inv.LedgerID)
	if err != nil {
		return err
	}

	switch in := in.(type) {
	case instruction.Initialize:
		accounts, err := bindInitialize(inv.Accounts)
		if err != nil {
			return err
		}
		if err := state.Initialize(in.TotalSupply, accounts.Owner); err != nil {
			return err
		}
		log.Info("initialize",
			zap.String("owner", accounts.Owner.Short()),
			zap.Uint64("total_supply", in.TotalSupply))

	case instruction.Transfer:
		accounts, err := bindTransfer(inv.Accounts)
		if err != nil {
			return err
		}
		if err := state.Transfer(accounts.Sender, accounts.Recipient, in.Amount); err != nil {
			log.Warn("reject transfer", zap.Error(err))
			return err
		}
		log.Info("transfer",
			zap.String("sender", accounts.Sender.Short()),
			zap.String("recipient", accounts.Recipient.Short()),
			zap.Uint64("amount", in.Amount))

	case instruction.GetBalance:
		accounts, err := bindBalance(inv.Accounts)
		if err != nil {
			return err
		}
		balance := state.Balance(accounts.Account)
		log.Info("account balance",
			zap.String("account", accounts.Account.Short()),
			zap.Uint64("balance", balance))
		// Read-only, nothing to persist.
		return nil

	case instruction.Approve:
		accounts, err := bindApprove(inv.Accounts)
		if err != nil {
			return err
		}
		state.Approve(accounts.Owner, in.Spender, in.Amount)
		log.Info("approve",
			zap.String("owner", accounts.Owner.Short()),
			zap.String("spender", in.Spender.Short()),
			zap.Uint64("amount", in.Amount))
	}

	return p.store.Save(inv.LedgerID, state)
}
