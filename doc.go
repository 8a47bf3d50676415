// Package tokenledger provides an in-memory fungible-token ledger driven by
// a compact binary instruction format.
//
// The core is deliberately small: an account-balance table plus a
// delegated-spending (allowance) table, mutated by four instructions decoded
// from raw bytes. Persistence, caller authentication, and transport are the
// hosting environment's concern; this library computes state transitions and
// hands the mutated state back.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct
// responsibilities:
//
//	tokenledger/         Root package with the AccountID identifier type
//	├── instruction/     Wire-format decoding and encoding of instructions
//	├── ledger/          Balance and allowance tables plus state transitions
//	├── host/            Invocation dispatch: account binding, load, apply, persist
//	├── store/           Pebble-backed durable storage for ledger state
//	└── errors/          Structured error types for debugging
//
// # Quick Start
//
// Apply instructions against a durable ledger:
//
//	st, err := store.Open(dir)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer st.Close()
//
//	p := host.NewProcessor(st)
//	owner := tokenledger.DeriveAccountID("alice")
//
//	err = p.Process(host.Invocation{
//	    LedgerID: "mytoken",
//	    Accounts: []tokenledger.AccountID{owner},
//	    Data:     instruction.Encode(instruction.Initialize{TotalSupply: 1000}),
//	})
//
// Or drive the ledger engine directly when the caller owns persistence:
//
//	state := ledger.NewState()
//	if err := state.Initialize(1000, owner); err != nil {
//	    log.Fatal(err)
//	}
//	err = state.Transfer(owner, recipient, 400)
//
// # Wire Format
//
// Instructions are a single tag byte followed by little-endian fields:
//
//	Tag  Name        Payload
//	──────────────────────────────────────────────
//	0    Initialize  total_supply (u64 LE)
//	1    Transfer    amount (u64 LE)
//	2    GetBalance  (none)
//	3    Approve     spender (32 bytes), amount (u64 LE)
//
// Trailing bytes beyond a variant's fields are ignored; short buffers and
// unknown tags fail with a malformed-instruction error.
//
// # Invariants
//
// After Initialize the sum of all balances equals the total supply, and
// every successful Transfer preserves that sum. Balances never go negative:
// an underflowing transfer is refused before any mutation, so a failed
// instruction leaves state untouched.
//
// # Concurrency Model
//
// A state transition is single-threaded and synchronous. State loaded for
// one invocation is exclusively owned by it until persisted; callers must
// serialize invocations against the same ledger identity. Nothing in the
// core locks or shares mutable state.
package tokenledger
