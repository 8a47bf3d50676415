// Package ledger implements the token's state transitions.
//
// State holds the balance table (one entry per account that has ever held
// tokens, implicit zero elsewhere) and the allowance table (one entry per
// owner/spender pair, overwritten on re-approval). Four operations mutate
// or read it: Initialize, Transfer, Balance, and Approve.
//
// Two invariants hold across any operation sequence: after Initialize the
// sum of all balances equals TotalSupply and every Transfer preserves that
// sum, and no balance ever underflows because validation precedes mutation.
//
// Approve records spending authorization only. No operation consumes an
// allowance; a delegated transfer that spends against a grant is not part
// of this instruction set.
package ledger
