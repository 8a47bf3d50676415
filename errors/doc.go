// Package errors provides structured error types for the token-ledger library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). The Error type includes context: the account involved, the
// offending value, and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseApply, errors.KindInsufficientFunds).
//		Account(sender.String()).
//		Detail("balance %d, transfer %d", balance, amount).
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.InsufficientFunds(sender.String(), balance, amount)
//	err := errors.TruncatedField("amount", 8, len(rest))
//
// All errors implement the standard error interface and support errors.Is/As;
// the exported Err* sentinels match by Kind regardless of Phase:
//
//	if errors.Is(err, errors.ErrInsufficientFunds) { ... }
package errors
