// Package host dispatches instruction invocations against stored ledger
// state.
//
// An Invocation carries a ledger identity, an ordered account list, and raw
// instruction bytes. The Processor decodes the bytes, binds the positional
// accounts into a named per-variant record, loads the state from its
// StateStore, applies the transition, and persists the mutated state.
// Query instructions skip the persist step.
//
// Each invocation is tagged with a generated invocation id in log output so
// a host can correlate traces with whatever submitted the instruction.
//
// The processor serializes nothing itself: the hosting environment must
// submit one invocation at a time per ledger identity.
package host
