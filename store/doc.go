// Package store persists ledger state in a pebble database.
//
// Each ledger identity maps to one record holding the full serialized
// State. The record format is a versioned little-endian encoding with
// entries sorted bytewise by key, so saving an unchanged state rewrites
// identical bytes.
//
// The store is the durable half of the invocation cycle: the host loads a
// state, applies one instruction, and saves the result. Loading an unknown
// ledger returns an empty uninitialized state rather than an error, so the
// first instruction against a fresh ledger can be Initialize.
package store
