// Package instruction implements the ledger's binary wire format.
//
// An instruction is a single tag byte followed by little-endian fields:
//
//	Tag  Variant     Payload
//	──────────────────────────────────────────────
//	0    Initialize  total_supply (u64 LE)
//	1    Transfer    amount (u64 LE)
//	2    GetBalance  (none)
//	3    Approve     spender (32 bytes), amount (u64 LE)
//
// Decode is strict about short buffers (a u64 field needs at least 8
// remaining bytes, an account identifier 32) but lenient about trailing
// bytes, which are ignored. Encode produces the canonical form with no
// trailing bytes.
package instruction
