package instruction

import (
	"encoding/binary"
)

// Encode serializes an instruction to its wire format: the variant tag byte
// followed by the variant's fields in little-endian order. Encode and Decode
// round-trip exactly.
func Encode(in Instruction) []byte {
	out := []byte{in.Tag()}
	switch in := in.(type) {
	case Initialize:
		out = binary.LittleEndian.AppendUint64(out, in.TotalSupply)
	case Transfer:
		out = binary.LittleEndian.AppendUint64(out, in.Amount)
	case GetBalance:
	case Approve:
		out = append(out, in.Spender[:]...)
		out = binary.LittleEndian.AppendUint64(out, in.Amount)
	}
	return out
}
