package instruction

import (
	"encoding/binary"

	tokenledger "github.com/solquad/token-ledger"
	"github.com/solquad/token-ledger/errors"
)

// Decode parses raw instruction bytes into a typed instruction.
//
// The first byte is the variant tag; the remaining bytes carry the variant's
// fields in little-endian order. Bytes beyond a variant's fields are ignored.
// An empty buffer, an unknown tag, or a field with too few remaining bytes
// fails with a malformed-instruction error.
func Decode(data []byte) (Instruction, error) {
	if len(data) == 0 {
		return nil, errors.MalformedInstruction("empty instruction data")
	}

	tag, rest := data[0], data[1:]
	switch tag {
	case TagInitialize:
		supply, err := decodeU64(rest, "total_supply")
		if err != nil {
			return nil, err
		}
		return Initialize{TotalSupply: supply}, nil

	case TagTransfer:
		amount, err := decodeU64(rest, "amount")
		if err != nil {
			return nil, err
		}
		return Transfer{Amount: amount}, nil

	case TagGetBalance:
		return GetBalance{}, nil

	case TagApprove:
		spender, rest, err := decodeAccountID(rest, "spender")
		if err != nil {
			return nil, err
		}
		amount, err := decodeU64(rest, "amount")
		if err != nil {
			return nil, err
		}
		return Approve{Spender: spender, Amount: amount}, nil

	default:
		return nil, errors.UnknownTag(tag)
	}
}

func decodeU64(data []byte, field string) (uint64, error) {
	if len(data) < 8 {
		return 0, errors.TruncatedField(field, 8, len(data))
	}
	return binary.LittleEndian.Uint64(data), nil
}

func decodeAccountID(data []byte, field string) (tokenledger.AccountID, []byte, error) {
	var id tokenledger.AccountID
	if len(data) < tokenledger.AccountIDSize {
		return id, nil, errors.TruncatedField(field, tokenledger.AccountIDSize, len(data))
	}
	copy(id[:], data[:tokenledger.AccountIDSize])
	return id, data[tokenledger.AccountIDSize:], nil
}
