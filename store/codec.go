package store

import (
	"bytes"
	"encoding/binary"
	"sort"

	tokenledger "github.com/solquad/token-ledger"
	"github.com/solquad/token-ledger/errors"
	"github.com/solquad/token-ledger/ledger"
)

// State record layout, little-endian throughout:
//
//	byte 0      codec version (currently 1)
//	byte 1      initialized flag (0 or 1)
//	8 bytes     total supply (u64)
//	32 bytes    owner account
//	4 bytes     balance entry count (u32)
//	n entries   account (32 bytes), balance (u64)
//	4 bytes     allowance entry count (u32)
//	n entries   owner (32 bytes), spender (32 bytes), amount (u64)
//
// Entries are sorted bytewise by key so equal states encode to equal bytes.
const codecVersion = 1

const (
	balanceEntrySize   = tokenledger.AccountIDSize + 8
	allowanceEntrySize = 2*tokenledger.AccountIDSize + 8
)

// EncodeState serializes a ledger state to its durable record form.
// The encoding is deterministic: two states with the same contents
// produce identical bytes.
func EncodeState(s *ledger.State) []byte {
	size := 2 + 8 + tokenledger.AccountIDSize +
		4 + len(s.Balances)*balanceEntrySize +
		4 + len(s.Allowances)*allowanceEntrySize
	out := make([]byte, 0, size)

	out = append(out, codecVersion)
	if s.Initialized {
		out = append(out, 1)
	} else {
		out = append(out, 0)
	}
	out = binary.LittleEndian.AppendUint64(out, s.TotalSupply)
	out = append(out, s.Owner[:]...)

	accounts := make([]tokenledger.AccountID, 0, len(s.Balances))
	for account := range s.Balances {
		accounts = append(accounts, account)
	}
	sort.Slice(accounts, func(i, j int) bool {
		return bytes.Compare(accounts[i][:], accounts[j][:]) < 0
	})

	out = binary.LittleEndian.AppendUint32(out, uint32(len(accounts)))
	for _, account := range accounts {
		out = append(out, account[:]...)
		out = binary.LittleEndian.AppendUint64(out, s.Balances[account])
	}

	keys := make([]ledger.AllowanceKey, 0, len(s.Allowances))
	for key := range s.Allowances {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if c := bytes.Compare(keys[i].Owner[:], keys[j].Owner[:]); c != 0 {
			return c < 0
		}
		return bytes.Compare(keys[i].Spender[:], keys[j].Spender[:]) < 0
	})

	out = binary.LittleEndian.AppendUint32(out, uint32(len(keys)))
	for _, key := range keys {
		out = append(out, key.Owner[:]...)
		out = append(out, key.Spender[:]...)
		out = binary.LittleEndian.AppendUint64(out, s.Allowances[key])
	}

	return out
}

// DecodeState parses a durable record back into a ledger state.
func DecodeState(data []byte) (*ledger.State, error) {
	r := &stateReader{data: data}

	version, err := r.byte("version")
	if err != nil {
		return nil, err
	}
	if version != codecVersion {
		return nil, errors.CorruptState("unsupported state codec version", nil)
	}

	s := ledger.NewState()

	flag, err := r.byte("initialized")
	if err != nil {
		return nil, err
	}
	s.Initialized = flag != 0

	if s.TotalSupply, err = r.u64("total_supply"); err != nil {
		return nil, err
	}
	if s.Owner, err = r.account("owner"); err != nil {
		return nil, err
	}

	balanceCount, err := r.u32("balance_count")
	if err != nil {
		return nil, err
	}
	for i := uint32(0); i < balanceCount; i++ {
		account, err := r.account("balance.account")
		if err != nil {
			return nil, err
		}
		balance, err := r.u64("balance.amount")
		if err != nil {
			return nil, err
		}
		s.Balances[account] = balance
	}

	allowanceCount, err := r.u32("allowance_count")
	if err != nil {
		return nil, err
	}
	for i := uint32(0); i < allowanceCount; i++ {
		owner, err := r.account("allowance.owner")
		if err != nil {
			return nil, err
		}
		spender, err := r.account("allowance.spender")
		if err != nil {
			return nil, err
		}
		amount, err := r.u64("allowance.amount")
		if err != nil {
			return nil, err
		}
		s.Allowances[ledger.AllowanceKey{Owner: owner, Spender: spender}] = amount
	}

	return s, nil
}

// stateReader consumes a state record front to back.
type stateReader struct {
	data []byte
	pos  int
}

func (r *stateReader) take(n int, field string) ([]byte, error) {
	if len(r.data)-r.pos < n {
		return nil, errors.CorruptState("state record truncated at "+field, nil)
	}
	b := r.data[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

func (r *stateReader) byte(field string) (byte, error) {
	b, err := r.take(1, field)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (r *stateReader) u32(field string) (uint32, error) {
	b, err := r.take(4, field)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

func (r *stateReader) u64(field string) (uint64, error) {
	b, err := r.take(8, field)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

func (r *stateReader) account(field string) (tokenledger.AccountID, error) {
	var id tokenledger.AccountID
	b, err := r.take(tokenledger.AccountIDSize, field)
	if err != nil {
		return id, err
	}
	copy(id[:], b)
	return id, nil
}
