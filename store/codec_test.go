package store

import (
	"testing"

	"github.com/stretchr/testify/assert"

	tokenledger "github.com/solquad/token-ledger"
	ledgererrors "github.com/solquad/token-ledger/errors"
	"github.com/solquad/token-ledger/ledger"
)

func sampleState(t *testing.T) *ledger.State {
	t.Helper()

	s := ledger.NewState()
	err := s.Initialize(1000, tokenledger.DeriveAccountID("alice"))
	assert.NoError(t, err)
	s.Balances[tokenledger.DeriveAccountID("bob")] = 0
	err = s.Transfer(tokenledger.DeriveAccountID("alice"), tokenledger.DeriveAccountID("bob"), 400)
	assert.NoError(t, err)
	s.Approve(tokenledger.DeriveAccountID("alice"), tokenledger.DeriveAccountID("carol"), 50)
	s.Approve(tokenledger.DeriveAccountID("bob"), tokenledger.DeriveAccountID("carol"), 7)

	return s
}

func TestCodecRoundTrip(t *testing.T) {
	s := sampleState(t)

	decoded, err := DecodeState(EncodeState(s))
	assert.NoError(t, err)
	assert.Equal(t, s, decoded)
}

func TestCodecRoundTripEmpty(t *testing.T) {
	decoded, err := DecodeState(EncodeState(ledger.NewState()))
	assert.NoError(t, err)
	assert.False(t, decoded.Initialized)
	assert.Equal(t, uint64(0), decoded.TotalSupply)
	assert.Empty(t, decoded.Balances)
	assert.Empty(t, decoded.Allowances)
}

func TestCodecDeterministic(t *testing.T) {
	// Same contents built in different insertion orders must encode equal.
	a := ledger.NewState()
	assert.NoError(t, a.Initialize(1000, tokenledger.DeriveAccountID("alice")))
	a.Balances[tokenledger.DeriveAccountID("bob")] = 5
	a.Balances[tokenledger.DeriveAccountID("carol")] = 10
	a.Approve(tokenledger.DeriveAccountID("alice"), tokenledger.DeriveAccountID("bob"), 1)
	a.Approve(tokenledger.DeriveAccountID("alice"), tokenledger.DeriveAccountID("carol"), 2)

	b := ledger.NewState()
	assert.NoError(t, b.Initialize(1000, tokenledger.DeriveAccountID("alice")))
	b.Balances[tokenledger.DeriveAccountID("carol")] = 10
	b.Balances[tokenledger.DeriveAccountID("bob")] = 5
	b.Approve(tokenledger.DeriveAccountID("alice"), tokenledger.DeriveAccountID("carol"), 2)
	b.Approve(tokenledger.DeriveAccountID("alice"), tokenledger.DeriveAccountID("bob"), 1)

	assert.Equal(t, EncodeState(a), EncodeState(b))
}

func TestCodecCorrupt(t *testing.T) {
	encoded := EncodeState(sampleState(t))

	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"bad version", append([]byte{9}, encoded[1:]...)},
		{"truncated header", encoded[:5]},
		{"truncated balances", encoded[:50]},
		{"truncated allowances", encoded[:len(encoded)-4]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeState(tt.data)
			assert.ErrorIs(t, err, ledgererrors.ErrCorruptState)
		})
	}
}
