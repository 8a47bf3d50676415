package instruction

import (
	"bytes"
	"testing"

	tokenledger "github.com/solquad/token-ledger"
)

func TestEncode_Layout(t *testing.T) {
	spender := tokenledger.DeriveAccountID("spender")

	tests := []struct {
		name string
		in   Instruction
		want []byte
	}{
		{
			name: "initialize",
			in:   Initialize{TotalSupply: 0x0102030405060708},
			want: []byte{0, 0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01},
		},
		{
			name: "transfer zero",
			in:   Transfer{Amount: 0},
			want: []byte{1, 0, 0, 0, 0, 0, 0, 0, 0},
		},
		{
			name: "get balance",
			in:   GetBalance{},
			want: []byte{2},
		},
		{
			name: "approve",
			in:   Approve{Spender: spender, Amount: 5},
			want: append(append([]byte{3}, spender[:]...), 5, 0, 0, 0, 0, 0, 0, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Encode(tt.in)
			if !bytes.Equal(got, tt.want) {
				t.Errorf("Encode: got %x, want %x", got, tt.want)
			}
		})
	}
}

func TestEncode_RoundTrip(t *testing.T) {
	instructions := []Instruction{
		Initialize{TotalSupply: 1000},
		Transfer{Amount: 400},
		GetBalance{},
		Approve{Spender: tokenledger.DeriveAccountID("s"), Amount: 50},
	}

	for _, in := range instructions {
		decoded, err := Decode(Encode(in))
		if err != nil {
			t.Fatalf("round trip %T: %v", in, err)
		}
		if decoded != in {
			t.Errorf("round trip %T: got %#v, want %#v", in, decoded, in)
		}
	}
}
