package tokenledger

import (
	"strings"
	"testing"
)

func TestParseAccountID(t *testing.T) {
	id := DeriveAccountID("alice")

	parsed, err := ParseAccountID(id.String())
	if err != nil {
		t.Fatalf("ParseAccountID: %v", err)
	}
	if parsed != id {
		t.Errorf("round trip: got %s, want %s", parsed, id)
	}
}

func TestParseAccountID_Invalid(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"not hex", strings.Repeat("zz", AccountIDSize)},
		{"too short", "deadbeef"},
		{"too long", strings.Repeat("ab", AccountIDSize+1)},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseAccountID(tt.in); err == nil {
				t.Errorf("expected error for %q", tt.in)
			}
		})
	}
}

func TestAccountIDFromBytes(t *testing.T) {
	b := make([]byte, AccountIDSize)
	b[0] = 0xAB

	id, err := AccountIDFromBytes(b)
	if err != nil {
		t.Fatalf("AccountIDFromBytes: %v", err)
	}
	if id[0] != 0xAB {
		t.Errorf("first byte: got %x", id[0])
	}

	if _, err := AccountIDFromBytes(b[:16]); err == nil {
		t.Error("expected error for short slice")
	}
}

func TestDeriveAccountID(t *testing.T) {
	if DeriveAccountID("alice") != DeriveAccountID("alice") {
		t.Error("derivation is not stable")
	}
	if DeriveAccountID("alice") == DeriveAccountID("bob") {
		t.Error("distinct names collide")
	}
}

func TestAccountID_Helpers(t *testing.T) {
	if !ZeroAccount.IsZero() {
		t.Error("ZeroAccount.IsZero() = false")
	}

	id := DeriveAccountID("alice")
	if id.IsZero() {
		t.Error("derived id reported zero")
	}
	if len(id.String()) != 2*AccountIDSize {
		t.Errorf("String length: got %d", len(id.String()))
	}
	if !strings.HasPrefix(id.String(), id.Short()) {
		t.Error("Short is not a prefix of String")
	}
	if len(id.Bytes()) != AccountIDSize {
		t.Errorf("Bytes length: got %d", len(id.Bytes()))
	}
}
