package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:   PhaseApply,
				Kind:    KindInsufficientFunds,
				Account: "deadbeef",
				Detail:  "balance 600, transfer 700",
			},
			contains: []string{"[apply]", "insufficient_funds", "deadbeef", "balance 600, transfer 700"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseDecode,
				Kind:  KindMalformedInstruction,
			},
			contains: []string{"[decode]", "malformed_instruction"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseStore,
				Kind:   KindIO,
				Detail: "save ledger",
				Cause:  errors.New("disk full"),
			},
			contains: []string{"[store]", "io", "save ledger", "caused by", "disk full"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &Error{
		Phase: PhaseStore,
		Kind:  KindCorruptState,
		Cause: cause,
	}

	if !errors.Is(err, cause) {
		t.Error("errors.Is did not find cause through Unwrap")
	}
	if errors.Unwrap(err) != cause {
		t.Error("Unwrap did not return cause")
	}
}

func TestError_Is(t *testing.T) {
	err := InsufficientFunds("deadbeef", 600, 700)

	if !errors.Is(err, ErrInsufficientFunds) {
		t.Error("sentinel should match regardless of phase")
	}
	if !errors.Is(err, &Error{Phase: PhaseApply, Kind: KindInsufficientFunds}) {
		t.Error("exact phase+kind should match")
	}
	if errors.Is(err, &Error{Phase: PhaseDecode, Kind: KindInsufficientFunds}) {
		t.Error("mismatched phase should not match")
	}
	if errors.Is(err, ErrUnknownAccount) {
		t.Error("mismatched kind should not match")
	}
	if errors.Is(err, errors.New("insufficient_funds")) {
		t.Error("plain error should not match")
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("short read")
	err := New(PhaseDecode, KindMalformedInstruction).
		Account("cafe").
		Value(byte(9)).
		Detail("field %s needs %d bytes", "amount", 8).
		Cause(cause).
		Build()

	if err.Phase != PhaseDecode || err.Kind != KindMalformedInstruction {
		t.Errorf("unexpected phase/kind: %s/%s", err.Phase, err.Kind)
	}
	if err.Account != "cafe" {
		t.Errorf("account: got %q", err.Account)
	}
	if err.Value != byte(9) {
		t.Errorf("value: got %v", err.Value)
	}
	if err.Detail != "field amount needs 8 bytes" {
		t.Errorf("detail: got %q", err.Detail)
	}
	if err.Cause != cause {
		t.Error("cause not set")
	}
}

func TestConvenienceConstructors(t *testing.T) {
	tests := []struct {
		name  string
		err   *Error
		phase Phase
		kind  Kind
	}{
		{"malformed", MalformedInstruction("empty instruction data"), PhaseDecode, KindMalformedInstruction},
		{"unknown tag", UnknownTag(7), PhaseDecode, KindMalformedInstruction},
		{"truncated", TruncatedField("amount", 8, 2), PhaseDecode, KindMalformedInstruction},
		{"unknown account", UnknownAccount("ab"), PhaseApply, KindUnknownAccount},
		{"insufficient", InsufficientFunds("ab", 1, 2), PhaseApply, KindInsufficientFunds},
		{"reinit", AlreadyInitialized(), PhaseApply, KindAlreadyInitialized},
		{"account count", AccountCount("transfer", 2, 1), PhaseHost, KindAccountCount},
		{"corrupt", CorruptState("bad record", nil), PhaseStore, KindCorruptState},
		{"io", IO("open db", errors.New("eio")), PhaseStore, KindIO},
		{"not found", NotFound(PhaseStore, "ledger", "tok"), PhaseStore, KindNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Phase != tt.phase {
				t.Errorf("phase: got %s, want %s", tt.err.Phase, tt.phase)
			}
			if tt.err.Kind != tt.kind {
				t.Errorf("kind: got %s, want %s", tt.err.Kind, tt.kind)
			}
			if tt.err.Error() == "" {
				t.Error("empty message")
			}
		})
	}
}
