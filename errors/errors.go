package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseDecode Phase = "decode" // instruction bytes to typed instruction
	PhaseApply  Phase = "apply"  // ledger state transition
	PhaseStore  Phase = "store"  // durable state load/save
	PhaseHost   Phase = "host"   // invocation dispatch and account binding
)

// Kind categorizes the error
type Kind string

const (
	KindMalformedInstruction Kind = "malformed_instruction"
	KindUnknownAccount       Kind = "unknown_account"
	KindInsufficientFunds    Kind = "insufficient_funds"
	KindAlreadyInitialized   Kind = "already_initialized"
	KindAccountCount         Kind = "account_count"
	KindCorruptState         Kind = "corrupt_state"
	KindInvalidInput         Kind = "invalid_input"
	KindNotFound             Kind = "not_found"
	KindIO                   Kind = "io"
)

// Error is the structured error type used throughout the ledger
type Error struct {
	Value   any
	Cause   error
	Phase   Phase
	Kind    Kind
	Account string
	Detail  string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Account != "" {
		b.WriteString(" account ")
		b.WriteString(e.Account)
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error.
// Two errors match when their Phase and Kind agree; an empty Phase on the
// target acts as a wildcard so sentinel values can match any phase.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Phase != "" && e.Phase != t.Phase {
		return false
	}
	return e.Kind == t.Kind
}

// Sentinel targets for errors.Is checks.
var (
	ErrMalformedInstruction = &Error{Kind: KindMalformedInstruction}
	ErrUnknownAccount       = &Error{Kind: KindUnknownAccount}
	ErrInsufficientFunds    = &Error{Kind: KindInsufficientFunds}
	ErrAlreadyInitialized   = &Error{Kind: KindAlreadyInitialized}
	ErrCorruptState         = &Error{Kind: KindCorruptState}
)

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Account sets the account identifier involved
func (b *Builder) Account(id string) *Builder {
	b.err.Account = id
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// MalformedInstruction creates a malformed-instruction error
func MalformedInstruction(detail string, args ...any) *Error {
	if len(args) > 0 {
		detail = fmt.Sprintf(detail, args...)
	}
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindMalformedInstruction,
		Detail: detail,
	}
}

// UnknownTag creates a malformed-instruction error for an unrecognized tag byte
func UnknownTag(tag byte) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindMalformedInstruction,
		Detail: fmt.Sprintf("unknown instruction tag %d", tag),
		Value:  tag,
	}
}

// TruncatedField creates a malformed-instruction error for a field with too few bytes
func TruncatedField(field string, need, have int) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindMalformedInstruction,
		Detail: fmt.Sprintf("field %s needs %d bytes, %d remain", field, need, have),
	}
}

// UnknownAccount creates an unknown-account error
func UnknownAccount(account string) *Error {
	return &Error{
		Phase:   PhaseApply,
		Kind:    KindUnknownAccount,
		Account: account,
		Detail:  "no balance entry",
	}
}

// InsufficientFunds creates an insufficient-funds error
func InsufficientFunds(account string, balance, amount uint64) *Error {
	return &Error{
		Phase:   PhaseApply,
		Kind:    KindInsufficientFunds,
		Account: account,
		Detail:  fmt.Sprintf("balance %d, transfer %d", balance, amount),
		Value:   amount,
	}
}

// AlreadyInitialized creates an already-initialized error
func AlreadyInitialized() *Error {
	return &Error{
		Phase:  PhaseApply,
		Kind:   KindAlreadyInitialized,
		Detail: "ledger state already initialized",
	}
}

// AccountCount creates an error for an invocation with too few accounts
func AccountCount(variant string, need, have int) *Error {
	return &Error{
		Phase:  PhaseHost,
		Kind:   KindAccountCount,
		Detail: fmt.Sprintf("%s needs %d accounts, got %d", variant, need, have),
	}
}

// CorruptState creates a corrupt-state error
func CorruptState(detail string, cause error) *Error {
	return &Error{
		Phase:  PhaseStore,
		Kind:   KindCorruptState,
		Detail: detail,
		Cause:  cause,
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string, args ...any) *Error {
	if len(args) > 0 {
		detail = fmt.Sprintf(detail, args...)
	}
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// NotFound creates a not-found error
func NotFound(phase Phase, what, name string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotFound,
		Detail: fmt.Sprintf("%s %q not found", what, name),
	}
}

// IO wraps a storage-layer failure
func IO(detail string, cause error) *Error {
	return &Error{
		Phase:  PhaseStore,
		Kind:   KindIO,
		Detail: detail,
		Cause:  cause,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
