package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TransactionKind tags the operation that produced a confirmation code.
type TransactionKind string

const (
	KindDeposit    TransactionKind = "D"
	KindWithdrawal TransactionKind = "W"
	KindInterest   TransactionKind = "I"
	KindDeclined   TransactionKind = "X"
)

// Valid reports whether the kind is one of the four known tags.
func (k TransactionKind) Valid() bool {
	switch k {
	case KindDeposit, KindWithdrawal, KindInterest, KindDeclined:
		return true
	}
	return false
}

// String returns a human-readable name for logs and statements.
func (k TransactionKind) String() string {
	switch k {
	case KindDeposit:
		return "deposit"
	case KindWithdrawal:
		return "withdrawal"
	case KindInterest:
		return "interest"
	case KindDeclined:
		return "declined"
	}
	return "unknown"
}

// codeTimeLayout is the 14-digit timestamp field inside a confirmation code.
const codeTimeLayout = "20060102150405"

// Confirmation is the structured form of a confirmation code: one issued
// record per mutating operation (including declined withdrawals).
type Confirmation struct {
	Kind          TransactionKind
	AccountNumber string
	Timestamp     time.Time
	Sequence      uint64
}

// Code renders the confirmation as its opaque string form:
// kind-account-YYYYMMDDHHMMSS-sequence.
func (c Confirmation) Code() string {
	return fmt.Sprintf("%s-%s-%s-%d",
		string(c.Kind), c.AccountNumber, c.Timestamp.Format(codeTimeLayout), c.Sequence)
}

// ParseConfirmationCode decodes a confirmation code back into its four
// fields. The timestamp comes back as wall-clock time in UTC; use
// Account.ParseConfirmationCode to localize it to an account's timezone.
//
// Account numbers may themselves contain dashes (UUIDs do), so the code is
// anchored from both ends: first field is the kind, last is the sequence,
// second-to-last is the timestamp, and everything between is the account
// number.
func ParseConfirmationCode(code string) (Confirmation, error) {
	return parseConfirmationCode(code, time.UTC)
}

func parseConfirmationCode(code string, loc *time.Location) (Confirmation, error) {
	parts := strings.Split(code, "-")
	if len(parts) < 4 {
		return Confirmation{}, fmt.Errorf("%w: %q has %d fields, want at least 4", ErrCodeFormat, code, len(parts))
	}

	kind := TransactionKind(parts[0])
	if !kind.Valid() {
		return Confirmation{}, fmt.Errorf("%w: unknown transaction kind %q", ErrCodeFormat, parts[0])
	}

	account := strings.Join(parts[1:len(parts)-2], "-")
	if account == "" {
		return Confirmation{}, fmt.Errorf("%w: empty account number in %q", ErrCodeFormat, code)
	}

	ts, err := time.ParseInLocation(codeTimeLayout, parts[len(parts)-2], loc)
	if err != nil {
		return Confirmation{}, fmt.Errorf("%w: bad timestamp %q", ErrCodeFormat, parts[len(parts)-2])
	}

	seq, err := strconv.ParseUint(parts[len(parts)-1], 10, 64)
	if err != nil {
		return Confirmation{}, fmt.Errorf("%w: bad sequence %q", ErrCodeFormat, parts[len(parts)-1])
	}

	return Confirmation{
		Kind:          kind,
		AccountNumber: account,
		Timestamp:     ts,
		Sequence:      seq,
	}, nil
}
