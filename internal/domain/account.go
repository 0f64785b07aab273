package domain

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

// Account represents a single in-memory bank account record: identity, a
// non-negative balance, and the history of confirmations it has issued.
// All mutating operations are serialized by an internal mutex so the
// non-negative-balance invariant holds under concurrent use.
type Account struct {
	mu sync.Mutex

	number    string
	firstName string
	lastName  string
	tz        TimeZone
	balance   decimal.Decimal

	interest *InterestPolicy
	seq      *Sequence
	now      func() time.Time

	history []Confirmation
}

// Option configures optional account attributes at construction.
type Option func(*Account) error

// WithTimeZone sets the timezone used to timestamp confirmation codes.
func WithTimeZone(tz TimeZone) Option {
	return func(a *Account) error {
		if err := tz.Validate(); err != nil {
			return err
		}
		a.tz = tz
		return nil
	}
}

// WithBalance sets the opening balance. It must not be negative.
func WithBalance(opening decimal.Decimal) Option {
	return func(a *Account) error {
		if opening.IsNegative() {
			return fmt.Errorf("opening balance cannot be negative: %w", ErrValidation)
		}
		a.balance = opening
		return nil
	}
}

// WithInterestPolicy attaches a specific shared interest policy instead of
// the package-level SharedInterest.
func WithInterestPolicy(p *InterestPolicy) Option {
	return func(a *Account) error {
		if p == nil {
			return fmt.Errorf("interest policy cannot be nil: %w", ErrValidation)
		}
		a.interest = p
		return nil
	}
}

// WithSequence attaches a specific transaction-number generator instead of
// the package-level SharedSequence.
func WithSequence(s *Sequence) Option {
	return func(a *Account) error {
		if s == nil {
			return fmt.Errorf("sequence cannot be nil: %w", ErrValidation)
		}
		a.seq = s
		return nil
	}
}

// WithClock overrides the time source for confirmation timestamps.
// Intended for tests.
func WithClock(now func() time.Time) Option {
	return func(a *Account) error {
		if now == nil {
			return fmt.Errorf("clock cannot be nil: %w", ErrValidation)
		}
		a.now = now
		return nil
	}
}

// NewAccount creates an account with the given immutable number and owner
// names. Defaults: UTC timezone, zero balance, SharedInterest policy,
// SharedSequence counter, time.Now clock.
func NewAccount(number, firstName, lastName string, opts ...Option) (*Account, error) {
	if strings.TrimSpace(number) == "" {
		return nil, fmt.Errorf("account number cannot be empty: %w", ErrValidation)
	}

	a := &Account{
		number:   number,
		tz:       UTC,
		interest: SharedInterest,
		seq:      SharedSequence,
		now:      time.Now,
	}
	if err := a.SetFirstName(firstName); err != nil {
		return nil, err
	}
	if err := a.SetLastName(lastName); err != nil {
		return nil, err
	}
	for _, opt := range opts {
		if err := opt(a); err != nil {
			return nil, err
		}
	}
	return a, nil
}

// Number returns the immutable account number.
func (a *Account) Number() string {
	return a.number
}

// FirstName returns the owner's first name.
func (a *Account) FirstName() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.firstName
}

// SetFirstName overwrites the first name. Leading and trailing whitespace is
// trimmed; the result must be non-empty.
func (a *Account) SetFirstName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("first name cannot be empty: %w", ErrValidation)
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.firstName = name
	return nil
}

// LastName returns the owner's last name.
func (a *Account) LastName() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.lastName
}

// SetLastName overwrites the last name. Same rules as SetFirstName.
func (a *Account) SetLastName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("last name cannot be empty: %w", ErrValidation)
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.lastName = name
	return nil
}

// FullName returns "First Last".
func (a *Account) FullName() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.firstName + " " + a.lastName
}

// TimeZone returns the timezone used for confirmation timestamps.
func (a *Account) TimeZone() TimeZone {
	return a.tz
}

// Balance returns the current balance. There is no setter: the balance only
// moves through Deposit, Withdraw and PayInterest.
func (a *Account) Balance() decimal.Decimal {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.balance
}

// Interest returns the shared interest policy this account reads its rate
// from.
func (a *Account) Interest() *InterestPolicy {
	return a.interest
}

// Deposit adds a positive amount to the balance and issues a confirmation.
func (a *Account) Deposit(amount decimal.Decimal) (Confirmation, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return Confirmation{}, fmt.Errorf("deposit amount must be positive: %w", ErrValidation)
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.balance = a.balance.Add(amount)
	return a.confirm(KindDeposit), nil
}

// Withdraw removes a positive amount from the balance. A withdrawal that
// would overdraw the account is rejected with InsufficientFundsError; the
// balance is untouched but a declined confirmation is still issued and
// attached to the error.
func (a *Account) Withdraw(amount decimal.Decimal) (Confirmation, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return Confirmation{}, fmt.Errorf("withdrawal amount must be positive: %w", ErrValidation)
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.balance.LessThan(amount) {
		return Confirmation{}, &InsufficientFundsError{Declined: a.confirm(KindDeclined)}
	}
	a.balance = a.balance.Sub(amount)
	return a.confirm(KindWithdrawal), nil
}

// PayInterest credits balance * rate using the shared interest policy.
// The policy rejects negative rates at set-time, so this can only grow the
// balance and never fails.
func (a *Account) PayInterest() Confirmation {
	rate := a.interest.Rate()
	a.mu.Lock()
	defer a.mu.Unlock()
	a.balance = a.balance.Add(a.balance.Mul(rate))
	return a.confirm(KindInterest)
}

// History returns a copy of every confirmation the account has issued, in
// order, declined withdrawals included.
func (a *Account) History() []Confirmation {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]Confirmation, len(a.history))
	copy(out, a.history)
	return out
}

// ParseConfirmationCode decodes a code and localizes its timestamp to this
// account's timezone.
func (a *Account) ParseConfirmationCode(code string) (Confirmation, error) {
	return parseConfirmationCode(code, a.tz.Location())
}

// confirm issues the next confirmation and records it in the history.
// Callers must hold a.mu.
func (a *Account) confirm(kind TransactionKind) Confirmation {
	// The code format carries second precision only; truncating here keeps
	// generate -> parse an exact round trip.
	c := Confirmation{
		Kind:          kind,
		AccountNumber: a.number,
		Timestamp:     a.now().In(a.tz.Location()).Truncate(time.Second),
		Sequence:      a.seq.Next(),
	}
	a.history = append(a.history, c)
	return c
}
