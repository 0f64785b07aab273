package domain

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedClock returns a deterministic time source; nanoseconds are non-zero on
// purpose so timestamp truncation is exercised.
func fixedClock() time.Time {
	return time.Date(2026, 8, 28, 12, 30, 45, 123456789, time.UTC)
}

func newTestAccount(t *testing.T, opts ...Option) *Account {
	t.Helper()
	base := []Option{WithSequence(NewSequence()), WithClock(fixedClock)}
	acct, err := NewAccount("1001", "John", "Green", append(base, opts...)...)
	require.NoError(t, err)
	return acct
}

func TestNewAccount_Defaults(t *testing.T) {
	acct := newTestAccount(t)

	assert.Equal(t, "1001", acct.Number())
	assert.Equal(t, "John", acct.FirstName())
	assert.Equal(t, "Green", acct.LastName())
	assert.Equal(t, "John Green", acct.FullName())
	assert.Equal(t, UTC, acct.TimeZone())
	assert.True(t, acct.Balance().IsZero())
	assert.Empty(t, acct.History())
}

func TestNewAccount_Validation(t *testing.T) {
	_, err := NewAccount("", "John", "Green")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = NewAccount("   ", "John", "Green")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = NewAccount("1001", "", "Green")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = NewAccount("1001", "John", "  ")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = NewAccount("1001", "John", "Green", WithBalance(decimal.NewFromInt(-1)))
	assert.ErrorIs(t, err, ErrValidation)
}

func TestNewAccount_TrimsNames(t *testing.T) {
	acct, err := NewAccount("1001", "  John ", " Green  ")
	require.NoError(t, err)
	assert.Equal(t, "John", acct.FirstName())
	assert.Equal(t, "Green", acct.LastName())
}

func TestSetNames_ValidateAndOverwrite(t *testing.T) {
	acct := newTestAccount(t)

	require.NoError(t, acct.SetFirstName("  Jane "))
	assert.Equal(t, "Jane", acct.FirstName())

	require.NoError(t, acct.SetLastName("Doe"))
	assert.Equal(t, "Jane Doe", acct.FullName())

	assert.ErrorIs(t, acct.SetFirstName(""), ErrValidation)
	assert.ErrorIs(t, acct.SetLastName("   "), ErrValidation)

	// Failed updates leave the names alone
	assert.Equal(t, "Jane", acct.FirstName())
	assert.Equal(t, "Doe", acct.LastName())
}

func TestDeposit_IncreasesBalance(t *testing.T) {
	acct := newTestAccount(t, WithBalance(decimal.NewFromInt(10)))

	conf, err := acct.Deposit(decimal.RequireFromString("32.50"))
	require.NoError(t, err)

	assert.True(t, acct.Balance().Equal(decimal.RequireFromString("42.50")),
		"got balance %s", acct.Balance())
	assert.Equal(t, KindDeposit, conf.Kind)
	assert.Equal(t, "1001", conf.AccountNumber)
}

func TestDeposit_RejectsNonPositiveAmount(t *testing.T) {
	acct := newTestAccount(t, WithBalance(decimal.NewFromInt(10)))

	_, err := acct.Deposit(decimal.Zero)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = acct.Deposit(decimal.NewFromInt(-5))
	assert.ErrorIs(t, err, ErrValidation)

	assert.True(t, acct.Balance().Equal(decimal.NewFromInt(10)))
	assert.Empty(t, acct.History())
}

func TestWithdraw_DecreasesBalance(t *testing.T) {
	acct := newTestAccount(t, WithBalance(decimal.NewFromInt(100)))

	conf, err := acct.Withdraw(decimal.NewFromInt(50))
	require.NoError(t, err)

	assert.True(t, acct.Balance().Equal(decimal.NewFromInt(50)))
	assert.Equal(t, KindWithdrawal, conf.Kind)
	assert.Equal(t, "1001", conf.AccountNumber)

	// Draining to exactly zero is allowed
	_, err = acct.Withdraw(decimal.NewFromInt(50))
	require.NoError(t, err)
	assert.True(t, acct.Balance().IsZero())
}

func TestWithdraw_RejectsNonPositiveAmount(t *testing.T) {
	acct := newTestAccount(t, WithBalance(decimal.NewFromInt(10)))

	_, err := acct.Withdraw(decimal.Zero)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = acct.Withdraw(decimal.RequireFromString("-0.01"))
	assert.ErrorIs(t, err, ErrValidation)

	assert.True(t, acct.Balance().Equal(decimal.NewFromInt(10)))
}

func TestWithdraw_InsufficientFundsLeavesBalance(t *testing.T) {
	acct := newTestAccount(t, WithBalance(decimal.NewFromInt(30)))

	_, err := acct.Withdraw(decimal.RequireFromString("30.01"))
	assert.ErrorIs(t, err, ErrInsufficientFunds)

	var insufficient *InsufficientFundsError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, KindDeclined, insufficient.Declined.Kind)
	assert.Equal(t, "1001", insufficient.Declined.AccountNumber)

	assert.True(t, acct.Balance().Equal(decimal.NewFromInt(30)))
}

func TestPayInterest_AppliesSharedRate(t *testing.T) {
	policy, err := NewInterestPolicy(decimal.RequireFromString("0.05"))
	require.NoError(t, err)

	acct := newTestAccount(t,
		WithBalance(decimal.NewFromInt(200)),
		WithInterestPolicy(policy),
	)

	conf := acct.PayInterest()

	assert.True(t, acct.Balance().Equal(decimal.NewFromInt(210)),
		"got balance %s", acct.Balance())
	assert.Equal(t, KindInterest, conf.Kind)
}

func TestPayInterest_ZeroRateIsNoop(t *testing.T) {
	policy, err := NewInterestPolicy(decimal.Zero)
	require.NoError(t, err)

	acct := newTestAccount(t,
		WithBalance(decimal.NewFromInt(200)),
		WithInterestPolicy(policy),
	)

	acct.PayInterest()
	assert.True(t, acct.Balance().Equal(decimal.NewFromInt(200)))
}

func TestInterestPolicy_SharedAcrossAccounts(t *testing.T) {
	policy, err := NewInterestPolicy(decimal.RequireFromString("0.10"))
	require.NoError(t, err)

	first := newTestAccount(t,
		WithBalance(decimal.NewFromInt(100)),
		WithInterestPolicy(policy),
	)
	second, err := NewAccount("1002", "Alice", "Brown",
		WithBalance(decimal.NewFromInt(100)),
		WithInterestPolicy(policy),
		WithSequence(NewSequence()),
		WithClock(fixedClock),
	)
	require.NoError(t, err)

	first.PayInterest()
	assert.True(t, first.Balance().Equal(decimal.NewFromInt(110)))

	// Changing the shared rate affects future payments on every holder,
	// but never rewrites balances already paid out.
	require.NoError(t, policy.SetRate(decimal.RequireFromString("0.50")))

	assert.True(t, first.Balance().Equal(decimal.NewFromInt(110)))
	second.PayInterest()
	assert.True(t, second.Balance().Equal(decimal.NewFromInt(150)))
}

func TestInterestPolicy_RejectsNegativeRate(t *testing.T) {
	_, err := NewInterestPolicy(decimal.RequireFromString("-0.01"))
	assert.ErrorIs(t, err, ErrValidation)

	policy, err := NewInterestPolicy(decimal.Zero)
	require.NoError(t, err)
	assert.ErrorIs(t, policy.SetRate(decimal.NewFromInt(-1)), ErrValidation)
	assert.True(t, policy.Rate().IsZero())
}

func TestHistory_RecordsEveryConfirmation(t *testing.T) {
	acct := newTestAccount(t, WithBalance(decimal.NewFromInt(100)))

	_, err := acct.Deposit(decimal.NewFromInt(50))
	require.NoError(t, err)
	_, err = acct.Withdraw(decimal.NewFromInt(25))
	require.NoError(t, err)
	_, err = acct.Withdraw(decimal.NewFromInt(1000))
	require.Error(t, err)

	history := acct.History()
	require.Len(t, history, 3)
	assert.Equal(t, KindDeposit, history[0].Kind)
	assert.Equal(t, KindWithdrawal, history[1].Kind)
	assert.Equal(t, KindDeclined, history[2].Kind)

	// History is a copy; mutating it must not touch the account
	history[0].Kind = KindInterest
	assert.Equal(t, KindDeposit, acct.History()[0].Kind)
}

func TestConcurrentDeposits_KeepBalanceExact(t *testing.T) {
	acct := newTestAccount(t)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := acct.Deposit(decimal.NewFromInt(1))
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.True(t, acct.Balance().Equal(decimal.NewFromInt(50)),
		"got balance %s", acct.Balance())
	assert.Len(t, acct.History(), 50)
}

func TestAccount_ParseConfirmationCode_LocalizesTimestamp(t *testing.T) {
	tz, err := NewTimeZone("IST", 5, 30)
	require.NoError(t, err)

	acct := newTestAccount(t, WithTimeZone(tz))
	conf, err := acct.Deposit(decimal.NewFromInt(1))
	require.NoError(t, err)

	parsed, err := acct.ParseConfirmationCode(conf.Code())
	require.NoError(t, err)

	assert.True(t, parsed.Timestamp.Equal(conf.Timestamp))
	zone, offset := parsed.Timestamp.Zone()
	assert.Equal(t, "IST", zone)
	assert.Equal(t, int((5*time.Hour+30*time.Minute)/time.Second), offset)
}

func TestOptionValidation(t *testing.T) {
	_, err := NewAccount("1001", "John", "Green", WithInterestPolicy(nil))
	assert.ErrorIs(t, err, ErrValidation)

	_, err = NewAccount("1001", "John", "Green", WithSequence(nil))
	assert.ErrorIs(t, err, ErrValidation)

	_, err = NewAccount("1001", "John", "Green", WithClock(nil))
	assert.ErrorIs(t, err, ErrValidation)

	_, err = NewAccount("1001", "John", "Green", WithTimeZone(TimeZone{Name: "bad", Hours: 24}))
	assert.ErrorIs(t, err, ErrValidation)
}

func TestErrorsDistinguishable(t *testing.T) {
	acct := newTestAccount(t)

	_, err := acct.Deposit(decimal.Zero)
	assert.True(t, errors.Is(err, ErrValidation))
	assert.False(t, errors.Is(err, ErrInsufficientFunds))

	_, err = acct.Withdraw(decimal.NewFromInt(1))
	assert.True(t, errors.Is(err, ErrInsufficientFunds))
	assert.False(t, errors.Is(err, ErrValidation))
}
