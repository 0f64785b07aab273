package domain

import (
	"fmt"
	"sync"

	"github.com/shopspring/decimal"
)

// InterestPolicy holds the interest rate shared between accounts. It replaces
// the usual "class-level" rate with an explicit object passed by reference:
// changing the rate affects all accounts holding the policy, but only their
// future PayInterest calls.
type InterestPolicy struct {
	mu   sync.RWMutex
	rate decimal.Decimal
}

// NewInterestPolicy creates a policy with the given rate.
// Negative rates are rejected so that interest can never drive a balance
// below zero.
func NewInterestPolicy(rate decimal.Decimal) (*InterestPolicy, error) {
	p := &InterestPolicy{}
	if err := p.SetRate(rate); err != nil {
		return nil, err
	}
	return p, nil
}

// Rate returns the current shared rate.
func (p *InterestPolicy) Rate() decimal.Decimal {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.rate
}

// SetRate overwrites the shared rate for every account holding the policy.
func (p *InterestPolicy) SetRate(rate decimal.Decimal) error {
	if rate.IsNegative() {
		return fmt.Errorf("interest rate cannot be negative: %w", ErrValidation)
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.rate = rate
	return nil
}

// SharedInterest is the process-wide default policy, starting at a zero rate.
// Accounts constructed without WithInterestPolicy share it.
var SharedInterest = &InterestPolicy{}
