package kernel

import (
	"errors"
	"fmt"
	"strings"

	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

// DefaultCurrency is the currency assumed when none is provided.
const DefaultCurrency = "EGP"

// ErrMoneyIsNotConstructed is returned when attempting to use an improperly initialized Money.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"money must be created via NewMoney constructor")

// ErrCurrencyMismatch is returned when arithmetic is attempted on two Money
// values with different currencies.
var ErrCurrencyMismatch = errors.New("cannot combine money with mismatched currencies")

// Money is an immutable value object representing a monetary amount in minor
// units (piasters, cents) together with its currency code. Amounts are never
// negative; the currency code is normalized to upper case.
//
// The zero value of Money is invalid and fails Validate — use NewMoney or Zero.
//
// Example:
//
//	price, err := kernel.NewMoney(2550, "EGP") // 25.50 EGP
//	if err != nil {
//	    // handle invalid amount/currency
//	}
type Money struct { //nolint:recvcheck //using for validation
	amount   int64
	currency string
	guard    guard.ConstructorGuard
}

// NewMoney creates a Money value in minor units of the given currency.
//
// Returns a validation error if amount is negative or currency is blank.
func NewMoney(amount int64, currency string) (Money, error) {
	money := Money{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		money.setAmount(amount),
		money.setCurrency(currency),
	); err != nil {
		return Money{}, err
	}

	return money, nil
}

// Zero returns a zero amount in the given currency (DefaultCurrency if blank).
func Zero(currency string) Money {
	if strings.TrimSpace(currency) == "" {
		currency = DefaultCurrency
	}
	money, _ := NewMoney(0, currency)
	return money
}

// Amount returns the amount in minor units.
func (m Money) Amount() int64 {
	return m.amount
}

// Currency returns the upper-case currency code.
func (m Money) Currency() string {
	return m.currency
}

// Add returns the sum of two Money values.
// Both operands must be valid and share the same currency.
func (m Money) Add(other Money) (Money, error) {
	if err := errors.Join(m.Validate(), other.Validate()); err != nil {
		return Money{}, err
	}

	if m.currency != other.currency {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("currency",
			fmt.Errorf("%w: %s != %s", ErrCurrencyMismatch, m.currency, other.currency))
	}

	return NewMoney(m.amount+other.amount, m.currency)
}

// MultiplyBy returns the amount scaled by a non-negative quantity,
// used for order item line totals.
func (m Money) MultiplyBy(quantity int) (Money, error) {
	if err := m.Validate(); err != nil {
		return Money{}, err
	}

	if quantity < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is negative", quantity))
	}

	return NewMoney(m.amount*int64(quantity), m.currency)
}

// IsEqual compares two Money values by amount and currency.
func (m Money) IsEqual(other Money) bool {
	return m.amount == other.amount && m.currency == other.currency
}

// String renders the amount with two decimal places, e.g. "25.50 EGP".
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d %s", m.amount/100, m.amount%100, m.currency)
}

// Validate ensures the Money instance was properly constructed through NewMoney.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

func (m *Money) setAmount(amount int64) error {
	if amount < 0 {
		return errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%d is negative", amount))
	}

	m.amount = amount
	return nil
}

func (m *Money) setCurrency(currency string) error {
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if currency == "" {
		return errs.NewValueIsRequiredError("currency")
	}

	m.currency = currency
	return nil
}
