package kernel

import (
	"fmt"

	"clinicmeals/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Price is a positive, currency-agnostic amount. The zero value is invalid.
type Price struct {
	amount decimal.Decimal
}

// NewPrice accepts any amount strictly greater than zero.
func NewPrice(amount decimal.Decimal) (Price, error) {
	if !amount.IsPositive() {
		return Price{}, errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%s is not greater than 0", amount))
	}
	return Price{amount: amount}, nil
}

// NewPriceFromInt is a shorthand for whole-unit amounts.
func NewPriceFromInt(units int64) (Price, error) {
	return NewPrice(decimal.NewFromInt(units))
}

// PriceFromString parses a decimal literal such as "1500" or "12.50".
func PriceFromString(s string) (Price, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Price{}, errs.NewValueIsInvalidErrorWithCause("price", err)
	}
	return NewPrice(amount)
}

// MustPrice panics on invalid input. Use only with constants.
func MustPrice(units int64) Price {
	p, err := NewPriceFromInt(units)
	if err != nil {
		panic(err)
	}
	return p
}

func (p Price) Amount() decimal.Decimal {
	return p.amount
}

func (p Price) IsEqual(other Price) bool {
	return p.amount.Equal(other.amount)
}

func (p Price) Validate() error {
	if !p.amount.IsPositive() {
		return errs.NewValueIsRequiredError("price")
	}
	return nil
}

func (p Price) String() string {
	return p.amount.String()
}
