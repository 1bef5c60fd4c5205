package services

import (
	"clinicmeals/internal/core/domain/model/kernel"
	"clinicmeals/internal/core/domain/model/order"
	"clinicmeals/internal/pkg/errs"
)

const (
	MinAccompaniments = 1
	MaxAccompaniments = 2

	// TwoAccompanimentsPrice replaces the base price when two accompaniments
	// are chosen. It is not added to it.
	TwoAccompanimentsPrice = 2000
)

// PricingCalculator computes employee order totals.
//
// Rules:
//   - 1 accompaniment: total is the base price
//   - 2 accompaniments: total is TwoAccompanimentsPrice, whatever the base price
//   - any other count is rejected before anything is computed
type PricingCalculator struct{}

var _ order.PriceCalculator = PricingCalculator{}

func NewPricingCalculator() PricingCalculator {
	return PricingCalculator{}
}

// ComputePrice returns the total for base and accompaniments.
//
// Example:
//
//	calc := services.NewPricingCalculator()
//	total, _ := calc.ComputePrice(kernel.MustPrice(1800), 2) // 2000
func (PricingCalculator) ComputePrice(base kernel.Price, accompaniments int) (kernel.Price, error) {
	if accompaniments < MinAccompaniments || accompaniments > MaxAccompaniments {
		return kernel.Price{}, errs.NewValueIsOutOfRangeError(
			"accompaniments", accompaniments, MinAccompaniments, MaxAccompaniments)
	}
	if err := base.Validate(); err != nil {
		return kernel.Price{}, err
	}

	if accompaniments == MaxAccompaniments {
		return kernel.MustPrice(TwoAccompanimentsPrice), nil
	}
	return base, nil
}
