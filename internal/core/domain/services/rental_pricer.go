package services

import (
	"rental/internal/core/domain/model/kernel"
	"rental/internal/core/domain/model/order"
)

// RentalPricer computes what a rental is expected to cost over its whole window.
// The estimate is for display only: the stored order total stays Σ price × quantity.
type RentalPricer struct{}

func NewRentalPricer() RentalPricer {
	return RentalPricer{}
}

// Estimate is Σ price × quantity × days for the order's window.
func (p RentalPricer) Estimate(o *order.RentalOrder) kernel.Money {
	return p.EstimateAmount(o.Total(), o.Period())
}

// EstimateAmount scales an unscaled total by the number of billable days in period.
func (RentalPricer) EstimateAmount(total kernel.Money, period kernel.DateRange) kernel.Money {
	return total.Times(period.Days())
}
