package workshop

import (
	"github.com/shopspring/decimal"

	"github.com/juvelir/workshop/internal/adapters/store/model"
)

// QualifyingStatuses is the set of order statuses whose prices count toward
// a client's total purchases. Only handed-over goods count; READY orders are
// not yet paid for.
var QualifyingStatuses = []model.OrderStatus{model.OrderStatusCompleted}

// aggregatePolicy is passed to the store so order mutations recompute
// affected aggregates inside their own transaction.
func aggregatePolicy() model.AggregatePolicy {
	return model.AggregatePolicy{
		Qualifying:  QualifyingStatuses,
		DiscountFor: DiscountFor,
	}
}

var discountTiers = []struct {
	threshold decimal.Decimal
	percent   int
}{
	{decimal.NewFromInt(100000), 15},
	{decimal.NewFromInt(50000), 10},
	{decimal.NewFromInt(25000), 5},
}

// DiscountFor maps a total purchase amount onto a percent discount.
// Boundaries are inclusive, highest tier first.
func DiscountFor(total decimal.Decimal) int {
	for _, tier := range discountTiers {
		if total.GreaterThanOrEqual(tier.threshold) {
			return tier.percent
		}
	}
	return 0
}
