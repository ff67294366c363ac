package service

import (
	"fmt"
	"math"
	"sort"

	"github.com/GlennDumoulin/food-orders/storefront-svc/internal/domain"

	"github.com/shopspring/decimal"
)

// PricePlan lists the writes needed to bring a dish's prices in line with a submission.
// Keep holds existing prices whose value is already the submitted one.
type PricePlan struct {
	Create []domain.Price
	Update []domain.Price
	Delete []domain.Price
	Keep   []domain.Price
}

func (p PricePlan) Writes() int {
	return len(p.Create) + len(p.Update) + len(p.Delete)
}

// Result is the price set of the dish once the plan has been applied.
func (p PricePlan) Result() []domain.Price {
	result := make([]domain.Price, 0, len(p.Keep)+len(p.Update)+len(p.Create))
	result = append(result, p.Keep...)
	result = append(result, p.Update...)
	result = append(result, p.Create...)
	sortBySize(result)
	return result
}

// NewSizePrice converts a submitted form value, rejecting NaN and infinities.
func NewSizePrice(sizeID string, value float64) (domain.SizePrice, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return domain.SizePrice{}, fmt.Errorf("%w: price for size %s is not a number", domain.ErrInvalidPrice, sizeID)
	}
	return domain.SizePrice{SizeID: sizeID, Price: decimal.NewFromFloat(value)}, nil
}

// ValidatePrices checks every submitted pair before anything is written.
func ValidatePrices(submitted []domain.SizePrice) error {
	if len(submitted) == 0 {
		return fmt.Errorf("%w: add at least 1 price to your dish", domain.ErrInvalidPrice)
	}
	seen := make(map[string]bool, len(submitted))
	for _, pair := range submitted {
		if pair.SizeID == "" {
			return fmt.Errorf("%w: size is required", domain.ErrInvalidPrice)
		}
		if seen[pair.SizeID] {
			return fmt.Errorf("%w: size %s submitted twice", domain.ErrInvalidPrice, pair.SizeID)
		}
		seen[pair.SizeID] = true

		if !pair.Price.IsPositive() {
			return fmt.Errorf("%w: price for size %s must be positive", domain.ErrInvalidPrice, pair.SizeID)
		}
		if !pair.Price.Equal(pair.Price.Truncate(2)) {
			return fmt.Errorf("%w: price for size %s has more than 2 decimals", domain.ErrInvalidPrice, pair.SizeID)
		}
	}
	return nil
}

// Reconcile decides per size, independently of the other sizes, whether the dish's price
// for that size is created, updated, deleted or left alone. Submitted pairs for sizes
// outside sizes are ignored, as are existing prices of other dishes. Unchanged prices are
// kept rather than rewritten, so saving the same form twice writes nothing.
func Reconcile(dishID string, sizes []domain.Size, existing []domain.Price, submitted []domain.SizePrice) (PricePlan, error) {
	if err := ValidatePrices(submitted); err != nil {
		return PricePlan{}, err
	}

	current := make(map[string]domain.Price, len(existing))
	for _, price := range existing {
		if price.DishID == dishID {
			current[price.SizeID] = price
		}
	}
	wanted := make(map[string]decimal.Decimal, len(submitted))
	for _, pair := range submitted {
		wanted[pair.SizeID] = pair.Price
	}

	var plan PricePlan
	for _, size := range sizes {
		price, hasPrice := current[size.ID]
		value, hasValue := wanted[size.ID]

		switch {
		case !hasPrice && hasValue:
			plan.Create = append(plan.Create, domain.Price{DishID: dishID, SizeID: size.ID, Price: value})
		case hasPrice && hasValue && price.Price.Equal(value):
			plan.Keep = append(plan.Keep, price)
		case hasPrice && hasValue:
			price.Price = value
			plan.Update = append(plan.Update, price)
		case hasPrice && !hasValue:
			plan.Delete = append(plan.Delete, price)
		}
	}

	sortBySize(plan.Create)
	sortBySize(plan.Update)
	sortBySize(plan.Delete)
	sortBySize(plan.Keep)
	return plan, nil
}

func sortBySize(prices []domain.Price) {
	sort.Slice(prices, func(i, j int) bool {
		return prices[i].SizeID < prices[j].SizeID
	})
}
