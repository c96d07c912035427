package report

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product performance classifications
const (
	ClassStar      = "Star"      // high margin, high volume
	ClassVolume    = "Volume"    // low margin, high volume
	ClassLoss      = "Loss"      // low margin, low volume
	ClassPotential = "Potential" // high margin, low volume
	ClassStandard  = "Standard"
)

var (
	highMarginBoundary = decimal.NewFromInt(30)
	lowMarginBoundary  = decimal.NewFromInt(15)
)

// volumeBoundary separates slow movers from the rest; quantity at or below
// it counts as low volume.
const volumeBoundary = 5

// ProductPerformance is one row of the product matrix
type ProductPerformance struct {
	ProductID      uuid.UUID       `json:"product_id"`
	Name           string          `json:"name"`
	QuantitySold   int             `json:"quantity_sold"`
	Revenue        decimal.Decimal `json:"revenue"`
	MarginPercent  decimal.Decimal `json:"margin_percent"`
	Classification string          `json:"classification"`
}

// Classify buckets a product by margin and sales volume
func Classify(marginPercent decimal.Decimal, quantitySold int) string {
	highVolume := quantitySold > volumeBoundary
	switch {
	case marginPercent.GreaterThan(highMarginBoundary) && highVolume:
		return ClassStar
	case marginPercent.LessThan(lowMarginBoundary) && highVolume:
		return ClassVolume
	case marginPercent.LessThan(lowMarginBoundary) && !highVolume:
		return ClassLoss
	case marginPercent.GreaterThan(highMarginBoundary) && !highVolume:
		return ClassPotential
	default:
		return ClassStandard
	}
}
