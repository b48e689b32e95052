package rates

import (
	"taxengine/internal/model"

	"github.com/shopspring/decimal"
)

// Fixed illustrative split of a combined rate; not a real jurisdictional split.
var (
	stateShare = decimal.RequireFromString("0.6")
	cityShare  = decimal.RequireFromString("0.4")
)

// Breakdown splits entry's rate into state and city components.
// Decimal arithmetic is exact, so State + City == Total.
func Breakdown(entry model.ZipRateEntry) model.RateBreakdown {
	return model.RateBreakdown{
		State: entry.Rate.Mul(stateShare),
		City:  entry.Rate.Mul(cityShare),
		Total: entry.Rate,
	}
}
