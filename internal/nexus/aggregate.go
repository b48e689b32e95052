package nexus

import (
	"taxengine/internal/model"

	"github.com/shopspring/decimal"
)

// Aggregate groups records by state code, summing amounts and counting rows.
// Groups come back in the order their state code first appears.
func Aggregate(records []model.SalesRecord) []model.StateAggregate {
	index := make(map[string]int)
	res := make([]model.StateAggregate, 0)

	for _, rec := range records {
		i, ok := index[rec.StateCode]
		if !ok {
			i = len(res)
			index[rec.StateCode] = i
			res = append(res, model.StateAggregate{
				StateCode:    rec.StateCode,
				TotalRevenue: decimal.Zero,
			})
		}
		res[i].TotalRevenue = res[i].TotalRevenue.Add(rec.Amount)
		res[i].TotalTransactions++
	}

	return res
}
