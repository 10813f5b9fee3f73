package analysis

import (
	"cmp"
	"slices"

	"gonum.org/v1/gonum/floats"

	"github.com/guttosm/stockpulse/internal/domain/models"
)

// TopN is the maximum number of records in each ranking of a summary.
const TopN = 5

// Summarize computes the market-wide statistics of a snapshot.
//
// Behavior:
//   - AverageDailyChange is the mean DailyChange (0 for empty input).
//   - TotalMarketCap and TotalVolume are plain sums (0 for empty input).
//   - TopGainers / TopLosers are ranked on independent copies of records,
//     descending / ascending by DailyChange. Ties keep input order.
//
// The input slice is never modified.
func Summarize(records []models.StockRecord) models.MarketSummary {
	return models.MarketSummary{
		AverageDailyChange: mean(dailyChanges(records)),
		TotalMarketCap:     floats.Sum(marketCaps(records)),
		TotalVolume:        floats.Sum(volumes(records)),
		TopGainers: rank(records, func(a, b models.StockRecord) int {
			return cmp.Compare(b.DailyChange, a.DailyChange)
		}),
		TopLosers: rank(records, func(a, b models.StockRecord) int {
			return cmp.Compare(a.DailyChange, b.DailyChange)
		}),
	}
}

// rank stable-sorts a copy of records and keeps the first TopN.
func rank(records []models.StockRecord, order func(a, b models.StockRecord) int) []models.StockRecord {
	sorted := slices.Clone(records)
	if sorted == nil {
		sorted = make([]models.StockRecord, 0)
	}
	slices.SortStableFunc(sorted, order)
	if len(sorted) > TopN {
		sorted = sorted[:TopN:TopN]
	}
	return sorted
}
