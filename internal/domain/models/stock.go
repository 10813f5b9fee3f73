package models

// StockRecord represents one traded instrument in a market snapshot.
//
// Fields map 1:1 to the keys of the snapshot JSON objects:
//   - Symbol: unique ticker (e.g., "AAPL").
//   - Name: company name.
//   - Sector: free-form category used for grouping (case-sensitive).
//   - Price: last traded price.
//   - DailyChange, MonthlyChange, YearlyChange: signed performance deltas.
//   - MarketCap: market capitalization, used as the visual weight of heatmap nodes.
//   - Volume: traded volume.
//
// Records are treated as immutable once loaded.
//
// swagger:model StockRecord
type StockRecord struct {
	Symbol        string  `json:"symbol" example:"AAPL"`
	Name          string  `json:"name" example:"Apple Inc."`
	Sector        string  `json:"sector" example:"Technology"`
	Price         float64 `json:"price" example:"198.89"`
	DailyChange   float64 `json:"dailyChange" example:"1.25"`
	MonthlyChange float64 `json:"monthlyChange" example:"-3.4"`
	YearlyChange  float64 `json:"yearlyChange" example:"12.7"`
	MarketCap     float64 `json:"marketCap" example:"2980000000000"`
	Volume        float64 `json:"volume" example:"51234000"`
}
