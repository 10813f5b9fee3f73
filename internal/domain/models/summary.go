package models

// MarketSummary holds the global statistics of a snapshot.
//
// Fields:
//   - AverageDailyChange: arithmetic mean of DailyChange (0 when empty).
//   - TotalMarketCap: sum of MarketCap.
//   - TotalVolume: sum of Volume.
//   - TopGainers: up to 5 records, highest DailyChange first.
//   - TopLosers: up to 5 records, lowest DailyChange first.
//
// swagger:model MarketSummary
type MarketSummary struct {
	AverageDailyChange float64       `json:"averageDailyChange" example:"0.42"`
	TotalMarketCap     float64       `json:"totalMarketCap" example:"12500000000000"`
	TotalVolume        float64       `json:"totalVolume" example:"980000000"`
	TopGainers         []StockRecord `json:"topGainers"`
	TopLosers          []StockRecord `json:"topLosers"`
}

// MarketOverview bundles every derived view computed from one snapshot load.
//
// swagger:model MarketOverview
type MarketOverview struct {
	Heatmap         HeatmapNode   `json:"heatmap"`
	DetailedHeatmap HeatmapNode   `json:"detailedHeatmap"`
	Summary         MarketSummary `json:"summary"`
}
