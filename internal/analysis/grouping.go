// Package analysis derives aggregate market views from a snapshot of stock
// records. Every function is a pure transform over its input: no I/O, no
// retained state, safe for concurrent use as long as callers do not mutate
// the slice while a call is running.
package analysis

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/guttosm/stockpulse/internal/domain/models"
)

// sectorGroup accumulates the records of one sector in input order.
type sectorGroup struct {
	name       string
	records    []models.StockRecord
	marketCaps []float64
	changes    []float64
}

func (g *sectorGroup) add(r models.StockRecord) {
	g.records = append(g.records, r)
	g.marketCaps = append(g.marketCaps, r.MarketCap)
	g.changes = append(g.changes, r.DailyChange)
}

func (g *sectorGroup) totalMarketCap() float64 {
	return floats.Sum(g.marketCaps)
}

func (g *sectorGroup) averageChange() float64 {
	return mean(g.changes)
}

// groupBySector partitions records by their exact Sector value. Groups are
// returned in order of first appearance so the output is stable for a given
// input order.
func groupBySector(records []models.StockRecord) []*sectorGroup {
	index := make(map[string]*sectorGroup)
	groups := make([]*sectorGroup, 0)

	for _, r := range records {
		g, ok := index[r.Sector]
		if !ok {
			g = &sectorGroup{name: r.Sector}
			index[r.Sector] = g
			groups = append(groups, g)
		}
		g.add(r)
	}
	return groups
}

// mean returns the arithmetic mean of xs, or 0 for an empty slice.
func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	return stat.Mean(xs, nil)
}

func dailyChanges(records []models.StockRecord) []float64 {
	out := make([]float64, len(records))
	for i, r := range records {
		out[i] = r.DailyChange
	}
	return out
}

func marketCaps(records []models.StockRecord) []float64 {
	out := make([]float64, len(records))
	for i, r := range records {
		out[i] = r.MarketCap
	}
	return out
}

func volumes(records []models.StockRecord) []float64 {
	out := make([]float64, len(records))
	for i, r := range records {
		out[i] = r.Volume
	}
	return out
}
