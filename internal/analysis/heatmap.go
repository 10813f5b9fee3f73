package analysis

import "github.com/guttosm/stockpulse/internal/domain/models"

// BuildSectorHeatmap returns the coarse heatmap: a "Stock Market" root with
// one sector node per distinct sector.
//
// Each sector node carries:
//   - Size: sum of MarketCap over the sector's records.
//   - Value: mean DailyChange over the sector's records.
//
// An empty input yields a root with no children.
func BuildSectorHeatmap(records []models.StockRecord) models.HeatmapNode {
	groups := groupBySector(records)

	children := make([]models.HeatmapNode, 0, len(groups))
	for _, g := range groups {
		children = append(children, sectorNode(g))
	}
	return rootNode(children)
}

// BuildDetailedSectorHeatmap returns the same root and sector summaries as
// BuildSectorHeatmap, with every sector node also carrying one stock leaf per
// record (in input order) as its children.
//
// Stock leaves carry Size = MarketCap, Value = Change = DailyChange, plus
// Symbol and Price.
func BuildDetailedSectorHeatmap(records []models.StockRecord) models.HeatmapNode {
	groups := groupBySector(records)

	children := make([]models.HeatmapNode, 0, len(groups))
	for _, g := range groups {
		node := sectorNode(g)
		node.Children = make([]models.HeatmapNode, 0, len(g.records))
		for _, r := range g.records {
			node.Children = append(node.Children, stockLeaf(r))
		}
		children = append(children, node)
	}
	return rootNode(children)
}

func rootNode(children []models.HeatmapNode) models.HeatmapNode {
	return models.HeatmapNode{
		Kind:     models.KindRoot,
		Name:     models.RootName,
		Children: children,
	}
}

func sectorNode(g *sectorGroup) models.HeatmapNode {
	return models.HeatmapNode{
		Kind:  models.KindSector,
		Name:  g.name,
		Size:  g.totalMarketCap(),
		Value: g.averageChange(),
	}
}

func stockLeaf(r models.StockRecord) models.HeatmapNode {
	return models.HeatmapNode{
		Kind:   models.KindStock,
		Name:   r.Name,
		Symbol: r.Symbol,
		Size:   r.MarketCap,
		Value:  r.DailyChange,
		Price:  r.Price,
		Change: r.DailyChange,
	}
}
