package models

import "encoding/json"

// NodeKind tells which variant of the heatmap tree a HeatmapNode is.
type NodeKind int

const (
	// KindRoot is the single top node of a heatmap ("Stock Market").
	KindRoot NodeKind = iota
	// KindSector summarizes all records sharing a sector.
	KindSector
	// KindStock is a leaf built from a single record.
	KindStock
)

// RootName is the name of every heatmap root node.
const RootName = "Stock Market"

// HeatmapNode is a node of the treemap-style heatmap tree.
//
// Size always encodes the visual area (market cap based) and Value the
// performance metric driving the color scale. Symbol, Price and Change are
// only meaningful on stock leaves.
//
// JSON shape per kind:
//   - root:   name, children (always an array)
//   - sector: name, size, value, children (only when populated)
//   - stock:  name, symbol, size, value, price, change
//
// swagger:model HeatmapNode
type HeatmapNode struct {
	Kind     NodeKind      `json:"-"`
	Name     string        `json:"name"`
	Children []HeatmapNode `json:"children,omitempty"`
	Size     float64       `json:"size"`
	Value    float64       `json:"value"`
	Symbol   string        `json:"symbol,omitempty"`
	Price    float64       `json:"price"`
	Change   float64       `json:"change"`
}

type heatmapWire struct {
	Name     string        `json:"name"`
	Children []HeatmapNode `json:"children,omitempty"`
	Size     *float64      `json:"size,omitempty"`
	Value    *float64      `json:"value,omitempty"`
	Symbol   string        `json:"symbol,omitempty"`
	Price    *float64      `json:"price,omitempty"`
	Change   *float64      `json:"change,omitempty"`
}

type rootWire struct {
	Name     string        `json:"name"`
	Children []HeatmapNode `json:"children"`
}

// MarshalJSON emits only the fields that belong to the node's kind.
func (n HeatmapNode) MarshalJSON() ([]byte, error) {
	switch n.Kind {
	case KindRoot:
		children := n.Children
		if children == nil {
			children = []HeatmapNode{}
		}
		return json.Marshal(rootWire{Name: n.Name, Children: children})
	case KindStock:
		return json.Marshal(heatmapWire{
			Name:   n.Name,
			Symbol: n.Symbol,
			Size:   &n.Size,
			Value:  &n.Value,
			Price:  &n.Price,
			Change: &n.Change,
		})
	default:
		return json.Marshal(heatmapWire{
			Name:     n.Name,
			Children: n.Children,
			Size:     &n.Size,
			Value:    &n.Value,
		})
	}
}

// IsLeaf reports whether the node has no children.
func (n HeatmapNode) IsLeaf() bool {
	return len(n.Children) == 0
}
