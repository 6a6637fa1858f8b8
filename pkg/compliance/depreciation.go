package compliance

import "strings"

// DepreciationItem is one row of the static depreciation reference table.
// PrimeCostRate is the annual prime-cost percentage (100 / effective life).
type DepreciationItem struct {
	Asset              string  `json:"asset"`
	EffectiveLifeYears float64 `json:"effectiveLifeYears"`
	PrimeCostRate      float64 `json:"primeCostRate"`
}

// depreciationTable is a static reference dataset of work-related assets,
// not user data.
var depreciationTable = []DepreciationItem{
	{"Laptop computer", 2, 50.0},
	{"Desktop computer", 4, 25.0},
	{"Computer monitor", 4, 25.0},
	{"Tablet", 2, 50.0},
	{"Mobile phone", 3, 33.33},
	{"Printer", 5, 20.0},
	{"Office desk", 20, 5.0},
	{"Office chair", 10, 10.0},
	{"Bookshelf", 15, 6.67},
	{"Camera (digital)", 5, 20.0},
	{"Power tools", 5, 20.0},
	{"Hand tools", 10, 10.0},
	{"Car (work use)", 8, 12.5},
	{"Air conditioner (portable)", 10, 10.0},
}

// SearchDepreciation filters the depreciation table by a case-insensitive
// substring match against the asset name. An empty query returns the full
// table.
func SearchDepreciation(query string) []DepreciationItem {
	query = strings.TrimSpace(strings.ToLower(query))
	if query == "" {
		result := make([]DepreciationItem, len(depreciationTable))
		copy(result, depreciationTable)
		return result
	}

	var result []DepreciationItem
	for _, item := range depreciationTable {
		if strings.Contains(strings.ToLower(item.Asset), query) {
			result = append(result, item)
		}
	}
	return result
}
