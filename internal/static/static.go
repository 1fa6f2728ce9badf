// Package static holds the reference databases for materials, buildings,
// recipes and workforce needs. The tables are literals emitted by an offline
// generator from a live API snapshot; lookups index them lazily under a once
// guard and the records are immutable afterwards.
package static

import "sync"

var (
	indexOnce        sync.Once
	materialByTicker map[string]*Material
	buildingByKey    map[string]*Building
)

func buildIndexes() {
	materialByTicker = make(map[string]*Material, len(materials))
	for i := range materials {
		materialByTicker[materials[i].Ticker] = &materials[i]
	}
	buildingByKey = make(map[string]*Building, 2*len(buildings))
	for i := range buildings {
		buildingByKey[buildings[i].Ticker] = &buildings[i]
		buildingByKey[buildings[i].Name] = &buildings[i]
	}
}

// MaterialByTicker resolves a material ticker. The second return is false for
// tickers outside the static universe.
func MaterialByTicker(ticker string) (*Material, bool) {
	indexOnce.Do(buildIndexes)
	m, ok := materialByTicker[ticker]
	return m, ok
}

// BuildingByKey resolves a building by ticker or by internal name; both keys
// point at the same record.
func BuildingByKey(key string) (*Building, bool) {
	indexOnce.Do(buildIndexes)
	b, ok := buildingByKey[key]
	return b, ok
}

// Materials returns the full material table in category order. Callers must
// not mutate it.
func Materials() []Material {
	return materials
}

// Buildings returns the full building table. Callers must not mutate it.
func Buildings() []Building {
	return buildings
}

// Recipes returns the recipe table in its stable canonical order. Callers
// filter by building ticker and must not mutate the slice.
func Recipes() []Recipe {
	return recipes
}

// RecipesFor returns the recipes runnable on a building, preserving table
// order.
func RecipesFor(building string) []Recipe {
	out := []Recipe{}
	for i := range recipes {
		if recipes[i].Building == building {
			out = append(out, recipes[i])
		}
	}
	return out
}

// Extraction describes how an extraction building converts a deposit factor
// into daily yield: daily base amount = factor × DailyRate, units per cycle =
// ceil(daily base / CycleDivisor).
type Extraction struct {
	Resource     string
	DailyRate    float64
	CycleDivisor float64
}

// extractionSpecs is keyed by extraction building ticker. The constants are
// game-defined and not derivable from any fetched document.
var extractionSpecs = map[string]Extraction{
	"COL": {"GASEOUS", 60, 4},
	"EXT": {"MINERAL", 70, 2},
	"RIG": {"LIQUID", 70, 5},
}

// ExtractionFor returns the extraction parameters of a building, false when
// the building is not an extractor.
func ExtractionFor(building string) (Extraction, bool) {
	e, ok := extractionSpecs[building]
	return e, ok
}
