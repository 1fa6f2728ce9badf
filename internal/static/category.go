package static

import "math"

// Category is the closed set of material categories. The numeric order is the
// canonical sort order for grouping inventories.
type Category int

const (
	CategoryAgriculturalProducts Category = iota
	CategoryAlloys
	CategoryChemicals
	CategoryConstructionMaterials
	CategoryConstructionParts
	CategoryConstructionPrefabs
	CategoryConsumablesBasic
	CategoryConsumablesLuxury
	CategoryDrones
	CategoryElectronicDevices
	CategoryElectronicParts
	CategoryElectronicPieces
	CategoryElectronicSystems
	CategoryElements
	CategoryEnergySystems
	CategoryFuels
	CategoryGases
	CategoryLiquids
	CategoryMedicalEquipment
	CategoryMetals
	CategoryMinerals
	CategoryOres
	CategoryPlastics
	CategoryShipEngines
	CategoryShipKits
	CategoryShipParts
	CategoryShipShields
	CategorySoftwareComponents
	CategorySoftwareSystems
	CategorySoftwareTools
	CategoryTextiles
	CategoryUnitPrefabs
	CategoryUtility

	categoryCount
)

var categoryNames = [categoryCount]string{
	"agricultural products",
	"alloys",
	"chemicals",
	"construction materials",
	"construction parts",
	"construction prefabs",
	"consumables (basic)",
	"consumables (luxury)",
	"drones",
	"electronic devices",
	"electronic parts",
	"electronic pieces",
	"electronic systems",
	"elements",
	"energy systems",
	"fuels",
	"gases",
	"liquids",
	"medical equipment",
	"metals",
	"minerals",
	"ores",
	"plastics",
	"ship engines",
	"ship kits",
	"ship parts",
	"ship shields",
	"software components",
	"software systems",
	"software tools",
	"textiles",
	"unit prefabs",
	"utility",
}

func (c Category) String() string {
	if c < 0 || c >= categoryCount {
		return "unknown"
	}
	return categoryNames[c]
}

// RGB is an 8-bit color triple used by rendering collaborators.
type RGB struct {
	R, G, B uint8
}

// categoryGradients holds the published gradient endpoints per category. The
// exposed foreground/background triples are derived from these, not stored.
var categoryGradients = [categoryCount][2]RGB{
	CategoryAgriculturalProducts:  {{92, 18, 18}, {117, 43, 43}},
	CategoryAlloys:                {{123, 76, 30}, {187, 91, 46}},
	CategoryChemicals:             {{183, 46, 91}, {228, 60, 102}},
	CategoryConstructionMaterials: {{24, 91, 211}, {77, 140, 233}},
	CategoryConstructionParts:     {{35, 30, 68}, {118, 91, 183}},
	CategoryConstructionPrefabs:   {{54, 54, 54}, {120, 120, 120}},
	CategoryConsumablesBasic:      {{149, 46, 46}, {212, 121, 121}},
	CategoryConsumablesLuxury:     {{136, 24, 39}, {194, 52, 72}},
	CategoryDrones:                {{91, 46, 183}, {140, 91, 228}},
	CategoryElectronicDevices:     {{86, 20, 147}, {149, 46, 212}},
	CategoryElectronicParts:       {{91, 30, 123}, {137, 77, 187}},
	CategoryElectronicPieces:      {{119, 82, 189}, {172, 140, 227}},
	CategoryElectronicSystems:     {{51, 26, 76}, {110, 59, 159}},
	CategoryElements:              {{61, 46, 32}, {122, 92, 64}},
	CategoryEnergySystems:         {{28, 64, 73}, {60, 134, 153}},
	CategoryFuels:                 {{30, 123, 30}, {62, 187, 62}},
	CategoryGases:                 {{0, 105, 107}, {28, 162, 165}},
	CategoryLiquids:               {{16, 123, 175}, {56, 164, 214}},
	CategoryMedicalEquipment:      {{85, 170, 85}, {142, 212, 142}},
	CategoryMetals:                {{54, 54, 54}, {115, 115, 115}},
	CategoryMinerals:              {{123, 76, 30}, {178, 124, 66}},
	CategoryOres:                  {{82, 87, 97}, {134, 140, 151}},
	CategoryPlastics:              {{121, 31, 60}, {182, 46, 91}},
	CategoryShipEngines:           {{153, 41, 0}, {204, 77, 0}},
	CategoryShipKits:              {{153, 84, 0}, {204, 129, 0}},
	CategoryShipParts:             {{153, 99, 0}, {204, 153, 0}},
	CategoryShipShields:           {{224, 131, 4}, {249, 165, 42}},
	CategorySoftwareComponents:    {{136, 121, 47}, {187, 168, 88}},
	CategorySoftwareSystems:       {{60, 53, 5}, {125, 112, 27}},
	CategorySoftwareTools:         {{129, 98, 19}, {183, 147, 45}},
	CategoryTextiles:              {{82, 90, 33}, {125, 134, 61}},
	CategoryUnitPrefabs:           {{29, 27, 28}, {95, 92, 93}},
	CategoryUtility:               {{161, 148, 136}, {210, 199, 189}},
}

func rmsChannel(a, b uint8) uint8 {
	return uint8(math.Round(math.Sqrt((float64(a)*float64(a) + float64(b)*float64(b)) / 2)))
}

func rms(a, b RGB) RGB {
	return RGB{
		R: rmsChannel(a.R, b.R),
		G: rmsChannel(a.G, b.G),
		B: rmsChannel(a.B, b.B),
	}
}

// Foreground returns the category's foreground triple: the element-wise RMS
// average of its gradient endpoints.
func (c Category) Foreground() RGB {
	if c < 0 || c >= categoryCount {
		return RGB{}
	}
	return rms(categoryGradients[c][0], categoryGradients[c][1])
}

// Background returns the category's background triple: the RMS average of the
// gradient endpoints dimmed to a quarter intensity.
func (c Category) Background() RGB {
	fg := c.Foreground()
	return RGB{R: fg.R / 4, G: fg.G / 4, B: fg.B / 4}
}
