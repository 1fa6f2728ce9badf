package static

// WorkforceTier enumerates the five workforce tiers in ascending seniority.
type WorkforceTier int

const (
	TierPioneer WorkforceTier = iota
	TierSettler
	TierTechnician
	TierEngineer
	TierScientist

	tierCount
)

var tierNames = [tierCount]string{
	"PIONEER",
	"SETTLER",
	"TECHNICIAN",
	"ENGINEER",
	"SCIENTIST",
}

func (t WorkforceTier) String() string {
	if t < 0 || t >= tierCount {
		return "UNKNOWN"
	}
	return tierNames[t]
}

// TierByName resolves an upstream tier name, case sensitive.
func TierByName(name string) (WorkforceTier, bool) {
	for i, n := range tierNames {
		if n == name {
			return WorkforceTier(i), true
		}
	}
	return 0, false
}

// NeedKind splits a tier's consumables into the essential set and the two
// optional luxury slots.
type NeedKind int

const (
	NeedEssential NeedKind = iota
	NeedLuxury1
	NeedLuxury2
)

// Need is one consumable a workforce tier draws per day per 100 workers.
type Need struct {
	Ticker      string
	Kind        NeedKind
	UnitsPer100 float64
}

// tierNeeds is the per-tier daily consumption table, units per 100 workers.
var tierNeeds = [tierCount][]Need{
	TierPioneer: {
		{"DW", NeedEssential, 4},
		{"RAT", NeedEssential, 4},
		{"OVE", NeedEssential, 0.5},
		{"PWO", NeedLuxury1, 0.2},
		{"COF", NeedLuxury2, 0.5},
	},
	TierSettler: {
		{"DW", NeedEssential, 5},
		{"RAT", NeedEssential, 6},
		{"EXO", NeedEssential, 0.5},
		{"PT", NeedEssential, 0.5},
		{"REP", NeedLuxury1, 0.2},
		{"KOM", NeedLuxury2, 1},
	},
	TierTechnician: {
		{"DW", NeedEssential, 7.5},
		{"RAT", NeedEssential, 7},
		{"MED", NeedEssential, 0.5},
		{"HMS", NeedEssential, 0.5},
		{"SCN", NeedEssential, 0.1},
		{"SC", NeedLuxury1, 0.1},
		{"ALE", NeedLuxury2, 1},
	},
	TierEngineer: {
		{"DW", NeedEssential, 10},
		{"FIM", NeedEssential, 7},
		{"MED", NeedEssential, 0.5},
		{"HSS", NeedEssential, 0.2},
		{"PDA", NeedEssential, 0.1},
		{"GIN", NeedLuxury1, 1},
		{"VG", NeedLuxury2, 0.2},
	},
	TierScientist: {
		{"DW", NeedEssential, 10},
		{"MEA", NeedEssential, 7},
		{"MED", NeedEssential, 0.5},
		{"LC", NeedEssential, 0.2},
		{"WS", NeedEssential, 0.1},
		{"WIN", NeedLuxury1, 1},
		{"NST", NeedLuxury2, 0.1},
	},
}

// TierNeeds returns the consumption table for a tier. Callers must not mutate
// the returned slice.
func TierNeeds(tier WorkforceTier) []Need {
	if tier < 0 || tier >= tierCount {
		return nil
	}
	return tierNeeds[tier]
}
