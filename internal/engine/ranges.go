package engine

import "github.com/anyventure/companion-api/internal/entities"

// RangeContext selects defaults for absent range values
type RangeContext string

// Range contexts
const (
	RangeContextWeapon RangeContext = "weapon"
	RangeContextSpell  RangeContext = "spell"
)

// MeleeLabel is the phrase for adjacent-only reach
const MeleeLabel = "Melee"

type distanceBucket struct {
	upTo  int
	label string
}

// distanceBuckets maps raw distance units to a narrative band.
// Anything past the last bucket is Unlimited.
var distanceBuckets = []distanceBucket{
	{upTo: 1, label: "Adjacent"},
	{upTo: 2, label: "Nearby"},
	{upTo: 5, label: "Very Short"},
	{upTo: 10, label: "Short"},
	{upTo: 20, label: "Moderate"},
	{upTo: 40, label: "Far"},
	{upTo: 60, label: "Very Far"},
	{upTo: 100, label: "Distant"},
}

const unlimitedLabel = "Unlimited"

// rangeCodeLabels is the RangeCode enum; code 0 depends on context.
var rangeCodeLabels = [...]string{
	"Self",
	"Adjacent",
	"Nearby",
	"Very Short",
	"Short",
	"Moderate",
	"Far",
	"Very Far",
	"Distant",
	"Planar",
}

// detectionLabels is the detection tier scale (0-8).
var detectionLabels = [...]string{
	"None",
	"Adjacent",
	"Nearby",
	"Very Short",
	"Short",
	"Moderate",
	"Distant",
	"Remote",
	"Unlimited",
}

// DistanceLabel buckets raw distance units. Negative values count as 0.
func DistanceLabel(units int) string {
	units = max(units, 0)
	for _, b := range distanceBuckets {
		if units <= b.upTo {
			return b.label
		}
	}
	return unlimitedLabel
}

// FormatRangeSpan describes a min/max reach in distance units.
// min > max is rendered as given.
func FormatRangeSpan(minUnits, maxUnits int, _ RangeContext) string {
	minUnits = max(minUnits, 0)
	maxUnits = max(maxUnits, 0)

	if minUnits <= 1 && maxUnits == 1 {
		return MeleeLabel
	}

	minLabel := DistanceLabel(minUnits)
	maxLabel := DistanceLabel(maxUnits)
	if minLabel == maxLabel {
		return minLabel
	}
	if minUnits == 1 && maxUnits > 1 {
		return maxLabel
	}
	return minLabel + " to " + maxLabel
}

// DefaultRange returns the reach assumed when a record omits one
func DefaultRange(ctx RangeContext) (minUnits, maxUnits int) {
	if ctx == RangeContextWeapon {
		return 1, 1
	}
	return 0, 0
}

// FormatOptionalRangeSpan is FormatRangeSpan with context defaults for nil values
func FormatOptionalRangeSpan(minUnits, maxUnits *int, ctx RangeContext) string {
	defMin, defMax := DefaultRange(ctx)
	lo, hi := defMin, defMax
	if minUnits != nil {
		lo = *minUnits
	}
	if maxUnits != nil {
		hi = *maxUnits
	}
	return FormatRangeSpan(lo, hi, ctx)
}

// RangeCodeLabel returns the label for a RangeCode.
// Code 0 reads "Self" for spells and "No Min" for weapons.
func RangeCodeLabel(code int, ctx RangeContext) string {
	if code < 0 || code >= len(rangeCodeLabels) {
		return "Unknown Range"
	}
	if code == 0 && ctx == RangeContextWeapon {
		return "No Min"
	}
	return rangeCodeLabels[code]
}

// DetectionLabel returns the label for a detection tier. Negative tiers are Impaired.
func DetectionLabel(tier int) string {
	if tier < 0 {
		return "Impaired"
	}
	if tier >= len(detectionLabels) {
		return detectionLabels[len(detectionLabels)-1]
	}
	return detectionLabels[tier]
}

// Detection is one labelled sense of a creature
type Detection struct {
	Sense string
	Tier  int
	Label string
}

// DetectionList renders non-zero senses in display order. Normal sight is always listed.
func DetectionList(values map[string]int) []Detection {
	out := make([]Detection, 0, len(entities.Detections))
	for _, sense := range entities.Detections {
		tier := values[sense]
		if tier == 0 && sense != "normal" {
			continue
		}
		out = append(out, Detection{Sense: sense, Tier: tier, Label: DetectionLabel(tier)})
	}
	return out
}
