package engine

import (
	"strconv"

	"github.com/anyventure/companion-api/internal/entities"
)

// MitigationPair is the reduction against half and full hits
type MitigationPair struct {
	Half string
	Full string
}

// MitigationPairFor returns {ceil(v/2), v}. Negative values count as 0.
func MitigationPairFor(value int) MitigationPair {
	if value <= 0 {
		return MitigationPair{Half: "0", Full: "0"}
	}
	return MitigationPair{
		Half: strconv.Itoa(value/2 + value%2),
		Full: strconv.Itoa(value),
	}
}

// MitigationRow is one damage type line of a mitigation grid
type MitigationRow struct {
	DamageType entities.DamageType
	Value      int
	MitigationPair
}

// MitigationGrid returns a row for every damage type in canonical order
func MitigationGrid(values map[entities.DamageType]int) []MitigationRow {
	rows := make([]MitigationRow, 0, len(entities.DamageTypes))
	for _, dt := range entities.DamageTypes {
		v := max(values[dt], 0)
		rows = append(rows, MitigationRow{
			DamageType:     dt,
			Value:          v,
			MitigationPair: MitigationPairFor(v),
		})
	}
	return rows
}
