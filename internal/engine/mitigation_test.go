package engine_test

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anyventure/companion-api/internal/engine"
	"github.com/anyventure/companion-api/internal/entities"
)

func TestMitigationPairFor(t *testing.T) {
	assert.Equal(t, engine.MitigationPair{Half: "0", Full: "0"}, engine.MitigationPairFor(0))
	assert.Equal(t, engine.MitigationPair{Half: "3", Full: "5"}, engine.MitigationPairFor(5))
	assert.Equal(t, engine.MitigationPair{Half: "2", Full: "4"}, engine.MitigationPairFor(4))
	assert.Equal(t, engine.MitigationPair{Half: "1", Full: "1"}, engine.MitigationPairFor(1))
	assert.Equal(t, engine.MitigationPair{Half: "0", Full: "0"}, engine.MitigationPairFor(-3))
	assert.Equal(t, engine.MitigationPair{Half: "0", Full: "0"}, engine.MitigationPairFor(math.MinInt))
}

func TestMitigationPairForLargestValue(t *testing.T) {
	pair := engine.MitigationPairFor(math.MaxInt)
	assert.Equal(t, strconv.Itoa(math.MaxInt/2+1), pair.Half)
	assert.Equal(t, strconv.Itoa(math.MaxInt), pair.Full)
}

func TestMitigationGrid(t *testing.T) {
	grid := engine.MitigationGrid(map[entities.DamageType]int{
		entities.DamageToxic:    2,
		entities.DamagePhysical: 5,
		entities.DamageCold:     -1,
	})

	require.Len(t, grid, len(entities.DamageTypes))
	for i, dt := range entities.DamageTypes {
		assert.Equal(t, dt, grid[i].DamageType)
	}
	assert.Equal(t, engine.MitigationPair{Half: "3", Full: "5"}, grid[0].MitigationPair)
	assert.Equal(t, 0, grid[2].Value)
	assert.Equal(t, "0", grid[2].Full)
	assert.Equal(t, engine.MitigationPair{Half: "1", Full: "2"}, grid[8].MitigationPair)
}

func TestFormatGoldDisplay(t *testing.T) {
	assert.Equal(t, "Free", engine.FormatGoldDisplay(0))
	assert.Equal(t, "5 silver", engine.FormatGoldDisplay(5))
	assert.Equal(t, "1 gold", engine.FormatGoldDisplay(10))
	assert.Equal(t, "1 gold, 5 silver", engine.FormatGoldDisplay(15))
	assert.Equal(t, "12 gold, 3 silver", engine.FormatGoldDisplay(123))
	assert.Equal(t, "Free", engine.FormatGoldDisplay(-7))
}
