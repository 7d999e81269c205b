package idgen_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/anyventure/companion-api/internal/pkg/idgen"
)

func TestUUIDGeneratorPrefix(t *testing.T) {
	gen := idgen.NewUUID(idgen.PrefixSpell)

	first := gen.Generate()
	second := gen.Generate()

	assert.True(t, strings.HasPrefix(first, "spell_"))
	assert.NotEqual(t, first, second)
	assert.Len(t, idgen.NewUUID("").Generate(), 36)
}

func TestSequentialGenerator(t *testing.T) {
	gen := idgen.NewSequential("roll")

	assert.Equal(t, "roll_1", gen.Generate())
	assert.Equal(t, "roll_2", gen.Generate())
	assert.Equal(t, "1", idgen.NewSequential("").Generate())
}
