package entities

import "github.com/KirkDiggler/rpg-toolkit/core"

// Entity types as reported by GetType. Repositories name records by them.
const (
	TypeCharacter = "character"
	TypeCreature  = "creature"
	TypeSpell     = "spell"
	TypeItem      = "item"
)

var (
	_ core.Entity = (*Character)(nil)
	_ core.Entity = (*Creature)(nil)
	_ core.Entity = (*Spell)(nil)
	_ core.Entity = (*Item)(nil)
)
