package analysis

import "errors"

// Type is one of the eighteen canonical elemental types. The "unknown" and
// "shadow" types that exist in the upstream data are not used in battle and
// are rejected here.
type Type string

const (
	Normal   Type = "normal"
	Fighting Type = "fighting"
	Flying   Type = "flying"
	Poison   Type = "poison"
	Ground   Type = "ground"
	Rock     Type = "rock"
	Bug      Type = "bug"
	Ghost    Type = "ghost"
	Steel    Type = "steel"
	Fire     Type = "fire"
	Water    Type = "water"
	Grass    Type = "grass"
	Electric Type = "electric"
	Psychic  Type = "psychic"
	Ice      Type = "ice"
	Dragon   Type = "dragon"
	Dark     Type = "dark"
	Fairy    Type = "fairy"
)

// AllTypes lists every battle type in report order. Coverage reports iterate
// this slice so output ordering is stable across calls.
var AllTypes = []Type{
	Normal, Fighting, Flying, Poison, Ground, Rock, Bug, Ghost, Steel,
	Fire, Water, Grass, Electric, Psychic, Ice, Dragon, Dark, Fairy,
}

var ErrInvalidType = errors.New("unrecognized elemental type")

// Valid reports whether typ is one of the canonical battle types.
func (typ Type) Valid() bool {
	_, ok := chart[typ]
	return ok
}
