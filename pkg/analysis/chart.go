package analysis

import "fmt"

// EfficacyLevel is a damage multiplier scaled by 100 so that every outcome of
// multiplicative dual-type stacking stays an exact integer.
type EfficacyLevel int

const (
	DoubleSuperEffective   EfficacyLevel = 400
	SuperEffective         EfficacyLevel = 200
	NormalEffective        EfficacyLevel = 100
	NotVeryEffective       EfficacyLevel = 50
	DoubleNotVeryEffective EfficacyLevel = 25
	Immune                 EfficacyLevel = 0
)

// Multiplier converts the scaled level back to the familiar damage factor.
func (lvl EfficacyLevel) Multiplier() float64 {
	return float64(lvl) / 100
}

// relations mirrors the upstream damage_relations shape: per attacking type,
// the defending types it hits for double, half, or no damage. Pairs not
// listed are neutral.
type relations struct {
	double []Type
	half   []Type
	zero   []Type
}

// chart is the canonical (generation 6+) type chart.
var chart = map[Type]relations{
	Normal: {
		half: []Type{Rock, Steel},
		zero: []Type{Ghost},
	},
	Fighting: {
		double: []Type{Normal, Rock, Steel, Ice, Dark},
		half:   []Type{Flying, Poison, Bug, Psychic, Fairy},
		zero:   []Type{Ghost},
	},
	Flying: {
		double: []Type{Fighting, Bug, Grass},
		half:   []Type{Rock, Steel, Electric},
	},
	Poison: {
		double: []Type{Grass, Fairy},
		half:   []Type{Poison, Ground, Rock, Ghost},
		zero:   []Type{Steel},
	},
	Ground: {
		double: []Type{Poison, Rock, Steel, Fire, Electric},
		half:   []Type{Bug, Grass},
		zero:   []Type{Flying},
	},
	Rock: {
		double: []Type{Flying, Bug, Fire, Ice},
		half:   []Type{Fighting, Ground, Steel},
	},
	Bug: {
		double: []Type{Grass, Psychic, Dark},
		half:   []Type{Fighting, Flying, Poison, Ghost, Steel, Fire, Fairy},
	},
	Ghost: {
		double: []Type{Ghost, Psychic},
		half:   []Type{Dark},
		zero:   []Type{Normal},
	},
	Steel: {
		double: []Type{Rock, Ice, Fairy},
		half:   []Type{Steel, Fire, Water, Electric},
	},
	Fire: {
		double: []Type{Bug, Steel, Grass, Ice},
		half:   []Type{Rock, Fire, Water, Dragon},
	},
	Water: {
		double: []Type{Ground, Rock, Fire},
		half:   []Type{Water, Grass, Dragon},
	},
	Grass: {
		double: []Type{Ground, Rock, Water},
		half:   []Type{Flying, Poison, Bug, Steel, Fire, Grass, Dragon},
	},
	Electric: {
		double: []Type{Flying, Water},
		half:   []Type{Grass, Electric, Dragon},
		zero:   []Type{Ground},
	},
	Psychic: {
		double: []Type{Fighting, Poison},
		half:   []Type{Steel, Psychic},
		zero:   []Type{Dark},
	},
	Ice: {
		double: []Type{Flying, Ground, Grass, Dragon},
		half:   []Type{Steel, Fire, Water, Ice},
	},
	Dragon: {
		double: []Type{Dragon},
		half:   []Type{Steel},
		zero:   []Type{Fairy},
	},
	Dark: {
		double: []Type{Ghost, Psychic},
		half:   []Type{Fighting, Dark, Fairy},
	},
	Fairy: {
		double: []Type{Fighting, Dragon, Dark},
		half:   []Type{Poison, Steel, Fire},
	},
}

// Efficacy returns the single-type damage level for an attacking type
// against one defending type.
func Efficacy(attack, defense Type) (EfficacyLevel, error) {
	rel, ok := chart[attack]
	if !ok {
		return 0, fmt.Errorf("no such attacking type %q: %w", attack, ErrInvalidType)
	}
	if !defense.Valid() {
		return 0, fmt.Errorf("no such defending type %q: %w", defense, ErrInvalidType)
	}

	for _, typ := range rel.zero {
		if typ == defense {
			return Immune, nil
		}
	}
	for _, typ := range rel.double {
		if typ == defense {
			return SuperEffective, nil
		}
	}
	for _, typ := range rel.half {
		if typ == defense {
			return NotVeryEffective, nil
		}
	}

	return NormalEffective, nil
}

// DefendingEfficacy returns the effective damage level against a creature
// with one or two defensive types. Individual multipliers stack
// multiplicatively, so a dual-typed defender lands in
// {0, 25, 50, 100, 200, 400}.
func DefendingEfficacy(attack Type, defense []Type) (EfficacyLevel, error) {
	if len(defense) == 0 {
		return 0, fmt.Errorf("creature has no defensive types: %w", ErrInvalidType)
	}

	lvl := NormalEffective
	for _, typ := range defense {
		single, err := Efficacy(attack, typ)
		if err != nil {
			return 0, fmt.Errorf("could not stack efficacy: %w", err)
		}
		lvl = lvl * single / 100
	}

	return lvl, nil
}
