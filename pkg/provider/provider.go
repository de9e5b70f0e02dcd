// Package provider defines the data-provider boundary for creature records
// and supplies a PokeAPI-backed implementation with pluggable response
// caching. The analytical packages never talk to the network themselves;
// everything they consume arrives through the Provider interface.
package provider

import (
	"context"
	"errors"

	"github.com/mlvn23/pokedex/pkg/analysis"
)

var (
	ErrUnknownCreature = errors.New("no matching creature")
	ErrUnknownGame     = errors.New("no such game version group")
)

// Identity is a resolved creature: dex number and canonical name always
// refer to the same entity.
type Identity struct {
	Dex  int    `json:"dex"`
	Name string `json:"name"`
}

// BaseStats holds the six named base stats.
type BaseStats struct {
	HP      int `json:"hp"`
	Attack  int `json:"attack"`
	Defense int `json:"defense"`
	SpAtk   int `json:"sp_atk"`
	SpDef   int `json:"sp_def"`
	Speed   int `json:"speed"`
}

// Sprites carries direct sprite URLs. Entries may be nil when the upstream
// source has no image for a variant.
type Sprites struct {
	FrontDefault *string `json:"front_default"`
	FrontShiny   *string `json:"front_shiny"`
	BackDefault  *string `json:"back_default"`
	BackShiny    *string `json:"back_shiny"`
}

// Creature is the immutable per-creature record. Height and weight keep the
// raw upstream units (decimeters and hectograms); metric conversions happen
// at the report layer.
type Creature struct {
	Dex            int
	Name           string
	Types          []analysis.Type
	HeightDm       int
	WeightHg       int
	BaseExperience int
	Stats          BaseStats
	Sprites        Sprites
}

// LearnableMove is one learnset entry scoped to a single game. Power is nil
// for status moves, Level is only set for level-up entries.
type LearnableMove struct {
	Name   string
	Type   analysis.Type
	Power  *int
	Method analysis.LearnMethodName
	Level  *int
}

// Ability pairs an ability with its English effect text.
type Ability struct {
	Name        string `json:"name"`
	IsHidden    bool   `json:"is_hidden"`
	ShortEffect string `json:"short_effect"`
	Effect      string `json:"effect"`
}

// EvolutionStep is one transition in an evolution chain.
type EvolutionStep struct {
	FromSpecies string            `json:"from_species"`
	ToSpecies   string            `json:"to_species"`
	Trigger     string            `json:"trigger,omitempty"`
	MinLevel    *int              `json:"min_level,omitempty"`
	Item        *string           `json:"item,omitempty"`
	Conditions  map[string]string `json:"conditions,omitempty"`
}

// EvolutionPath is an ordered run of steps from a chain root to a leaf.
type EvolutionPath struct {
	Steps []EvolutionStep `json:"steps"`
}

// EncounterDetail describes one way to find a creature in the wild.
type EncounterDetail struct {
	Method          string   `json:"method"`
	MinLevel        int      `json:"min_level"`
	MaxLevel        int      `json:"max_level"`
	Chance          int      `json:"chance"`
	ConditionValues []string `json:"condition_values,omitempty"`
}

// EncounterVersion groups encounter details under one game version.
type EncounterVersion struct {
	Version   string            `json:"version"`
	MaxChance int               `json:"max_chance"`
	Details   []EncounterDetail `json:"details"`
}

// EncounterLocation groups versions under one location area.
type EncounterLocation struct {
	LocationArea string             `json:"location_area"`
	Versions     []EncounterVersion `json:"versions"`
}

// GenderRatio holds species gender percentages; both are zero for
// genderless species.
type GenderRatio struct {
	FemalePercent float64 `json:"female_percent"`
	MalePercent   float64 `json:"male_percent"`
}

// Breeding is the species breeding record.
type Breeding struct {
	EggGroups  []string    `json:"egg_groups"`
	Gender     GenderRatio `json:"gender"`
	HatchSteps *int        `json:"hatch_steps"`
	EggMoves   []string    `json:"egg_moves"`
}

// Provider is the single collaborator the analytical core consumes. Every
// method performs at most one logical fetch per required record and never
// retries; rate limiting and backoff belong to the enclosing system.
type Provider interface {
	// Resolve maps a case-insensitive name or positive dex number to a
	// canonical identity. Fails with ErrUnknownCreature.
	Resolve(ctx context.Context, nameOrDex string) (*Identity, error)

	// Creature fetches the full record for a resolved identity.
	Creature(ctx context.Context, id *Identity) (*Creature, error)

	// Moves lists the learnset for one game version group, including move
	// type and power. Fails with ErrUnknownGame for unrecognized games.
	Moves(ctx context.Context, id *Identity, game string) ([]LearnableMove, error)

	// Descriptions maps game version to flavor text in the given language.
	Descriptions(ctx context.Context, id *Identity, language string) (map[string]string, error)

	// Abilities lists abilities with effect text.
	Abilities(ctx context.Context, id *Identity) ([]Ability, error)

	// EvolutionChain expands the species evolution tree into linear paths.
	EvolutionChain(ctx context.Context, id *Identity) ([]EvolutionPath, error)

	// Encounters lists wild encounter locations.
	Encounters(ctx context.Context, id *Identity) ([]EncounterLocation, error)

	// Breeding returns egg groups, hatch steps, gender ratio, and egg
	// moves. A non-empty game scopes egg moves to that version group.
	Breeding(ctx context.Context, id *Identity, game string) (*Breeding, error)
}
