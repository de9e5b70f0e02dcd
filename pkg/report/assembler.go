// Package report composes provider records and analysis results into the
// response shapes handed back to callers. It owns identifier resolution and
// default substitution; all heavy lifting lives in pkg/analysis.
package report

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mlvn23/pokedex/pkg/analysis"
	"github.com/mlvn23/pokedex/pkg/provider"
)

const (
	defaultLanguage     = "en"
	defaultMovesetLimit = 4
)

// Assembler builds reports on top of a single Provider. It holds no mutable
// state, so one instance can serve concurrent invocations.
type Assembler struct {
	provider provider.Provider
}

// Config configures an Assembler.
type Config struct {
	Provider provider.Provider
}

func (cfg *Config) validate() error {
	if cfg == nil {
		return errors.New("config cannot be nil")
	}
	if cfg.Provider == nil {
		return errors.New("provider cannot be nil")
	}
	return nil
}

func New(cfg *Config) (*Assembler, error) {
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid assembler config: %w", err)
	}

	return &Assembler{provider: cfg.Provider}, nil
}

// resolve canonicalizes a user-supplied identifier before delegating to the
// provider: names are matched case-insensitively, digit strings are treated
// as dex numbers.
func (a *Assembler) resolve(ctx context.Context, nameOrDex string) (*provider.Identity, error) {
	id, err := a.provider.Resolve(ctx, strings.ToLower(strings.TrimSpace(nameOrDex)))
	if err != nil {
		return nil, fmt.Errorf("could not resolve %q: %w", nameOrDex, err)
	}

	return id, nil
}

type SummaryInput struct {
	NameOrDex string
}

// Summary is the per-creature overview: typing, measurements in both raw
// and metric units, base stats, and sprite URLs.
type Summary struct {
	Dex            int                `json:"dex"`
	Name           string             `json:"name"`
	Types          []analysis.Type    `json:"types"`
	HeightDm       int                `json:"height_dm"`
	HeightM        float64            `json:"height_m"`
	WeightHg       int                `json:"weight_hg"`
	WeightKg       float64            `json:"weight_kg"`
	BaseExperience int                `json:"base_experience"`
	BaseStats      provider.BaseStats `json:"base_stats"`
	Sprites        provider.Sprites   `json:"sprites"`
}

func (a *Assembler) Summary(ctx context.Context, input *SummaryInput) (*Summary, error) {
	id, err := a.resolve(ctx, input.NameOrDex)
	if err != nil {
		return nil, err
	}

	creature, err := a.provider.Creature(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not fetch creature %q: %w", id.Name, err)
	}

	return &Summary{
		Dex:            creature.Dex,
		Name:           creature.Name,
		Types:          creature.Types,
		HeightDm:       creature.HeightDm,
		HeightM:        float64(creature.HeightDm) / 10,
		WeightHg:       creature.WeightHg,
		WeightKg:       float64(creature.WeightHg) / 10,
		BaseExperience: creature.BaseExperience,
		BaseStats:      creature.Stats,
		Sprites:        creature.Sprites,
	}, nil
}

type CoverageInput struct {
	NamesOrDexes []string
}

// CoverageReport aggregates defensive matchups across a whole roster.
type CoverageReport struct {
	Team     []string               `json:"team"`
	Matchups []analysis.TypeMatchup `json:"matchups"`
}

func (a *Assembler) Coverage(ctx context.Context, input *CoverageInput) (*CoverageReport, error) {
	if len(input.NamesOrDexes) == 0 {
		return nil, analysis.ErrEmptyRoster
	}

	roster := make([]analysis.RosterMember, 0, len(input.NamesOrDexes))
	team := make([]string, 0, len(input.NamesOrDexes))
	for _, nameOrDex := range input.NamesOrDexes {
		id, err := a.resolve(ctx, nameOrDex)
		if err != nil {
			return nil, err
		}
		creature, err := a.provider.Creature(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("could not fetch creature %q: %w", id.Name, err)
		}
		roster = append(roster, analysis.RosterMember{
			Name:  creature.Name,
			Types: creature.Types,
		})
		team = append(team, creature.Name)
	}

	matchups, err := analysis.Coverage(roster)
	if err != nil {
		return nil, fmt.Errorf("could not analyze coverage: %w", err)
	}

	return &CoverageReport{Team: team, Matchups: matchups}, nil
}

type MovesetInput struct {
	NameOrDex string
	Game      string
	// Limit caps the recommendation count; zero means the default of 4.
	Limit          int
	IncludeMachine bool
}

// MoveRecommendation is one ranked move.
type MoveRecommendation struct {
	Name   string                   `json:"name"`
	Type   analysis.Type            `json:"type"`
	Power  *int                     `json:"power"`
	Method analysis.LearnMethodName `json:"learn_method"`
	Level  *int                     `json:"level,omitempty"`
	Score  float64                  `json:"score"`
}

// MovesetReport is the ranked recommendation list for one creature in one
// game. An empty Recommendations slice means no qualifying moves, which is
// a valid outcome rather than a failure.
type MovesetReport struct {
	Creature        string               `json:"creature"`
	Game            string               `json:"game"`
	Recommendations []MoveRecommendation `json:"recommendations"`
}

func (a *Assembler) Moveset(ctx context.Context, input *MovesetInput) (*MovesetReport, error) {
	limit := input.Limit
	if limit == 0 {
		limit = defaultMovesetLimit
	}

	id, err := a.resolve(ctx, input.NameOrDex)
	if err != nil {
		return nil, err
	}

	moves, err := a.provider.Moves(ctx, id, input.Game)
	if err != nil {
		return nil, fmt.Errorf("could not fetch moves for %q: %w", id.Name, err)
	}

	candidates := make([]analysis.Candidate, len(moves))
	for i, move := range moves {
		candidates[i] = analysis.Candidate{
			Name:   move.Name,
			Type:   move.Type,
			Power:  move.Power,
			Method: move.Method,
			Level:  move.Level,
		}
	}

	scored, err := analysis.RecommendMoveset(candidates, analysis.MovesetOptions{
		Limit:          limit,
		IncludeMachine: input.IncludeMachine,
	})
	if err != nil {
		return nil, fmt.Errorf("could not rank moveset: %w", err)
	}

	recommendations := make([]MoveRecommendation, len(scored))
	for i, move := range scored {
		recommendations[i] = MoveRecommendation{
			Name:   move.Name,
			Type:   move.Type,
			Power:  move.Power,
			Method: move.Method,
			Level:  move.Level,
			Score:  move.Score,
		}
	}

	return &MovesetReport{
		Creature:        id.Name,
		Game:            input.Game,
		Recommendations: recommendations,
	}, nil
}

type MovesInput struct {
	NameOrDex string
	Game      string
}

// MoveEntry is one learnset row in the plain moves listing.
type MoveEntry struct {
	Name   string                   `json:"name"`
	Type   analysis.Type            `json:"type"`
	Power  *int                     `json:"power"`
	Method analysis.LearnMethodName `json:"learn_method"`
	Level  *int                     `json:"level,omitempty"`
}

// MovesReport is the untransformed learnset for one creature and game.
type MovesReport struct {
	Creature string      `json:"creature"`
	Game     string      `json:"game"`
	Moves    []MoveEntry `json:"moves"`
}

func (a *Assembler) Moves(ctx context.Context, input *MovesInput) (*MovesReport, error) {
	id, err := a.resolve(ctx, input.NameOrDex)
	if err != nil {
		return nil, err
	}

	moves, err := a.provider.Moves(ctx, id, input.Game)
	if err != nil {
		return nil, fmt.Errorf("could not fetch moves for %q: %w", id.Name, err)
	}

	entries := make([]MoveEntry, len(moves))
	for i, move := range moves {
		entries[i] = MoveEntry{
			Name:   move.Name,
			Type:   move.Type,
			Power:  move.Power,
			Method: move.Method,
			Level:  move.Level,
		}
	}

	return &MovesReport{Creature: id.Name, Game: input.Game, Moves: entries}, nil
}

type DescriptionsInput struct {
	NameOrDex string
	// Language defaults to English.
	Language string
}

// DescriptionsReport maps game version to flavor text.
type DescriptionsReport struct {
	Creature     string            `json:"creature"`
	Language     string            `json:"language"`
	Descriptions map[string]string `json:"descriptions"`
}

func (a *Assembler) Descriptions(ctx context.Context, input *DescriptionsInput) (*DescriptionsReport, error) {
	language := input.Language
	if language == "" {
		language = defaultLanguage
	}

	id, err := a.resolve(ctx, input.NameOrDex)
	if err != nil {
		return nil, err
	}

	descriptions, err := a.provider.Descriptions(ctx, id, language)
	if err != nil {
		return nil, fmt.Errorf("could not fetch descriptions for %q: %w", id.Name, err)
	}

	return &DescriptionsReport{
		Creature:     id.Name,
		Language:     language,
		Descriptions: descriptions,
	}, nil
}

type AbilitiesInput struct {
	NameOrDex string
}

// AbilitiesReport lists abilities with effect text.
type AbilitiesReport struct {
	Creature  string             `json:"creature"`
	Abilities []provider.Ability `json:"abilities"`
}

func (a *Assembler) Abilities(ctx context.Context, input *AbilitiesInput) (*AbilitiesReport, error) {
	id, err := a.resolve(ctx, input.NameOrDex)
	if err != nil {
		return nil, err
	}

	abilities, err := a.provider.Abilities(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not fetch abilities for %q: %w", id.Name, err)
	}

	return &AbilitiesReport{Creature: id.Name, Abilities: abilities}, nil
}

type EvolutionsInput struct {
	NameOrDex string
}

// EvolutionsReport lists the evolution paths touching the creature.
type EvolutionsReport struct {
	Creature string                   `json:"creature"`
	Paths    []provider.EvolutionPath `json:"paths"`
}

func (a *Assembler) Evolutions(ctx context.Context, input *EvolutionsInput) (*EvolutionsReport, error) {
	id, err := a.resolve(ctx, input.NameOrDex)
	if err != nil {
		return nil, err
	}

	paths, err := a.provider.EvolutionChain(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not fetch evolution chain for %q: %w", id.Name, err)
	}

	return &EvolutionsReport{Creature: id.Name, Paths: paths}, nil
}

type EncountersInput struct {
	NameOrDex string
}

// EncountersReport lists wild encounter locations grouped by area and game
// version.
type EncountersReport struct {
	Creature  string                       `json:"creature"`
	Locations []provider.EncounterLocation `json:"locations"`
}

func (a *Assembler) Encounters(ctx context.Context, input *EncountersInput) (*EncountersReport, error) {
	id, err := a.resolve(ctx, input.NameOrDex)
	if err != nil {
		return nil, err
	}

	locations, err := a.provider.Encounters(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not fetch encounters for %q: %w", id.Name, err)
	}

	return &EncountersReport{Creature: id.Name, Locations: locations}, nil
}

type BreedingInput struct {
	NameOrDex string
	// Game optionally scopes egg moves to one version group.
	Game string
}

// BreedingReport carries the species breeding record.
type BreedingReport struct {
	Creature string `json:"creature"`
	provider.Breeding
}

func (a *Assembler) BreedingInfo(ctx context.Context, input *BreedingInput) (*BreedingReport, error) {
	id, err := a.resolve(ctx, input.NameOrDex)
	if err != nil {
		return nil, err
	}

	breeding, err := a.provider.Breeding(ctx, id, input.Game)
	if err != nil {
		return nil, fmt.Errorf("could not fetch breeding info for %q: %w", id.Name, err)
	}

	return &BreedingReport{Creature: id.Name, Breeding: *breeding}, nil
}
