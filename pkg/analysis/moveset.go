package analysis

import (
	"errors"
	"fmt"
	"sort"
)

type LearnMethodName string

const (
	LevelUp LearnMethodName = "level-up"
	Machine LearnMethodName = "machine"
	Egg     LearnMethodName = "egg"
	Tutor   LearnMethodName = "tutor"
)

// Candidate is one learnable move under consideration for a single creature
// in a single game context. Power is nil for status moves; Level is only set
// for level-up moves.
type Candidate struct {
	Name   string
	Type   Type
	Power  *int
	Method LearnMethodName
	Level  *int
}

// ScoredMove pairs a surviving candidate with its heuristic score.
type ScoredMove struct {
	Candidate
	Score float64
}

var ErrInvalidLimit = errors.New("limit must be at least 1")

// MovesetOptions control candidate filtering and truncation.
type MovesetOptions struct {
	// Limit caps the number of returned moves. Must be at least 1.
	Limit int
	// IncludeMachine admits machine-taught moves into the candidate pool.
	IncludeMachine bool
}

// levelBonus favors earlier-available level-up moves. The bonus is strictly
// below 1, so it breaks ties between equal-power moves but can never
// overturn a power ranking.
func levelBonus(c Candidate) float64 {
	if c.Method != LevelUp || c.Level == nil {
		return 0
	}
	lvl := *c.Level
	if lvl > 100 {
		lvl = 100
	}
	return float64(100-lvl) / 200
}

func candidateLevel(c Candidate) int {
	if c.Level == nil {
		return 0
	}
	return *c.Level
}

// RecommendMoveset filters, scores, and ranks moves, returning at most
// opts.Limit of them in descending score order.
//
// Egg moves are never candidates; the breeding report surfaces those
// separately. Machine moves are skipped unless opts.IncludeMachine is set.
// Status moves stay in the pool at power zero, so they only surface when
// nothing damaging is available. Ties are broken by required level, then by
// move name, which makes the ranking total and reproducible.
//
// A creature with no eligible moves yields an empty slice, not an error:
// the lookup succeeded, there is just nothing to recommend.
func RecommendMoveset(moves []Candidate, opts MovesetOptions) ([]ScoredMove, error) {
	if opts.Limit < 1 {
		return nil, fmt.Errorf("invalid moveset limit %d: %w", opts.Limit, ErrInvalidLimit)
	}

	scored := make([]ScoredMove, 0, len(moves))
	for _, move := range moves {
		switch move.Method {
		case Egg:
			continue
		case Machine:
			if !opts.IncludeMachine {
				continue
			}
		}

		var power int
		if move.Power != nil {
			power = *move.Power
		}
		scored = append(scored, ScoredMove{
			Candidate: move,
			Score:     float64(power) + levelBonus(move),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		li, lj := candidateLevel(scored[i].Candidate), candidateLevel(scored[j].Candidate)
		if li != lj {
			return li < lj
		}
		return scored[i].Name < scored[j].Name
	})

	if len(scored) > opts.Limit {
		scored = scored[:opts.Limit]
	}

	return scored, nil
}
