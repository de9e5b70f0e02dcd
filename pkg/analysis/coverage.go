package analysis

import (
	"errors"
	"fmt"
)

// AggregateClass is the roster-wide outcome for one attacking type. Severity
// wins: a single badly exposed member marks the whole roster for that type.
type AggregateClass string

const (
	ClassQuadWeak      AggregateClass = "quad-weak"
	ClassWeak          AggregateClass = "weak"
	ClassImmune        AggregateClass = "immune"
	ClassPartialImmune AggregateClass = "partial-immune"
	ClassQuadResistant AggregateClass = "quad-resistant"
	ClassResistant     AggregateClass = "resistant"
	ClassNeutral       AggregateClass = "neutral"
)

// RosterMember is one creature under evaluation. Duplicates are allowed and
// are cited individually.
type RosterMember struct {
	Name  string
	Types []Type
}

// TypeMatchup is the aggregated verdict for a single attacking type, plus
// the members that triggered it.
type TypeMatchup struct {
	AttackType   Type           `json:"attack_type"`
	Class        AggregateClass `json:"class"`
	Contributors []string       `json:"contributors"`
}

var ErrEmptyRoster = errors.New("roster must contain at least one creature")

// Coverage classifies every attacking type against the whole roster.
//
// Classification is worst-case-first: quad-weak beats weak beats everything
// else, full immunity only counts when the entire roster is immune, and a
// partial immunity is only reported when no member is hit for more than
// neutral damage. Output order follows AllTypes and member citations follow
// roster order, so the report is deterministic and independent of roster
// permutation up to which names are cited.
func Coverage(roster []RosterMember) ([]TypeMatchup, error) {
	if len(roster) == 0 {
		return nil, ErrEmptyRoster
	}

	matchups := make([]TypeMatchup, 0, len(AllTypes))
	for _, attack := range AllTypes {
		levels := make([]EfficacyLevel, len(roster))
		for i, member := range roster {
			lvl, err := DefendingEfficacy(attack, member.Types)
			if err != nil {
				return nil, fmt.Errorf("could not evaluate %q against roster member %q: %w",
					attack, member.Name, err)
			}
			levels[i] = lvl
		}

		class := classify(levels)
		matchups = append(matchups, TypeMatchup{
			AttackType:   attack,
			Class:        class,
			Contributors: contributors(roster, levels, class),
		})
	}

	return matchups, nil
}

func classify(levels []EfficacyLevel) AggregateClass {
	var quadWeak, weak, immune, quadResist, resist int
	for _, lvl := range levels {
		switch {
		case lvl >= DoubleSuperEffective:
			quadWeak++
		case lvl == SuperEffective:
			weak++
		case lvl == Immune:
			immune++
		case lvl == DoubleNotVeryEffective:
			quadResist++
		case lvl == NotVeryEffective:
			resist++
		}
	}

	switch {
	case quadWeak > 0:
		return ClassQuadWeak
	case weak > 0:
		return ClassWeak
	case immune == len(levels):
		return ClassImmune
	case immune > 0:
		return ClassPartialImmune
	case quadResist > 0:
		return ClassQuadResistant
	case resist > 0:
		return ClassResistant
	default:
		return ClassNeutral
	}
}

// contributors cites the members whose individual matchup produced the
// aggregate class, in roster order.
func contributors(roster []RosterMember, levels []EfficacyLevel, class AggregateClass) []string {
	matches := func(lvl EfficacyLevel) bool {
		switch class {
		case ClassQuadWeak:
			return lvl >= DoubleSuperEffective
		case ClassWeak:
			return lvl == SuperEffective
		case ClassImmune, ClassPartialImmune:
			return lvl == Immune
		case ClassQuadResistant:
			return lvl == DoubleNotVeryEffective
		case ClassResistant:
			return lvl == NotVeryEffective
		default:
			return true
		}
	}

	names := make([]string, 0, len(roster))
	for i, member := range roster {
		if matches(levels[i]) {
			names = append(names, member.Name)
		}
	}

	return names
}
