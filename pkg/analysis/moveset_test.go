package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intp(v int) *int { return &v }

func names(moves []ScoredMove) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.Name
	}
	return out
}

func TestRecommendMoveset_InvalidLimit(t *testing.T) {
	_, err := RecommendMoveset(nil, MovesetOptions{Limit: 0})
	require.ErrorIs(t, err, ErrInvalidLimit)

	_, err = RecommendMoveset(nil, MovesetOptions{Limit: -3})
	require.ErrorIs(t, err, ErrInvalidLimit)
}

func TestRecommendMoveset_MachineFilter(t *testing.T) {
	moves := []Candidate{
		{Name: "crunch", Type: Dark, Power: intp(90), Method: LevelUp, Level: intp(36)},
		{Name: "crunch", Type: Dark, Power: intp(90), Method: Machine},
	}

	got, err := RecommendMoveset(moves, MovesetOptions{Limit: 4})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, LevelUp, got[0].Method)

	got, err = RecommendMoveset(moves, MovesetOptions{Limit: 4, IncludeMachine: true})
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestRecommendMoveset_EggMovesNeverEligible(t *testing.T) {
	moves := []Candidate{
		{Name: "curse", Type: Ghost, Method: Egg},
	}

	got, err := RecommendMoveset(moves, MovesetOptions{Limit: 4, IncludeMachine: true})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRecommendMoveset_PowerDominates(t *testing.T) {
	moves := []Candidate{
		{Name: "tackle", Type: Normal, Power: intp(40), Method: LevelUp, Level: intp(1)},
		{Name: "hydro-pump", Type: Water, Power: intp(110), Method: LevelUp, Level: intp(60)},
		{Name: "surf", Type: Water, Power: intp(90), Method: Tutor},
	}

	got, err := RecommendMoveset(moves, MovesetOptions{Limit: 4})
	require.NoError(t, err)
	assert.Equal(t, []string{"hydro-pump", "surf", "tackle"}, names(got))
}

func TestRecommendMoveset_LevelBreaksPowerTies(t *testing.T) {
	moves := []Candidate{
		{Name: "flamethrower", Type: Fire, Power: intp(90), Method: LevelUp, Level: intp(46)},
		{Name: "aqua-tail", Type: Water, Power: intp(90), Method: LevelUp, Level: intp(21)},
	}

	got, err := RecommendMoveset(moves, MovesetOptions{Limit: 4})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "aqua-tail", got[0].Name)
	assert.Greater(t, got[0].Score, got[1].Score)
}

func TestRecommendMoveset_NameBreaksRemainingTies(t *testing.T) {
	// Same power, no levels: ordering falls through to the move name.
	moves := []Candidate{
		{Name: "zen-headbutt", Type: Psychic, Power: intp(80), Method: Tutor},
		{Name: "iron-head", Type: Steel, Power: intp(80), Method: Tutor},
	}

	got, err := RecommendMoveset(moves, MovesetOptions{Limit: 4})
	require.NoError(t, err)
	assert.Equal(t, []string{"iron-head", "zen-headbutt"}, names(got))
}

func TestRecommendMoveset_StatusNeverOutranksDamaging(t *testing.T) {
	moves := []Candidate{
		{Name: "growl", Type: Normal, Method: LevelUp, Level: intp(1)},
		{Name: "pound", Type: Normal, Power: intp(40), Method: LevelUp, Level: intp(99)},
	}

	got, err := RecommendMoveset(moves, MovesetOptions{Limit: 4})
	require.NoError(t, err)
	assert.Equal(t, []string{"pound", "growl"}, names(got))
}

func TestRecommendMoveset_StatusOnlyLearnset(t *testing.T) {
	moves := []Candidate{
		{Name: "toxic", Type: Poison, Method: LevelUp, Level: intp(20)},
		{Name: "protect", Type: Normal, Method: LevelUp, Level: intp(10)},
	}

	got, err := RecommendMoveset(moves, MovesetOptions{Limit: 1})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "protect", got[0].Name)
}

func TestRecommendMoveset_LimitBeyondCandidates(t *testing.T) {
	moves := []Candidate{
		{Name: "ember", Type: Fire, Power: intp(40), Method: LevelUp, Level: intp(5)},
	}

	got, err := RecommendMoveset(moves, MovesetOptions{Limit: 10})
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestRecommendMoveset_Truncation(t *testing.T) {
	moves := []Candidate{
		{Name: "a", Type: Normal, Power: intp(10), Method: Tutor},
		{Name: "b", Type: Normal, Power: intp(20), Method: Tutor},
		{Name: "c", Type: Normal, Power: intp(30), Method: Tutor},
	}

	got, err := RecommendMoveset(moves, MovesetOptions{Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "b"}, names(got))
}

func TestRecommendMoveset_NoEligibleMoves(t *testing.T) {
	moves := []Candidate{
		{Name: "thunderbolt", Type: Electric, Power: intp(90), Method: Machine},
	}

	got, err := RecommendMoveset(moves, MovesetOptions{Limit: 4})
	require.NoError(t, err)
	assert.Empty(t, got)
}
