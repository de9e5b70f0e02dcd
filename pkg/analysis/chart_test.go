package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEfficacy_KnownMatchups(t *testing.T) {
	cases := []struct {
		attack  Type
		defense Type
		want    EfficacyLevel
	}{
		{Electric, Water, SuperEffective},
		{Electric, Ground, Immune},
		{Normal, Ghost, Immune},
		{Fire, Grass, SuperEffective},
		{Fire, Water, NotVeryEffective},
		{Dragon, Fairy, Immune},
		{Psychic, Dark, Immune},
		{Fighting, Bug, NotVeryEffective},
		{Water, Water, NotVeryEffective},
		{Ghost, Normal, Immune},
		{Ice, Dragon, SuperEffective},
		{Fairy, Fire, NotVeryEffective},
		{Normal, Normal, NormalEffective},
	}

	for _, tc := range cases {
		lvl, err := Efficacy(tc.attack, tc.defense)
		require.NoError(t, err)
		assert.Equal(t, tc.want, lvl, "%s vs %s", tc.attack, tc.defense)
	}
}

func TestEfficacy_AllPairsDefined(t *testing.T) {
	for _, attack := range AllTypes {
		for _, defense := range AllTypes {
			lvl, err := Efficacy(attack, defense)
			require.NoError(t, err, "%s vs %s", attack, defense)
			assert.Contains(t,
				[]EfficacyLevel{Immune, NotVeryEffective, NormalEffective, SuperEffective},
				lvl, "%s vs %s", attack, defense)
		}
	}
}

func TestEfficacy_InvalidType(t *testing.T) {
	_, err := Efficacy(Type("shadow"), Water)
	require.ErrorIs(t, err, ErrInvalidType)

	_, err = Efficacy(Water, Type("mystery"))
	require.ErrorIs(t, err, ErrInvalidType)
}

func TestDefendingEfficacy_DualTypeStacking(t *testing.T) {
	cases := []struct {
		attack  Type
		defense []Type
		want    EfficacyLevel
	}{
		// Zero from one sub-type nullifies the whole matchup.
		{Normal, []Type{Ghost, Normal}, Immune},
		// 2x against both sub-types compounds to 4x.
		{Rock, []Type{Fire, Flying}, DoubleSuperEffective},
		// 0.5x against both sub-types compounds to 0.25x.
		{Grass, []Type{Fire, Dragon}, DoubleNotVeryEffective},
		// 2x against one and 0.5x against the other cancels out.
		{Electric, []Type{Water, Dragon}, NormalEffective},
		{Electric, []Type{Fire, Flying}, NormalEffective},
		{Electric, []Type{Water}, SuperEffective},
	}

	for _, tc := range cases {
		lvl, err := DefendingEfficacy(tc.attack, tc.defense)
		require.NoError(t, err)
		assert.Equal(t, tc.want, lvl, "%s vs %v", tc.attack, tc.defense)
	}
}

func TestDefendingEfficacy_OutcomeSpace(t *testing.T) {
	valid := map[EfficacyLevel]bool{
		Immune:                 true,
		DoubleNotVeryEffective: true,
		NotVeryEffective:       true,
		NormalEffective:        true,
		SuperEffective:         true,
		DoubleSuperEffective:   true,
	}

	for _, attack := range AllTypes {
		for _, d1 := range AllTypes {
			for _, d2 := range AllTypes {
				if d1 == d2 {
					continue
				}
				lvl, err := DefendingEfficacy(attack, []Type{d1, d2})
				require.NoError(t, err)
				assert.True(t, valid[lvl], "%s vs %s/%s gave %d", attack, d1, d2, lvl)
			}
		}
	}
}

func TestDefendingEfficacy_NoTypes(t *testing.T) {
	_, err := DefendingEfficacy(Fire, nil)
	require.ErrorIs(t, err, ErrInvalidType)
}

func TestMultiplier(t *testing.T) {
	assert.Equal(t, 0.25, DoubleNotVeryEffective.Multiplier())
	assert.Equal(t, 4.0, DoubleSuperEffective.Multiplier())
	assert.Equal(t, 0.0, Immune.Multiplier())
}
