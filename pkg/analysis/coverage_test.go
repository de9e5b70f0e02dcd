package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func matchupFor(t *testing.T, matchups []TypeMatchup, attack Type) TypeMatchup {
	t.Helper()
	for _, m := range matchups {
		if m.AttackType == attack {
			return m
		}
	}
	t.Fatalf("no matchup for attacking type %q", attack)
	return TypeMatchup{}
}

func TestCoverage_EmptyRoster(t *testing.T) {
	_, err := Coverage(nil)
	require.ErrorIs(t, err, ErrEmptyRoster)
}

func TestCoverage_WeakCitesExposedMember(t *testing.T) {
	roster := []RosterMember{
		{Name: "vaporeon", Types: []Type{Water}},
		{Name: "talonflame", Types: []Type{Fire, Flying}},
	}

	matchups, err := Coverage(roster)
	require.NoError(t, err)
	require.Len(t, matchups, len(AllTypes))

	// The Water member takes 2x Electric while Fire/Flying cancels to 1x.
	electric := matchupFor(t, matchups, Electric)
	assert.Equal(t, ClassWeak, electric.Class)
	assert.Equal(t, []string{"vaporeon"}, electric.Contributors)

	// Rock hits Fire/Flying for 4x, which dominates the report.
	rock := matchupFor(t, matchups, Rock)
	assert.Equal(t, ClassQuadWeak, rock.Class)
	assert.Equal(t, []string{"talonflame"}, rock.Contributors)
}

func TestCoverage_ImmuneViaNullifyingSubType(t *testing.T) {
	roster := []RosterMember{
		{Name: "dusclops", Types: []Type{Ghost, Normal}},
	}

	matchups, err := Coverage(roster)
	require.NoError(t, err)

	// Ghost nullifies Normal entirely: 0 x 1 = 0.
	normal := matchupFor(t, matchups, Normal)
	assert.Equal(t, ClassImmune, normal.Class)
	assert.Equal(t, []string{"dusclops"}, normal.Contributors)
}

func TestCoverage_PartialImmune(t *testing.T) {
	// One member immune to Ground, the other neutral; nobody weak.
	roster := []RosterMember{
		{Name: "pidgeot", Types: []Type{Normal, Flying}},
		{Name: "kecleon", Types: []Type{Normal}},
	}

	matchups, err := Coverage(roster)
	require.NoError(t, err)

	ground := matchupFor(t, matchups, Ground)
	assert.Equal(t, ClassPartialImmune, ground.Class)
	assert.Equal(t, []string{"pidgeot"}, ground.Contributors)
}

func TestCoverage_ResistanceBuckets(t *testing.T) {
	roster := []RosterMember{
		{Name: "heatran-like", Types: []Type{Fire, Steel}},
	}

	matchups, err := Coverage(roster)
	require.NoError(t, err)

	// Grass is halved by both sub-types: 0.25x.
	grass := matchupFor(t, matchups, Grass)
	assert.Equal(t, ClassQuadResistant, grass.Class)

	// Ice is halved by Fire and by Steel as well: also 0.25x.
	ice := matchupFor(t, matchups, Ice)
	assert.Equal(t, ClassQuadResistant, ice.Class)

	// Dragon is halved by Steel only: 0.5x.
	dragon := matchupFor(t, matchups, Dragon)
	assert.Equal(t, ClassResistant, dragon.Class)

	// Dark is neutral against both sub-types.
	dark := matchupFor(t, matchups, Dark)
	assert.Equal(t, ClassNeutral, dark.Class)
	assert.Equal(t, []string{"heatran-like"}, dark.Contributors)
}

func TestCoverage_Idempotent(t *testing.T) {
	roster := []RosterMember{
		{Name: "garchomp", Types: []Type{Dragon, Ground}},
		{Name: "lucario", Types: []Type{Fighting, Steel}},
	}

	first, err := Coverage(roster)
	require.NoError(t, err)
	second, err := Coverage(roster)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestCoverage_OrderIndependentClasses(t *testing.T) {
	a := []RosterMember{
		{Name: "vaporeon", Types: []Type{Water}},
		{Name: "jolteon", Types: []Type{Electric}},
		{Name: "flareon", Types: []Type{Fire}},
	}
	b := []RosterMember{a[2], a[0], a[1]}

	ma, err := Coverage(a)
	require.NoError(t, err)
	mb, err := Coverage(b)
	require.NoError(t, err)

	for i := range ma {
		assert.Equal(t, ma[i].AttackType, mb[i].AttackType)
		assert.Equal(t, ma[i].Class, mb[i].Class, "class for %s", ma[i].AttackType)
		assert.ElementsMatch(t, ma[i].Contributors, mb[i].Contributors,
			"contributors for %s", ma[i].AttackType)
	}
}

func TestCoverage_DuplicatesCitedIndividually(t *testing.T) {
	roster := []RosterMember{
		{Name: "magikarp", Types: []Type{Water}},
		{Name: "magikarp", Types: []Type{Water}},
	}

	matchups, err := Coverage(roster)
	require.NoError(t, err)

	electric := matchupFor(t, matchups, Electric)
	assert.Equal(t, ClassWeak, electric.Class)
	assert.Equal(t, []string{"magikarp", "magikarp"}, electric.Contributors)
}
