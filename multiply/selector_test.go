package multiply_test

import (
	"testing"

	"github.com/katalvlaran/trimul/multiply"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSelect_EqualWeights verifies that pricing multiplications and
// additions equally picks Standard (45 total operations beats 58 and 83).
func TestSelect_EqualWeights(t *testing.T) {
	v, err := multiply.Select(multiply.DefaultCostModel())
	require.NoError(t, err)
	assert.Equal(t, multiply.Standard, v)
}

// TestSelect_MultiplicationHeavy verifies that an extreme multiplication
// price flips the argmin to Laderman.
func TestSelect_MultiplicationHeavy(t *testing.T) {
	// 27·20+18 = 558, 26·20+32 = 552, 23·20+60 = 520 → Laderman.
	cm := multiply.CostModel{MultiplicationWeight: 20, AdditionWeight: 1}

	v, err := multiply.Select(cm)
	require.NoError(t, err)
	assert.Equal(t, multiply.Laderman, v)
}

// TestSelect_FreeAdditions verifies that a zero addition weight reduces
// the ranking to pure multiplication count: Laderman's 23 wins.
func TestSelect_FreeAdditions(t *testing.T) {
	cm := multiply.CostModel{MultiplicationWeight: 1, AdditionWeight: 0}

	v, err := multiply.Select(cm)
	require.NoError(t, err)
	assert.Equal(t, multiply.Laderman, v)
}

// TestSelect_TieBreaking pins the exact tie between Standard and Laderman
// at mw/aw = 21/2 (27·21+18·2 = 603 = 23·21+60·2) and verifies both
// tie-breaking policies.
func TestSelect_TieBreaking(t *testing.T) {
	tie := multiply.CostModel{MultiplicationWeight: 21, AdditionWeight: 2}
	require.Equal(t, tie.Cost(multiply.Standard), tie.Cost(multiply.Laderman), "costs must tie")

	v, err := multiply.Select(tie)
	require.NoError(t, err)
	assert.Equal(t, multiply.Standard, v, "default policy breaks ties toward Standard")

	tie.PreferFewerMultiplications = true
	v, err = multiply.Select(tie)
	require.NoError(t, err)
	assert.Equal(t, multiply.Laderman, v, "flag breaks ties toward fewer multiplications")
}

// TestSelect_Deterministic verifies Select is a pure function of its
// CostModel: repeated calls agree.
func TestSelect_Deterministic(t *testing.T) {
	cm := multiply.CostModel{MultiplicationWeight: 3, AdditionWeight: 0.25}

	first, err := multiply.Select(cm)
	require.NoError(t, err)
	for i := 0; i < 100; i++ {
		v, errRepeat := multiply.Select(cm)
		require.NoError(t, errRepeat)
		assert.Equal(t, first, v)
	}
}

// TestSelect_BadCostModel verifies ErrBadCostModel when both weights are
// non-positive, and that a single non-positive weight is still accepted.
func TestSelect_BadCostModel(t *testing.T) {
	_, err := multiply.Select(multiply.CostModel{})
	assert.ErrorIs(t, err, multiply.ErrBadCostModel)

	_, err = multiply.Select(multiply.CostModel{MultiplicationWeight: -1, AdditionWeight: 0})
	assert.ErrorIs(t, err, multiply.ErrBadCostModel)

	_, err = multiply.Select(multiply.CostModel{MultiplicationWeight: 1, AdditionWeight: -2})
	assert.NoError(t, err, "one meaningful weight is enough")
}

// TestCostModel_CostTable spot-checks the weighted cost table.
func TestCostModel_CostTable(t *testing.T) {
	cm := multiply.DefaultCostModel()

	assert.Equal(t, 45.0, cm.Cost(multiply.Standard))
	assert.Equal(t, 58.0, cm.Cost(multiply.StrassenBlock))
	assert.Equal(t, 83.0, cm.Cost(multiply.Laderman))
}
