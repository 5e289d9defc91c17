package distance_test

import (
	"testing"

	"github.com/katalvlaran/magnitude/distance"
	"github.com/katalvlaran/magnitude/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatrix_SymmetricZeroDiagonal(t *testing.T) {
	calls := 0
	p := distance.Func(func(a, b string) float64 {
		calls++
		return float64(len(a) + len(b))
	})
	items := []string{"a", "bb", "ccc", "dddd"}

	d, err := distance.Matrix(items, p)
	require.NoError(t, err)
	require.NoError(t, matrix.ValidateSymmetric(d))
	assert.Equal(t, 6, calls, "one call per unordered pair")

	rows := d.ToRows()
	for i := range items {
		assert.Equal(t, 0.0, rows[i][i])
	}
	assert.Equal(t, 7.0, rows[2][3])
}

func TestMatrix_Errors(t *testing.T) {
	_, err := distance.Matrix(nil, distance.NewCosine())
	require.ErrorIs(t, err, distance.ErrNoItems)

	_, err = distance.Matrix([]string{"a"}, nil)
	require.ErrorIs(t, err, distance.ErrNilProvider)

	neg := distance.Func(func(_, _ string) float64 { return -1 })
	_, err = distance.Matrix([]string{"a", "b"}, neg)
	require.ErrorIs(t, err, distance.ErrInvalidDistance)

	_, err = distance.Row("c", []string{"a", "b"}, neg)
	require.ErrorIs(t, err, distance.ErrInvalidDistance)
}

func TestRow_MatchesMatrix(t *testing.T) {
	e, err := distance.NewEdit()
	require.NoError(t, err)
	items := []string{"alpha", "alphabet", "beta"}

	full, err := distance.Matrix(append(items, "gamma"), e)
	require.NoError(t, err)
	row, err := distance.Row("gamma", items, e)
	require.NoError(t, err)

	rows := full.ToRows()
	for i := range items {
		assert.Equal(t, rows[i][3], row[i])
	}
}
