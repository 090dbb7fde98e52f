package numeric

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFloat64(t *testing.T) {
	l := Float64{}

	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"mod positive", l.Mod(7, 3), 1},
		{"mod negative dividend", l.Mod(-1, 2*math.Pi), 2*math.Pi - 1},
		{"mod negative divisor", l.Mod(1, -3), -2},
		{"copysign", l.Copysign(2, -0.5), -2},
		{"nan to num", l.NanToNum(math.NaN()), 0},
		{"where true", l.Where(l.Less(1, 2), 10, 20), 10},
		{"where false", l.Where(l.Less(2, 1), 10, 20), 20},
		{"and", l.And(1, 0), 0},
		{"or", l.Or(1, 0), 1},
		{"not", l.Not(0), 1},
		{"hypot", Hypot[float64](l, 3, 4), 5},
		{"sum", Sum[float64](l, 1, 2, 3), 6},
		{"isclose", l.IsClose(1, 1+1e-9, 1e-5, 1e-8), 1},
		{"not isclose", l.IsClose(1, 1.1, 1e-5, 1e-8), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.got, 1e-12)
		})
	}

	assert.True(t, math.IsNaN(l.Maximum(math.NaN(), 1)))
	assert.Equal(t, 2.0, l.Maximum(1, 2))
}

func TestBroadcast(t *testing.T) {
	out, err := Broadcast(Array{1, 2, 3}, Array{5}, Array{7, 8, 9})
	require.NoError(t, err)
	assert.Equal(t, []Array{{1, 2, 3}, {5, 5, 5}, {7, 8, 9}}, out)

	n, err := BroadcastLen(Array{1}, Array{2})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = Broadcast(Array{1, 2}, Array{1, 2, 3})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrShapeMismatch))
	var se *ShapeError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, []int{2, 3}, se.Lengths)
}

func TestArrays(t *testing.T) {
	l := Arrays{}

	assert.Equal(t, Array{4, 5, 6}, l.Add(Array{1, 2, 3}, l.Const(3)))
	assert.Equal(t, Array{5}, Hypot[Array](l, Array{3}, Array{4}))
	assert.Equal(t, Array{1, 0}, l.Less(Array{1, 5}, Array{2, 2}))
	assert.Equal(t, Array{10, 2}, l.Where(Array{1, 0}, l.Const(10), Array{1, 2}))
	assert.Equal(t, []bool{true, false}, Array{3, 0}.Bools())
	assert.Equal(t, Array{0, 1}, l.NanToNum(Array{math.NaN(), 1}))
}

func TestArrays_MismatchPanics(t *testing.T) {
	l := Arrays{}
	assert.PanicsWithError(t, "operands could not be broadcast together with lengths [2 3]", func() {
		l.Add(Array{1, 2}, Array{1, 2, 3})
	})
}
