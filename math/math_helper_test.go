package math_test

import (
	stdmath "math"
	"testing"

	"github.com/prysmaticlabs/blockrewards/math"
	"github.com/prysmaticlabs/blockrewards/testing/assert"
	"github.com/prysmaticlabs/blockrewards/testing/require"
)

func TestIntegerSquareRoot(t *testing.T) {
	tt := []struct {
		number uint64
		root   uint64
	}{
		{number: 20, root: 4},
		{number: 200, root: 14},
		{number: 1987, root: 44},
		{number: 34989843, root: 5915},
		{number: 97282, root: 311},
		{number: 1 << 32, root: 1 << 16},
		{number: (1 << 32) + 1, root: 1 << 16},
		{number: 1 << 33, root: 92681},
		{number: 1 << 60, root: 1 << 30},
		{number: 1 << 53, root: 94906265},
		{number: 1 << 62, root: 1 << 31},
		{number: stdmath.MaxUint64, root: 4294967295},
	}
	for _, testVals := range tt {
		root := math.IntegerSquareRoot(testVals.number)
		assert.Equal(t, testVals.root, root, "IntegerSquareRoot(%d)", testVals.number)
	}
}

func TestMath_Mul64(t *testing.T) {
	type args struct {
		a uint64
		b uint64
	}
	tests := []struct {
		args args
		res  uint64
		err  bool
	}{
		{args: args{0, 1}, res: 0, err: false},
		{args: args{1 << 32, 1}, res: 1 << 32, err: false},
		{args: args{1 << 32, 100}, res: 429496729600, err: false},
		{args: args{1 << 32, 1 << 31}, res: 9223372036854775808, err: false},
		{args: args{1 << 32, 1 << 32}, res: 0, err: true},
		{args: args{1 << 62, 2}, res: 9223372036854775808, err: false},
		{args: args{1 << 62, 4}, res: 0, err: true},
	}
	for _, tt := range tests {
		got, err := math.Mul64(tt.args.a, tt.args.b)
		if tt.err && err == nil {
			t.Errorf("Mul64() Expected Error = %v, want error", tt.err)
			continue
		}
		assert.Equal(t, tt.res, got, "Mul64(%d, %d)", tt.args.a, tt.args.b)
	}
}

func TestMath_Add64(t *testing.T) {
	got, err := math.Add64(1<<62, 1<<62)
	require.NoError(t, err)
	assert.Equal(t, uint64(1<<63), got)

	_, err = math.Add64(1<<63, 1<<63)
	require.ErrorIs(t, err, math.ErrAddOverflow)
}

func TestMath_Sub64(t *testing.T) {
	got, err := math.Sub64(10, 3)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), got)

	_, err = math.Sub64(3, 10)
	require.ErrorIs(t, err, math.ErrSubUnderflow)
}

func TestMath_Div64(t *testing.T) {
	got, err := math.Div64(31999999999, 512)
	require.NoError(t, err)
	assert.Equal(t, uint64(62499999), got)

	_, err = math.Div64(1, 0)
	require.ErrorIs(t, err, math.ErrDivByZero)
}
