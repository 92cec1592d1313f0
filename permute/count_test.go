package permute_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/thinker/permute"
)

func TestCount(t *testing.T) {
	tests := []struct {
		name   string
		values []int
		want   int
	}{
		{name: "empty", values: nil, want: 1},
		{name: "single", values: []int{4}, want: 1},
		{name: "distinct", values: []int{1, 2, 3}, want: 6},
		{name: "pair", values: []int{2, 2}, want: 1},
		{name: "mixed", values: []int{1, 1, 2}, want: 3},
		{name: "mississippi", values: []int{'m', 'i', 's', 's', 'i', 's', 's', 'i', 'p', 'p', 'i'}, want: 34650},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := permute.Count(tt.values)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestCount_Overflow checks the 20!/21! boundary on 64-bit ints.
func TestCount_Overflow(t *testing.T) {
	if ^uint(0)>>63 == 0 {
		t.Skip("boundary below assumes 64-bit int")
	}
	twenty := make([]int, 20)
	for i := range twenty {
		twenty[i] = i
	}
	got, err := permute.Count(twenty)
	require.NoError(t, err)
	assert.Equal(t, 2432902008176640000, got)

	_, err = permute.Count(append(twenty, 20))
	assert.ErrorIs(t, err, permute.ErrOverflow)

	// Heavy repetition keeps large inputs countable: C(100, 2) = 4950.
	many := make([]int, 100)
	many[0], many[1] = 1, 1
	got, err = permute.Count(many)
	require.NoError(t, err)
	assert.Equal(t, 4950, got)
}

func TestCountFunc(t *testing.T) {
	values := [][]string{{"a"}, {"b"}, {"a"}, {"a"}}
	got, err := permute.CountFunc(values, slices.Equal[[]string])
	require.NoError(t, err)
	assert.Equal(t, 4, got)

	_, err = permute.CountFunc(values, nil)
	assert.ErrorIs(t, err, permute.ErrNilEqual)
}

// TestCount_CentralBinomial checks two-value inputs whose count sits right at
// the int64 limit: C(66, 33) fits, C(68, 34) does not.
func TestCount_CentralBinomial(t *testing.T) {
	if ^uint(0)>>63 == 0 {
		t.Skip("boundary below assumes 64-bit int")
	}
	halves := func(n int) []int {
		v := make([]int, 2*n)
		for i := n; i < 2*n; i++ {
			v[i] = 1
		}
		return v
	}

	got, err := permute.Count(halves(33))
	require.NoError(t, err)
	assert.Equal(t, 7219428434016265740, got)

	_, err = permute.Count(halves(34))
	assert.ErrorIs(t, err, permute.ErrOverflow)

	// A large repeated run: 62!/(60!·1!·1!) = 62·61.
	v := make([]int, 62)
	v[60], v[61] = 1, 2
	got, err = permute.Count(v)
	require.NoError(t, err)
	assert.Equal(t, 62*61, got)
}
