package permute_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/thinker/permute"
)

// TestAll_NotRestartable verifies that a second range continues where the
// first one stopped instead of starting over.
func TestAll_NotRestartable(t *testing.T) {
	p, err := permute.New([]int{1, 2, 3}, nil)
	require.NoError(t, err)

	var first [][]int
	for arr := range p.All() {
		first = append(first, arr)
		if len(first) == 2 {
			break
		}
	}
	assert.Equal(t, [][]int{{1, 2, 3}, {1, 3, 2}}, first)

	var rest [][]int
	for arr := range p.All() {
		rest = append(rest, arr)
	}
	assert.Equal(t, [][]int{{2, 1, 3}, {2, 3, 1}, {3, 1, 2}, {3, 2, 1}}, rest)

	for range p.All() {
		t.Fatal("exhausted engine must yield nothing")
	}
}

// TestAll_YieldsFreshSlices ensures elements stay valid after iteration.
func TestAll_YieldsFreshSlices(t *testing.T) {
	p, err := permute.New([]rune("aab"), nil)
	require.NoError(t, err)

	var got [][]rune
	for arr := range p.All() {
		got = append(got, arr)
	}
	assert.Equal(t, [][]rune{[]rune("aab"), []rune("aba"), []rune("baa")}, got)
}

// TestNext_MixedWithAdvance checks that Next hands out the arrangement an
// explicit Advance moved to, and never repeats one.
func TestNext_MixedWithAdvance(t *testing.T) {
	p, err := permute.New([]int{1, 2, 3}, nil)
	require.NoError(t, err)

	arr, ok := p.Next()
	require.True(t, ok)
	assert.Equal(t, []int{1, 2, 3}, arr)

	require.True(t, p.Advance()) // skip to 1 3 2 without emitting it
	arr, ok = p.Next()
	require.True(t, ok)
	assert.Equal(t, []int{1, 3, 2}, arr)

	arr, ok = p.Next()
	require.True(t, ok)
	assert.Equal(t, []int{2, 1, 3}, arr)

	for p.Advance() {
	}
	arr, ok = p.Next()
	assert.False(t, ok)
	assert.Nil(t, arr)
}

func TestCollect(t *testing.T) {
	assert.Equal(t, [][]string{{"x", "x"}}, permute.Collect([]string{"x", "x"}))
	assert.Equal(t, [][]int{{}}, permute.Collect([]int{}))
	assert.Len(t, permute.Collect([]byte("banana")), 60)
}
