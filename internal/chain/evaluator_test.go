package chain

import (
	"math"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rybkr/keypad/internal/keypad"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// directionalSegments is every segment a directional pad can produce when
// routing between two of its own keys.
var directionalSegments = []string{
	"A", "<A", ">A", "^A", "vA",
	"v<<A", ">>^A", "<vA", "^>A", "v>A", "<^A",
	">>A", "<<A", "vA", "^A",
}

func TestExpandedLength_DepthZeroIsLiteral(t *testing.T) {
	e := New(nil)
	for _, seg := range []string{"", "A", "v<<A", "<^^^A"} {
		n, err := e.ExpandedLength(seg, 0)
		require.NoError(t, err)
		assert.Equal(t, len(seg), n)
	}
	assert.Equal(t, 0, e.Cache().Len())
}

func TestExpandedLength_Example029A(t *testing.T) {
	e := New(nil)
	moves := "<A^A^^>AvvvA"

	tests := []struct {
		depth int
		want  int
	}{
		{0, 12},
		{1, 28},
		{2, 68},
	}
	for _, tt := range tests {
		n, err := e.Length(moves, tt.depth)
		require.NoError(t, err)
		assert.Equal(t, tt.want, n, "depth %d", tt.depth)
	}
}

func TestExpandedLength_NegativeDepth(t *testing.T) {
	_, err := New(nil).ExpandedLength("A", -1)
	require.ErrorIs(t, err, ErrInvalidDepth)
}

func TestExpandedLength_InvalidKey(t *testing.T) {
	_, err := New(nil).ExpandedLength("5A", 1)
	require.ErrorIs(t, err, keypad.ErrInvalidKey)
}

func TestExpandedLength_CacheTransparency(t *testing.T) {
	warm := NewCache()
	for i, seg := range []string{"<<<<A", "^^^^A", "zzA"} {
		warm.Put(seg, i+3, 12345)
	}
	warmEval := New(&Options{MaxExpandDepth: DefaultMaxExpandDepth, Cache: warm})

	for _, seg := range directionalSegments {
		for depth := range 12 {
			fresh, err := New(nil).ExpandedLength(seg, depth)
			require.NoError(t, err)
			got, err := warmEval.ExpandedLength(seg, depth)
			require.NoError(t, err)
			assert.Equal(t, fresh, got, "segment %q depth %d", seg, depth)
		}
	}
}

func TestExpandedLength_DepthMonotonic(t *testing.T) {
	e := New(nil)
	for _, seg := range directionalSegments {
		prev := 0
		for depth := range 26 {
			n, err := e.ExpandedLength(seg, depth)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, n, prev, "segment %q depth %d", seg, depth)
			prev = n
		}
	}
}

func TestExpandedLength_MatchesLiteralExpansion(t *testing.T) {
	e := New(nil)
	for _, moves := range []string{"<A^A^^>AvvvA", "^^^A<AvvvA>A", "^<<A^^A>>AvvvA"} {
		for depth := range DefaultMaxExpandDepth + 1 {
			literal, err := e.Expand(moves, depth)
			require.NoError(t, err)
			n, err := e.Length(moves, depth)
			require.NoError(t, err)
			assert.Equal(t, len(literal), n, "%q depth %d", moves, depth)
		}
	}
}

func TestExpand_OneLevel(t *testing.T) {
	got, err := New(nil).Expand("<A^A^^>AvvvA", 1)
	require.NoError(t, err)
	assert.Equal(t, "v<<A>>^A<A>A<AAv>A^A<vAAA^>A", got)
}

func TestExpand_DepthLimit(t *testing.T) {
	e := New(&Options{MaxExpandDepth: 2})
	_, err := e.Expand("A", 3)
	require.ErrorIs(t, err, ErrDepthTooLarge)
	_, err = e.Expand("A", -1)
	require.ErrorIs(t, err, ErrInvalidDepth)
}

func TestLevels(t *testing.T) {
	levels, err := New(nil).Levels("<A", 2)
	require.NoError(t, err)
	want := []string{"<A", "v<<A>>^A", "<vA<AA>>^AvAA<^A>A"}
	if diff := cmp.Diff(want, levels); diff != "" {
		t.Errorf("levels mismatch (-want +got):\n%s", diff)
	}

	for _, depth := range []int{-1, -2, -3} {
		_, err := New(nil).Levels("<A", depth)
		require.ErrorIs(t, err, ErrInvalidDepth, "depth %d", depth)
	}
}

func TestProfile(t *testing.T) {
	e := New(nil)
	profile, err := e.Profile("<A^A^^>AvvvA", 2)
	require.NoError(t, err)
	if diff := cmp.Diff([]int{12, 28, 68}, profile); diff != "" {
		t.Errorf("profile mismatch (-want +got):\n%s", diff)
	}
	assert.InDelta(t, 68.0/28.0, GrowthFactor(profile), 1e-9)

	_, err = e.Profile("A", -2)
	require.ErrorIs(t, err, ErrInvalidDepth)
	assert.Zero(t, GrowthFactor([]int{5}))
}

func TestCache_SharedAcrossGoroutines(t *testing.T) {
	cache := NewCache()
	want, err := New(nil).Length("<A^A^^>AvvvA", 25)
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]int, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			e := New(&Options{MaxExpandDepth: DefaultMaxExpandDepth, Cache: cache})
			n, err := e.Length("<A^A^^>AvvvA", 25)
			if err != nil {
				return
			}
			results[i] = n
		}(i)
	}
	wg.Wait()

	for i, n := range results {
		assert.Equal(t, want, n, "goroutine %d", i)
	}
	assert.Positive(t, cache.Len())
}

func TestAddMul(t *testing.T) {
	n, err := Add(40, 2)
	require.NoError(t, err)
	assert.Equal(t, 42, n)

	n, err = Add(math.MaxInt-1, 1)
	require.NoError(t, err)
	assert.Equal(t, math.MaxInt, n)

	_, err = Add(math.MaxInt, 1)
	require.ErrorIs(t, err, ErrOverflow)

	n, err = Mul(0, math.MaxInt)
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = Mul(6, 7)
	require.NoError(t, err)
	assert.Equal(t, 42, n)

	_, err = Mul(math.MaxInt/2+1, 2)
	require.ErrorIs(t, err, ErrOverflow)
}

func TestLength_DeepChainOverflows(t *testing.T) {
	e := New(nil)
	moves := "<A^A^^>AvvvA"

	prev := 0
	for depth := range 46 {
		n, err := e.Length(moves, depth)
		require.NoError(t, err, "depth %d", depth)
		assert.GreaterOrEqual(t, n, prev, "depth %d", depth)
		prev = n
	}

	for _, depth := range []int{46, 50, 60} {
		_, err := e.Length(moves, depth)
		require.ErrorIs(t, err, ErrOverflow, "depth %d", depth)
	}

	_, err := e.Profile(moves, 50)
	require.ErrorIs(t, err, ErrOverflow)
}
