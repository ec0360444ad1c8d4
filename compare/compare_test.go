package compare

import (
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

type caseless string

func (c caseless) Equals(other caseless) bool {
	return strings.EqualFold(string(c), string(other))
}

func TestEquals(t *testing.T) {
	t.Parallel()

	assert.True(t, Equals[caseless](caseless("Hello"), "hELLO"))
	assert.False(t, Equals[caseless](caseless("Hello"), "World"))
}

// sortWith sorts a copy of items under the policy's order.
func sortWith[T any](p Policy[T], items ...T) []T {
	out := slices.Clone(items)
	slices.SortStableFunc(out, p.Compare)

	return out
}

func TestAscendingDescending(t *testing.T) {
	t.Parallel()

	asc := Ascending[int]()
	desc := Descending[int]()

	assert.Equal(t, []int{-1, 0, 3, 7}, sortWith(asc, 3, -1, 7, 0))
	assert.Equal(t, []int{7, 3, 0, -1}, sortWith(desc, 3, -1, 7, 0))

	assert.True(t, asc.Equal(4, 4))
	assert.True(t, desc.Equal(4, 4))
	assert.False(t, asc.Less(4, 4))
	assert.False(t, desc.Less(4, 4))
	assert.True(t, asc.Valid())
}

func TestPolicy_Compare(t *testing.T) {
	t.Parallel()

	p := Ascending[string]()

	assert.Equal(t, -1, p.Compare("a", "b"))
	assert.Equal(t, 0, p.Compare("b", "b"))
	assert.Equal(t, 1, p.Compare("c", "b"))
	assert.Equal(t, -1, p.Reverse().Compare("c", "b"))
}

func TestFromLess(t *testing.T) {
	t.Parallel()

	// Order by absolute value; -3 and 3 are equivalent.
	p := FromLess(func(a, b int) bool {
		return abs(a) < abs(b)
	})

	assert.True(t, p.Equal(-3, 3))
	assert.False(t, p.Equal(-3, 4))
	assert.True(t, p.Consistent(-3, 3))
	assert.True(t, p.Consistent(2, 9))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}

func TestPolicy_Consistent(t *testing.T) {
	t.Parallel()

	t.Run("stock policies are consistent", func(t *testing.T) {
		t.Parallel()

		pairs := [][2]int{{1, 2}, {2, 1}, {5, 5}, {-4, 4}}
		for _, pair := range pairs {
			assert.True(t, Ascending[int]().Consistent(pair[0], pair[1]))
			assert.True(t, Descending[int]().Consistent(pair[0], pair[1]))
		}
	})

	t.Run("reflexive less is caught", func(t *testing.T) {
		t.Parallel()

		p := Policy[int]{
			Less:  func(a, b int) bool { return a <= b },
			Equal: func(a, b int) bool { return a == b },
		}

		assert.False(t, p.Consistent(1, 2))
	})

	t.Run("equality that disagrees with order is caught", func(t *testing.T) {
		t.Parallel()

		p := Policy[int]{
			Less:  func(a, b int) bool { return a < b },
			Equal: func(a, b int) bool { return a/10 == b/10 },
		}

		assert.False(t, p.Consistent(11, 12))
		assert.True(t, p.Consistent(11, 11))
	})

	t.Run("missing predicates are invalid", func(t *testing.T) {
		t.Parallel()

		assert.False(t, Policy[int]{Less: func(a, b int) bool { return a < b }}.Valid())
	})
}

func TestNatural(t *testing.T) {
	t.Parallel()

	p := Natural()

	got := sortWith(p, "file10", "file2", "file1", "file20", "file3")
	assert.Equal(t, []string{"file1", "file2", "file3", "file10", "file20"}, got)

	t.Run("strict on identical strings", func(t *testing.T) {
		t.Parallel()

		assert.False(t, p.Less("file2", "file2"))
		assert.True(t, p.Equal("file2", "file2"))
	})

	t.Run("numerically equal chunks fall back to byte order", func(t *testing.T) {
		t.Parallel()

		assert.NotEqual(t, p.Less("file02", "file2"), p.Less("file2", "file02"))
		assert.True(t, p.Consistent("file02", "file2"))
	})

	t.Run("empty string is ordered", func(t *testing.T) {
		t.Parallel()

		assert.True(t, p.Less("", "x"))
		assert.False(t, p.Less("x", ""))
	})
}

func TestCollated(t *testing.T) {
	t.Parallel()

	t.Run("locale order", func(t *testing.T) {
		t.Parallel()

		p := Collated(language.German)

		got := sortWith(p, "zebra", "äpfel", "apfel", "birne")
		assert.Equal(t, "zebra", got[len(got)-1])
		assert.Less(t, slices.Index(got, "äpfel"), slices.Index(got, "birne"))
	})

	t.Run("ignore case makes case variants equal", func(t *testing.T) {
		t.Parallel()

		p := Collated(language.English, collate.IgnoreCase)

		assert.True(t, p.Equal("Hello", "hello"))
		assert.False(t, p.Less("Hello", "hello"))
		assert.False(t, p.Less("hello", "Hello"))
		assert.True(t, p.Consistent("Hello", "hello"))
	})
}

func TestCounting(t *testing.T) {
	t.Parallel()

	p, counts := Counting(Ascending[int]())

	require.True(t, p.Less(1, 2))
	require.False(t, p.Less(2, 1))
	require.True(t, p.Equal(3, 3))

	assert.Equal(t, int64(2), counts.Less.Load())
	assert.Equal(t, int64(1), counts.Equal.Load())
	assert.Equal(t, int64(3), counts.Total())

	counts.Reset()
	assert.Equal(t, int64(0), counts.Total())
}
