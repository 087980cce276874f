package interval_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/parserkit/treestream/internal/interval"
)

func TestInnermost(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	var set interval.Nesting[int, string]
	set.Insert(0, 100, "root")
	set.Insert(10, 20, "mid")
	set.Insert(12, 18, "inner")
	set.Insert(30, 40, "sibling")
	assert.Equal(4, set.Len())

	tests := []struct {
		key   int
		value string
		found bool
	}{
		{5, "root", true},
		{10, "mid", true},
		{11, "mid", true},
		{15, "inner", true},
		{18, "mid", true}, // Half-open: 18 is outside [12, 18).
		{20, "root", true},
		{35, "sibling", true},
		{40, "root", true},
		{99, "root", true},
		{100, "", false},
		{-1, "", false},
	}
	for _, test := range tests {
		iv, found := set.Innermost(test.key)
		assert.Equal(test.found, found, "key %d", test.key)
		if found {
			assert.Equal(test.value, iv.Value, "key %d", test.key)
		}
	}
}

func TestInsertPanics(t *testing.T) {
	t.Parallel()

	var set interval.Nesting[int, int]
	set.Insert(1, 5, 0)
	assert.Panics(t, func() { set.Insert(3, 3, 0) })
	assert.Panics(t, func() { set.Insert(4, 2, 0) })
	assert.Panics(t, func() { set.Insert(1, 9, 0) })
}
