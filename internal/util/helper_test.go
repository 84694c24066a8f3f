package util

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCloneSlice(t *testing.T) {
	require := require.New(t)

	src := []int{1, 2, 3}
	clone := CloneSlice(src, 0)
	require.Equal(src, clone)

	clone[0] = 99
	require.Equal(1, src[0])

	bigger := CloneSlice(src, 5)
	require.Equal([]int{1, 2, 3, 0, 0}, bigger)
}

func TestJoinInts(t *testing.T) {
	tests := []struct {
		description string
		values      []int
		sep         string
		expected    string
	}{
		{
			description: "empty slice",
			values:      []int{},
			sep:         ",",
			expected:    "",
		},
		{
			description: "single value",
			values:      []int{7},
			sep:         ",",
			expected:    "7",
		},
		{
			description: "multiple values",
			values:      []int{1, 2, 10},
			sep:         ",",
			expected:    "1,2,10",
		},
		{
			description: "negative values",
			values:      []int{-1, 0, 1},
			sep:         ";",
			expected:    "-1;0;1",
		},
	}

	require := require.New(t)

	for i, test := range tests {
		t.Logf("Test #%d: %s", i, test.description)
		require.Equal(test.expected, JoinInts(test.values, test.sep))
	}
}
