package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindIndex(t *testing.T) {
	require.Equal(t, 1, FindIndex([]string{"a", "b", "b"}, "b"))
	require.Equal(t, -1, FindIndex([]string{"a"}, "c"))
	require.Equal(t, -1, FindIndex(nil, 3))
}

func TestFilter(t *testing.T) {
	even := func(i int) bool { return i%2 == 0 }
	require.Equal(t, []int{2, 4}, Filter([]int{1, 2, 3, 4}, even))
	require.Equal(t, []int{}, Filter(nil, even), "Filtering nothing should give an empty slice")

	input := []int{2, 3}
	kept := Filter(input, even)
	kept[0] = 9
	require.Equal(t, []int{2, 3}, input, "Input should not be modified")
}
