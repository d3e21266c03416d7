package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopoSort_Order(t *testing.T) {
	order, stuck, err := topoSort(4, func(i int) []int {
		switch i {
		case 0:
			return []int{2}
		case 1:
			return []int{0, 3}
		default:
			return nil
		}
	})
	require.NoError(t, err)
	assert.Nil(t, stuck)
	assert.Equal(t, []int{2, 0, 3, 1}, order)
}

func TestTopoSort_Cycle(t *testing.T) {
	_, stuck, err := topoSort(3, func(i int) []int {
		switch i {
		case 0:
			return []int{1}
		case 1:
			return []int{0}
		default:
			return nil
		}
	})
	require.ErrorIs(t, err, errCycle)
	assert.Equal(t, []int{0, 1}, stuck)
}

func TestTopoSort_OutOfRange(t *testing.T) {
	_, _, err := topoSort(1, func(int) []int { return []int{5} })
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of range")
}

func TestTopoSort_Empty(t *testing.T) {
	order, stuck, err := topoSort(0, nil)
	require.NoError(t, err)
	assert.Nil(t, order)
	assert.Nil(t, stuck)
}
