package slice_test

import (
	"testing"

	"github.com/prysmaticlabs/blockrewards/container/slice"
	"github.com/prysmaticlabs/blockrewards/testing/assert"
)

func TestIntersectionUint64(t *testing.T) {
	testCases := []struct {
		setA []uint64
		setB []uint64
		out  []uint64
	}{
		{[]uint64{2, 3, 5}, []uint64{3}, []uint64{3}},
		{[]uint64{2, 3, 5}, []uint64{3, 5}, []uint64{3, 5}},
		{[]uint64{2, 3, 5}, []uint64{5, 3, 2}, []uint64{5, 3, 2}},
		{[]uint64{2, 3, 5}, []uint64{2, 3, 5}, []uint64{2, 3, 5}},
		{[]uint64{2, 3, 5}, []uint64{}, []uint64{}},
		{[]uint64{}, []uint64{2, 3, 5}, []uint64{}},
		{[]uint64{}, []uint64{}, []uint64{}},
		{[]uint64{1}, []uint64{1, 1}, []uint64{1}},
	}
	for _, tt := range testCases {
		result := slice.IntersectionUint64(tt.setA, tt.setB)
		assert.DeepEqual(t, tt.out, result)
	}
}

func TestSortedIntersectionUint64(t *testing.T) {
	result := slice.SortedIntersectionUint64([]uint64{9, 1, 4, 7}, []uint64{7, 4, 8, 9})
	assert.DeepEqual(t, []uint64{4, 7, 9}, result)
}

func TestSplitOffset_OK(t *testing.T) {
	testCases := []struct {
		listSize uint64
		chunks   uint64
		index    uint64
		offset   uint64
	}{
		{30, 3, 2, 20},
		{1000, 10, 60, 6000},
		{2482, 10, 70, 17374},
		{323, 98, 56, 184},
		{273, 8, 6, 204},
		{3274, 98, 256, 8552},
		{23, 3, 2, 15},
		{23, 0, 2, 0},
	}
	for _, tt := range testCases {
		assert.Equal(t, tt.offset, slice.SplitOffset(tt.listSize, tt.chunks, tt.index))
	}
}
