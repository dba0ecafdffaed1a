// Package slice implements set operations over index lists.
package slice

import (
	"sort"
)

// IntersectionUint64 of two uint64 slices with time
// complexity of approximately O(n) leveraging a map to
// check for element existence off by a constant factor
// of underlying map efficiency. Elements present more than
// once in b are only reported once.
func IntersectionUint64(a, b []uint64) []uint64 {
	set := make([]uint64, 0)
	m := make(map[uint64]bool, len(a))

	for i := 0; i < len(a); i++ {
		m[a[i]] = true
	}
	for i := 0; i < len(b); i++ {
		if found := m[b[i]]; found {
			set = append(set, b[i])
			m[b[i]] = false
		}
	}
	return set
}

// SortedIntersectionUint64 returns the intersection of a and b in ascending order.
func SortedIntersectionUint64(a, b []uint64) []uint64 {
	set := IntersectionUint64(a, b)
	sort.Slice(set, func(i, j int) bool {
		return set[i] < set[j]
	})
	return set
}

// SplitOffset returns the start index of a given list splits into chunks,
// it computes (listsize * index) / chunks.
//
// Pseudocode definition:
//
//	def get_split_offset(list_size: int, chunks: int, index: int) -> int:
//	  """
//	  Returns a value such that for a list L, chunk count k and index i,
//	  split(L, k)[i] == L[get_split_offset(len(L), k, i): get_split_offset(len(L), k, i+1)]
//	  """
//	  return (list_size * index) // chunks
func SplitOffset(listSize, chunks, index uint64) uint64 {
	if chunks == 0 {
		return 0
	}
	return (listSize * index) / chunks
}
