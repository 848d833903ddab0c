package elastichash

import "math/bits"

// maxSubArrays returns ceil(log2(size)), never less than 1.
func maxSubArrays(size int) int {
	n := bits.Len(uint(size - 1))
	if n < 1 {
		return 1
	}
	return n
}

// buildPartition splits size buckets into sub-arrays of roughly halving
// size. The last permitted sub-array absorbs whatever remains, so the
// sizes always sum to size.
func buildPartition(size int) []int {
	limit := maxSubArrays(size)
	arrays := make([]int, 0, limit)

	remaining := size
	for remaining > 0 && len(arrays) < limit {
		chunk := remaining / 2
		if chunk < 1 {
			chunk = 1
		}
		if len(arrays) == limit-1 {
			chunk = remaining
		}
		arrays = append(arrays, chunk)
		remaining -= chunk
	}
	return arrays
}
