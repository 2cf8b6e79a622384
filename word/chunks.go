package word

import "golang.org/x/exp/constraints"

// ChunkCount returns the number of chunkSize-unit chunks needed to hold
// n units, i.e. ceil(n / chunkSize). It generalizes over any unsigned
// integer type so callers can size either a byte count or a word count
// without a conversion at the call site.
func ChunkCount[T constraints.Unsigned](n, chunkSize T) T {
	return (n + chunkSize - 1) / chunkSize
}
