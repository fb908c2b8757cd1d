package bernstein3d

import (
	"encoding/binary"
	"hash/fnv"
	"math"
)

// tagOf fingerprints a tensor's structural configuration (variant kind,
// degrees, domain). Instances sharing a tag evaluate the same basis set
// over the same box, so upstream integration caches may key on it.
func tagOf(kind string, degrees []int, bounds []float64) (tag uint64) {
	var (
		h   = fnv.New64a()
		buf [8]byte
	)
	h.Write([]byte(kind))
	for _, d := range degrees {
		binary.LittleEndian.PutUint64(buf[:], uint64(d))
		h.Write(buf[:])
	}
	for _, b := range bounds {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(b))
		h.Write(buf[:])
	}
	tag = h.Sum64()
	return
}
