// File: fingerprint.go
// Role: Fingerprint, a stable numeric path identity for Solution.ID.
package concat

// Fingerprint computes a stable, allocation-light identity for path:
// (length, lo, hi), where lo and hi are two independent FNV-1a-style
// multiplicative accumulators. Grounded on core/methods_edges.go's
// stable textual/numeric edge-ID discipline, generalized here from
// strings to []int so Solution.ID can be used as a map key or compared
// with go-cmp without allocating a string each time.
func Fingerprint(path []int) [3]int64 {
	const (
		offsetLo uint64 = 14695981039346656037
		primeLo  uint64 = 1099511628211
		offsetHi uint64 = 1099511628211
		primeHi  uint64 = 14695981039346656029 // odd multiplier near offsetLo, distinct accumulator
	)

	lo, hi := offsetLo, offsetHi
	for _, v := range path {
		lo ^= uint64(int64(v))
		lo *= primeLo
		hi ^= uint64(int64(v))
		hi *= primeHi
	}

	return [3]int64{int64(len(path)), int64(lo), int64(hi)}
}
