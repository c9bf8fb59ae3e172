// Package randutil holds the seeding helpers shared by every generator: where
// seeds come from and how a 32-bit seed is widened into engine state.
package randutil

const (
	goldenRatio64 = 0x9e3779b97f4a7c15
)

// Expand widens a 32-bit seed into the two 64-bit words required by rand/v2
// PCG. The same seed always expands to the same pair.
func Expand(seed uint32) (uint64, uint64) {
	u := uint64(seed)
	return Mix(u), Mix(u + goldenRatio64)
}

// Mix is the splitmix64 finaliser.
func Mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
