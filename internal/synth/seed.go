// Package synth derives realistic-looking telemetry, risk and screening values
// from a record identifier. Every function is pure: the same seed always yields
// the same output, and nothing is drawn from a random source at read time.
package synth

// Seed folds the three characters following a four-byte prefix ("inq_") into
// an integer: c[4] + 3*c[5] + 7*c[6]. Positions past the end count as zero.
func Seed(id string) int {
	at := func(i int) int {
		if i < len(id) {
			return int(id[i])
		}
		return 0
	}
	return at(4) + at(5)*3 + at(6)*7
}
