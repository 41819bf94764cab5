package generate

import (
	"hash/fnv"
	"math/rand"
	"strconv"
)

// newSeed returns a fresh seed string for Config.UseRandomSeed.
var newSeed = func() string {
	return strconv.FormatInt(rand.Int63(), 36)
}

// SeedValue converts a seed string to the numeric PRNG seed. Strings that
// parse as a base-10 int64 are used verbatim; anything else is hashed with
// 64-bit FNV-1a.
func SeedValue(seed string) int64 {
	if n, err := strconv.ParseInt(seed, 10, 64); err == nil {
		return n
	}
	h := fnv.New64a()
	h.Write([]byte(seed)) //nolint:errcheck // hash writes never fail
	return int64(h.Sum64())
}
