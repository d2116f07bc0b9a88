// SPDX-License-Identifier: MIT
//
// File: rng.go
// Role: deterministic per-seed RNG streams.
//
// math/rand.Rand is not goroutine-safe, so every seed gets its own stream,
// derived from the caller's RNG in seed order before any fan-out.

package cascade

import "math/rand"

// defaultRNGSeed is the parent seed used when the caller passes a nil RNG.
const defaultRNGSeed int64 = 1

// deriveSeed mixes a parent seed and a stream id with the SplitMix64
// finalizer, so neighbouring stream ids yield unrelated seeds.
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// seedStreams returns one independent RNG per seed. base is consumed once per
// seed, in order; a nil base behaves like rand.New(rand.NewSource(defaultRNGSeed)).
func seedStreams(base *rand.Rand, seeds []int) []*rand.Rand {
	if base == nil {
		base = rand.New(rand.NewSource(defaultRNGSeed))
	}
	out := make([]*rand.Rand, len(seeds))
	for i, s := range seeds {
		out[i] = rand.New(rand.NewSource(deriveSeed(base.Int63(), uint64(s))))
	}

	return out
}
