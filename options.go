// SPDX-License-Identifier: MIT

// Package densemat: functional configuration for randomized construction and
// numeric policy. This file defines:
//   - RandOption / randOptions (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherRandOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior on request: no global state; the only
//     nondeterminism in the package is the default entropy seeding of
//     NewRandom, and WithSeed/WithSource turn it off explicitly.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Reusability: randOptions fields are unexported; public APIs consume
//     ...RandOption.
package densemat

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	mrand "math/rand"
)

// DefaultEpsilon is the non-negative absolute tolerance suggested for
// approximate comparisons (AllClose atol) over float64 data.
const DefaultEpsilon = 1e-9

// entropySeedLen is the number of OS-entropy bytes consumed per default seed.
const entropySeedLen = 8

// panicNilSource guards WithSource against a nil generator source.
const panicNilSource = "densemat: WithSource: source must be non-nil"

// randOptions carries the resolved randomized-construction configuration.
// The zero value means "seed from OS entropy at call time".
type randOptions struct {
	src mrand.Source // pseudo-random source; nil ⇒ entropy-seeded default
}

// RandOption mutates internal options. Safe to apply repeatedly; the last
// applied source wins. Constructors MUST panic only on nonsensical values
// (programmer error), never on data-dependent conditions.
type RandOption func(*randOptions)

// WithSeed makes NewRandom deterministic: the generator is seeded with the
// given value instead of OS entropy, so identical (shape, seed) pairs yield
// identical matrices. Intended for tests and reproducible pipelines.
func WithSeed(seed int64) RandOption {
	return func(o *randOptions) {
		o.src = mrand.NewSource(seed) // replace the entropy-seeded default
	}
}

// WithSource supplies a caller-owned pseudo-random source. The source is
// used as-is; sharing it across goroutines is the caller's concern.
// Panics if src is nil (programmer error, not a data condition).
func WithSource(src mrand.Source) RandOption {
	if src == nil {
		panic(panicNilSource)
	}

	return func(o *randOptions) {
		o.src = src
	}
}

// gatherRandOptions applies opts over the defaults and resolves the final
// source. When no option installed a source, a fresh one is seeded from the
// OS entropy pool; the read is a bounded system call and its failure is
// surfaced to the caller rather than silently degraded.
func gatherRandOptions(opts ...RandOption) (mrand.Source, error) {
	var o randOptions
	for _, opt := range opts {
		opt(&o) // options are plain mutators; order is caller-defined
	}
	// Explicit source or seed wins; nothing else to resolve.
	if o.src != nil {
		return o.src, nil
	}
	// Default path: one entropy read per construction, by contract.
	seed, err := entropySeed()
	if err != nil {
		return nil, err
	}

	return mrand.NewSource(seed), nil
}

// entropySeed draws a 64-bit seed from the OS entropy source.
func entropySeed() (int64, error) {
	var buf [entropySeedLen]byte
	if _, err := crand.Read(buf[:]); err != nil {
		return 0, fmt.Errorf("densemat: read entropy: %w", err)
	}

	return int64(binary.LittleEndian.Uint64(buf[:])), nil
}
