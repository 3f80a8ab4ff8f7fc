// SPDX-License-Identifier: MIT

// Law-style properties over randomized shapes and contents. Example-based
// coverage lives in the sibling *_test.go files; these tests pin the
// algebraic contracts for arbitrary small shapes.

package densemat_test

import (
	mrand "math/rand"
	"testing"

	"github.com/katalvlaran/densemat"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

const (
	propMinShape = 1
	propMaxShape = 12
	propRTol     = 1e-9
	propATol     = 1e-9
)

// randomValues builds a deterministic row-major value slice of length n.
func randomValues(n int, seed int64) []float64 {
	rng := mrand.New(mrand.NewSource(seed))
	values := make([]float64, n)
	for i := range values {
		values[i] = rng.NormFloat64() * 10 // mixed signs and magnitudes
	}

	return values
}

func newProperties(t *testing.T) *gopter.Properties {
	t.Helper()
	parameters := gopter.DefaultTestParameters()
	parameters.Rng.Seed(2468)
	parameters.MinSuccessfulTests = 100

	return gopter.NewProperties(parameters)
}

func TestConstructionProperties(t *testing.T) {
	properties := newProperties(t)

	properties.Property("zeros is all zeros for every valid shape", prop.ForAll(
		func(r, c int) bool {
			m, err := densemat.NewDense[float64](r, c)
			if err != nil {
				return false
			}
			for i := 0; i < r; i++ {
				for j := 0; j < c; j++ {
					if v, err := m.At(i, j); err != nil || v != 0 {
						return false
					}
				}
			}

			return true
		},
		gen.IntRange(propMinShape, propMaxShape),
		gen.IntRange(propMinShape, propMaxShape),
	))

	properties.Property("identity has ones exactly on the diagonal", prop.ForAll(
		func(n int) bool {
			m, err := densemat.NewIdentity[float64](n, n)
			if err != nil {
				return false
			}
			for i := 0; i < n; i++ {
				for j := 0; j < n; j++ {
					v, err := m.At(i, j)
					if err != nil {
						return false
					}
					if i == j && v != 1 {
						return false
					}
					if i != j && v != 0 {
						return false
					}
				}
			}

			return true
		},
		gen.IntRange(propMinShape, propMaxShape),
	))

	properties.Property("random elements lie in [0,1)", prop.ForAll(
		func(r, c int, seed int64) bool {
			m, err := densemat.NewRandom[float64](r, c, densemat.WithSeed(seed))
			if err != nil {
				return false
			}
			for i := 0; i < r; i++ {
				for j := 0; j < c; j++ {
					v, err := m.At(i, j)
					if err != nil || v < 0 || v >= 1 {
						return false
					}
				}
			}

			return true
		},
		gen.IntRange(propMinShape, propMaxShape),
		gen.IntRange(propMinShape, propMaxShape),
		gen.Int64(),
	))

	properties.Property("from-slice round-trips row-major values exactly", prop.ForAll(
		func(r, c int, seed int64) bool {
			values := randomValues(r*c, seed)
			m, err := densemat.NewFromSlice(r, c, values)
			if err != nil {
				return false
			}
			for i := 0; i < r; i++ {
				for j := 0; j < c; j++ {
					v, err := m.At(i, j)
					if err != nil || v != values[i*c+j] {
						return false
					}
				}
			}

			return true
		},
		gen.IntRange(propMinShape, propMaxShape),
		gen.IntRange(propMinShape, propMaxShape),
		gen.Int64(),
	))

	properties.TestingRun(t)
}

func TestAlgebraProperties(t *testing.T) {
	properties := newProperties(t)

	properties.Property("add then sub recovers the left operand within tolerance", prop.ForAll(
		func(r, c int, seedA, seedB int64) bool {
			a, err := densemat.NewFromSlice(r, c, randomValues(r*c, seedA))
			if err != nil {
				return false
			}
			b, err := densemat.NewFromSlice(r, c, randomValues(r*c, seedB))
			if err != nil {
				return false
			}
			sum, err := densemat.Add[float64](a, b)
			if err != nil {
				return false
			}
			back, err := densemat.Sub[float64](sum, b)
			if err != nil {
				return false
			}
			ok, err := densemat.AllClose[float64](back, a, propRTol, propATol)

			return err == nil && ok
		},
		gen.IntRange(propMinShape, propMaxShape),
		gen.IntRange(propMinShape, propMaxShape),
		gen.Int64(),
		gen.Int64(),
	))

	properties.Property("elementwise sums match per linear index", prop.ForAll(
		func(r, c int, seedA, seedB int64) bool {
			av := randomValues(r*c, seedA)
			bv := randomValues(r*c, seedB)
			a, errA := densemat.NewFromSlice(r, c, av)
			b, errB := densemat.NewFromSlice(r, c, bv)
			if errA != nil || errB != nil {
				return false
			}
			sum, err := densemat.Add[float64](a, b)
			if err != nil {
				return false
			}
			for i := 0; i < r; i++ {
				for j := 0; j < c; j++ {
					v, err := sum.At(i, j)
					if err != nil || v != av[i*c+j]+bv[i*c+j] {
						return false
					}
				}
			}

			return true
		},
		gen.IntRange(propMinShape, propMaxShape),
		gen.IntRange(propMinShape, propMaxShape),
		gen.Int64(),
		gen.Int64(),
	))

	properties.Property("transpose is an involution", prop.ForAll(
		func(r, c int, seed int64) bool {
			m, err := densemat.NewFromSlice(r, c, randomValues(r*c, seed))
			if err != nil {
				return false
			}
			tr, err := densemat.Transpose[float64](m)
			if err != nil {
				return false
			}
			back, err := densemat.Transpose[float64](tr)
			if err != nil {
				return false
			}
			for i := 0; i < r; i++ {
				for j := 0; j < c; j++ {
					mv, _ := m.At(i, j)
					bv, _ := back.At(i, j)
					if mv != bv {
						return false
					}
				}
			}

			return true
		},
		gen.IntRange(propMinShape, propMaxShape),
		gen.IntRange(propMinShape, propMaxShape),
		gen.Int64(),
	))

	properties.Property("identity is neutral for the matrix product", prop.ForAll(
		func(n int, seed int64) bool {
			a, err := densemat.NewFromSlice(n, n, randomValues(n*n, seed))
			if err != nil {
				return false
			}
			id, err := densemat.NewIdentity[float64](n, n)
			if err != nil {
				return false
			}
			p, err := densemat.Mul[float64](a, id)
			if err != nil {
				return false
			}
			for i := 0; i < n; i++ {
				for j := 0; j < n; j++ {
					av, _ := a.At(i, j)
					pv, _ := p.At(i, j)
					if av != pv {
						return false
					}
				}
			}

			return true
		},
		gen.IntRange(propMinShape, propMaxShape),
		gen.Int64(),
	))

	properties.Property("MulInto result is independent of prior destination content", prop.ForAll(
		func(r, k, c int, seedA, seedB int64) bool {
			a, errA := densemat.NewFromSlice(r, k, randomValues(r*k, seedA))
			b, errB := densemat.NewFromSlice(k, c, randomValues(k*c, seedB))
			if errA != nil || errB != nil {
				return false
			}
			want, err := densemat.Mul[float64](a, b)
			if err != nil {
				return false
			}
			dst, err := densemat.NewScratch[float64](r, c)
			if err != nil {
				return false
			}
			dst.Fill(12345) // arbitrary stale content
			if err = densemat.MulInto[float64](dst, a, b); err != nil {
				return false
			}
			for i := 0; i < r; i++ {
				for j := 0; j < c; j++ {
					wv, _ := want.At(i, j)
					dv, _ := dst.At(i, j)
					if wv != dv {
						return false
					}
				}
			}

			return true
		},
		gen.IntRange(propMinShape, propMaxShape),
		gen.IntRange(propMinShape, propMaxShape),
		gen.IntRange(propMinShape, propMaxShape),
		gen.Int64(),
		gen.Int64(),
	))

	properties.TestingRun(t)
}
