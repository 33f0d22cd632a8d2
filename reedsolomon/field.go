// Package reedsolomon implements Reed-Solomon error correction encoding over
// GF(2^n) fields.
package reedsolomon

import "fmt"

// Field is a Galois field GF(2^n) with precomputed exponent and logarithm
// tables.
type Field struct {
	exp           []int
	log           []int
	size          int
	primitive     int
	generatorBase int
}

// DataMatrixField256 is GF(256) with primitive x^8 + x^5 + x^3 + x^2 + 1 and
// generator base 1, as used by Data Matrix ECC200.
var DataMatrixField256 = NewField(0x012D, 256, 1)

// NewField builds GF(size) from a primitive polynomial. Generator
// polynomials built on the field start at alpha^generatorBase.
func NewField(primitive, size, generatorBase int) *Field {
	f := &Field{
		exp:           make([]int, size),
		log:           make([]int, size),
		size:          size,
		primitive:     primitive,
		generatorBase: generatorBase,
	}
	x := 1
	for i := 0; i < size; i++ {
		f.exp[i] = x
		x <<= 1
		if x >= size {
			x = (x ^ primitive) & (size - 1)
		}
	}
	for i := 0; i < size-1; i++ {
		f.log[f.exp[i]] = i
	}
	return f
}

// Exp returns alpha^a.
func (f *Field) Exp(a int) int { return f.exp[a%(f.size-1)] }

// Log returns the discrete logarithm of a, which must not be zero.
func (f *Field) Log(a int) int {
	if a == 0 {
		panic("reedsolomon: log(0)")
	}
	return f.log[a]
}

// Multiply returns a*b in the field.
func (f *Field) Multiply(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	return f.exp[(f.log[a]+f.log[b])%(f.size-1)]
}

// Inverse returns the multiplicative inverse of a, which must not be zero.
func (f *Field) Inverse(a int) int {
	if a == 0 {
		panic("reedsolomon: inverse(0)")
	}
	return f.exp[f.size-f.log[a]-1]
}

// Size returns the number of field elements.
func (f *Field) Size() int { return f.size }

// GeneratorBase returns the exponent of the first generator root.
func (f *Field) GeneratorBase() int { return f.generatorBase }

func (f *Field) String() string {
	return fmt.Sprintf("GF(0x%x,%d)", f.primitive, f.size)
}
