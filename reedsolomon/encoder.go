package reedsolomon

import (
	"fmt"
	"sync"
)

// Encoder computes Reed-Solomon error correction codewords. It caches the
// generator polynomials it builds and is safe for concurrent use.
type Encoder struct {
	field *Field

	mu         sync.Mutex
	generators []*Poly
}

// NewEncoder creates an Encoder over field.
func NewEncoder(field *Field) *Encoder {
	return &Encoder{
		field:      field,
		generators: []*Poly{NewPoly(field, []int{1})},
	}
}

// Generator returns the generator polynomial with degree roots
// alpha^base .. alpha^(base+degree-1).
func (e *Encoder) Generator(degree int) *Poly {
	e.mu.Lock()
	defer e.mu.Unlock()
	for d := len(e.generators); d <= degree; d++ {
		last := e.generators[d-1]
		root := e.field.Exp(d - 1 + e.field.GeneratorBase())
		e.generators = append(e.generators, last.Multiply(NewPoly(e.field, []int{1, root})))
	}
	return e.generators[degree]
}

// Encode returns the ecCount error correction codewords for data.
func (e *Encoder) Encode(data []int, ecCount int) ([]int, error) {
	if ecCount <= 0 {
		return nil, fmt.Errorf("reedsolomon: %d error correction codewords requested", ecCount)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("reedsolomon: no data codewords")
	}
	for _, c := range data {
		if c < 0 || c >= e.field.Size() {
			return nil, fmt.Errorf("reedsolomon: codeword %d outside %s", c, e.field)
		}
	}
	info := NewPoly(e.field, data).MultiplyByMonomial(ecCount, 1)
	rem := info.Remainder(e.Generator(ecCount)).coef
	ec := make([]int, ecCount)
	copy(ec[ecCount-len(rem):], rem)
	return ec, nil
}
