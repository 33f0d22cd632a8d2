package reedsolomon

// Poly is an immutable polynomial over a Field. Coefficients are ordered from
// the highest degree to the constant term.
type Poly struct {
	field *Field
	coef  []int
}

// NewPoly returns the polynomial with the given coefficients, leading zeros
// removed.
func NewPoly(field *Field, coefficients []int) *Poly {
	if len(coefficients) == 0 {
		panic("reedsolomon: empty coefficients")
	}
	first := 0
	for first < len(coefficients)-1 && coefficients[first] == 0 {
		first++
	}
	coef := make([]int, len(coefficients)-first)
	copy(coef, coefficients[first:])
	return &Poly{field: field, coef: coef}
}

// Coefficients returns a copy of the coefficients, highest degree first.
func (p *Poly) Coefficients() []int { return append([]int(nil), p.coef...) }

// Degree returns the degree of p.
func (p *Poly) Degree() int { return len(p.coef) - 1 }

// IsZero reports whether p is the zero polynomial.
func (p *Poly) IsZero() bool { return p.coef[0] == 0 }

// Coefficient returns the coefficient of x^degree.
func (p *Poly) Coefficient(degree int) int { return p.coef[len(p.coef)-1-degree] }

// EvaluateAt evaluates p at a using Horner's rule.
func (p *Poly) EvaluateAt(a int) int {
	if a == 0 {
		return p.Coefficient(0)
	}
	result := p.coef[0]
	for _, c := range p.coef[1:] {
		result = p.field.Multiply(a, result) ^ c
	}
	return result
}

// Add returns p+q. Addition and subtraction coincide in GF(2^n).
func (p *Poly) Add(q *Poly) *Poly {
	if p.IsZero() {
		return q
	}
	if q.IsZero() {
		return p
	}
	small, large := p.coef, q.coef
	if len(small) > len(large) {
		small, large = large, small
	}
	sum := make([]int, len(large))
	diff := len(large) - len(small)
	copy(sum, large[:diff])
	for i := diff; i < len(large); i++ {
		sum[i] = small[i-diff] ^ large[i]
	}
	return NewPoly(p.field, sum)
}

// Multiply returns p*q.
func (p *Poly) Multiply(q *Poly) *Poly {
	if p.IsZero() || q.IsZero() {
		return NewPoly(p.field, []int{0})
	}
	product := make([]int, len(p.coef)+len(q.coef)-1)
	for i, a := range p.coef {
		for j, b := range q.coef {
			product[i+j] ^= p.field.Multiply(a, b)
		}
	}
	return NewPoly(p.field, product)
}

// MultiplyByMonomial returns p * coefficient * x^degree.
func (p *Poly) MultiplyByMonomial(degree, coefficient int) *Poly {
	if coefficient == 0 {
		return NewPoly(p.field, []int{0})
	}
	product := make([]int, len(p.coef)+degree)
	for i, c := range p.coef {
		product[i] = p.field.Multiply(c, coefficient)
	}
	return NewPoly(p.field, product)
}

// Remainder returns p mod q.
func (p *Poly) Remainder(q *Poly) *Poly {
	if q.IsZero() {
		panic("reedsolomon: divide by zero")
	}
	inverseLead := p.field.Inverse(q.Coefficient(q.Degree()))
	rem := p
	for rem.Degree() >= q.Degree() && !rem.IsZero() {
		scale := p.field.Multiply(rem.Coefficient(rem.Degree()), inverseLead)
		rem = rem.Add(q.MultiplyByMonomial(rem.Degree()-q.Degree(), scale))
	}
	return rem
}
