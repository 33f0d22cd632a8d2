package oned

import (
	_ "embed"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"gopkg.in/ini.v1"

	"github.com/ericlevine/barcodelogic"
	"github.com/ericlevine/barcodelogic/checksum"
)

//go:embed resources/gs1_ai.ini
var gs1AIData []byte

// aiPart is one part of an AI data field.
type aiPart struct {
	kind     byte // 'n' digits, 'a' GS1 characters, 'c' check digit
	min, max int
}

func (p aiPart) fixed() bool { return p.min == p.max }

// AIField describes the data field that follows an application identifier.
type AIField struct {
	AI     string
	Format string
	parts  []aiPart
}

// ParseAIField parses a field format such as "n13+cd" or "n3+an1-9". Only
// the last part may have a variable length.
func ParseAIField(ai, format string) (*AIField, error) {
	if ai == "" {
		return nil, fmt.Errorf("empty AI: %w", barcodelogic.ErrInvalidMessage)
	}
	if err := digitsAt(ai, 0); err != nil {
		return nil, fmt.Errorf("AI %q: %w", ai, err)
	}
	f := &AIField{AI: ai, Format: format}
	for i, s := range strings.Split(format, "+") {
		p, err := parseAIPart(s)
		if err != nil {
			return nil, fmt.Errorf("AI %s format %q: %w", ai, format, err)
		}
		if i > 0 && !f.parts[i-1].fixed() {
			return nil, fmt.Errorf("AI %s format %q: variable part before %q: %w", ai, format, s, barcodelogic.ErrInvalidMessage)
		}
		f.parts = append(f.parts, p)
	}
	return f, nil
}

func parseAIPart(s string) (aiPart, error) {
	var p aiPart
	switch {
	case s == "cd":
		return aiPart{kind: 'c', min: 1, max: 1}, nil
	case strings.HasPrefix(s, "an"):
		p.kind, s = 'a', s[2:]
	case strings.HasPrefix(s, "n"):
		p.kind, s = 'n', s[1:]
	default:
		return p, fmt.Errorf("part %q: %w", s, barcodelogic.ErrInvalidMessage)
	}
	lo, hi, isRange := strings.Cut(s, "-")
	var err error
	if p.min, err = strconv.Atoi(lo); err != nil {
		return p, fmt.Errorf("part length %q: %w", s, barcodelogic.ErrInvalidMessage)
	}
	p.max = p.min
	if isRange {
		if p.max, err = strconv.Atoi(hi); err != nil {
			return p, fmt.Errorf("part length %q: %w", s, barcodelogic.ErrInvalidMessage)
		}
	}
	if p.min < 0 || p.max < p.min || p.max == 0 {
		return p, fmt.Errorf("part length %q: %w", s, barcodelogic.ErrInvalidMessage)
	}
	return p, nil
}

// Fixed reports whether the field has a predefined length. Fixed-length
// fields need no FNC1 separator.
func (f *AIField) Fixed() bool {
	for _, p := range f.parts {
		if !p.fixed() {
			return false
		}
	}
	return true
}

// MaxLength returns the longest value the field accepts.
func (f *AIField) MaxLength() int {
	n := 0
	for _, p := range f.parts {
		n += p.max
	}
	return n
}

// checkDigitAt returns the position of the check digit, or -1.
func (f *AIField) checkDigitAt() int {
	pos := 0
	for _, p := range f.parts {
		if p.kind == 'c' {
			return pos
		}
		pos += p.max
	}
	return -1
}

// Normalize applies mode to the check digit of value and validates the
// result against the field format.
func (f *AIField) Normalize(value string, mode barcodelogic.ChecksumMode) (string, error) {
	if at := f.checkDigitAt(); at >= 0 {
		if mode == barcodelogic.ChecksumAuto {
			mode = barcodelogic.ChecksumCheck
			if f.Fixed() && len(value) == f.MaxLength()-1 {
				mode = barcodelogic.ChecksumAdd
			}
		}
		if len(value) < at {
			return "", fmt.Errorf("AI %s: value %q shorter than %d: %w", f.AI, value, at, barcodelogic.ErrInvalidLength)
		}
		switch mode {
		case barcodelogic.ChecksumAdd:
			c, err := checksum.Mod10Rune(value[:at])
			if err != nil {
				return "", fmt.Errorf("AI %s: %w", f.AI, err)
			}
			value = value[:at] + string(c) + value[at:]
		case barcodelogic.ChecksumCheck:
			if len(value) <= at {
				return "", fmt.Errorf("AI %s: missing check digit: %w", f.AI, barcodelogic.ErrInvalidLength)
			}
			c, err := checksum.Mod10Rune(value[:at])
			if err != nil {
				return "", fmt.Errorf("AI %s: %w", f.AI, err)
			}
			if value[at] != c {
				return "", fmt.Errorf("AI %s: %w", f.AI,
					&barcodelogic.ChecksumError{Expected: string(c), Actual: value[at : at+1]})
			}
		}
	}
	if err := f.validate(value); err != nil {
		return "", fmt.Errorf("AI %s: %w", f.AI, err)
	}
	return value, nil
}

func (f *AIField) validate(value string) error {
	pos := 0
	for _, p := range f.parts {
		n := p.max
		if !p.fixed() {
			n = len(value) - pos
			if n < p.min || n > p.max {
				return fmt.Errorf("value %q has %d characters, want %d-%d: %w", value, n, p.min, p.max, barcodelogic.ErrInvalidLength)
			}
		}
		if pos+n > len(value) {
			return fmt.Errorf("value %q shorter than %s: %w", value, f.Format, barcodelogic.ErrInvalidLength)
		}
		for i := pos; i < pos+n; i++ {
			c := value[i]
			ok := isGS1Char(c)
			if p.kind != 'a' {
				ok = c >= '0' && c <= '9'
			}
			if !ok {
				return &barcodelogic.CharacterError{Char: rune(c), Pos: i}
			}
		}
		pos += n
	}
	if pos != len(value) {
		return fmt.Errorf("value %q longer than %s: %w", value, f.Format, barcodelogic.ErrInvalidLength)
	}
	return nil
}

// isGS1Char reports whether c is in the GS1 subset of ISO 646.
func isGS1Char(c byte) bool {
	switch {
	case c >= '0' && c <= '9', c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z':
		return true
	}
	return strings.IndexByte("!\"%&'()*+,-./:;<=>?_", c) >= 0
}

// aiNode is a node of the AI trie. Leaves carry a field, internal nodes
// carry children.
type aiNode struct {
	field    *AIField
	children [10]*aiNode
}

// AITable maps application identifiers to their fields. It is immutable:
// Insert returns a new table sharing unchanged nodes with the old one.
type AITable struct {
	root *aiNode
	size int
}

// Len returns the number of AIs in the table.
func (t AITable) Len() int { return t.size }

// Insert returns a table that also maps f.AI to f. An AI that is a prefix of
// a known AI, or that extends one, fails with ErrInvalidMessage.
func (t AITable) Insert(f *AIField) (AITable, error) {
	root, err := insertAI(t.root, f, 0)
	if err != nil {
		return t, err
	}
	return AITable{root: root, size: t.size + 1}, nil
}

func insertAI(n *aiNode, f *AIField, depth int) (*aiNode, error) {
	if n != nil && n.field != nil {
		return nil, fmt.Errorf("AI %s extends AI %s: %w", f.AI, n.field.AI, barcodelogic.ErrInvalidMessage)
	}
	if depth == len(f.AI) {
		if n != nil {
			return nil, fmt.Errorf("AI %s is a prefix of another AI: %w", f.AI, barcodelogic.ErrInvalidMessage)
		}
		return &aiNode{field: f}, nil
	}
	next := &aiNode{}
	if n != nil {
		*next = *n
	}
	d := f.AI[depth] - '0'
	child, err := insertAI(next.children[d], f, depth+1)
	if err != nil {
		return nil, err
	}
	next.children[d] = child
	return next, nil
}

// Match returns the field of the AI s starts with.
func (t AITable) Match(s string) (*AIField, bool) {
	n := t.root
	for i := 0; n != nil; i++ {
		if n.field != nil {
			return n.field, true
		}
		if i >= len(s) || s[i] < '0' || s[i] > '9' {
			return nil, false
		}
		n = n.children[s[i]-'0']
	}
	return nil, false
}

// Lookup returns the field of exactly the AI ai.
func (t AITable) Lookup(ai string) (*AIField, bool) {
	f, ok := t.Match(ai)
	if !ok || f.AI != ai {
		return nil, false
	}
	return f, true
}

// LoadAITable parses an AI table in ini form: section [ai] maps AIs, or
// ranges of AIs such as 3100-3169, to field formats.
func LoadAITable(data []byte) (AITable, error) {
	cfg, err := ini.Load(data)
	if err != nil {
		return AITable{}, fmt.Errorf("AI table: %v: %w", err, barcodelogic.ErrMissingResource)
	}
	sec, err := cfg.GetSection("ai")
	if err != nil {
		return AITable{}, fmt.Errorf("AI table: %v: %w", err, barcodelogic.ErrMissingResource)
	}
	var t AITable
	for _, key := range sec.Keys() {
		ais, err := expandAIRange(key.Name())
		if err != nil {
			return AITable{}, fmt.Errorf("AI table: %w", err)
		}
		for _, ai := range ais {
			f, err := ParseAIField(ai, key.Value())
			if err != nil {
				return AITable{}, fmt.Errorf("AI table: %w", err)
			}
			if t, err = t.Insert(f); err != nil {
				return AITable{}, fmt.Errorf("AI table: %w", err)
			}
		}
	}
	return t, nil
}

func expandAIRange(key string) ([]string, error) {
	lo, hi, isRange := strings.Cut(key, "-")
	if !isRange {
		return []string{lo}, nil
	}
	if len(lo) != len(hi) {
		return nil, fmt.Errorf("AI range %q: %w", key, barcodelogic.ErrInvalidMessage)
	}
	from, err1 := strconv.Atoi(lo)
	to, err2 := strconv.Atoi(hi)
	if err1 != nil || err2 != nil || to < from {
		return nil, fmt.Errorf("AI range %q: %w", key, barcodelogic.ErrInvalidMessage)
	}
	ais := make([]string, 0, to-from+1)
	for i := from; i <= to; i++ {
		ais = append(ais, fmt.Sprintf("%0*d", len(lo), i))
	}
	return ais, nil
}

var gs1AIs = sync.OnceValues(func() (AITable, error) {
	return LoadAITable(gs1AIData)
})

// GS1AITable returns the table of GS1 application identifiers.
func GS1AITable() (AITable, error) {
	return gs1AIs()
}

// ParseAITemplate parses a template such as "(01)n13+cd(10)an1-20" into its
// fields, in order.
func ParseAITemplate(tmpl string) ([]*AIField, error) {
	var fields []*AIField
	rest := tmpl
	for rest != "" {
		if rest[0] != '(' {
			return nil, fmt.Errorf("template %q: expected '(': %w", tmpl, barcodelogic.ErrInvalidMessage)
		}
		ai, after, ok := strings.Cut(rest[1:], ")")
		if !ok {
			return nil, fmt.Errorf("template %q: unterminated AI: %w", tmpl, barcodelogic.ErrInvalidMessage)
		}
		format := after
		if i := strings.IndexByte(after, '('); i >= 0 {
			format, after = after[:i], after[i:]
		} else {
			after = ""
		}
		f, err := ParseAIField(ai, format)
		if err != nil {
			return nil, fmt.Errorf("template %q: %w", tmpl, err)
		}
		fields = append(fields, f)
		rest = after
	}
	return fields, nil
}
