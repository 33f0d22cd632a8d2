package oned

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/ericlevine/barcodelogic"
)

// MaxEAN128DataLength is the number of data characters an EAN-128 symbol
// may carry, AIs included.
const MaxEAN128DataLength = 48

// groupSeparator may separate fields in place of the FNC1 escape.
const groupSeparator = '\x1d'

// EAN128 encodes GS1-128 symbols. Messages are written either with
// bracketed AIs, "(01)09501101530003(10)ABC", or as raw fields separated by
// FNC1 escapes or GS characters. Fields are checked against the GS1 AI table
// or, when set, Options.EAN128Template.
type EAN128 struct{ code128Layout }

// Format implements barcodelogic.Symbology.
func (EAN128) Format() barcodelogic.Format { return barcodelogic.FormatEAN128 }

// Validate implements barcodelogic.Symbology.
func (EAN128) Validate(msg string, opts *barcodelogic.Options) error {
	_, err := parseEAN128(msg, opts)
	if err != nil {
		return fmt.Errorf("ean-128: %w", err)
	}
	return nil
}

// Encode implements barcodelogic.Symbology.
func (EAN128) Encode(msg string, opts *barcodelogic.Options) (*barcodelogic.EncodedMessage, error) {
	elems, err := parseEAN128(msg, opts)
	if err != nil {
		return nil, fmt.Errorf("ean-128: %w", err)
	}
	chars, err := encodeCode128([]rune(elems.content()), code128Codesets(opts))
	if err != nil {
		return nil, fmt.Errorf("ean-128: %w", err)
	}
	return newCode128Message(barcodelogic.FormatEAN128, msg, elems.display(), chars), nil
}

// aiElement is an AI with its normalized value.
type aiElement struct {
	field *AIField
	value string
}

type aiElements []aiElement

// content returns the Code 128 content: a leading FNC1 and an FNC1 after
// every variable-length field but the last.
func (e aiElements) content() string {
	var sb strings.Builder
	sb.WriteRune(Code128EscapeFNC1)
	for i, el := range e {
		sb.WriteString(el.field.AI)
		sb.WriteString(el.value)
		if !el.field.Fixed() && i < len(e)-1 {
			sb.WriteRune(Code128EscapeFNC1)
		}
	}
	return sb.String()
}

func (e aiElements) display() string {
	var sb strings.Builder
	for _, el := range e {
		sb.WriteString("(" + el.field.AI + ")" + el.value)
	}
	return sb.String()
}

func (e aiElements) dataLength() int {
	n := 0
	for _, el := range e {
		n += len(el.field.AI) + len(el.value)
	}
	return n
}

// ean128Resolver finds the field of the i-th element of a message.
type ean128Resolver struct {
	table    AITable
	template []*AIField
}

func newEAN128Resolver(opts *barcodelogic.Options) (*ean128Resolver, error) {
	r := &ean128Resolver{}
	if opts != nil && opts.EAN128Template != "" {
		tmpl, err := ParseAITemplate(opts.EAN128Template)
		if err != nil {
			return nil, err
		}
		r.template = tmpl
		return r, nil
	}
	table, err := GS1AITable()
	if err != nil {
		return nil, err
	}
	r.table = table
	return r, nil
}

// match returns the field of the AI s starts with, for element i.
func (r *ean128Resolver) match(i int, s string) (*AIField, error) {
	if r.template == nil {
		f, ok := r.table.Match(s)
		if !ok {
			return nil, fmt.Errorf("unknown AI at %q: %w", s, barcodelogic.ErrInvalidMessage)
		}
		return f, nil
	}
	if i >= len(r.template) {
		return nil, fmt.Errorf("more AIs than template %q: %w", r.templateString(), barcodelogic.ErrInvalidMessage)
	}
	f := r.template[i]
	if !strings.HasPrefix(s, f.AI) {
		return nil, fmt.Errorf("AI %d does not match template AI %s: %w", i+1, f.AI, barcodelogic.ErrInvalidMessage)
	}
	return f, nil
}

func (r *ean128Resolver) templateString() string {
	var sb strings.Builder
	for _, f := range r.template {
		sb.WriteString("(" + f.AI + ")" + f.Format)
	}
	return sb.String()
}

func parseEAN128(msg string, opts *barcodelogic.Options) (aiElements, error) {
	if msg == "" {
		return nil, fmt.Errorf("empty message: %w", barcodelogic.ErrInvalidLength)
	}
	r, err := newEAN128Resolver(opts)
	if err != nil {
		return nil, err
	}
	var elems aiElements
	if msg[0] == '(' {
		elems, err = parseBracketedAIs(msg, r)
	} else {
		elems, err = parseRawAIs(msg, r)
	}
	if err != nil {
		return nil, err
	}
	mode := opts.ChecksumMode()
	for i := range elems {
		if elems[i].value, err = elems[i].field.Normalize(elems[i].value, mode); err != nil {
			return nil, err
		}
	}
	if n := elems.dataLength(); n > MaxEAN128DataLength {
		return nil, fmt.Errorf("%d data characters, at most %d: %w", n, MaxEAN128DataLength, barcodelogic.ErrInvalidLength)
	}
	return elems, nil
}

func parseBracketedAIs(msg string, r *ean128Resolver) (aiElements, error) {
	var elems aiElements
	rest := msg
	for rest != "" {
		if rest[0] != '(' {
			return nil, fmt.Errorf("expected '(' at %q: %w", rest, barcodelogic.ErrInvalidMessage)
		}
		ai, after, ok := strings.Cut(rest[1:], ")")
		if !ok {
			return nil, fmt.Errorf("unterminated AI at %q: %w", rest, barcodelogic.ErrInvalidMessage)
		}
		f, err := r.match(len(elems), ai)
		if err != nil {
			return nil, err
		}
		if f.AI != ai {
			return nil, fmt.Errorf("AI (%s) is not %s: %w", ai, f.AI, barcodelogic.ErrInvalidMessage)
		}
		value := after
		rest = ""
		if i := strings.IndexByte(after, '('); i >= 0 {
			value, rest = after[:i], after[i:]
		}
		elems = append(elems, aiElement{field: f, value: value})
	}
	return elems, nil
}

func parseRawAIs(msg string, r *ean128Resolver) (aiElements, error) {
	var elems aiElements
	rest := strings.TrimPrefix(msg, string(Code128EscapeFNC1))
	for rest != "" {
		f, err := r.match(len(elems), rest)
		if err != nil {
			return nil, err
		}
		rest = rest[len(f.AI):]
		end := strings.IndexFunc(rest, isFieldSeparator)
		if end < 0 {
			end = len(rest)
		}
		if f.Fixed() && end > f.MaxLength() {
			end = f.MaxLength()
		}
		elems = append(elems, aiElement{field: f, value: rest[:end]})
		rest = rest[end:]
		if c, size := utf8.DecodeRuneInString(rest); isFieldSeparator(c) {
			rest = rest[size:]
		}
	}
	if len(elems) == 0 {
		return nil, fmt.Errorf("no AI in %q: %w", msg, barcodelogic.ErrInvalidMessage)
	}
	return elems, nil
}

func isFieldSeparator(r rune) bool {
	return r == Code128EscapeFNC1 || r == groupSeparator
}
