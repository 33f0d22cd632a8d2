package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/mattn/go-isatty"

	"github.com/ericlevine/barcodelogic"
	"github.com/ericlevine/barcodelogic/fourstate"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// linearPreviewHeight is the number of lines a linear symbol is drawn with.
const linearPreviewHeight = 4

// barSpanner is implemented by the four-state symbologies, whose bars carry
// a state instead of a width.
type barSpanner interface {
	BarSpan(state int, opts *barcodelogic.Options) (offset, height float64)
}

func isFourState(format barcodelogic.Format) bool {
	sym, err := barcodelogic.Lookup(format)
	if err != nil {
		return false
	}
	_, ok := sym.(barSpanner)
	return ok
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func writeJSON(w io.Writer, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", b)
	return err
}

type encodedJSON struct {
	Format    string      `json:"format"`
	Message   string      `json:"message"`
	Display   string      `json:"display"`
	Codewords []int       `json:"codewords"`
	Rows      int         `json:"rows,omitempty"`
	Columns   int         `json:"columns,omitempty"`
	Events    []eventJSON `json:"events"`
}

type eventJSON struct {
	Kind    string `json:"kind"`
	Message string `json:"message,omitempty"`
	Display string `json:"display,omitempty"`
	Group   string `json:"group,omitempty"`
	Label   string `json:"label,omitempty"`
	Width   *int   `json:"width,omitempty"`
	State   string `json:"state,omitempty"`
}

func newEncodedJSON(enc *barcodelogic.EncodedMessage) encodedJSON {
	fourState := isFourState(enc.Format())
	out := encodedJSON{
		Format:    enc.Format().String(),
		Message:   enc.Message(),
		Display:   enc.Display(),
		Codewords: enc.Codewords(),
		Rows:      enc.Rows(),
		Columns:   enc.Columns(),
	}
	for _, ev := range enc.Events() {
		e := eventJSON{Kind: ev.Kind.String()}
		switch ev.Kind {
		case barcodelogic.EventStartBarcode:
			e.Message, e.Display = ev.Message, ev.Display
		case barcodelogic.EventStartBarGroup:
			e.Group, e.Label = ev.Group.String(), ev.Label
		case barcodelogic.EventAddBar:
			e.Kind = "space"
			if ev.Black {
				e.Kind = "bar"
			}
			if ev.Black && fourState {
				e.State = string(fourstate.StateLetter(ev.Width))
			} else {
				width := ev.Width
				e.Width = &width
			}
		}
		out.Events = append(out.Events, e)
	}
	return out
}

// textHandler prints events one per line, indented by nesting depth.
type textHandler struct {
	w         io.Writer
	fourState bool
	depth     int
	err       error
}

func (h *textHandler) printf(format string, args ...any) {
	if h.err != nil {
		return
	}
	_, h.err = fmt.Fprintf(h.w, strings.Repeat("  ", h.depth)+format+"\n", args...)
}

func (h *textHandler) StartBarcode(msg, formattedMsg string) {
	h.printf("barcode %q %q", msg, formattedMsg)
	h.depth++
}

func (h *textHandler) StartBarGroup(group barcodelogic.BarGroup, label string) {
	if label == "" {
		h.printf("%s", group)
	} else {
		h.printf("%s %q", group, label)
	}
	h.depth++
}

func (h *textHandler) AddBar(black bool, width int) {
	switch {
	case black && h.fourState:
		h.printf("bar %c", fourstate.StateLetter(width))
	case black:
		h.printf("bar %d", width)
	default:
		h.printf("space %d", width)
	}
}

func (h *textHandler) EndBarGroup() { h.depth-- }
func (h *textHandler) EndBarcode()  { h.depth-- }

func (h *textHandler) StartRow() {
	h.printf("row")
	h.depth++
}

func (h *textHandler) EndRow() { h.depth-- }

func writeEvents(w io.Writer, enc *barcodelogic.EncodedMessage) error {
	h := &textHandler{w: w, fourState: isFourState(enc.Format())}
	enc.Replay(h)
	return h.err
}

// previewHandler collects modules row by row, or bar states for four-state
// symbols.
type previewHandler struct {
	rows   [][]bool
	cur    []bool
	states []int
}

func (h *previewHandler) StartBarcode(string, string) {}

func (h *previewHandler) StartBarGroup(barcodelogic.BarGroup, string) {}

func (h *previewHandler) EndBarGroup() {}

func (h *previewHandler) EndBarcode() {}

func (h *previewHandler) AddBar(black bool, width int) {
	if black {
		h.states = append(h.states, width)
	} else {
		h.states = append(h.states, -1)
	}
	for i := 0; i < width; i++ {
		h.cur = append(h.cur, black)
	}
}

func (h *previewHandler) StartRow() { h.cur = nil }

func (h *previewHandler) EndRow() {
	h.rows = append(h.rows, h.cur)
	h.cur = nil
}

func writePreview(w io.Writer, enc *barcodelogic.EncodedMessage) error {
	h := &previewHandler{}
	enc.Replay(h)

	var lines []string
	switch {
	case isFourState(enc.Format()):
		lines = fourStateLines(h.states)
	case len(h.rows) > 0:
		for _, row := range h.rows {
			lines = append(lines, moduleLine(row, "██", "  "))
		}
	default:
		line := moduleLine(h.cur, "█", " ")
		for i := 0; i < linearPreviewHeight; i++ {
			lines = append(lines, line)
		}
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func moduleLine(modules []bool, black, white string) string {
	var sb strings.Builder
	for _, m := range modules {
		if m {
			sb.WriteString(black)
		} else {
			sb.WriteString(white)
		}
	}
	return sb.String()
}

// fourStateLines draws ascenders, the tracker and descenders on three lines.
// Gaps are stored as -1.
func fourStateLines(states []int) []string {
	var top, mid, bottom strings.Builder
	for _, s := range states {
		if s < 0 {
			top.WriteByte(' ')
			mid.WriteByte(' ')
			bottom.WriteByte(' ')
			continue
		}
		top.WriteString(mark(s == barcodelogic.FourStateFull || s == barcodelogic.FourStateAscender))
		mid.WriteString(mark(true))
		bottom.WriteString(mark(s == barcodelogic.FourStateFull || s == barcodelogic.FourStateDescender))
	}
	return []string{top.String(), mid.String(), bottom.String()}
}

func mark(on bool) string {
	if on {
		return "█"
	}
	return " "
}
