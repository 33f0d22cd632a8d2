package barcodelogic

// EventKind identifies a LogicHandler callback.
type EventKind int

const (
	EventStartBarcode EventKind = iota
	EventStartBarGroup
	EventAddBar
	EventEndBarGroup
	EventStartRow
	EventEndRow
	EventEndBarcode
)

var eventKindNames = [...]string{
	EventStartBarcode:  "start-barcode",
	EventStartBarGroup: "start-bar-group",
	EventAddBar:        "add-bar",
	EventEndBarGroup:   "end-bar-group",
	EventStartRow:      "start-row",
	EventEndRow:        "end-row",
	EventEndBarcode:    "end-barcode",
}

// String returns the name of the event kind.
func (k EventKind) String() string {
	if k < 0 || int(k) >= len(eventKindNames) {
		return "unknown"
	}
	return eventKindNames[k]
}

// Event is one recorded LogicHandler callback. Only the fields relevant to
// Kind are set: Message and Display for EventStartBarcode, Group and Label
// for EventStartBarGroup, Black and Width for EventAddBar.
type Event struct {
	Kind    EventKind
	Message string
	Display string
	Group   BarGroup
	Label   string
	Black   bool
	Width   int
}

// Recorder is a TwoDimLogicHandler that stores every callback it receives.
type Recorder struct {
	events []Event
}

// StartBarcode implements LogicHandler.
func (r *Recorder) StartBarcode(msg, formattedMsg string) {
	r.events = append(r.events, Event{Kind: EventStartBarcode, Message: msg, Display: formattedMsg})
}

// StartBarGroup implements LogicHandler.
func (r *Recorder) StartBarGroup(group BarGroup, label string) {
	r.events = append(r.events, Event{Kind: EventStartBarGroup, Group: group, Label: label})
}

// AddBar implements LogicHandler.
func (r *Recorder) AddBar(black bool, width int) {
	r.events = append(r.events, Event{Kind: EventAddBar, Black: black, Width: width})
}

// EndBarGroup implements LogicHandler.
func (r *Recorder) EndBarGroup() { r.events = append(r.events, Event{Kind: EventEndBarGroup}) }

// EndBarcode implements LogicHandler.
func (r *Recorder) EndBarcode() { r.events = append(r.events, Event{Kind: EventEndBarcode}) }

// StartRow implements TwoDimLogicHandler.
func (r *Recorder) StartRow() { r.events = append(r.events, Event{Kind: EventStartRow}) }

// EndRow implements TwoDimLogicHandler.
func (r *Recorder) EndRow() { r.events = append(r.events, Event{Kind: EventEndRow}) }

// Events returns a copy of the recorded events.
func (r *Recorder) Events() []Event {
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

// Reset discards all recorded events.
func (r *Recorder) Reset() { r.events = r.events[:0] }

// EncodedMessage is the immutable result of encoding a message with a
// symbology. It can be replayed to any number of handlers.
type EncodedMessage struct {
	format    Format
	message   string
	display   string
	codewords []int
	events    []Event
	rows      int
	cols      int
}

// NewEncodedMessage records the events emit produces and returns them as an
// EncodedMessage. codewords are the symbol's codewords, if it has any.
func NewEncodedMessage(format Format, codewords []int, emit func(h TwoDimLogicHandler)) *EncodedMessage {
	rec := &Recorder{}
	emit(rec)
	m := &EncodedMessage{
		format:    format,
		codewords: append([]int(nil), codewords...),
		events:    rec.events,
	}
	inRow := false
	for _, ev := range m.events {
		switch ev.Kind {
		case EventStartBarcode:
			m.message, m.display = ev.Message, ev.Display
		case EventStartRow:
			m.rows++
			inRow = m.rows == 1
		case EventEndRow:
			inRow = false
		case EventAddBar:
			if inRow {
				m.cols += ev.Width
			}
		}
	}
	return m
}

// Format returns the symbology the message was encoded with.
func (m *EncodedMessage) Format() Format { return m.format }

// Message returns the message as given to Encode.
func (m *EncodedMessage) Message() string { return m.message }

// Display returns the human-readable form of the message.
func (m *EncodedMessage) Display() string { return m.display }

// Codewords returns a copy of the symbol's codewords.
func (m *EncodedMessage) Codewords() []int { return append([]int(nil), m.codewords...) }

// Events returns a copy of the recorded event stream.
func (m *EncodedMessage) Events() []Event {
	out := make([]Event, len(m.events))
	copy(out, m.events)
	return out
}

// Rows returns the number of rows of a 2D symbol, or 0 for linear symbols.
func (m *EncodedMessage) Rows() int { return m.rows }

// Columns returns the number of modules in the first row of a 2D symbol, or
// 0 for linear symbols.
func (m *EncodedMessage) Columns() int { return m.cols }

// Replay sends the recorded events to h. Row events are dropped when h is
// not a TwoDimLogicHandler.
func (m *EncodedMessage) Replay(h LogicHandler) {
	h2, twoDim := h.(TwoDimLogicHandler)
	for _, ev := range m.events {
		switch ev.Kind {
		case EventStartBarcode:
			h.StartBarcode(ev.Message, ev.Display)
		case EventStartBarGroup:
			h.StartBarGroup(ev.Group, ev.Label)
		case EventAddBar:
			h.AddBar(ev.Black, ev.Width)
		case EventEndBarGroup:
			h.EndBarGroup()
		case EventEndBarcode:
			h.EndBarcode()
		case EventStartRow:
			if twoDim {
				h2.StartRow()
			}
		case EventEndRow:
			if twoDim {
				h2.EndRow()
			}
		}
	}
}

// Width sums the widths of the bars in the first row (or of the whole
// symbol when it has no rows) using barWidth.
func (m *EncodedMessage) Width(barWidth func(black bool, width int) float64) float64 {
	total := 0.0
	rows := 0
	for _, ev := range m.events {
		switch ev.Kind {
		case EventStartRow:
			rows++
		case EventAddBar:
			if rows <= 1 {
				total += barWidth(ev.Black, ev.Width)
			}
		}
	}
	return total
}
