package tables

import "sync"

// DiagnosticKind classifies a recoverable problem found while parsing or
// rolling.
type DiagnosticKind int

const (
	DiagBadRange          DiagnosticKind = iota + 1 // row range unreadable, weight forced to 1
	DiagInlineFailed                                // inline table dropped, outcome truncated
	DiagInlineIncomplete                            // inline rows stopped matching, N/A filler added
	DiagItemSkipped                                 // one inline row could not be built
	DiagUnresolvedHeader                            // first line of a table is not a header
	DiagWeightMismatch                              // item weights do not sum to the die size
	DiagItemCountMismatch                           // item count differs from the die size
	DiagRollFailed                                  // table could not produce a roll
)

func (k DiagnosticKind) String() string {
	switch k {
	case DiagBadRange:
		return "bad_range"
	case DiagInlineFailed:
		return "inline_failed"
	case DiagInlineIncomplete:
		return "inline_incomplete"
	case DiagItemSkipped:
		return "item_skipped"
	case DiagUnresolvedHeader:
		return "unresolved_header"
	case DiagWeightMismatch:
		return "weight_mismatch"
	case DiagItemCountMismatch:
		return "item_count_mismatch"
	case DiagRollFailed:
		return "roll_failed"
	default:
		return "unknown"
	}
}

// Diagnostic is one recoverable problem, with the text it concerns.
type Diagnostic struct {
	Kind    DiagnosticKind
	Message string
	Text    string
}

// Sink receives diagnostics. Implementations must be safe for concurrent use
// when one parser is shared between goroutines.
type Sink interface {
	Report(Diagnostic)
}

// SinkFunc adapts a function to a Sink.
type SinkFunc func(Diagnostic)

// Report calls f(d).
func (f SinkFunc) Report(d Diagnostic) {
	f(d)
}

// Discard drops every diagnostic.
var Discard Sink = SinkFunc(func(Diagnostic) {})

// Collector buffers diagnostics in arrival order.
type Collector struct {
	mu    sync.Mutex
	diags []Diagnostic
}

// Report appends d.
func (c *Collector) Report(d Diagnostic) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.diags = append(c.diags, d)
}

// Diagnostics returns a copy of everything reported so far.
func (c *Collector) Diagnostics() []Diagnostic {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Diagnostic, len(c.diags))
	copy(out, c.diags)
	return out
}

// Kinds returns the kind of every buffered diagnostic, in order.
func (c *Collector) Kinds() []DiagnosticKind {
	c.mu.Lock()
	defer c.mu.Unlock()
	kinds := make([]DiagnosticKind, len(c.diags))
	for i, d := range c.diags {
		kinds[i] = d.Kind
	}
	return kinds
}

// Tee reports every diagnostic to each of sinks in turn. Nil sinks are
// skipped.
func Tee(sinks ...Sink) Sink {
	return SinkFunc(func(d Diagnostic) {
		for _, s := range sinks {
			if s != nil {
				s.Report(d)
			}
		}
	})
}
