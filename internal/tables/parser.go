package tables

// DefaultMaxDepth is how many inline tables may nest inside one another.
const DefaultMaxDepth = 4

// Parser turns text into tables. It holds no per-parse state, so one Parser
// may be shared across goroutines as long as its Sink is.
type Parser struct {
	sink     Sink
	maxDepth int
}

// Option configures a Parser.
type Option func(*Parser)

// WithSink routes diagnostics to s.
func WithSink(s Sink) Option {
	return func(p *Parser) {
		if s != nil {
			p.sink = s
		}
	}
}

// WithMaxDepth caps inline table nesting. Values below 1 keep the default.
func WithMaxDepth(n int) Option {
	return func(p *Parser) {
		if n >= 1 {
			p.maxDepth = n
		}
	}
}

// NewParser creates a parser that discards diagnostics unless told otherwise.
func NewParser(opts ...Option) *Parser {
	p := &Parser{
		sink:     Discard,
		maxDepth: DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// MaxDepth returns the inline nesting cap.
func (p *Parser) MaxDepth() int {
	return p.maxDepth
}

func (p *Parser) report(kind DiagnosticKind, msg, text string) {
	p.sink.Report(Diagnostic{Kind: kind, Message: msg, Text: text})
}
