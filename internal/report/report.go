// Package report gathers rolls from several sources into one reply and
// keeps that reply under a length limit.
package report

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/f3rmion/rollone/internal/tables"
)

const (
	// DefaultMaxLength is the longest reply most comment boxes accept.
	DefaultMaxLength = 10000

	// Separator goes between the reports of different sources.
	Separator = "\n\n-----\n\n"

	// NotFound replaces the body when nothing could be rolled.
	NotFound = "I'm sorry, but I can't find anything that I know how to parse.\n\n"

	// clipSlack is kept free below the clip point.
	clipSlack = 200
)

// Request is one ask for rolls, covering every source that had tables.
type Request struct {
	Origin  tables.Origin
	Sources []*tables.Source
}

// NewRequest starts an empty request.
func NewRequest(origin tables.Origin) *Request {
	return &Request{Origin: origin}
}

// Add keeps src if it has any tables and reports whether it did.
func (r *Request) Add(src *tables.Source) bool {
	if src == nil || !src.HasTables() {
		return false
	}
	r.Sources = append(r.Sources, src)
	return true
}

func (r *Request) String() string {
	return r.Origin.Via()
}

// Roll rolls every source and joins their reports. Sources that produce
// no roll are left out; the result is empty when none did.
func (r *Request) Roll(rng tables.Rand) string {
	parts := make([]string, 0, len(r.Sources))
	for _, src := range r.Sources {
		if out, ok := src.Roll(rng); ok {
			parts = append(parts, out)
		}
	}
	return strings.Join(parts, Separator)
}

// Options controls how a reply is composed.
type Options struct {
	MaxLength int // 0 means unlimited
	Footer    string
}

// Reply is a composed reply.
type Reply struct {
	Text      string
	OK        bool // false when the body was empty
	Truncated bool
}

// Compose appends the footer to body and shortens the result to fit
// MaxLength, adding a notice that it was shortened. An empty body becomes
// the NotFound message.
func Compose(body string, opts Options) Reply {
	reply := Reply{OK: body != ""}
	if !reply.OK {
		body = NotFound
	}
	reply.Text = body + opts.Footer

	if opts.MaxLength <= 0 || len(reply.Text) <= opts.MaxLength {
		return reply
	}

	notice := fmt.Sprintf("\n\n**This reply would exceed %d characters and has been shortened.", opts.MaxLength)
	clip := opts.MaxLength - len(notice) - len(opts.Footer) - clipSlack
	reply.Text = cut(reply.Text, clip) + notice + opts.Footer
	reply.Truncated = true

	// Tiny limits cannot hold the notice and footer either.
	reply.Text = cut(reply.Text, opts.MaxLength)
	return reply
}

// cut returns at most n bytes of s without splitting a UTF-8 sequence.
func cut(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if n >= len(s) {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

// Fit keeps whole parts, in order, while their joined length stays within
// budget, and returns how many were dropped. Callers use it to shorten a
// reply at table boundaries rather than mid-line.
func Fit(parts []string, sep string, budget int) ([]string, int) {
	if budget <= 0 {
		return parts, 0
	}
	used := 0
	for i, p := range parts {
		need := len(p)
		if i > 0 {
			need += len(sep)
		}
		if used+need > budget {
			return parts[:i], len(parts) - i
		}
		used += need
	}
	return parts, 0
}
