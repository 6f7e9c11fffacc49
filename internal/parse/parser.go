package parse

import (
	"bufio"
	"io"
	"strconv"

	"github.com/federico-sauter/browse/internal/model"
)

// Outcome classifies the result of reading one line from the source stream.
type Outcome int

const (
	Parsed Outcome = iota
	Malformed
	EndOfStream
)

// Per-field buffer capacities. Each bound includes one slot reserved for
// a terminator, so the stored text caps at capacity-1 bytes; anything
// beyond that is dropped while state tracking continues.
const (
	MaxPathLen        = 256
	MaxLineDigits     = 32
	MaxDescriptionLen = 256
)

const nonprintRepl = '.'

// DefaultSeparator matches grep -n style output: path:line:text.
const DefaultSeparator = ':'

// DefaultTabStop is the number of spaces a tab in the match text expands to.
const DefaultTabStop = 4

type state int

const (
	statePath state = iota
	stateLine
	stateDescription
)

// field is a bounded accumulator for one record field.
type field struct {
	buf []byte
	max int
}

// add appends n copies of ch, silently dropping whatever exceeds the bound.
func (f *field) add(ch byte, n int) {
	for ; n > 0; n-- {
		if len(f.buf) < f.max {
			f.buf = append(f.buf, ch)
		}
	}
}

// Parser turns a byte stream of separator-delimited records into Matches.
// Malformed lines are skipped, never fatal.
type Parser struct {
	r       *bufio.Reader
	sep     byte
	tabStop int
}

func New(r io.Reader, sep byte, tabStop int) *Parser {
	if tabStop < 1 {
		tabStop = DefaultTabStop
	}
	return &Parser{r: bufio.NewReader(r), sep: sep, tabStop: tabStop}
}

// Next consumes one line and reports its outcome. The returned Match is
// meaningful only when the outcome is Parsed.
//
// The separator advances the field state exactly twice per line; any
// further separators are literal description content. A record exists
// only once a newline terminates it: a dangling partial line at end of
// stream is discarded, and a line that never reaches the description
// field is Malformed.
func (p *Parser) Next() (Outcome, model.Match) {
	path := field{max: MaxPathLen - 1}
	lineNum := field{max: MaxLineDigits - 1}
	desc := field{max: MaxDescriptionLen - 1}

	cur := &path
	st := statePath

	ch, err := p.r.ReadByte()
	for ; err == nil; ch, err = p.r.ReadByte() {
		switch {
		case ch == p.sep && st != stateDescription:
			if st == statePath {
				cur = &lineNum
			} else {
				cur = &desc
			}
			st++

		case ch == '\n':
			if st != stateDescription {
				return Malformed, model.Match{}
			}
			// A non-numeric line field deliberately degrades to 0
			// rather than failing the record.
			n, _ := strconv.Atoi(string(lineNum.buf))
			if n < 0 {
				n = 0
			}
			return Parsed, model.NewMatch(string(path.buf), n, string(desc.buf))

		case ch == '\t':
			cur.add(' ', p.tabStop)

		case ch < 0x20 || ch > 0x7e:
			cur.add(nonprintRepl, 1)

		default:
			cur.add(ch, 1)
		}
	}
	return EndOfStream, model.Match{}
}

// Drain consumes the stream to exhaustion and returns every parsed match
// in input order.
func (p *Parser) Drain() []model.Match {
	var matches []model.Match
	for {
		outcome, m := p.Next()
		switch outcome {
		case Parsed:
			matches = append(matches, m)
		case EndOfStream:
			return matches
		}
	}
}
