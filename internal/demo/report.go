package demo

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/roach88/quarry/internal/roster"
)

// ErrUnknownSection is returned by Run for a section name it does not know.
var ErrUnknownSection = errors.New("unknown section")

// Block is the rendered output of one section.
type Block struct {
	Name  string   `json:"name"`
	Title string   `json:"title"`
	Lines []string `json:"lines"`
}

// Report is the result of running a set of sections.
type Report struct {
	RunID  string  `json:"run_id"`
	Blocks []Block `json:"sections"`
}

// RunIDGenerator produces report identifiers.
type RunIDGenerator interface {
	Generate() string
}

// UUIDv7Generator generates time-sortable UUIDv7 run ids.
type UUIDv7Generator struct{}

// Generate returns a hyphenated UUIDv7.
// Panics if UUID generation fails (should never happen in practice).
func (UUIDv7Generator) Generate() string {
	return uuid.Must(uuid.NewV7()).String()
}

// FixedGenerator always returns the same id. Used for golden comparison.
type FixedGenerator string

// Generate returns the fixed id.
func (g FixedGenerator) Generate() string {
	return string(g)
}

// Run executes the named sections against ds in the given order, or every
// section in report order when names is empty. A nil gen uses UUIDv7.
func Run(ds *roster.Dataset, gen RunIDGenerator, names ...string) (*Report, error) {
	selected, err := resolve(names)
	if err != nil {
		return nil, err
	}
	if gen == nil {
		gen = UUIDv7Generator{}
	}

	report := &Report{RunID: gen.Generate(), Blocks: make([]Block, 0, len(selected))}
	for _, s := range selected {
		lines := s.Lines(ds)
		if lines == nil {
			lines = []string{}
		}
		report.Blocks = append(report.Blocks, Block{Name: s.Name, Title: s.Title, Lines: lines})
	}
	return report, nil
}

func resolve(names []string) ([]Section, error) {
	if len(names) == 0 {
		return Sections(), nil
	}
	selected := make([]Section, 0, len(names))
	for _, name := range names {
		s, ok := FindSection(name)
		if !ok {
			return nil, fmt.Errorf("%w %q", ErrUnknownSection, name)
		}
		selected = append(selected, s)
	}
	return selected, nil
}

// WriteText renders the report as console text: a header per section, one
// line per row, and a blank line after each section.
func (r *Report) WriteText(w io.Writer) error {
	var b strings.Builder
	for _, block := range r.Blocks {
		fmt.Fprintf(&b, "***** %s *****\n", block.Title)
		for _, line := range block.Lines {
			b.WriteString(line)
			b.WriteByte('\n')
		}
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// WriteJSON renders the report as indented JSON without HTML escaping, so
// comparison operators in labels stay readable.
func (r *Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
