// Package printer renders hand-off record lists for inspection. The layout
// follows the classic firmware "HOB type structure" display: one line per
// record with its offset, physical address, type, and length, plus the typed
// detail for resource descriptors and GUID payloads.
package printer

import (
	"io"

	"github.com/firmworks/fspkit/hob"
)

// Format specifies the output format for printing.
type Format string

const (
	// FormatText outputs human-readable text format.
	FormatText Format = "text"

	// FormatJSON outputs JSON format.
	FormatJSON Format = "json"
)

// Options controls printing behavior.
type Options struct {
	// Format specifies output format (text, json).
	// Default: FormatText
	Format Format

	// ShowPayloadBytes includes a bounded hex preview of GUID payload data.
	// Default: false
	ShowPayloadBytes bool

	// MaxPayloadBytes limits how many payload bytes to display.
	// Default: 32
	MaxPayloadBytes int
}

// DefaultOptions returns sensible defaults for printing.
func DefaultOptions() Options {
	return Options{
		Format:          FormatText,
		MaxPayloadBytes: 32,
	}
}

// Printer renders one hand-off list to a writer.
type Printer struct {
	list   *hob.List
	writer io.Writer
	opts   Options
}

// New creates a Printer for the given list.
func New(l *hob.List, w io.Writer, opts Options) *Printer {
	if opts.MaxPayloadBytes == 0 {
		opts.MaxPayloadBytes = 32
	}
	return &Printer{list: l, writer: w, opts: opts}
}

// PrintTypeStructure walks the list and renders every record. A corrupt list
// stops printing at the violation and returns the traversal error; everything
// printed up to that point remains valid output.
func (p *Printer) PrintTypeStructure() error {
	switch p.opts.Format {
	case FormatJSON:
		return p.printJSON()
	default:
		return p.printText()
	}
}
