package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/yaml.v3"

	"layout-inspector/internal/diagnostic"
	"layout-inspector/internal/layout"
)

// minNameWidth matches the column width of the classic sizeof/offset listing.
const minNameWidth = 15

// Renderer writes layouts in the selected mode.
type Renderer struct {
	out     io.Writer
	errOut  io.Writer
	mode    Mode
	verbose bool
}

// NewRenderer creates a Renderer writing results to out and diagnostics to errOut.
func NewRenderer(out, errOut io.Writer, mode Mode, verbose bool) *Renderer {
	return &Renderer{
		out:     out,
		errOut:  errOut,
		mode:    mode,
		verbose: verbose,
	}
}

// Layouts renders record layouts in order.
func (r *Renderer) Layouts(results []*layout.Result) error {
	switch r.mode {
	case ModeJSON:
		return r.json(results)
	case ModeYAML:
		return r.yaml(results)
	case ModeTable:
		for _, res := range results {
			r.layoutTable(res)
		}

		return nil
	default:
		for i, res := range results {
			if i > 0 {
				_, _ = fmt.Fprintln(r.out)
			}

			r.layoutText(res)
		}

		return nil
	}
}

func nameWidth(res *layout.Result) int {
	width := minNameWidth
	for _, f := range res.Fields {
		width = max(width, len(f.Name)+3)
	}

	return width
}

// layoutText prints the size line, then one line per field with its offset.
func (r *Renderer) layoutText(res *layout.Result) {
	width := nameWidth(res)

	_, _ = fmt.Fprintf(r.out, "%-*s%d\n", width, "sizeof("+res.Record+"):", res.Size)
	_, _ = fmt.Fprintf(r.out, "%-*s%s\n", width, "Member:", "Offset:")

	for _, f := range res.Fields {
		_, _ = fmt.Fprintf(r.out, "%-*s%d\n", width, f.Name, f.Offset)
	}

	if r.verbose {
		internal := res.PaddingTotal() - res.TrailingPadding
		_, _ = fmt.Fprintf(r.out, "%-*s%d bytes (internal %d, trailing %d)\n",
			width, "padding:", res.PaddingTotal(), internal, res.TrailingPadding)
	}
}

func (r *Renderer) layoutTable(res *layout.Result) {
	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleLight)
	t.SetTitle("%s (size %d, align %d)", res.Record, res.Size, res.Align)

	t.AppendHeader(table.Row{"Field", "Offset", "Size", "Align", "Padding"})

	for _, f := range res.Fields {
		t.AppendRow(table.Row{f.Name, f.Offset, f.Size, f.Align, f.Padding})
	}

	t.AppendFooter(table.Row{"total", res.Size, res.DataSize(), res.Align, res.PaddingTotal()})
	t.Render()
}

func (r *Renderer) json(v any) error {
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}

func (r *Renderer) yaml(v any) error {
	enc := yaml.NewEncoder(r.out)
	enc.SetIndent(2)

	if err := enc.Encode(v); err != nil {
		return err
	}

	return enc.Close()
}

// Comparison pairs a layout with the layout of its reordered fields.
type Comparison struct {
	Before *layout.Result `json:"before" yaml:"before"`
	After  *layout.Result `json:"after" yaml:"after"`
}

// Savings returns the size difference.
func (c Comparison) Savings() layout.Savings {
	return layout.Compare(c.Before, c.After)
}

func fieldOrder(res *layout.Result) string {
	names := make([]string, 0, len(res.Fields))
	for _, f := range res.Fields {
		names = append(names, f.Name)
	}

	return strings.Join(names, ", ")
}

// Comparisons renders original versus optimized layouts.
func (r *Renderer) Comparisons(cmps []Comparison) error {
	switch r.mode {
	case ModeJSON:
		return r.json(cmps)
	case ModeYAML:
		return r.yaml(cmps)
	case ModeTable:
		t := table.NewWriter()
		t.SetOutputMirror(r.out)
		t.SetStyle(table.StyleLight)
		t.AppendHeader(table.Row{"Record", "Size", "Optimized", "Saved", "Suggested order"})

		var saved uint64

		for _, c := range cmps {
			s := c.Savings()
			saved += s.Bytes()
			t.AppendRow(table.Row{s.Record, s.Before, s.After, s.Bytes(), fieldOrder(c.After)})
		}

		t.AppendFooter(table.Row{"", "", "", saved, ""})
		t.Render()

		return nil
	default:
		for i, c := range cmps {
			if i > 0 {
				_, _ = fmt.Fprintln(r.out)
			}

			s := c.Savings()
			_, _ = fmt.Fprintf(r.out, "%s: %d -> %d bytes (saves %d)\n", s.Record, s.Before, s.After, s.Bytes())
			_, _ = fmt.Fprintf(r.out, "  order: %s\n", fieldOrder(c.After))

			if r.verbose {
				r.layoutText(c.After)
			}
		}

		return nil
	}
}

// Diagnostics prints every diagnostic on its own line, errors first.
func (r *Renderer) Diagnostics(d *diagnostic.Diagnostics) {
	if d == nil {
		return
	}

	for _, diag := range d.All() {
		if diag.Severity == diagnostic.DiagnosticInfo && !r.verbose {
			continue
		}

		_, _ = fmt.Fprintf(r.errOut, "%s: %s\n", diag.Severity, diag)
	}
}
