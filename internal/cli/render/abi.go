package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/trebuchet-org/abitype/internal/domain"
	"github.com/trebuchet-org/abitype/internal/usecase"
)

// InspectRenderer renders ABI entry listings and the selected entry
type InspectRenderer struct {
	out io.Writer
}

// NewInspectRenderer creates a new inspect renderer
func NewInspectRenderer(out io.Writer) *InspectRenderer {
	return &InspectRenderer{out: out}
}

// Render prints the selected entry in detail, or the entry table when nothing was selected
func (r *InspectRenderer) Render(result *usecase.InspectABIResult) error {
	if result.Selected != nil {
		r.renderEntry(*result.Selected)
	} else {
		fmt.Fprintln(r.out, sectionHeaderStyle.Sprintf("%s (%s)", result.Source, plural(len(result.Entries), "entry")))
		t := newTable(table.Row{"#", "Kind", "Signature", "Selector", "Mutability"})
		for _, e := range result.Entries {
			sig := e.Signature
			if sig == "" {
				sig = faintStyle.Sprintf("%s (invalid)", e.Name)
			}
			t.AppendRow(table.Row{e.Index, title(string(e.Type)), sig, e.Selector, e.StateMutability})
		}
		fmt.Fprintln(r.out, t.Render())
	}

	if !result.Report.Valid() {
		fmt.Fprintln(r.out)
		fmt.Fprintln(r.out, FormatWarning(fmt.Sprintf("the ABI has %s", plural(len(result.Report.Errors), "structural error"))))
		renderReport(r.out, result.Report)
	}
	return nil
}

func (r *InspectRenderer) renderEntry(e usecase.EntrySummary) {
	fmt.Fprintf(r.out, "%s %s\n", kindStyle.Sprint(title(string(e.Type))), sectionHeaderStyle.Sprint(e.Signature))
	if e.Selector != "" {
		fmt.Fprintf(r.out, "  selector:   %s\n", e.Selector)
	}
	if e.StateMutability != "" {
		fmt.Fprintf(r.out, "  mutability: %s\n", e.StateMutability)
	}
	if len(e.Inputs) > 0 {
		fmt.Fprintln(r.out, "  inputs:")
		renderParams(r.out, e.Inputs, "    ")
	}
	if len(e.Outputs) > 0 {
		fmt.Fprintln(r.out, "  outputs:")
		renderParams(r.out, e.Outputs, "    ")
	}
}

// renderParams prints parameters as a tree, expanding tuple components
func renderParams(out io.Writer, params []domain.AbiParameter, prefix string) {
	for i, p := range params {
		branch, next := "├─ ", "│  "
		if i == len(params)-1 {
			branch, next = "└─ ", "   "
		}

		var attrs []string
		if p.Indexed != nil && *p.Indexed {
			attrs = append(attrs, "indexed")
		}
		if p.InternalType != "" && p.InternalType != p.Type {
			attrs = append(attrs, p.InternalType)
		}

		line := prefix + branch + pathStyle.Sprint(p.Type)
		if p.Name != "" {
			line += " " + p.Name
		}
		if len(attrs) > 0 {
			line += faintStyle.Sprintf(" [%s]", strings.Join(attrs, ", "))
		}
		fmt.Fprintln(out, line)

		if len(p.Components) > 0 {
			renderParams(out, p.Components, prefix+next)
		}
	}
}

var _ Renderer[*usecase.InspectABIResult] = (*InspectRenderer)(nil)
