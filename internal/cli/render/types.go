package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/trebuchet-org/abitype/internal/grammar"
	"github.com/trebuchet-org/abitype/internal/usecase"
)

// ClassifyRenderer renders type classifications as a table
type ClassifyRenderer struct {
	out io.Writer
}

// NewClassifyRenderer creates a new classify renderer
func NewClassifyRenderer(out io.Writer) *ClassifyRenderer {
	return &ClassifyRenderer{out: out}
}

// Render prints one row per classified type and the reasons for rejected ones
func (r *ClassifyRenderer) Render(result *usecase.ClassifyTypesResult) error {
	t := newTable(table.Row{"Input", "Status", "Kind", "Canonical", "Dims", "Host Type", "EIP-712"})
	var reasons []string
	for _, c := range result.Types {
		status := suggestionStyle.Sprint(c.Type.Status)
		if c.Type.Status != grammar.StatusRecognized {
			status = kindStyle.Sprint(c.Type.Status)
			reasons = append(reasons, fmt.Sprintf("%s: %s", c.Input, c.Type.Reason))
		}
		t.AppendRow(table.Row{
			c.Input,
			status,
			c.Type.Kind,
			c.Canonical,
			formatDims(c.Type.Dims),
			c.HostType,
			yesNo(c.TypedData),
		})
	}
	fmt.Fprintln(r.out, t.Render())

	for _, reason := range reasons {
		fmt.Fprintln(r.out, FormatWarning(reason))
	}
	return nil
}

// EnumerateRenderer renders enumerated array forms one per line
type EnumerateRenderer struct {
	out io.Writer
}

// NewEnumerateRenderer creates a new enumerate renderer
func NewEnumerateRenderer(out io.Writer) *EnumerateRenderer {
	return &EnumerateRenderer{out: out}
}

// Render prints every form and a note when the listing was cut short
func (r *EnumerateRenderer) Render(result *usecase.EnumerateTypesResult) error {
	for _, form := range result.Forms {
		fmt.Fprintln(r.out, form)
	}
	if result.Truncated {
		fmt.Fprintln(r.out, faintStyle.Sprintf("... %d of %d forms shown, raise --limit to see more", len(result.Forms), result.Total))
	}
	return nil
}

// formatDims renders array dimensions outermost last, e.g. "2, dyn"
func formatDims(dims []int) string {
	if len(dims) == 0 {
		return ""
	}
	parts := make([]string, len(dims))
	for i, d := range dims {
		if d == grammar.DynamicLength {
			parts[i] = "dyn"
		} else {
			parts[i] = strconv.Itoa(d)
		}
	}
	return strings.Join(parts, ", ")
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

var (
	_ Renderer[*usecase.ClassifyTypesResult]  = (*ClassifyRenderer)(nil)
	_ Renderer[*usecase.EnumerateTypesResult] = (*EnumerateRenderer)(nil)
)
