package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/samber/lo"
	"github.com/trebuchet-org/abitype/internal/domain"
	"github.com/trebuchet-org/abitype/internal/usecase"
)

// TypedDataRenderer renders typed-data validation with the struct graph
type TypedDataRenderer struct {
	out io.Writer
}

// NewTypedDataRenderer creates a new typed-data renderer
func NewTypedDataRenderer(out io.Writer) *TypedDataRenderer {
	return &TypedDataRenderer{out: out}
}

// Render prints the verdict, errors, struct table and type hash
func (r *TypedDataRenderer) Render(result *usecase.ValidateTypedDataResult) error {
	if result.Report.Valid() {
		fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("%s is valid typed data", result.Source)))
	} else {
		kinds := lo.Map(kindsOf(result.Report), func(k domain.ErrorKind, _ int) string { return string(k) })
		fmt.Fprintln(r.out, FormatError(fmt.Sprintf("%s has %s (%s)",
			result.Source, plural(len(result.Report.Errors), "error"), strings.Join(kinds, ", "))))
	}
	renderReport(r.out, result.Report)

	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, sectionHeaderStyle.Sprint("Structs"))
	if len(result.Structs) == 0 {
		fmt.Fprintln(r.out, "  (none)")
	} else {
		t := newTable(table.Row{"Name", "Fields", "References", "Referenced By"})
		for _, s := range result.Structs {
			name := s.Name
			if s.Primary {
				name = suggestionStyle.Sprint(name) + faintStyle.Sprint(" (primary)")
			}
			t.AppendRow(table.Row{name, s.Fields, joinOrDash(s.References), joinOrDash(s.ReferencedBy)})
		}
		fmt.Fprintln(r.out, indent(t.Render(), "  "))
	}

	if result.EncodeType != "" {
		fmt.Fprintln(r.out)
		fmt.Fprintf(r.out, "%s %s\n", sectionHeaderStyle.Sprint("encodeType:"), result.EncodeType)
		fmt.Fprintf(r.out, "%s   %s\n", sectionHeaderStyle.Sprint("typeHash:"), result.TypeHash)
	}
	return nil
}

func joinOrDash(items []string) string {
	if len(items) == 0 {
		return faintStyle.Sprint("-")
	}
	return strings.Join(items, ", ")
}

var _ Renderer[*usecase.ValidateTypedDataResult] = (*TypedDataRenderer)(nil)
