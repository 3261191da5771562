package render

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/samber/lo"
	"github.com/trebuchet-org/abitype/internal/domain"
	"github.com/trebuchet-org/abitype/internal/usecase"
	"github.com/trebuchet-org/abitype/internal/validation"
)

// ValidationRenderer renders batch validation results
type ValidationRenderer struct {
	out io.Writer
}

// NewValidationRenderer creates a new validation renderer
func NewValidationRenderer(out io.Writer) *ValidationRenderer {
	return &ValidationRenderer{out: out}
}

// Render prints one section per document followed by a summary
func (r *ValidationRenderer) Render(result *usecase.ValidateDocumentsResult) error {
	for _, doc := range result.Results {
		switch {
		case doc.Err != nil:
			fmt.Fprintln(r.out, FormatError(fmt.Sprintf("%s: %v", doc.Path, doc.Err)))
		case doc.Report.Valid():
			fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("%s is valid", doc.Path)))
		default:
			fmt.Fprintln(r.out, FormatError(fmt.Sprintf("%s has %s", doc.Path, plural(len(doc.Report.Errors), "error"))))
		}
		if doc.Report != nil {
			renderReport(r.out, doc.Report)
		}
	}

	fmt.Fprintln(r.out)
	renderSummary(r.out, result.Summary)
	return nil
}

// renderReport prints the error table and warnings of a report
func renderReport(out io.Writer, report *validation.Report) {
	if !report.Valid() {
		t := newTable(table.Row{"Path", "Kind", "Message", "Suggestion"})
		for _, e := range report.Errors {
			suggestion := ""
			if e.Suggestion != "" {
				suggestion = suggestionStyle.Sprint(e.Suggestion)
			}
			t.AppendRow(table.Row{pathStyle.Sprint(displayPath(e.Path)), kindStyle.Sprint(e.Kind), e.Message, suggestion})
		}
		fmt.Fprintln(out, indent(t.Render(), "   "))
	}
	for _, w := range report.Warnings {
		fmt.Fprintln(out, "   "+FormatWarning(w))
	}
}

func renderSummary(out io.Writer, s usecase.ValidationSummary) {
	fmt.Fprintln(out, sectionHeaderStyle.Sprint("Summary"))
	fmt.Fprintf(out, "  %s checked: %d valid, %d invalid, %d failed to load\n",
		plural(s.Documents, "document"), s.Valid, s.Invalid, s.Failed)
	if s.Warnings > 0 {
		fmt.Fprintf(out, "  %s\n", plural(s.Warnings, "warning"))
	}
	if len(s.ByKind) == 0 {
		return
	}

	kinds := lo.Keys(s.ByKind)
	slices.Sort(kinds)
	for _, kind := range kinds {
		fmt.Fprintf(out, "  %-24s %d\n", kindStyle.Sprint(kind), s.ByKind[kind])
	}
}

// displayPath shows the document root for errors on the document itself
func displayPath(path string) string {
	if path == "" {
		return "$"
	}
	return path
}

func plural(n int, word string) string {
	switch {
	case n == 1:
		return fmt.Sprintf("%d %s", n, word)
	case strings.HasSuffix(word, "y"):
		return fmt.Sprintf("%d %sies", n, strings.TrimSuffix(word, "y"))
	default:
		return fmt.Sprintf("%d %ss", n, word)
	}
}

func indent(s, prefix string) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}

var _ Renderer[*usecase.ValidateDocumentsResult] = (*ValidationRenderer)(nil)

// kindsOf lists the distinct error kinds of a report in first-seen order
func kindsOf(report *validation.Report) []domain.ErrorKind {
	return lo.Uniq(lo.Map(report.Errors, func(e domain.ValidationError, _ int) domain.ErrorKind { return e.Kind }))
}
