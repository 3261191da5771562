package interactive

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/manifoldco/promptui"
	"github.com/sahilm/fuzzy"
	"github.com/trebuchet-org/abitype/internal/domain/config"
	"github.com/trebuchet-org/abitype/internal/usecase"
)

// SelectorAdapter handles interactive selection
type SelectorAdapter struct {
	config *config.RuntimeConfig
}

// NewSelectorAdapter creates a new selector adapter
func NewSelectorAdapter(cfg *config.RuntimeConfig) (*SelectorAdapter, error) {
	return &SelectorAdapter{config: cfg}, nil
}

// SelectEntry selects an ABI entry from a list
func (s *SelectorAdapter) SelectEntry(ctx context.Context, entries []usecase.EntrySummary, prompt string) (*usecase.EntrySummary, error) {
	// In non-interactive mode, we can't select
	if s.config.NonInteractive {
		return nil, fmt.Errorf("interactive selection not available in non-interactive mode")
	}

	if len(entries) == 0 {
		return nil, fmt.Errorf("no entries provided for selection")
	}

	if len(entries) == 1 {
		return &entries[0], nil
	}

	options := formatEntryOptions(entries)

	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}",
		Active:   "▸ {{ . | cyan }}",
		Inactive: "  {{ . | faint }}",
		Selected: "✓ {{ . | green }}",
		Help:     color.New(color.FgYellow).Sprint("Use arrow keys to navigate, Enter to select"),
	}

	promptSelect := promptui.Select{
		Label:             prompt,
		Items:             options,
		Templates:         templates,
		Size:              10,
		StartInSearchMode: true,
		Searcher:          createFuzzySearchFunc(plainEntryOptions(entries)),
	}

	index, _, err := promptSelect.Run()
	if err != nil {
		return nil, fmt.Errorf("selection cancelled: %w", err)
	}

	return &entries[index], nil
}

// formatEntryOptions creates display strings like "function transfer(address,uint256) [0xa9059cbb]"
func formatEntryOptions(entries []usecase.EntrySummary) []string {
	options := make([]string, len(entries))
	for i, e := range entries {
		kind := color.New(color.FgYellow).Sprint(e.Type)
		label := e.Signature
		if label == "" {
			label = e.Name
		}
		label = color.New(color.FgWhite, color.Bold).Sprint(label)

		if e.Selector != "" {
			options[i] = fmt.Sprintf("%s %s %s", kind, label, color.New(color.FgBlue).Sprintf("[%s]", shortSelector(e.Selector)))
		} else {
			options[i] = fmt.Sprintf("%s %s", kind, label)
		}
	}
	return options
}

// plainEntryOptions returns the searchable text of each entry, without colors
func plainEntryOptions(entries []usecase.EntrySummary) []string {
	options := make([]string, len(entries))
	for i, e := range entries {
		options[i] = strings.TrimSpace(fmt.Sprintf("%s %s %s %s", e.Type, e.Name, e.Signature, e.Selector))
	}
	return options
}

func shortSelector(selector string) string {
	if len(selector) > 10 {
		return selector[:10] + "…"
	}
	return selector
}

// createFuzzySearchFunc creates a fuzzy search function for promptui
func createFuzzySearchFunc(items []string) func(input string, index int) bool {
	return func(input string, index int) bool {
		// Empty search shows all items
		if input == "" {
			return true
		}

		input = strings.ToLower(input)
		item := strings.ToLower(items[index])

		if strings.Contains(item, input) {
			return true
		}

		pattern := fuzzy.Find(input, []string{item})
		return len(pattern) > 0
	}
}

// Ensure the adapter implements the interface
var _ usecase.EntrySelector = (*SelectorAdapter)(nil)
