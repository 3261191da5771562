package progress

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/trebuchet-org/abitype/internal/domain/config"
	"github.com/trebuchet-org/abitype/internal/usecase"
)

func TestFormatEvent(t *testing.T) {
	assert.Contains(t, formatEvent(usecase.ProgressEvent{Current: 3, Total: 10, Message: "a.json"}), "[3/10]")
	assert.Contains(t, formatEvent(usecase.ProgressEvent{Current: 3, Total: 10, Message: "a.json"}), "a.json")
	assert.Equal(t, "Loading ABI", formatEvent(usecase.ProgressEvent{Message: "Loading ABI"}))
}

func TestSpinnerProgressReporter(t *testing.T) {
	var buf bytes.Buffer
	r := newSpinnerProgressReporter(&buf)

	// the spinner stays inactive when the writer is not a terminal
	r.OnProgress(context.Background(), usecase.ProgressEvent{Stage: "validating", Message: "a.json", Spinner: true})
	r.Info("loaded 3 documents")
	r.Error("failed to load b.json")
	r.OnProgress(context.Background(), usecase.ProgressEvent{Stage: "complete"})

	assert.Contains(t, buf.String(), "loaded 3 documents\n")
	assert.Contains(t, buf.String(), "failed to load b.json\n")
	assert.False(t, r.spinner.Active())
}

func TestNewSink(t *testing.T) {
	assert.IsType(t, &NopSink{}, NewSink(&config.RuntimeConfig{JSON: true}))
	assert.IsType(t, &NopSink{}, NewSink(&config.RuntimeConfig{NonInteractive: true}))
	assert.IsType(t, &SpinnerProgressReporter{}, NewSink(&config.RuntimeConfig{}))
}
