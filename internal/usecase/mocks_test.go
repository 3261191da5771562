package usecase_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/abitype/internal/domain"
	"github.com/trebuchet-org/abitype/internal/domain/config"
	"github.com/trebuchet-org/abitype/internal/grammar"
	"github.com/trebuchet-org/abitype/internal/usecase"
	"github.com/trebuchet-org/abitype/internal/validation"
)

// MockDocumentLoader is a mock implementation of DocumentLoader
type MockDocumentLoader struct {
	mock.Mock
}

func (m *MockDocumentLoader) Load(ctx context.Context, path string) (*domain.Document, error) {
	args := m.Called(ctx, path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Document), args.Error(1)
}

// MockCompatChecker is a mock implementation of CompatChecker
type MockCompatChecker struct {
	mock.Mock
}

func (m *MockCompatChecker) CheckABI(ctx context.Context, raw []byte) []string {
	args := m.Called(ctx, raw)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]string)
}

// MockEntrySelector is a mock implementation of EntrySelector
type MockEntrySelector struct {
	mock.Mock
}

func (m *MockEntrySelector) SelectEntry(ctx context.Context, entries []usecase.EntrySummary, prompt string) (*usecase.EntrySummary, error) {
	args := m.Called(ctx, entries, prompt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.EntrySummary), args.Error(1)
}

// MockProgressSink records progress events
type MockProgressSink struct {
	mu     sync.Mutex
	events []usecase.ProgressEvent
}

func (m *MockProgressSink) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, event)
}

func (m *MockProgressSink) Info(string)  {}
func (m *MockProgressSink) Error(string) {}

func (m *MockProgressSink) stages() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	stages := make([]string, 0, len(m.events))
	for _, e := range m.events {
		stages = append(stages, e.Stage)
	}
	return stages
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newRuntimeConfig() *config.RuntimeConfig {
	return &config.RuntimeConfig{
		NonInteractive: true,
		Grammar:        config.DefaultGrammarConfig(),
		Validate:       config.DefaultValidateConfig(),
	}
}

func newClassifier(cfg *config.RuntimeConfig) *grammar.Classifier {
	return grammar.NewClassifier(cfg.Grammar)
}

func newDocumentValidator(c *grammar.Classifier) *validation.DocumentValidator {
	return validation.NewDocumentValidator(validation.NewABIValidator(c), validation.NewTypedDataValidator(c))
}

func abiDocument(t *testing.T, source, raw string) *domain.Document {
	t.Helper()
	doc := &domain.Document{Source: source, HasABI: true, RawABI: json.RawMessage(raw)}
	require.NoError(t, json.Unmarshal([]byte(raw), &doc.ABI))
	return doc
}

func typedDataDocument(t *testing.T, source, raw string) *domain.Document {
	t.Helper()
	var payload struct {
		Types       domain.TypedData       `json:"types"`
		PrimaryType string                 `json:"primaryType"`
		Domain      domain.TypedDataDomain `json:"domain"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &payload))
	return &domain.Document{
		Source:      source,
		Types:       payload.Types,
		HasTypes:    true,
		PrimaryType: payload.PrimaryType,
		Domain:      payload.Domain,
	}
}

const erc20ABI = `[
	{"type":"function","name":"transfer","inputs":[{"name":"to","type":"address"},{"name":"amount","type":"uint256"}],"outputs":[{"name":"","type":"bool"}],"stateMutability":"nonpayable"},
	{"type":"function","name":"approve","inputs":[{"name":"spender","type":"address"},{"name":"amount","type":"uint256"}],"outputs":[{"name":"","type":"bool"}],"stateMutability":"nonpayable"},
	{"type":"function","name":"approve","inputs":[{"name":"spender","type":"address"}],"outputs":[{"name":"","type":"bool"}],"stateMutability":"nonpayable"},
	{"type":"event","name":"Transfer","inputs":[{"name":"from","type":"address","indexed":true},{"name":"to","type":"address","indexed":true},{"name":"value","type":"uint256","indexed":false}]},
	{"type":"receive","stateMutability":"payable"}
]`

const mailTypedData = `{
	"types": {
		"EIP712Domain": [
			{"name": "name", "type": "string"},
			{"name": "version", "type": "string"},
			{"name": "chainId", "type": "uint256"},
			{"name": "verifyingContract", "type": "address"}
		],
		"Person": [{"name": "name", "type": "string"}, {"name": "wallet", "type": "address"}],
		"Mail": [{"name": "from", "type": "Person"}, {"name": "to", "type": "Person"}, {"name": "contents", "type": "string"}]
	},
	"primaryType": "Mail",
	"domain": {"name": "Ether Mail", "version": "1", "chainId": 1, "verifyingContract": "0xCcCCccccCCCCcCCCCCCcCcCccCcCCCcCcccccccC"}
}`

func grammarBuilder(cfg *config.RuntimeConfig) *grammar.Builder {
	return grammar.NewBuilder(newClassifier(cfg))
}
