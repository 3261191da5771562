package fs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/trebuchet-org/abitype/internal/domain"
	"github.com/trebuchet-org/abitype/internal/usecase"
	"gopkg.in/yaml.v3"
)

// StdinPath makes the loader read the document from standard input
const StdinPath = "-"

// DocumentLoaderAdapter implements DocumentLoader for JSON and YAML files
type DocumentLoaderAdapter struct {
	stdin io.Reader
	log   *slog.Logger
}

// NewDocumentLoaderAdapter creates a new DocumentLoaderAdapter
func NewDocumentLoaderAdapter(log *slog.Logger) *DocumentLoaderAdapter {
	return &DocumentLoaderAdapter{stdin: os.Stdin, log: log}
}

// Load reads path and recognises its sections. Accepted shapes are a bare ABI
// array, a single ABI entry object, a compiler artifact with an "abi" field and
// an EIP-712 payload with a "types" field.
func (l *DocumentLoaderAdapter) Load(ctx context.Context, path string) (*domain.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := l.read(path)
	if err != nil {
		return nil, err
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json", ".abi", "":
	case ".yaml", ".yml":
		if data, err = yamlToJSON(data); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", domain.ErrMalformedDocument, path, err)
		}
	default:
		return nil, fmt.Errorf("%w: %s has extension %q", domain.ErrUnsupportedFormat, path, ext)
	}

	doc, err := decodeDocument(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrMalformedDocument, path, err)
	}
	doc.Source = path

	l.log.Debug("loaded document", "path", path, "entries", len(doc.ABI), "structs", len(doc.Types))
	return doc, nil
}

func (l *DocumentLoaderAdapter) read(path string) ([]byte, error) {
	if path == StdinPath {
		data, err := io.ReadAll(l.stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}
	return data, nil
}

func decodeDocument(data []byte) (*domain.Document, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, fmt.Errorf("document is empty")
	}

	doc := &domain.Document{}
	switch data[0] {
	case '[':
		return doc, decodeABI(doc, data)
	case '{':
	default:
		return nil, fmt.Errorf("expected a JSON array or object")
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, err
	}

	if raw, ok := fields["abi"]; ok {
		// some toolchains store the ABI as a JSON encoded string
		var nested string
		if json.Unmarshal(raw, &nested) == nil {
			raw = json.RawMessage(nested)
		}
		if err := decodeABI(doc, raw); err != nil {
			return nil, fmt.Errorf("abi: %w", err)
		}
	} else if _, ok := fields["type"]; ok {
		if err := decodeABI(doc, append(append([]byte{'['}, data...), ']')); err != nil {
			return nil, err
		}
	}

	if raw, ok := fields["types"]; ok {
		if err := json.Unmarshal(raw, &doc.Types); err != nil {
			return nil, fmt.Errorf("types: %w", err)
		}
		doc.HasTypes = true
	}
	if raw, ok := fields["primaryType"]; ok {
		if err := json.Unmarshal(raw, &doc.PrimaryType); err != nil {
			return nil, fmt.Errorf("primaryType: %w", err)
		}
	}
	if raw, ok := fields["domain"]; ok {
		if err := json.Unmarshal(raw, &doc.Domain); err != nil {
			return nil, fmt.Errorf("domain: %w", err)
		}
	}

	if !doc.HasABI && !doc.HasTypes {
		return nil, fmt.Errorf("document has neither an abi nor a types section")
	}
	return doc, nil
}

func decodeABI(doc *domain.Document, raw []byte) error {
	if err := json.Unmarshal(raw, &doc.ABI); err != nil {
		return err
	}
	doc.RawABI = json.RawMessage(raw)
	doc.HasABI = true
	return nil
}

// yamlToJSON re-encodes a YAML document as JSON so that one decoder handles both
func yamlToJSON(data []byte) ([]byte, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	normalized, err := normalizeYAML(v)
	if err != nil {
		return nil, err
	}
	return json.Marshal(normalized)
}

func normalizeYAML(v any) (any, error) {
	switch t := v.(type) {
	case map[string]any:
		for k, item := range t {
			n, err := normalizeYAML(item)
			if err != nil {
				return nil, err
			}
			t[k] = n
		}
		return t, nil
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, item := range t {
			key, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("mapping key %v is not a string", k)
			}
			n, err := normalizeYAML(item)
			if err != nil {
				return nil, err
			}
			out[key] = n
		}
		return out, nil
	case []any:
		for i, item := range t {
			n, err := normalizeYAML(item)
			if err != nil {
				return nil, err
			}
			t[i] = n
		}
		return t, nil
	default:
		return v, nil
	}
}

// Ensure the adapter implements the interface
var _ usecase.DocumentLoader = (*DocumentLoaderAdapter)(nil)
