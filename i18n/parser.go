package i18n

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Parser decodes catalog file content into the canonical translation
// structure: an outer map keyed by locale identifier, inner maps holding
// (possibly nested) message keys and values.
type Parser interface {
	Parse(ctx context.Context, content []byte) (map[string]map[string]any, error)

	// SupportsExtension reports whether the parser handles files with the
	// given extension. A leading dot is optional.
	SupportsExtension(ext string) bool
}

// ParserForFile returns a parser matching the file extension, or nil when the
// format is not recognized.
func ParserForFile(filename string) Parser {
	ext := ""
	if idx := strings.LastIndex(filename, "."); idx != -1 {
		ext = filename[idx+1:]
	}
	switch strings.ToLower(ext) {
	case "json":
		return NewJSONParser()
	case "yaml", "yml":
		return NewYAMLParser()
	default:
		return nil
	}
}

// JSONParser implements Parser for JSON catalog files.
type JSONParser struct{}

func NewJSONParser() *JSONParser {
	return &JSONParser{}
}

func (p *JSONParser) Parse(ctx context.Context, content []byte) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadCancelled, err)
	}

	var data map[string]any
	if err := json.Unmarshal(content, &data); err != nil {
		return nil, errors.Join(ErrFailedToParseJSON, err)
	}
	return splitByLocale(data)
}

func (p *JSONParser) SupportsExtension(ext string) bool {
	return strings.EqualFold(strings.TrimPrefix(ext, "."), "json")
}

// YAMLParser implements Parser for YAML catalog files.
type YAMLParser struct{}

func NewYAMLParser() *YAMLParser {
	return &YAMLParser{}
}

func (p *YAMLParser) Parse(ctx context.Context, content []byte) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadCancelled, err)
	}

	var data map[string]any
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, errors.Join(ErrFailedToParseYAML, err)
	}
	return splitByLocale(data)
}

func (p *YAMLParser) SupportsExtension(ext string) bool {
	ext = strings.TrimPrefix(ext, ".")
	return strings.EqualFold(ext, "yaml") || strings.EqualFold(ext, "yml")
}

// splitByLocale validates that every top-level entry is a message map. Scalar
// values at the root would silently shadow whole locales otherwise.
func splitByLocale(data map[string]any) (map[string]map[string]any, error) {
	result := make(map[string]map[string]any, len(data))
	for locale, val := range data {
		msgs, ok := val.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("invalid catalog structure for locale %q: expected map, got %T", locale, val)
		}
		result[locale] = msgs
	}
	return result, nil
}
