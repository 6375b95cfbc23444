package i18n

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
)

// Parser decodes a catalog document into language -> flat key -> message.
type Parser interface {
	Parse(ctx context.Context, content []byte) (map[string]map[string]string, error)

	// SupportsFileExtension reports whether the parser handles ext, with or without the leading dot.
	SupportsFileExtension(ext string) bool
}

// NewParserForFile returns a parser based on the file extension, or nil.
func NewParserForFile(filename string) Parser {
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), ".")) {
	case "json":
		return NewJSONParser()
	case "yaml", "yml":
		return NewYAMLParser()
	default:
		return nil
	}
}

// flattenDocument turns a decoded document into per-language flat maps.
func flattenDocument(doc map[string]any) (map[string]map[string]string, error) {
	result := make(map[string]map[string]string, len(doc))
	for lang, val := range doc {
		tree, ok := asStringMap(val)
		if !ok {
			return nil, fmt.Errorf("%w: language %q: expected map, got %T", ErrInvalidStructure, lang, val)
		}

		messages := make(map[string]string)
		if err := flatten("", tree, messages); err != nil {
			return nil, fmt.Errorf("language %q: %w", lang, err)
		}
		result[lang] = messages
	}
	return result, nil
}

func flatten(prefix string, tree map[string]any, out map[string]string) error {
	for k, v := range tree {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}

		if sub, ok := asStringMap(v); ok {
			if err := flatten(key, sub, out); err != nil {
				return err
			}
			continue
		}

		switch val := v.(type) {
		case nil:
			// "key: ~" declares nothing
		case string:
			out[key] = val
		case bool, int, int64, uint64, float64:
			out[key] = fmt.Sprint(val)
		default:
			return fmt.Errorf("%w: key %q: unsupported value of type %T", ErrInvalidStructure, key, v)
		}
	}
	return nil
}

// asStringMap accepts both map[string]any and map[any]any with string keys.
func asStringMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			ks, ok := k.(string)
			if !ok {
				return nil, false
			}
			out[ks] = val
		}
		return out, true
	default:
		return nil, false
	}
}
