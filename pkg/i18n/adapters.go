package i18n

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"path"
	"slices"
)

// Adapter loads catalog documents from a source.
type Adapter interface {
	Load(ctx context.Context) (map[string]map[string]string, error)
}

// MapAdapter serves an in-memory catalog.
type MapAdapter struct {
	Data map[string]map[string]string
}

func (a *MapAdapter) Load(_ context.Context) (map[string]map[string]string, error) {
	if a.Data == nil {
		return make(map[string]map[string]string), nil
	}
	return a.Data, nil
}

// FileAdapter reads a single catalog file from disk.
type FileAdapter struct {
	parser Parser
	path   string
}

// NewFileAdapter picks the parser from the file extension.
func NewFileAdapter(path string) *FileAdapter {
	return &FileAdapter{parser: NewParserForFile(path), path: path}
}

// NewFileAdapterWithParser uses parser regardless of the file extension.
func NewFileAdapterWithParser(parser Parser, path string) *FileAdapter {
	return &FileAdapter{parser: parser, path: path}
}

func (a *FileAdapter) Load(ctx context.Context) (map[string]map[string]string, error) {
	if a.parser == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, a.path)
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingCancelled, err)
	}

	content, err := os.ReadFile(a.path)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}

	return a.parser.Parse(ctx, content)
}

// FSAdapter reads every catalog file with a supported extension in dir of fsys.
// Files are merged in name order; later files override earlier keys.
type FSAdapter struct {
	fsys fs.FS
	dir  string
}

func NewFSAdapter(fsys fs.FS, dir string) *FSAdapter {
	if dir == "" {
		dir = "."
	}
	return &FSAdapter{fsys: fsys, dir: dir}
}

func (a *FSAdapter) Load(ctx context.Context) (map[string]map[string]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingCancelled, err)
	}

	entries, err := fs.ReadDir(a.fsys, a.dir)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}

	result := make(map[string]map[string]string)
	loaded := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		parser := NewParserForFile(entry.Name())
		if parser == nil {
			continue
		}

		if err := ctx.Err(); err != nil {
			return nil, errors.Join(ErrLoadingCancelled, err)
		}

		name := path.Join(a.dir, entry.Name())
		content, err := fs.ReadFile(a.fsys, name)
		if err != nil {
			return nil, errors.Join(ErrFailedToReadFile, err)
		}

		doc, err := parser.Parse(ctx, content)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		mergeInto(result, doc)
		loaded++
	}

	if loaded == 0 {
		return nil, fmt.Errorf("%w in %q", ErrNoCatalogFiles, a.dir)
	}
	return result, nil
}

func mergeInto(dst, src map[string]map[string]string) {
	for _, lang := range slices.Sorted(maps.Keys(src)) {
		if dst[lang] == nil {
			dst[lang] = make(map[string]string, len(src[lang]))
		}
		maps.Copy(dst[lang], src[lang])
	}
}
