package i18n

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
)

// Adapter loads raw translation data for a domain. Implementations return the
// full set of known locales; the Domain compiles catalogs per locale on first
// use.
type Adapter interface {
	Load(ctx context.Context) (map[string]map[string]any, error)
}

// MapAdapter serves translations from an in-memory map. Useful for tests and
// for applications that generate catalogs programmatically.
type MapAdapter struct {
	Data map[string]map[string]any
}

func (a *MapAdapter) Load(_ context.Context) (map[string]map[string]any, error) {
	if a.Data == nil {
		return make(map[string]map[string]any), nil
	}
	return a.Data, nil
}

// FileAdapter loads translations from a single catalog file.
type FileAdapter struct {
	parser Parser
	path   string
}

// NewFileAdapter creates an adapter for the given file. When parser is nil,
// it is inferred from the file extension.
func NewFileAdapter(path string, parser Parser) (*FileAdapter, error) {
	if path == "" {
		return nil, fmt.Errorf("catalog file path is empty")
	}
	if parser == nil {
		parser = ParserForFile(path)
	}
	if parser == nil {
		return nil, fmt.Errorf("no parser for catalog file %q", path)
	}
	return &FileAdapter{parser: parser, path: path}, nil
}

func (a *FileAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadCancelled, err)
	}

	content, err := os.ReadFile(a.path)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}
	if len(content) == 0 {
		return nil, fmt.Errorf("catalog file %q is empty", a.path)
	}

	translations, err := a.parser.Parse(ctx, content)
	if err != nil {
		return nil, errors.Join(ErrFailedToParseFile, err)
	}
	return translations, nil
}

// DirAdapter loads every supported catalog file from a directory, merging
// them by locale. Later files win on key conflicts within a locale.
type DirAdapter struct {
	parser Parser
	path   string
}

// NewDirAdapter creates an adapter for the given directory. When parser is
// nil, each file is parsed with the parser inferred from its extension.
func NewDirAdapter(path string, parser Parser) (*DirAdapter, error) {
	if path == "" {
		return nil, fmt.Errorf("catalog directory path is empty")
	}
	return &DirAdapter{parser: parser, path: path}, nil
}

func (a *DirAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	info, err := os.Stat(a.path)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadDir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("path %q is not a directory", a.path)
	}
	return loadFS(ctx, os.DirFS(a.path), ".", a.parser)
}

// FSAdapter loads catalogs from any fs.FS, most commonly an embed.FS holding
// translation files shipped inside the binary.
type FSAdapter struct {
	fsys   fs.FS
	dir    string
	parser Parser
}

// NewFSAdapter creates an adapter reading from dir inside fsys. When parser
// is nil, each file is parsed with the parser inferred from its extension.
func NewFSAdapter(fsys fs.FS, dir string, parser Parser) (*FSAdapter, error) {
	if fsys == nil {
		return nil, fmt.Errorf("filesystem is nil")
	}
	if dir == "" {
		dir = "."
	}
	return &FSAdapter{fsys: fsys, dir: dir, parser: parser}, nil
}

func (a *FSAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	return loadFS(ctx, a.fsys, a.dir, a.parser)
}

// loadFS walks a single directory level, parsing every file a parser is
// available for. Single-file failures abort the load: a broken catalog
// shipped to production should fail fast at startup, not at first lookup.
func loadFS(ctx context.Context, fsys fs.FS, dir string, parser Parser) (map[string]map[string]any, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadDir, err)
	}

	all := make(map[string]map[string]any)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, errors.Join(ErrLoadCancelled, err)
		}

		p := parser
		if p == nil {
			p = ParserForFile(entry.Name())
		}
		if p == nil || !p.SupportsExtension(filepath.Ext(entry.Name())) {
			continue
		}

		path := entry.Name()
		if dir != "." {
			path = dir + "/" + path
		}
		content, err := fs.ReadFile(fsys, path)
		if err != nil {
			return nil, errors.Join(ErrFailedToReadFile, err)
		}
		if len(content) == 0 {
			continue
		}

		parsed, err := p.Parse(ctx, content)
		if err != nil {
			return nil, errors.Join(ErrFailedToParseFile, fmt.Errorf("file %q: %w", path, err))
		}
		for locale, msgs := range parsed {
			if all[locale] == nil {
				all[locale] = make(map[string]any, len(msgs))
			}
			maps.Copy(all[locale], msgs)
		}
	}

	if len(all) == 0 {
		return nil, fmt.Errorf("no catalog files found in %q: %w", dir, ErrNoTranslations)
	}
	return all, nil
}
