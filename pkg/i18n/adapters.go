package i18n

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
)

// TranslationAdapter loads raw translation trees keyed by language tag.
type TranslationAdapter interface {
	Load(ctx context.Context) (map[string]map[string]any, error)
}

// MapAdapter is a simple adapter that uses an in-memory map as the translation source
type MapAdapter struct {
	Data map[string]map[string]any
}

// Load implements the TranslationAdapter interface
func (a *MapAdapter) Load(_ context.Context) (map[string]map[string]any, error) {
	if a.Data == nil {
		return make(map[string]map[string]any), nil
	}
	return a.Data, nil
}

// FileAdapter loads a single translation file.
type FileAdapter struct {
	parser Parser
	path   string
}

// NewFileAdapter creates a FileAdapter. A nil parser is chosen from the file
// extension.
func NewFileAdapter(parser Parser, path string) *FileAdapter {
	return &FileAdapter{parser: parser, path: path}
}

// Load implements the TranslationAdapter interface
func (a *FileAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingCancelled, err)
	}

	parser := a.parser
	if parser == nil {
		parser = NewParserForFile(a.path)
	}
	if parser == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFileType, a.path)
	}

	content, err := os.ReadFile(a.path)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}

	return parseFile(ctx, parser, a.path, content)
}

// FSAdapter loads every supported file of one directory of a file system.
// Files are read in lexical order and merged key by key, so a later file can
// add templates to a language defined by an earlier one.
type FSAdapter struct {
	parser Parser
	fsys   fs.FS
	dir    string
}

// NewFSAdapter creates an FSAdapter over fsys, which may be an embed.FS.
// With a nil parser each file is parsed according to its extension and files
// with unknown extensions are skipped.
func NewFSAdapter(parser Parser, fsys fs.FS, dir string) *FSAdapter {
	if dir == "" {
		dir = "."
	}
	return &FSAdapter{parser: parser, fsys: fsys, dir: dir}
}

// NewDirectoryAdapter creates an FSAdapter rooted at a directory on disk.
func NewDirectoryAdapter(parser Parser, dir string) *FSAdapter {
	return NewFSAdapter(parser, os.DirFS(dir), ".")
}

// Load implements the TranslationAdapter interface
func (a *FSAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingCancelled, err)
	}
	if a.fsys == nil {
		return nil, fmt.Errorf("%w: nil file system", ErrFailedToReadDirectory)
	}

	entries, err := fs.ReadDir(a.fsys, a.dir)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadDirectory, err)
	}

	all := make(map[string]map[string]any)
	loaded := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		parser := a.parserFor(entry.Name())
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

		tree, err := parseFile(ctx, parser, name, content)
		if err != nil {
			return nil, err
		}
		for lang, translations := range tree {
			if all[lang] == nil {
				all[lang] = make(map[string]any)
			}
			mergeTree(all[lang], translations)
		}
		loaded++
	}

	if loaded == 0 {
		return nil, fmt.Errorf("%w in %q", ErrNoTranslationFiles, a.dir)
	}
	return all, nil
}

func (a *FSAdapter) parserFor(name string) Parser {
	if a.parser == nil {
		return NewParserForFile(name)
	}
	if a.parser.SupportsFileExtension(filepath.Ext(name)) {
		return a.parser
	}
	return nil
}

func parseFile(ctx context.Context, parser Parser, name string, content []byte) (map[string]map[string]any, error) {
	if len(content) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyTranslationFile, name)
	}

	tree, err := parser.Parse(ctx, string(content))
	if err != nil {
		return nil, errors.Join(fmt.Errorf("%w: %s", ErrFailedToParseFile, name), err)
	}
	return tree, nil
}

// mergeTree copies src into dst, descending into maps present on both sides.
func mergeTree(dst, src map[string]any) {
	for key, value := range src {
		srcMap, srcIsMap := asStringMap(value)
		dstMap, dstIsMap := asStringMap(dst[key])
		if srcIsMap && dstIsMap {
			mergeTree(dstMap, srcMap)
			dst[key] = dstMap
			continue
		}
		dst[key] = value
	}
}
