package i18n

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path"
)

// Load reads every JSON and YAML file in dir of fsys and builds a catalog.
// Files are merged in directory order; a later file overrides keys of an
// earlier one. Files with other extensions are skipped.
func Load(ctx context.Context, fsys fs.FS, dir string, opts ...Option) (*Catalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingCancelled, err)
	}

	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadDir, err)
	}

	merged := make(map[string]map[string]any)
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

		name := path.Join(dir, entry.Name())
		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, errors.Join(ErrFailedToReadFile, fmt.Errorf("%s: %w", name, err))
		}
		data, err := parser.Parse(ctx, string(content))
		if err != nil {
			return nil, errors.Join(ErrFailedToParseFile, fmt.Errorf("%s: %w", name, err))
		}

		for lang, tree := range data {
			flat := make(map[string]string)
			flatten("", tree, flat)
			dst, ok := merged[lang]
			if !ok {
				dst = make(map[string]any, len(flat))
				merged[lang] = dst
			}
			for k, v := range flat {
				dst[k] = v
			}
		}
	}

	if len(merged) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoTranslations, dir)
	}
	return NewCatalog(merged, opts...)
}
