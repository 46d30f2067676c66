package engine

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/varalys/huelint/internal/config"
)

// Walk traverses root and invokes handle for each candidate file. rel is
// the slash-separated path relative to root. Excluded directories are never
// descended into. Directories that cannot be listed are skipped; an error
// returned by handle stops the walk.
func Walk(ctx context.Context, root string, pol config.Policy, handle func(rel, abs string) error) error {
	return filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			// d is nil only when root itself cannot be stat'ed
			if d == nil {
				return err
			}
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if ctx != nil {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		if d.IsDir() {
			if p != root && pol.ExcludesDir(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if !pol.IncludesFile(d.Name()) {
			return nil
		}
		// Symlinked directories are listed but not followed.
		if d.Type()&fs.ModeSymlink != 0 {
			if st, err := os.Stat(p); err == nil && st.IsDir() {
				return nil
			}
		}
		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		return handle(filepath.ToSlash(rel), p)
	})
}

// Files returns every candidate path under root, relative and slash-separated.
func Files(ctx context.Context, root string, pol config.Policy) ([]string, error) {
	var out []string
	err := Walk(ctx, root, pol, func(rel, _ string) error {
		out = append(out, rel)
		return nil
	})
	return out, err
}
