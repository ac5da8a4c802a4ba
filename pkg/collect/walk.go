package collect

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/dshills/pbt/pkg/runner"
)

// ignoredDirs are directories that never contain registrable property
// definitions: vendor trees, VCS metadata, and test fixtures.
var ignoredDirs = map[string]bool{
	"vendor":   true,
	".git":     true,
	"testdata": true,
}

// Collect walks paths (each a file or directory), concurrently per
// top-level path argument (purely I/O-bound — it never touches the
// PRNG or any domain), and dispatches every registered Candidate whose
// source file lies under one of paths through adapters in order,
// keeping the first match. With no adapters given, it uses NodeAdapter
// alone.
func Collect(ctx context.Context, paths []string, adapters ...Adapter) ([]runner.Property, error) {
	if len(adapters) == 0 {
		adapters = []Adapter{NodeAdapter{}}
	}

	files, err := walkAll(ctx, paths)
	if err != nil {
		return nil, err
	}
	fileSet := make(map[string]bool, len(files))
	for _, f := range files {
		fileSet[f] = true
	}

	var props []runner.Property
	for _, c := range snapshot() {
		if !fileSet[c.File] {
			continue
		}
		for _, a := range adapters {
			if p, ok := a.Recognize(c); ok {
				props = append(props, p)
				break
			}
		}
	}
	return props, nil
}

// walkAll expands paths into the absolute path of every .go file under
// them, each top-level argument walked on its own goroutine, bounded by
// GOMAXPROCS workers via errgroup.
func walkAll(ctx context.Context, paths []string) ([]string, error) {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	var mu sync.Mutex
	var files []string

	for _, p := range paths {
		p := p
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			abs, err := filepath.Abs(p)
			if err != nil {
				return fmt.Errorf("collect: %w", err)
			}
			info, err := os.Stat(abs)
			if err != nil {
				return fmt.Errorf("collect: %w", err)
			}
			if !info.IsDir() {
				mu.Lock()
				files = append(files, abs)
				mu.Unlock()
				return nil
			}
			return filepath.WalkDir(abs, func(path string, d fs.DirEntry, err error) error {
				if err != nil {
					return err
				}
				if d.IsDir() {
					if ignoredDirs[d.Name()] {
						return filepath.SkipDir
					}
					return nil
				}
				if filepath.Ext(path) != ".go" {
					return nil
				}
				mu.Lock()
				files = append(files, path)
				mu.Unlock()
				return nil
			})
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}
