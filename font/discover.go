package font

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lixenwraith/drift-clock/core"
)

// DirName is the font directory under the app config dir
const DirName = "fonts"

// Result is one discovered face or the error from loading it
type Result struct {
	Path string
	Face Face
	Err  error
}

// Discover loads every .yaml/.yml glyph face in dir on a background goroutine.
// The channel is closed when the scan finishes or ctx is cancelled; a missing dir yields nothing.
func Discover(ctx context.Context, dir string) <-chan Result {
	out := make(chan Result)
	core.Go(func() {
		defer close(out)

		paths, err := listFaceFiles(dir)
		if err != nil {
			send(ctx, out, Result{Path: dir, Err: err})
			return
		}

		for _, p := range paths {
			if ctx.Err() != nil {
				return
			}
			face, err := LoadFile(p)
			if !send(ctx, out, Result{Path: p, Face: face, Err: err}) {
				return
			}
		}
	})
	return out
}

func send(ctx context.Context, out chan<- Result, r Result) bool {
	select {
	case out <- r:
		return true
	case <-ctx.Done():
		return false
	}
}

func listFaceFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to list fonts in %s: %w", dir, err)
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if ext == ".yaml" || ext == ".yml" {
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(paths)
	return paths, nil
}
