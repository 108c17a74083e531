package dirstat

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/charlievieth/fastwalk"
	"github.com/dustin/go-humanize"
)

// logger provides conditional debug output.
type logger struct {
	enabled bool
}

// printf prints debug output to stderr if logging is enabled.
func (l logger) printf(format string, args ...any) {
	if l.enabled {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}

// tally sums file sizes from fastwalk callbacks.
type tally struct {
	mu      sync.Mutex
	size    uint64
	skipped int64
}

func (t *tally) addFile(size int64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.size += uint64(size) //nolint:gosec // File sizes are never negative
}

func (t *tally) addError() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.skipped++
}

// DirSize returns the total size in bytes of all regular files under path, at any depth,
// and the number of directories or entries that could not be read.
//
// Unreadable directories and entries contribute zero bytes; DirSize never fails.
// Symlinks are not followed and count as zero.
func DirSize(ctx context.Context, path string) (uint64, int64) {
	var t tally

	// Single worker: traversal is sequential
	conf := &fastwalk.Config{
		Follow:     false,
		NumWorkers: 1,
	}

	//nolint:varnamelen // d is standard for DirEntry
	err := fastwalk.Walk(conf, path, func(_ string, d fs.DirEntry, err error) error {
		if err != nil {
			t.addError()

			return nil // Silently skip errors
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if !d.Type().IsRegular() {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			t.addError()

			return nil //nolint:nilerr // Intentionally skip errors during walk
		}

		t.addFile(info.Size())

		return nil
	})
	// The subtree root itself may have vanished or be unreadable.
	if err != nil && ctx.Err() == nil {
		t.addError()
	}

	return t.size, t.skipped
}

// Run measures every immediate subdirectory of opt.Path and returns them sorted by size.
//
// Files directly under opt.Path are ignored. Failure to read opt.Path itself is returned
// as an error; failures anywhere below it are absorbed and counted in Report.Skipped.
//
// progressHook, if non-nil, is called with the number of subdirectories measured so far
// after each one completes.
func Run(ctx context.Context, opt Options, progressHook func(measured int)) (*Report, error) {
	log := logger{enabled: opt.Debug}

	if opt.Path == "" {
		opt.Path = "."
	}

	opt.Path = filepath.Clean(opt.Path)

	absPath, err := filepath.Abs(opt.Path)
	if err != nil {
		return nil, fmt.Errorf("resolving absolute path: %w", err)
	}

	if statInfo, err := os.Stat(opt.Path); err != nil {
		return nil, fmt.Errorf("accessing path %q: %w", opt.Path, err)
	} else if !statInfo.IsDir() {
		return nil, fmt.Errorf("path %q is not a directory", opt.Path)
	}

	children, err := os.ReadDir(opt.Path)
	if err != nil {
		return nil, fmt.Errorf("reading directory %q: %w", opt.Path, err)
	}

	start := time.Now()
	collector := newCollector()

	for _, child := range children {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if !child.IsDir() {
			log.printf("[debug]: skipping non-directory: %s\n", child.Name())

			continue
		}

		path := filepath.Join(opt.Path, child.Name())
		size, skipped := DirSize(ctx, path)

		if skipped > 0 {
			log.printf("[debug]: %s: %d unreadable entries counted as zero\n", path, skipped)
		}

		log.printf("[debug]: measured %s: %s\n", path, humanize.IBytes(size))

		collector.add(path, size, skipped)

		if progressHook != nil {
			progressHook(len(collector.entries))
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	report := collector.finalize(absPath)
	report.Elapsed = time.Since(start)

	return report, nil
}
