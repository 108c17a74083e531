package dirstat

import (
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// Entry represents a single immediate subdirectory and its size.
type Entry struct {
	// Path is the subdirectory path, joined onto the scanned root.
	Path string
	// Size is the cumulative size in bytes of all regular files below Path.
	Size uint64
}

// Report holds the result of scanning one root directory.
type Report struct {
	// Root is the absolute path of the scanned directory.
	Root string
	// Entries are the immediate subdirectories, largest first.
	Entries []Entry
	// TotalBytes is the sum of the entry sizes. Files directly under Root are not included.
	TotalBytes uint64
	// Skipped is the number of unreadable directories or entries that contributed zero bytes.
	Skipped int64
	// Elapsed is the time spent scanning.
	Elapsed time.Duration
}

// MaxSize returns the size of the largest entry, or 0 if there are none.
func (r *Report) MaxSize() uint64 {
	if len(r.Entries) == 0 {
		return 0
	}

	return r.Entries[0].Size
}

// Options configures a scan.
type Options struct {
	// Path is the directory to scan.
	Path string
	// Debug indicates whether debug output is enabled.
	Debug bool
}

// collector accumulates measured subdirectories in enumeration order.
type collector struct {
	entries    []Entry
	totalBytes uint64
	skipped    int64
}

// newCollector creates an empty collector.
func newCollector() *collector {
	return &collector{
		entries: make([]Entry, 0),
	}
}

// add records a measured subdirectory along with the errors absorbed while measuring it.
func (c *collector) add(path string, size uint64, skipped int64) {
	c.entries = append(c.entries, Entry{Path: path, Size: size})
	c.totalBytes += size
	c.skipped += skipped
}

// finalize produces the Report from the collected data.
// Entries are sorted by size (largest first); equal sizes keep enumeration order.
func (c *collector) finalize(root string) *Report {
	entries := make([]Entry, len(c.entries))
	copy(entries, c.entries)

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Size > entries[j].Size
	})

	// Convert all paths to slash format for display
	for i := range entries {
		entries[i].Path = filepath.ToSlash(entries[i].Path)
		entries[i].Path = strings.TrimPrefix(entries[i].Path, "./")
	}

	return &Report{
		Root:       root,
		Entries:    entries,
		TotalBytes: c.totalBytes,
		Skipped:    c.skipped,
	}
}
