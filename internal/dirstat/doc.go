// Package dirstat measures the disk usage of the immediate subdirectories
// of a directory.
//
// Each subdirectory is walked with fastwalk using a single worker, summing the
// sizes of regular files. Errors below the root are absorbed: they contribute
// zero bytes and are only counted.
package dirstat
