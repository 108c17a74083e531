package cli

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/mitchellh/colorstring"

	"github.com/idelchi/dirbars/internal/dirstat"
)

const (
	// MaxBarWidth is the width in glyphs of the bar for the largest directory.
	MaxBarWidth = 50
	// BarGlyph is the character bars are drawn with.
	BarGlyph = "❚"
	// bytesPerMB converts bytes to megabytes.
	bytesPerMB = 1024 * 1024
)

// Palette lists the bar colors, cycled by rank.
//
//nolint:gochecknoglobals // Config constant
var Palette = []string{"red", "green", "yellow", "blue", "magenta", "cyan"}

// BarWidth scales size against largest onto MaxBarWidth glyphs, rounding to the nearest
// integer. Every bar is at least one glyph wide.
func BarWidth(size, largest uint64) int {
	if largest == 0 {
		return 1
	}

	width := int(math.Round(float64(size) / float64(largest) * MaxBarWidth))

	return max(width, 1)
}

// Bar renders a bar of the given width in the palette color for rank.
func Bar(rank, width int) string {
	color := Palette[rank%len(Palette)]

	return colorstring.Color("[" + color + "]" + strings.Repeat(BarGlyph, width))
}

// GroupThousands inserts commas into the integer part of a decimal number string.
// The fractional part is left untouched.
func GroupThousands(num string) string {
	intPart, fracPart, hasFrac := strings.Cut(num, ".")

	n, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return num
	}

	grouped := humanize.Comma(n)
	if hasFrac {
		return grouped + "." + fracPart
	}

	return grouped
}

// FormatMB formats a byte count as megabytes with two decimals and thousands separators.
func FormatMB(bytes uint64) string {
	mb := float64(bytes) / bytesPerMB

	return GroupThousands(strconv.FormatFloat(mb, 'f', 2, 64))
}

// PrintChart outputs the report as a bar chart followed by the total and the elapsed time.
func PrintChart(report *dirstat.Report, elapsed time.Duration, writer io.Writer) error {
	var b strings.Builder

	fmt.Fprintf(&b, "Directory: %s\n\n", report.Root)

	maxSize := report.MaxSize()

	for i, entry := range report.Entries {
		bar := Bar(i, BarWidth(entry.Size, maxSize))
		fmt.Fprintf(&b, "%s %s (%s MB)\n", bar, entry.Path, FormatMB(entry.Size))
	}

	fmt.Fprintf(&b, "\nTotal size: %s MB\n", FormatMB(report.TotalBytes))
	fmt.Fprintf(&b, "\nExecution time : %d ms\n", elapsed.Milliseconds())

	_, err := io.WriteString(writer, b.String())

	return err
}
