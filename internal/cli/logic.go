package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"

	"github.com/idelchi/dirbars/internal/dirstat"
)

// SpinnerPace is the pause after each measured subdirectory while the spinner is shown.
const SpinnerPace = 60 * time.Millisecond

//nolint:gochecknoglobals // Config constant
var spinnerFrames = [...]string{"|", "/", "-", `\`}

// isTerminal reports whether writer is a terminal.
func isTerminal(writer io.Writer) bool {
	f, ok := writer.(*os.File)

	return ok && isatty.IsTerminal(f.Fd())
}

func logic(ctx context.Context, options dirstat.Options, start time.Time, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	enableProgress := !options.Debug && isTerminal(out)

	var progressHook func(measured int)

	if enableProgress {
		// Hide cursor for in-place updates; restore on exit.
		fmt.Fprint(out, "\033[?25l")
		defer fmt.Fprint(out, "\033[?25h")

		progressHook = func(measured int) {
			fmt.Fprintf(out, "\rComputing sizes... %s", spinnerFrames[measured%len(spinnerFrames)])
			time.Sleep(SpinnerPace)
		}
	}

	report, err := dirstat.Run(ctx, options, progressHook)

	// Clear the status line
	if enableProgress {
		fmt.Fprint(out, "\r\033[2K\r")
	}

	if err != nil {
		return err
	}

	return PrintChart(report, time.Since(start), out)
}
