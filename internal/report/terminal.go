// Package report renders installer output for a terminal.
package report

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/rs/zerolog"

	"github.com/fenghaitao/agent-os/internal/logging"
	"github.com/fenghaitao/agent-os/internal/messages"
	"github.com/fenghaitao/agent-os/internal/terminal"
)

// Terminal writes install progress to out and warnings and errors to errOut.
// It implements install.Reporter.
type Terminal struct {
	out      io.Writer
	errOut   io.Writer
	progress *color.Color
	warn     *color.Color
	fail     *color.Color
	log      zerolog.Logger
}

// NewTerminal returns a reporter. Colors are dropped for writers that are not terminals.
func NewTerminal(out, errOut io.Writer) *Terminal {
	if out == nil {
		out = io.Discard
	}
	if errOut == nil {
		errOut = io.Discard
	}
	t := &Terminal{
		out:      out,
		errOut:   errOut,
		progress: color.New(color.FgCyan),
		warn:     color.New(color.FgYellow),
		fail:     color.New(color.FgRed, color.Bold),
		log:      logging.Component("report"),
	}
	if !terminal.IsTerminal(out) {
		t.progress.DisableColor()
	}
	if !terminal.IsTerminal(errOut) {
		t.warn.DisableColor()
		t.fail.DisableColor()
	}
	return t
}

// Progress prints a per-item status line.
func (t *Terminal) Progress(label string) {
	_, _ = t.progress.Fprintln(t.out, label)
}

// Warning prints a non-fatal problem.
func (t *Terminal) Warning(msg string) {
	t.log.Debug().Str("warning", msg).Msg("Reported warning")
	_, _ = t.warn.Fprintln(t.errOut, messages.ReportWarningPrefix+msg)
}

// Error prints a fatal problem.
func (t *Terminal) Error(msg string) {
	t.log.Debug().Str("error", msg).Msg("Reported error")
	_, _ = t.fail.Fprintln(t.errOut, messages.ReportErrorPrefix+msg)
}

// Println writes a line to the standard output stream.
func (t *Terminal) Println(s string) {
	_, _ = fmt.Fprintln(t.out, s)
}
