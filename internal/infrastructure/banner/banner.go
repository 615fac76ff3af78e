// Package banner renders runner lifecycle events as colored banner output.
package banner

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/doeshing/cictl/internal/ports"
)

const frameWidth = 72

// Printer implements ports.BannerSink. Run/success events render as framed
// banners when framed is set, otherwise as single colored lines; errors are
// always framed so failures stand out in long CI logs. Colors switch off
// automatically when the output is not a terminal.
type Printer struct {
	out    io.Writer
	framed bool

	success *color.Color
	spam    *color.Color
	failure *color.Color
}

// NewPrinter builds a printer writing to out.
func NewPrinter(out io.Writer, framed bool) *Printer {
	p := &Printer{
		out:     out,
		framed:  framed,
		success: color.New(color.FgGreen, color.Bold),
		spam:    color.New(color.FgMagenta),
		failure: color.New(color.FgRed, color.Bold),
	}
	if !writerIsTerminal(out) {
		p.success.DisableColor()
		p.spam.DisableColor()
		p.failure.DisableColor()
	}
	return p
}

// RunStarted announces an action and the command about to run.
func (p *Printer) RunStarted(description, command string) {
	p.emit(p.success, fmt.Sprintf("Action: %s\nCommand: %s", description, command), p.framed)
}

// AttemptFailed reports one failed attempt.
func (p *Printer) AttemptFailed(attempt, exitCode int) {
	p.emit(p.spam, fmt.Sprintf("attempt %d failed with exit code %d", attempt, exitCode), false)
}

// RetryScheduled announces the pause before the next attempt.
func (p *Printer) RetryScheduled(description string, sleep time.Duration) {
	p.emit(p.spam, fmt.Sprintf("Retry in %s: %s", sleep, description), false)
}

// RunSucceeded announces a successful run.
func (p *Printer) RunSucceeded(description string) {
	p.emit(p.success, "Success: "+description, false)
}

// RunFailed announces a run that exhausted its retries.
func (p *Printer) RunFailed(description, command string, exitCode int) {
	msg := fmt.Sprintf("Error: %s\nCommand: %s\nexit code %d", description, command, exitCode)
	p.emit(p.failure, msg, true)
}

func (p *Printer) emit(c *color.Color, msg string, framed bool) {
	if framed {
		frame := strings.Repeat("*", frameWidth)
		c.Fprintln(p.out, frame)
		for _, line := range strings.Split(msg, "\n") {
			c.Fprintln(p.out, "* "+line)
		}
		c.Fprintln(p.out, frame)
		return
	}
	for _, line := range strings.Split(msg, "\n") {
		c.Fprintln(p.out, line)
	}
}

func writerIsTerminal(out io.Writer) bool {
	f, ok := out.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

var _ ports.BannerSink = (*Printer)(nil)
