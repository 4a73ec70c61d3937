package dbexport

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Reporter writes user-facing messages: progress, the run summary and
// errors. Colours are applied per message; no terminal state is shared.
type Reporter struct {
	out     io.Writer
	success *color.Color
	failure *color.Color
	numbers *message.Printer

	progressShown bool
}

// NewReporter returns a reporter writing to out. useColor enables ANSI
// colours regardless of what out is.
func NewReporter(out io.Writer, useColor bool) *Reporter {
	success := color.New(color.FgGreen)
	failure := color.New(color.FgRed, color.Bold)
	for _, c := range []*color.Color{success, failure} {
		if useColor {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return &Reporter{
		out:     out,
		success: success,
		failure: failure,
		numbers: message.NewPrinter(language.English),
	}
}

// Infof writes an uncoloured line.
func (r *Reporter) Infof(format string, args ...interface{}) {
	fmt.Fprintf(r.out, format+"\n", args...)
}

// Successf writes a green line.
func (r *Reporter) Successf(format string, args ...interface{}) {
	r.success.Fprintf(r.out, format+"\n", args...)
}

// Error writes err as a red line.
func (r *Reporter) Error(err error) {
	r.EndProgress()
	r.failure.Fprintf(r.out, "%v\n", err)
}

// Progress overwrites the current line with "current of total".
func (r *Reporter) Progress(current int, total int64) {
	r.progressShown = true
	fmt.Fprintf(r.out, "\r%s of %s", r.numbers.Sprintf("%d", current), r.numbers.Sprintf("%d", total))
}

// EndProgress moves past the progress line, if one was written.
func (r *Reporter) EndProgress() {
	if r.progressShown {
		fmt.Fprintln(r.out)
		r.progressShown = false
	}
}

// Summary describes a finished export.
type Summary struct {
	DatabaseName   string
	LibraryName    string
	FileName       string
	OutputFileName string
	CompletedAt    time.Time
	Rows           int
	Elapsed        time.Duration
}

// Summary writes the completion report for s.
func (r *Reporter) Summary(s Summary) {
	r.EndProgress()
	r.Successf(`Exported %s\%s\%s`, s.DatabaseName, s.LibraryName, s.FileName)
	r.Successf("%s created on %s.", s.OutputFileName, s.CompletedAt.Format("Monday, January 2, 2006 3:04 PM"))
	r.Successf("%s rows written.", r.numbers.Sprintf("%d", s.Rows))
	ms := s.Elapsed.Milliseconds()
	r.Successf("Time to export: %sms %smin", r.numbers.Sprintf("%d", ms), r.numbers.Sprintf("%d", ms/60000))
}
