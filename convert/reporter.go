package convert

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Reporter receives per-task outcomes and the end-of-run summary. The
// converter holds no global console state so it stays independently
// testable.
type Reporter interface {
	Success(taskName string)
	Failure(taskName string, err error)
	Summary(s Summary)
}

// NopReporter discards all reports.
type NopReporter struct{}

func (NopReporter) Success(string)        {}
func (NopReporter) Failure(string, error) {}
func (NopReporter) Summary(Summary)       {}

// ConsoleReporter prints colored per-task status lines and a bold summary.
type ConsoleReporter struct {
	out io.Writer

	green lipgloss.Style
	red   lipgloss.Style
	bold  lipgloss.Style
}

func NewConsoleReporter(out io.Writer) *ConsoleReporter {
	if out == nil {
		out = os.Stdout
	}
	return &ConsoleReporter{
		out:   out,
		green: lipgloss.NewStyle().Foreground(lipgloss.Color("#2ecc71")),
		red:   lipgloss.NewStyle().Foreground(lipgloss.Color("#e74c3c")),
		bold:  lipgloss.NewStyle().Bold(true),
	}
}

func (r *ConsoleReporter) Success(taskName string) {
	fmt.Fprintln(r.out, r.green.Render(fmt.Sprintf("Successfully converted %s", taskName)))
}

func (r *ConsoleReporter) Failure(taskName string, err error) {
	fmt.Fprintln(r.out, r.red.Render(fmt.Sprintf("Failed to convert %s: %v", taskName, err)))
}

func (r *ConsoleReporter) Summary(s Summary) {
	line := fmt.Sprintf("Converted %d/%d tasks", s.Succeeded, s.Total)
	if len(s.Failed) > 0 {
		line += fmt.Sprintf(", failed: %s", strings.Join(s.Failed, ", "))
	}
	fmt.Fprintln(r.out, r.bold.Render(line))
}
