// Package notify provides the terminal notification surface: transient
// success and failure notices plus a longer-lived progress indicator.
package notify

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Styles for notification output.
var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
		Light: "#86b300",
		Dark:  "#c2d94c",
	}).Bold(true)
	failureStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
		Light: "#f07171",
		Dark:  "#f07178",
	}).Bold(true)
	progressStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
		Light: "#828c99",
		Dark:  "#6c7680",
	})
	messageStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
		Light: "#5c6166",
		Dark:  "#b3b1ad",
	})
)

// Writer renders notifications to the configured output destination.
type Writer struct {
	out io.Writer
}

// NewWriter creates a Writer that writes to stdout.
func NewWriter() *Writer {
	return &Writer{out: os.Stdout}
}

// NewWriterWithOutput creates a Writer with a custom output destination.
// This is useful for testing.
func NewWriterWithOutput(out io.Writer) *Writer {
	return &Writer{out: out}
}

// Success shows a transient success notice with a title and optional message.
func (w *Writer) Success(title, message string) {
	w.write(successStyle.Render("✓ "+title), message)
}

// Failure shows a transient failure notice with a title and optional message.
func (w *Writer) Failure(title, message string) {
	w.write(failureStyle.Render("✗ "+title), message)
}

// Progress shows a "working" indicator for multi-step operations.
func (w *Writer) Progress(message string) {
	fmt.Fprintln(w.out, progressStyle.Render("… "+message))
}

func (w *Writer) write(title, message string) {
	if message == "" {
		fmt.Fprintln(w.out, title)
		return
	}
	fmt.Fprintln(w.out, title+" "+messageStyle.Render(message))
}
