package progress

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

var (
	tagStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	labelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	sentinelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// SimpleHandler outputs events as simple lines
type SimpleHandler struct {
	writer io.Writer
	color  bool
}

// NewSimpleHandler creates a handler writing plain lines to writer.
// Colors are enabled only when writing to a terminal.
func NewSimpleHandler(writer io.Writer) *SimpleHandler {
	color := false
	if f, ok := writer.(*os.File); ok {
		color = isatty.IsTerminal(f.Fd())
	}
	return &SimpleHandler{writer: writer, color: color}
}

func (h *SimpleHandler) tag(s string) string {
	if h.color {
		return tagStyle.Render(s)
	}
	return s
}

func (h *SimpleHandler) label(s string, sentinel bool) string {
	if !h.color {
		return s
	}
	if sentinel {
		return sentinelStyle.Render(s)
	}
	return labelStyle.Render(s)
}

func (h *SimpleHandler) Handle(event Event) {
	switch event.Type {
	case EventScanStart:
		fmt.Fprintf(h.writer, "%s Starting: %s\n", h.tag("[SCAN]"), event.Path)
		if event.Info != "" {
			fmt.Fprintf(h.writer, "%s Excluding: %s\n", h.tag("[SCAN]"), event.Info)
		}

	case EventScanComplete:
		fmt.Fprintf(h.writer, "%s Completed: %d files in %.1fs\n",
			h.tag("[SCAN]"), event.FileCount, event.Duration.Seconds())

	case EventEnterDirectory:
		fmt.Fprintf(h.writer, "%s Entering: %s\n", h.tag("[DIR]"), event.Path)

	case EventLeaveDirectory:
		// No output; kept for handlers that track depth

	case EventFileClassified:
		sentinel := event.Label == "Binary" || event.Label == "Error" || event.Label == "Unknown"
		fmt.Fprintf(h.writer, "%s %s: %s\n", h.tag("[FILE]"), event.Path, h.label(event.Label, sentinel))

	case EventSkipped:
		fmt.Fprintf(h.writer, "%s Excluding: %s (%s)\n", h.tag("[SKIP]"), event.Path, event.Reason)

	case EventInfo:
		fmt.Fprintf(h.writer, "%s %s\n", h.tag("[INFO]"), event.Info)
	}
}
