package service

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/mattsolo1/grove-novel/pkg/models"
	"github.com/mattsolo1/grove-novel/pkg/project"
)

var (
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	warningStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	statusStyle  = lipgloss.NewStyle().Faint(true)
)

// ConsoleHost shows project alerts and status messages on a terminal.
type ConsoleHost struct {
	out   io.Writer
	quiet bool

	Alerts     []string
	LastStatus string
}

// NewConsoleHost writes to out. A quiet host records status messages
// without printing them; alerts are always printed.
func NewConsoleHost(out io.Writer, quiet bool) *ConsoleHost {
	return &ConsoleHost{out: out, quiet: quiet}
}

func (h *ConsoleHost) MakeAlert(message string, severity project.Severity) {
	h.Alerts = append(h.Alerts, message)

	style := infoStyle
	switch severity {
	case project.SeverityError:
		style = errorStyle
	case project.SeverityWarning:
		style = warningStyle
	}
	prefix := style.Render(models.Label(severity.String()) + ":")
	fmt.Fprintf(h.out, "%s %s\n", prefix, message)
}

func (h *ConsoleHost) SetStatus(message string) {
	h.LastStatus = message
	if !h.quiet {
		fmt.Fprintln(h.out, statusStyle.Render(message))
	}
}
