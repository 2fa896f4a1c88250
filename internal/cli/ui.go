package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/ironsheep/pixfx/internal/errors"
)

var (
	colorRed = lipgloss.Color("167") // Soft red - errors
	colorDim = lipgloss.Color("240") // Dim gray - muted text
)

const iconError = "✗"

// printError writes err to w as a single styled line. Color is only used
// when w is a terminal.
//
// Coded errors are shown without their code prefix. Errors that come from
// argument parsing or validation get a hint pointing at --help.
func printError(w io.Writer, err error) {
	r := lipgloss.NewRenderer(w)
	icon := r.NewStyle().Foreground(colorRed).Render(iconError)

	fmt.Fprintf(w, "%s Error: %s\n", icon, errors.UserMessage(err))
	if code := errors.GetCode(err); code == "" || code.Usage() {
		hint := r.NewStyle().Foreground(colorDim).Render(fmt.Sprintf("Run '%s --help' for usage.", appName))
		fmt.Fprintln(w, "  "+hint)
	}
}
