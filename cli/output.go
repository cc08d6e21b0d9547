package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// printer writes one-line results. Colors are only emitted when the
// destination is a terminal.
type printer struct {
	w       io.Writer
	ok      lipgloss.Style
	regular lipgloss.Style
}

func newPrinter(w io.Writer) *printer {
	r := lipgloss.NewRenderer(w)
	return &printer{
		w:       w,
		ok:      r.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
		regular: r.NewStyle(),
	}
}

func (p *printer) success(msg string) {
	fmt.Fprintln(p.w, p.ok.Render(msg))
}

func (p *printer) plain(msg string) {
	fmt.Fprintln(p.w, p.regular.Render(msg))
}

// PrintError reports err to w as "Error: <err>".
func PrintError(w io.Writer, err error) {
	style := lipgloss.NewRenderer(w).NewStyle().Foreground(lipgloss.Color("1"))
	fmt.Fprintln(w, style.Render("Error: "+err.Error()))
}
