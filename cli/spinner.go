package cli

import (
	"io"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/yllada/seccli/common"
	"github.com/yllada/seccli/vpn"
)

type probeDoneMsg struct{}

// probeModel animates a spinner until the probe reports back.
type probeModel struct {
	spinner spinner.Model
	label   string
	done    bool
}

func (m probeModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m probeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case probeDoneMsg:
		m.done = true
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m probeModel) View() string {
	if m.done {
		return ""
	}
	return m.spinner.View() + " " + m.label
}

// spinnerIndicator runs each probe behind an animated spinner on w.
// Keyboard input is not captured, so the VPN tool keeps its stdin. The probe
// runs exactly once whether or not the spinner manages to start.
func spinnerIndicator(w io.Writer) vpn.Indicator {
	style := lipgloss.NewRenderer(w).NewStyle().Foreground(lipgloss.Color("6"))
	return func(label string, probe func() bool) bool {
		m := probeModel{
			spinner: spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(style)),
			label:   label,
		}
		p := tea.NewProgram(m, tea.WithOutput(w), tea.WithInput(nil))

		result := make(chan bool, 1)
		go func() {
			connected := probe()
			result <- connected
			p.Send(probeDoneMsg{})
		}()

		if _, err := p.Run(); err != nil {
			common.LogDebug("Spinner failed: %v", err)
		}
		return <-result
	}
}
