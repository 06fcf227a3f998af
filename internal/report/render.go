package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	codeFence = "```"

	noSMIWithGPUs = "no nvidia-smi is found"
	noGPUs        = "no supported gpus found on this system"

	pasteReminder = "Please make sure to include opening/closing ``` when you paste into forums/github to make the reports appear formatted as code sections."
	installIntro  = "Optional package(s) to enhance the diagnostics can be installed with:"
	installOutro  = "Once installed, re-run this utility to get the additional information"
)

// Render writes the fenced report followed by the advisories. Only the lines
// outside the fence are styled; the renderer drops styling for writers that
// are not colour terminals.
func (r Report) Render(w io.Writer) error {
	renderer := lipgloss.NewRenderer(w)
	reminderStyle := renderer.NewStyle().Bold(true)
	hintStyle := renderer.NewStyle().Foreground(lipgloss.Color("#5fafff"))
	commandStyle := renderer.NewStyle().Foreground(lipgloss.Color("#87d7af"))

	var b strings.Builder

	b.WriteString("\n\n")
	b.WriteString(codeFence + "\n")

	width := labelWidth(r.Facts)
	for _, f := range r.Facts {
		b.WriteString(formatFact(f, width))
		b.WriteString("\n")
	}

	if r.Probe.Available {
		if r.ShowFull {
			b.WriteString("\n" + r.Probe.Output + "\n")
		}
	} else if r.GPUCount > 0 {
		// the runtime sees devices but the vendor tool is missing
		b.WriteString(noSMIWithGPUs + "\n")
	} else {
		b.WriteString(noGPUs + "\n")
	}

	b.WriteString(codeFence + "\n\n")
	b.WriteString(reminderStyle.Render(pasteReminder) + "\n\n")

	if len(r.MissingOptional) > 0 {
		installLine := strings.TrimSpace(r.InstallCommand + " " + strings.Join(r.MissingOptional, " "))
		b.WriteString(hintStyle.Render(installIntro) + "\n")
		b.WriteString(commandStyle.Render(installLine) + "\n")
		b.WriteString(hintStyle.Render(installOutro) + "\n")
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

func formatFact(f Fact, width int) string {
	line := fmt.Sprintf("%-*s", width, f.DisplayLabel())
	if f.Value != nil {
		line += ": " + *f.Value
	}
	return line
}
