package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	canvasStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("8"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	cellStyles = map[Color]lipgloss.Style{
		ColorRed:   lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		ColorBlue:  lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
		ColorGreen: lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	}
)

// colorizeLine styles runs of identical cells. Blank and default cells are
// left plain.
func colorizeLine(line string) string {
	var b strings.Builder
	runes := []rune(line)
	for i := 0; i < len(runes); {
		j := i
		for j < len(runes) && runes[j] == runes[i] {
			j++
		}
		run := string(runes[i:j])
		if style, ok := cellStyles[Color(runes[i])]; ok {
			run = style.Render(run)
		}
		b.WriteString(run)
		i = j
	}
	return b.String()
}

func (m model) canvasView() string {
	lines := m.session.Registry().Canvas().Render()
	if m.config.Color {
		for i, line := range lines {
			lines[i] = colorizeLine(line)
		}
	}
	return canvasStyle.Render(strings.Join(lines, "\n"))
}

func (m model) View() string {
	if m.mode == ModeHelp {
		return m.helpView()
	}

	var result strings.Builder
	result.WriteString(m.canvasView())
	result.WriteString("\n")

	for _, line := range m.output {
		result.WriteString(dimStyle.Render(line))
		result.WriteString("\n")
	}

	if m.mode == ModeConfirm {
		result.WriteString(fmt.Sprintf("Mode: %s | %s", m.modeString(), m.confirmPrompt))
		return result.String()
	}

	result.WriteString(m.input.View())
	result.WriteString("\n")
	result.WriteString(m.statusLine())
	return result.String()
}

func (m model) statusLine() string {
	status := fmt.Sprintf("Mode: %s | Shapes: %d", m.modeString(), m.session.Registry().Len())
	if name := m.session.Filename(); name != "" {
		status += " | " + name
		if m.session.dirty {
			status += " [+]"
		}
	}
	if m.successMessage != "" {
		status += " | " + successStyle.Render(m.successMessage)
	}
	if m.errorMessage != "" {
		status += " | " + errorStyle.Render("ERROR: "+m.errorMessage)
	} else if m.successMessage == "" {
		status += " | ? for help | quit to exit"
	}
	return status
}

func (m model) modeString() string {
	switch m.mode {
	case ModeNormal:
		return "NORMAL"
	case ModeConfirm:
		return "CONFIRM " + m.confirmAction.String()
	case ModeHelp:
		return "HELP"
	default:
		return "UNKNOWN"
	}
}

func (m model) helpView() string {
	lines := helpLines()
	visibleHeight := m.height - 1
	if visibleHeight < 1 || visibleHeight > len(lines) {
		visibleHeight = len(lines)
	}
	start := m.helpScroll
	if start > len(lines)-visibleHeight {
		start = len(lines) - visibleHeight
	}
	if start < 0 {
		start = 0
	}
	end := start + visibleHeight
	if end > len(lines) {
		end = len(lines)
	}
	return strings.Join(lines[start:end], "\n") + "\n" + dimStyle.Render("j/k scroll | any other key closes help")
}
