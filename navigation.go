package main

import tea "github.com/charmbracelet/bubbletea"

func (m *model) pushHistory(line string) {
	m.historyIndex = -1
	if line == "" {
		return
	}
	if n := len(m.history); n > 0 && m.history[n-1] == line {
		return
	}
	m.history = append(m.history, line)
	if len(m.history) > maxHistory {
		m.history = m.history[len(m.history)-maxHistory:]
	}
}

// historyPrev steps back through earlier commands, oldest last.
func (m *model) historyPrev() {
	if len(m.history) == 0 {
		return
	}
	switch {
	case m.historyIndex == -1:
		m.historyIndex = len(m.history) - 1
	case m.historyIndex > 0:
		m.historyIndex--
	}
	m.input.SetValue(m.history[m.historyIndex])
	m.input.CursorEnd()
}

func (m *model) historyNext() {
	if m.historyIndex == -1 {
		return
	}
	if m.historyIndex >= len(m.history)-1 {
		m.historyIndex = -1
		m.input.SetValue("")
		return
	}
	m.historyIndex++
	m.input.SetValue(m.history[m.historyIndex])
	m.input.CursorEnd()
}

func (m model) updateHelp(msg tea.KeyMsg) model {
	switch msg.String() {
	case "j", "down":
		if m.helpScroll < m.maxHelpScroll() {
			m.helpScroll++
		}
	case "k", "up":
		if m.helpScroll > 0 {
			m.helpScroll--
		}
	default:
		m.mode = ModeNormal
		m.helpScroll = 0
	}
	return m
}

func (m model) maxHelpScroll() int {
	visibleHeight := m.height - 1
	if visibleHeight < 1 {
		visibleHeight = 1
	}
	maxScroll := len(helpLines()) - visibleHeight
	if maxScroll < 0 {
		maxScroll = 0
	}
	return maxScroll
}
