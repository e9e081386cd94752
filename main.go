package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	config := loadConfig()
	if config.LogFile != "" {
		f, err := tea.LogToFile(config.LogFile, "glyphpad")
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		SetLogger(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	m := initialModel(config)
	if len(os.Args) > 1 {
		if err := m.session.Open(os.Args[1]); err != nil {
			m.errorMessage = err.Error()
		} else {
			m.successMessage = fmt.Sprintf("Loaded %d shapes from %s", m.session.Registry().Len(), m.session.Filename())
		}
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatal(err)
	}
}

func newCommandInput() textinput.Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "circle 3 10 10 red   (? for help)"
	ti.CharLimit = 256
	ti.Width = canvasWidth
	ti.Focus()
	return ti
}

func initialModel(config *Config) model {
	if config == nil {
		config = defaultConfig()
	}
	registry := NewRegistry(NewCanvas(canvasWidth, canvasHeight))
	return model{
		session:      NewSession(registry, config),
		mode:         ModeNormal,
		input:        newCommandInput(),
		historyIndex: -1,
		config:       config,
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}

		switch m.mode {
		case ModeHelp:
			return m.updateHelp(msg), nil
		case ModeConfirm:
			return m.updateConfirm(msg)
		}

		switch msg.String() {
		case "enter":
			line := strings.TrimSpace(m.input.Value())
			m.input.SetValue("")
			m.pushHistory(line)
			return m.run(line, false)
		case "up":
			m.historyPrev()
			return m, nil
		case "down":
			m.historyNext()
			return m, nil
		case "esc":
			m.input.SetValue("")
			m.output = nil
			m.errorMessage = ""
			m.successMessage = ""
			m.historyIndex = -1
			return m, nil
		case "?":
			if m.input.Value() == "" {
				m.mode = ModeHelp
				m.helpScroll = 0
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.mode = ModeNormal
		line := m.confirmLine
		m.confirmLine = ""
		return m.run(line, true)
	case "n", "N", "esc":
		m.mode = ModeNormal
		m.confirmLine = ""
		m.errorMessage = ""
		m.successMessage = "Cancelled"
	}
	return m, nil
}

// run executes one command line and folds the result into the model.
func (m *model) run(line string, confirmed bool) (tea.Model, tea.Cmd) {
	if line == "" {
		return *m, nil
	}
	res, err := m.session.Execute(line, confirmed)
	if err != nil {
		Logger().Debug("command failed", slog.String("line", line), slog.String("error", err.Error()))
		m.errorMessage = err.Error()
		m.successMessage = ""
		return *m, nil
	}
	m.errorMessage = ""
	m.successMessage = res.Message
	switch {
	case res.Quit:
		return *m, tea.Quit
	case res.Confirm:
		m.mode = ModeConfirm
		m.confirmAction = res.ConfirmAction
		m.confirmLine = line
		m.confirmPrompt = res.Message
		m.successMessage = ""
	case res.Help:
		m.mode = ModeHelp
		m.helpScroll = 0
	}
	m.output = res.Lines
	return *m, nil
}
