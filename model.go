package main

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// layerDoneMsg carries one completed layer-growth step.
type layerDoneMsg struct {
	result LayerResult
}

// sweepErrMsg carries a fatal experiment error.
type sweepErrMsg struct {
	err error
}

// Model is the TUI application state. The experiment itself is strictly
// sequential; the model only runs one Step at a time, off the UI goroutine,
// and chains the next step when the previous message arrives.
type Model struct {
	cfg     Config
	exp     *Experiment
	results []LayerResult
	running bool
	err     error
	spinner spinner.Model
	width   int
	height  int
}

func initialModel(cfg Config) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = runningStyle

	m := Model{cfg: cfg, spinner: sp}
	m.startExperiment(cfg)
	return m
}

func (m *Model) startExperiment(cfg Config) {
	exp, err := NewExperiment(cfg)
	if err != nil {
		m.err = err
		m.running = false
		return
	}
	m.cfg = cfg
	m.exp = exp
	m.results = nil
	m.err = nil
	m.running = true
}

// stepCmd runs one layer-growth step off the UI goroutine.
func (m Model) stepCmd() tea.Cmd {
	exp := m.exp
	return func() tea.Msg {
		result, err := exp.Step()
		if err != nil {
			return sweepErrMsg{err: err}
		}
		return layerDoneMsg{result: result}
	}
}

func (m Model) Init() tea.Cmd {
	if m.err != nil {
		return nil
	}
	return tea.Batch(m.spinner.Tick, m.stepCmd())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "r":
			if !m.running {
				cfg := m.cfg
				cfg.Seed++
				m.startExperiment(cfg)
				if m.err == nil {
					return m, tea.Batch(m.spinner.Tick, m.stepCmd())
				}
			}
		}

	case layerDoneMsg:
		m.results = append(m.results, msg.result)
		if m.exp.Done() {
			m.running = false
			return m, nil
		}
		return m, m.stepCmd()

	case sweepErrMsg:
		m.err = msg.err
		m.running = false

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var params []float64
	if m.exp != nil {
		params = m.exp.BestParams()
	}
	runID := ""
	if m.exp != nil {
		runID = m.exp.RunID
	}

	curvePanel := curveStyle.Render(renderCurve(m.results, m.running, m.spinner.View()))
	anglesPanel := anglesStyle.Render(renderAngles(params, m.cfg.Qubits))
	controlsPanel := controlsStyle.Render(renderControls(m.cfg, runID, m.err))

	topRow := lipgloss.JoinHorizontal(lipgloss.Top, curvePanel, anglesPanel)
	return lipgloss.JoinVertical(lipgloss.Left, topRow, controlsPanel)
}
