// Package tui provides an interactive terminal viewer that replays a
// completed cycle's trajectory.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Tycho887/FYSLAB/internal/cycle"
	"github.com/Tycho887/FYSLAB/internal/viz"
)

const (
	frameRate  = 60
	cursorStep = 100 // trajectory indices advanced per frame
)

type TickMsg time.Time

type segment struct {
	label string
	start int // first index in the concatenated tape
}

// Model replays a cycle's concatenated trajectory.
type Model struct {
	name        string
	pressure    []float64
	volume      []float64
	temperature []float64
	segments    []segment
	efficiency  float64
	theoretical float64

	cursor  int
	playing bool
}

// NewModel flattens a completed cycle for replay.
func NewModel(c *cycle.Cycle) Model {
	m := Model{
		name:        c.Name,
		efficiency:  c.Efficiency,
		theoretical: c.TheoreticalEfficiency,
		playing:     true,
	}
	for _, pr := range c.Processes {
		m.segments = append(m.segments, segment{label: pr.Label(), start: len(m.pressure)})
		m.pressure = append(m.pressure, pr.Traj.Pressure...)
		m.volume = append(m.volume, pr.Traj.Volume...)
		m.temperature = append(m.temperature, pr.Traj.Temperature...)
	}
	return m
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(time.Second/frameRate, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.playing = !m.playing
		case "r":
			m.cursor = 0
			m.playing = true
		case "[":
			m.cursor -= cursorStep * 10
			if m.cursor < 0 {
				m.cursor = 0
			}
		case "]":
			m.cursor += cursorStep * 10
			if m.cursor >= len(m.pressure) {
				m.cursor = len(m.pressure) - 1
			}
		}
	case TickMsg:
		if m.playing {
			m.cursor += cursorStep
			if m.cursor >= len(m.pressure) {
				m.cursor = len(m.pressure) - 1
				m.playing = false
			}
		}
		return m, tick()
	}
	return m, nil
}

func (m Model) currentSegment() segment {
	cur := m.segments[0]
	for _, s := range m.segments {
		if m.cursor >= s.start {
			cur = s
		}
	}
	return cur
}

func (m Model) View() string {
	if len(m.pressure) == 0 {
		return "no trajectory\n"
	}

	var b strings.Builder
	b.WriteString(viz.Header.Render(fmt.Sprintf("%s cycle", m.name)))
	b.WriteString("\n")
	b.WriteString(viz.SeriesPlot("pressure (Pa)", m.pressure[:m.cursor+1]))
	b.WriteString("\n\n")

	seg := m.currentSegment()
	rows := []struct {
		label string
		value string
	}{
		{"stage", seg.label},
		{"pressure", fmt.Sprintf("%.4g Pa", m.pressure[m.cursor])},
		{"volume", fmt.Sprintf("%.4g m^3", m.volume[m.cursor])},
		{"temperature", fmt.Sprintf("%.4g K", m.temperature[m.cursor])},
		{"efficiency", fmt.Sprintf("%.4f (carnot bound %.4f)", m.efficiency, m.theoretical)},
	}
	var metrics strings.Builder
	for i, row := range rows {
		if i > 0 {
			metrics.WriteString("\n")
		}
		metrics.WriteString(viz.MetricLabel.Render(row.label))
		metrics.WriteString(viz.MetricValue.Render(row.value))
	}
	b.WriteString(viz.Panel.Render(metrics.String()))
	b.WriteString("\n")

	status := "paused"
	if m.playing {
		status = "playing"
	}
	b.WriteString(viz.Help.Render(fmt.Sprintf("[%s] space pause/resume | [ ] scrub | r restart | q quit", status)))
	b.WriteString("\n")
	return b.String()
}

// Run replays the cycle until the user quits.
func Run(c *cycle.Cycle) error {
	p := tea.NewProgram(NewModel(c))
	_, err := p.Run()
	return err
}
