// Package tui implements the terminal dashboard for watching a
// simulation run live: a terrain grid colored by dominant biome
// (creatures are not drawn on it), population stats, a species list, and
// a recent-events feed.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/evoterra/evoterra/internal/sim"
	"github.com/evoterra/evoterra/internal/worldgen"
)

var viewModes = []string{"grid", "stats", "species", "events"}

// Model is the bubbletea model driving the dashboard.
type Model struct {
	Sim *sim.Simulation

	width, height int
	paused        bool
	autoAdvance   bool
	ticksPerFrame int
	selectedView  string

	viewportX, viewportY int
}

// New creates a dashboard model around an already-constructed
// simulation.
func New(s *sim.Simulation) Model {
	return Model{
		Sim:           s,
		autoAdvance:   true,
		ticksPerFrame: 1,
		selectedView:  "grid",
	}
}

type tickMsg time.Time

func doTick() tea.Cmd {
	return tea.Tick(150*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

var keys = struct {
	quit  key.Binding
	space key.Binding
	view  key.Binding
	step  key.Binding
	faster key.Binding
	slower key.Binding
}{
	quit:  key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	space: key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "pause/resume")),
	view:  key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "cycle view")),
	step:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "step")),
	faster: key.NewBinding(key.WithKeys("+", "=")),
	slower: key.NewBinding(key.WithKeys("-", "_")),
}

// Init starts the auto-advance clock.
func (m Model) Init() tea.Cmd {
	return doTick()
}

// Update handles input and tick messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.quit):
			return m, tea.Quit
		case key.Matches(msg, keys.space):
			m.paused = !m.paused
		case key.Matches(msg, keys.view):
			for i, v := range viewModes {
				if v == m.selectedView {
					m.selectedView = viewModes[(i+1)%len(viewModes)]
					break
				}
			}
		case key.Matches(msg, keys.step):
			m.Sim.Tick(1)
		case key.Matches(msg, keys.faster):
			if m.ticksPerFrame < 50 {
				m.ticksPerFrame++
			}
		case key.Matches(msg, keys.slower):
			if m.ticksPerFrame > 1 {
				m.ticksPerFrame--
			}
		}

	case tickMsg:
		if !m.paused {
			m.Sim.Tick(m.ticksPerFrame)
		}
		return m, doTick()
	}

	return m, nil
}

var (
	titleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Background(lipgloss.Color("235")).
		Padding(0, 1).
		Bold(true)

	infoStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Background(lipgloss.Color("236")).
		Padding(0, 1)

	gridStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240"))

	eventStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("196"))
)

var biomeStyles = map[worldgen.BiomeType]lipgloss.Style{
	worldgen.BiomeIceCap:     lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
	worldgen.BiomeOcean:      lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
	worldgen.BiomeGrassland:  lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
	worldgen.BiomeForest:     lipgloss.NewStyle().Foreground(lipgloss.Color("28")),
	worldgen.BiomeTaiga:      lipgloss.NewStyle().Foreground(lipgloss.Color("65")),
	worldgen.BiomeTundra:     lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
	worldgen.BiomeDesert:     lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
	worldgen.BiomeRainforest: lipgloss.NewStyle().Foreground(lipgloss.Color("22")),
}

// View renders the current frame.
func (m Model) View() string {
	header := titleStyle.Render(fmt.Sprintf("evoterra — tick %s", humanize.Comma(int64(m.Sim.GetTick()))))

	var body string
	switch m.selectedView {
	case "stats":
		body = m.renderStats()
	case "species":
		body = m.renderSpecies()
	case "events":
		body = m.renderEvents()
	default:
		body = m.renderGrid()
	}

	status := "running"
	if m.paused {
		status = "paused"
	}
	footer := infoStyle.Render(fmt.Sprintf(
		"[%s] view=%s speed=%dx/frame — space pause, v view, enter step, q quit",
		status, m.selectedView, m.ticksPerFrame,
	))

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

func (m Model) renderGrid() string {
	w := m.Sim.Config.WorldWidth
	h := m.Sim.Config.WorldHeight

	maxW, maxH := 100, 30
	if m.width > 4 {
		maxW = m.width - 4
	}
	if m.height > 6 {
		maxH = m.height - 6
	}

	cols := min(w, maxW)
	rows := min(h, maxH)

	var b strings.Builder
	for y := 0; y < rows; y++ {
		wy := y * h / rows
		for x := 0; x < cols; x++ {
			wx := x * w / cols
			biome := m.Sim.World.Terrain[wy][wx].DominantBiome()
			style, ok := biomeStyles[biome]
			if !ok {
				style = lipgloss.NewStyle()
			}
			b.WriteString(style.Render("█"))
		}
		b.WriteByte('\n')
	}
	return gridStyle.Render(b.String())
}

func (m Model) renderStats() string {
	herb, carn := 0, 0
	for _, c := range m.Sim.Creatures {
		if c.Phenotype.IsHerbivore() {
			herb++
		} else if c.Phenotype.IsCarnivore() {
			carn++
		}
	}
	return gridStyle.Render(fmt.Sprintf(
		"Total population: %s\nHerbivores: %s\nCarnivores: %s\nLiving species: %d\nHistory entries: %d",
		humanize.Comma(int64(len(m.Sim.Creatures))),
		humanize.Comma(int64(herb)),
		humanize.Comma(int64(carn)),
		len(m.Sim.Species.LivingSpecies()),
		m.Sim.History.Len(),
	))
}

func (m Model) renderSpecies() string {
	var b strings.Builder
	for _, sp := range m.Sim.Species.LivingSpecies() {
		fmt.Fprintf(&b, "%-24s pop=%-6d peak=%-6d diet=%s\n", sp.Name, sp.Population, sp.PeakPopulation, sp.DietLabel)
	}
	if b.Len() == 0 {
		b.WriteString("no living species")
	}
	return gridStyle.Render(b.String())
}

func (m Model) renderEvents() string {
	recent := m.Sim.History.GetRecentEvents(15)
	var b strings.Builder
	for _, e := range recent {
		fmt.Fprintf(&b, "%s\n", eventStyle.Render(fmt.Sprintf("year %d: %s", e.Year, e.Description)))
	}
	if b.Len() == 0 {
		b.WriteString("no events recorded yet")
	}
	return gridStyle.Render(b.String())
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
