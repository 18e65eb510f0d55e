package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/cubelab/cubesim"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Interactive cube simulator",
	Long: `Start an interactive TUI for turning the cube by hand.

Keyboard shortcuts:
  u d l r f b  - Clockwise quarter turn of that face
  U D L R F B  - Counterclockwise quarter turn (shift+letter)
  s            - Scramble
  c            - Solve the white cross, one narrated step at a time
  x            - Reset to solved
  q/Esc        - Quit`,
	RunE: runPlay,
}

func init() {
	rootCmd.AddCommand(playCmd)
}

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	phaseStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	moveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	stepStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

type stepTickMsg struct{}

// playMoveKeys maps key presses to moves. Lowercase turns clockwise,
// uppercase counterclockwise.
var playMoveKeys = map[string]cubesim.Move{
	"u": cubesim.U, "U": cubesim.UPrime,
	"d": cubesim.D, "D": cubesim.DPrime,
	"l": cubesim.L, "L": cubesim.LPrime,
	"r": cubesim.R, "R": cubesim.RPrime,
	"f": cubesim.F, "F": cubesim.FPrime,
	"b": cubesim.B, "B": cubesim.BPrime,
}

type playModel struct {
	session *cubesim.Session

	// Step playback state while the solver narration is running.
	steps    []cubesim.Step
	stepIdx  int
	playing  bool
	lastStep string

	status    string
	stepDelay time.Duration
	quitting  bool
}

func newPlayModel() *playModel {
	session := cubesim.NewSession(cubesim.WithAttemptBudget(cfg.AttemptBudget))
	m := &playModel{
		session:   session,
		stepDelay: time.Duration(cfg.StepDelayMs) * time.Millisecond,
	}
	session.SetStatusCallback(func(msg string, busy bool) {
		m.status = msg
	})
	return m
}

func (m *playModel) Init() tea.Cmd {
	return nil
}

func (m *playModel) stepTickCmd() tea.Cmd {
	return tea.Tick(m.stepDelay, func(time.Time) tea.Msg {
		return stepTickMsg{}
	})
}

func (m *playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		key := msg.String()

		switch key {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}

		if m.playing {
			// Ignore input while the narration is running.
			return m, nil
		}

		if move, ok := playMoveKeys[key]; ok {
			m.session.Apply(move)
			m.status = ""
			m.lastStep = ""
			return m, nil
		}

		switch key {
		case "s":
			moves := m.session.Scramble(cfg.ScrambleMoves)
			m.status = fmt.Sprintf("scrambled with %d moves", len(moves))
			m.lastStep = ""

		case "c":
			return m, m.startCrossSolve()

		case "x":
			m.session.Reset()
			m.status = "reset to solved"
			m.lastStep = ""
		}

	case stepTickMsg:
		return m, m.advanceStep()
	}

	return m, nil
}

// startCrossSolve runs the solver against a copy of the current state and
// begins replaying its steps against the live cube.
func (m *playModel) startCrossSolve() tea.Cmd {
	if m.session.State().IsCrossComplete() {
		m.status = "white cross is already complete"
		return nil
	}

	solver := cubesim.NewCrossSolver(cubesim.WithAttemptBudget(cfg.AttemptBudget))
	result := solver.Solve(m.session.State())

	m.steps = result.Steps
	m.stepIdx = 0
	m.playing = true
	m.status = "solving the white cross..."
	m.lastStep = ""

	return m.stepTickCmd()
}

// advanceStep applies the next recorded solver step to the live cube.
func (m *playModel) advanceStep() tea.Cmd {
	if m.stepIdx >= len(m.steps) {
		m.playing = false
		if m.session.State().IsCrossComplete() {
			m.status = "white cross complete"
		} else {
			m.status = "white cross incomplete"
		}
		return nil
	}

	step := m.steps[m.stepIdx]
	m.stepIdx++

	m.session.Apply(step.Moves...)
	if len(step.Moves) > 0 {
		m.lastStep = fmt.Sprintf("white-%s: %s  (%s)", step.Target.Name(), step.Description, cubesim.FormatMoves(step.Moves))
	} else {
		m.lastStep = fmt.Sprintf("white-%s: %s", step.Target.Name(), step.Description)
	}

	return m.stepTickCmd()
}

func (m *playModel) View() string {
	if m.quitting {
		return "Goodbye!\n"
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Cube Simulator"))
	b.WriteString("\n\n")

	b.WriteString(RenderCube(m.session.State()))
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("Phase: %s\n", phaseStyle.Render(m.session.Phase().DisplayName())))

	history := m.session.History()
	b.WriteString(fmt.Sprintf("Moves: %d\n", len(history)))
	if len(history) > 0 {
		start := 0
		prefix := ""
		if len(history) > 20 {
			start = len(history) - 20
			prefix = "... "
		}
		b.WriteString(prefix)
		b.WriteString(moveStyle.Render(cubesim.FormatMoves(history[start:])))
		b.WriteString("\n")
	}

	if m.lastStep != "" {
		b.WriteString("\n")
		b.WriteString(stepStyle.Render(m.lastStep))
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	help := "Keys: u d l r f b turn (shift = inverse) | s=scramble c=solve cross x=reset q=quit"
	if m.playing {
		help = "Solving... q=quit"
	}
	b.WriteString(helpStyle.Render(help))
	b.WriteString("\n")

	return b.String()
}

func runPlay(cmd *cobra.Command, args []string) error {
	model := newPlayModel()
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
