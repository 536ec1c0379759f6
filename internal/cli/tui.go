package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/buttonstrip/pkg/editor"
	"github.com/matzehuels/buttonstrip/pkg/frame"
	"github.com/matzehuels/buttonstrip/pkg/geometry"
	"github.com/matzehuels/buttonstrip/pkg/observability"
	"github.com/matzehuels/buttonstrip/pkg/pipeline"
	"github.com/matzehuels/buttonstrip/pkg/settings"
)

var (
	editKeyStyle   = lipgloss.NewStyle().Foreground(colorDim)
	editValueStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	editErrStyle   = lipgloss.NewStyle().Foreground(colorRed)
)

// =============================================================================
// EditModel - Interactive handle drag
// =============================================================================

// EditModel is the bubbletea model that drags one shape handle with the
// arrow keys. Every step re-runs the render pass with the trim frozen, the
// same loop a pointer drag drives in a browser.
type EditModel struct {
	ctx     context.Context
	runner  *pipeline.Runner
	opts    pipeline.Options
	input   frame.Input
	session *editor.Session
	frame   frame.Frame
	step    float64
	err     error

	// Set when the user confirms with enter.
	Saved bool
	Value float64
	Patch settings.Patch
}

// NewEditModel computes the edit-mode frame for in and starts a session on
// the handle of itemID.
func NewEditModel(ctx context.Context, runner *pipeline.Runner, opts pipeline.Options, in frame.Input, itemID string) (*EditModel, error) {
	in.Edit = true
	in.Drag = nil
	f, err := runner.Compute(ctx, in, opts)
	if err != nil {
		return nil, err
	}
	sess, err := editor.Begin(f, itemID)
	if err != nil {
		return nil, err
	}
	sess.Input = in
	observability.Editor().OnEditBegin(ctx, itemID, sess.Handle.Param)
	return &EditModel{
		ctx:     ctx,
		runner:  runner,
		opts:    opts,
		input:   in,
		session: sess,
		frame:   f,
		step:    1,
	}, nil
}

func (m *EditModel) Init() tea.Cmd {
	return nil
}

func (m *EditModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "enter":
		m.Value, m.Patch = m.session.End()
		m.Saved = true
		observability.Editor().OnEditEnd(m.ctx, m.session.Item, m.session.Handle.Param, m.Value, time.Since(m.session.Started))
		return m, tea.Quit
	case "left", "up", "h", "k":
		m.move(-m.step)
	case "right", "down", "l", "j":
		m.move(m.step)
	case "shift+left", "shift+up", "H", "K":
		m.move(-10 * m.step)
	case "shift+right", "shift+down", "L", "J":
		m.move(10 * m.step)
	}
	return m, nil
}

// move shifts the handle by delta pixels along its axis and re-renders.
func (m *EditModel) move(delta float64) {
	h := m.session.Handle
	x, y := h.AnchorX, h.AnchorY
	if h.Axis == geometry.AxisY {
		y += delta
	} else {
		x += delta
	}
	drag := m.session.Move(x, y)

	in := m.input
	in.Drag = &drag
	f, err := m.runner.Compute(m.ctx, in, m.opts)
	if err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.frame = f
	m.session.Track(f)
}

func (m *EditModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Edit " + m.session.Handle.Param))
	b.WriteString("\n")
	b.WriteString(editKeyStyle.Render("←/→ move  shift+←/→ move ×10  ⏎ save  q quit"))
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "%s %s\n", editKeyStyle.Render("item   "), StyleValue.Render(m.session.Item))
	fmt.Fprintf(&b, "%s %s\n", editKeyStyle.Render("trim   "), editValueStyle.Render(fmt.Sprintf("%.1f", m.session.Trim)))
	fmt.Fprintf(&b, "%s %s\n", editKeyStyle.Render("value  "), editValueStyle.Render(fmt.Sprintf("%.2f", m.session.Value())))
	fmt.Fprintf(&b, "%s %s\n", editKeyStyle.Render("saved as"), StyleValue.Render(fmt.Sprintf("%.0f", m.session.Handle.Persisted(m.session.Trim))))
	b.WriteString("\n")
	b.WriteString(layoutTable(m.frame))
	b.WriteString("\n")
	if m.err != nil {
		b.WriteString(editErrStyle.Render(m.err.Error()))
		b.WriteString("\n")
	}
	return b.String()
}
