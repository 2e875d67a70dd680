package main

import (
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	overlay "github.com/grindlemire/go-overlay"
)

const statusLines = 2

var (
	targetStyle = lipgloss.NewStyle().Foreground(colorCyan)
	sourceStyle = lipgloss.NewStyle().Foreground(colorGreen)
	statusStyle = lipgloss.NewStyle().Foreground(colorDim)
)

type cell uint8

const (
	cellEmpty cell = iota
	cellTarget
	cellSource
)

// previewModel drives a real controller against a document sized to the
// terminal. One cell is one pixel.
type previewModel struct {
	doc    *overlay.Document
	parent *overlay.Node
	target *overlay.Node
	source *overlay.Node
	ctrl   *overlay.Controller

	opts       []overlay.Option
	placements []overlay.Placement
	current    int
	logger     *log.Logger

	width  int
	height int
}

func newPreviewModel(opts []overlay.Option, logger *log.Logger, width, height int) *previewModel {
	m := &previewModel{
		doc:        overlay.NewDocument(float64(width), float64(height-statusLines)),
		parent:     overlay.NewNode("div"),
		target:     overlay.NewNode("button", overlay.WithBounds(overlay.NewRect(float64(width/2-4), float64(height/3), 8, 2))),
		source:     overlay.NewNode("div", overlay.WithBounds(overlay.NewRect(0, 0, 20, 6))),
		opts:       opts,
		placements: overlay.DefaultFlipOrder(),
		logger:     logger,
		width:      width,
		height:     height,
	}
	m.parent.AppendChild(m.target, m.source)
	m.doc.Body().AppendChild(m.parent)
	m.buildController()
	return m
}

func (m *previewModel) buildController() {
	if m.ctrl != nil {
		m.ctrl.Dispose()
	}
	opts := append([]overlay.Option{}, m.opts...)
	opts = append(opts,
		overlay.WithLogger(m.logger),
		overlay.WithModifiers(overlay.DefaultPlacement(m.placements[m.current])),
	)
	var ctrl *overlay.Controller
	ctrl = overlay.NewController(m.doc, nil, m.parent, m.target, m.source, func(open bool) {
		if open {
			ctrl.OpenWithPosition()
		}
	}, opts...)
	m.ctrl = ctrl
}

func (m *previewModel) Init() tea.Cmd {
	return nil
}

func (m *previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m.doc.Drain()
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			m.moveTarget(0, -1)
		case "down", "j":
			m.moveTarget(0, 1)
		case "left", "h":
			m.moveTarget(-1, 0)
		case "right", "l":
			m.moveTarget(1, 0)
		case "enter", " ":
			m.doc.MouseDown(m.target)
		case "esc":
			m.doc.KeyDown(overlay.KeyEscape)
		case "tab":
			wasOpen := m.ctrl.IsOpen()
			m.current = (m.current + 1) % len(m.placements)
			m.buildController()
			if wasOpen {
				m.ctrl.Open(nil)
			}
		}
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.doc.Resize(float64(msg.Width), float64(max(msg.Height-statusLines, 0)))
	}
	return m, nil
}

// moveTarget shifts the target and lets the controller follow through a
// scroll event, the way a page scroll would.
func (m *previewModel) moveTarget(dx, dy float64) {
	r := m.target.BoundingRect().Translate(dx, dy)
	m.target.SetBounds(r)
	m.doc.Scroll(nil)
}

func (m *previewModel) grid() [][]cell {
	rows := max(m.height-statusLines, 0)
	g := make([][]cell, rows)
	for y := range g {
		g[y] = make([]cell, m.width)
	}
	fill := func(r overlay.Rect, c cell) {
		for y := int(r.Y); y < int(r.Y+r.Height); y++ {
			for x := int(r.X); x < int(r.X+r.Width); x++ {
				if y >= 0 && y < rows && x >= 0 && x < m.width {
					g[y][x] = c
				}
			}
		}
	}
	fill(m.target.BoundingRect(), cellTarget)
	if pos, ok := m.ctrl.Position(); ok && m.ctrl.IsOpen() {
		fill(pos.Rect(m.source.BoundingRect().Size()), cellSource)
	}
	return g
}

func (m *previewModel) View() string {
	var b strings.Builder
	for _, row := range m.grid() {
		renderRow(&b, row)
		b.WriteByte('\n')
	}
	b.WriteString(m.status())
	return b.String()
}

func renderRow(b *strings.Builder, row []cell) {
	for i := 0; i < len(row); {
		j := i
		for j < len(row) && row[j] == row[i] {
			j++
		}
		n := j - i
		switch row[i] {
		case cellTarget:
			b.WriteString(targetStyle.Render(strings.Repeat("█", n)))
		case cellSource:
			b.WriteString(sourceStyle.Render(strings.Repeat("▒", n)))
		default:
			b.WriteString(strings.Repeat(" ", n))
		}
		i = j
	}
}

func (m *previewModel) status() string {
	state := "closed"
	if m.ctrl.IsOpen() {
		state = "open"
		if pos, ok := m.ctrl.Position(); ok {
			state = fmt.Sprintf("open at %s (%v,%v)", pos.Placement, pos.X, pos.Y)
			if pos.Overflow {
				state += warnStyle.Render(" not enough space")
			}
		}
	}
	line := fmt.Sprintf("default: %s  %s", m.placements[m.current], state)
	help := "arrows move  enter toggle  esc close  tab placement  q quit"
	return line + "\n" + statusStyle.Render(help)
}

func (a *app) previewCommand() *cobra.Command {
	var (
		width  int
		height int
	)

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Interactively move a target and watch the overlay reposition",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}
			opts, err := cfg.Options()
			if err != nil {
				return err
			}
			// Diagnostics go nowhere while the terminal is owned by the
			// preview; overflow is shown in the status line instead.
			quiet := log.NewWithOptions(io.Discard, log.Options{})
			model := newPreviewModel(opts, quiet, width, height)

			a.logger.Debug("starting preview", "placement", model.placements[model.current])
			if _, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context())).Run(); err != nil {
				return fmt.Errorf("run preview: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&width, "width", 80, "initial viewport width in cells")
	cmd.Flags().IntVar(&height, "height", 24, "initial viewport height in cells")
	return cmd
}
