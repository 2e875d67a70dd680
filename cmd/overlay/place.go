package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	overlay "github.com/grindlemire/go-overlay"
	"github.com/grindlemire/go-overlay/config"
)

var (
	colorCyan  = lipgloss.Color("14")
	colorGreen = lipgloss.Color("10")
	colorRed   = lipgloss.Color("9")
	colorDim   = lipgloss.Color("8")

	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	chosenStyle = lipgloss.NewStyle().Bold(true).Foreground(colorGreen)
	missStyle   = lipgloss.NewStyle().Foreground(colorDim)
	warnStyle   = lipgloss.NewStyle().Foreground(colorRed)
)

type placeOptions struct {
	target          []float64
	source          []float64
	window          []float64
	cursor          []float64
	placement       string
	flip            []string
	padding         float64
	viewportPadding float64
	scrollToFit     bool
	json            bool
}

// placeReport is the JSON form of one evaluation.
type placeReport struct {
	Placement overlay.Placement `json:"placement"`
	X         float64           `json:"x"`
	Y         float64           `json:"y"`
	Top       string            `json:"top"`
	Left      string            `json:"left"`
	Overflow  bool              `json:"overflow"`
	Tried     []candidateReport `json:"tried"`
}

type candidateReport struct {
	Placement overlay.Placement `json:"placement"`
	X         float64           `json:"x"`
	Y         float64           `json:"y"`
	Fits      bool              `json:"fits"`
}

func (a *app) placeCommand() *cobra.Command {
	var opts placeOptions

	cmd := &cobra.Command{
		Use:   "place",
		Short: "Evaluate where a source lands around a target",
		Long:  `place runs one positioning pass and prints every candidate that was tried, the chosen placement and the style offsets that would be applied.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("placement") {
				cfg.Placement = opts.placement
			}
			if flags.Changed("flip") {
				cfg.FlipOrder = opts.flip
			}
			if flags.Changed("padding") {
				cfg.Padding = opts.padding
			}
			if flags.Changed("viewport-padding") {
				cfg.ViewportPadding = opts.viewportPadding
			}
			if flags.Changed("scroll-to-fit") {
				cfg.ScrollToFit = opts.scrollToFit
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			res, err := a.evaluate(cfg, opts)
			if err != nil {
				return err
			}
			if opts.json {
				return writeJSON(cmd.OutOrStdout(), res)
			}
			return writeTable(cmd.OutOrStdout(), res)
		},
	}

	cmd.Flags().Float64SliceVar(&opts.target, "target", []float64{100, 100, 50, 20}, "target rectangle as x,y,width,height")
	cmd.Flags().Float64SliceVar(&opts.source, "source", []float64{30, 10}, "source size as width,height")
	cmd.Flags().Float64SliceVar(&opts.window, "window", []float64{800, 600}, "viewport size as width,height")
	cmd.Flags().Float64SliceVar(&opts.cursor, "cursor", nil, "anchor at the cursor x,y instead of the target")
	cmd.Flags().StringVarP(&opts.placement, "placement", "p", "", "default placement (e.g. bottom-center)")
	cmd.Flags().StringSliceVar(&opts.flip, "flip", nil, "flip order, comma separated")
	cmd.Flags().Float64Var(&opts.padding, "padding", 0, "gap between target and source")
	cmd.Flags().Float64Var(&opts.viewportPadding, "viewport-padding", overlay.DefaultViewportPadding, "margin kept from the window edges")
	cmd.Flags().BoolVar(&opts.scrollToFit, "scroll-to-fit", false, "clip the source height to the space below it")
	cmd.Flags().BoolVar(&opts.json, "json", false, "print the result as JSON")

	return cmd
}

func (a *app) evaluate(cfg config.Config, opts placeOptions) (overlay.PlacementResult, error) {
	if len(opts.target) != 4 {
		return overlay.PlacementResult{}, fmt.Errorf("--target: want 4 values, got %d", len(opts.target))
	}
	if len(opts.source) != 2 {
		return overlay.PlacementResult{}, fmt.Errorf("--source: want 2 values, got %d", len(opts.source))
	}
	if len(opts.window) != 2 {
		return overlay.PlacementResult{}, fmt.Errorf("--window: want 2 values, got %d", len(opts.window))
	}

	mods, err := cfg.Modifiers()
	if err != nil {
		return overlay.PlacementResult{}, err
	}
	m := overlay.NewModifiers(mods...)
	switch len(opts.cursor) {
	case 0:
	case 2:
		m = m.With(overlay.OnCursor(true), overlay.CursorAt(opts.cursor[0], opts.cursor[1]))
	default:
		return overlay.PlacementResult{}, fmt.Errorf("--cursor: want 2 values, got %d", len(opts.cursor))
	}

	target := overlay.NewRect(opts.target[0], opts.target[1], opts.target[2], opts.target[3])
	source := overlay.NewRect(0, 0, opts.source[0], opts.source[1])
	window := overlay.Size{Width: opts.window[0], Height: opts.window[1]}

	res := overlay.Evaluate(m, source, target, window)
	a.logger.Debug("evaluated", "placement", res.Placement, "tried", len(res.Tried))
	if res.Overflow {
		a.logger.Warn("not enough space", "placement", res.Placement, "window", window)
	}
	return res, nil
}

func writeJSON(w io.Writer, res overlay.PlacementResult) error {
	report := placeReport{
		Placement: res.Placement,
		X:         res.X,
		Y:         res.Y,
		Top:       overlay.Rem(res.Y),
		Left:      overlay.Rem(res.X),
		Overflow:  res.Overflow,
	}
	for _, c := range res.Tried {
		report.Tried = append(report.Tried, candidateReport{
			Placement: c.Placement,
			X:         c.X,
			Y:         c.Y,
			Fits:      c.Fits,
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	return nil
}

func writeTable(w io.Writer, res overlay.PlacementResult) error {
	chosen := -1
	rows := make([][]string, 0, len(res.Tried))
	for i, c := range res.Tried {
		marker := "  "
		if chosen < 0 && c.Placement == res.Placement && (c.Fits || res.Overflow) {
			chosen = i
			marker = "▸ "
		}
		rows = append(rows, []string{marker, c.Placement.String(), formatPx(c.X), formatPx(c.Y), fitsLabel(c.Fits)})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(missStyle).
		Headers("", "Placement", "X", "Y", "Fits").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return headerStyle
			case row == chosen:
				return chosenStyle
			}
			return missStyle
		})

	summary := fmt.Sprintf("%s at top: %s, left: %s", res.Placement, overlay.Rem(res.Y), overlay.Rem(res.X))
	if res.Overflow {
		summary += warnStyle.Render("  (not enough space, default forced)")
	}
	_, err := fmt.Fprintf(w, "%s\n%s\n", t.Render(), summary)
	return err
}

func formatPx(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func fitsLabel(fits bool) string {
	if fits {
		return "yes"
	}
	return "no"
}
