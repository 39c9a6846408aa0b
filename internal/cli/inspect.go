package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/bjaus/boxtable"
	"github.com/bjaus/boxtable/internal/config"
	"github.com/bjaus/boxtable/internal/logger"
	"github.com/bjaus/boxtable/lineio"
)

type columnRow struct{ c boxtable.Column }

func (r columnRow) Row() []string {
	return []string{r.c.Title, strconv.Itoa(r.c.Width), r.c.Align.String(), r.c.Role.String()}
}

// NewLayoutCommand returns the layout command, which validates a layout file
// and prints its resolved columns.
func NewLayoutCommand() *cobra.Command {
	var lineNumbers bool
	cmd := &cobra.Command{
		Use:   "layout file",
		Short: "Validate a layout file and show its columns",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lf, err := config.LoadLayout(args[0])
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("line-numbers") {
				lf.LineNumbers = lineNumbers
			}
			target, err := lf.Renderer()
			if err != nil {
				return err
			}
			logger.FromContext(cmd.Context()).V(1).Info("layout loaded", "path", args[0], "columns", target.Layout().Len())

			rows := make([]columnRow, 0, target.Layout().Len())
			for _, c := range target.Layout().Columns() {
				rows = append(rows, columnRow{c: c})
			}
			r := boxtable.NewRenderer(
				boxtable.NewLayout().
					AppendAuto("Title           ").
					AppendAuto(" Width").
					AppendAuto(" Align  ").
					AppendAuto("Role        ").
					Seal(true),
				boxtable.WithBorder(lf.Border),
			)
			lines, err := boxtable.Lines(r, rows...)
			if err != nil {
				return err
			}
			out := lineio.NewWriter(cmd.OutOrStdout())
			if err := lineio.WriteAll(out, lines); err != nil {
				return err
			}
			return out.WriteLine("table width: " + strconv.Itoa(target.TableWidth()))
		},
	}
	cmd.Flags().BoolVarP(&lineNumbers, "line-numbers", "n", false, "override the file's line_numbers setting")
	return cmd
}

type glyphRow struct {
	pos   boxtable.Position
	glyph string
}

func (r glyphRow) Row() []string { return []string{r.pos.String(), r.glyph} }

// NewGlyphsCommand returns the glyphs command, which prints the glyph set of
// a border style.
func NewGlyphsCommand() *cobra.Command {
	var border string
	cmd := &cobra.Command{
		Use:   "glyphs",
		Short: "Show the glyphs of a border style",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			style, err := boxtable.ParseBorder(border)
			if err != nil {
				return err
			}
			set := boxtable.GlyphSet(style)
			rows := make([]glyphRow, 0, len(boxtable.Positions()))
			for _, p := range boxtable.Positions() {
				rows = append(rows, glyphRow{pos: p, glyph: set.At(p)})
			}
			r := boxtable.NewRenderer(
				boxtable.NewLayout().AppendAuto("Position          ").AppendAuto(" Glyph ").Seal(false),
				boxtable.WithBorder(style),
			)
			lines, err := boxtable.Lines(r, rows...)
			if err != nil {
				return err
			}
			return lineio.WriteAll(lineio.NewWriter(cmd.OutOrStdout()), lines)
		},
	}
	cmd.Flags().StringVarP(&border, "border", "b", boxtable.BorderSingle.String(), "border style: single, rounded, heavy, double, ascii")
	return cmd
}
