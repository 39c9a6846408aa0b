package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/bjaus/boxtable"
	"github.com/bjaus/boxtable/console"
	"github.com/bjaus/boxtable/internal/config"
	"github.com/bjaus/boxtable/internal/logger"
	"github.com/bjaus/boxtable/lineio"
)

// record is one input line split into cells.
type record struct {
	cells  []string
	footer []string
	wrap   bool
}

func (r record) Row() []string    { return r.cells }
func (r record) Footer() []string { return r.footer }
func (r record) Wrap() bool       { return r.wrap }

// NewRenderCommand returns the render command.
func NewRenderCommand() *cobra.Command {
	cfg := &config.Render{}
	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render delimited rows as a box-drawing table",
		Long: `Render reads one row per input line, splits it on the delimiter and draws
the rows inside a box-drawing table. Columns come from a YAML layout file
(--layout) and/or padded column specs (--column):

  boxtable render -c "Name      " -c "     Score" -n scores.tsv

Every flag can also be set with a BOXTABLE_<FLAG> environment variable.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args, cfg)
		},
	}
	cfg.AddFlags(cmd.Flags())
	return cmd
}

func runRender(cmd *cobra.Command, args []string, cfg *config.Render) error {
	log := logger.FromContext(cmd.Context())
	msgs := consoleFor(cmd.ErrOrStderr())

	lf, err := cfg.LayoutFile(cmd.Flags().Changed)
	if err != nil {
		return err
	}
	r, err := lf.Renderer()
	if err != nil {
		return err
	}
	sep, err := cfg.Separator()
	if err != nil {
		return err
	}
	log.V(1).Info("layout resolved", "columns", r.Layout().Len(), "border", lf.Border.String(), "width", r.TableWidth())

	in, err := openInput(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}
	lines, err := lineio.ReadAll(in)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	dataCols := r.Layout().Len()
	if r.Layout().HasLineNumber() {
		dataCols--
	}
	records, footer := parseRecords(lines, sep, dataCols, cfg, msgs)
	if len(records) > 0 {
		records[0].footer = footer
	}
	log.V(1).Info("input parsed", "lines", len(lines), "rows", len(records), "footer", footer != nil)

	table, err := boxtable.Lines(r, records...)
	if err != nil {
		return err
	}
	if err := writeOutput(cmd.OutOrStdout(), cfg.Output, table); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	log.Info("table rendered", "rows", len(records), "lines", len(table))
	return nil
}

// parseRecords splits input lines into rows of exactly n cells. Rows with
// too few cells are padded and rows with too many are cut, with a warning.
func parseRecords(lines []string, sep string, n int, cfg *config.Render, msgs *console.Logger) ([]record, []string) {
	var records []record
	for i, line := range lines {
		if i < cfg.HeaderRows || strings.TrimSpace(line) == "" {
			continue
		}
		cells := strings.Split(line, sep)
		if len(cells) != n {
			_ = msgs.Warnf("line %d: %d cells, layout has %d columns", i+1, len(cells), n)
			cells = fitCells(cells, n)
		}
		records = append(records, record{cells: cells, wrap: cfg.Wrap})
	}
	// A lone row stays in the body.
	if !cfg.Footer || len(records) < 2 {
		return records, nil
	}
	last := records[len(records)-1]
	return records[:len(records)-1], last.cells
}

func fitCells(cells []string, n int) []string {
	if len(cells) >= n {
		return cells[:n]
	}
	return append(cells, make([]string, n-len(cells))...)
}

func openInput(stdin io.Reader, args []string) (lineio.Reader, error) {
	if len(args) == 0 || args[0] == "-" {
		return lineio.NewReader(stdin), nil
	}
	return lineio.OpenFile(args[0])
}

// writeOutput writes the rendered table to stdout or to path. The file is
// only created once there is a table to put in it.
func writeOutput(stdout io.Writer, path string, table []string) error {
	if path == "" || path == "-" {
		return lineio.WriteAll(lineio.NewWriter(stdout), table)
	}
	fw, err := lineio.CreateFile(path)
	if err != nil {
		return err
	}
	if err := lineio.WriteAll(fw, table); err != nil {
		_ = fw.Close()
		return err
	}
	return fw.Close()
}

func consoleFor(w io.Writer) *console.Logger {
	styled := false
	if f, ok := w.(*os.File); ok {
		styled = term.IsTerminal(int(f.Fd()))
	}
	return console.New(lineio.NewWriter(w), console.Warn, console.WithStyle(styled))
}
