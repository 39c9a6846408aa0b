// Package config resolves CLI settings from flags, BOXTABLE_* environment
// variables and layout files.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/bjaus/boxtable"
)

// EnvPrefix prefixes every environment variable read by BindEnv.
const EnvPrefix = "BOXTABLE"

var (
	ErrNoColumns      = errors.New("no columns: pass --layout or --column")
	ErrInvalidSetting = errors.New("invalid setting")
)

// BindEnv sets every flag of cmd that was not given on the command line from
// BOXTABLE_<FLAG>, with dashes in the flag name turned into underscores.
func BindEnv(cmd *cobra.Command) error {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	var errs []error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if f.Changed || !v.IsSet(f.Name) {
			return
		}
		if err := cmd.Flags().Set(f.Name, v.GetString(f.Name)); err != nil {
			errs = append(errs, fmt.Errorf("%s_%s: %w", EnvPrefix, strings.ToUpper(strings.ReplaceAll(f.Name, "-", "_")), err))
		}
	})
	return errors.Join(errs...)
}

// Render holds the settings of the render command.
type Render struct {
	LayoutPath  string
	Columns     []string
	LineNumbers bool
	Wrap        bool
	Border      string
	Delimiter   string
	HeaderRows  int
	Footer      bool
	Output      string
}

// AddFlags registers the render flags on fs.
func (r *Render) AddFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&r.LayoutPath, "layout", "l", "", "YAML layout file")
	fs.StringArrayVarP(&r.Columns, "column", "c", nil, `column spec; padding sets width and alignment, e.g. "Name    " or "   Score"`)
	fs.BoolVarP(&r.LineNumbers, "line-numbers", "n", false, "prepend a line-number column")
	fs.BoolVarP(&r.Wrap, "wrap", "w", false, "wrap overlong cells instead of truncating them")
	fs.StringVarP(&r.Border, "border", "b", "", "border style: single, rounded, heavy, double, ascii")
	fs.StringVarP(&r.Delimiter, "delimiter", "d", `\t`, "cell delimiter in input lines")
	fs.IntVar(&r.HeaderRows, "header-rows", 0, "number of leading input lines to skip")
	fs.BoolVar(&r.Footer, "footer", false, "render the last input line as a summary row")
	fs.StringVarP(&r.Output, "output", "o", "-", `output file, "-" for stdout`)
}

// Separator returns the delimiter with Go escape sequences such as \t
// resolved.
func (r *Render) Separator() (string, error) {
	if r.Delimiter == "" {
		return "", fmt.Errorf("%w: empty delimiter", ErrInvalidSetting)
	}
	sep, err := strconv.Unquote(`"` + strings.ReplaceAll(r.Delimiter, `"`, `\"`) + `"`)
	if err != nil {
		return "", fmt.Errorf("%w: delimiter %q: %w", ErrInvalidSetting, r.Delimiter, err)
	}
	return sep, nil
}

// LayoutFile resolves the layout description. A layout file is loaded when
// set; columns given with --column are appended after its columns. The
// line-number and border settings override the file when changed is true
// for them.
func (r *Render) LayoutFile(changed func(name string) bool) (*boxtable.LayoutFile, error) {
	f := &boxtable.LayoutFile{}
	if r.LayoutPath != "" {
		loaded, err := LoadLayout(r.LayoutPath)
		if err != nil {
			return nil, err
		}
		f = loaded
	}
	for _, spec := range r.Columns {
		f.Columns = append(f.Columns, boxtable.ColumnSpec{Auto: spec})
	}
	if len(f.Columns) == 0 {
		return nil, ErrNoColumns
	}
	if r.LayoutPath == "" || changed("line-numbers") {
		f.LineNumbers = r.LineNumbers
	}
	if r.Border != "" && (r.LayoutPath == "" || changed("border")) {
		b, err := boxtable.ParseBorder(r.Border)
		if err != nil {
			return nil, err
		}
		f.Border = b
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return f, nil
}

// LoadLayout reads and validates the layout file at path.
func LoadLayout(path string) (*boxtable.LayoutFile, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()
	f, err := boxtable.ReadLayout(fh)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}
