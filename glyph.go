package boxtable

import (
	"fmt"
	"strings"
)

// Position names one slot of the box-drawing grammar.
//
//	┌───┬───┐  <-  LT TT TM TT RT  <- HeadTop
//	│ x │ x │  <-  LL    IV    RR  <- HeadLine
//	├───┼───┤  <-  LM IH IC IH RM  <- BodySep
//	│█x │█x │  <-  LL    IV    RR  <- BodyLine
//	└───┴───┘  <-  LB BB BM BB RB  <- BodyBtm
type Position int

const (
	CornerLeftTop Position = iota
	CornerRightTop
	CornerLeftBottom
	CornerRightBottom
	SepLeft
	SepRight
	SepTop
	SepBottom
	BorderLeft
	BorderRight
	BorderTop
	BorderBottom
	InnerVert
	InnerHori
	InnerCross
	InnerHighlight
	InnerMargin

	numPositions
)

var positionNames = [numPositions]string{
	"CornerLeftTop", "CornerRightTop", "CornerLeftBottom", "CornerRightBottom",
	"SepLeft", "SepRight", "SepTop", "SepBottom",
	"BorderLeft", "BorderRight", "BorderTop", "BorderBottom",
	"InnerVert", "InnerHori", "InnerCross", "InnerHighlight",
	"InnerMargin",
}

// Positions returns every position in table order.
func Positions() []Position {
	out := make([]Position, numPositions)
	for i := range out {
		out[i] = Position(i)
	}
	return out
}

// String returns the position name.
func (p Position) String() string {
	if p < 0 || p >= numPositions {
		return fmt.Sprintf("Position(%d)", int(p))
	}
	return positionNames[p]
}

// Glyphs is a complete glyph set indexed by [Position].
type Glyphs [numPositions]string

// At returns the glyph drawn at p.
func (g *Glyphs) At(p Position) string { return g[p] }

// BorderStyle selects a glyph set.
type BorderStyle int

const (
	BorderSingle  BorderStyle = iota // ┌─┐└┘│┬┴├┤┼
	BorderRounded                    // ╭─╮╰╯│┬┴├┤┼
	BorderHeavy                      // ┏━┓┗┛┃┳┻┣┫╋
	BorderDouble                     // ╔═╗╚╝║╦╩╠╣╬
	BorderASCII                      // +-+|
)

var borderNames = map[BorderStyle]string{
	BorderSingle:  "single",
	BorderRounded: "rounded",
	BorderHeavy:   "heavy",
	BorderDouble:  "double",
	BorderASCII:   "ascii",
}

// String returns the style name accepted by [ParseBorder].
func (b BorderStyle) String() string {
	if s, ok := borderNames[b]; ok {
		return s
	}
	return fmt.Sprintf("BorderStyle(%d)", int(b))
}

// ParseBorder parses a border style name. Matching is case-insensitive.
func ParseBorder(s string) (BorderStyle, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for b, name := range borderNames {
		if name == s {
			return b, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedBorder, s)
}

// MarshalText implements encoding.TextMarshaler.
func (b BorderStyle) MarshalText() ([]byte, error) {
	if _, ok := borderNames[b]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBorder, int(b))
	}
	return []byte(b.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (b *BorderStyle) UnmarshalText(text []byte) error {
	v, err := ParseBorder(string(text))
	if err != nil {
		return err
	}
	*b = v
	return nil
}

var borderSets = map[BorderStyle]*Glyphs{
	BorderSingle: {
		"┌", "┐", "└", "┘",
		"├", "┤", "┬", "┴",
		"│", "│", "─", "─",
		"│", "─", "┼", "█",
		" ",
	},
	BorderRounded: {
		"╭", "╮", "╰", "╯",
		"├", "┤", "┬", "┴",
		"│", "│", "─", "─",
		"│", "─", "┼", "█",
		" ",
	},
	BorderHeavy: {
		"┏", "┓", "┗", "┛",
		"┣", "┫", "┳", "┻",
		"┃", "┃", "━", "━",
		"┃", "━", "╋", "█",
		" ",
	},
	BorderDouble: {
		"╔", "╗", "╚", "╝",
		"╠", "╣", "╦", "╩",
		"║", "║", "═", "═",
		"║", "═", "╬", "█",
		" ",
	},
	BorderASCII: {
		"+", "+", "+", "+",
		"+", "+", "+", "+",
		"|", "|", "-", "-",
		"|", "-", "+", ">",
		" ",
	},
}

// GlyphSet returns the glyph set for b, falling back to [BorderSingle] for
// unknown styles. The returned set is shared and must not be modified.
func GlyphSet(b BorderStyle) *Glyphs {
	if g, ok := borderSets[b]; ok {
		return g
	}
	return borderSets[BorderSingle]
}

// GlyphAt returns the default glyph drawn at p.
func GlyphAt(p Position) string { return borderSets[BorderSingle][p] }
