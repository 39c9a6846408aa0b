package boxtable

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// cellMargin is the number of margin glyphs on each side of a cell.
const cellMargin = 1

// truncMarker replaces the right margin of a cell whose text was cut.
const truncMarker = "~"

// noGlyph marks an empty pattern slot.
const noGlyph Position = -1

// pattern holds the glyph positions framing one cell.
type pattern struct {
	leftBorder, rightBorder Position
	leftMargin, rightMargin Position
}

const (
	lt, rt, lb, rb = CornerLeftTop, CornerRightTop, CornerLeftBottom, CornerRightBottom
	lm, rm, tm, bm = SepLeft, SepRight, SepTop, SepBottom
	ll, rr, tt, bb = BorderLeft, BorderRight, BorderTop, BorderBottom
	iv, ih, ic, ch = InnerVert, InnerHori, InnerCross, InnerHighlight
	cm             = InnerMargin
	__             = noGlyph
)

// cellPatterns[group][role] is total over every group and role.
var cellPatterns = [numGroups][4]pattern{
	HeadTop: {
		RoleLineNumber: {__, __, cm, cm},
		RoleFirst:      {lt, tm, tt, tt},
		RoleMiddle:     {tm, tm, tt, tt},
		RoleLast:       {tm, rt, tt, tt},
	},
	HeadLine: {
		RoleLineNumber: {__, __, cm, cm},
		RoleFirst:      {ll, iv, cm, cm},
		RoleMiddle:     {iv, iv, cm, cm},
		RoleLast:       {iv, rr, cm, cm},
	},
	BodySep: {
		RoleLineNumber: {__, __, cm, cm},
		RoleFirst:      {lm, ic, ih, ih},
		RoleMiddle:     {ic, ic, ih, ih},
		RoleLast:       {ic, rm, ih, ih},
	},
	BodyLine: {
		RoleLineNumber: {__, __, cm, cm},
		RoleFirst:      {ll, iv, ch, cm},
		RoleMiddle:     {iv, iv, ch, cm},
		RoleLast:       {iv, rr, ch, cm},
	},
	BodyBtm: {
		RoleLineNumber: {__, __, cm, cm},
		RoleFirst:      {lb, bm, bb, bb},
		RoleMiddle:     {bm, bm, bb, bb},
		RoleLast:       {bm, rb, bb, bb},
	},
	Summary: {
		RoleLineNumber: {__, __, cm, cm},
		RoleFirst:      {cm, cm, cm, cm},
		RoleMiddle:     {cm, cm, cm, cm},
		RoleLast:       {cm, cm, cm, cm},
	},
}

func lookupPattern(g Group, r Role) pattern {
	if g < 0 || g >= numGroups || r < RoleLineNumber || r > RoleLast {
		panic(fmt.Errorf("%w: group %s, role %s", ErrUnknownPattern, g, r))
	}
	return cellPatterns[g][r]
}

// Option configures a [Renderer].
type Option func(*Renderer)

// WithBorder selects the glyph set. Default: [BorderSingle].
func WithBorder(b BorderStyle) Option {
	return func(r *Renderer) { r.glyphs = GlyphSet(b) }
}

// Renderer formats cells and lines for a sealed [Layout]. It never mutates
// the layout and is safe for concurrent use.
type Renderer struct {
	layout *Layout
	glyphs *Glyphs
}

// NewRenderer attaches a sealed layout. It panics if the layout is not
// sealed.
func NewRenderer(l *Layout, opts ...Option) *Renderer {
	if l == nil || !l.sealed {
		panic(fmt.Errorf("%w: attach requires a sealed layout", ErrNotSealed))
	}
	r := &Renderer{layout: l, glyphs: GlyphSet(BorderSingle)}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Layout returns the attached layout.
func (r *Renderer) Layout() *Layout { return r.layout }

// Glyph returns the glyph drawn at p by this renderer.
func (r *Renderer) Glyph(p Position) string {
	if p == noGlyph {
		return ""
	}
	return r.glyphs.At(p)
}

// TableWidth returns 1 for the left border plus, per column, its width alone
// for the line-number column and width+2*margin+1 otherwise.
func (r *Renderer) TableWidth() int {
	width := 1
	for _, c := range r.layout.columns {
		if c.Role == RoleLineNumber {
			width += c.Width
			continue
		}
		width += c.Width + 2*cellMargin + 1
	}
	return width
}

// roleAt derives the structural type of column i from its position.
func (r *Renderer) roleAt(i int) Role {
	n := len(r.layout.columns)
	switch {
	case i < 0 || i >= n:
		panic(fmt.Errorf("%w: column %d of %d", ErrCellCount, i, n))
	case i == 0 && r.layout.hasLineNumber:
		return RoleLineNumber
	case i == n-1:
		return RoleLast
	case i == r.firstData():
		return RoleFirst
	default:
		return RoleMiddle
	}
}

func (r *Renderer) firstData() int {
	if r.layout.hasLineNumber {
		return 1
	}
	return 0
}

// patternAt resolves the cell pattern of column i. A lone data column is
// both first and last: it opens with the First border and closes with the
// Last one.
func (r *Renderer) patternAt(g Group, i int) (Role, pattern) {
	role := r.roleAt(i)
	p := lookupPattern(g, role)
	if role == RoleLast && i == r.firstData() {
		first := lookupPattern(g, RoleFirst)
		p.leftBorder, p.leftMargin = first.leftBorder, first.leftMargin
	}
	return role, p
}

// shapedCell is a formatted cell split so adjacent cells can share a border.
type shapedCell struct {
	leftBorder  string
	body        string
	rightBorder string
}

func (c shapedCell) String() string { return c.leftBorder + c.body + c.rightBorder }

func (r *Renderer) shape(g Group, i int, text string, truncate bool) shapedCell {
	role, p := r.patternAt(g, i)
	col := r.layout.columns[i]
	leftMargin, rightMargin := r.Glyph(p.leftMargin), r.Glyph(p.rightMargin)

	var content string
	switch {
	case role == RoleLineNumber:
		if g.borderOnly() || text == "" {
			content = strings.Repeat(" ", col.Width)
		} else {
			content = zeroPad(text, col.Width)
		}
	case g.borderOnly():
		content = strings.Repeat(leftMargin, col.Width)
	default:
		if truncate && runewidth.StringWidth(text) >= col.Width {
			text = runewidth.Truncate(text, col.Width, "")
			rightMargin = truncMarker
		}
		content = alignCell(text, col.Width, col.Align)
	}
	return shapedCell{
		leftBorder:  r.Glyph(p.leftBorder),
		body:        leftMargin + content + rightMargin,
		rightBorder: r.Glyph(p.rightBorder),
	}
}

// FormatCell renders the text of column i as a single cell including both
// borders. Text as wide as the column or wider is cut to the column width
// and the right margin becomes "~". Border-only groups ignore text.
func (r *Renderer) FormatCell(g Group, i int, text string) string {
	return r.shape(g, i, text, true).String()
}

// FormatRow renders one line of cells. Adjacent cells share a single border
// glyph. It panics unless g is [HeadLine], [BodyLine] or [Summary] and
// len(cells) equals the column count.
func (r *Renderer) FormatRow(g Group, cells []string) string {
	switch g {
	case HeadLine, BodyLine, Summary:
	default:
		panic(fmt.Errorf("%w: %s in FormatRow", ErrUnsupportedGroup, g))
	}
	r.mustMatch(cells)
	return r.join(g, cells, true)
}

// FormatBuiltinLine renders a structural line: the top border, the header
// titles, the header separator or the bottom border.
func (r *Renderer) FormatBuiltinLine(g Group) string {
	cells := make([]string, len(r.layout.columns))
	switch g {
	case HeadLine:
		cells = r.layout.Titles()
	case HeadTop, BodySep, BodyBtm:
	default:
		panic(fmt.Errorf("%w: %s in FormatBuiltinLine", ErrUnsupportedGroup, g))
	}
	return r.join(g, cells, true)
}

// FormatWrappedRow renders cells across as many lines as the widest cell
// needs. Each line takes the next column-width window of every cell; cells
// that run out render blank. No truncation marker is used. The line number
// is never split: it sits on the first line and overflows as in FormatRow.
func (r *Renderer) FormatWrappedRow(g Group, cells []string) []string {
	switch g {
	case HeadLine, BodyLine:
	default:
		panic(fmt.Errorf("%w: %s in FormatWrappedRow", ErrUnsupportedGroup, g))
	}
	r.mustMatch(cells)

	windows := make([][]string, len(cells))
	waves := 1
	for i, text := range cells {
		if r.roleAt(i) == RoleLineNumber {
			if text != "" {
				windows[i] = []string{text}
			}
			continue
		}
		windows[i] = splitWindows(text, r.layout.columns[i].Width)
		waves = max(waves, len(windows[i]))
	}

	lines := make([]string, waves)
	wave := make([]string, len(cells))
	for k := 0; k < waves; k++ {
		for i := range cells {
			wave[i] = ""
			if k < len(windows[i]) {
				wave[i] = windows[i][k]
			}
		}
		lines[k] = r.join(g, wave, false)
	}
	return lines
}

func (r *Renderer) join(g Group, cells []string, truncate bool) string {
	var sb strings.Builder
	shared := false
	for i, text := range cells {
		c := r.shape(g, i, text, truncate)
		if !shared {
			sb.WriteString(c.leftBorder)
		}
		sb.WriteString(c.body)
		sb.WriteString(c.rightBorder)
		shared = c.rightBorder != ""
	}
	return sb.String()
}

func (r *Renderer) mustMatch(cells []string) {
	if len(cells) != len(r.layout.columns) {
		panic(fmt.Errorf("%w: got %d cells, layout has %d columns", ErrCellCount, len(cells), len(r.layout.columns)))
	}
}

func zeroPad(s string, width int) string {
	pad := width - runewidth.StringWidth(s)
	if pad <= 0 {
		return s
	}
	return strings.Repeat("0", pad) + s
}

// alignCell pads s with spaces to width columns. Center puts the odd space
// on the right.
func alignCell(s string, width int, align Alignment) string {
	free := max(width-runewidth.StringWidth(s), 0)
	var before int
	switch align {
	case AlignRight:
		before = free
	case AlignCenter:
		before = free / 2
	}
	return strings.Repeat(" ", before) + s + strings.Repeat(" ", free-before)
}
