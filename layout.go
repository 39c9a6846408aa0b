package boxtable

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

const (
	lineNumberWidth = 2
	lineNumberTitle = "No"
)

// Column describes one table column. Width counts content display columns
// and excludes margins and borders.
type Column struct {
	Width int
	Title string
	Align Alignment
	Role  Role
}

// Layout is an ordered set of columns. Build it with [Layout.Append] and
// [Layout.AppendAuto], then call [Layout.Seal] before handing it to
// [NewRenderer]. A sealed layout is immutable.
type Layout struct {
	columns       []Column
	hasLineNumber bool
	sealed        bool
}

// NewLayout returns an empty layout.
func NewLayout() *Layout {
	return &Layout{}
}

// Append adds a column. The first appended column gets [RoleFirst], the rest
// [RoleMiddle] until [Layout.Seal] marks the last one. It panics if width is
// not positive or the layout is sealed.
func (l *Layout) Append(width int, title string, align Alignment) *Layout {
	if l.sealed {
		panic(fmt.Errorf("%w: append %q", ErrSealed, title))
	}
	if width <= 0 {
		panic(fmt.Errorf("%w: column %q has width %d", ErrInvalidWidth, title, width))
	}
	role := RoleMiddle
	if len(l.columns) == 0 {
		role = RoleFirst
	}
	l.columns = append(l.columns, Column{Width: width, Title: title, Align: align, Role: role})
	return l
}

// AppendAuto adds a column described by a single spec string:
//
//	"Name      "  width 10, left
//	"     Score"  width 10, right
//	"  Status  "  width 10, center
//
// The width is the display width of the untrimmed spec and the title is the
// trimmed spec. A blank spec yields an untitled left-aligned column.
func (l *Layout) AppendAuto(spec string) *Layout {
	return l.Append(runewidth.StringWidth(spec), strings.TrimSpace(spec), inferAlign(spec))
}

func inferAlign(spec string) Alignment {
	if strings.TrimSpace(spec) == "" {
		return AlignLeft
	}
	lead := strings.HasPrefix(spec, " ")
	trail := strings.HasSuffix(spec, " ")
	switch {
	case lead && trail:
		return AlignCenter
	case lead:
		return AlignRight
	default:
		return AlignLeft
	}
}

// Seal marks the last column [RoleLast] and, when withLineNumber is set,
// prepends a width-2 "No" column with [RoleLineNumber]. It panics on an
// empty or already sealed layout.
func (l *Layout) Seal(withLineNumber bool) *Layout {
	if l.sealed {
		panic(fmt.Errorf("%w: seal called twice", ErrSealed))
	}
	if len(l.columns) == 0 {
		panic(fmt.Errorf("%w: seal requires at least one column", ErrEmptyLayout))
	}
	l.columns[len(l.columns)-1].Role = RoleLast
	l.hasLineNumber = withLineNumber
	if withLineNumber {
		idx := Column{Width: lineNumberWidth, Title: lineNumberTitle, Align: AlignLeft, Role: RoleLineNumber}
		l.columns = append([]Column{idx}, l.columns...)
	}
	l.sealed = true
	return l
}

// Sealed reports whether Seal has been called.
func (l *Layout) Sealed() bool { return l.sealed }

// HasLineNumber reports whether the first column is the line-number column.
func (l *Layout) HasLineNumber() bool { return l.hasLineNumber }

// Len returns the number of columns, including the line-number column.
func (l *Layout) Len() int { return len(l.columns) }

// Column returns the i-th column.
func (l *Layout) Column(i int) Column { return l.columns[i] }

// Columns returns a copy of the columns.
func (l *Layout) Columns() []Column {
	out := make([]Column, len(l.columns))
	copy(out, l.columns)
	return out
}

// Titles returns the column titles in order.
func (l *Layout) Titles() []string {
	out := make([]string, len(l.columns))
	for i, c := range l.columns {
		out[i] = c.Title
	}
	return out
}
