package boxtable

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for programmatic error handling. Contract violations panic
// with an error wrapping one of these; data problems return them.
var (
	ErrEmptyLayout       = errors.New("empty layout")
	ErrInvalidWidth      = errors.New("invalid column width")
	ErrSealed            = errors.New("layout already sealed")
	ErrNotSealed         = errors.New("layout not sealed")
	ErrCellCount         = errors.New("cell count mismatch")
	ErrUnsupportedGroup  = errors.New("unsupported render group")
	ErrUnknownPattern    = errors.New("no cell pattern")
	ErrUnsupportedBorder = errors.New("unsupported border style")
	ErrUnsupportedAlign  = errors.New("unsupported alignment")
	ErrInvalidLayout     = errors.New("invalid layout")
	ErrMissingInterface  = errors.New("missing required interface")
)

// Alignment controls column text alignment.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

var alignNames = [...]string{"left", "center", "right"}

// String returns the alignment name.
func (a Alignment) String() string {
	if a < 0 || int(a) >= len(alignNames) {
		return fmt.Sprintf("Alignment(%d)", int(a))
	}
	return alignNames[a]
}

// ParseAlignment parses "left", "center" or "right". The empty string is
// [AlignLeft].
func ParseAlignment(s string) (Alignment, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return AlignLeft, nil
	}
	for i, name := range alignNames {
		if name == s {
			return Alignment(i), nil
		}
	}
	return AlignLeft, fmt.Errorf("%w: %q", ErrUnsupportedAlign, s)
}

// MarshalText implements encoding.TextMarshaler.
func (a Alignment) MarshalText() ([]byte, error) {
	if a < 0 || int(a) >= len(alignNames) {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedAlign, int(a))
	}
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Alignment) UnmarshalText(text []byte) error {
	v, err := ParseAlignment(string(text))
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// Role is a column's structural type.
type Role int

const (
	RoleLineNumber Role = iota
	RoleFirst
	RoleMiddle
	RoleLast
)

// String returns the role name.
func (r Role) String() string {
	switch r {
	case RoleLineNumber:
		return "line-number"
	case RoleFirst:
		return "first"
	case RoleMiddle:
		return "middle"
	case RoleLast:
		return "last"
	default:
		return fmt.Sprintf("Role(%d)", int(r))
	}
}

// Group is the structural context of a rendered line.
type Group int

const (
	HeadTop Group = iota
	HeadLine
	BodySep
	BodyLine
	BodyBtm
	Summary

	numGroups
)

// String returns the group name.
func (g Group) String() string {
	switch g {
	case HeadTop:
		return "head-top"
	case HeadLine:
		return "head-line"
	case BodySep:
		return "body-sep"
	case BodyLine:
		return "body-line"
	case BodyBtm:
		return "body-btm"
	case Summary:
		return "summary"
	default:
		return fmt.Sprintf("Group(%d)", int(g))
	}
}

// borderOnly reports whether g draws only glyphs and never caller text.
func (g Group) borderOnly() bool {
	return g == HeadTop || g == BodySep || g == BodyBtm
}

// --- Row interfaces for Write and Lines ---

// Rower provides row data. Required by [Write] and [Lines].
type Rower interface {
	Row() []string
}

// Footered renders a borderless summary row below the table.
// Default: no summary.
type Footered interface {
	Footer() []string
}

// Grouped returns a group key for the item. When consecutive items have
// different group keys, a body separator is inserted between them.
type Grouped interface {
	Group() string
}

// Wrapped enables multi-line rendering of overlong cells. Without it, cells
// are truncated and marked with "~".
type Wrapped interface {
	Wrap() bool
}
