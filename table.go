package boxtable

import (
	"fmt"
	"io"
	"strconv"
)

// Lines renders items as a complete table: top border, header, header
// separator, body rows, bottom border and an optional summary row. Items
// must implement [Rower]; optional interfaces are read from the first item.
func Lines[T any](r *Renderer, items ...T) ([]string, error) {
	var first any
	if len(items) > 0 {
		first = any(items[0])
		if _, ok := first.(Rower); !ok {
			return nil, fmt.Errorf("%w: table requires Rower, not implemented by %T", ErrMissingInterface, items[0])
		}
	}

	wrap := false
	if w, ok := first.(Wrapped); ok {
		wrap = w.Wrap()
	}

	var groups []string
	if _, ok := first.(Grouped); ok {
		groups = make([]string, len(items))
		for i, item := range items {
			groups[i] = any(item).(Grouped).Group()
		}
	}

	var footer []string
	if f, ok := first.(Footered); ok {
		footer = f.Footer()
	}

	lines := []string{
		r.FormatBuiltinLine(HeadTop),
		r.FormatBuiltinLine(HeadLine),
		r.FormatBuiltinLine(BodySep),
	}

	for i, item := range items {
		if len(groups) > 0 && i > 0 && groups[i] != groups[i-1] {
			lines = append(lines, r.FormatBuiltinLine(BodySep))
		}
		cells, err := r.rowCells(any(item).(Rower).Row(), strconv.Itoa(i+1))
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		if wrap {
			lines = append(lines, r.FormatWrappedRow(BodyLine, cells)...)
		} else {
			lines = append(lines, r.FormatRow(BodyLine, cells))
		}
	}

	lines = append(lines, r.FormatBuiltinLine(BodyBtm))

	if len(footer) > 0 {
		cells, err := r.rowCells(footer, "")
		if err != nil {
			return nil, fmt.Errorf("footer: %w", err)
		}
		lines = append(lines, r.FormatRow(Summary, cells))
	}
	return lines, nil
}

// Write renders items with [Lines] and writes one line per table line to w.
func Write[T any](w io.Writer, r *Renderer, items ...T) error {
	lines, err := Lines(r, items...)
	if err != nil {
		return err
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// rowCells prepends the line number when the layout has an index column and
// checks the cell count against the data columns.
func (r *Renderer) rowCells(row []string, num string) ([]string, error) {
	want := len(r.layout.columns)
	if r.layout.hasLineNumber {
		want--
	}
	if len(row) != want {
		return nil, fmt.Errorf("%w: got %d cells, want %d", ErrCellCount, len(row), want)
	}
	if !r.layout.hasLineNumber {
		return row, nil
	}
	return append([]string{num}, row...), nil
}

// IsSupported reports whether type T implements the interfaces [Lines] and
// [Write] require.
func IsSupported[T any]() bool {
	var zero T
	_, ok := any(zero).(Rower)
	return ok
}
