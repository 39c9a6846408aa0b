// Package boxtable draws fixed-width text tables with box-drawing borders.
//
// A table starts as a [Layout]: an ordered list of columns, each with a
// display width, a title and an [Alignment]. Columns are appended with
// [Layout.Append] or, more commonly, with [Layout.AppendAuto], which reads
// all three from a padded title:
//
//	l := boxtable.NewLayout().
//		AppendAuto("Name      ").  // width 10, left aligned
//		AppendAuto("  Score").     // width 7, right aligned
//		AppendAuto(" Status ").    // width 8, centered
//		Seal(true)                 // prepend a line-number column
//
// Sealing freezes the layout. A [Renderer] attached to a sealed layout
// formats cells, rows and the structural lines of the table:
//
//	r := boxtable.NewRenderer(l, boxtable.WithBorder(boxtable.BorderRounded))
//	fmt.Println(r.FormatBuiltinLine(boxtable.HeadTop))
//	fmt.Println(r.FormatBuiltinLine(boxtable.HeadLine))
//	fmt.Println(r.FormatBuiltinLine(boxtable.BodySep))
//	fmt.Println(r.FormatRow(boxtable.BodyLine, []string{"1", "alice", "42", "ok"}))
//	fmt.Println(r.FormatBuiltinLine(boxtable.BodyBtm))
//
// Every line of a table belongs to a [Group]. The group and the column's
// [Role] select the glyphs around each cell. Text as wide as its column is
// cut and the right margin becomes "~"; use [Renderer.FormatWrappedRow] to
// spread long text over several lines instead.
//
// # Whole tables
//
// [Lines] and [Write] render a full table from items that implement [Rower].
// Optional interfaces enhance the output:
//
//   - [Footered]: summary row below the bottom border
//   - [Grouped]: separator line between consecutive groups
//   - [Wrapped]: wrap long cells instead of truncating them
//
// # Layout files
//
// [ParseLayout] and [ReadLayout] decode a YAML [LayoutFile]:
//
//	line_numbers: true
//	border: rounded
//	columns:
//	  - {width: 10, title: Name}
//	  - {auto: "  Score"}
//
// # Errors
//
// Misuse of a layout or renderer (appending after sealing, a cell count that
// does not match the layout, an unsupported group) is a programming error and
// panics with one of the sentinel errors below. Errors from [Lines], [Write]
// and the layout-file functions are returned and wrap the same sentinels:
//
//   - [ErrSealed], [ErrNotSealed], [ErrEmptyLayout], [ErrInvalidWidth]
//   - [ErrCellCount], [ErrUnsupportedGroup], [ErrUnknownPattern]
//   - [ErrUnsupportedBorder], [ErrUnsupportedAlign], [ErrInvalidLayout]
//   - [ErrMissingInterface]
package boxtable
