// Package tableview renders a bounded tabular preview of a row slice.
//
// Columns are described by Field descriptors and filled through a per-field
// formatter callback, so the view stays neutral about the row type. Output
// is plain text with ruled separators; when the preview cuts rows off, the
// terminating rule switches to an elided variant so readers can tell a
// truncated table from a complete one.
package tableview

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"statmerge/internal/stat"
)

// RowNumberID is the sentinel field ID for the synthetic row-number column.
// The formatter is never invoked for it; the view numbers rows itself,
// starting at 1.
const RowNumberID = -1

// Field describes one column.
type Field struct {
	// Header is the column title.
	Header string

	// ID identifies the field to the formatter. RowNumberID is reserved.
	ID int

	// Width is the column's display width in cells. Headers and values
	// wider than this are truncated with an ellipsis.
	Width int
}

// Formatter renders the field identified by id from row. It is called once
// per non-sentinel field per printed row.
type Formatter[T any] func(id int, row *T) string

// View is an initialized table layout. Construct with New.
type View[T any] struct {
	fields    []Field
	formatter Formatter[T]
}

// New validates the layout and returns a view over it. A nil formatter, an
// empty field list, or a non-positive column width is rejected with
// stat.ErrInvalidArgument.
func New[T any](formatter Formatter[T], fields []Field) (*View[T], error) {
	if formatter == nil {
		return nil, fmt.Errorf("%w: tableview needs a formatter", stat.ErrInvalidArgument)
	}

	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: tableview needs at least one field", stat.ErrInvalidArgument)
	}

	for _, f := range fields {
		if f.Width <= 0 {
			return nil, fmt.Errorf("%w: field %q has width %d", stat.ErrInvalidArgument, f.Header, f.Width)
		}
	}

	v := &View[T]{
		fields:    make([]Field, len(fields)),
		formatter: formatter,
	}
	copy(v.fields, fields)

	return v, nil
}

// Render prints a header row and up to linesCount data rows from rows, each
// framed by ruled lines. When len(rows) exceeds linesCount, the final rule
// is elided ('~' fill) instead of solid.
func (v *View[T]) Render(w io.Writer, rows []T, linesCount int) error {
	if linesCount < 0 {
		linesCount = 0
	}

	shown := min(linesCount, len(rows))

	err := v.writeRule(w, '-')
	if err != nil {
		return err
	}

	headers := make([]string, len(v.fields))
	for i, f := range v.fields {
		headers[i] = f.Header
	}

	err = v.writeRow(w, headers)
	if err != nil {
		return err
	}

	// With no data rows shown, the rule under the header is the final one.
	headerFill := '-'
	if shown == 0 && len(rows) > 0 {
		headerFill = '~'
	}

	err = v.writeRule(w, headerFill)
	if err != nil {
		return err
	}

	for i := range shown {
		cells := make([]string, len(v.fields))

		for j, f := range v.fields {
			if f.ID == RowNumberID {
				cells[j] = strconv.Itoa(i + 1)
			} else {
				cells[j] = v.formatter(f.ID, &rows[i])
			}
		}

		err = v.writeRow(w, cells)
		if err != nil {
			return err
		}

		fill := '-'
		if i == shown-1 && shown < len(rows) {
			fill = '~'
		}

		err = v.writeRule(w, fill)
		if err != nil {
			return err
		}
	}

	return nil
}

func (v *View[T]) writeRow(w io.Writer, cells []string) error {
	var sb strings.Builder

	for i, f := range v.fields {
		cell := cells[i]
		if runewidth.StringWidth(cell) > f.Width {
			cell = runewidth.Truncate(cell, f.Width, "…")
		}

		sb.WriteString("| ")
		sb.WriteString(runewidth.FillRight(cell, f.Width))
		sb.WriteString(" ")
	}

	sb.WriteString("|\n")

	_, err := io.WriteString(w, sb.String())

	return err
}

func (v *View[T]) writeRule(w io.Writer, fill rune) error {
	var sb strings.Builder

	for _, f := range v.fields {
		sb.WriteString("+")
		sb.WriteString(strings.Repeat(string(fill), f.Width+2))
	}

	sb.WriteString("+\n")

	_, err := io.WriteString(w, sb.String())

	return err
}
