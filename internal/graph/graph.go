// Package graph renders a proportional text bar graph for one numeric field
// of a record set, with optional companion display columns, scaled to the
// terminal width.
//
// Rendering is a synchronous two-pass operation: the first pass finds the
// largest graphed value and the widest display strings, the second builds
// one row per record in input order. The whole record set must therefore be
// materialized before rendering starts.
//
// Bar lengths are computed as a fractional unit count and truncated toward
// zero. A record whose unit count lands strictly between 0 and 1 renders a
// single half-block marker so nonzero values never disappear entirely.
package graph

import (
	"bytes"
	"encoding/json"
	"strings"
	"unicode/utf8"

	"github.com/barg-dev/barg/internal/errors"
	"github.com/barg-dev/barg/internal/logger"
	"github.com/barg-dev/barg/internal/record"
	"github.com/barg-dev/barg/internal/ui"
)

// Layout constants. Margin reserves fixed columns to the right of the
// longest possible bar; FieldPadding separates each display column from the
// next. Both are part of the output contract, not tunables.
const (
	Margin       = 4
	FieldPadding = 1
)

// Options configures a render call.
type Options struct {
	// Field is the record field whose magnitude determines bar length.
	// Required; it must be present on at least one record.
	Field string

	// Display lists additional fields shown alongside the bar, in order.
	Display []string

	// Width overrides the terminal width when > 0. When zero, WidthFn is
	// consulted, falling back to ui.TerminalWidth.
	Width   int
	WidthFn func() int

	// Log receives debug output. Defaults to logger.Default().
	Log logger.Logger
}

// Cell is one keyed value of a rendered row.
type Cell struct {
	Key   string
	Value string
}

// Row is one rendered output row: the display field values in request
// order, followed by the bar cell keyed "<Field>Graph". Cell order is
// preserved through JSON marshaling.
type Row struct {
	Cells []Cell
}

// Get returns the value of the named cell.
func (r Row) Get(key string) (string, bool) {
	for _, c := range r.Cells {
		if c.Key == key {
			return c.Value, true
		}
	}
	return "", false
}

// MarshalJSON renders the row as a JSON object with cells in order.
func (r Row) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, c := range r.Cells {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(c.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := json.Marshal(c.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// GraphKey returns the output key that holds the rendered bar.
func GraphKey(field string) string {
	return field + "Graph"
}

// Render produces one row per input record, in input order.
//
// It fails before producing any output when Field is empty, absent from the
// whole record set, or carries a non-numeric value on some record. Records
// whose Field value is zero, null, or missing render an empty bar. When the
// largest value is not positive, or the terminal is too narrow to fit the
// display columns plus margin, every bar is empty rather than an error.
func Render(records []record.Record, opts Options) ([]Row, error) {
	log := opts.Log
	if log == nil {
		log = logger.Default()
	}

	if opts.Field == "" {
		return nil, errors.New(errors.ErrUsage,
			"No graph field given",
			"Pass the field to graph with --field")
	}
	if len(records) > 0 && !record.HasField(records, opts.Field) {
		return nil, errors.NewPropertyNotFound(opts.Field)
	}

	width := opts.Width
	if width <= 0 {
		if opts.WidthFn != nil {
			width = opts.WidthFn()
		} else {
			width = ui.TerminalWidth()
		}
	}

	// Pass 1: largest graphed value. The first record holding the maximum
	// wins ties, but only the value itself matters.
	largest := 0.0
	haveLargest := false
	for _, r := range records {
		v, present, err := record.Number(r[opts.Field])
		if err != nil {
			return nil, err
		}
		if !present {
			continue
		}
		if !haveLargest || v > largest {
			largest = v
			haveLargest = true
		}
	}

	// Pass 1 continued: widest display value per column. Missing values are
	// skipped, not counted as zero-length.
	totalLength := 0
	for _, f := range opts.Display {
		maxLen := 0
		for _, r := range records {
			v, ok := r[f]
			if !ok || v == nil {
				continue
			}
			if l := utf8.RuneCountInString(record.Stringify(v)); l > maxLen {
				maxLen = l
			}
		}
		totalLength += maxLen + FieldPadding
	}

	// scale converts one percentage point of relative magnitude into
	// character columns. Kept fractional; truncation happens per bar.
	scale := float64(width-totalLength-Margin) / 100.0

	log.Debug("[graph] records=%d width=%d totalLength=%d largest=%v scale=%v",
		len(records), width, totalLength, largest, scale)
	if scale <= 0 && len(records) > 0 {
		log.Warn("[graph] terminal width %d leaves no room for bars", width)
	}

	graphKey := GraphKey(opts.Field)
	rows := make([]Row, 0, len(records))

	// Pass 2: build rows in input order.
	for _, r := range records {
		row := Row{Cells: make([]Cell, 0, len(opts.Display)+1)}
		for _, f := range opts.Display {
			v, ok := r[f]
			value := ""
			if ok {
				value = record.Stringify(v)
			}
			row.Cells = append(row.Cells, Cell{Key: f, Value: value})
		}
		row.Cells = append(row.Cells, Cell{Key: graphKey, Value: bar(r[opts.Field], largest, scale)})
		rows = append(rows, row)
	}
	return rows, nil
}

// bar renders one record's bar string. Values already validated numeric by
// the first pass, so coercion errors are unreachable here.
func bar(value interface{}, largest, scale float64) string {
	v, present, err := record.Number(value)
	if err != nil || !present || v == 0 {
		return ""
	}
	if largest <= 0 || scale <= 0 {
		return ""
	}

	// Fractional bar units, truncated toward zero.
	units := v / largest * 100 * scale
	switch {
	case units >= 1:
		return strings.Repeat(string(ui.FullBlock), int(units))
	case units > 0:
		return string(ui.HalfBlock)
	default:
		return ""
	}
}
