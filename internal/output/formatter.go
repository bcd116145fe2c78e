// Package output writes rendered graph rows to a writer, either as aligned
// plain-text columns or as machine-readable NDJSON.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/barg-dev/barg/internal/graph"
	"github.com/barg-dev/barg/internal/ui"
)

// Options configures text output.
type Options struct {
	// Header prepends a styled row of cell keys.
	Header bool
}

// WriteRows writes rows as aligned text columns. Every cell except the bar
// is padded to its column's widest value plus one space of separation; the
// bar cell is written last, unpadded.
func WriteRows(w io.Writer, rows []graph.Row, opts Options) error {
	if len(rows) == 0 {
		return nil
	}

	widths := columnWidths(rows, opts.Header)

	if opts.Header {
		var b strings.Builder
		for i, c := range rows[0].Cells {
			if i < len(widths) {
				b.WriteString(pad(c.Key, widths[i]))
				b.WriteByte(' ')
			} else {
				b.WriteString(c.Key)
			}
		}
		if _, err := fmt.Fprintln(w, ui.HeaderStyle().Render(strings.TrimRight(b.String(), " "))); err != nil {
			return err
		}
	}

	for _, row := range rows {
		var b strings.Builder
		for i, c := range row.Cells {
			if i < len(widths) {
				b.WriteString(pad(c.Value, widths[i]))
				b.WriteByte(' ')
			} else {
				b.WriteString(c.Value)
			}
		}
		if _, err := fmt.Fprintln(w, strings.TrimRight(b.String(), " ")); err != nil {
			return err
		}
	}
	return nil
}

// WriteJSONRows writes one JSON object per row, preserving cell order.
func WriteJSONRows(w io.Writer, rows []graph.Row) error {
	enc := json.NewEncoder(w)
	for _, row := range rows {
		if err := enc.Encode(row); err != nil {
			return err
		}
	}
	return nil
}

// columnWidths returns the display width of every column except the last
// (the bar), optionally widened to fit header keys.
func columnWidths(rows []graph.Row, header bool) []int {
	if len(rows) == 0 || len(rows[0].Cells) < 2 {
		return nil
	}

	widths := make([]int, len(rows[0].Cells)-1)
	for _, row := range rows {
		for i, c := range row.Cells {
			if i >= len(widths) {
				break
			}
			if l := utf8.RuneCountInString(c.Value); l > widths[i] {
				widths[i] = l
			}
			if header {
				if l := utf8.RuneCountInString(c.Key); l > widths[i] {
					widths[i] = l
				}
			}
		}
	}
	return widths
}

// pad right-pads a string with spaces to the given rune width.
func pad(s string, width int) string {
	if n := width - utf8.RuneCountInString(s); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}
