// Package record defines the input record model and the decoders that
// materialize record streams from JSON, NDJSON, YAML, or CSV input.
package record

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/barg-dev/barg/internal/errors"
)

// Record is one structured input value: a mapping from field name to value.
// Records are read-only inputs; nothing in this package mutates them.
type Record map[string]interface{}

// Has returns true if the record carries the named field.
func (r Record) Has(name string) bool {
	_, ok := r[name]
	return ok
}

// HasField reports whether any record in the set carries the named field.
// This is the schema check used to validate the graph field before rendering.
func HasField(records []Record, name string) bool {
	for _, r := range records {
		if r.Has(name) {
			return true
		}
	}
	return false
}

// Number extracts a numeric value from a record field.
//
// The second return is false when the value is absent-like (nil or an empty
// string): those produce empty bars rather than errors. A value that is
// present but not numeric returns an error, since silently graphing it as
// zero would misrepresent the data.
func Number(v interface{}) (float64, bool, error) {
	switch n := v.(type) {
	case nil:
		return 0, false, nil
	case float64:
		return n, true, nil
	case float32:
		return float64(n), true, nil
	case int:
		return float64(n), true, nil
	case int32:
		return float64(n), true, nil
	case int64:
		return float64(n), true, nil
	case uint:
		return float64(n), true, nil
	case uint64:
		return float64(n), true, nil
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, true, errors.WrapWithCode(err, errors.ErrInput,
				fmt.Sprintf("Non-numeric graph value '%s'", n.String()),
				"Every non-null value of the graphed field must be a number")
		}
		return f, true, nil
	case string:
		if n == "" {
			return 0, false, nil
		}
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0, true, errors.WrapWithCode(err, errors.ErrInput,
				fmt.Sprintf("Non-numeric graph value '%s'", n),
				"Every non-null value of the graphed field must be a number")
		}
		return f, true, nil
	default:
		return 0, true, errors.New(errors.ErrInput,
			fmt.Sprintf("Non-numeric graph value of type %T", v),
			"Every non-null value of the graphed field must be a number")
	}
}

// Stringify renders a field value for display columns. Absent and null
// values render as empty strings; numbers keep their input representation
// where possible.
func Stringify(v interface{}) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case json.Number:
		return s.String()
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(s)
	default:
		return fmt.Sprintf("%v", v)
	}
}
