package record

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/barg-dev/barg/internal/errors"
)

// Format identifies an input record encoding.
type Format string

// Supported input formats.
const (
	FormatAuto   Format = "auto"
	FormatJSON   Format = "json"   // single top-level array of objects
	FormatNDJSON Format = "ndjson" // one JSON object per line (stream)
	FormatYAML   Format = "yaml"   // document stream of mappings or sequences
	FormatCSV    Format = "csv"    // header row followed by data rows
)

// ParseFormat validates a --format flag value.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case FormatAuto, FormatJSON, FormatNDJSON, FormatYAML, FormatCSV:
		return Format(strings.ToLower(s)), nil
	case "":
		return FormatAuto, nil
	default:
		return "", errors.New(errors.ErrUsage,
			fmt.Sprintf("Unknown input format '%s'", s),
			"Supported formats: auto, json, ndjson, yaml, csv")
	}
}

// Decode reads the full input and materializes it as an ordered record set.
// The whole stream is buffered before returning: rendering needs two passes
// over the data (maximum value, column widths), so unbounded streams are not
// supported.
func Decode(r io.Reader, format Format) ([]Record, error) {
	br := bufio.NewReader(r)

	if format == FormatAuto {
		detected, err := sniffFormat(br)
		if err != nil {
			return nil, err
		}
		format = detected
	}

	switch format {
	case FormatJSON:
		return decodeJSONArray(br)
	case FormatNDJSON:
		return decodeNDJSON(br)
	case FormatYAML:
		return decodeYAML(br)
	case FormatCSV:
		return decodeCSV(br)
	default:
		return nil, errors.New(errors.ErrUsage,
			fmt.Sprintf("Unknown input format '%s'", format),
			"Supported formats: auto, json, ndjson, yaml, csv")
	}
}

// sniffFormat inspects the first non-whitespace byte to distinguish a JSON
// array from an NDJSON stream. YAML and CSV are ambiguous at the byte level
// and must be requested explicitly.
func sniffFormat(br *bufio.Reader) (Format, error) {
	for {
		b, err := br.ReadByte()
		if err == io.EOF {
			// Empty input decodes as an empty record set; JSON handles it.
			return FormatNDJSON, nil
		}
		if err != nil {
			return "", errors.Wrap(err, "Failed to read input")
		}
		switch b {
		case ' ', '\t', '\r', '\n':
			continue
		case '[':
			if err := br.UnreadByte(); err != nil {
				return "", errors.Wrap(err, "Failed to read input")
			}
			return FormatJSON, nil
		case '{':
			if err := br.UnreadByte(); err != nil {
				return "", errors.Wrap(err, "Failed to read input")
			}
			return FormatNDJSON, nil
		default:
			return "", errors.New(errors.ErrDecode,
				"Input does not look like JSON records",
				"Pass --format yaml or --format csv for non-JSON input")
		}
	}
}

// decodeJSONArray parses a single top-level JSON array of objects.
// json.Number keeps numeric display values byte-faithful.
func decodeJSONArray(r io.Reader) ([]Record, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var records []Record
	if err := dec.Decode(&records); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrDecode,
			"Input is not a valid JSON array of objects",
			"Expected input like: [{\"Name\":\"a\",\"Len\":10}, ...]")
	}
	return records, nil
}

// decodeNDJSON parses a stream of JSON objects, one logical value at a time.
// Input order is preserved.
func decodeNDJSON(r io.Reader) ([]Record, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var records []Record
	for {
		var rec Record
		if err := dec.Decode(&rec); err == io.EOF {
			break
		} else if err != nil {
			return nil, errors.WrapWithCode(err, errors.ErrDecode,
				fmt.Sprintf("Invalid JSON object at record %d", len(records)+1),
				"Each line must be a complete JSON object")
		}
		records = append(records, rec)
	}
	return records, nil
}

// decodeYAML parses a YAML document stream. Each document may be a single
// mapping or a sequence of mappings; both flatten into the record set in
// document order.
func decodeYAML(r io.Reader) ([]Record, error) {
	dec := yaml.NewDecoder(r)

	var records []Record
	for {
		var doc interface{}
		if err := dec.Decode(&doc); err == io.EOF {
			break
		} else if err != nil {
			return nil, errors.WrapWithCode(err, errors.ErrDecode,
				fmt.Sprintf("Invalid YAML document after record %d", len(records)),
				"Each document must be a mapping or a sequence of mappings")
		}

		switch v := doc.(type) {
		case nil:
			// Empty document, skip.
		case []interface{}:
			for i, item := range v {
				rec, err := yamlRecord(item)
				if err != nil {
					return nil, errors.WrapWithCode(err, errors.ErrDecode,
						fmt.Sprintf("YAML sequence item %d is not a mapping", i+1),
						"Each item must be a mapping of field names to values")
				}
				records = append(records, rec)
			}
		default:
			rec, err := yamlRecord(doc)
			if err != nil {
				return nil, errors.WrapWithCode(err, errors.ErrDecode,
					"YAML document is not a mapping",
					"Each document must be a mapping or a sequence of mappings")
			}
			records = append(records, rec)
		}
	}
	return records, nil
}

// yamlRecord converts a decoded YAML value into a Record.
func yamlRecord(v interface{}) (Record, error) {
	m, ok := v.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("expected mapping, got %T", v)
	}
	return Record(m), nil
}

// decodeCSV parses CSV input. The first row names the fields; every value
// is a string, and numeric strings are coerced later at graph time.
func decodeCSV(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // tolerate ragged rows; short rows just omit fields

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrDecode,
			"Failed to read CSV header row",
			"The first row must name the record fields")
	}

	var records []Record
	for line := 2; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.WrapWithCode(err, errors.ErrDecode,
				fmt.Sprintf("Invalid CSV row at line %d", line),
				"Check for unbalanced quotes or stray separators")
		}

		rec := make(Record, len(header))
		for i, name := range header {
			if i < len(row) {
				rec[name] = row[i]
			}
		}
		records = append(records, rec)
	}
	return records, nil
}
