package cli

import (
	"io"
	"os"

	"github.com/spf13/viper"

	"github.com/barg-dev/barg/internal/errors"
	"github.com/barg-dev/barg/internal/graph"
	"github.com/barg-dev/barg/internal/logger"
	"github.com/barg-dev/barg/internal/output"
	"github.com/barg-dev/barg/internal/record"
)

// graphCommand is the root command workflow: buffer records from the input
// source, render the graph, and write the rows to stdout.
func graphCommand(file string) error {
	log := logger.NewEnvLogger("[barg]")

	field := viper.GetString("field")
	if field == "" {
		return errors.New(errors.ErrUsage,
			"No graph field given",
			"Pass the field to graph with --field (or set BARG_FIELD)")
	}

	format, err := record.ParseFormat(viper.GetString("format"))
	if err != nil {
		return err
	}

	var in io.Reader = os.Stdin
	source := "stdin"
	if file != "" {
		f, err := os.Open(file)
		if err != nil {
			return errors.WrapWithCode(err, errors.ErrDecode,
				"Cannot open input file "+file,
				"Check the path and file permissions")
		}
		defer f.Close() //nolint:errcheck // read-only file, close errors carry no information
		in = f
		source = file
	}

	// The full record set is buffered before rendering: the maximum value
	// and the widest display strings must be known before any row exists.
	records, err := record.Decode(in, format)
	if err != nil {
		return err
	}
	log.Debug("decoded %d records from %s (format=%s)", len(records), source, format)

	rows, err := graph.Render(records, graph.Options{
		Field:   field,
		Display: displayFlag,
		Width:   viper.GetInt("width"),
		Log:     log,
	})
	if err != nil {
		return err
	}

	if machineMode {
		return WriteJSONSuccess(os.Stdout, rows)
	}
	return output.WriteRows(os.Stdout, rows, output.Options{Header: headerFlag})
}
