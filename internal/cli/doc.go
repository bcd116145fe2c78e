// Package cli implements the barg command-line interface.
//
// The package is organized around Cobra commands. barg is a single-purpose
// tool, so the root command does the rendering work itself and subcommands
// cover only version and shell completion:
//
//	barg [file]         - Render the graph from a file or stdin
//	barg version        - Print version information
//	barg completion     - Generate shell completion scripts
//
// # Workflow
//
// The root command runs three phases:
//
//  1. Decode: buffer the full record set from the input source. Rendering
//     needs two passes over the data, so input is never streamed through.
//  2. Render: internal/graph computes bar lengths against the largest
//     graphed value and the available terminal width.
//  3. Write: internal/output emits aligned text columns, or NDJSON rows
//     inside the JSON envelope in --json mode.
//
// # Flag Handling
//
// Flags may take their defaults from BARG_* environment variables through
// Viper (BARG_FIELD, BARG_FORMAT, BARG_WIDTH, BARG_NO_COLOR). There is no
// config file; flags and environment are the only sources, and explicit
// flags win.
//
// # Machine Output
//
// --json switches to a machine-readable envelope: {success, data} on
// success, {success, error:{code, message, suggestion}} on failure. Error
// codes are stable strings like PROPERTY_NOT_FOUND and DECODE_FAILED.
package cli
