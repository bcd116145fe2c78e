package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/barg-dev/barg/internal/ui"
)

// Root command flags
var (
	fieldFlag   string
	displayFlag []string
	formatFlag  string
	widthFlag   int
	headerFlag  bool
	noColorFlag bool
)

// rootCmd renders the graph; barg is a single-purpose tool, so the root
// command does the work and subcommands only cover version and completion.
var rootCmd = &cobra.Command{
	Use:   "barg [file]",
	Short: "Render a proportional text bar graph from structured records",
	Long: `Render a text bar graph for one numeric field of a record collection,
with optional companion columns, sized to fit the terminal width.

Records are read from a file argument or stdin. JSON arrays and NDJSON
streams are auto-detected; YAML and CSV need --format.

Examples:
  barg --field Len --display Name files.json
  ls -l | to-json | barg -f Size -d Name
  barg -f count -d label --format csv metrics.csv
  barg -f Len -d Name --json files.json`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if viper.GetBool("no-color") || machineMode {
			ui.DisableColors()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		file := ""
		if len(args) == 1 {
			file = args[0]
		}
		return graphCommand(file)
	},
}

func init() {
	rootCmd.Flags().StringVarP(&fieldFlag, "field", "f", "", "record field to graph (required)")
	rootCmd.Flags().StringSliceVarP(&displayFlag, "display", "d", nil, "additional fields to display alongside the bar")
	rootCmd.Flags().StringVar(&formatFlag, "format", "auto", "input format (auto, json, ndjson, yaml, csv)")
	rootCmd.Flags().IntVar(&widthFlag, "width", 0, "override terminal width in columns")
	rootCmd.Flags().BoolVar(&headerFlag, "header", false, "print a header row with field names")
	rootCmd.PersistentFlags().BoolVar(&machineMode, "json", false, "machine-readable JSON output")
	rootCmd.PersistentFlags().BoolVar(&noColorFlag, "no-color", false, "disable styled output")

	// Flag defaults may come from BARG_* environment variables (no config
	// file; env and flags are the only sources).
	viper.SetEnvPrefix("barg")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	for _, name := range []string{"field", "format", "width"} {
		if err := viper.BindPFlag(name, rootCmd.Flags().Lookup(name)); err != nil {
			panic(fmt.Sprintf("cli: binding flag %s: %v", name, err))
		}
	}
	if err := viper.BindPFlag("no-color", rootCmd.PersistentFlags().Lookup("no-color")); err != nil {
		panic(fmt.Sprintf("cli: binding flag no-color: %v", err))
	}
}

// Execute runs the root command and handles error output.
// Errors render as styled diagnostics, or as a JSON envelope in --json mode.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if machineMode {
			WriteJSONFromError(os.Stdout, err) //nolint:errcheck // stdout write errors are unreportable here
		} else {
			fmt.Fprint(os.Stderr, ui.ErrorStyle().Render(err.Error()))
			fmt.Fprintln(os.Stderr)
		}
		os.Exit(1)
	}
}
