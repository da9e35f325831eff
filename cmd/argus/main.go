// Command argus is the CLI harness for the stability-labelling engine: it
// loads a JSON argumentation system, labels it against a set of observed
// identifiers, and prints the result. It exists to exercise the engine
// and ioformat packages from the shell, not as a production front-end.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"argus/internal/config"
	"argus/internal/engine"
	"argus/internal/logging"
)

var (
	verbose    bool
	workspace  string
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "argus",
	Short: "argus labels argumentation systems under the four-valued stability semantics",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		ws := workspace
		if ws == "" {
			ws, _ = os.Getwd()
		}
		if err := logging.Initialize(ws); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to initialize file logging: %v\n", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.CloseAll()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "has no effect; file logging is controlled by debug_mode in <workspace>/.argus/config.json")
	rootCmd.PersistentFlags().StringVar(&workspace, "workspace", "", "workspace directory for .argus/logs and .argus/config.json")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file (default: <workspace>/.argus/config.yaml)")

	rootCmd.AddCommand(labelCmd)
	rootCmd.AddCommand(stableSetCmd)
	rootCmd.AddCommand(watchCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadEngineConfig loads the YAML config (or its defaults) and converts
// its Engine section into an engine.Config, so every subcommand shares
// one config-driven source of truth for the default labeler and the
// naive oracle's safety bound.
func loadEngineConfig() (engine.Config, error) {
	path := configPath
	if path == "" {
		ws := workspace
		if ws == "" {
			ws, _ = os.Getwd()
		}
		path = filepath.Join(ws, ".argus", "config.yaml")
	}

	cfg, err := config.Load(path)
	if err != nil {
		return engine.Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return engine.Config{}, err
	}

	return engine.Config{
		Default:          engine.LabelerKind(cfg.Engine.DefaultLabeler),
		MaxNaiveTheories: cfg.Engine.MaxNaiveTheories,
	}, nil
}
