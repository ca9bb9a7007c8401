package cmd

import (
	"fmt"
	"os"

	"github.com/go-drift/interact/cmd/interact/internal/scenario"
	"github.com/go-drift/interact/pkg/errors"
)

func init() {
	RegisterCommand(&Command{
		Name:  "replay",
		Short: "Replay scenario files and print the resulting state",
		Long: `Replay one or more YAML scenario files against the slider or tree engine.

Each scenario names a widget, its initial configuration and a list of
events. The final widget state and every emitted event are printed as
YAML, one document per file.

Flags:
  --verbose    Log callback errors with widget and stack details

Usage:
  interact replay testdata/slider_drag.yaml
  interact replay --verbose a.yaml b.yaml`,
		Usage: "interact replay [--verbose] <scenario.yaml>...",
		Run:   runReplay,
	})
}

func runReplay(args []string) error {
	var paths []string
	verbose := false
	for _, arg := range args {
		switch arg {
		case "--verbose":
			verbose = true
		default:
			paths = append(paths, arg)
		}
	}
	if len(paths) == 0 {
		return fmt.Errorf("at least one scenario file is required\n\nUsage: interact replay [--verbose] <scenario.yaml>...")
	}

	errors.SetHandler(&errors.LogHandler{Out: os.Stderr, Verbose: verbose})
	defer errors.SetHandler(nil)

	for i, path := range paths {
		s, err := scenario.Load(path)
		if err != nil {
			return err
		}
		result, err := scenario.Run(s)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		if i > 0 {
			fmt.Fprintln(stdout, "---")
		}
		if err := scenario.Encode(stdout, result); err != nil {
			return fmt.Errorf("failed to write result: %w", err)
		}
	}
	return nil
}
