package cmd

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/go-drift/interact/cmd/interact/internal/config"
	"github.com/go-drift/interact/cmd/interact/internal/terminal"
	"github.com/go-drift/interact/pkg/errors"
)

func init() {
	RegisterCommand(&Command{
		Name:  "demo",
		Short: "Open an interactive terminal demo",
		Long: `Open a terminal demo with a range slider and a tree view.

Settings come from interact.yaml in the project root (the nearest
directory with a go.mod), falling back to built-in defaults.

Keys:
  Tab / Shift-Tab    Move focus between slider handles and the tree
  Arrows, Home, End  Adjust the focused handle or move in the tree
  Enter, Space       Select the focused tree item
  q, Esc, Ctrl-C     Quit

Usage:
  interact demo`,
		Usage: "interact demo",
		Run:   runDemo,
	})
}

func runDemo(args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("demo takes no arguments\n\nUsage: interact demo")
	}

	root, err := config.FindProjectRoot()
	if err != nil {
		return fmt.Errorf("failed to find project root: %w", err)
	}
	cfg, err := config.Resolve(root)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	defer screen.Fini()

	d := terminal.New(screen, cfg)
	errors.SetHandler(d)
	defer errors.SetHandler(nil)

	d.Run()
	return nil
}
