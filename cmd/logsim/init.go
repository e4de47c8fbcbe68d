package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"logsim/internal/project"
)

var initCmd = &cobra.Command{
	Use:   "init [path|name]",
	Short: "Initialize a new logsim project",
	Long: `Initialize a new logsim project by creating a project manifest (logsim.toml)
and an example circuit (circuit.def). If [path|name] is omitted, initializes
the current directory. If a non-existing name is provided, a directory will be
created.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

const exampleCircuit = `// two switches into an AND gate
DEVICES:
SW1, SW2 = SWITCH<0>;
A = AND<2>;
CONNECTIONS:
SW1 - A.I1;
SW2 - A.I2;
MONITORS:
A;
`

// runInit writes logsim.toml and an example circuit into the target
// directory, creating it when needed. An existing manifest is never
// overwritten; an existing circuit.def is kept.
func runInit(cmd *cobra.Command, args []string) error {
	target := "."
	if len(args) == 1 {
		target = args[0]
	}
	target, err := filepath.Abs(target)
	if err != nil {
		return err
	}

	if st, err := os.Stat(target); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return err
		}
		if err = os.MkdirAll(target, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %q: %w", target, err)
		}
	} else if !st.IsDir() {
		return fmt.Errorf("%q is not a directory", target)
	}

	name := strings.TrimSpace(filepath.Base(target))
	if name == "" || name == "." || name == string(filepath.Separator) {
		name = "logsim-project"
	}

	manifestPath, err := project.Write(target, project.Default(name))
	if err != nil {
		return fmt.Errorf("project already initialized or not writable: %w", err)
	}
	created := []string{manifestPath}

	circuitPath := filepath.Join(target, "circuit.def")
	if _, err := os.Stat(circuitPath); errors.Is(err, os.ErrNotExist) {
		if err := os.WriteFile(circuitPath, []byte(exampleCircuit), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", circuitPath, err)
		}
		created = append(created, circuitPath)
	}

	if quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet"); !quiet {
		out := cmd.OutOrStdout()
		for _, p := range created {
			fmt.Fprintf(out, "created %s\n", p)
		}
	}
	return nil
}
