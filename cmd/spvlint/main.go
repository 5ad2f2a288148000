// Command spvlint lints a SPIR-V binary for derivative instructions
// executed under non-uniform control flow.
//
// Usage:
//
//	spvlint <file.spv>
//
// Exit status is 0 when the module was linted (findings are warnings),
// 1 on a decode failure or invalid invocation.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gogpu/spvlint"
	"github.com/gogpu/spvlint/lint"
)

var verbose bool

func main() {
	cmd := &cobra.Command{
		Use:           "spvlint <in_file>",
		Short:         "Lint a SPIR-V module for divergence misuse",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, args []string) error {
			return run(args[0])
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(path string) error {
	logger := zap.NewNop()
	if verbose {
		var err error
		logger, err = zap.NewDevelopment()
		if err != nil {
			return err
		}
		defer logger.Sync() //nolint:errcheck
	}

	binary, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	linter := spvlint.NewWithOptions(spvlint.Options{Logger: logger})
	linter.SetMessageConsumer(func(d lint.Diagnostic) {
		if d.Instruction != "" {
			fmt.Fprintf(os.Stderr, "%s: %s\n  %s\n", d.Severity, d.Message, d.Instruction)
			return
		}
		fmt.Fprintf(os.Stderr, "%s: %s\n", d.Severity, d.Message)
	})

	if !linter.Run(binary) {
		return fmt.Errorf("%s is not a valid SPIR-V binary", path)
	}
	return nil
}
