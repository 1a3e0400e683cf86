// Package cmd implements the commands for the randgen executable.
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/oasisprotocol/randgen/cmd/randgen/cmd/common"
	"github.com/oasisprotocol/randgen/cmd/randgen/cmd/corpus"
	"github.com/oasisprotocol/randgen/cmd/randgen/cmd/sample"
	"github.com/oasisprotocol/randgen/cmd/randgen/cmd/shapes"
	"github.com/oasisprotocol/randgen/common/errors"
)

var rootCmd = &cobra.Command{
	Use:           "randgen",
	Short:         "Random value generator",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return common.DumpMetrics(cmd.ErrOrStderr())
	},
}

// RootCommand returns the root (top level) cobra.Command.
func RootCommand() *cobra.Command {
	return rootCmd
}

// Execute spawns the main entry point after handling the config file
// and command line arguments.
func Execute() {
	err := rootCmd.Execute()
	common.Cleanup()
	if err != nil {
		reportError(os.Stderr, err)
		os.Exit(1)
	}
}

// reportError writes err along with its registered module and code.
func reportError(w io.Writer, err error) {
	module, code := errors.Code(err)
	_, _ = fmt.Fprintf(w, "Error: %v (module: %s, code: %d)\n", err, module, code)
}

func init() {
	cobra.OnInitialize(common.InitConfig)

	rootCmd.PersistentFlags().AddFlagSet(common.RootFlags)

	// Register all of the sub-commands.
	for _, v := range []func(*cobra.Command){
		sample.Register,
		shapes.Register,
		corpus.Register,
	} {
		v(rootCmd)
	}
}
