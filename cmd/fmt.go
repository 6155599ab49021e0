package cmd

import (
	"fmt"

	"github.com/josephlewis42/shtree/core/shell"
	"github.com/spf13/cobra"
)

var fmtCmd = &cobra.Command{
	Use:   "fmt LINE...",
	Short: "Print command lines in canonical form.",
	Long:  `Prints each command line with normalized spacing, quoting and only the parentheses it needs.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		for _, line := range args {
			n, err := shell.Parse(line)
			if err != nil {
				return fmt.Errorf("%q: %w", line, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), shell.Format(n))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(fmtCmd)
}
