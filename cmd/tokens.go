package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/josephlewis42/shtree/core/shell"
	"github.com/spf13/cobra"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens LINE",
	Short: "Show the tokens of a command line.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		tokens, err := shell.Tokenize(args[0])
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 8, 2, ' ', 0)
		fmt.Fprintln(w, "POS\tKIND\tVALUE")
		for _, tok := range tokens {
			fmt.Fprintf(w, "%d\t%s\t%q\n", tok.Pos, tok.Kind, tok.Value)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}
