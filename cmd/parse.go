package cmd

import (
	"bufio"
	"fmt"
	"io"
	"log"

	"github.com/josephlewis42/shtree/core/logger"
	"github.com/josephlewis42/shtree/core/shell"
	"github.com/spf13/cobra"
)

// parseCmd parses each argument, or each line of stdin, and prints the tree.
var parseCmd = &cobra.Command{
	Use:   "parse [LINE...]",
	Short: "Parse command lines and print their trees.",
	Long: `Parses each argument as a command line and prints its tree.

With no arguments, each line of stdin is parsed instead.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		cfg, err := loadConfigOrDefault()
		if err != nil {
			return err
		}
		r, err := newRenderer(cfg)
		if err != nil {
			return err
		}

		events, closeEvents := openEventLogger(cfg, log.New(cmd.ErrOrStderr(), "[parse] ", 0))
		defer closeEvents()

		lines := args
		if len(lines) == 0 {
			if lines, err = readLines(cmd.InOrStdin()); err != nil {
				return err
			}
		}

		return parseLines(cmd.OutOrStdout(), lines, r, events.Sessionless())
	},
}

func readLines(in io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}

// parseLines renders every line, reporting failures as it goes.
func parseLines(out io.Writer, lines []string, r *renderer, events *logger.SessionLogger) error {
	failed := 0
	for i, line := range lines {
		n, err := shell.Parse(line)
		if logErr := events.RecordParse(line, n, err); logErr != nil {
			return logErr
		}

		if err != nil {
			failed++
			r.ShowError(out, fmt.Sprintf("line %d", i+1), line, err)
			continue
		}

		if err := r.Render(out, n); err != nil {
			return err
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d lines failed to parse", failed, len(lines))
	}
	return nil
}

func init() {
	rootCmd.AddCommand(parseCmd)
	addOutputFlags(parseCmd)
}
