package cmd

import (
	"errors"
	"io"
	"log"
	"strings"

	"github.com/abiosoft/readline"
	"github.com/josephlewis42/shtree/core/config"
	"github.com/josephlewis42/shtree/core/logger"
	"github.com/josephlewis42/shtree/core/shell"
	"github.com/spf13/cobra"
)

// lineReader is the part of readline the playground loop needs.
type lineReader interface {
	Readline() (string, error)
}

// openEventLogger logs to the configured event log, or nowhere if it's
// disabled or can't be opened.
func openEventLogger(cfg *config.Configuration, cmdLogger *log.Logger) (*logger.Logger, func()) {
	fd, err := cfg.OpenEventLog()
	switch {
	case errors.Is(err, config.ErrEventLogDisabled):
		return logger.NewDiscardLogger(), func() {}
	case err != nil:
		cmdLogger.Printf("Couldn't open event log: %v\n", err)
		return logger.NewDiscardLogger(), func() {}
	}

	return logger.NewJsonLinesLogRecorder(fd), func() { fd.Close() }
}

// runPlayground parses lines until the input is closed.
func runPlayground(lines lineReader, out io.Writer, r *renderer, events *logger.SessionLogger) error {
	for {
		line, err := lines.Readline()

		switch {
		case err == io.EOF:
			return nil // Input closed, quit.

		case err == readline.ErrInterrupt:
			// Interrupt clears line.
			continue

		case err != nil:
			return err

		case strings.TrimSpace(line) == "":
			continue // empty line
		}

		n, err := shell.Parse(line)
		if logErr := events.RecordParse(line, n, err); logErr != nil {
			return logErr
		}

		if err != nil {
			r.ShowError(out, "input", line, err)
			continue
		}

		if err := r.Render(out, n); err != nil {
			return err
		}
	}
}

// playgroundCmd parses lines interactively.
var playgroundCmd = &cobra.Command{
	Use:   "playground",
	Short: "Parse command lines interactively without executing them.",
	Args:  cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		playgroundLogger := log.New(cmd.ErrOrStderr(), "[playground] ", 0)

		cfg, err := loadConfigOrDefault()
		if err != nil {
			return err
		}
		r, err := newRenderer(cfg)
		if err != nil {
			return err
		}

		events, closeEvents := openEventLogger(cfg, playgroundLogger)
		defer closeEvents()
		session := events.NewSession()

		rlConfig := &readline.Config{
			Prompt:      cfg.Prompt,
			HistoryFile: cfg.HistoryPath(),
			Stdin:       readline.NewCancelableStdin(cmd.InOrStdin()),
			Stdout:      cmd.OutOrStdout(),
			Stderr:      cmd.ErrOrStderr(),
		}
		if err := rlConfig.Init(); err != nil {
			return err
		}

		rl, err := readline.NewEx(rlConfig)
		if err != nil {
			return err
		}
		defer rl.Close()

		playgroundLogger.Printf("Session: %s\n", session.SessionID())
		playgroundLogger.Println("Press Ctrl-D to quit.")

		return runPlayground(rl, rl, r, session)
	},
}

func init() {
	rootCmd.AddCommand(playgroundCmd)
	addOutputFlags(playgroundCmd)
}
