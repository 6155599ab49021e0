package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/josephlewis42/shtree/core/config"
	"github.com/josephlewis42/shtree/core/shell"
	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"
	"src.elv.sh/pkg/diag"
)

var (
	formatFlag string
	colorFlag  string
)

var (
	ColorBoldCyan = color.New(color.FgCyan, color.Bold)
	ColorGreen    = color.New(color.FgGreen)
	ColorBoldRed  = color.New(color.FgRed, color.Bold)
)

// renderer writes trees and errors in the configured format.
type renderer struct {
	format string
	color  string
}

func newRenderer(cfg *config.Configuration) (*renderer, error) {
	r := &renderer{format: cfg.OutputFormat, color: cfg.Color}
	if formatFlag != "" {
		r.format = formatFlag
	}
	if colorFlag != "" {
		r.color = colorFlag
	}

	// Reuse the configuration's validation for the flag overrides.
	check := *cfg
	check.OutputFormat = r.format
	check.Color = r.color
	if err := check.Validate(); err != nil {
		return nil, err
	}

	return r, nil
}

// colorize returns c with color forced on or off to match the color mode.
func (r *renderer) colorize(c *color.Color) *color.Color {
	out := *c
	switch r.color {
	case config.ColorAlways:
		out.EnableColor()
	case config.ColorNever:
		out.DisableColor()
	}
	// Auto keeps fatih/color's terminal detection.
	return &out
}

func (r *renderer) style() shell.Style {
	return shell.Style{
		Operator: r.colorize(ColorBoldCyan).SprintfFunc(),
		Program:  r.colorize(ColorGreen).SprintfFunc(),
	}
}

// Render writes n to w.
func (r *renderer) Render(w io.Writer, n shell.Node) error {
	switch r.format {
	case config.FormatRepr:
		_, err := fmt.Fprintln(w, n)
		return err

	case config.FormatTree:
		return shell.FprintAST(w, n, r.style())

	case config.FormatJSON:
		data, err := shell.MarshalNode(n)
		if err != nil {
			return err
		}
		var indented bytes.Buffer
		if err := json.Indent(&indented, data, "", "  "); err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, indented.String())
		return err

	case config.FormatYAML:
		data, err := shell.MarshalNode(n)
		if err != nil {
			return err
		}
		out, err := yaml.JSONToYAML(data)
		if err != nil {
			return err
		}
		_, err = w.Write(out)
		return err

	case config.FormatSource:
		_, err := fmt.Fprintln(w, shell.Format(n))
		return err

	default:
		return fmt.Errorf("unknown output format %q", r.format)
	}
}

// errorPos finds where in the line err happened.
func errorPos(err error) (int, bool) {
	var lexErr *shell.LexError
	var parseErr *shell.ParseError
	switch {
	case errors.As(err, &lexErr):
		return lexErr.Pos, true
	case errors.As(err, &parseErr):
		return parseErr.Pos, true
	default:
		return 0, false
	}
}

// ShowError writes err along with the part of line that caused it.
func (r *renderer) ShowError(w io.Writer, name, line string, err error) {
	fmt.Fprintf(w, "%s %v\n", r.colorize(ColorBoldRed).Sprint("error:"), err)
	if pos, ok := errorPos(err); ok {
		ctx := diag.NewContext(name, line, diag.PointRanging(pos))
		fmt.Fprintf(w, "  %s\n", ctx.ShowCompact("  "))
	}
}

func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&formatFlag, "format", "f", "", "Output format (repr|tree|json|yaml|source), overrides the config.")
	cmd.Flags().StringVar(&colorFlag, "color", "", "Colorize the output (always|auto|never), overrides the config.")
}
