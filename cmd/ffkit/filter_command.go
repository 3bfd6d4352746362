package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"ffkit/internal/media/filtergraph"
)

func newFilterCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "filter <name> [key=value|value ...]",
		Short: "Render an escaped ffmpeg filter description",
		Long: `Render a filter description in ffmpeg's filter-graph syntax, applying
the filter-value and filter-description escaping rules.

Parameters are either key=value pairs or bare positional values; the two
styles follow ffmpeg's own parameter grammar and keep their order.

Examples:
  ffkit filter scale w=1280 h=-2
  ffkit filter crop 640 480
  ffkit filter drawtext "text=it's 10:00"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			params := parseFilterParams(args[1:])
			fmt.Fprintln(cmd.OutOrStdout(), filtergraph.StringifyFilterDescription(name, params))
			return nil
		},
	}
	return cmd
}

// parseFilterParams maps CLI arguments to filter parameters: "key=value"
// becomes a keyed param, anything else a positional one. An argument of
// the form "key=" carries an absent value and is dropped by the
// renderer.
func parseFilterParams(args []string) []filtergraph.Param {
	if len(args) == 0 {
		return nil
	}
	params := make([]filtergraph.Param, 0, len(args))
	for _, arg := range args {
		key, value, found := strings.Cut(arg, "=")
		switch {
		case !found:
			params = append(params, filtergraph.Param{Value: arg})
		case value == "":
			params = append(params, filtergraph.Param{Key: key})
		default:
			params = append(params, filtergraph.Param{Key: key, Value: value})
		}
	}
	return params
}
