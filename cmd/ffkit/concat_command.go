package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"ffkit/internal/media/filtergraph"
)

func newConcatCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "concat <file ...>",
		Short: "Print a concat demuxer manifest for the given files",
		Long: `Print a manifest for ffmpeg's concat demuxer listing the given files in
order, with concat-file escaping applied to every path. Pipe the output to a
file and pass it to ffmpeg with -f concat.

Example:
  ffkit concat part1.mkv "part 2.mkv" > list.txt
  ffmpeg -f concat -safe 0 -i list.txt -c copy joined.mkv`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entries := make([]filtergraph.ConcatEntry, 0, len(args))
			for _, path := range args {
				entries = append(entries, filtergraph.ConcatEntry{File: path})
			}
			fmt.Fprint(cmd.OutOrStdout(), filtergraph.StringifyConcatFile(entries))
			return nil
		},
	}
	return cmd
}
