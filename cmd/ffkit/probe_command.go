package main

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"ffkit/internal/config"
	"ffkit/internal/logging"
	"ffkit/internal/media/ffprobe"
	"ffkit/internal/probecache"
)

func newProbeCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool
	var rawOut bool
	var noCache bool

	cmd := &cobra.Command{
		Use:   "probe <file>",
		Short: "Inspect a media file and show its mapped probe report",
		Long: `Inspect a media file with ffprobe and show the mapped report: container
format, streams, and chapters. Repeated inspections of unchanged files are
served from the probe cache when it is enabled.

Examples:
  ffkit probe movie.mkv
  ffkit probe --json movie.mkv     # mapped report as JSON
  ffkit probe --raw movie.mkv      # untouched ffprobe output
  ffkit probe --no-cache movie.mkv # bypass the probe cache`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.newLogger(cfg)
			if err != nil {
				return err
			}

			runCtx := logging.WithRunID(cmd.Context(), "")
			log := logging.WithContext(runCtx, logger).With(
				slog.String(logging.FieldComponent, "probe"),
			)

			path := args[0]
			raw, err := loadProbeOutput(runCtx, cfg, log, path, noCache)
			if err != nil {
				return err
			}
			report, err := ffprobe.ParseJSON(raw)
			if err != nil {
				return err
			}

			switch {
			case rawOut:
				return writeJSON(cmd, report.Unwrap())
			case jsonOut:
				return writeJSON(cmd, reportView(report))
			default:
				renderReport(cmd.OutOrStdout(), path, report)
				return nil
			}
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Print the mapped report as JSON")
	cmd.Flags().BoolVar(&rawOut, "raw", false, "Print the untouched ffprobe output")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "Bypass the probe cache")

	return cmd
}

// loadProbeOutput returns raw ffprobe JSON for path, consulting the
// cache when enabled. Cache failures degrade to a direct ffprobe run;
// they never fail the command.
func loadProbeOutput(ctx context.Context, cfg *config.Config, log *slog.Logger, path string, noCache bool) ([]byte, error) {
	if !cfg.Cache.Enabled || noCache {
		return ffprobe.Run(ctx, cfg.Tools.FFprobeBinary, path)
	}

	cache, err := probecache.Open(cfg)
	if err != nil {
		log.Warn("probe cache unavailable", "error", err)
		return ffprobe.Run(ctx, cfg.Tools.FFprobeBinary, path)
	}
	defer cache.Close()

	if raw, ok, err := cache.Get(ctx, path); err == nil && ok {
		log.Debug("probe cache hit", slog.String(logging.FieldPath, path))
		return raw, nil
	}

	raw, err := ffprobe.Run(ctx, cfg.Tools.FFprobeBinary, path)
	if err != nil {
		return nil, err
	}
	if err := cache.Put(ctx, path, raw); err != nil {
		log.Warn("store probe cache entry", "error", err)
	}
	if _, err := cache.Prune(ctx, cfg.Cache.MaxEntries); err != nil {
		log.Warn("prune probe cache", "error", err)
	}
	return raw, nil
}
