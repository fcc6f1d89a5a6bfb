package cmd

import (
	"log/slog"

	"github.com/k1LoW/flagrgb"
	"github.com/k1LoW/flagrgb/config"
	"github.com/spf13/cobra"
)

const (
	defaultFlagsDir      = "state_flags_png_1024/state_flags_png"
	defaultThumbnailsDir = "state_flags_png_1024/thumbnails"
	defaultOutput        = "flags_data.json"
	defaultClusters      = 4
)

// settings is the resolved configuration of a command: flag > config file > default.
type settings struct {
	flagsDir        string
	thumbnailsDir   string
	output          string
	ext             string
	sortByLabel     bool
	thumbnailWidth  int
	thumbnailHeight int
	clusters        int
}

func loadSettings(cmd *cobra.Command) (*settings, error) {
	cfg, err := config.Load(profile)
	if err != nil {
		return nil, err
	}
	return resolveSettings(cmd, cfg), nil
}

func resolveSettings(cmd *cobra.Command, cfg *config.Config) *settings {
	s := &settings{
		flagsDir:        defaultFlagsDir,
		thumbnailsDir:   defaultThumbnailsDir,
		output:          defaultOutput,
		ext:             flagrgb.DefaultExtension,
		thumbnailWidth:  flagrgb.DefaultThumbnailWidth,
		thumbnailHeight: flagrgb.DefaultThumbnailHeight,
		clusters:        defaultClusters,
	}
	if cfg.FlagsDir != "" {
		s.flagsDir = cfg.FlagsDir
	}
	if cfg.ThumbnailsDir != "" {
		s.thumbnailsDir = cfg.ThumbnailsDir
	}
	if cfg.Output != "" {
		s.output = cfg.Output
	}
	if cfg.Extension != "" {
		s.ext = cfg.Extension
	}
	if cfg.SortByLabel != nil {
		s.sortByLabel = *cfg.SortByLabel
	}
	if cfg.Thumbnail != nil {
		if cfg.Thumbnail.Width > 0 {
			s.thumbnailWidth = cfg.Thumbnail.Width
		}
		if cfg.Thumbnail.Height > 0 {
			s.thumbnailHeight = cfg.Thumbnail.Height
		}
	}
	if cfg.Clusters > 0 {
		s.clusters = cfg.Clusters
	}

	flags := cmd.Flags()
	if flags.Changed("flags-dir") {
		s.flagsDir = flagsDir
	}
	if flags.Changed("thumbnails-dir") {
		s.thumbnailsDir = thumbnailsDir
	}
	if flags.Changed("output") {
		s.output = output
	}
	if flags.Changed("ext") {
		s.ext = ext
	}
	if flags.Changed("sort") {
		s.sortByLabel = sortByLabel
	}
	if flags.Changed("width") {
		s.thumbnailWidth = thumbnailWidth
	}
	if flags.Changed("height") {
		s.thumbnailHeight = thumbnailHeight
	}
	if flags.Changed("clusters") {
		s.clusters = clusters
	}
	return s
}

func (s *settings) converter(logger *slog.Logger) (*flagrgb.Converter, error) {
	return flagrgb.New(s.flagsDir,
		flagrgb.WithThumbnailDir(s.thumbnailsDir),
		flagrgb.WithExtension(s.ext),
		flagrgb.WithSortByLabel(s.sortByLabel),
		flagrgb.WithLogger(logger),
	)
}
