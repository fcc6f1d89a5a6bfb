/*
Copyright © 2025 Ken'ichiro Oyama <k1lowxb@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/k1LoW/errors"
	"github.com/k1LoW/flagrgb/config"
	"github.com/k1LoW/flagrgb/handler/dot"
	"github.com/k1LoW/flagrgb/version"
	slogmulti "github.com/samber/slog-multi"
	"github.com/spf13/cobra"
)

var (
	profile       string
	flagsDir      string
	thumbnailsDir string
	output        string
	ext           string
	verbose       bool
	watch         bool
	sortByLabel   bool
)

var rootCmd = &cobra.Command{
	Use:   "flagrgb",
	Short: "flagrgb computes the average color of flag images and writes a JSON manifest",
	Long: `flagrgb computes the average color of flag images and writes a JSON manifest.

Without a subcommand, every flag image in the flag directory is decoded, its average color is
computed and the manifest of {state, rgb, thumbnail} records is written to the output file.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	Version:      fmt.Sprintf("%s (rev:%s)", version.Version, version.Revision),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSettings(cmd)
		if err != nil {
			return err
		}
		logger, err := newLogger()
		if err != nil {
			return err
		}
		c, err := s.converter(logger)
		if err != nil {
			return err
		}
		if watch {
			return c.Watch(cmd.Context(), s.output)
		}
		return c.Run(cmd.Context(), s.output)
	},
}

type errorData struct {
	StackTraces any       `json:"stack_traces"`
	CreatedAt   time.Time `json:"created_at"`
	Version     string    `json:"version"`
	Revision    string    `json:"revision"`
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		// Write stack trace log to state directory
		d := &errorData{
			StackTraces: errors.StackTraces(err),
			CreatedAt:   time.Now(),
			Version:     version.Version,
			Revision:    version.Revision,
		}
		b, err := json.Marshal(d)
		if err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "%v\n", err)
		} else {
			dir := config.StateHomePath()
			dumpPath := filepath.Join(dir, "error.json")
			if err := os.MkdirAll(dir, 0o700); err != nil {
				_, _ = fmt.Fprintf(os.Stderr, "failed to create %s: %v\n", dir, err)
			} else if err := os.WriteFile(dumpPath, b, 0o600); err != nil {
				_, _ = fmt.Fprintf(os.Stderr, "failed to write error.json to %s: %v\n", dumpPath, err)
			}
		}
		os.Exit(1)
	}
}

func newLogger() (*slog.Logger, error) {
	d, err := dot.New(slog.NewTextHandler(os.Stdout, nil))
	if err != nil {
		return nil, err
	}
	handlers := []slog.Handler{d}
	if verbose {
		handlers = append(handlers, slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	return slog.New(slogmulti.Fanout(handlers...)), nil
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&profile, "profile", "", "", "profile name")
	rootCmd.PersistentFlags().StringVarP(&flagsDir, "flags-dir", "d", defaultFlagsDir, "directory of the flag images")
	rootCmd.PersistentFlags().StringVarP(&thumbnailsDir, "thumbnails-dir", "T", defaultThumbnailsDir, "directory of the thumbnails")
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", defaultOutput, "manifest file")
	rootCmd.PersistentFlags().StringVarP(&ext, "ext", "", ".png", "file name suffix of the flag images (case-sensitive)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "write structured logs to stderr")
	rootCmd.Flags().BoolVarP(&watch, "watch", "w", false, "rerun the conversion when the flag directory changes")
	rootCmd.Flags().BoolVarP(&sortByLabel, "sort", "s", false, "sort the manifest by label")
}
