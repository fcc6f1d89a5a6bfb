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
	"github.com/k1LoW/flagrgb"
	"github.com/spf13/cobra"
)

var (
	thumbnailWidth  int
	thumbnailHeight int
)

var thumbnailCmd = &cobra.Command{
	Use:   "thumbnail",
	Short: "generate thumbnails of the flag images",
	Long: `generate thumbnails of the flag images.

Every flag image is scaled to fit inside WIDTHxHEIGHT and written to the thumbnail directory
under the same file name, which is the path the manifest records.`,
	Args: cobra.NoArgs,
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
		return c.GenerateThumbnails(cmd.Context(), s.thumbnailWidth, s.thumbnailHeight)
	},
}

func init() {
	rootCmd.AddCommand(thumbnailCmd)
	thumbnailCmd.Flags().IntVarP(&thumbnailWidth, "width", "W", flagrgb.DefaultThumbnailWidth, "maximum thumbnail width")
	thumbnailCmd.Flags().IntVarP(&thumbnailHeight, "height", "H", flagrgb.DefaultThumbnailHeight, "maximum thumbnail height")
}
