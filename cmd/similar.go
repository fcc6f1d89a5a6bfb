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
	"fmt"

	"github.com/spf13/cobra"
)

var limit int

var similarCmd = &cobra.Command{
	Use:   "similar [IMAGE]",
	Short: "list the flags that look most like an image",
	Long:  `list the flags that look most like an image, compared by perceptual hash.`,
	Args:  cobra.ExactArgs(1),
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
		matches, err := c.Similar(cmd.Context(), args[0], limit)
		if err != nil {
			return err
		}
		for i, m := range matches {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%2d. %s (distance: %d)\n", i+1, m.State, m.Distance)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(similarCmd)
	similarCmd.Flags().IntVarP(&limit, "limit", "n", 5, "number of flags to list (0 lists all)")
}
