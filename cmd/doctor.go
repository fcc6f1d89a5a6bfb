package cmd

import (
	"os"

	"github.com/fatih/color"
	"github.com/k1LoW/flagrgb/config"
	"github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check flagrgb environment and configuration",
	Long:  `Check flagrgb environment and configuration to ensure everything is set up correctly.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		green := color.New(color.FgGreen)
		red := color.New(color.FgRed)
		yellow := color.New(color.FgYellow)
		bold := color.New(color.Bold)

		allOK := true

		// 1. Check configuration file (optional)
		cmd.Print("🔧 Checking configuration file ... ")
		cfg, err := config.Load(profile)
		if err != nil {
			red.Println("✗ CONFIG ERROR")
			cmd.Printf("   Error loading config: %v\n", err)
			return nil
		}
		green.Println("✓ OK")
		if p := config.Path(profile); p != "" {
			cmd.Printf("   Config file: %s\n", p)
		} else {
			cmd.Println("   No config file, using defaults")
		}
		s := resolveSettings(cmd, cfg)

		// 2. Check flag directory
		cmd.Print("🔍 Checking flag directory ... ")
		c, err := s.converter(nil)
		if err != nil {
			red.Println("✗ INVALID")
			cmd.Printf("   %v\n", err)
			return nil
		}
		names, err := c.Files()
		switch {
		case err != nil:
			red.Println("✗ NOT FOUND")
			cmd.Printf("   Expected at: %s\n", s.flagsDir)
			allOK = false
		case len(names) == 0:
			yellow.Println("⚠️ EMPTY")
			cmd.Printf("   No %s files in %s\n", s.ext, s.flagsDir)
			allOK = false
		default:
			green.Println("✓ OK")
			cmd.Printf("   %d flag images in %s\n", len(names), s.flagsDir)
		}

		// 3. Check thumbnails, which the manifest refers to without checking
		if allOK {
			cmd.Print("🖼  Checking thumbnails ... ")
			missing, err := c.MissingThumbnails()
			switch {
			case err != nil:
				red.Println("✗ ERROR")
				cmd.Printf("   %v\n", err)
				allOK = false
			case len(missing) > 0:
				yellow.Println("⚠️ MISSING")
				for _, p := range missing {
					cmd.Printf("   %s\n", p)
				}
				cmd.Println("   Run `flagrgb thumbnail` to generate them.")
				allOK = false
			default:
				green.Println("✓ OK")
				cmd.Printf("   Thumbnail directory: %s\n", s.thumbnailsDir)
			}
		}

		// 4. Check output directory
		cmd.Print("📝 Checking output ... ")
		if fi, err := os.Stat(s.output); err == nil && fi.IsDir() {
			red.Println("✗ IS A DIRECTORY")
			cmd.Printf("   %s\n", s.output)
			allOK = false
		} else {
			green.Println("✓ OK")
			cmd.Printf("   Manifest: %s\n", s.output)
		}

		cmd.Println()
		if allOK {
			bold.Printf("🎉 ")
			green.Print("All checks passed! You are ready to use flagrgb")
			bold.Println(".")
		} else {
			red.Println("⚠️  Setup is incomplete.")
			cmd.Println("\nPlease fix the issues above.")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}
