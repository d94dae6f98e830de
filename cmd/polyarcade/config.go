package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/polyarcade/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config <demo>",
	Short: "Print the default config of a demo",
	Long: `Print the built-in YAML config of a demo. Save it to
~/.polyarcade/configs/<demo>.yaml or ./configs/<demo>.yaml to override the
defaults, or pass it to play with --config.

Examples:
  polyarcade config swing > ~/.polyarcade/configs/swing.yaml
  polyarcade config breakout`,
	Args: cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		data := config.GetDefaultYAML(args[0])
		if data == nil {
			return fmt.Errorf("no config for demo %q", args[0])
		}
		_, err := os.Stdout.Write(data)
		return err
	},
}
