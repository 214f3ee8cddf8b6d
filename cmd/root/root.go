// Package root contains the root command for the application
package root

import (
	"github.com/samvdst/camtconvert/internal/config"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input    string
	Output   string
	Validate bool
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "camtconvert",
		Short: "Convert CAMT.053 bank statements from version 053.001.10 to 053.001.08.",
		Long: `camtconvert converts ISO 20022 CAMT.053.001.10 bank statement XML files
into the older CAMT.053.001.08 schema, preserving amounts exactly and
synthesizing the header and classification fields the older schema requires.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to camtconvert!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()
			Log = config.ConfigureLogging()
		},
	}

	// SharedFlags holds the common flags accessible to all commands
	SharedFlags = CommonFlags{}
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file")
	Cmd.PersistentFlags().BoolVarP(&SharedFlags.Validate, "validate", "v", false, "Validate file format before conversion")
}
