// Package convert handles the CAMT version conversion command
package convert

import (
	"github.com/samvdst/camtconvert/cmd/root"
	"github.com/samvdst/camtconvert/internal/camtwriter"
	"github.com/samvdst/camtconvert/internal/config"
	"github.com/samvdst/camtconvert/internal/converter"
	"github.com/samvdst/camtconvert/internal/fileutils"
	"github.com/samvdst/camtconvert/internal/logging"

	"github.com/spf13/cobra"
)

// PlaceholdersFile optionally points at a YAML file overriding the
// synthetic placeholder values.
var PlaceholdersFile string

// Cmd represents the convert command
var Cmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert a CAMT.053.001.10 file to CAMT.053.001.08",
	Long: `Convert a CAMT.053.001.10 XML bank statement to the CAMT.053.001.08
schema. When --output is omitted, the result is written next to the input
with "_08.xml" appended to the filename stem.`,
	Run: convertFunc,
}

func init() {
	Cmd.Flags().StringVar(&PlaceholdersFile, "placeholders", "", "YAML file overriding the synthetic placeholder values")
}

func convertFunc(cmd *cobra.Command, args []string) {
	log := logging.NewLogrusAdapterFromLogger(root.Log)

	input := root.SharedFlags.Input
	if input == "" {
		log.Fatal("No input file specified, use --input")
	}
	if !fileutils.FileExists(input) {
		log.Fatalf("Input file does not exist: %s", input)
	}

	output := root.SharedFlags.Output
	if output == "" {
		output = fileutils.DeriveOutputPath(input)
	}

	c := converter.New(log)
	c.SetPlaceholders(loadPlaceholders(log))

	if root.SharedFlags.Validate {
		log.Info("Validating format...")
		if err := c.EnsureFormat(input); err != nil {
			log.Fatalf("%v", err)
		}
		log.Info("Validation successful.")
	}

	if err := c.ConvertFile(input, output); err != nil {
		log.Fatalf("Error converting file: %v", err)
	}
	log.Info("CAMT.053.001.10 to .08 conversion completed successfully!")
}

// loadPlaceholders resolves the placeholder values: the configuration
// (defaults, config file, environment) first; an explicit --placeholders
// file replaces that wholesale (its empty fields fall back to the stock
// defaults).
func loadPlaceholders(log logging.Logger) camtwriter.Placeholders {
	placeholders := camtwriter.DefaultPlaceholders()

	if cfg, err := config.InitializeConfig(); err != nil {
		log.WithError(err).Warn("Failed to load configuration, using default placeholders")
	} else {
		placeholders = cfg.Placeholders
	}

	if PlaceholdersFile != "" {
		data, err := fileutils.ReadFile(PlaceholdersFile)
		if err != nil {
			log.Fatalf("Error reading placeholders file: %v", err)
		}
		placeholders, err = config.LoadPlaceholders(data)
		if err != nil {
			log.Fatalf("Error parsing placeholders file: %v", err)
		}
	}

	return placeholders
}
