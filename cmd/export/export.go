// Package export handles the CSV export command
package export

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/samvdst/camtconvert/cmd/root"
	"github.com/samvdst/camtconvert/internal/converter"
	"github.com/samvdst/camtconvert/internal/csvexport"
	"github.com/samvdst/camtconvert/internal/fileutils"
	"github.com/samvdst/camtconvert/internal/logging"

	"github.com/spf13/cobra"
)

// Cmd represents the export command
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Export the entries of a CAMT.053.001.10 file to CSV",
	Long: `Parse a CAMT.053.001.10 XML bank statement and write its entries as CSV,
including the derived classification and the synthesized reference of
each entry.`,
	Run: exportFunc,
}

func exportFunc(cmd *cobra.Command, args []string) {
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
		stem := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
		output = filepath.Join(filepath.Dir(input), stem+".csv")
	}

	c := converter.New(log)

	if root.SharedFlags.Validate {
		if err := c.EnsureFormat(input); err != nil {
			log.Fatalf("%v", err)
		}
	}

	data, err := fileutils.ReadFile(input)
	if err != nil {
		log.Fatalf("Error reading input file: %v", err)
	}

	statement, err := c.Parse(bytes.NewReader(data))
	if err != nil {
		log.Fatalf("Error parsing file: %v", err)
	}

	if err := csvexport.WriteEntries(statement, output, log); err != nil {
		log.Fatalf("Error writing CSV: %v", err)
	}
	log.Info("CSV export completed successfully!")
}
