// Package converter orchestrates the conversion pipeline: parse the
// source statement, run sanity checks, emit the target document. The
// conversion is single-shot and all-or-nothing; any parse or write error
// aborts with no partial output.
package converter

import (
	"bytes"
	"fmt"
	"io"

	"github.com/samvdst/camtconvert/internal/camtparser"
	"github.com/samvdst/camtconvert/internal/camtwriter"
	"github.com/samvdst/camtconvert/internal/fileutils"
	"github.com/samvdst/camtconvert/internal/logging"
	"github.com/samvdst/camtconvert/internal/models"
	"github.com/samvdst/camtconvert/internal/parsererror"
	"github.com/samvdst/camtconvert/internal/validation"
)

// Converter converts CAMT.053.001.10 statements to CAMT.053.001.08.
type Converter struct {
	logger logging.Logger
	parser *camtparser.Parser
	writer *camtwriter.Writer
}

// New creates a Converter. If logger is nil, a default logger is used.
func New(logger logging.Logger) *Converter {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Converter{
		logger: logger,
		parser: camtparser.NewParser(logger),
		writer: camtwriter.NewWriter(logger),
	}
}

// SetPlaceholders overrides the synthetic placeholder values used by the
// writer.
func (c *Converter) SetPlaceholders(p camtwriter.Placeholders) {
	c.writer.SetPlaceholders(p)
}

// Parse reads a source statement from r without converting it.
func (c *Converter) Parse(r io.Reader) (*models.Statement, error) {
	return c.parser.Parse(r)
}

// Convert reads a CAMT.053.001.10 document from r and returns the fully
// serialized CAMT.053.001.08 document. The same input always yields
// byte-identical output.
func (c *Converter) Convert(r io.Reader) ([]byte, error) {
	statement, err := c.parser.Parse(r)
	if err != nil {
		return nil, err
	}

	validation.CheckStatement(statement, c.logger)

	var buf bytes.Buffer
	if err := c.writer.Write(&buf, statement); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// ConvertFile converts inputFile and writes the result to outputFile.
func (c *Converter) ConvertFile(inputFile, outputFile string) error {
	c.logger.Info("Converting CAMT.053 file",
		logging.Field{Key: "input", Value: inputFile},
		logging.Field{Key: "output", Value: outputFile})

	data, err := fileutils.ReadFile(inputFile)
	if err != nil {
		return fmt.Errorf("error reading input file: %w", err)
	}

	output, err := c.Convert(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("error converting file: %w", err)
	}

	if err := fileutils.WriteFile(outputFile, output, 0644); err != nil {
		return fmt.Errorf("error writing output file: %w", err)
	}

	c.logger.Info("Conversion completed successfully",
		logging.Field{Key: "output", Value: outputFile})

	return nil
}

// EnsureFormat checks that the file looks like a CAMT.053 statement and
// returns an InvalidFormatError when it does not.
func (c *Converter) EnsureFormat(filePath string) error {
	valid, err := c.parser.ValidateFormat(filePath)
	if err != nil {
		return err
	}
	if !valid {
		return &parsererror.InvalidFormatError{
			FilePath:       filePath,
			ExpectedFormat: "CAMT.053 XML",
			Msg:            "no bank statement element found",
		}
	}
	return nil
}
