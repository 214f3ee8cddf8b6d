package camtparser

import (
	"fmt"
	"os"

	"github.com/samvdst/camtconvert/internal/logging"

	"gopkg.in/xmlpath.v2"
)

// ValidateFormat checks whether a file looks like a CAMT.053 statement:
// well-formed XML with a BkToCstmrStmt/Stmt element. It is a shape check,
// not XSD validation.
func (p *Parser) ValidateFormat(filePath string) (bool, error) {
	p.logger.Info("Validating CAMT.053 format",
		logging.Field{Key: "file", Value: filePath})

	xmlFile, err := os.Open(filePath)
	if err != nil {
		return false, fmt.Errorf("error opening file: %w", err)
	}
	defer func() {
		if err := xmlFile.Close(); err != nil {
			p.logger.WithError(err).Warn("Failed to close file")
		}
	}()

	root, err := xmlpath.Parse(xmlFile)
	if err != nil {
		p.logger.Info("File is not valid XML",
			logging.Field{Key: "file", Value: filePath})
		return false, nil
	}

	path := xmlpath.MustCompile("//BkToCstmrStmt/Stmt")
	if iter := path.Iter(root); !iter.Next() {
		p.logger.Info("File is not a CAMT.053 XML (no statements)",
			logging.Field{Key: "file", Value: filePath})
		return false, nil
	}

	return true, nil
}
