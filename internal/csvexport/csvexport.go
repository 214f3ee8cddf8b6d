// Package csvexport writes the entries of a parsed statement to CSV so
// the statement data can be inspected without reading XML.
package csvexport

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/samvdst/camtconvert/internal/camtwriter"
	"github.com/samvdst/camtconvert/internal/logging"
	"github.com/samvdst/camtconvert/internal/models"
	"github.com/samvdst/camtconvert/internal/reference"
	"github.com/samvdst/camtconvert/internal/textutils"

	"github.com/gocarina/gocsv"
)

// EntryRecord is one CSV row per statement entry. Amounts stay exact
// source text.
type EntryRecord struct {
	Amount         string `csv:"Amount"`
	Currency       string `csv:"Currency"`
	CreditDebit    string `csv:"CreditDebit"`
	BookingDate    string `csv:"BookingDate"`
	BankTxCode     string `csv:"BankTxCode"`
	Classification string `csv:"Classification"`
	Reference      string `csv:"Reference"`
	AdditionalInfo string `csv:"AdditionalInfo"`
	Charges        string `csv:"Charges"`
}

// Records maps the statement's transactions onto CSV rows, in document
// order.
func Records(statement *models.Statement) []EntryRecord {
	records := make([]EntryRecord, 0, len(statement.Transactions))

	for _, tx := range statement.Transactions {
		family, subFamily := camtwriter.ClassifyBankTxCode(tx.BankTxCode)
		records = append(records, EntryRecord{
			Amount:         tx.Amount,
			Currency:       tx.Currency,
			CreditDebit:    tx.CreditDebitInd,
			BookingDate:    tx.BookingDate,
			BankTxCode:     tx.BankTxCode,
			Classification: textutils.FormatBankTxCode(camtwriter.DomainPayments, family, subFamily),
			Reference:      reference.ForTransaction(tx),
			AdditionalInfo: textutils.NormalizeWhitespace(tx.AdditionalInfo),
			Charges:        tx.Charges,
		})
	}

	return records
}

// WriteEntries writes the statement's entries to a CSV file.
func WriteEntries(statement *models.Statement, csvFile string, logger logging.Logger) error {
	records := Records(statement)

	if logger != nil {
		logger.Info("Writing entries to CSV file",
			logging.Field{Key: "file", Value: csvFile},
			logging.Field{Key: "count", Value: len(records)})
	}

	dir := filepath.Dir(csvFile)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	file, err := os.Create(csvFile)
	if err != nil {
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil && logger != nil {
			logger.WithError(err).Warn("Failed to close file")
		}
	}()

	if err := gocsv.MarshalFile(&records, file); err != nil {
		return fmt.Errorf("error writing CSV data: %w", err)
	}

	return nil
}
