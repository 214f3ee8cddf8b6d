package csvexport

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/samvdst/camtconvert/internal/models"
	"github.com/samvdst/camtconvert/internal/reference"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleStatement() *models.Statement {
	return &models.Statement{
		ID: "STMT-1",
		Transactions: []models.Transaction{
			{
				Amount:         "50.00",
				Currency:       "EUR",
				CreditDebitInd: "DBIT",
				BookingDate:    "2025-06-20T00:00:00+02:00",
				BankTxCode:     "CARD001",
				AdditionalInfo: "Coffee   shop",
				Charges:        "0.35",
			},
			{
				Amount:         "284.75",
				Currency:       "CHF",
				CreditDebitInd: "CRDT",
				BookingDate:    "2025-06-18T00:00:00+02:00",
				BankTxCode:     "SCT-INBOUND",
			},
		},
	}
}

func TestRecords(t *testing.T) {
	statement := sampleStatement()
	records := Records(statement)
	require.Len(t, records, 2)

	card := records[0]
	assert.Equal(t, "50.00", card.Amount)
	assert.Equal(t, "EUR", card.Currency)
	assert.Equal(t, "DBIT", card.CreditDebit)
	assert.Equal(t, "PMNT.CCRD.POSD", card.Classification)
	assert.Equal(t, reference.ForTransaction(statement.Transactions[0]), card.Reference)
	assert.Equal(t, "Coffee shop", card.AdditionalInfo)
	assert.Equal(t, "0.35", card.Charges)

	transfer := records[1]
	assert.Equal(t, "PMNT.ICDT.ESCT", transfer.Classification)
	assert.Empty(t, transfer.Charges)
}

func TestRecordsEmptyStatement(t *testing.T) {
	assert.Empty(t, Records(&models.Statement{}))
}

func TestWriteEntries(t *testing.T) {
	dir := t.TempDir()
	csvFile := filepath.Join(dir, "entries.csv")

	require.NoError(t, WriteEntries(sampleStatement(), csvFile, nil))

	data, err := os.ReadFile(csvFile)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3, "header plus one line per entry")
	assert.Contains(t, lines[0], "Amount")
	assert.Contains(t, lines[0], "Reference")
	assert.Contains(t, lines[1], "50.00")
	assert.Contains(t, lines[2], "284.75")
}
