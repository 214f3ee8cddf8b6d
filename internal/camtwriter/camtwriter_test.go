package camtwriter

import (
	"bytes"
	"regexp"
	"strings"
	"testing"

	"github.com/samvdst/camtconvert/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleStatement() *models.Statement {
	return &models.Statement{
		ID:               "STMT-2025-001",
		CreationDateTime: "2025-06-22T17:33:43.291656435Z",
		FromDateTime:     "2025-06-01T00:00:00+02:00",
		ToDateTime:       "2025-06-20T00:00:00+02:00",
		IBAN:             "CH9300762011623852957",
		Currency:         "EUR",
		OwnerName:        "Jane Example",
		Balances: []models.Balance{
			{
				Type:           "CLBD",
				Amount:         "1234.56",
				Currency:       "EUR",
				CreditDebitInd: "CRDT",
				Date:           "2025-06-20T00:00:00+02:00",
			},
		},
		Transactions: []models.Transaction{
			{
				Amount:         "50.00",
				Currency:       "EUR",
				CreditDebitInd: "DBIT",
				BookingDate:    "2025-06-20T00:00:00+02:00",
				BankTxCode:     "CARD001",
				AdditionalInfo: "Coffee   shop",
			},
		},
	}
}

func writeToString(t *testing.T, statement *models.Statement) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, NewWriter(nil).Write(&buf, statement))
	return buf.String()
}

func TestClassifyBankTxCode(t *testing.T) {
	tests := []struct {
		name      string
		code      string
		family    string
		subFamily string
	}{
		{"Card code", "CARD-POS-01", "CCRD", "POSD"},
		{"Plain card prefix", "CARD001", "CCRD", "POSD"},
		{"Credit transfer", "SCT-INBOUND", "ICDT", "ESCT"},
		{"Empty code", "", "ICDT", "ESCT"},
		{"Card not as prefix", "XCARD", "ICDT", "ESCT"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			family, subFamily := ClassifyBankTxCode(tc.code)
			assert.Equal(t, tc.family, family)
			assert.Equal(t, tc.subFamily, subFamily)
		})
	}
}

func TestWriteDocumentShell(t *testing.T) {
	out := writeToString(t, sampleStatement())

	assert.True(t, strings.HasPrefix(out, `<?xml version="1.0" encoding="UTF-8"?>`))
	assert.Contains(t, out, `<Document xmlns="urn:iso:std:iso:20022:tech:xsd:camt.053.001.08" xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance">`)
	assert.Equal(t, 1, strings.Count(out, "<BkToCstmrStmt>"))
	assert.Equal(t, 1, strings.Count(out, "<GrpHdr>"))
	assert.Equal(t, 1, strings.Count(out, "<Stmt>"))

	// 4-space indentation
	assert.Contains(t, out, "\n    <BkToCstmrStmt>")
	assert.Contains(t, out, "\n        <GrpHdr>")
}

func TestWriteGroupHeader(t *testing.T) {
	out := writeToString(t, sampleStatement())

	assert.Contains(t, out, "<MsgId>STMT-2025-001</MsgId>")
	assert.Contains(t, out, "<CreDtTm>2025-06-22T17:33:43+00:00</CreDtTm>")
	assert.Contains(t, out, "<AnyBIC>XXXXXXXX</AnyBIC>")
	assert.Contains(t, out, "<PgNb>1</PgNb>")
	assert.Contains(t, out, "<LastPgInd>true</LastPgInd>")
	assert.Contains(t, out, "<AddtlInf>SPS/2.1</AddtlInf>")
}

func TestWriteStatementBody(t *testing.T) {
	out := writeToString(t, sampleStatement())

	assert.Contains(t, out, "<Id>STMT-2025-001</Id>")
	assert.Contains(t, out, "<ElctrncSeqNb>1</ElctrncSeqNb>")
	assert.Contains(t, out, "<FrDtTm>2025-06-01T00:00:00+02:00</FrDtTm>")
	assert.Contains(t, out, "<ToDtTm>2025-06-20T00:00:00+02:00</ToDtTm>")
	assert.Contains(t, out, "<IBAN>CH9300762011623852957</IBAN>")
	assert.Contains(t, out, "<Ccy>EUR</Ccy>")
	assert.Contains(t, out, "<Nm>Jane Example</Nm>")

	// Synthetic servicer block
	assert.Contains(t, out, "<BICFI>XXXXXXXX</BICFI>")
	assert.Contains(t, out, "<Nm>Bank</Nm>")
	assert.Contains(t, out, "<Id>XXX-000.000.000</Id>")
	assert.Contains(t, out, "<Issr>ID</Issr>")
}

func TestWriteBalance(t *testing.T) {
	out := writeToString(t, sampleStatement())

	assert.Contains(t, out, "<Cd>CLBD</Cd>")
	assert.Contains(t, out, `<Amt Ccy="EUR">1234.56</Amt>`)
	assert.Contains(t, out, "<CdtDbtInd>CRDT</CdtDbtInd>")
	assert.Contains(t, out, "<Dt>2025-06-20</Dt>")
}

func TestWriteEntry(t *testing.T) {
	out := writeToString(t, sampleStatement())

	assert.Contains(t, out, `<Amt Ccy="EUR">50.00</Amt>`)
	assert.Contains(t, out, "<Cd>BOOK</Cd>")
	assert.Contains(t, out, "<BookgDt>")
	assert.Contains(t, out, "<ValDt>")
	assert.Contains(t, out, "<Cd>PMNT</Cd>")
	assert.Contains(t, out, "<Cd>CCRD</Cd>")
	assert.Contains(t, out, "<SubFmlyCd>POSD</SubFmlyCd>")
	assert.Contains(t, out, "<Cd>CARD001</Cd>")

	// Booking and value date both come from the single source date; the
	// third occurrence is the balance date.
	assert.Equal(t, 3, strings.Count(out, "<Dt>2025-06-20</Dt>"))

	// Entry details with normalized remittance text, source text at the
	// top level.
	assert.Contains(t, out, "<Ustrd>Coffee shop</Ustrd>")
	assert.Contains(t, out, "<AddtlNtryInf>Coffee   shop</AddtlNtryInf>")
}

func TestWriteReferenceRepeatedIdentically(t *testing.T) {
	out := writeToString(t, sampleStatement())

	refs := regexp.MustCompile(`<AcctSvcrRef>(TX\d{10})</AcctSvcrRef>`).FindAllStringSubmatch(out, -1)
	require.Len(t, refs, 2)
	assert.Equal(t, refs[0][1], refs[1][1])
}

func TestWriteOmitsEntryDetailsWithoutAdditionalInfo(t *testing.T) {
	statement := sampleStatement()
	statement.Transactions[0].AdditionalInfo = ""

	out := writeToString(t, statement)

	assert.NotContains(t, out, "<NtryDtls>")
	assert.NotContains(t, out, "<Ustrd>")
	// The top-level element is still present, just empty.
	assert.Contains(t, out, "<AddtlNtryInf></AddtlNtryInf>")

	// Only one reference occurrence without the details block.
	refs := regexp.MustCompile(`<AcctSvcrRef>TX\d{10}</AcctSvcrRef>`).FindAllString(out, -1)
	assert.Len(t, refs, 1)
}

func TestWriteEmptyCollections(t *testing.T) {
	statement := &models.Statement{
		ID:               "EMPTY",
		CreationDateTime: "2025-06-22T17:33:43Z",
	}

	out := writeToString(t, statement)

	assert.Contains(t, out, "<GrpHdr>")
	assert.Contains(t, out, "<Stmt>")
	assert.NotContains(t, out, "<Bal>")
	assert.NotContains(t, out, "<Ntry>")
}

func TestWriteEmptyFieldsProduceEmptyElements(t *testing.T) {
	statement := &models.Statement{
		Balances: []models.Balance{{}},
	}

	out := writeToString(t, statement)

	// Absent source fields are not errors; they serialize as empty
	// elements.
	assert.Contains(t, out, "<Id></Id>")
	assert.Contains(t, out, "<IBAN></IBAN>")
	assert.Contains(t, out, `<Amt Ccy=""></Amt>`)
}

func TestWriteDoesNotMutateStatement(t *testing.T) {
	statement := sampleStatement()
	before := *statement
	beforeTx := statement.Transactions[0]

	var buf bytes.Buffer
	require.NoError(t, NewWriter(nil).Write(&buf, statement))

	assert.Equal(t, before.ID, statement.ID)
	assert.Equal(t, beforeTx, statement.Transactions[0])
}

func TestWritePlaceholderOverrides(t *testing.T) {
	w := NewWriter(nil)
	placeholders := DefaultPlaceholders()
	placeholders.ServicerBIC = "TESTBICX"
	placeholders.ServicerName = "Test Bank AG"
	w.SetPlaceholders(placeholders)

	var buf bytes.Buffer
	require.NoError(t, w.Write(&buf, sampleStatement()))
	out := buf.String()

	assert.Contains(t, out, "<BICFI>TESTBICX</BICFI>")
	assert.Contains(t, out, "<Nm>Test Bank AG</Nm>")
	// Untouched placeholders keep their defaults.
	assert.Contains(t, out, "<AnyBIC>XXXXXXXX</AnyBIC>")
}
