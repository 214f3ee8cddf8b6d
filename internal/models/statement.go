// Package models defines the version-agnostic statement model the parser
// produces and the writer consumes, plus the XML-tagged structures of the
// emitted CAMT.053.001.08 document.
package models

// Statement is the version-agnostic model of a single bank statement. All
// fields hold the exact source text; amounts in particular are never
// re-parsed or re-formatted, and absent fields stay empty strings.
type Statement struct {
	ID               string
	CreationDateTime string
	FromDateTime     string
	ToDateTime       string
	IBAN             string
	Currency         string
	OwnerName        string
	Balances         []Balance
	Transactions     []Transaction
}

// Balance is one Bal block of the statement, in document order.
type Balance struct {
	Type           string
	Amount         string
	Currency       string
	CreditDebitInd string
	Date           string
}

// Transaction is one Ntry block of the statement, in document order.
type Transaction struct {
	Amount         string
	Currency       string
	CreditDebitInd string
	BookingDate    string
	BankTxCode     string
	AdditionalInfo string
	Charges        string
}

// HasCharges reports whether the entry carried a charges amount.
func (t Transaction) HasCharges() bool {
	return t.Charges != ""
}
