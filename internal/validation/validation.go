// Package validation performs pre-write sanity checks on a parsed
// statement. Findings are warnings only: missing or odd source data still
// converts (absent fields become empty output elements), so nothing here
// ever fails the conversion. Amount texts are checked by parsing them
// with shopspring/decimal, but the parsed value is discarded; the output
// always carries the exact source text.
package validation

import (
	"fmt"
	"regexp"

	"github.com/samvdst/camtconvert/internal/logging"
	"github.com/samvdst/camtconvert/internal/models"

	"github.com/shopspring/decimal"
)

var ibanPattern = regexp.MustCompile(`^[A-Z]{2}[0-9]{2}[A-Z0-9]{1,30}$`)

// CheckStatement inspects a parsed statement and returns a list of
// human-readable warnings, logging each one.
func CheckStatement(statement *models.Statement, logger logging.Logger) []string {
	var warnings []string

	warn := func(format string, args ...interface{}) {
		msg := fmt.Sprintf(format, args...)
		warnings = append(warnings, msg)
		if logger != nil {
			logger.Warn(msg)
		}
	}

	if statement.IBAN != "" && !ibanPattern.MatchString(statement.IBAN) {
		warn("account IBAN '%s' does not look like an IBAN", statement.IBAN)
	}

	for i, balance := range statement.Balances {
		checkAmountText(fmt.Sprintf("balance %d", i), balance.Amount, warn)
		checkIndicator(fmt.Sprintf("balance %d", i), balance.CreditDebitInd, warn)
	}

	for i, tx := range statement.Transactions {
		label := fmt.Sprintf("transaction %d", i)
		checkAmountText(label, tx.Amount, warn)
		checkIndicator(label, tx.CreditDebitInd, warn)
		if tx.HasCharges() {
			checkAmountText(label+" charges", tx.Charges, warn)
		}
	}

	return warnings
}

func checkAmountText(label, amount string, warn func(string, ...interface{})) {
	if amount == "" {
		warn("%s has no amount", label)
		return
	}
	if _, err := decimal.NewFromString(amount); err != nil {
		warn("%s amount '%s' is not a decimal number", label, amount)
	}
}

func checkIndicator(label, indicator string, warn func(string, ...interface{})) {
	switch indicator {
	case "", "CRDT", "DBIT":
	default:
		warn("%s credit/debit indicator '%s' is neither CRDT nor DBIT", label, indicator)
	}
}
