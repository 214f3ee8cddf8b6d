// Package reference derives deterministic account-servicer references for
// statement entries. The source schema carries no explicit reference, so
// one is synthesized from the entry content; identical content always
// yields the identical reference, across runs and across machines.
package reference

import (
	"fmt"
	"hash/fnv"

	"github.com/samvdst/camtconvert/internal/models"
	"github.com/samvdst/camtconvert/internal/textutils"
)

// refModulus keeps the numeric part of a reference at ten digits.
const refModulus = 10_000_000_000

// ForTransaction derives the synthetic reference for a transaction:
// "TX" followed by ten zero-padded digits, twelve characters total.
//
// The hash is FNV-1a 64 over the amount text, currency, credit/debit
// indicator, booking date, bank transaction code and the
// whitespace-normalized additional info, in that order. Each field is
// terminated with a NUL byte so field boundaries stay unambiguous. The
// additional info is normalized first, so entries differing only in
// internal whitespace map to the same reference.
func ForTransaction(tx models.Transaction) string {
	h := fnv.New64a()

	for _, field := range []string{
		tx.Amount,
		tx.Currency,
		tx.CreditDebitInd,
		tx.BookingDate,
		tx.BankTxCode,
		textutils.NormalizeWhitespace(tx.AdditionalInfo),
	} {
		_, _ = h.Write([]byte(field))
		_, _ = h.Write([]byte{0})
	}

	return fmt.Sprintf("TX%010d", h.Sum64()%refModulus)
}
