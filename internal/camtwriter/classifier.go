package camtwriter

import "strings"

// Bank transaction code classification constants for the target schema.
// The source dataset only distinguishes card payments from credit
// transfers, so no other families are emitted.
const (
	DomainPayments = "PMNT"

	FamilyCustomerCard = "CCRD"
	SubFamilyPOSDebit  = "POSD"

	FamilyIssuedCreditTransfer = "ICDT"
	SubFamilySEPATransfer      = "ESCT"

	cardCodePrefix = "CARD"
)

// ClassifyBankTxCode maps a proprietary source bank transaction code onto
// the target schema's family/sub-family pair. Codes starting with "CARD"
// classify as card point-of-sale; everything else as SEPA credit
// transfer.
func ClassifyBankTxCode(code string) (family, subFamily string) {
	if strings.HasPrefix(code, cardCodePrefix) {
		return FamilyCustomerCard, SubFamilyPOSDebit
	}
	return FamilyIssuedCreditTransfer, SubFamilySEPATransfer
}
