// Package textutils provides text normalization helpers shared by the
// reference generator and the writer.
package textutils

import "strings"

// NormalizeWhitespace rejoins the whitespace-separated tokens of a string
// with single spaces, so differing internal whitespace (tabs, newlines,
// runs of spaces) does not change the result.
func NormalizeWhitespace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// FormatBankTxCode formats a bank transaction code from its component
// parts, e.g. "PMNT.CCRD.POSD".
func FormatBankTxCode(domain, family, subFamily string) string {
	if domain == "" {
		return ""
	}

	code := domain
	if family != "" {
		code += "." + family
		if subFamily != "" {
			code += "." + subFamily
		}
	}

	return code
}
