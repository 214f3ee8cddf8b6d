// Package camtparser reconstructs a version-agnostic statement model from
// CAMT.053.001.10 XML. It is a streaming, path-aware parser: an element
// stack tracks the current path and a fixed table of path suffixes maps
// text nodes onto model fields, so arbitrary ancestor wrapping does not
// matter.
package camtparser

import (
	"encoding/xml"
	"io"
	"strings"

	"github.com/samvdst/camtconvert/internal/logging"
	"github.com/samvdst/camtconvert/internal/models"
	"github.com/samvdst/camtconvert/internal/parsererror"
)

// Parser parses CAMT.053.001.10 documents into models.Statement.
type Parser struct {
	logger logging.Logger
}

// NewParser creates a new Parser with the provided logger. If logger is
// nil, a default logger is used.
func NewParser(logger logging.Logger) *Parser {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Parser{logger: logger}
}

// SetLogger sets a custom logger for the parser.
func (p *Parser) SetLogger(logger logging.Logger) {
	if logger != nil {
		p.logger = logger
	}
}

// pendingAmount marks an amount element whose currency attribute has been
// read and whose value is expected in the very next text token. Target
// assignment is positional: the index of the balance or entry open at the
// time the start tag was seen.
type pendingAmount struct {
	scope string // "Bal" or "Ntry"
	index int
	ccy   string
}

// parseContext carries the scoped parsing state through the traversal.
// Entering Bal/Ntry/Chrgs sets the matching flag; field assignment rules
// for balance- and entry-scoped suffixes apply only while the flag is set,
// which keeps fields with identical local names outside those scopes from
// polluting the records.
type parseContext struct {
	path          []string
	inBalance     bool
	inTransaction bool
	inCharges     bool

	pending *pendingAmount
}

func (c *parseContext) currentPath() string {
	return strings.Join(c.path, "/")
}

// Parse consumes a well-formed CAMT.053.001.10 byte stream and returns a
// fully populated Statement. Records appear in document order; absent
// fields stay empty strings. Malformed XML or an invalid text encoding is
// a fatal parse error with no partial result.
func (p *Parser) Parse(r io.Reader) (*models.Statement, error) {
	decoder := xml.NewDecoder(r)

	statement := &models.Statement{}
	ctx := &parseContext{}

	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &parsererror.ParseError{
				Parser: "CAMT",
				Field:  "XML document",
				Value:  ctx.currentPath(),
				Err:    err,
			}
		}

		switch t := tok.(type) {
		case xml.StartElement:
			p.handleStart(t, statement, ctx)

		case xml.CharData:
			text := strings.TrimSpace(string(t))
			if text == "" {
				// Indentation whitespace between tags is not a text
				// event and must not consume a pending amount.
				continue
			}
			p.handleText(text, statement, ctx)
			ctx.pending = nil

		case xml.EndElement:
			p.handleEnd(t, ctx)
			ctx.pending = nil

		default:
			// Comments, directives and processing instructions also
			// terminate a pending amount: the value must be the very
			// next text token.
			ctx.pending = nil
		}
	}

	p.logger.Info("Parsed CAMT.053.001.10 statement",
		logging.Field{Key: "id", Value: statement.ID},
		logging.Field{Key: "balances", Value: len(statement.Balances)},
		logging.Field{Key: "transactions", Value: len(statement.Transactions)})

	return statement, nil
}

func (p *Parser) handleStart(t xml.StartElement, statement *models.Statement, ctx *parseContext) {
	name := t.Name.Local
	ctx.path = append(ctx.path, name)
	ctx.pending = nil

	switch name {
	case "Bal":
		ctx.inBalance = true
		statement.Balances = append(statement.Balances, models.Balance{})
	case "Ntry":
		ctx.inTransaction = true
		statement.Transactions = append(statement.Transactions, models.Transaction{})
	case "Chrgs":
		ctx.inCharges = true
	case "Amt":
		path := ctx.currentPath()
		if ctx.inBalance && strings.HasSuffix(path, "Bal/Amt") {
			ctx.pending = &pendingAmount{
				scope: "Bal",
				index: len(statement.Balances) - 1,
				ccy:   currencyAttr(t),
			}
		} else if ctx.inTransaction && strings.HasSuffix(path, "Ntry/Amt") {
			ctx.pending = &pendingAmount{
				scope: "Ntry",
				index: len(statement.Transactions) - 1,
				ccy:   currencyAttr(t),
			}
		}
	}
}

func (p *Parser) handleText(text string, statement *models.Statement, ctx *parseContext) {
	// A pending amount claims the text token immediately following its
	// start tag. The index is bounds-checked so an unexpected number of
	// amount elements inside a balance or entry is dropped rather than
	// crashing.
	if pa := ctx.pending; pa != nil {
		switch pa.scope {
		case "Bal":
			if pa.index >= 0 && pa.index < len(statement.Balances) {
				statement.Balances[pa.index].Amount = text
				statement.Balances[pa.index].Currency = pa.ccy
			}
		case "Ntry":
			if pa.index >= 0 && pa.index < len(statement.Transactions) {
				statement.Transactions[pa.index].Amount = text
				statement.Transactions[pa.index].Currency = pa.ccy
			}
		}
		return
	}

	path := ctx.currentPath()

	// Statement header fields
	switch {
	case strings.HasSuffix(path, "Stmt/Id"):
		statement.ID = text
	case strings.HasSuffix(path, "Stmt/CreDtTm"):
		statement.CreationDateTime = text
	case strings.HasSuffix(path, "FrToDt/FrDtTm"):
		statement.FromDateTime = text
	case strings.HasSuffix(path, "FrToDt/ToDtTm"):
		statement.ToDateTime = text
	case strings.HasSuffix(path, "Acct/Id/IBAN"):
		statement.IBAN = text
	case strings.HasSuffix(path, "Acct/Ccy"):
		statement.Currency = text
	case strings.HasSuffix(path, "Acct/Ownr/Nm"):
		statement.OwnerName = text
	}

	// Balance-scoped fields
	if ctx.inBalance && len(statement.Balances) > 0 {
		balance := &statement.Balances[len(statement.Balances)-1]
		switch {
		case strings.HasSuffix(path, "Bal/Tp/CdOrPrtry/Cd"):
			balance.Type = text
		case strings.HasSuffix(path, "Bal/CdtDbtInd"):
			balance.CreditDebitInd = text
		case strings.HasSuffix(path, "Bal/Dt/DtTm"):
			balance.Date = text
		}
	}

	// Entry-scoped fields
	if ctx.inTransaction && len(statement.Transactions) > 0 {
		tx := &statement.Transactions[len(statement.Transactions)-1]
		switch {
		case strings.HasSuffix(path, "Ntry/CdtDbtInd"):
			tx.CreditDebitInd = text
		case strings.HasSuffix(path, "Ntry/BookgDt/DtTm"):
			tx.BookingDate = text
		case strings.HasSuffix(path, "Ntry/BkTxCd/Prtry/Cd"):
			tx.BankTxCode = text
		case strings.HasSuffix(path, "Ntry/AddtlNtryInf"):
			tx.AdditionalInfo = text
		}

		// Charges nest inside entries, so both flags must be active.
		if ctx.inCharges && strings.HasSuffix(path, "Chrgs/TtlChrgsAndTaxAmt") {
			tx.Charges = text
		}
	}
}

func (p *Parser) handleEnd(t xml.EndElement, ctx *parseContext) {
	switch t.Name.Local {
	case "Bal":
		ctx.inBalance = false
	case "Ntry":
		ctx.inTransaction = false
		ctx.inCharges = false
	case "Chrgs":
		ctx.inCharges = false
	}

	if len(ctx.path) > 0 {
		ctx.path = ctx.path[:len(ctx.path)-1]
	}
}

// currencyAttr returns the Ccy attribute of an amount start tag, or the
// empty string when absent.
func currencyAttr(t xml.StartElement) string {
	for _, attr := range t.Attr {
		if attr.Name.Local == "Ccy" {
			return attr.Value
		}
	}
	return ""
}
