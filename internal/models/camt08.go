package models

import "encoding/xml"

// Document is the root of an emitted CAMT.053.001.08 document. Field
// order matches the schema's fixed element order; empty fields still
// serialize as empty elements so the output stays schema-shaped.
type Document struct {
	XMLName       xml.Name      `xml:"Document"`
	Xmlns         string        `xml:"xmlns,attr"`
	XmlnsXsi      string        `xml:"xmlns:xsi,attr"`
	BkToCstmrStmt BkToCstmrStmt `xml:"BkToCstmrStmt"`
}

// BkToCstmrStmt holds exactly one group header and one statement.
type BkToCstmrStmt struct {
	GrpHdr GrpHdr `xml:"GrpHdr"`
	Stmt   Stmt   `xml:"Stmt"`
}

// GrpHdr is the v08 group header.
type GrpHdr struct {
	MsgId   string `xml:"MsgId"`
	CreDtTm string `xml:"CreDtTm"`
	MsgRcpt struct {
		Id struct {
			OrgId struct {
				AnyBIC string `xml:"AnyBIC"`
			} `xml:"OrgId"`
		} `xml:"Id"`
	} `xml:"MsgRcpt"`
	MsgPgntn MsgPgntn `xml:"MsgPgntn"`
	AddtlInf string   `xml:"AddtlInf"`
}

// MsgPgntn is the message pagination block.
type MsgPgntn struct {
	PgNb      string `xml:"PgNb"`
	LastPgInd string `xml:"LastPgInd"`
}

// Stmt is one statement with its balances and entries in document order.
type Stmt struct {
	Id           string `xml:"Id"`
	ElctrncSeqNb string `xml:"ElctrncSeqNb"`
	CreDtTm      string `xml:"CreDtTm"`
	FrToDt       FrToDt `xml:"FrToDt"`
	Acct         Acct   `xml:"Acct"`
	Bal          []Bal  `xml:"Bal"`
	Ntry         []Ntry `xml:"Ntry"`
}

// FrToDt is the statement's reporting period.
type FrToDt struct {
	FrDtTm string `xml:"FrDtTm"`
	ToDtTm string `xml:"ToDtTm"`
}

// Acct is the statement account with the synthetic servicer block.
type Acct struct {
	Id struct {
		IBAN string `xml:"IBAN"`
	} `xml:"Id"`
	Ccy  string `xml:"Ccy"`
	Ownr struct {
		Nm string `xml:"Nm"`
	} `xml:"Ownr"`
	Svcr Svcr `xml:"Svcr"`
}

// Svcr is the account servicer.
type Svcr struct {
	FinInstnId FinInstnId `xml:"FinInstnId"`
}

// FinInstnId identifies the servicing financial institution.
type FinInstnId struct {
	BICFI string `xml:"BICFI"`
	Nm    string `xml:"Nm"`
	Othr  Othr   `xml:"Othr"`
}

// Othr is the servicer's proprietary identification.
type Othr struct {
	Id   string `xml:"Id"`
	Issr string `xml:"Issr"`
}

// Bal is one balance block.
type Bal struct {
	Tp        Tp     `xml:"Tp"`
	Amt       Amt    `xml:"Amt"`
	CdtDbtInd string `xml:"CdtDbtInd"`
	Dt        struct {
		Dt string `xml:"Dt"`
	} `xml:"Dt"`
}

// Tp is the balance type wrapper.
type Tp struct {
	CdOrPrtry CdOrPrtry `xml:"CdOrPrtry"`
}

// CdOrPrtry carries the balance type code.
type CdOrPrtry struct {
	Cd string `xml:"Cd"`
}

// Amt is an amount with its currency attribute. The text is the exact
// source amount string.
type Amt struct {
	Text string `xml:",chardata"`
	Ccy  string `xml:"Ccy,attr"`
}

// Ntry is one statement entry.
type Ntry struct {
	Amt          Amt       `xml:"Amt"`
	CdtDbtInd    string    `xml:"CdtDbtInd"`
	Sts          Sts       `xml:"Sts"`
	BookgDt      BookgDt   `xml:"BookgDt"`
	ValDt        ValDt     `xml:"ValDt"`
	AcctSvcrRef  string    `xml:"AcctSvcrRef"`
	BkTxCd       BkTxCd    `xml:"BkTxCd"`
	NtryDtls     *NtryDtls `xml:"NtryDtls,omitempty"`
	AddtlNtryInf string    `xml:"AddtlNtryInf"`
}

// Sts is the entry status wrapper.
type Sts struct {
	Cd string `xml:"Cd"`
}

// BookgDt is the entry booking date.
type BookgDt struct {
	Dt string `xml:"Dt"`
}

// ValDt is the entry value date.
type ValDt struct {
	Dt string `xml:"Dt"`
}

// BkTxCd is the bank transaction code: the derived domain classification
// plus the original proprietary code.
type BkTxCd struct {
	Domn  Domn  `xml:"Domn"`
	Prtry Prtry `xml:"Prtry"`
}

// Domn is the classification domain.
type Domn struct {
	Cd   string `xml:"Cd"`
	Fmly Fmly   `xml:"Fmly"`
}

// Fmly is the classification family.
type Fmly struct {
	Cd        string `xml:"Cd"`
	SubFmlyCd string `xml:"SubFmlyCd"`
}

// Prtry carries the proprietary transaction code verbatim.
type Prtry struct {
	Cd string `xml:"Cd"`
}

// NtryDtls wraps the transaction details block, emitted only when the
// entry has additional info.
type NtryDtls struct {
	TxDtls TxDtls `xml:"TxDtls"`
}

// TxDtls repeats the entry's amount, indicator and reference alongside
// the remittance information.
type TxDtls struct {
	Refs      Refs   `xml:"Refs"`
	Amt       Amt    `xml:"Amt"`
	CdtDbtInd string `xml:"CdtDbtInd"`
	RmtInf    RmtInf `xml:"RmtInf"`
}

// Refs carries the synthesized account servicer reference.
type Refs struct {
	AcctSvcrRef string `xml:"AcctSvcrRef"`
}

// RmtInf is the unstructured remittance information.
type RmtInf struct {
	Ustrd string `xml:"Ustrd"`
}
