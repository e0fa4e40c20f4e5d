package bookkeeper

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// The model types below are flat, read-only projections supplied by the
// ledger store (or any other persistence layer). The export engine only
// reads them.

// NoSubcategory is the sentinel id meaning "no subcategory, top-level only".
const NoSubcategory int64 = -1

// RefTypeTransaction is the reference type under which attachments and
// custom fields of a transaction are stored.
const RefTypeTransaction = "Transaction"

// AccountRef describes one account.
type AccountRef struct {
	ID             int64
	Name           string
	CurrencyID     int64
	Type           AccountType
	InitialBalance decimal.Decimal
}

// CurrencyRef describes one currency and its numeric formatting rule.
type CurrencyRef struct {
	ID        int64
	Symbol    string // display symbol, e.g. "$" or "€"
	Precision int    // number of decimal digits
	Decimal   string // decimal point character
	Grouping  string // thousands separator, may be empty
	Base      bool   // true for the base currency of the ledger
}

// Format renders value according to the currency's formatting rule
// (precision, decimal point, grouping), without the currency symbol.
func (c *CurrencyRef) Format(value decimal.Decimal) string {
	f := money.NewFormatter(c.Precision, c.Decimal, c.Grouping, "", "1")
	// the formatter works on minor units
	return f.Format(value.Shift(int32(c.Precision)).Round(0).IntPart())
}

// CategoryRef describes one top-level category.
type CategoryRef struct {
	ID     int64
	Name   string
	Income bool // income vs expense classification
}

// SubcategoryRef describes one subcategory. ParentID is NoSubcategory for
// legacy rows that hold a bare name not nested under their category.
type SubcategoryRef struct {
	ID       int64
	ParentID int64
	Name     string
	Income   bool
}

// AttachmentRef describes one file attached to a record.
type AttachmentRef struct {
	RefType     string
	RefID       int64
	Filename    string
	Description string
	Path        string // resolved storage path
}

// CustomFieldDef describes a user-defined field attachable to records of
// one reference type.
type CustomFieldDef struct {
	ID          int64
	RefType     string
	Description string
	Type        string // declared type, e.g. "String", "Decimal"
	Properties  string // opaque, already-serialized JSON object
}

// CustomFieldValue holds the content of one custom field on one record.
type CustomFieldValue struct {
	FieldID int64
	RefID   int64
	Content string
}
