package bookkeeper

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
)

// The export engine reads its collaborators through the narrow
// contracts below. *Ledger implements all of them; any other store can
// be plugged in. Stores are assumed not to mutate during an export pass.

// AccountStore resolves account references. A nil result means the id
// does not resolve; renderers then omit the dependent fields.
type AccountStore interface {
	Account(id int64) *AccountRef
}

// CurrencyStore resolves currency references.
type CurrencyStore interface {
	Currency(id int64) *CurrencyRef
	BaseCurrency() *CurrencyRef
}

// CategoryStore enumerates categories in their natural, stable order
// and resolves category names and classifications.
type CategoryStore interface {
	Categories() []CategoryRef
	Subcategories(categoryID int64) []SubcategoryRef
	// FullName returns "Category" or "Category:Subcategory"; pass
	// NoSubcategory for the bare category name. Unresolved ids yield "".
	FullName(categoryID, subcategoryID int64) string
	// HasIncome reports the income/expense classification of a category,
	// or of a (category, subcategory) pair when subcategoryID is not
	// NoSubcategory.
	HasIncome(categoryID, subcategoryID int64) bool
}

// AttachmentStore lists the files attached to a record.
type AttachmentStore interface {
	Attachments(refType string, refID int64) []AttachmentRef
}

// CustomFieldStore resolves user-defined fields and their per-record values.
type CustomFieldStore interface {
	// FieldDefs returns the definitions of the given reference type whose
	// id matches fieldID.
	FieldDefs(refType string, fieldID int64) []CustomFieldDef
	FieldValues(refID int64) []CustomFieldValue
}

// Exporter renders transactions, accounts and categories to QIF and
// JSON. It holds only read-only collaborators and no state of its own,
// so a single Exporter is safe for concurrent use.
//
// Attachments and Fields may be nil; the JSON renderer then omits the
// corresponding keys.
type Exporter struct {
	Accounts    AccountStore
	Currencies  CurrencyStore
	Categories  CategoryStore
	Attachments AttachmentStore
	Fields      CustomFieldStore
}

// NewExporter returns an Exporter reading every collaborator from the
// given ledger.
func NewExporter(l *Ledger) *Exporter {
	return &Exporter{
		Accounts:    l,
		Currencies:  l,
		Categories:  l,
		Attachments: l,
		Fields:      l,
	}
}

// normalized holds the format-independent derived fields of one
// transaction, computed once and shared by the renderers.
type normalized struct {
	transfer bool
	payee    string
	category string
	number   string
	notes    string
}

// normalize computes the derived fields of v. For a transfer it
// synthesizes the category ("[<other-account>]"), the payee
// ("<amount> <symbol> <source> -> <amount> <symbol> <destination>") and,
// when both transaction number and notes are empty, a "#<id>"
// transaction number so that the two legs of the same transfer stay
// distinguishable for downstream QIF importers.
//
// With reverse set the transfer is rendered from the destination
// account's perspective: the "other" account becomes the source.
func (e *Exporter) normalize(v *TransactionView, reverse bool) normalized {
	n := normalized{
		transfer: v.IsTransfer(),
		payee:    v.Payee,
		number:   v.Number,
		notes:    v.Notes,
	}
	if len(v.Splits) == 0 {
		n.category = v.CategoryName
	}
	if !n.transfer {
		return n
	}

	accIn := e.Accounts.Account(v.AccountID)
	accTo := e.Accounts.Account(v.ToAccountID)
	if accIn != nil && accTo != nil {
		var symIn, symTo string
		if c := e.Currencies.Currency(accIn.CurrencyID); c != nil {
			symIn = c.Symbol
		}
		if c := e.Currencies.Currency(accTo.CurrencyID); c != nil {
			symTo = c.Symbol
		}
		other := accTo
		if reverse {
			other = accIn
		}
		n.category = "[" + other.Name + "]"
		n.payee = fmt.Sprintf("%s %s %s -> %s %s %s",
			v.Amount.StringFixed(2), symIn, accIn.Name,
			v.ToAmount.StringFixed(2), symTo, accTo.Name)
	}
	if n.number == "" && n.notes == "" {
		n.number = "#" + strconv.FormatInt(v.ID, 10)
	}
	return n
}

// splitAmount applies the sign rule to a split entry: the stored
// magnitude is negated when the parent transaction is a withdrawal.
func splitAmount(v *TransactionView, s SplitEntry) decimal.Decimal {
	if v.Code == Withdrawal {
		return s.Amount.Neg()
	}
	return s.Amount
}

// subcategoryFullName joins a category and one of its subcategory rows.
// The colon is inserted only for rows actually nested under the
// category; legacy rows with a NoSubcategory parent concatenate as-is.
func subcategoryFullName(category CategoryRef, sub SubcategoryRef) string {
	if sub.ParentID != NoSubcategory {
		return category.Name + ":" + sub.Name
	}
	return category.Name + sub.Name
}
