package bookkeeper

import (
	"fmt"
	"slices"
)

// Ledger is an in-memory, read-mostly store of accounts, currencies,
// categories, transactions, attachments and custom fields. It
// implements every store contract the export engine reads through.
//
// Category enumeration follows insertion order, which is the natural
// order of the ledger file; it is stable but not alphabetic.
type Ledger struct {
	accounts   map[int64]*AccountRef
	currencies map[int64]*CurrencyRef
	base       *CurrencyRef

	categories    []CategoryRef
	categoryIndex map[int64]int              // category id -> index in categories
	subcategories map[int64][]SubcategoryRef // keyed by owning category id

	transactions []*TransactionView
	attachments  []AttachmentRef
	fieldDefs    []CustomFieldDef
	fieldValues  []CustomFieldValue
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{
		accounts:      make(map[int64]*AccountRef),
		currencies:    make(map[int64]*CurrencyRef),
		categoryIndex: make(map[int64]int),
		subcategories: make(map[int64][]SubcategoryRef),
	}
}

// AddCurrency registers a currency. The first currency flagged Base
// becomes the ledger's base currency.
func (l *Ledger) AddCurrency(c CurrencyRef) error {
	if _, ok := l.currencies[c.ID]; ok {
		return fmt.Errorf("currency %d is already defined", c.ID)
	}
	if c.Decimal == "" {
		c.Decimal = "."
	}
	ref := &c
	l.currencies[c.ID] = ref
	if c.Base && l.base == nil {
		l.base = ref
	}
	return nil
}

// AddAccount registers an account.
func (l *Ledger) AddAccount(a AccountRef) error {
	if _, ok := l.accounts[a.ID]; ok {
		return fmt.Errorf("account %d is already defined", a.ID)
	}
	l.accounts[a.ID] = &a
	return nil
}

// AddCategory registers a top-level category.
func (l *Ledger) AddCategory(c CategoryRef) error {
	if _, ok := l.categoryIndex[c.ID]; ok {
		return fmt.Errorf("category %d is already defined", c.ID)
	}
	l.categoryIndex[c.ID] = len(l.categories)
	l.categories = append(l.categories, c)
	return nil
}

// AddSubcategory registers a subcategory under the category owning it.
func (l *Ledger) AddSubcategory(categoryID int64, s SubcategoryRef) error {
	if _, ok := l.categoryIndex[categoryID]; !ok {
		return fmt.Errorf("subcategory %d refers to unknown category %d", s.ID, categoryID)
	}
	l.subcategories[categoryID] = append(l.subcategories[categoryID], s)
	return nil
}

// AddTransaction appends a transaction view to the ledger.
func (l *Ledger) AddTransaction(v *TransactionView) {
	l.transactions = append(l.transactions, v)
}

// AddAttachment registers an attachment.
func (l *Ledger) AddAttachment(a AttachmentRef) {
	l.attachments = append(l.attachments, a)
}

// AddFieldDef registers a custom field definition.
func (l *Ledger) AddFieldDef(d CustomFieldDef) {
	l.fieldDefs = append(l.fieldDefs, d)
}

// AddFieldValue registers a custom field value.
func (l *Ledger) AddFieldValue(v CustomFieldValue) {
	l.fieldValues = append(l.fieldValues, v)
}

// Account implements AccountStore. It returns nil for unknown ids.
func (l *Ledger) Account(id int64) *AccountRef {
	return l.accounts[id]
}

// Accounts returns all accounts ordered by id.
func (l *Ledger) Accounts() []*AccountRef {
	accounts := make([]*AccountRef, 0, len(l.accounts))
	for _, a := range l.accounts {
		accounts = append(accounts, a)
	}
	slices.SortFunc(accounts, func(a, b *AccountRef) int {
		return int(a.ID - b.ID)
	})
	return accounts
}

// Currency implements CurrencyStore. It returns nil for unknown ids.
func (l *Ledger) Currency(id int64) *CurrencyRef {
	return l.currencies[id]
}

// BaseCurrency returns the ledger's base currency, or nil when none is
// flagged.
func (l *Ledger) BaseCurrency() *CurrencyRef {
	return l.base
}

// Categories implements CategoryStore enumeration, in insertion order.
func (l *Ledger) Categories() []CategoryRef {
	return l.categories
}

// Subcategories returns the subcategories owned by the given category,
// in insertion order.
func (l *Ledger) Subcategories(categoryID int64) []SubcategoryRef {
	return l.subcategories[categoryID]
}

// category returns the category row for an id, nil when unknown.
func (l *Ledger) category(id int64) *CategoryRef {
	i, ok := l.categoryIndex[id]
	if !ok {
		return nil
	}
	return &l.categories[i]
}

// subcategory returns the subcategory row owned by categoryID with the
// given id, nil when unknown.
func (l *Ledger) subcategory(categoryID, id int64) *SubcategoryRef {
	for i, s := range l.subcategories[categoryID] {
		if s.ID == id {
			return &l.subcategories[categoryID][i]
		}
	}
	return nil
}

// FullName implements CategoryStore: "Category" or
// "Category:Subcategory". Unresolved ids yield "".
func (l *Ledger) FullName(categoryID, subcategoryID int64) string {
	category := l.category(categoryID)
	if category == nil {
		return ""
	}
	if subcategoryID == NoSubcategory {
		return category.Name
	}
	sub := l.subcategory(categoryID, subcategoryID)
	if sub == nil {
		return category.Name
	}
	return category.Name + ":" + sub.Name
}

// HasIncome implements CategoryStore: the classification of the
// (category, subcategory) pair, falling back to the category's own
// classification when the subcategory does not resolve.
func (l *Ledger) HasIncome(categoryID, subcategoryID int64) bool {
	category := l.category(categoryID)
	if category == nil {
		return false
	}
	if subcategoryID != NoSubcategory {
		if sub := l.subcategory(categoryID, subcategoryID); sub != nil {
			return sub.Income
		}
	}
	return category.Income
}

// Attachments implements AttachmentStore.
func (l *Ledger) Attachments(refType string, refID int64) []AttachmentRef {
	var out []AttachmentRef
	for _, a := range l.attachments {
		if a.RefType == refType && a.RefID == refID {
			out = append(out, a)
		}
	}
	return out
}

// FieldDefs implements CustomFieldStore.
func (l *Ledger) FieldDefs(refType string, fieldID int64) []CustomFieldDef {
	var out []CustomFieldDef
	for _, d := range l.fieldDefs {
		if d.RefType == refType && d.ID == fieldID {
			out = append(out, d)
		}
	}
	return out
}

// FieldValues implements CustomFieldStore.
func (l *Ledger) FieldValues(refID int64) []CustomFieldValue {
	var out []CustomFieldValue
	for _, v := range l.fieldValues {
		if v.RefID == refID {
			out = append(out, v)
		}
	}
	return out
}

// Transactions returns all transactions in ledger-file order.
func (l *Ledger) Transactions() []*TransactionView {
	return l.transactions
}

// TransactionsOf returns the transactions appearing in the given
// account's ledger: those it owns, plus the transfers it receives. Both
// legs of a transfer therefore show up once per account history.
func (l *Ledger) TransactionsOf(accountID int64) []*TransactionView {
	var out []*TransactionView
	for _, v := range l.transactions {
		if v.AccountID == accountID || (v.IsTransfer() && v.ToAccountID == accountID) {
			out = append(out, v)
		}
	}
	return out
}

// interface checks
var (
	_ AccountStore     = (*Ledger)(nil)
	_ CurrencyStore    = (*Ledger)(nil)
	_ CategoryStore    = (*Ledger)(nil)
	_ AttachmentStore  = (*Ledger)(nil)
	_ CustomFieldStore = (*Ledger)(nil)
)
