package bookkeeper

import "strings"

// This file renders QIF (Quicken Interchange Format): line-oriented
// text, one tag-prefixed field per line, "^" terminating each record.
// Empty fields contribute no line at all; QIF readers treat an absent
// tag as "not present", not as present-but-empty.

// TransactionQIF renders one transaction as a QIF record. Dates are
// formatted with the caller-supplied mask (a time layout). The cleared
// status line is written only for reconciled transactions. With reverse
// set, a transfer is rendered from the destination account's ledger
// perspective.
func (e *Exporter) TransactionQIF(v *TransactionView, dateMask string, reverse bool) string {
	n := e.normalize(v, reverse)

	var b strings.Builder
	b.WriteString("D" + v.Date.Format(dateMask) + "\n")
	if v.Status == StatusReconciled {
		b.WriteString("C R\n")
	}

	viewpoint := v.AccountID
	if reverse {
		viewpoint = v.ToAccountID
	}
	b.WriteString("T" + Balance(v, viewpoint).StringFixed(2) + "\n")

	if n.payee != "" {
		b.WriteString("P" + n.payee + "\n")
	}
	if n.number != "" {
		b.WriteString("N" + n.number + "\n")
	}
	if n.category != "" {
		b.WriteString("L" + n.category + "\n")
	}
	if n.notes != "" {
		// stored notes double apostrophes; continuation lines restart with M
		notes := strings.ReplaceAll(n.notes, "''", "'")
		notes = strings.ReplaceAll(notes, "\n", "\nM")
		b.WriteString("M" + notes + "\n")
	}

	for _, s := range v.Splits {
		b.WriteString("S" + e.Categories.FullName(s.CategoryID, s.SubcategoryID) + "\n")
		b.WriteString("$" + splitAmount(v, s).StringFixed(2) + "\n")
	}

	b.WriteString("^\n")
	return b.String()
}

// AccountHeaderQIF renders the !Account block preceding an account's
// transactions, followed by the fixed !Type:Cash header: every
// transaction block this exporter emits is treated as cash-type
// regardless of the actual account type. An unresolved account id
// yields empty output.
func (e *Exporter) AccountHeaderQIF(accountID int64) string {
	account := e.Accounts.Account(accountID)
	if account == nil {
		return ""
	}

	var symbol string
	if base := e.Currencies.BaseCurrency(); base != nil {
		symbol = base.Symbol
	}
	currency := e.Currencies.Currency(account.CurrencyID)
	if currency != nil {
		symbol = currency.Symbol
	}

	var b strings.Builder
	b.WriteString("!Account\n")
	b.WriteString("N" + account.Name + "\n")
	b.WriteString("T" + QIFAccountType(account.Type) + "\n")
	b.WriteString("D[" + symbol + "]\n")
	if !account.InitialBalance.IsZero() {
		balance := account.InitialBalance.StringFixed(2)
		if currency != nil {
			balance = currency.Format(account.InitialBalance)
		}
		b.WriteString("$" + balance + "\n")
	}
	b.WriteString("^\n")
	b.WriteString("!Type:Cash\n")
	return b.String()
}

// CategoriesQIF renders the full category list as a !Type:Cat block:
// each top-level category, then each of its subcategories under the
// colon-joined full name, every entry classified I (income) or E
// (expense). Order follows the category store's natural enumeration.
func (e *Exporter) CategoriesQIF() string {
	var b strings.Builder
	b.WriteString("!Type:Cat\n")
	for _, category := range e.Categories.Categories() {
		b.WriteString("N" + category.Name + "\n")
		b.WriteString(incomeMarker(e.Categories.HasIncome(category.ID, NoSubcategory)) + "\n")
		b.WriteString("^\n")

		for _, sub := range e.Categories.Subcategories(category.ID) {
			b.WriteString("N" + subcategoryFullName(category, sub) + "\n")
			b.WriteString(incomeMarker(e.Categories.HasIncome(category.ID, sub.ID)) + "\n")
			b.WriteString("^\n")
		}
	}
	return b.String()
}

func incomeMarker(income bool) string {
	if income {
		return "I"
	}
	return "E"
}

// qifAccountTypes maps QIF !Account type tokens to internal account
// types. Several tokens collapse onto the same internal type, so the
// QIF-to-internal direction is lossy and round-tripping is not identity
// for every type. Order matters: lookups take the first match and fall
// back to the first entry.
var qifAccountTypes = []struct {
	token string
	typ   AccountType
}{
	{"Cash", AccountTypeCash},        // Cash Flow: Cash Account
	{"Bank", AccountTypeChecking},    // Cash Flow: Checking Account
	{"CCard", AccountTypeCreditCard}, // Cash Flow: Credit Card Account
	{"Invst", AccountTypeInvestment}, // Investing: Investment Account
	{"Oth A", AccountTypeChecking},   // Property & Debt: Asset
	{"Oth L", AccountTypeChecking},   // Property & Debt: Liability
	{"Invoice", AccountTypeChecking}, // Invoice (Quicken for Business only)
}

// QIFAccountType returns the QIF token for an internal account type. An
// unmapped type silently falls back to the first table token; it never
// fails. Callers relying on mapping fidelity should validate account
// types before export.
func QIFAccountType(t AccountType) string {
	for _, item := range qifAccountTypes {
		if item.typ == t {
			return item.token
		}
	}
	return qifAccountTypes[0].token
}

// AccountTypeFromQIF returns the internal account type for a QIF token,
// silently falling back to Cash for unknown tokens.
func AccountTypeFromQIF(token string) AccountType {
	for _, item := range qifAccountTypes {
		if item.token == token {
			return item.typ
		}
	}
	return AccountTypeCash
}
