package bookkeeper

import (
	"testing"

	"github.com/shopspring/decimal"
)

// dec is a test shorthand for decimal literals.
func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// testLedger builds the fixture shared by the export tests: two
// currencies, four accounts, four categories (one with a legacy
// non-nested subcategory), one attachment and one custom field.
func testLedger(t *testing.T) *Ledger {
	t.Helper()
	l := NewLedger()

	currencies := []CurrencyRef{
		{ID: 1, Symbol: "$", Precision: 2, Decimal: ".", Grouping: ",", Base: true},
		{ID: 2, Symbol: "€", Precision: 2, Decimal: ",", Grouping: "."},
	}
	for _, c := range currencies {
		if err := l.AddCurrency(c); err != nil {
			t.Fatalf("AddCurrency: %v", err)
		}
	}

	accounts := []AccountRef{
		{ID: 1, Name: "Wallet", CurrencyID: 1, Type: AccountTypeCash},
		{ID: 2, Name: "Bank", CurrencyID: 1, Type: AccountTypeChecking, InitialBalance: dec("1500.75")},
		{ID: 3, Name: "Savings", CurrencyID: 2, Type: AccountTypeChecking},
		{ID: 4, Name: "CD", CurrencyID: 1, Type: AccountTypeTerm},
	}
	for _, a := range accounts {
		if err := l.AddAccount(a); err != nil {
			t.Fatalf("AddAccount: %v", err)
		}
	}

	categories := []CategoryRef{
		{ID: 1, Name: "Food"},
		{ID: 2, Name: "Bills"},
		{ID: 3, Name: "Salary", Income: true},
		{ID: 4, Name: "Other"},
	}
	for _, c := range categories {
		if err := l.AddCategory(c); err != nil {
			t.Fatalf("AddCategory: %v", err)
		}
	}
	subcategories := []struct {
		category int64
		sub      SubcategoryRef
	}{
		{1, SubcategoryRef{ID: 11, ParentID: 1, Name: "Groceries"}},
		{2, SubcategoryRef{ID: 21, ParentID: 2, Name: "Electric"}},
		{4, SubcategoryRef{ID: 41, ParentID: NoSubcategory, Name: "Misc"}},
	}
	for _, s := range subcategories {
		if err := l.AddSubcategory(s.category, s.sub); err != nil {
			t.Fatalf("AddSubcategory: %v", err)
		}
	}

	l.AddAttachment(AttachmentRef{
		RefType: RefTypeTransaction, RefID: 9,
		Filename: "receipt.pdf", Description: "store receipt", Path: "/data/attachments/receipt.pdf",
	})
	l.AddFieldDef(CustomFieldDef{
		ID: 1, RefType: RefTypeTransaction, Description: "Project", Type: "String",
		Properties: `{"Autocomplete":true}`,
	})
	l.AddFieldValue(CustomFieldValue{FieldID: 1, RefID: 9, Content: "kitchen"})

	return l
}

// groceriesWithdrawal is the end-to-end example transaction: a $50.00
// reconciled withdrawal at the store.
func groceriesWithdrawal() *TransactionView {
	return &TransactionView{
		ID:            9,
		Date:          NewDate(2024, 1, 15),
		Status:        StatusReconciled,
		Code:          Withdrawal,
		AccountID:     2,
		Amount:        dec("50.00"),
		Payee:         "Store",
		CategoryID:    1,
		SubcategoryID: 11,
		CategoryName:  "Food:Groceries",
	}
}

// bankToSavings is a cross-currency transfer of $100.00 into €92.50.
func bankToSavings() *TransactionView {
	return &TransactionView{
		ID:            7,
		Date:          NewDate(2024, 2, 1),
		Code:          Transfer,
		AccountID:     2,
		ToAccountID:   3,
		Amount:        dec("100.00"),
		ToAmount:      dec("92.50"),
		SubcategoryID: NoSubcategory,
	}
}
