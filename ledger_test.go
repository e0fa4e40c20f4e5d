package bookkeeper

import (
	"testing"
)

func TestLedgerCategoryLookups(t *testing.T) {
	l := testLedger(t)

	t.Run("full name", func(t *testing.T) {
		cases := []struct {
			categID, subcategID int64
			want                string
		}{
			{1, 11, "Food:Groceries"},
			{1, NoSubcategory, "Food"},
			{1, 99, "Food"}, // unknown subcategory falls back to the category
			{99, 11, ""},    // unknown category yields empty
		}
		for _, c := range cases {
			if got := l.FullName(c.categID, c.subcategID); got != c.want {
				t.Errorf("FullName(%d, %d) = %q, want %q", c.categID, c.subcategID, got, c.want)
			}
		}
	})

	t.Run("income classification", func(t *testing.T) {
		if l.HasIncome(1, NoSubcategory) {
			t.Error("Food must classify as expense")
		}
		if !l.HasIncome(3, NoSubcategory) {
			t.Error("Salary must classify as income")
		}
		if l.HasIncome(1, 11) {
			t.Error("Food:Groceries must classify as expense")
		}
		if l.HasIncome(99, NoSubcategory) {
			t.Error("unknown category must not classify as income")
		}
	})

	t.Run("enumeration order is insertion order", func(t *testing.T) {
		var names []string
		for _, c := range l.Categories() {
			names = append(names, c.Name)
		}
		want := []string{"Food", "Bills", "Salary", "Other"}
		if len(names) != len(want) {
			t.Fatalf("got %v, want %v", names, want)
		}
		for i := range want {
			if names[i] != want[i] {
				t.Fatalf("got %v, want %v", names, want)
			}
		}
	})
}

func TestLedgerTransactionsOf(t *testing.T) {
	l := testLedger(t)
	l.AddTransaction(groceriesWithdrawal()) // account 2
	l.AddTransaction(bankToSavings())       // account 2 -> account 3

	if got := len(l.TransactionsOf(2)); got != 2 {
		t.Errorf("account 2 ledger has %d transactions, want 2", got)
	}
	// the destination leg of the transfer shows up in the receiving account
	if got := len(l.TransactionsOf(3)); got != 1 {
		t.Errorf("account 3 ledger has %d transactions, want 1", got)
	}
	if got := len(l.TransactionsOf(1)); got != 0 {
		t.Errorf("account 1 ledger has %d transactions, want 0", got)
	}
}

func TestBalance(t *testing.T) {
	withdrawal := groceriesWithdrawal()
	transfer := bankToSavings()

	cases := []struct {
		name      string
		view      *TransactionView
		accountID int64
		want      string
	}{
		{"withdrawal from its account", withdrawal, 2, "-50"},
		{"withdrawal from another account", withdrawal, 3, "0"},
		{"transfer source side", transfer, 2, "-100"},
		{"transfer destination side", transfer, 3, "92.5"},
		{"transfer third party", transfer, 1, "0"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Balance(c.view, c.accountID); got.String() != c.want {
				t.Errorf("got %s, want %s", got, c.want)
			}
		})
	}
}

func TestCurrencyFormat(t *testing.T) {
	usd := &CurrencyRef{ID: 1, Symbol: "$", Precision: 2, Decimal: ".", Grouping: ","}
	eur := &CurrencyRef{ID: 2, Symbol: "€", Precision: 2, Decimal: ",", Grouping: "."}

	cases := []struct {
		currency *CurrencyRef
		value    string
		want     string
	}{
		{usd, "1500.75", "1,500.75"},
		{usd, "0.5", "0.50"},
		{usd, "-20", "-20.00"},
		{eur, "1500.75", "1.500,75"},
	}
	for _, c := range cases {
		if got := c.currency.Format(dec(c.value)); got != c.want {
			t.Errorf("Format(%s) = %q, want %q", c.value, got, c.want)
		}
	}
}
