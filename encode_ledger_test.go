package bookkeeper

import (
	"strings"
	"testing"
)

const sampleLedger = `{"record":"currency","id":1,"symbol":"$","precision":2,"grouping":",","base":true}
{"record":"account","id":1,"name":"Wallet","currency":1,"type":"Cash","initialBalance":0}
{"record":"account","id":2,"name":"Bank","currency":1,"type":"Checking","initialBalance":1500.75}

{"record":"transaction","id":9,"date":"2024-01-15","status":"R","code":"Withdrawal","account":2,"amount":50,"payee":"Store","categid":1,"subcategid":11}
{"record":"transaction","id":7,"date":"2024-02-01","code":"Transfer","account":2,"toAccount":1,"amount":100,"toAmount":100}
{"record":"transaction","id":3,"date":"2024-04-01","code":"Withdrawal","account":2,"amount":80,"splits":[{"categid":1,"subcategid":11,"amount":30},{"categid":3,"amount":50}]}
{"record":"category","id":1,"name":"Food"}
{"record":"subcategory","id":11,"category":1,"parent":1,"name":"Groceries"}
{"record":"category","id":3,"name":"Salary","income":true}
{"record":"attachment","refType":"Transaction","refId":9,"filename":"receipt.pdf","path":"/data/receipt.pdf"}
{"record":"field","id":1,"refType":"Transaction","description":"Project","type":"String","properties":{"Autocomplete":true}}
{"record":"fieldvalue","field":1,"refId":9,"content":"kitchen"}
`

func TestDecodeLedger(t *testing.T) {
	l, err := DecodeLedger(strings.NewReader(sampleLedger))
	if err != nil {
		t.Fatalf("DecodeLedger: %v", err)
	}

	if got := len(l.Transactions()); got != 3 {
		t.Fatalf("got %d transactions, want 3", got)
	}
	if a := l.Account(2); a == nil || a.Name != "Bank" || a.Type != AccountTypeChecking {
		t.Errorf("account 2 not decoded: %+v", a)
	}
	if base := l.BaseCurrency(); base == nil || base.Symbol != "$" {
		t.Errorf("base currency not decoded: %+v", base)
	}

	// transactions are joined after the whole stream is read, so the
	// category defined below the transaction still resolves
	v := l.Transactions()[0]
	if v.CategoryName != "Food:Groceries" {
		t.Errorf("hydrated category = %q, want %q", v.CategoryName, "Food:Groceries")
	}
	if v.Status != StatusReconciled {
		t.Errorf("status = %q", v.Status)
	}

	split := l.Transactions()[2]
	if len(split.Splits) != 2 {
		t.Fatalf("got %d splits, want 2", len(split.Splits))
	}
	if split.Splits[1].SubcategoryID != NoSubcategory {
		t.Errorf("absent subcategid must default to the sentinel, got %d", split.Splits[1].SubcategoryID)
	}

	if got := len(l.Attachments(RefTypeTransaction, 9)); got != 1 {
		t.Errorf("got %d attachments, want 1", got)
	}
	if defs := l.FieldDefs(RefTypeTransaction, 1); len(defs) != 1 || defs[0].Properties != `{"Autocomplete":true}` {
		t.Errorf("field definition not decoded: %+v", defs)
	}
}

func TestDecodeLedgerErrors(t *testing.T) {
	cases := []struct {
		name string
		line string
	}{
		{"unknown record", `{"record":"budget","id":1}`},
		{"unknown code", `{"record":"transaction","id":1,"date":"2024-01-01","code":"Refund","account":1,"amount":1}`},
		{"unknown account type", `{"record":"account","id":1,"name":"X","currency":1,"type":"Wallet"}`},
		{"duplicate account", `{"record":"account","id":1,"name":"A","currency":1,"type":"Cash","initialBalance":0}` + "\n" +
			`{"record":"account","id":1,"name":"B","currency":1,"type":"Cash","initialBalance":0}`},
		{"orphan subcategory", `{"record":"subcategory","id":11,"category":9,"parent":9,"name":"X"}`},
		{"bad json", `{"record":`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := DecodeLedger(strings.NewReader(c.line)); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestLedgerRoundTrip(t *testing.T) {
	l := testLedger(t)
	l.AddTransaction(groceriesWithdrawal())
	l.AddTransaction(bankToSavings())

	var first strings.Builder
	if err := EncodeLedger(&first, l); err != nil {
		t.Fatalf("EncodeLedger: %v", err)
	}
	decoded, err := DecodeLedger(strings.NewReader(first.String()))
	if err != nil {
		t.Fatalf("DecodeLedger: %v", err)
	}
	var second strings.Builder
	if err := EncodeLedger(&second, decoded); err != nil {
		t.Fatalf("EncodeLedger: %v", err)
	}
	if first.String() != second.String() {
		t.Errorf("round trip not stable:\nfirst:\n%s\nsecond:\n%s", first.String(), second.String())
	}
}
