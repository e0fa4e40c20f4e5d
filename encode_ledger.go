package bookkeeper

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"slices"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// The ledger file is a JSONL stream: one JSON object per line, each
// discriminated by its "record" property. The format is human readable
// and git friendly; records of a kind usually come grouped, but the
// decoder does not require it.

// Record discriminators of the ledger file.
const (
	recCurrency    = "currency"
	recAccount     = "account"
	recCategory    = "category"
	recSubcategory = "subcategory"
	recTransaction = "transaction"
	recAttachment  = "attachment"
	recField       = "field"
	recFieldValue  = "fieldvalue"
)

type jcurrency struct {
	Record    string `json:"record"`
	ID        int64  `json:"id"`
	Symbol    string `json:"symbol"`
	Precision int    `json:"precision"`
	Decimal   string `json:"decimal,omitempty"`
	Grouping  string `json:"grouping,omitempty"`
	Base      bool   `json:"base,omitempty"`
}

type jaccount struct {
	Record         string          `json:"record"`
	ID             int64           `json:"id"`
	Name           string          `json:"name"`
	Currency       int64           `json:"currency"`
	Type           string          `json:"type"`
	InitialBalance decimal.Decimal `json:"initialBalance"`
}

type jcategory struct {
	Record string `json:"record"`
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Income bool   `json:"income,omitempty"`
}

type jsubcategory struct {
	Record   string `json:"record"`
	ID       int64  `json:"id"`
	Category int64  `json:"category"` // owning category
	Parent   int64  `json:"parent"`   // -1 for legacy non-nested rows
	Name     string `json:"name"`
	Income   bool   `json:"income,omitempty"`
}

type jsplit struct {
	CategID    int64           `json:"categid"`
	SubcategID int64           `json:"subcategid"`
	Amount     decimal.Decimal `json:"amount"`
}

// UnmarshalJSON defaults the subcategory id to the NoSubcategory
// sentinel when the property is absent.
func (s *jsplit) UnmarshalJSON(b []byte) error {
	type alias jsplit
	a := alias{SubcategID: NoSubcategory}
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	*s = jsplit(a)
	return nil
}

type jtransaction struct {
	Record     string          `json:"record"`
	ID         int64           `json:"id"`
	Date       Date            `json:"date"`
	Status     string          `json:"status,omitempty"`
	Code       string          `json:"code"`
	Account    int64           `json:"account"`
	ToAccount  int64           `json:"toAccount,omitempty"`
	Amount     decimal.Decimal `json:"amount"`
	ToAmount   decimal.Decimal `json:"toAmount,omitempty"`
	Number     string          `json:"number,omitempty"`
	Notes      string          `json:"notes,omitempty"`
	Payee      string          `json:"payee,omitempty"`
	CategID    int64           `json:"categid,omitempty"`
	SubcategID int64           `json:"subcategid,omitempty"`
	Splits     []jsplit        `json:"splits,omitempty"`
}

type jattachment struct {
	Record      string `json:"record"`
	RefType     string `json:"refType"`
	RefID       int64  `json:"refId"`
	Filename    string `json:"filename"`
	Description string `json:"description,omitempty"`
	Path        string `json:"path,omitempty"`
}

type jfield struct {
	Record      string          `json:"record"`
	ID          int64           `json:"id"`
	RefType     string          `json:"refType"`
	Description string          `json:"description"`
	Type        string          `json:"type"`
	Properties  json.RawMessage `json:"properties,omitempty"`
}

type jfieldvalue struct {
	Record  string `json:"record"`
	Field   int64  `json:"field"`
	RefID   int64  `json:"refId"`
	Content string `json:"content"`
}

// DecodeLedger decodes a ledger from a stream of JSONL data, one record
// per line, and returns the hydrated in-memory store. Transactions are
// joined with their category names after the whole stream is read, so
// record order in the file does not matter.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	ledger := NewLedger()
	scanner := bufio.NewScanner(r)

	var pending []jtransaction
	line := 0
	for scanner.Scan() {
		line++
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue // Skip empty lines
		}

		var identifier struct {
			Record string `json:"record"`
		}
		if err := json.Unmarshal(lineBytes, &identifier); err != nil {
			return nil, fmt.Errorf("could not identify record on line %d %q: %w", line, string(lineBytes), err)
		}

		var err error
		switch identifier.Record {
		case recCurrency:
			var jc jcurrency
			if err = json.Unmarshal(lineBytes, &jc); err == nil {
				err = ledger.AddCurrency(CurrencyRef{
					ID: jc.ID, Symbol: jc.Symbol, Precision: jc.Precision,
					Decimal: jc.Decimal, Grouping: jc.Grouping, Base: jc.Base,
				})
			}
		case recAccount:
			var ja jaccount
			if err = json.Unmarshal(lineBytes, &ja); err == nil {
				var typ AccountType
				typ, err = ParseAccountType(ja.Type)
				if err == nil {
					err = ledger.AddAccount(AccountRef{
						ID: ja.ID, Name: ja.Name, CurrencyID: ja.Currency,
						Type: typ, InitialBalance: ja.InitialBalance,
					})
				}
			}
		case recCategory:
			var jc jcategory
			if err = json.Unmarshal(lineBytes, &jc); err == nil {
				err = ledger.AddCategory(CategoryRef{ID: jc.ID, Name: jc.Name, Income: jc.Income})
			}
		case recSubcategory:
			js := jsubcategory{Parent: NoSubcategory}
			if err = json.Unmarshal(lineBytes, &js); err == nil {
				err = ledger.AddSubcategory(js.Category, SubcategoryRef{
					ID: js.ID, ParentID: js.Parent, Name: js.Name, Income: js.Income,
				})
			}
		case recTransaction:
			jt := jtransaction{SubcategID: NoSubcategory}
			if err = json.Unmarshal(lineBytes, &jt); err == nil {
				pending = append(pending, jt)
			}
		case recAttachment:
			var ja jattachment
			if err = json.Unmarshal(lineBytes, &ja); err == nil {
				ledger.AddAttachment(AttachmentRef{
					RefType: ja.RefType, RefID: ja.RefID,
					Filename: ja.Filename, Description: ja.Description, Path: ja.Path,
				})
			}
		case recField:
			var jf jfield
			if err = json.Unmarshal(lineBytes, &jf); err == nil {
				ledger.AddFieldDef(CustomFieldDef{
					ID: jf.ID, RefType: jf.RefType, Description: jf.Description,
					Type: jf.Type, Properties: string(jf.Properties),
				})
			}
		case recFieldValue:
			var jv jfieldvalue
			if err = json.Unmarshal(lineBytes, &jv); err == nil {
				ledger.AddFieldValue(CustomFieldValue{
					FieldID: jv.Field, RefID: jv.RefID, Content: jv.Content,
				})
			}
		default:
			err = fmt.Errorf("unknown record type %q", identifier.Record)
		}
		if err != nil {
			return nil, fmt.Errorf("format error on line %d %q: %w", line, string(lineBytes), err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading ledger: %w", err)
	}

	for _, jt := range pending {
		v, err := ledger.hydrate(jt)
		if err != nil {
			return nil, err
		}
		ledger.AddTransaction(v)
	}
	return ledger, nil
}

// hydrate joins one decoded transaction record into a fully joined view.
func (l *Ledger) hydrate(jt jtransaction) (*TransactionView, error) {
	code, err := ParseTransCode(jt.Code)
	if err != nil {
		return nil, fmt.Errorf("transaction %d: %w", jt.ID, err)
	}
	status, err := ParseStatus(jt.Status)
	if err != nil {
		return nil, fmt.Errorf("transaction %d: %w", jt.ID, err)
	}

	v := &TransactionView{
		ID:            jt.ID,
		Date:          jt.Date,
		Status:        status,
		Code:          code,
		AccountID:     jt.Account,
		ToAccountID:   jt.ToAccount,
		Amount:        jt.Amount,
		ToAmount:      jt.ToAmount,
		Number:        jt.Number,
		Notes:         jt.Notes,
		Payee:         jt.Payee,
		CategoryID:    jt.CategID,
		SubcategoryID: jt.SubcategID,
	}
	for _, s := range jt.Splits {
		v.Splits = append(v.Splits, SplitEntry{
			CategoryID:    s.CategID,
			SubcategoryID: s.SubcategID,
			Amount:        s.Amount,
		})
	}
	if len(v.Splits) == 0 {
		v.CategoryName = l.FullName(v.CategoryID, v.SubcategoryID)
	}
	return v, nil
}

// EncodeLedger writes the ledger in the JSONL ledger-file format:
// currencies, accounts, categories with their subcategories, custom
// field definitions, transactions, attachments, then field values.
func EncodeLedger(w io.Writer, l *Ledger) error {
	enc := json.NewEncoder(w)

	currencyIDs := make([]int64, 0, len(l.currencies))
	for id := range l.currencies {
		currencyIDs = append(currencyIDs, id)
	}
	slices.Sort(currencyIDs)
	for _, id := range currencyIDs {
		c := l.currencies[id]
		if err := enc.Encode(jcurrency{
			Record: recCurrency, ID: c.ID, Symbol: c.Symbol, Precision: c.Precision,
			Decimal: c.Decimal, Grouping: c.Grouping, Base: c.Base,
		}); err != nil {
			return err
		}
	}
	for _, a := range l.Accounts() {
		if err := enc.Encode(jaccount{
			Record: recAccount, ID: a.ID, Name: a.Name, Currency: a.CurrencyID,
			Type: a.Type.String(), InitialBalance: a.InitialBalance,
		}); err != nil {
			return err
		}
	}
	for _, c := range l.categories {
		if err := enc.Encode(jcategory{Record: recCategory, ID: c.ID, Name: c.Name, Income: c.Income}); err != nil {
			return err
		}
		for _, s := range l.subcategories[c.ID] {
			if err := enc.Encode(jsubcategory{
				Record: recSubcategory, ID: s.ID, Category: c.ID,
				Parent: s.ParentID, Name: s.Name, Income: s.Income,
			}); err != nil {
				return err
			}
		}
	}
	for _, d := range l.fieldDefs {
		if err := enc.Encode(jfield{
			Record: recField, ID: d.ID, RefType: d.RefType, Description: d.Description,
			Type: d.Type, Properties: json.RawMessage(d.Properties),
		}); err != nil {
			return err
		}
	}
	for _, v := range l.transactions {
		jt := jtransaction{
			Record:     recTransaction,
			ID:         v.ID,
			Date:       v.Date,
			Status:     string(v.Status),
			Code:       string(v.Code),
			Account:    v.AccountID,
			ToAccount:  v.ToAccountID,
			Amount:     v.Amount,
			ToAmount:   v.ToAmount,
			Number:     v.Number,
			Notes:      v.Notes,
			Payee:      v.Payee,
			CategID:    v.CategoryID,
			SubcategID: v.SubcategoryID,
		}
		for _, s := range v.Splits {
			jt.Splits = append(jt.Splits, jsplit{CategID: s.CategoryID, SubcategID: s.SubcategoryID, Amount: s.Amount})
		}
		if err := enc.Encode(jt); err != nil {
			return err
		}
	}
	for _, a := range l.attachments {
		if err := enc.Encode(jattachment{
			Record: recAttachment, RefType: a.RefType, RefID: a.RefID,
			Filename: a.Filename, Description: a.Description, Path: a.Path,
		}); err != nil {
			return err
		}
	}
	for _, v := range l.fieldValues {
		if err := enc.Encode(jfieldvalue{Record: recFieldValue, Field: v.FieldID, RefID: v.RefID, Content: v.Content}); err != nil {
			return err
		}
	}
	return nil
}
