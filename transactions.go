package bookkeeper

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// TransCode is a typed string identifying the kind of a transaction.
type TransCode string

// Transaction codes.
const (
	Withdrawal TransCode = "Withdrawal"
	Deposit    TransCode = "Deposit"
	Transfer   TransCode = "Transfer"
)

// ParseTransCode parses a string into a TransCode.
func ParseTransCode(s string) (TransCode, error) {
	switch TransCode(s) {
	case Withdrawal, Deposit, Transfer:
		return TransCode(s), nil
	default:
		return "", fmt.Errorf("unknown transaction code: %q", s)
	}
}

// Status is the reconciliation state of a transaction.
type Status string

// Reconciliation states. The stored value doubles as the QIF cleared-status marker.
const (
	StatusUnreconciled Status = ""
	StatusCleared      Status = "C"
	StatusReconciled   Status = "R"
)

// ParseStatus parses a stored status marker into a Status.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusUnreconciled, StatusCleared, StatusReconciled:
		return Status(s), nil
	default:
		return "", fmt.Errorf("unknown status: %q", s)
	}
}

// SplitEntry is a sub-allocation of one transaction's amount across
// categories. Amount is an unsigned magnitude as stored; the sign is
// applied at render time based on the parent transaction's code.
type SplitEntry struct {
	CategoryID    int64
	SubcategoryID int64
	Amount        decimal.Decimal
}

// TransactionView is a read-only, fully joined projection of one
// transaction, constructed upstream and never mutated by the export
// engine.
//
// When Splits is non-empty the single CategoryID/SubcategoryID/
// CategoryName fields are ignored by renderers; the category comes from
// the splits instead.
type TransactionView struct {
	ID            int64
	Date          Date
	Status        Status
	Code          TransCode
	AccountID     int64
	ToAccountID   int64 // destination account, transfers only
	Amount        decimal.Decimal
	ToAmount      decimal.Decimal // destination amount, may differ under currency conversion
	Number        string          // transaction number
	Notes         string
	Payee         string
	CategoryID    int64
	SubcategoryID int64
	CategoryName  string
	Splits        []SplitEntry
}

// IsTransfer reports whether the transaction moves money between two
// accounts of the same ledger.
func (v *TransactionView) IsTransfer() bool { return v.Code == Transfer }

// WriteFields emits every scalar field of the view as a key of the JSON
// object currently being written. Derived keys (account names, payee,
// category names) are added by the JSON renderer on top of these.
func (v *TransactionView) WriteFields(w JSONWriter) {
	w.Key("TRANSID")
	w.Int(v.ID)
	w.Key("TRANSDATE")
	w.String(v.Date.String())
	w.Key("STATUS")
	w.String(string(v.Status))
	w.Key("TRANSCODE")
	w.String(string(v.Code))
	w.Key("ACCOUNTID")
	w.Int(v.AccountID)
	w.Key("TOACCOUNTID")
	w.Int(v.ToAccountID)
	w.Key("TRANSAMOUNT")
	w.Double(v.Amount.InexactFloat64())
	w.Key("TOTRANSAMOUNT")
	w.Double(v.ToAmount.InexactFloat64())
	w.Key("TRANSACTIONNUMBER")
	w.String(v.Number)
	w.Key("NOTES")
	w.String(v.Notes)
	w.Key("CATEGID")
	w.Int(v.CategoryID)
	w.Key("SUBCATEGID")
	w.Int(v.SubcategoryID)
}

// Balance returns the transaction's contribution to the balance of the
// given viewpoint account: a deposit adds, a withdrawal subtracts, a
// transfer subtracts Amount on the source side and adds ToAmount on the
// destination side. Any other viewpoint contributes zero.
func Balance(v *TransactionView, accountID int64) decimal.Decimal {
	var sum decimal.Decimal
	if accountID == v.AccountID {
		switch v.Code {
		case Withdrawal:
			sum = sum.Sub(v.Amount)
		case Deposit:
			sum = sum.Add(v.Amount)
		case Transfer:
			sum = sum.Sub(v.Amount)
		}
	}
	if accountID == v.ToAccountID && v.Code == Transfer {
		sum = sum.Add(v.ToAmount)
	}
	return sum
}
