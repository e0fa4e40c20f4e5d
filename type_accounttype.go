package bookkeeper

import "fmt"

// AccountType identifies the kind of an account.
type AccountType int

const (
	// AccountTypeCash is a cash-flow cash account.
	AccountTypeCash AccountType = iota
	// AccountTypeChecking is a cash-flow checking (bank) account.
	AccountTypeChecking
	// AccountTypeCreditCard is a cash-flow credit card account.
	AccountTypeCreditCard
	// AccountTypeInvestment is an investment account.
	AccountTypeInvestment
	// AccountTypeTerm is a term deposit account. It has no QIF token of
	// its own and exports under the mapper's fallback.
	AccountTypeTerm
)

func (t AccountType) String() string {
	switch t {
	case AccountTypeCash:
		return "Cash"
	case AccountTypeChecking:
		return "Checking"
	case AccountTypeCreditCard:
		return "Credit Card"
	case AccountTypeInvestment:
		return "Investment"
	case AccountTypeTerm:
		return "Term"
	default:
		return "unknown"
	}
}

// ParseAccountType parses a string into an AccountType.
func ParseAccountType(s string) (AccountType, error) {
	switch s {
	case "Cash":
		return AccountTypeCash, nil
	case "Checking":
		return AccountTypeChecking, nil
	case "Credit Card":
		return AccountTypeCreditCard, nil
	case "Investment":
		return AccountTypeInvestment, nil
	case "Term":
		return AccountTypeTerm, nil
	default:
		return 0, fmt.Errorf("unknown account type: %q", s)
	}
}
