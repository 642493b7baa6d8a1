package valueobject

import (
	"strings"

	domainerror "github.com/finance-wallet/backend/internal/domain/error"
)

// AccountType is the closed set of supported account kinds.
type AccountType string

const (
	AccountTypeBank       AccountType = "bank"
	AccountTypeCrypto     AccountType = "crypto"
	AccountTypeInvestment AccountType = "investment"
	AccountTypeCash       AccountType = "cash"
	AccountTypeSavings    AccountType = "savings"
)

// AccountTypeInfo carries the display attributes of an account type.
type AccountTypeInfo struct {
	Label   string
	Color   string
	IconKey string
}

// accountTypeTable maps each supported account type to its display attributes.
var accountTypeTable = map[AccountType]AccountTypeInfo{
	AccountTypeBank:       {Label: "Bank", Color: "#3B82F6", IconKey: "bank"},
	AccountTypeCrypto:     {Label: "Crypto", Color: "#F59E0B", IconKey: "bitcoin"},
	AccountTypeInvestment: {Label: "Investment", Color: "#8B5CF6", IconKey: "trending-up"},
	AccountTypeCash:       {Label: "Cash", Color: "#10B981", IconKey: "wallet"},
	AccountTypeSavings:    {Label: "Savings", Color: "#06B6D4", IconKey: "piggy-bank"},
}

// ParseAccountType maps a raw string to one of the supported account types.
func ParseAccountType(raw string) (AccountType, error) {
	accountType := AccountType(strings.ToLower(strings.TrimSpace(raw)))
	if _, ok := accountTypeTable[accountType]; !ok {
		return "", domainerror.NewAccountError(
			domainerror.ErrCodeInvalidAccountType,
			"account type must be one of: bank, crypto, investment, cash, savings",
			domainerror.ErrInvalidAccountType,
		)
	}
	return accountType, nil
}

// IsValid reports whether the account type is one of the supported types.
func (t AccountType) IsValid() bool {
	_, ok := accountTypeTable[t]
	return ok
}

// Label returns the human-readable label for the account type.
func (t AccountType) Label() string {
	return accountTypeTable[t].Label
}

// Color returns the display color for the account type.
func (t AccountType) Color() string {
	return accountTypeTable[t].Color
}

// IconKey returns the icon identifier for the account type.
func (t AccountType) IconKey() string {
	return accountTypeTable[t].IconKey
}
