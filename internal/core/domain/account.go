package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Classification defines the fundamental accounting classification of an account.
type Classification string

const (
	Assets      Classification = "ASSETS"
	Liabilities Classification = "LIABILITIES"
	Equity      Classification = "EQUITY"
	Revenue     Classification = "REVENUE"
	Expenses    Classification = "EXPENSES"
)

// Nature determines the normal balance sign of an account.
type Nature string

const (
	Debit  Nature = "DEBIT"
	Credit Nature = "CREDIT"
)

// AccountType is the semantic subtype of an account. It restricts which
// accounts non-administrator users may create sub-accounts under.
type AccountType string

const (
	TypeCash         AccountType = "CASH"
	TypeBank         AccountType = "BANK"
	TypeCustomer     AccountType = "CUSTOMER"
	TypeSupplier     AccountType = "SUPPLIER"
	TypeStock        AccountType = "STOCK"
	TypeOpeningStock AccountType = "OPENING_STOCK"
	TypeEndingStock  AccountType = "ENDING_STOCK"
	TypeSales        AccountType = "SALES"
	TypePurchases    AccountType = "PURCHASES"
	TypeExpenses     AccountType = "EXPENSES"
)

// Account represents one ledger account belonging to exactly one shop.
// This is the primary representation used by services.
type Account struct {
	AccountID         string          `json:"accountID"`         // Primary key (UUID), immutable after creation
	AccountCode       string          `json:"accountCode"`       // Code within the shop; unique per shop, not globally
	Name              string          `json:"name"`              // Display name; may carry a "-<shop name>" suffix
	ParentAccountCode string          `json:"parentAccountCode"` // Empty for main (root) accounts
	ParentID          string          `json:"parentID"`          // Document id of the parent account, empty for mains
	Classification    Classification  `json:"classification"`
	Nature            Nature          `json:"nature"`
	Type              AccountType     `json:"type"`
	ShopID            string          `json:"shopID"` // Owning shop; never shared across shops
	IsActive          bool            `json:"isActive"`
	OpeningBalance    decimal.Decimal `json:"openingBalance"`
	CreatedAt         time.Time       `json:"createdAt"`
	UpdatedAt         time.Time       `json:"updatedAt"`
}

// IsMain reports whether the account is a root-level (main) account.
func (a Account) IsMain() bool {
	return a.ParentAccountCode == ""
}

// AccountDefinition describes one canonical account in the catalog.
// It omits shop-specific fields (id, shopID, isActive, openingBalance);
// those are filled in when the definition is materialized for a shop.
type AccountDefinition struct {
	AccountCode       string
	Name              string
	ParentAccountCode string // Empty for main-account definitions
	Classification    Classification
	Nature            Nature
	Type              AccountType
}

// IsMain reports whether the definition describes a main account.
func (d AccountDefinition) IsMain() bool {
	return d.ParentAccountCode == ""
}
