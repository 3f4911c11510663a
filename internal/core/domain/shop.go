package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Shop represents one tenant business unit. All accounts, transactions and
// financial years are scoped to exactly one shop.
type Shop struct {
	ShopID             string    `json:"shopID"` // Primary key (document id)
	Name               string    `json:"name"`
	OwnerUserID        string    `json:"ownerUserID"` // Creator reference
	IsActive           bool      `json:"isActive"`
	FinancialYearStart time.Time `json:"financialYearStart"`
	FinancialYearEnd   time.Time `json:"financialYearEnd"`
}

// FinancialYearStatus is the lifecycle state of a financial year.
// A shop has at most one open financial year at a time.
type FinancialYearStatus string

const (
	FinancialYearOpen   FinancialYearStatus = "open"
	FinancialYearClosed FinancialYearStatus = "closed"
)

// FinancialYear is one accounting period of a shop. Its opening stock value
// seeds the opening-stock account's balance when the chart is materialized.
type FinancialYear struct {
	FinancialYearID   string              `json:"financialYearID"`
	ShopID            string              `json:"shopID"`
	Status            FinancialYearStatus `json:"status"`
	StartDate         time.Time           `json:"startDate"`
	EndDate           time.Time           `json:"endDate"`
	OpeningStockValue decimal.Decimal     `json:"openingStockValue"`
}

// Principal is the identity obtained by signing in as an administrator.
// The ID token is carried opaquely; nothing in this tool inspects it.
type Principal struct {
	UserID  string `json:"userID"`
	Email   string `json:"email"`
	IDToken string `json:"-"`
}
