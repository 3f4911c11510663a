package firestore

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/shopbooks/chartops/internal/core/domain"
)

// Firestore hands document data back as map[string]any. The helpers below
// tolerate missing fields and wrong types, returning zero values, because
// historical documents predate the current schema.

func docString(data map[string]any, key string) string {
	v, _ := data[key].(string)
	return v
}

func docBool(data map[string]any, key string) bool {
	v, _ := data[key].(bool)
	return v
}

func docTime(data map[string]any, key string) time.Time {
	v, _ := data[key].(time.Time)
	return v
}

func docDecimal(data map[string]any, key string) decimal.Decimal {
	switch v := data[key].(type) {
	case float64:
		return decimal.NewFromFloat(v)
	case int64:
		return decimal.NewFromInt(v)
	default:
		return decimal.Zero
	}
}

func accountFromDoc(id string, data map[string]any) domain.Account {
	return domain.Account{
		AccountID:         id,
		AccountCode:       docString(data, "accountCode"),
		Name:              docString(data, "name"),
		ParentAccountCode: docString(data, "parentAccountCode"),
		ParentID:          docString(data, "parentId"),
		Classification:    domain.Classification(docString(data, "classification")),
		Nature:            domain.Nature(docString(data, "nature")),
		Type:              domain.AccountType(docString(data, "type")),
		ShopID:            docString(data, "shopId"),
		IsActive:          docBool(data, "isActive"),
		OpeningBalance:    docDecimal(data, "openingBalance"),
		CreatedAt:         docTime(data, "createdAt"),
		UpdatedAt:         docTime(data, "updatedAt"),
	}
}

func shopFromDoc(id string, data map[string]any) domain.Shop {
	return domain.Shop{
		ShopID:             id,
		Name:               docString(data, "name"),
		OwnerUserID:        docString(data, "owner"),
		IsActive:           docBool(data, "isActive"),
		FinancialYearStart: docTime(data, "financialYearStart"),
		FinancialYearEnd:   docTime(data, "financialYearEnd"),
	}
}

func financialYearFromDoc(id string, data map[string]any) domain.FinancialYear {
	return domain.FinancialYear{
		FinancialYearID:   id,
		ShopID:            docString(data, "shopId"),
		Status:            domain.FinancialYearStatus(docString(data, "status")),
		StartDate:         docTime(data, "startDate"),
		EndDate:           docTime(data, "endDate"),
		OpeningStockValue: docDecimal(data, "openingStockValue"),
	}
}
