package catalog

import "github.com/shopbooks/chartops/internal/core/domain"

// Default returns the standard chart of accounts seeded into every shop.
func Default() Catalog {
	return mustNew(defaultMains(), defaultSubs())
}

func defaultMains() []domain.AccountDefinition {
	return []domain.AccountDefinition{
		{AccountCode: "1100", Name: "Cash", Classification: domain.Assets, Nature: domain.Debit, Type: domain.TypeCash},
		{AccountCode: "1200", Name: "Bank", Classification: domain.Assets, Nature: domain.Debit, Type: domain.TypeBank},
		{AccountCode: "1300", Name: "Customers", Classification: domain.Assets, Nature: domain.Debit, Type: domain.TypeCustomer},
		{AccountCode: "1400", Name: "Stock", Classification: domain.Assets, Nature: domain.Debit, Type: domain.TypeStock},
		{AccountCode: "2100", Name: "Suppliers", Classification: domain.Liabilities, Nature: domain.Credit, Type: domain.TypeSupplier},
		{AccountCode: "4100", Name: "Sales", Classification: domain.Revenue, Nature: domain.Credit, Type: domain.TypeSales},
		{AccountCode: "5100", Name: "Purchases", Classification: domain.Expenses, Nature: domain.Debit, Type: domain.TypePurchases},
		{AccountCode: "5200", Name: "Expenses", Classification: domain.Expenses, Nature: domain.Debit, Type: domain.TypeExpenses},
	}
}

func defaultSubs() []domain.AccountDefinition {
	return []domain.AccountDefinition{
		{AccountCode: "1101", Name: "Main Cash", ParentAccountCode: "1100", Classification: domain.Assets, Nature: domain.Debit, Type: domain.TypeCash},
		{AccountCode: "1201", Name: "Main Bank Account", ParentAccountCode: "1200", Classification: domain.Assets, Nature: domain.Debit, Type: domain.TypeBank},
		{AccountCode: "1401", Name: "Opening Stock", ParentAccountCode: "1400", Classification: domain.Assets, Nature: domain.Debit, Type: domain.TypeOpeningStock},
		{AccountCode: "1402", Name: "Ending Stock", ParentAccountCode: "1400", Classification: domain.Assets, Nature: domain.Debit, Type: domain.TypeEndingStock},
		{AccountCode: "4101", Name: "General Sales", ParentAccountCode: "4100", Classification: domain.Revenue, Nature: domain.Credit, Type: domain.TypeSales},
		{AccountCode: "5201", Name: "Rent", ParentAccountCode: "5200", Classification: domain.Expenses, Nature: domain.Debit, Type: domain.TypeExpenses},
		{AccountCode: "5202", Name: "Salaries", ParentAccountCode: "5200", Classification: domain.Expenses, Nature: domain.Debit, Type: domain.TypeExpenses},
		{AccountCode: "5203", Name: "Utilities", ParentAccountCode: "5200", Classification: domain.Expenses, Nature: domain.Debit, Type: domain.TypeExpenses},
		{AccountCode: "5204", Name: "Miscellaneous Expenses", ParentAccountCode: "5200", Classification: domain.Expenses, Nature: domain.Debit, Type: domain.TypeExpenses},
	}
}
