package repositories

// Logical collection names in the backing store. Every document in the
// shop-owned collections carries a shopId field.
const (
	CollectionAccounts             = "accounts"
	CollectionShops                = "shops"
	CollectionUsers                = "users"
	CollectionTransactions         = "transactions"
	CollectionFinancialYears       = "financialYears"
	CollectionTransactionTemplates = "transactionTemplates"
	CollectionLogs                 = "logs"
	CollectionNotifications        = "notifications"
)

// BackupCollections is the set of collections the backup export serializes.
var BackupCollections = []string{
	CollectionTransactions,
	CollectionAccounts,
	CollectionShops,
	CollectionUsers,
	CollectionFinancialYears,
	CollectionLogs,
	CollectionNotifications,
	CollectionTransactionTemplates,
}

// ShopOwnedCollections is the set of collections the full-wipe workflow
// cascades through before deleting the shop document itself.
var ShopOwnedCollections = []string{
	CollectionTransactions,
	CollectionAccounts,
	CollectionFinancialYears,
	CollectionTransactionTemplates,
	CollectionLogs,
	CollectionNotifications,
}
