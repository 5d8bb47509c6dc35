package models

// Statuses and units are free-form strings in the schema; these are the
// values the schema defaults to.
const (
	BatchStatusOpen = "Open"

	OrderStatusPlaced   = "Placed"
	OrderPlatformDirect = "Direct"

	UnitGram = "g"

	DefaultCountry = "USA"
)

// table names, shared by error classification and raw queries
const (
	tableCustomers         = "customers"
	tableProducts          = "products"
	tableIngredients       = "ingredients"
	tableBatches           = "batches"
	tableProductBatches    = "product_batches"
	tableOrders            = "orders"
	tableOrderItems        = "order_items"
	tableBatchIngredients  = "batch_ingredients"
	tableOrderStatusEvents = "order_status_events"
	tableShipments         = "shipments"
)

// money columns are decimal(10,2), quantity columns decimal(10,3)
const (
	moneyPrecision    int32 = 10
	moneyScale        int32 = 2
	quantityPrecision int32 = 10
	quantityScale     int32 = 3
)
