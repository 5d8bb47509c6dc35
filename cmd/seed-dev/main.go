// seed-dev fills an empty development database with one of everything:
// a customer, a product, an ingredient, a batch with its lot, and a placed
// order that has shipped.
//
// Usage:
//
//	go run ./cmd/seed-dev
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"github.com/shynebeauty/shyne_backend/config"
	"github.com/shynebeauty/shyne_backend/models"
	"github.com/shynebeauty/shyne_backend/utils"
)

func main() {
	databaseURL := flag.String("database-url", config.DatabaseURL(), "Database url (sqlite://... or mysql://...)")
	flag.Parse()

	db, err := config.OpenDatabase(*databaseURL)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open database: %v\n", err)
		os.Exit(1)
	}
	config.SetDB(db)

	ctx := context.Background()
	if err := models.MigrateTable(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "migrate: %v\n", err)
		os.Exit(1)
	}
	if err := seed(ctx); err != nil {
		if utils.IsUniqueViolation(err) {
			fmt.Fprintln(os.Stderr, "database already seeded")
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "seed failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("seeded development data")
}

func seed(ctx context.Context) error {
	customer, err := models.CreateCustomer(ctx, &models.NewCustomer{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
	})
	if err != nil {
		return err
	}
	product, err := models.CreateProduct(ctx, &models.NewProduct{
		Sku:   "SB-BALM-001",
		Name:  "Lavender Lip Balm",
		Price: decimal.RequireFromString("9.99"),
	})
	if err != nil {
		return err
	}
	ingredient, err := models.CreateIngredient(ctx, &models.NewIngredient{
		Name:          "Beeswax",
		StockQuantity: decimal.RequireFromString("5000"),
	})
	if err != nil {
		return err
	}
	batch, err := models.CreateBatch(ctx, &models.NewBatch{BatchCode: "B-0001"})
	if err != nil {
		return err
	}
	if _, err := models.CreateBatchIngredient(ctx, &models.NewBatchIngredient{
		BatchId:      batch.ID,
		IngredientId: ingredient.ID,
		QuantityUsed: decimal.RequireFromString("250.5"),
	}); err != nil {
		return err
	}
	lot, err := models.CreateProductBatch(ctx, &models.NewProductBatch{
		BatchId:        batch.ID,
		ProductId:      product.ID,
		LotNumber:      "LOT-0001",
		UnitsProduced:  48,
		UnitsAvailable: 46,
	})
	if err != nil {
		return err
	}
	order, err := models.CreateOrder(ctx, &models.NewOrder{
		CustomerId:  customer.ID,
		OrderNumber: "SB-1001",
		TotalAmount: decimal.RequireFromString("19.98"),
	})
	if err != nil {
		return err
	}
	if _, err := models.CreateOrderItem(ctx, &models.NewOrderItem{
		OrderId:        order.ID,
		ProductId:      product.ID,
		ProductBatchId: &lot.ID,
		Quantity:       2,
		UnitPrice:      product.Price,
	}); err != nil {
		return err
	}
	if _, err := models.AddOrderStatusEvent(ctx, &models.NewOrderStatusEvent{
		OrderId:     order.ID,
		EventStatus: models.OrderStatusPlaced,
	}); err != nil {
		return err
	}
	shippedAt := time.Now().UTC()
	carrier := "USPS"
	_, err = models.CreateShipment(ctx, &models.NewShipment{
		OrderId:   order.ID,
		Carrier:   &carrier,
		ShippedAt: &shippedAt,
	})
	return err
}
