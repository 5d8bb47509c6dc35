package reports

import (
	"context"
	"io"
	"time"

	"github.com/shopspring/decimal"
	"github.com/shynebeauty/shyne_backend/middlewares"
	"github.com/shynebeauty/shyne_backend/models"
	"github.com/xuri/excelize/v2"
)

const orderLinesSheet = "Order Lines"

var orderLinesHeadings = []string{
	"OrderNumber", "PlacedAt", "Status", "CustomerEmail",
	"Sku", "ProductName", "LotNumber", "Quantity", "UnitPrice", "LineTotal",
}

// OrderLine is one row of the order lines export.
type OrderLine struct {
	OrderNumber   string
	PlacedAt      time.Time
	Status        string
	CustomerEmail string
	Sku           string
	ProductName   string
	LotNumber     string
	Quantity      int
	UnitPrice     decimal.Decimal
	LineTotal     decimal.Decimal
}

// GetCellValues keeps money as decimal; ExportOrderLines writes it as an
// exact numeric cell.
func (l OrderLine) GetCellValues() []interface{} {
	return []interface{}{
		l.OrderNumber, l.PlacedAt.UTC().Format(time.RFC3339), l.Status, l.CustomerEmail,
		l.Sku, l.ProductName, l.LotNumber, l.Quantity, l.UnitPrice, l.LineTotal,
	}
}

// GetOrderLines flattens every order into one line per order item, orders
// oldest first. Customers and items are loaded in one batch each, then the
// products and lots they reference in one more.
func GetOrderLines(ctx context.Context) ([]*OrderLine, error) {
	started := time.Now()
	orders, err := models.ListOrders(ctx)
	if err != nil {
		return nil, err
	}

	customerIds := make([]int, len(orders))
	orderIds := make([]int, len(orders))
	for i, order := range orders {
		customerIds[i] = order.CustomerID
		orderIds[i] = order.ID
	}
	customersThunk := middlewares.LoadCustomers(ctx, customerIds)
	itemsThunk := middlewares.LoadOrderItems(ctx, orderIds)
	customers, errs := customersThunk()
	if err := firstError(errs); err != nil {
		return nil, err
	}
	itemsByOrder, errs := itemsThunk()
	if err := firstError(errs); err != nil {
		return nil, err
	}

	var productIds, lotIds []int
	for _, items := range itemsByOrder {
		for _, item := range items {
			productIds = append(productIds, item.ProductID)
			if item.ProductBatchID != nil {
				lotIds = append(lotIds, *item.ProductBatchID)
			}
		}
	}
	productsThunk := middlewares.LoadProducts(ctx, productIds)
	lotsThunk := middlewares.LoadProductBatches(ctx, lotIds)
	products, errs := productsThunk()
	if err := firstError(errs); err != nil {
		return nil, err
	}
	lots, errs := lotsThunk()
	if err := firstError(errs); err != nil {
		return nil, err
	}

	var lines []*OrderLine
	p, l := 0, 0
	for i, order := range orders {
		for _, item := range itemsByOrder[i] {
			product := products[p]
			p++
			lotNumber := ""
			if item.ProductBatchID != nil {
				lotNumber = lots[l].LotNumber
				l++
			}
			lines = append(lines, &OrderLine{
				OrderNumber:   order.OrderNumber,
				PlacedAt:      order.PlacedAt,
				Status:        order.Status,
				CustomerEmail: customers[i].Email,
				Sku:           product.Sku,
				ProductName:   product.Name,
				LotNumber:     lotNumber,
				Quantity:      item.Quantity,
				UnitPrice:     item.UnitPrice,
				LineTotal:     item.LineTotal(),
			})
		}
	}
	logSlowReport(ctx, "orderLines", started, map[string]any{"orders": len(orders), "lines": len(lines)})
	return lines, nil
}

func firstError(errs []error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// ExportOrderLines writes the order lines as an xlsx workbook to w.
func ExportOrderLines(ctx context.Context, w io.Writer) error {
	lines, err := GetOrderLines(ctx)
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName("Sheet1", orderLinesSheet); err != nil {
		return err
	}

	// Add headers
	for i, h := range orderLinesHeadings {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(orderLinesSheet, cell, h); err != nil {
			return err
		}
	}

	// money columns: "0.00"
	moneyStyle, err := f.NewStyle(&excelize.Style{NumFmt: 2})
	if err != nil {
		return err
	}
	if err := f.SetColStyle(orderLinesSheet, "I:J", moneyStyle); err != nil {
		return err
	}

	// Add data
	for i, line := range lines {
		for j, value := range line.GetCellValues() {
			cell, err := excelize.CoordinatesToCellName(j+1, i+2)
			if err != nil {
				return err
			}
			if d, ok := value.(decimal.Decimal); ok {
				// numeric cell holding the exact decimal text
				err = f.SetCellDefault(orderLinesSheet, cell, d.StringFixed(2))
			} else {
				err = f.SetCellValue(orderLinesSheet, cell, value)
			}
			if err != nil {
				return err
			}
		}
	}

	_, err = f.WriteTo(w)
	return err
}
