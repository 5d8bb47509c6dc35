package reports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/shynebeauty/shyne_backend/config"
	"github.com/shynebeauty/shyne_backend/utils"
)

type SalesByProductResponse struct {
	ProductId    int             `json:"productId"`
	ProductName  string          `json:"productName"`
	ProductSku   string          `json:"productSku"`
	OrderCount   int             `json:"orderCount"`
	SoldQty      int             `json:"soldQty"`
	TotalAmount  decimal.Decimal `json:"totalAmount"`
	AveragePrice decimal.Decimal `json:"averagePrice"`
}

// GetSalesByProductReport sums sold quantity and line totals per product,
// optionally for one order status.
func GetSalesByProductReport(ctx context.Context, status *string) ([]*SalesByProductResponse, error) {
	sqlT := `
SELECT
    p.id AS product_id,
    p.name AS product_name,
    p.sku AS product_sku,
    COUNT(DISTINCT oi.order_id) AS order_count,
    SUM(oi.quantity) AS sold_qty,
    SUM(oi.quantity * oi.unit_price) AS total_amount,
    AVG(oi.unit_price) AS average_price
FROM
    order_items AS oi
        JOIN
    orders AS o ON o.id = oi.order_id
        JOIN
    products AS p ON p.id = oi.product_id
WHERE
    1 = 1
    {{- if .status }} AND o.status = @status {{- end }}
GROUP BY p.id, p.name, p.sku
ORDER BY p.sku
`
	started := time.Now()
	cacheKey := "report:salesByProduct:" + utils.DereferencePtr(status, "*")
	var cached []*SalesByProductResponse
	if ok, err := cacheGet(cacheKey, &cached); err == nil && ok {
		return cached, nil
	}

	params := map[string]interface{}{
		"status": utils.DereferencePtr(status),
	}
	sql, err := utils.ExecTemplate(sqlT, params)
	if err != nil {
		return nil, err
	}
	// named args only when the template emitted a placeholder
	var args []interface{}
	if params["status"] != "" {
		args = append(args, params)
	}

	db := config.GetDB()
	results := make([]*SalesByProductResponse, 0)
	if err := db.WithContext(ctx).Raw(sql, args...).Scan(&results).Error; err != nil {
		return nil, err
	}
	for _, r := range results {
		r.TotalAmount = r.TotalAmount.Round(2)
		r.AveragePrice = r.AveragePrice.Round(2)
	}

	if err := cacheSet(cacheKey, results); err != nil {
		config.LogError(config.GetLogger(), "salesByProductReport.go", "GetSalesByProductReport", "cache report", cacheKey, err)
	}
	logSlowReport(ctx, "salesByProduct", started, nil)
	return results, nil
}
