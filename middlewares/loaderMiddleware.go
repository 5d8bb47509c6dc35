package middlewares

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/graph-gophers/dataloader/v7"
	"github.com/shynebeauty/shyne_backend/config"
	"github.com/shynebeauty/shyne_backend/models"
	"github.com/shynebeauty/shyne_backend/utils"
	"gorm.io/gorm"
)

type ctxKey string

const (
	loadersKey = ctxKey("dataloaders")
)

// Loaders batch the lookups made while rendering one request.
type Loaders struct {
	customerLoader     *dataloader.Loader[int, *models.Customer]
	productLoader      *dataloader.Loader[int, *models.Product]
	productBatchLoader *dataloader.Loader[int, *models.ProductBatch]
	orderItemLoader    *dataloader.Loader[int, []*models.OrderItem]
	orderEventLoader   *dataloader.Loader[int, []*models.OrderStatusEvent]
}

func NewLoaders(conn *gorm.DB) *Loaders {
	customerReader := &customerReader{db: conn}
	productReader := &productReader{db: conn}
	productBatchReader := &productBatchReader{db: conn}
	orderItemReader := &orderItemReader{db: conn}
	orderEventReader := &orderEventReader{db: conn}

	return &Loaders{
		customerLoader:     dataloader.NewBatchedLoader(customerReader.getCustomers, dataloader.WithWait[int, *models.Customer](time.Millisecond)),
		productLoader:      dataloader.NewBatchedLoader(productReader.getProducts, dataloader.WithWait[int, *models.Product](time.Millisecond)),
		productBatchLoader: dataloader.NewBatchedLoader(productBatchReader.getProductBatches, dataloader.WithWait[int, *models.ProductBatch](time.Millisecond)),
		orderItemLoader:    dataloader.NewBatchedLoader(orderItemReader.GetOrderItems, dataloader.WithWait[int, []*models.OrderItem](time.Millisecond)),
		orderEventLoader:   dataloader.NewBatchedLoader(orderEventReader.GetOrderStatusEvents, dataloader.WithWait[int, []*models.OrderStatusEvent](time.Millisecond)),
	}
}

func LoaderMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request = c.Request.WithContext(WithLoaders(c.Request.Context(), NewLoaders(config.GetDB())))
		c.Next()
	}
}

// WithLoaders attaches loaders outside of a gin request (commands, tests).
func WithLoaders(ctx context.Context, loaders *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey, loaders)
}

// For returns the request's loaders, or fresh ones bound to the global DB
// when none were attached.
func For(ctx context.Context) *Loaders {
	if loaders, ok := ctx.Value(loadersKey).(*Loaders); ok {
		return loaders
	}
	return NewLoaders(config.GetDB())
}

// handleError creates array of result with the same error repeated for as many items requested
func handleError[T any](itemsLength int, err error) []*dataloader.Result[T] {
	result := make([]*dataloader.Result[T], itemsLength)
	for i := 0; i < itemsLength; i++ {
		result[i] = &dataloader.Result[T]{Error: err}
	}
	return result
}

// turns results from db into dataloader results, in the order of ids;
// an id with no row gets ErrorRecordNotFound
func generateLoaderResults[T models.Identifier](results []T, ids []int) []*dataloader.Result[*T] {
	resultMap := make(map[int]*T, len(results))
	for i := range results {
		resultMap[results[i].GetId()] = &results[i]
	}

	loaderResults := make([]*dataloader.Result[*T], 0, len(ids))
	for _, id := range ids {
		data, ok := resultMap[id]
		if !ok {
			loaderResults = append(loaderResults, &dataloader.Result[*T]{Error: utils.ErrorRecordNotFound})
			continue
		}
		loaderResults = append(loaderResults, &dataloader.Result[*T]{Data: data})
	}
	return loaderResults
}

// each id has many related results
func generateLoaderArrayResults[T models.RelatedData](results []T, referenceIds []int) (loaderResults []*dataloader.Result[[]*T]) {
	resultMap := make(map[int][]*T)
	for i := range results {
		ref := results[i].GetReferenceId()
		resultMap[ref] = append(resultMap[ref], &results[i])
	}
	for _, id := range referenceIds {
		loaderResults = append(loaderResults, &dataloader.Result[[]*T]{Data: resultMap[id]})
	}
	return loaderResults
}
