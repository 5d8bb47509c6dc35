package models

type Identifier interface {
	GetId() int
}

// key of a dataloader result
func (c Customer) GetId() int {
	return c.ID
}

func (p Product) GetId() int {
	return p.ID
}

func (p ProductBatch) GetId() int {
	return p.ID
}

func (o Order) GetId() int {
	return o.ID
}

// loader loading more than one model by one id
type RelatedData interface {
	GetReferenceId() int
}

func (i OrderItem) GetReferenceId() int {
	return i.OrderID
}

func (e OrderStatusEvent) GetReferenceId() int {
	return e.OrderID
}
