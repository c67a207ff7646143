package domain

import "errors"

var (
	ErrInvalidOrderID   = errors.New("order id must be greater than zero")
	ErrInvalidProductID = errors.New("product id must be greater than zero")
	ErrInvalidQuantity  = errors.New("quantity must be greater than zero")
)

// OrderItem models a line item inside an order.
type OrderItem struct {
	ID        int64
	OrderID   int64
	ProductID int64
	Quantity  int32
}

// NewOrderItem validates and constructs an OrderItem.
func NewOrderItem(id, orderID, productID int64, quantity int32) (*OrderItem, error) {
	item := &OrderItem{ID: id, OrderID: orderID, ProductID: productID, Quantity: quantity}
	if err := item.Validate(); err != nil {
		return nil, err
	}
	return item, nil
}

// Validate enforces invariants on the line item.
func (i *OrderItem) Validate() error {
	if i.OrderID <= 0 {
		return ErrInvalidOrderID
	}
	if i.ProductID <= 0 {
		return ErrInvalidProductID
	}
	if i.Quantity <= 0 {
		return ErrInvalidQuantity
	}
	return nil
}
