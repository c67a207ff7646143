package domain

import (
	"errors"
	"strings"
)

var (
	ErrEmptyDate       = errors.New("order date is required")
	ErrInvalidClientID = errors.New("client id must be greater than zero")
)

// Order models a client purchase. The client reference is trusted at write
// time and not re-validated on reads.
type Order struct {
	ID       int64
	Date     string
	ClientID int64
}

// NewOrder validates and constructs an Order.
func NewOrder(id int64, date string, clientID int64) (*Order, error) {
	order := &Order{ID: id, Date: date, ClientID: clientID}
	if err := order.Validate(); err != nil {
		return nil, err
	}
	return order, nil
}

// Validate enforces invariants on the order.
func (o *Order) Validate() error {
	o.Date = strings.TrimSpace(o.Date)
	if o.Date == "" {
		return ErrEmptyDate
	}
	if o.ClientID <= 0 {
		return ErrInvalidClientID
	}
	return nil
}

// ClientSummary carries the owning client fields embedded in order views.
type ClientSummary struct {
	ID        int64
	FirstName string
	LastName  string
	CPF       string
}

// OrderView pairs an order with its owning client summary. Client is nil when
// the referenced client no longer exists.
type OrderView struct {
	Order  *Order
	Client *ClientSummary
}
