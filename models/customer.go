package models

import (
	"time"
)

// Customer is the aggregate root. Orders and the billing address are embedded
// in the customer document and are only ever read or written through it.
type Customer struct {
	ID             string    `bson:"_id,omitempty" json:"id,omitempty"`
	FirstName      string    `bson:"first_name" json:"firstName" validate:"required"`
	MiddleName     string    `bson:"middle_name,omitempty" json:"middleName,omitempty"`
	LastName       string    `bson:"last_name" json:"lastName" validate:"required"`
	PaymentDetails string    `bson:"payment_details,omitempty" json:"paymentDetails,omitempty"`
	CreatedAt      time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt      time.Time `bson:"updated_at" json:"updatedAt"`
	Version        int       `bson:"version" json:"version"`
	BillingAddress Address   `bson:"billing_address" json:"billingAddress"`
	Orders         []Order   `bson:"orders" json:"orders" validate:"dive"`
}

// FindOrder returns the embedded order with the given id.
func (c *Customer) FindOrder(orderID string) (Order, bool) {
	for _, o := range c.Orders {
		if o.ID == orderID {
			return o, true
		}
	}
	return Order{}, false
}

// AddOrder inserts the order into the embedded set. Orders are keyed by id, so
// adding an order whose id is already present leaves the set unchanged.
func (c *Customer) AddOrder(order Order) {
	if _, ok := c.FindOrder(order.ID); ok {
		return
	}
	c.Orders = append(c.Orders, order)
}

// PutOrder replaces the order whose id matches, or appends it when no order
// with that id exists yet.
func (c *Customer) PutOrder(order Order) {
	for i, o := range c.Orders {
		if o.ID == order.ID {
			c.Orders[i] = order
			return
		}
	}
	c.Orders = append(c.Orders, order)
}

// RemoveOrder deletes every order with the given id. Removing an id that is
// not present is a no-op.
func (c *Customer) RemoveOrder(orderID string) {
	kept := c.Orders[:0]
	for _, o := range c.Orders {
		if o.ID != orderID {
			kept = append(kept, o)
		}
	}
	c.Orders = kept
}
