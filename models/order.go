package models

import (
	"time"
)

type OrderStatus string

const (
	OrderStatusCreated    OrderStatus = "CREATED"
	OrderStatusDelivering OrderStatus = "DELIVERING"
	OrderStatusDelivered  OrderStatus = "DELIVERED"
	OrderStatusCancelled  OrderStatus = "CANCELLED"
	OrderStatusDeleted    OrderStatus = "DELETED"
	OrderStatusReturning  OrderStatus = "RETURNING"
	OrderStatusReturned   OrderStatus = "RETURNED"
)

type PaymentType string

const (
	PaymentTypeCreditCard   PaymentType = "CREDIT_CARD"
	PaymentTypeDebitCard    PaymentType = "DEBIT_CARD"
	PaymentTypePaypal       PaymentType = "PAYPAL"
	PaymentTypeBankTransfer PaymentType = "BANK_TRANSFER"
)

// Order is an embedded entity inside a customer document. Identity is the id
// alone: two orders with the same id are the same set member no matter what
// the other fields say. The id is caller-supplied, never store-generated.
type Order struct {
	ID              string      `bson:"_id" json:"id" validate:"required"`
	CustomerID      string      `bson:"customerId" json:"customerId" validate:"required"`
	CreatedAt       time.Time   `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt       time.Time   `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
	Status          OrderStatus `bson:"status" json:"status" validate:"omitempty,oneof=CREATED DELIVERING DELIVERED CANCELLED DELETED RETURNING RETURNED"`
	PaymentStatus   bool        `bson:"paymentStatus" json:"paymentStatus"`
	Version         int         `bson:"version" json:"version"`
	PaymentMethod   PaymentType `bson:"paymentMethod" json:"paymentMethod" validate:"required,oneof=CREDIT_CARD DEBIT_CARD PAYPAL BANK_TRANSFER"`
	PaymentDetails  string      `bson:"paymentDetails" json:"paymentDetails" validate:"required"`
	ShippingAddress Address     `bson:"shippingAddress" json:"shippingAddress"`
	Products        []Product   `bson:"products" json:"products" validate:"required,min=1,dive"`
}

// ApplyDefaults fills the fields a request body may leave out.
func (o *Order) ApplyDefaults() {
	if o.Status == "" {
		o.Status = OrderStatusCreated
	}
}

// AddProduct inserts the product into the order's product set.
func (o *Order) AddProduct(product Product) {
	o.Products = append(o.Products, product)
}

// RemoveProduct deletes every product with the given id.
func (o *Order) RemoveProduct(productID string) {
	kept := o.Products[:0]
	for _, p := range o.Products {
		if p.ID != productID {
			kept = append(kept, p)
		}
	}
	o.Products = kept
}
