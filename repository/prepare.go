package repository

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mkzaman/customer-backend-go/models"
)

// PrepareForWrite returns a copy of the customer ready for serialization: a
// billing address without an id gets a freshly minted one. Running it on an
// already-prepared customer changes nothing. It deliberately covers only the
// customer's own billing address, not the shipping addresses embedded in
// orders.
func PrepareForWrite(customer models.Customer) models.Customer {
	if customer.BillingAddress.ID == "" {
		customer.BillingAddress.ID = primitive.NewObjectID().Hex()
	}
	return customer
}
