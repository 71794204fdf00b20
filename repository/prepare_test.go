package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkzaman/customer-backend-go/models"
)

func TestPrepareForWriteBackfillsBillingAddressID(t *testing.T) {
	customer := models.Customer{
		FirstName: "Ada",
		LastName:  "Lovelace",
		BillingAddress: models.Address{
			StreetName:   "Main Street",
			StreetNumber: "12",
			ZipCode:      "10115",
			City:         "Berlin",
			Country:      "DE",
		},
	}

	prepared := PrepareForWrite(customer)
	require.NotEmpty(t, prepared.BillingAddress.ID)

	// The input value is untouched.
	assert.Empty(t, customer.BillingAddress.ID)
}

func TestPrepareForWriteIsIdempotent(t *testing.T) {
	customer := models.Customer{BillingAddress: models.Address{}}

	first := PrepareForWrite(customer)
	second := PrepareForWrite(first)

	assert.Equal(t, first.BillingAddress.ID, second.BillingAddress.ID)
}

func TestPrepareForWriteKeepsExistingID(t *testing.T) {
	customer := models.Customer{BillingAddress: models.Address{ID: "addr-1"}}
	prepared := PrepareForWrite(customer)
	assert.Equal(t, "addr-1", prepared.BillingAddress.ID)
}

func TestPrepareForWriteLeavesShippingAddressesAlone(t *testing.T) {
	customer := models.Customer{
		Orders: []models.Order{{ID: "o1", ShippingAddress: models.Address{}}},
	}
	prepared := PrepareForWrite(customer)
	assert.Empty(t, prepared.Orders[0].ShippingAddress.ID)
}
