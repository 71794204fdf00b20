package models

// Address is an embedded value used both as a customer's billing address and
// as an order's shipping address. The id may be left empty by callers; the
// store backfills the billing address id before a customer document is written.
type Address struct {
	ID             string `bson:"_id,omitempty" json:"id,omitempty"`
	StreetName     string `bson:"streetName" json:"streetName" validate:"required"`
	StreetNumber   string `bson:"streetNumber" json:"streetNumber" validate:"required"`
	AdditionalInfo string `bson:"additionalInfo,omitempty" json:"additionalInfo,omitempty"`
	ZipCode        string `bson:"zipCode" json:"zipCode" validate:"required"`
	City           string `bson:"city" json:"city" validate:"required"`
	State          string `bson:"state,omitempty" json:"state,omitempty"`
	Country        string `bson:"country" json:"country" validate:"required"`
}
