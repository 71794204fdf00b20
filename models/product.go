package models

// Product is an embedded value inside an order.
type Product struct {
	ID               string  `bson:"_id" json:"id" validate:"required"`
	Name             string  `bson:"name" json:"name" validate:"required"`
	Description      string  `bson:"description,omitempty" json:"description,omitempty"`
	ModelNumber      string  `bson:"modelNumber,omitempty" json:"modelNumber,omitempty"`
	ManufacturerName string  `bson:"manufacturerName" json:"manufacturerName" validate:"required"`
	Price            float64 `bson:"price" json:"price" validate:"gte=0"`
	DetailInfo       string  `bson:"detailInfo,omitempty" json:"detailInfo,omitempty"`
	ImageURL         string  `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	Quantity         int     `bson:"quantity" json:"quantity" validate:"gte=0"`
}
