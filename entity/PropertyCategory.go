package entity

type PropertyCategory string

const (
	CategoryRent PropertyCategory = "Rent"
	CategorySale PropertyCategory = "Sale"
	CategoryLand PropertyCategory = "Land"
)
