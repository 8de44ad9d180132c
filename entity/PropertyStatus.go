package entity

type PropertyStatus string

const (
	StatusAvailable PropertyStatus = "Available"
	StatusRented    PropertyStatus = "Rented"
	StatusSold      PropertyStatus = "Sold"
)
