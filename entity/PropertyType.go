package entity

type PropertyType string

const (
	TypeFlat        PropertyType = "Flat"
	TypeDuplex      PropertyType = "Duplex"
	TypeHouse       PropertyType = "House"
	TypeLand        PropertyType = "Land"
	TypeSelfContain PropertyType = "Self-Contain"
)
