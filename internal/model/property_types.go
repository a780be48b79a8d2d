package model

// PropertyType is the kind of property being listed.
type PropertyType string

const (
	PropertyTypeHouse      PropertyType = "House"
	PropertyTypeApartment  PropertyType = "Apartment"
	PropertyTypeVacantLand PropertyType = "Vacant Land"
	PropertyTypeCommercial PropertyType = "Commercial"
)

// Valid reports whether the property type is a known value.
func (t PropertyType) Valid() bool {
	switch t {
	case PropertyTypeHouse, PropertyTypeApartment, PropertyTypeVacantLand, PropertyTypeCommercial:
		return true
	}
	return false
}

// TransactionType is whether a listing is for sale or for rent.
type TransactionType string

const (
	TransactionTypeBuy  TransactionType = "Buy"
	TransactionTypeRent TransactionType = "Rent"
)

// Valid reports whether the transaction type is a known value.
func (t TransactionType) Valid() bool {
	switch t {
	case TransactionTypeBuy, TransactionTypeRent:
		return true
	}
	return false
}
