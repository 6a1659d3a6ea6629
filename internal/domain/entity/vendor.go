package entity

import "time"

// Vendor proveedor de mercancía.
type Vendor struct {
	ID           string
	Name         string
	ContactEmail string
	Phone        string
	Address      string
	IsActive     bool
	CreationDate time.Time
	ModifiedDate time.Time
}
