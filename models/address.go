package models

// Address represents a postal address owned by a user. Every address row
// references an existing user via UserID; the constraint is enforced by the
// database foreign key, not by application code.
type Address struct {
	// ID is the server-assigned unique identifier of the address.
	ID int64 `json:"id"`

	// UserID is the identifier of the owning user.
	UserID int64 `json:"user_id"`

	// AddressLine is the street-level part of the address.
	AddressLine string `json:"address_line"`

	// City is the city or locality name.
	City string `json:"city"`

	// State is the state, province, or region name.
	State string `json:"state"`

	// PostalCode is the postal or ZIP code.
	PostalCode string `json:"postal_code"`

	// Country is the country name.
	Country string `json:"country"`
}

// TableName returns the name of the database table
// associated with the Address model.
func (a Address) TableName() string {
	return "addresses"
}

// AddressUpdate describes a partial address update. Nil fields were absent
// from the request body and must be left untouched by the UPDATE statement.
type AddressUpdate struct {
	AddressLine *string `json:"address_line,omitempty"`
	City        *string `json:"city,omitempty"`
	State       *string `json:"state,omitempty"`
	PostalCode  *string `json:"postal_code,omitempty"`
	Country     *string `json:"country,omitempty"`
}

// Empty reports whether the update carries no fields at all. Callers reject
// empty updates before any query is issued.
func (u AddressUpdate) Empty() bool {
	return u.AddressLine == nil && u.City == nil && u.State == nil &&
		u.PostalCode == nil && u.Country == nil
}

// UserAddressCount is one row of the per-user address count aggregate.
// Users without addresses appear with AddressCount set to zero.
type UserAddressCount struct {
	UserID       int64  `json:"user_id"`
	Name         string `json:"name"`
	AddressCount int64  `json:"address_count"`
}
