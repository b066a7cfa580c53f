package models

// CreateUserRequest is the payload of POST /users.
type CreateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateUserRequest is the payload of PUT /users/{id}.
// Only name and email are mutable; the password is never updated here.
type UpdateUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// CreateAddressRequest is the payload of POST /users/{userID}/addresses.
type CreateAddressRequest struct {
	AddressLine string `json:"address_line"`
	City        string `json:"city"`
	State       string `json:"state"`
	PostalCode  string `json:"postal_code"`
	Country     string `json:"country"`
}

// CreateUserWithAddressesRequest is the payload of POST /users/complex:
// a new user together with at least one address, inserted atomically.
type CreateUserWithAddressesRequest struct {
	Name      string                 `json:"name"`
	Email     string                 `json:"email"`
	Password  string                 `json:"password"`
	Addresses []CreateAddressRequest `json:"addresses"`
}

// CreateUserWithAddressesResult reports the outcome of a successful
// transactional insert: the new user id and how many addresses were created.
type CreateUserWithAddressesResult struct {
	UserID       int64 `json:"user_id"`
	AddressCount int   `json:"address_count"`
}
