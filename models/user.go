package models

// User represents an account entity stored in the "users" table.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the server-assigned unique identifier of the user.
	ID int64 `json:"id"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// Email is the unique contact address of the user.
	Email string `json:"email"`

	// Password stores the bcrypt hash of the user's password.
	// It is never serialized into any response payload.
	Password string `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
