package validators

import (
	"fmt"
	"regexp"

	"github.com/MKhiriev/go-address-book/models"
)

// Field name constants used as keys in FieldErrors maps.
const (
	FieldName      = "name"
	FieldEmail     = "email"
	FieldPassword  = "password"
	FieldAddresses = "addresses"
)

// Violation messages for user payload fields.
const (
	msgNameTooShort     = "Name must be at least 2 characters"
	msgInvalidEmail     = "Invalid email address"
	msgPasswordTooShort = "Password must be at least 6 characters"
	msgNoAddresses      = "At least one address is required"
)

// emailPattern accepts anything of the form local@domain.tld with no
// whitespace and no extra @ signs. Deliverability is the mail server's
// problem, not ours.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateCreateUser checks the POST /users payload: name at least
// 2 characters, a well-formed email, and a password of at least
// 6 characters. Returns nil when the payload is valid.
func ValidateCreateUser(req models.CreateUserRequest) FieldErrors {
	fieldErrors := FieldErrors{}

	validateName(fieldErrors, req.Name)
	validateEmail(fieldErrors, req.Email)

	if len(req.Password) < 6 {
		fieldErrors.add(FieldPassword, msgPasswordTooShort)
	}

	if len(fieldErrors) == 0 {
		return nil
	}
	return fieldErrors
}

// ValidateUpdateUser checks the PUT /users/{id} payload. Only name and email
// are accepted; both are required and follow the same rules as on creation.
func ValidateUpdateUser(req models.UpdateUserRequest) FieldErrors {
	fieldErrors := FieldErrors{}

	validateName(fieldErrors, req.Name)
	validateEmail(fieldErrors, req.Email)

	if len(fieldErrors) == 0 {
		return nil
	}
	return fieldErrors
}

// ValidateCreateUserWithAddresses checks the POST /users/complex payload:
// the user fields follow the creation rules, the addresses array must hold
// at least one element, and every element is validated with the full
// address rules. Element violations are keyed "addresses[i].field" so the
// caller can point at the exact offending entry.
func ValidateCreateUserWithAddresses(req models.CreateUserWithAddressesRequest) FieldErrors {
	fieldErrors := FieldErrors{}

	validateName(fieldErrors, req.Name)
	validateEmail(fieldErrors, req.Email)

	if len(req.Password) < 6 {
		fieldErrors.add(FieldPassword, msgPasswordTooShort)
	}

	if len(req.Addresses) == 0 {
		fieldErrors.add(FieldAddresses, msgNoAddresses)
	}

	for i, address := range req.Addresses {
		if elementErrors := validateAddressFields(address, requiredMessages); elementErrors != nil {
			fieldErrors.merge(fmt.Sprintf("%s[%d].", FieldAddresses, i), elementErrors)
		}
	}

	if len(fieldErrors) == 0 {
		return nil
	}
	return fieldErrors
}

func validateName(fieldErrors FieldErrors, name string) {
	if len(name) < 2 {
		fieldErrors.add(FieldName, msgNameTooShort)
	}
}

func validateEmail(fieldErrors FieldErrors, email string) {
	if !emailPattern.MatchString(email) {
		fieldErrors.add(FieldEmail, msgInvalidEmail)
	}
}
