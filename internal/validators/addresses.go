package validators

import "github.com/MKhiriev/go-address-book/models"

// Field name constants for address payloads.
const (
	FieldAddressLine = "address_line"
	FieldCity        = "city"
	FieldState       = "state"
	FieldPostalCode  = "postal_code"
	FieldCountry     = "country"
)

// addressMessages holds one violation message per address field. Standalone
// address endpoints and nested transaction elements report the same
// constraint with different wording, matching the public API contract.
type addressMessages struct {
	addressLine string
	city        string
	state       string
	postalCode  string
	country     string
}

// emptyMessages is used by POST /users/{userID}/addresses and the partial
// update variant.
var emptyMessages = addressMessages{
	addressLine: "Address line field is empty",
	city:        "City field is empty",
	state:       "State field is empty",
	postalCode:  "Postal Code field is empty",
	country:     "Country field is empty",
}

// requiredMessages is used for the nested address array of POST /users/complex.
var requiredMessages = addressMessages{
	addressLine: "Address line is required",
	city:        "City is required",
	state:       "State is required",
	postalCode:  "Postal code is required",
	country:     "Country is required",
}

// ValidateCreateAddress checks the POST /users/{userID}/addresses payload:
// all five address fields must be non-empty strings.
func ValidateCreateAddress(req models.CreateAddressRequest) FieldErrors {
	return validateAddressFields(req, emptyMessages)
}

// ValidateAddressUpdate checks a partial address update. Every field is
// optional, but any field present in the payload must be a non-empty string.
// The "at least one field" rule is signalled by the caller via
// [models.AddressUpdate.Empty], not here.
func ValidateAddressUpdate(update models.AddressUpdate) FieldErrors {
	fieldErrors := FieldErrors{}

	if update.AddressLine != nil && *update.AddressLine == "" {
		fieldErrors.add(FieldAddressLine, emptyMessages.addressLine)
	}
	if update.City != nil && *update.City == "" {
		fieldErrors.add(FieldCity, emptyMessages.city)
	}
	if update.State != nil && *update.State == "" {
		fieldErrors.add(FieldState, emptyMessages.state)
	}
	if update.PostalCode != nil && *update.PostalCode == "" {
		fieldErrors.add(FieldPostalCode, emptyMessages.postalCode)
	}
	if update.Country != nil && *update.Country == "" {
		fieldErrors.add(FieldCountry, emptyMessages.country)
	}

	if len(fieldErrors) == 0 {
		return nil
	}
	return fieldErrors
}

func validateAddressFields(req models.CreateAddressRequest, messages addressMessages) FieldErrors {
	fieldErrors := FieldErrors{}

	if req.AddressLine == "" {
		fieldErrors.add(FieldAddressLine, messages.addressLine)
	}
	if req.City == "" {
		fieldErrors.add(FieldCity, messages.city)
	}
	if req.State == "" {
		fieldErrors.add(FieldState, messages.state)
	}
	if req.PostalCode == "" {
		fieldErrors.add(FieldPostalCode, messages.postalCode)
	}
	if req.Country == "" {
		fieldErrors.add(FieldCountry, messages.country)
	}

	if len(fieldErrors) == 0 {
		return nil
	}
	return fieldErrors
}
