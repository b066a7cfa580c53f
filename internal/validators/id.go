package validators

import (
	"math"
	"strconv"
)

// Violation messages for identifier path parameters.
const (
	msgIDNotANumber  = "ID must be a number"
	msgIDNotInteger  = "ID must be an integer"
	msgIDNotPositive = "ID must be a positive integer"
)

// ValidateID coerces a raw path parameter into a positive integer identifier.
//
// Coercion rules:
//   - the input must parse as a number ("12" and "12.0" are numbers, "abc" is not);
//   - the parsed number must be an integer (decimals fail);
//   - the integer must be strictly positive (zero and negatives fail).
//
// On failure the returned FieldErrors is keyed by field (e.g. "id",
// "user_id") and the id value is zero. On success the coerced identifier is
// returned with a nil error map.
func ValidateID(field, raw string) (int64, FieldErrors) {
	number, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, FieldErrors{field: {msgIDNotANumber}}
	}

	if number != math.Trunc(number) || number > math.MaxInt64 {
		return 0, FieldErrors{field: {msgIDNotInteger}}
	}

	id := int64(number)
	if id <= 0 {
		return 0, FieldErrors{field: {msgIDNotPositive}}
	}

	return id, nil
}
