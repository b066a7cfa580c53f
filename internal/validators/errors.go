package validators

import "errors"

// FieldErrors is a structured validation failure: a mapping from field name
// to the list of human-readable violation messages for that field.
//
// It implements the error interface so validators can return it through
// ordinary error plumbing; callers that need the per-field detail should
// type-assert or use [AsFieldErrors].
type FieldErrors map[string][]string

// Error implements the error interface. The per-field detail is carried by
// the map itself, not by the error string.
func (e FieldErrors) Error() string {
	return "validation failed"
}

// add appends a violation message for the given field.
func (e FieldErrors) add(field, message string) {
	e[field] = append(e[field], message)
}

// merge copies all violations from other into e, prefixing every field name
// with prefix. Used to nest element errors under "addresses[i]".
func (e FieldErrors) merge(prefix string, other FieldErrors) {
	for field, messages := range other {
		e[prefix+field] = append(e[prefix+field], messages...)
	}
}

// AsFieldErrors extracts a FieldErrors value from err, unwrapping if needed.
// It returns nil and false if err does not carry field-level detail.
func AsFieldErrors(err error) (FieldErrors, bool) {
	var fieldErrors FieldErrors
	if !errors.As(err, &fieldErrors) || len(fieldErrors) == 0 {
		return nil, false
	}
	return fieldErrors, true
}
