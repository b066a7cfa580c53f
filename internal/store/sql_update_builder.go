package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-address-book/models"
)

// buildUpdateAddressQuery dynamically builds the UPDATE statement for a
// partial address update. Only fields present in the update contribute a SET
// clause; parameter positions are assigned sequentially and the
// row-identifying ids are always appended last, in the fixed order
// (address id, user id). The statement returns the updated row so callers
// can distinguish "updated" from "not found".
func buildUpdateAddressQuery(addressID, userID int64, update models.AddressUpdate) (string, []any, error) {
	builder := sq.StatementBuilder.
		PlaceholderFormat(sq.Dollar).
		Update("addresses")

	if update.AddressLine != nil {
		builder = builder.Set("address_line", *update.AddressLine)
	}
	if update.City != nil {
		builder = builder.Set("city", *update.City)
	}
	if update.State != nil {
		builder = builder.Set("state", *update.State)
	}
	if update.PostalCode != nil {
		builder = builder.Set("postal_code", *update.PostalCode)
	}
	if update.Country != nil {
		builder = builder.Set("country", *update.Country)
	}

	query, args, err := builder.
		Where("id = ? AND user_id = ?", addressID, userID).
		Suffix("RETURNING id, user_id, address_line, city, state, postal_code, country").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
