// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

const (
	listUsers = `SELECT id, name, email
		FROM users
		ORDER BY id;`

	createUser = `INSERT INTO users (name, email, password)
		VALUES ($1, $2, $3)
		RETURNING id, name, email;`

	getUserByID = `SELECT id, name, email
		FROM users
		WHERE id = $1;`

	updateUser = `UPDATE users
		SET name = $1, email = $2
		WHERE id = $3
		RETURNING id, name, email;`

	deleteUser = `DELETE FROM users
		WHERE id = $1
		RETURNING id, name, email;`

	createAddress = `INSERT INTO addresses (user_id, address_line, city, state, postal_code, country)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, user_id, address_line, city, state, postal_code, country;`

	listAddressesByUser = `SELECT id, user_id, address_line, city, state, postal_code, country
		FROM addresses
		WHERE user_id = $1
		ORDER BY id;`

	deleteAddress = `DELETE FROM addresses
		WHERE id = $1 AND user_id = $2
		RETURNING id, user_id, address_line, city, state, postal_code, country;`

	countAddressesPerUser = `SELECT u.id, u.name, COUNT(a.id) AS address_count
		FROM users u
		LEFT JOIN addresses a ON a.user_id = u.id
		GROUP BY u.id, u.name
		ORDER BY u.id;`

	usersWithoutAddresses = `SELECT u.id, u.name, u.email
		FROM users u
		LEFT JOIN addresses a ON a.user_id = u.id
		WHERE a.id IS NULL
		ORDER BY u.id;`
)
