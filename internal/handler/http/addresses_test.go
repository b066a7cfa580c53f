package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/MKhiriev/go-address-book/internal/service"
	"github.com/MKhiriev/go-address-book/internal/store"
	"github.com/MKhiriev/go-address-book/internal/validators"
	"github.com/MKhiriev/go-address-book/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAddress_Success(t *testing.T) {
	addressSvc := &mockAddressSvc{
		createFn: func(_ context.Context, userID int64, req models.CreateAddressRequest) (models.Address, error) {
			assert.Equal(t, int64(3), userID)
			return models.Address{ID: 1, UserID: userID, AddressLine: req.AddressLine, City: req.City, State: req.State, PostalCode: req.PostalCode, Country: req.Country}, nil
		},
	}
	h := newTestHandler(&mockUserSvc{}, addressSvc)

	body := models.CreateAddressRequest{
		AddressLine: "First St",
		City:        "Pune",
		State:       "MH",
		PostalCode:  "411001",
		Country:     "India",
	}
	rec, env := doRequest(t, h, http.MethodPost, "/users/3/addresses", encodeBody(t, body))

	assert.Equal(t, http.StatusCreated, rec.Code)

	var address models.Address
	require.NoError(t, json.Unmarshal(env.Data, &address))
	assert.Equal(t, int64(3), address.UserID)
}

func TestCreateAddress_UnknownUserIs404(t *testing.T) {
	addressSvc := &mockAddressSvc{
		createFn: func(_ context.Context, _ int64, _ models.CreateAddressRequest) (models.Address, error) {
			return models.Address{}, store.ErrUserNotFound
		},
	}
	h := newTestHandler(&mockUserSvc{}, addressSvc)

	body := models.CreateAddressRequest{
		AddressLine: "First St",
		City:        "Pune",
		State:       "MH",
		PostalCode:  "411001",
		Country:     "India",
	}
	rec, env := doRequest(t, h, http.MethodPost, "/users/999/addresses", encodeBody(t, body))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "User not found", env.Message)
}

func TestCreateAddress_MissingFields(t *testing.T) {
	addressSvc := &mockAddressSvc{
		createFn: func(_ context.Context, _ int64, _ models.CreateAddressRequest) (models.Address, error) {
			return models.Address{}, validators.FieldErrors{
				"city":    {"City is required"},
				"country": {"Country is required"},
			}
		},
	}
	h := newTestHandler(&mockUserSvc{}, addressSvc)

	rec, env := doRequest(t, h, http.MethodPost, "/users/3/addresses", strings.NewReader(`{"address_line":"First St"}`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, []string{"City is required"}, env.Errors["city"])
	assert.Equal(t, []string{"Country is required"}, env.Errors["country"])
}

func TestListAddresses_EmptyListIs200(t *testing.T) {
	addressSvc := &mockAddressSvc{
		listFn: func(_ context.Context, _ int64) ([]models.Address, error) {
			return []models.Address{}, nil
		},
	}
	h := newTestHandler(&mockUserSvc{}, addressSvc)

	rec, env := doRequest(t, h, http.MethodGet, "/users/3/addresses", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", strings.TrimSpace(string(env.Data)))
}

func TestListAddresses_BadUserID(t *testing.T) {
	h := newTestHandler(&mockUserSvc{}, &mockAddressSvc{})

	rec, env := doRequest(t, h, http.MethodGet, "/users/abc/addresses", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, []string{"ID must be a number"}, env.Errors["user_id"])
}

func TestUpdateAddress_Success(t *testing.T) {
	addressSvc := &mockAddressSvc{
		updateFn: func(_ context.Context, addressID, userID int64, update models.AddressUpdate) (models.Address, error) {
			assert.Equal(t, int64(9), addressID)
			assert.Equal(t, int64(3), userID)
			require.NotNil(t, update.City)
			return models.Address{ID: addressID, UserID: userID, City: *update.City}, nil
		},
	}
	h := newTestHandler(&mockUserSvc{}, addressSvc)

	rec, env := doRequest(t, h, http.MethodPut, "/users/3/addresses/9", strings.NewReader(`{"city":"Mumbai"}`))

	assert.Equal(t, http.StatusOK, rec.Code)

	var address models.Address
	require.NoError(t, json.Unmarshal(env.Data, &address))
	assert.Equal(t, "Mumbai", address.City)
}

func TestUpdateAddress_EmptyBody(t *testing.T) {
	addressSvc := &mockAddressSvc{
		updateFn: func(_ context.Context, _, _ int64, _ models.AddressUpdate) (models.Address, error) {
			return models.Address{}, service.ErrNoFieldsToUpdate
		},
	}
	h := newTestHandler(&mockUserSvc{}, addressSvc)

	rec, env := doRequest(t, h, http.MethodPut, "/users/3/addresses/9", strings.NewReader(`{}`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "No fields to update", env.Message)
}

func TestUpdateAddress_BothIDsInvalid(t *testing.T) {
	h := newTestHandler(&mockUserSvc{}, &mockAddressSvc{})

	rec, env := doRequest(t, h, http.MethodPut, "/users/0/addresses/xyz", strings.NewReader(`{"city":"Mumbai"}`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, []string{"ID must be a positive integer"}, env.Errors["user_id"])
	assert.Equal(t, []string{"ID must be a number"}, env.Errors["address_id"])
}

func TestDeleteAddress_NotFound(t *testing.T) {
	addressSvc := &mockAddressSvc{
		deleteFn: func(_ context.Context, _, _ int64) (models.Address, error) {
			return models.Address{}, store.ErrAddressNotFound
		},
	}
	h := newTestHandler(&mockUserSvc{}, addressSvc)

	rec, env := doRequest(t, h, http.MethodDelete, "/users/3/addresses/9", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Address not found", env.Message)
}

func TestCountAddressesPerUser_Success(t *testing.T) {
	addressSvc := &mockAddressSvc{
		countFn: func(_ context.Context) ([]models.UserAddressCount, error) {
			return []models.UserAddressCount{
				{UserID: 1, Name: "Ann", AddressCount: 2},
				{UserID: 2, Name: "Bob", AddressCount: 0},
			}, nil
		},
	}
	h := newTestHandler(&mockUserSvc{}, addressSvc)

	rec, env := doRequest(t, h, http.MethodGet, "/users/addresses/count", nil)

	assert.Equal(t, http.StatusOK, rec.Code)

	var counts []models.UserAddressCount
	require.NoError(t, json.Unmarshal(env.Data, &counts))
	require.Len(t, counts, 2)
	assert.Equal(t, int64(0), counts[1].AddressCount)
}

func TestListUsersWithoutAddresses_Success(t *testing.T) {
	addressSvc := &mockAddressSvc{
		noAddressesFn: func(_ context.Context) ([]models.User, error) {
			return []models.User{{ID: 2, Name: "Bob", Email: "bob@x.com"}}, nil
		},
	}
	h := newTestHandler(&mockUserSvc{}, addressSvc)

	rec, env := doRequest(t, h, http.MethodGet, "/users/no-addresses", nil)

	assert.Equal(t, http.StatusOK, rec.Code)

	var users []models.User
	require.NoError(t, json.Unmarshal(env.Data, &users))
	require.Len(t, users, 1)
	assert.Equal(t, "Bob", users[0].Name)
}
