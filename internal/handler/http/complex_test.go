package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/MKhiriev/go-address-book/internal/store"
	"github.com/MKhiriev/go-address-book/internal/validators"
	"github.com/MKhiriev/go-address-book/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUserWithAddresses_Created(t *testing.T) {
	userSvc := &mockUserSvc{
		createTxFn: func(_ context.Context, req models.CreateUserWithAddressesRequest) (models.CreateUserWithAddressesResult, error) {
			assert.Equal(t, "Ann", req.Name)
			assert.Len(t, req.Addresses, 2)
			return models.CreateUserWithAddressesResult{UserID: 10, AddressCount: 2}, nil
		},
	}
	h := newTestHandler(userSvc, &mockAddressSvc{})

	body := models.CreateUserWithAddressesRequest{
		Name:     "Ann",
		Email:    "ann@x.com",
		Password: "secret1",
		Addresses: []models.CreateAddressRequest{
			{AddressLine: "First St", City: "Pune", State: "MH", PostalCode: "411001", Country: "India"},
			{AddressLine: "Second St", City: "Pune", State: "MH", PostalCode: "411002", Country: "India"},
		},
	}
	rec, env := doRequest(t, h, http.MethodPost, "/users/complex", encodeBody(t, body))

	assert.Equal(t, http.StatusCreated, rec.Code)

	var result models.CreateUserWithAddressesResult
	require.NoError(t, json.Unmarshal(env.Data, &result))
	assert.Equal(t, int64(10), result.UserID)
	assert.Equal(t, 2, result.AddressCount)
}

func TestCreateUserWithAddresses_ElementValidationErrors(t *testing.T) {
	userSvc := &mockUserSvc{
		createTxFn: func(_ context.Context, _ models.CreateUserWithAddressesRequest) (models.CreateUserWithAddressesResult, error) {
			return models.CreateUserWithAddressesResult{}, validators.FieldErrors{
				"addresses[1].city": {"City is required"},
			}
		},
	}
	h := newTestHandler(userSvc, &mockAddressSvc{})

	rec, env := doRequest(t, h, http.MethodPost, "/users/complex", strings.NewReader(`{"name":"Ann","email":"ann@x.com","password":"secret1","addresses":[{},{}]}`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, []string{"City is required"}, env.Errors["addresses[1].city"])
}

func TestCreateUserWithAddresses_TransactionFailure(t *testing.T) {
	userSvc := &mockUserSvc{
		createTxFn: func(_ context.Context, _ models.CreateUserWithAddressesRequest) (models.CreateUserWithAddressesResult, error) {
			return models.CreateUserWithAddressesResult{}, store.ErrBeginningTransaction
		},
	}
	h := newTestHandler(userSvc, &mockAddressSvc{})

	rec, env := doRequest(t, h, http.MethodPost, "/users/complex", strings.NewReader(`{"name":"Ann","email":"ann@x.com","password":"secret1","addresses":[{"address_line":"a","city":"b","state":"c","postal_code":"d","country":"e"}]}`))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Transaction failed", env.Message)
}

func TestCreateUserWithAddresses_DuplicateEmailRollsBack(t *testing.T) {
	userSvc := &mockUserSvc{
		createTxFn: func(_ context.Context, _ models.CreateUserWithAddressesRequest) (models.CreateUserWithAddressesResult, error) {
			return models.CreateUserWithAddressesResult{}, store.ErrEmailAlreadyExists
		},
	}
	h := newTestHandler(userSvc, &mockAddressSvc{})

	rec, env := doRequest(t, h, http.MethodPost, "/users/complex", strings.NewReader(`{"name":"Ann","email":"ann@x.com","password":"secret1","addresses":[{"address_line":"a","city":"b","state":"c","postal_code":"d","country":"e"}]}`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, []string{"Email already exists"}, env.Errors["email"])
}

func TestCreateUserWithAddresses_InvalidJSON(t *testing.T) {
	h := newTestHandler(&mockUserSvc{}, &mockAddressSvc{})

	rec, env := doRequest(t, h, http.MethodPost, "/users/complex", strings.NewReader(`{bad`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid JSON was passed", env.Message)
}
