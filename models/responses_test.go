package models

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewEnvelope_SuccessMirrorsStatusClass(t *testing.T) {
	cases := []struct {
		status  int
		success bool
	}{
		{http.StatusOK, true},
		{http.StatusCreated, true},
		{http.StatusNoContent, true},
		{399, true},
		{http.StatusBadRequest, false},
		{http.StatusNotFound, false},
		{http.StatusInternalServerError, false},
		{199, false},
	}

	for _, tc := range cases {
		env := NewEnvelope(tc.status, nil, "", nil)
		assert.Equal(t, tc.success, env.Success, "status %d", tc.status)
	}
}

func TestNewEnvelope_DataDroppedOnFailure(t *testing.T) {
	env := NewEnvelope(http.StatusInternalServerError, map[string]string{"leak": "nope"}, "", nil)

	assert.Nil(t, env.Data)
	assert.Equal(t, MessageFailed, env.Message)
}

func TestNewEnvelope_DataKeptOnSuccess(t *testing.T) {
	data := map[string]string{"k": "v"}
	env := NewEnvelope(http.StatusOK, data, "", nil)

	assert.Equal(t, data, env.Data)
	assert.Equal(t, MessageOK, env.Message)
}

func TestNewEnvelope_ExplicitMessageWins(t *testing.T) {
	env := NewEnvelope(http.StatusNotFound, nil, "User not found", nil)

	assert.Equal(t, "User not found", env.Message)
}

func TestNewEnvelope_FieldErrorsCarriedOnFailure(t *testing.T) {
	fieldErrors := map[string][]string{"email": {"Invalid email address"}}
	env := NewEnvelope(http.StatusBadRequest, "ignored", "", fieldErrors)

	assert.Nil(t, env.Data)
	assert.Equal(t, fieldErrors, env.Errors)
}

func TestNewEnvelope_IsPure(t *testing.T) {
	a := NewEnvelope(http.StatusOK, "data", "msg", nil)
	b := NewEnvelope(http.StatusOK, "data", "msg", nil)

	assert.Equal(t, a, b)
}
