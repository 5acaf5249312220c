package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{Validation("bad"), http.StatusBadRequest},
		{Unauthorized("no"), http.StatusUnauthorized},
		{Forbidden("mine"), http.StatusForbidden},
		{NotFound("gone"), http.StatusNotFound},
		{Conflict("dup"), http.StatusConflict},
		{TooLarge("big"), http.StatusRequestEntityTooLarge},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, HTTPStatus(tc.err), tc.err.Error())
	}
}

func TestKindSurvivesWrapping(t *testing.T) {
	err := fmt.Errorf("create user: %w", Conflict("User already exists"))

	assert.Equal(t, KindConflict, KindOf(err))
	assert.Equal(t, "User already exists", Message(err))
}

func TestInternalMessageIsOpaque(t *testing.T) {
	err := Wrap(KindInternal, "mongo exploded", errors.New("socket closed"))

	assert.Equal(t, "Internal Server Error", Message(err))
	assert.Equal(t, "Internal Server Error", Message(errors.New("raw")))
	assert.ErrorContains(t, err, "socket closed")
}
