package common

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
)

func TestWrapError(t *testing.T) {
	assert.NoError(t, WrapError(nil, "load vocabulary"))

	wrapped := WrapError(ErrInvalidInput, "load vocabulary")
	assert.ErrorIs(t, wrapped, ErrInvalidInput)
	assert.Contains(t, wrapped.Error(), "load vocabulary")
}

func TestUnsupportedFormatError(t *testing.T) {
	err := UnsupportedFormatError("opening PDF", errors.New("bad header"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
	assert.Contains(t, err.Error(), "bad header")

	err = UnsupportedFormatError("empty input", nil)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
	assert.NotContains(t, err.Error(), "<nil>")
}

func TestStatusFromError(t *testing.T) {
	assert.Equal(t, codes.OK, StatusFromError(nil).Code())
	assert.Equal(t, codes.InvalidArgument, StatusFromError(UnsupportedFormatError("x", nil)).Code())
	assert.Equal(t, codes.InvalidArgument, StatusFromError(ErrInvalidInput).Code())
	assert.Equal(t, codes.Internal, StatusFromError(errors.New("boom")).Code())
}

func TestHTTPStatusFromError(t *testing.T) {
	assert.Equal(t, http.StatusOK, HTTPStatusFromError(nil))
	assert.Equal(t, http.StatusBadRequest, HTTPStatusFromError(UnsupportedFormatError("x", nil)))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatusFromError(errors.New("boom")))
}
