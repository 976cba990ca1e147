package response

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "scholar-seeker.backend/internal/domain/errors"
)

func TestSuccess_WritesPayload(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Success(c, http.StatusCreated, gin.H{"id": "abc"})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"id":"abc"}`, w.Body.String())
}

func TestError_MapsDomainErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"not found", domainerrors.ErrNotFound, http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("scholarship: %w", domainerrors.ErrNotFound), http.StatusNotFound},
		{"already exists", domainerrors.ErrAlreadyExists, http.StatusConflict},
		{"invalid input", domainerrors.ErrInvalidInput, http.StatusBadRequest},
		{"bad request", domainerrors.ErrBadRequest, http.StatusBadRequest},
		{"unauthenticated", domainerrors.ErrUnauthenticated, http.StatusUnauthorized},
		{"invalid credentials", domainerrors.ErrInvalidCredentials, http.StatusUnauthorized},
		{"forbidden", domainerrors.ErrForbidden, http.StatusForbidden},
		{"remote unavailable", domainerrors.ErrRemoteUnavailable, http.StatusServiceUnavailable},
		{"unknown", errors.New("disk on fire"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			Error(c, tc.err)

			assert.Equal(t, tc.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), `"code"`)
			assert.Contains(t, w.Body.String(), `"message"`)
		})
	}
}

func TestError_KeepsAppErrorStatusAndMessage(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Error(c, domainerrors.NewAppError(http.StatusTeapot, "short and stout", nil))

	require.Equal(t, http.StatusTeapot, w.Code)
	assert.Contains(t, w.Body.String(), "short and stout")
}

func TestError_HidesInternalDetail(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Error(c, errors.New("pq: connection refused"))

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
	assert.NotContains(t, w.Body.String(), "connection refused")
}
