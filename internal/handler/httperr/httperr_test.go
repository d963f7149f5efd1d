//go:build unit

package httperr_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"cuponera-backend/internal/handler/httperr"
	"cuponera-backend/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", errs.Kind(errs.ErrNotFound, "coupon not found"), http.StatusNotFound},
		{"invalid argument", errs.Kind(errs.ErrInvalidArgument, "bad"), http.StatusBadRequest},
		{"invalid state", errs.Kind(errs.ErrInvalidState, "expired"), http.StatusUnprocessableEntity},
		{"conflict", errs.Kind(errs.ErrConflict, "dup"), http.StatusConflict},
		{"wrapped kind", errs.Wrap(errs.Kind(errs.ErrConflict, "dup"), "ctx"), http.StatusConflict},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, httperr.Status(tt.err))
		})
	}
}

func TestAbort(t *testing.T) {
	gin.SetMode(gin.TestMode)

	run := func(err error) (int, httperr.Response) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		httperr.Abort(c, err)
		var body httperr.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		return w.Code, body
	}

	code, body := run(errs.Kind(errs.ErrInvalidState, "coupon is not active"))
	assert.Equal(t, http.StatusUnprocessableEntity, code)
	assert.Equal(t, "coupon is not active", body.Error.Message)
	assert.Equal(t, "InvalidState", body.Error.Kind)

	code, body = run(errors.New("pq: connection reset"))
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, "Internal server error", body.Error.Message)
	assert.Equal(t, "Internal", body.Error.Kind)
}
