package httperr

import (
	"net/http"

	"cuponera-backend/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
		Kind    string `json:"kind,omitempty"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// Status maps the failure taxonomy onto HTTP codes.
func Status(err error) int {
	switch errs.KindOf(err) {
	case errs.ErrNotFound:
		return http.StatusNotFound
	case errs.ErrInvalidArgument:
		return http.StatusBadRequest
	case errs.ErrInvalidState:
		return http.StatusUnprocessableEntity
	case errs.ErrConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Abort answers with the status and kind carried by err. Internal failures never expose their message.
func Abort(c *gin.Context, err error) {
	status := Status(err)
	msg := "Internal server error"
	if status != http.StatusInternalServerError {
		msg = err.Error()
	}
	abort(c, status, err, msg, errs.KindName(err), nil)
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}
	abort(c, status, err, msg, "", detail)
}

func abort(c *gin.Context, status int, err error, msg, kind string, detail any) {
	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Error.Kind = kind
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
