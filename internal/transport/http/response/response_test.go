package response

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/elisfemina/react-mesto-api-full/internal/domain"
)

func run(err error) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	Err(c, err)
	return w
}

func TestErr(t *testing.T) {
	t.Run("MapsEachKindToStatus", func(t *testing.T) {
		cases := []struct {
			err    *domain.Error
			status int
		}{
			{domain.BadRequest("bad"), http.StatusBadRequest},
			{domain.Unauthorized("no"), http.StatusUnauthorized},
			{domain.Forbidden("no"), http.StatusForbidden},
			{domain.NotFound("gone"), http.StatusNotFound},
			{domain.Conflict("dup"), http.StatusConflict},
		}
		for _, tc := range cases {
			w := run(tc.err)
			assert.Equal(t, tc.status, w.Code)
			assert.Contains(t, w.Body.String(), tc.err.Msg)
		}
	})

	t.Run("InternalHidesDetails", func(t *testing.T) {
		w := run(domain.Internal("db exploded at 10.0.0.3", errors.New("dial tcp")))
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "internal server error")
		assert.NotContains(t, w.Body.String(), "10.0.0.3")
	})

	t.Run("UnknownKindHidesDetails", func(t *testing.T) {
		w := run(&domain.Error{Msg: "secret detail"}) // Kind 零值
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "internal server error")
		assert.NotContains(t, w.Body.String(), "secret detail")
	})

	t.Run("NonDomainErrorHidesDetails", func(t *testing.T) {
		w := run(errors.New("mongo: connection refused"))
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "connection refused")
	})
}
