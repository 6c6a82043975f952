package response

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	xerrors "zabudowy-service/internal/pkg/errors"

	"github.com/gin-gonic/gin"
)

func TestFromErrorStatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		err    error
		status int
	}{
		{xerrors.ErrNotFound, http.StatusNotFound},
		{xerrors.Conflict("slug %q taken", "man"), http.StatusConflict},
		{xerrors.InvalidInput("name required"), http.StatusBadRequest},
		{xerrors.ErrUnauthorized, http.StatusUnauthorized},
		{xerrors.ErrSessionExpired, http.StatusUnauthorized},
		{xerrors.ErrInternal, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

		FromError(c, tc.err, "request failed")

		if w.Code != tc.status {
			t.Errorf("FromError(%v) status = %d, want %d", tc.err, w.Code, tc.status)
		}
	}
}

func TestFromErrorHidesInternalDetail(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	FromError(c, xerrors.Wrap(xerrors.ErrInternal, "pgx: connection refused to 10.0.0.5"), "request failed")

	if strings.Contains(w.Body.String(), "10.0.0.5") {
		t.Errorf("internal detail leaked in body: %s", w.Body.String())
	}
}
