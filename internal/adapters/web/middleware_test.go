package web

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"lab-dashboard/internal/platform/logger"
	"lab-dashboard/internal/view"
)

func TestRecoverer_ExhaustivenessPanicBecomes500(t *testing.T) {
	h := RequestID(Recoverer(logger.Nop())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic(&view.ExhaustivenessError{Union: "widget", Missing: []string{"gauge"}})
	})))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/business", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"INTERNAL_ERROR"`)
	assert.Contains(t, rec.Body.String(), `"request_id"`)
}
