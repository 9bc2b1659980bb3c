package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"memo-manager/pkg/log"
)

func TestNoStore(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mw := New(log.NewNop())

	r := gin.New()
	r.Use(mw.RequestLog())
	r.GET("/", mw.NoStore(), func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))
}
