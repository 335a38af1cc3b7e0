package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRateLimitRejectsOnceDrained(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/limited", RateLimit(3, time.Hour), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	for i := 0; i < 3; i++ {
		rr := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/limited", nil)
		r.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code, "request %d", i)
	}

	rr := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/limited", nil)
	r.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusTooManyRequests, rr.Code)
}

func TestRateLimitIsPerRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	ok := func(c *gin.Context) { c.Status(http.StatusOK) }
	r.GET("/a", RateLimit(1, time.Hour), ok)
	r.GET("/b", RateLimit(1, time.Hour), ok)

	for _, path := range []string{"/a", "/b"} {
		rr := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, path, nil)
		r.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code, path)
	}

	// /a is drained; /b's bucket is independent and already used too.
	rr := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/a", nil)
	r.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusTooManyRequests, rr.Code)
}
