package ratelim

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
)

func TestLimitAllowsBurstThenBlocks(t *testing.T) {
	rl := NewRateLimiter()
	handle := rl.Limit(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		w.WriteHeader(http.StatusNoContent)
	})

	request := func() int {
		r := httptest.NewRequest(http.MethodPost, "/login", nil)
		r.RemoteAddr = "203.0.113.9:51234"
		w := httptest.NewRecorder()
		handle(w, r, nil)
		return w.Code
	}

	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusNoContent, request(), "request %d should pass", i+1)
	}
	assert.Equal(t, http.StatusTooManyRequests, request())
}

func TestLimitIsPerIP(t *testing.T) {
	rl := NewRateLimiter()
	handle := rl.Limit(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		w.WriteHeader(http.StatusNoContent)
	})

	exhaust := func(addr string) {
		for i := 0; i < 6; i++ {
			r := httptest.NewRequest(http.MethodPost, "/login", nil)
			r.RemoteAddr = addr
			handle(httptest.NewRecorder(), r, nil)
		}
	}
	exhaust("203.0.113.9:51234")

	r := httptest.NewRequest(http.MethodPost, "/login", nil)
	r.RemoteAddr = "198.51.100.7:40000"
	w := httptest.NewRecorder()
	handle(w, r, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
}
