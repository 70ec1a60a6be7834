package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestNegotiate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		accept string
		want   format
	}{
		{"", formatHTML},
		{"*/*", formatHTML},
		{"text/html", formatHTML},
		{"application/json", formatJSON},
		{"application/json, text/html", formatHTML},
		{"application/json;q=1, text/html;q=0.1", formatHTML},
		{"application/*", formatJSON},
		{"text/html;q=0, */*", formatJSON},
		{"text/*;q=0, application/json", formatJSON},
		{"image/png", formatNone},
		{"text/plain", formatNone},
	}

	for _, tc := range cases {
		t.Run(tc.accept, func(t *testing.T) {
			ctx, _ := gin.CreateTestContext(httptest.NewRecorder())
			ctx.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.accept != "" {
				ctx.Request.Header.Set("Accept", tc.accept)
			}
			assert.Equal(t, tc.want, negotiate(ctx))
		})
	}
}
