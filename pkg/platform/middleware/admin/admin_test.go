package admin

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequireAdminToken(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	tests := []struct {
		name     string
		expected string
		sent     string
		status   int
	}{
		{name: "matching token passes", expected: "s3cret", sent: "s3cret", status: http.StatusNoContent},
		{name: "missing token is rejected", expected: "s3cret", sent: "", status: http.StatusUnauthorized},
		{name: "wrong token is rejected", expected: "s3cret", sent: "guess", status: http.StatusUnauthorized},
		{name: "no configured token leaves route open", expected: "", sent: "", status: http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodDelete, "/templates/inquiries/x", nil)
			if tt.sent != "" {
				req.Header.Set(TokenHeader, tt.sent)
			}
			rr := httptest.NewRecorder()
			RequireAdminToken(tt.expected, nil)(ok).ServeHTTP(rr, req)
			assert.Equal(t, tt.status, rr.Code)
			if tt.status == http.StatusUnauthorized {
				assert.JSONEq(t, `{"error":"unauthorized","error_description":"admin token required"}`, rr.Body.String())
			}
		})
	}
}
