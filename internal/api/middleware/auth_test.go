package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type stubVerifier map[string]uint

func (s stubVerifier) ValidateToken(token string) (uint, error) {
	if id, ok := s[token]; ok {
		return id, nil
	}
	return 0, errors.New("unknown token")
}

func TestAuth(t *testing.T) {
	verifier := stubVerifier{"good": 7}
	handler := Auth(verifier, zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetUserID(r.Context())
		if !ok {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(strconv.FormatUint(uint64(userID), 10)))
	}))

	tests := []struct {
		name         string
		header       string
		expectedCode int
		expectedBody string
	}{
		{name: "valid token", header: "Bearer good", expectedCode: http.StatusOK, expectedBody: "7"},
		{name: "scheme is case insensitive", header: "bearer good", expectedCode: http.StatusOK, expectedBody: "7"},
		{name: "missing header", header: "", expectedCode: http.StatusUnauthorized, expectedBody: `{"error":"Missing Authorization Header"}` + "\n"},
		{name: "wrong scheme", header: "Basic good", expectedCode: http.StatusUnauthorized, expectedBody: `{"error":"Invalid authorization header"}` + "\n"},
		{name: "token without scheme", header: "good", expectedCode: http.StatusUnauthorized, expectedBody: `{"error":"Invalid authorization header"}` + "\n"},
		{name: "unknown token", header: "Bearer bad", expectedCode: http.StatusUnauthorized, expectedBody: `{"error":"Invalid token"}` + "\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/user", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
			assert.Equal(t, tt.expectedBody, rec.Body.String())
		})
	}
}
