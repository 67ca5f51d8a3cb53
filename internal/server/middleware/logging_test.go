package middleware

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogging(t *testing.T) {
	tests := []struct {
		handler        http.HandlerFunc
		name           string
		expectedStatus int
		expectedLevel  string
	}{
		{
			name: "200 logs at info",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
				_, _ = w.Write([]byte(`{"status":"ok"}`))
			},
			expectedStatus: http.StatusOK,
			expectedLevel:  "INFO",
		},
		{
			name: "400 logs at warn",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
			},
			expectedStatus: http.StatusBadRequest,
			expectedLevel:  "WARN",
		},
		{
			name: "500 logs at error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			expectedStatus: http.StatusInternalServerError,
			expectedLevel:  "ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logOutput strings.Builder
			logger := slog.New(slog.NewTextHandler(&logOutput, nil))

			wrapped := Logging(logger)(tt.handler)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/sync", nil)
			w := httptest.NewRecorder()
			wrapped.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, logOutput.String(), "HTTP request")
			assert.Contains(t, logOutput.String(), tt.expectedLevel)
			assert.Contains(t, logOutput.String(), "/api/v1/sync")
		})
	}
}

func TestLoggingCapturesResponseSize(t *testing.T) {
	var logOutput strings.Builder
	logger := slog.New(slog.NewTextHandler(&logOutput, nil))

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("12345"))
	})

	wrapped := Logging(logger)(handler)
	w := httptest.NewRecorder()
	wrapped.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Contains(t, logOutput.String(), "bytes_written=5")
	assert.Contains(t, logOutput.String(), "status=200", "implicit WriteHeader still records 200")
}
