//go:build unit || e2e

package httptest

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// executes HTTP request with an optional JSON body
func PerformRequest(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	reqBody := bytes.NewBuffer(nil)
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err, "Failed to encode request body to JSON")
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req := httptest.NewRequest(method, path, reqBody)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// envelope is the success wrapper; Data is decoded later into the caller's type.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Count   *int            `json:"count"`
	Source  string          `json:"source"`
}

type Envelope[T any] struct {
	Success bool
	Message string
	Data    T
	Count   *int
	Source  string
}

// DecodeEnvelope asserts the status and unwraps the success envelope.
func DecodeEnvelope[T any](t *testing.T, w *httptest.ResponseRecorder, expectedStatus int) Envelope[T] {
	t.Helper()

	require.Equal(t, expectedStatus, w.Code, "Response: %s", w.Body.String())

	var raw envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw), "Failed to decode envelope: %s", w.Body.String())
	require.True(t, raw.Success, "Response: %s", w.Body.String())

	out := Envelope[T]{Success: raw.Success, Message: raw.Message, Count: raw.Count, Source: raw.Source}
	if len(raw.Data) > 0 && string(raw.Data) != "null" {
		require.NoError(t, json.Unmarshal(raw.Data, &out.Data), "Failed to decode data: %s", string(raw.Data))
	}
	return out
}
