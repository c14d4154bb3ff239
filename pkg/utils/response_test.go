package utils

import (
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecokosova-dashboard/internal/api"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestRespondAPIErrorPassesStatus(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondAPIError(rec, &api.Error{
		Message:    "zoneId required",
		StatusCode: 400,
		Code:       "VALIDATION_ERROR",
		Details:    []api.FieldError{{Field: "zoneId", Message: "required"}},
	})

	assert.Equal(t, 400, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "zoneId required", body["error"])
	assert.Equal(t, "VALIDATION_ERROR", body["code"])
	assert.Len(t, body["details"], 1)
}

func TestRespondAPIErrorTransport(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondAPIError(rec, &api.Error{Message: "Nuk mund të lidhet me serverin", Err: errors.New("refused")})
	assert.Equal(t, 502, rec.Code)

	rec = httptest.NewRecorder()
	RespondAPIError(rec, &api.Error{Message: "Kërkesa skadoi", Err: context.DeadlineExceeded})
	assert.Equal(t, 504, rec.Code)
}

func TestRespondAPIErrorUnknown(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondAPIError(rec, errors.New("boom"))
	assert.Equal(t, 502, rec.Code)
	assert.Equal(t, false, decode(t, rec)["success"])
}
