package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecokosova-dashboard/internal/models"
)

func newTestClient(t *testing.T, h http.HandlerFunc, opts ...Option) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	opts = append([]Option{WithRetry(3, time.Millisecond)}, opts...)
	return New(srv.URL+"/api", opts...)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func TestListContainersBareArray(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/monitoring/containers", r.URL.Path)
		writeJSON(w, 200, []models.Container{{ID: "C-1", FillLevel: 95}, {ID: "C-2", FillLevel: 10}})
	})

	got, err := c.ListContainers(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "C-1", got[0].ID)
}

func TestListContainersWalksPages(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		page := r.URL.Query().Get("page")
		switch page {
		case "0":
			writeJSON(w, 200, models.Page[models.Container]{
				Content: []models.Container{{ID: "C-1"}}, Page: 0, TotalPages: 2, First: true,
			})
		case "1":
			writeJSON(w, 200, models.Page[models.Container]{
				Content: []models.Container{{ID: "C-2"}}, Page: 1, TotalPages: 2, Last: true,
			})
		default:
			t.Errorf("unexpected page %q", page)
		}
	})

	got, err := c.ListContainers(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "C-2", got[1].ID)
}

func TestErrorMessageFromBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, 404, map[string]any{"status": 404, "code": "NOT_FOUND", "message": "Kontejneri nuk u gjet"})
	})

	_, err := c.GetContainer(context.Background(), "C-9")
	require.Error(t, err)

	apiErr := AsError(err)
	assert.Equal(t, 404, apiErr.StatusCode)
	assert.Equal(t, "NOT_FOUND", apiErr.Code)
	assert.Equal(t, "Kontejneri nuk u gjet", apiErr.Message)
}

func TestValidationErrorsAreJoined(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, 400, map[string]any{
			"message": "Validation failed",
			"errors": []any{
				map[string]string{"field": "fillLevel", "defaultMessage": "must be <= 100"},
				"zoneId is required",
			},
		})
	})

	_, err := c.UpdateFillLevel(context.Background(), "C-1", 140)
	apiErr := AsError(err)
	require.NotNil(t, apiErr)
	assert.Equal(t, 400, apiErr.StatusCode)
	assert.Equal(t, "must be <= 100, zoneId is required", apiErr.Message)
	require.Len(t, apiErr.Details, 2)
	assert.Equal(t, "fillLevel", apiErr.Details[0].Field)
}

func TestDetailsMapIsFlattened(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, 400, map[string]any{
			"status":  400,
			"code":    "VALIDATION_ERROR",
			"message": "Invalid input",
			"details": map[string]string{"zoneId": "required", "capacity": "must be positive"},
		})
	})

	_, err := c.CreateContainer(context.Background(), models.CreateContainerRequest{})
	apiErr := AsError(err)
	assert.Equal(t, "must be positive, required", apiErr.Message)
}

func TestFallbackMessageWhenBodyEmpty(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})

	err := c.DeleteContainer(context.Background(), "C-1")
	apiErr := AsError(err)
	assert.Equal(t, 403, apiErr.StatusCode)
	assert.Equal(t, "Nuk keni leje për këtë veprim", apiErr.Message)
}

func TestGetRetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		writeJSON(w, 200, []models.ZoneStatistics{{ZoneID: "Z-1", TotalContainers: 4}})
	})

	got, err := c.ZoneStatistics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(3), calls.Load())
	assert.Equal(t, 4, got[0].TotalContainers)
}

func TestGetDoesNotRetryClientErrors(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := c.GetTruck(context.Background(), "T-1")
	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, 404, StatusCodeOf(err))
}

func TestMutationsAreNotRetried(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := c.EmptyContainer(context.Background(), "C-1")
	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, "Gabim në server, provoni më vonë", AsError(err).Message)
}

func TestTokenSourceSetsBearer(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer abc", r.Header.Get("Authorization"))
		writeJSON(w, 200, []models.Truck{})
	}, WithTokenSource(func() string { return "abc" }))

	_, err := c.ListTrucks(context.Background())
	require.NoError(t, err)
}

func TestNoTokenByDefault(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		writeJSON(w, 200, []models.Truck{})
	})

	_, err := c.ListTrucks(context.Background())
	require.NoError(t, err)
}

func TestTransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	c := New(srv.URL, WithRetry(1, 0))
	_, err := c.ListReports(context.Background())

	apiErr := AsError(err)
	require.NotNil(t, apiErr)
	assert.True(t, apiErr.IsTransport())
	assert.Equal(t, "Nuk mund të lidhet me serverin", apiErr.Message)
}

func TestPlainTextResponse(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		var body models.UpdateFillLevelRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, 55, body.FillLevel)
		w.Write([]byte("Fill level updated successfully"))
	})

	msg, err := c.UpdateFillLevel(context.Background(), "C-1", 55)
	require.NoError(t, err)
	assert.Equal(t, "Fill level updated successfully", msg)
}

func TestZoneRouteQuery(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/routes/zone/Z-1", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "42.6629", q.Get("startLat"))
		assert.Equal(t, "21.1655", q.Get("startLon"))
		assert.Equal(t, "OPTIMAL", q.Get("strategy"))
		writeJSON(w, 200, models.Route{ZoneID: "Z-1", ContainerCount: 3})
	})

	route, err := c.ZoneRoute(context.Background(), "Z-1", models.DefaultRouteQuery())
	require.NoError(t, err)
	assert.Equal(t, 3, route.ContainerCount)
}

func TestCycleTransitions(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/ciklet/CY-1/complete", r.URL.Path)
		writeJSON(w, 200, models.Cycle{ID: "CY-1", Status: models.CycleCompleted})
	})

	cy, err := c.CompleteCycle(context.Background(), "CY-1")
	require.NoError(t, err)
	assert.Equal(t, models.CycleCompleted, cy.Status)
}
