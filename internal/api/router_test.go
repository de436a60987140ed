package api_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"snailmail-delivery/internal/adapters/estimates"
	"snailmail-delivery/internal/adapters/routes"
	"snailmail-delivery/internal/api"
	"snailmail-delivery/internal/domain"
	"snailmail-delivery/internal/platform/db"
	"snailmail-delivery/internal/services"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// newStack serves the seeded dev backend and returns a client pointed at it.
func newStack(t *testing.T) (*httptest.Server, *estimates.Client) {
	t.Helper()
	ctx := context.Background()

	conn, err := db.Open(db.DriverSQLite, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	require.NoError(t, routes.InitSchema(ctx, conn, db.DriverSQLite))
	store := routes.NewSqliteRouteStore(conn)
	require.NoError(t, routes.SeedFromJSON(ctx, store, filepath.Join("..", "..", "data", "seeds", "routes.json")))

	log := zap.NewNop()
	srv := httptest.NewServer(api.NewRouter(services.NewEstimator(store, log), log))
	t.Cleanup(srv.Close)

	client, err := estimates.NewClient(srv.URL, 5*time.Second, log)
	require.NoError(t, err)
	return srv, client
}

func TestClientAgainstDevServerCalculateAll(t *testing.T) {
	_, client := newStack(t)

	results, err := client.CalculateAll(context.Background(),
		domain.AddressLocation("London, UK"), domain.AddressLocation("Oxford, UK"))
	require.NoError(t, err)
	require.Len(t, results, 4)

	view, err := services.NewResultsView(results)
	require.NoError(t, err)
	require.Len(t, view.Options, 4)
	assert.Equal(t, domain.Pigeon, view.Options[0].Mode)
	assert.Equal(t, domain.RockClimbing, view.Options[3].Mode)
	assert.Equal(t, &services.DistanceSummary{Text: "95 km", IsAIEstimate: false}, view.Summary)
}

func TestClientAgainstDevServerFallbackIsAIEstimate(t *testing.T) {
	_, client := newStack(t)

	results, err := client.CalculateAll(context.Background(),
		domain.AddressLocation("London, UK"), domain.PointLocation(48.8566, 2.3522))
	require.NoError(t, err)

	options, err := services.BuildOptions(results)
	require.NoError(t, err)
	summary := services.Summarize(options)
	require.NotNil(t, summary)
	assert.True(t, summary.IsAIEstimate)
	assert.True(t, options[0].Estimate.IsEstimate)
}

func TestClientAgainstDevServerCalculateSingle(t *testing.T) {
	_, client := newStack(t)

	est, err := client.CalculateSingle(context.Background(),
		domain.AddressLocation("Oxford, UK"), domain.AddressLocation("London, UK"), domain.Swimming)
	require.NoError(t, err)
	assert.Equal(t, domain.Swimming, est.TransportMode)
	assert.Equal(t, domain.MethodGoogleMaps, est.Method)
	assert.Equal(t, float64(2), est.SpeedKmH)
}

func TestClientAgainstDevServerRouteNotFound(t *testing.T) {
	_, client := newStack(t)

	_, err := client.CalculateSingle(context.Background(),
		domain.AddressLocation("Atlantis"), domain.AddressLocation("London, UK"), domain.Pigeon)

	var calcErr *estimates.CalculationError
	require.True(t, errors.As(err, &calcErr))
	assert.Equal(t, "route not found", calcErr.Message)
}

func TestClientAgainstDevServerHealth(t *testing.T) {
	_, client := newStack(t)
	assert.True(t, client.HealthCheck(context.Background()))
}

func TestCalculateRejectsBadInput(t *testing.T) {
	srv, _ := newStack(t)

	cases := map[string]string{
		"not json":       `{`,
		"unknown mode":   `{"origin":{"address":"London, UK"},"destination":{"address":"Oxford, UK"},"mode":"kayak"}`,
		"missing origin": `{"destination":{"address":"Oxford, UK"}}`,
		"both forms":     `{"origin":{"address":"x","lat":1,"lng":2},"destination":{"address":"Oxford, UK"}}`,
	}

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			resp, err := http.Post(srv.URL+"/api/distance/calculate", "application/json", strings.NewReader(body))
			require.NoError(t, err)
			defer resp.Body.Close()
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestRequestIDIsEchoed(t *testing.T) {
	srv, _ := newStack(t)

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/api/distance/health", nil)
	require.NoError(t, err)
	req.Header.Set("X-Request-ID", "req-123")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "req-123", resp.Header.Get("X-Request-ID"))
}
