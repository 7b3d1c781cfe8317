package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/driveneutral/driveneutral/internal/catalog"
	"github.com/driveneutral/driveneutral/internal/config"
	"github.com/driveneutral/driveneutral/internal/engine"
	"github.com/driveneutral/driveneutral/internal/logging"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	cfg := config.Default()
	eng := engine.New(catalog.New(catalog.NewSeedStore()))
	logger := logging.New(logging.Config{Level: "disabled"})
	return NewServer(cfg, eng, logger)
}

func doRequest(t *testing.T, s *Server, path string) (*httptest.ResponseRecorder, Response) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)

	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return rec, resp
}

func TestHealthEndpoint(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestCompareEndpoint(t *testing.T) {
	s := newTestServer(t)

	rec, resp := doRequest(t, s, "/api/v1/vehicles/compare?vehicle1=nexon+ev&vehicle2=swift")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, resp.Success)

	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.Contains(t, data, "vehicle1")
	assert.Contains(t, data, "recommendation")
}

func TestCompareEndpointMissingParams(t *testing.T) {
	s := newTestServer(t)

	rec, resp := doRequest(t, s, "/api/v1/vehicles/compare?vehicle1=nexon")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, resp.Success)
}

func TestCompareEndpointUnknownVehicle(t *testing.T) {
	s := newTestServer(t)

	rec, resp := doRequest(t, s, "/api/v1/vehicles/compare?vehicle1=nexon+ev&vehicle2=zzz-nonexistent")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, resp.Success)

	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "zzz-nonexistent", data["missing"])
}

func TestEcoEndpoint(t *testing.T) {
	s := newTestServer(t)

	rec, resp := doRequest(t, s, "/api/v1/vehicles/eco?fuel_type=electric")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, resp.Success)

	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.Contains(t, data, "best")
}

func TestEcoEndpointNoMatch(t *testing.T) {
	s := newTestServer(t)

	rec, resp := doRequest(t, s, "/api/v1/vehicles/eco?budget_min=99000000")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "No vehicles found matching your criteria. Try widening your filters!", resp.Message)
}

func TestEcoEndpointBadBudget(t *testing.T) {
	s := newTestServer(t)

	rec, _ := doRequest(t, s, "/api/v1/vehicles/eco?budget_max=cheap")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestEVEndpoint(t *testing.T) {
	s := newTestServer(t)

	rec, resp := doRequest(t, s, "/api/v1/vehicles/ev?budget=2000000&usage=highway")
	assert.Equal(t, http.StatusOK, rec.Code)

	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	results, ok := data["results"].([]any)
	require.True(t, ok)
	assert.NotEmpty(t, results)
	assert.LessOrEqual(t, len(results), 4)
}

func TestEVEndpointNoMatch(t *testing.T) {
	s := newTestServer(t)

	rec, resp := doRequest(t, s, "/api/v1/vehicles/ev?budget=1")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "No EVs found under your budget. Try increasing it!", resp.Message)
}

func TestCostsEndpointDefaults(t *testing.T) {
	s := newTestServer(t)

	rec, resp := doRequest(t, s, "/api/v1/costs")
	assert.Equal(t, http.StatusOK, rec.Code)

	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.InDelta(t, 30, data["daily_km"], 0.001)
	assert.InDelta(t, 6240, data["monthly_fuel_cost"], 0.001)
	assert.InDelta(t, 7.9, data["break_even_years"], 0.001)
}

func TestCostsEndpointBreakEvenNeverIsNull(t *testing.T) {
	s := newTestServer(t)

	rec, resp := doRequest(t, s, "/api/v1/costs?electricity_cost=1000")
	assert.Equal(t, http.StatusOK, rec.Code)

	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.Nil(t, data["break_even_years"])
	assert.Equal(t, true, data["break_even_never"])
}

func TestInsightsEndpoint(t *testing.T) {
	s := newTestServer(t)

	rec, resp := doRequest(t, s, "/api/v1/insights?daily_km=30")
	assert.Equal(t, http.StatusOK, rec.Code)

	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	insights, ok := data["insights"].([]any)
	require.True(t, ok)
	require.Len(t, insights, 3)
	assert.Contains(t, insights[0], "tons of CO₂")
}

func TestOnRoadEndpoint(t *testing.T) {
	s := newTestServer(t)

	rec, resp := doRequest(t, s, "/api/v1/pricing/onroad?base_price=1000000&city=Mumbai")
	assert.Equal(t, http.StatusOK, rec.Code)

	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.InDelta(t, 1190000, data["total"], 0.001)
	assert.Equal(t, "Mumbai", data["city"])
}

func TestOnRoadEndpointRejectsMissingPrice(t *testing.T) {
	s := newTestServer(t)

	rec, _ := doRequest(t, s, "/api/v1/pricing/onroad")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTipEndpoint(t *testing.T) {
	s := newTestServer(t)

	rec, resp := doRequest(t, s, "/api/v1/tip")
	assert.Equal(t, http.StatusOK, rec.Code)

	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.NotEmpty(t, data["tip"])
}
