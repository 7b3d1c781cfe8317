package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/driveneutral/driveneutral/internal/engine"
	"github.com/driveneutral/driveneutral/internal/pricing"
)

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleCompare(c *gin.Context) {
	q1 := c.Query("vehicle1")
	q2 := c.Query("vehicle2")
	if q1 == "" || q2 == "" {
		validationError(c, "vehicle1 and vehicle2 query parameters are required", nil)
		return
	}

	result, err := s.engine.CompareVehicles(c.Request.Context(), q1, q2)
	if err != nil {
		s.respondEngineError(c, err)
		return
	}
	respondOK(c, "comparison complete", result)
}

func (s *Server) handleEco(c *gin.Context) {
	criteria := engine.EcoCriteria{
		BodyType: c.DefaultQuery("body_type", "all"),
		FuelType: c.DefaultQuery("fuel_type", "all"),
	}

	var err error
	if criteria.BudgetMin, err = intQuery(c, "budget_min", 0); err != nil {
		validationError(c, "budget_min must be an integer", err)
		return
	}
	if criteria.BudgetMax, err = intQuery(c, "budget_max", 0); err != nil {
		validationError(c, "budget_max must be an integer", err)
		return
	}

	result, err := s.engine.FindEcoFriendly(c.Request.Context(), criteria)
	if err != nil {
		s.respondEngineError(c, err)
		return
	}
	respondOK(c, "eco search complete", result)
}

func (s *Server) handleEV(c *gin.Context) {
	budget, err := intQuery(c, "budget", 0)
	if err != nil {
		validationError(c, "budget must be an integer", err)
		return
	}
	usage := c.DefaultQuery("usage", "city")

	options, err := s.engine.BestEVUnderBudget(c.Request.Context(), budget, usage)
	if err != nil {
		s.respondEngineError(c, err)
		return
	}
	respondOK(c, "ev shortlist complete", gin.H{"results": options})
}

func (s *Server) handleCosts(c *gin.Context) {
	dailyKm, err := floatQuery(c, "daily_km")
	if err != nil {
		validationError(c, "daily_km must be a number", err)
		return
	}
	fuelPrice, err := floatQuery(c, "fuel_price")
	if err != nil {
		validationError(c, "fuel_price must be a number", err)
		return
	}
	electricityCost, err := floatQuery(c, "electricity_cost")
	if err != nil {
		validationError(c, "electricity_cost must be a number", err)
		return
	}

	result := s.engine.CalculateCosts(c.Request.Context(), dailyKm, fuelPrice, electricityCost)
	respondOK(c, "cost calculation complete", result)
}

func (s *Server) handleInsights(c *gin.Context) {
	dailyKm, err := floatQuery(c, "daily_km")
	if err != nil {
		validationError(c, "daily_km must be a number", err)
		return
	}

	insights := s.engine.GenerateInsights(c.Request.Context(), dailyKm)
	respondOK(c, "insights generated", gin.H{"insights": insights})
}

func (s *Server) handleOnRoad(c *gin.Context) {
	basePrice, err := intQuery(c, "base_price", 0)
	if err != nil || basePrice <= 0 {
		validationError(c, "base_price must be a positive integer", err)
		return
	}
	city := c.DefaultQuery("city", s.cfg.Pricing.City)

	respondOK(c, "on-road price calculated", pricing.Breakdown(basePrice, city))
}

func (s *Server) handleTip(c *gin.Context) {
	respondOK(c, "tip", gin.H{"tip": engine.RandomTip()})
}

// respondEngineError maps engine error types onto HTTP responses.
func (s *Server) respondEngineError(c *gin.Context, err error) {
	var notFound *engine.NotFoundError
	if errors.As(err, &notFound) {
		respondError(c, http.StatusNotFound, "vehicle not found", err, gin.H{"missing": notFound.Query})
		return
	}

	var noMatch *engine.NoMatchError
	if errors.As(err, &noMatch) {
		respondError(c, http.StatusNotFound, noMatch.Suggestion, err)
		return
	}

	s.logger.Error().Err(err).Msg("engine failure")
	respondError(c, http.StatusBadGateway, "vehicle data temporarily unavailable", err)
}

func intQuery(c *gin.Context, name string, def int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", name, err)
	}
	return v, nil
}

func floatQuery(c *gin.Context, name string) (float64, error) {
	raw := c.Query(name)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", name, err)
	}
	return v, nil
}
