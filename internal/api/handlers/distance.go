package handlers

import (
	"context"
	"errors"
	"net/http"
	"snailmail-delivery/internal/api/dto"
	"snailmail-delivery/internal/domain"
	"snailmail-delivery/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Estimator is the part of services.Estimator the handlers need.
type Estimator interface {
	Estimate(ctx context.Context, origin, destination domain.LocationInput, mode domain.TransportMode) (domain.DeliveryEstimate, error)
	EstimateAll(ctx context.Context, origin, destination domain.LocationInput) (map[domain.TransportMode]domain.DeliveryEstimate, error)
}

type DistanceHandler struct {
	Estimator Estimator
	Log       *zap.Logger
}

// Calculate handles POST /api/distance/calculate. Mode defaults to walking.
func (h *DistanceHandler) Calculate(c *gin.Context) {
	var req dto.CalculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json body")
		return
	}

	mode := domain.Walking
	if req.Mode != "" {
		m, err := domain.ParseTransportMode(req.Mode)
		if err != nil {
			writeError(c, http.StatusBadRequest, "mode must be one of walking, swimming, pigeon, rock-climbing")
			return
		}
		mode = m
	}

	if !h.validRoute(c, req) {
		return
	}

	est, err := h.Estimator.Estimate(c.Request.Context(), req.Origin, req.Destination, mode)
	if err != nil {
		h.writeEstimateError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CalculateResponse{Success: true, Data: est})
}

// CalculateAll handles POST /api/distance/calculate-all.
func (h *DistanceHandler) CalculateAll(c *gin.Context) {
	var req dto.CalculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json body")
		return
	}

	if !h.validRoute(c, req) {
		return
	}

	all, err := h.Estimator.EstimateAll(c.Request.Context(), req.Origin, req.Destination)
	if err != nil {
		h.writeEstimateError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CalculateAllResponse{Success: true, Data: all})
}

func (h *DistanceHandler) validRoute(c *gin.Context, req dto.CalculateRequest) bool {
	if err := req.Origin.Validate(); err != nil {
		writeError(c, http.StatusBadRequest, "origin: "+err.Error())
		return false
	}
	if err := req.Destination.Validate(); err != nil {
		writeError(c, http.StatusBadRequest, "destination: "+err.Error())
		return false
	}
	return true
}

// writeEstimateError reports an unresolvable route as an unsuccessful
// calculation (HTTP 200) and anything else as a server error.
func (h *DistanceHandler) writeEstimateError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrRouteNotFound):
		h.Log.Info("route not found", zap.Error(err))
		writeError(c, http.StatusOK, services.ErrRouteNotFound.Error())
	case errors.Is(err, domain.ErrInvalidLocation), errors.Is(err, domain.ErrUnknownMode):
		writeError(c, http.StatusBadRequest, err.Error())
	default:
		h.Log.Error("estimate failed", zap.Error(err))
		writeError(c, http.StatusInternalServerError, "internal server error")
	}
}
